package order

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/storelane/storefront-gateway/internal/pricing"
)

var (
	ErrNotFound = errors.New("order not found")
	// ErrInvalidTransition is returned before any backend call when the
	// requested status change is not on the lifecycle DAG.
	ErrInvalidTransition = errors.New("invalid status transition")
	// ErrNotCancellable is returned when the order left the window in
	// which customers may cancel.
	ErrNotCancellable = errors.New("order can no longer be cancelled")
)

type Repository interface {
	Create(ctx context.Context, req CreateRequest) (Order, error)
	GetByID(ctx context.Context, id int64) (Order, error)
	GetByNumber(ctx context.Context, number string) (Order, error)
	List(ctx context.Context) ([]Order, error)
	ListByUser(ctx context.Context, userID int64) ([]Order, error)
	ListByStatus(ctx context.Context, status Status) ([]Order, error)
	ListByEmail(ctx context.Context, email string) ([]Order, error)
	UpdateStatus(ctx context.Context, id int64, status Status, remarks string, changedBy int64) (Order, error)
	Cancel(ctx context.Context, id int64, reason string, cancelledBy int64) (Order, error)
	History(ctx context.Context, orderID int64) ([]HistoryEntry, error)
}

// InMemoryRepository emulates just enough of the backend's order
// service for tests: sequential order numbers, PENDING on create and
// an append-only history.
type InMemoryRepository struct {
	mu      sync.RWMutex
	orders  []Order
	history map[int64][]HistoryEntry
	nextID  int64
	now     func() time.Time
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		history: make(map[int64][]HistoryEntry),
		nextID:  1,
		now:     time.Now,
	}
}

func (r *InMemoryRepository) Create(ctx context.Context, req CreateRequest) (Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var subtotal float64
	items := make([]Item, 0, len(req.Items))
	for _, it := range req.Items {
		it.TotalPrice = it.UnitPrice * float64(it.Quantity)
		subtotal += it.TotalPrice
		items = append(items, it)
	}
	now := r.now().UTC()
	tax := subtotal * pricing.TaxRate

	ord := Order{
		ID:              r.nextID,
		OrderNumber:     fmt.Sprintf("ORD-%s-%05d", now.Format("20060102"), r.nextID),
		UserID:          req.UserID,
		CustomerName:    req.CustomerName,
		Email:           req.Email,
		Items:           items,
		ShippingAddress: req.ShippingAddress,
		Subtotal:        subtotal,
		Tax:             tax,
		ShippingCost:    req.ShippingFee,
		TotalAmount:     subtotal + tax + req.ShippingFee,
		Status:          StatusPending,
		PaymentStatus:   "PENDING",
		PaymentMethod:   req.PaymentMethod,
		Notes:           req.Notes,
		CreatedAt:       now.Format(time.RFC3339),
	}
	r.nextID++
	r.orders = append(r.orders, ord)
	r.history[ord.ID] = append(r.history[ord.ID], HistoryEntry{
		OrderID:   ord.ID,
		NewStatus: StatusPending,
		Remarks:   "Order created",
		ChangedAt: ord.CreatedAt,
	})
	return ord, nil
}

func (r *InMemoryRepository) GetByID(ctx context.Context, id int64) (Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, ord := range r.orders {
		if ord.ID == id {
			return ord, nil
		}
	}
	return Order{}, ErrNotFound
}

func (r *InMemoryRepository) GetByNumber(ctx context.Context, number string) (Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, ord := range r.orders {
		if ord.OrderNumber == number {
			return ord, nil
		}
	}
	return Order{}, ErrNotFound
}

func (r *InMemoryRepository) List(ctx context.Context) ([]Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Order, len(r.orders))
	copy(out, r.orders)
	return out, nil
}

func (r *InMemoryRepository) ListByUser(ctx context.Context, userID int64) ([]Order, error) {
	return r.filter(func(o Order) bool { return o.UserID == userID })
}

func (r *InMemoryRepository) ListByStatus(ctx context.Context, status Status) ([]Order, error) {
	return r.filter(func(o Order) bool { return o.Status == status })
}

func (r *InMemoryRepository) ListByEmail(ctx context.Context, email string) ([]Order, error) {
	return r.filter(func(o Order) bool { return o.Email == email })
}

func (r *InMemoryRepository) filter(keep func(Order) bool) ([]Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []Order{}
	for _, ord := range r.orders {
		if keep(ord) {
			out = append(out, ord)
		}
	}
	return out, nil
}

func (r *InMemoryRepository) UpdateStatus(ctx context.Context, id int64, status Status, remarks string, changedBy int64) (Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.orders {
		if r.orders[i].ID != id {
			continue
		}
		prev := r.orders[i].Status
		if !prev.CanTransitionTo(status) {
			return Order{}, ErrInvalidTransition
		}
		r.orders[i].Status = status
		r.orders[i].UpdatedAt = r.now().UTC().Format(time.RFC3339)
		r.history[id] = append(r.history[id], HistoryEntry{
			OrderID:        id,
			PreviousStatus: prev,
			NewStatus:      status,
			Remarks:        remarks,
			ChangedBy:      changedBy,
			ChangedAt:      r.orders[i].UpdatedAt,
		})
		return r.orders[i], nil
	}
	return Order{}, ErrNotFound
}

func (r *InMemoryRepository) Cancel(ctx context.Context, id int64, reason string, cancelledBy int64) (Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.orders {
		if r.orders[i].ID != id {
			continue
		}
		prev := r.orders[i].Status
		if !prev.CanCancel() {
			return Order{}, ErrNotCancellable
		}
		r.orders[i].Status = StatusCancelled
		r.orders[i].CancellationReason = reason
		r.orders[i].PaymentStatus = "REFUNDED"
		r.orders[i].UpdatedAt = r.now().UTC().Format(time.RFC3339)
		r.history[id] = append(r.history[id], HistoryEntry{
			OrderID:        id,
			PreviousStatus: prev,
			NewStatus:      StatusCancelled,
			Remarks:        reason,
			ChangedBy:      cancelledBy,
			ChangedAt:      r.orders[i].UpdatedAt,
		})
		return r.orders[i], nil
	}
	return Order{}, ErrNotFound
}

func (r *InMemoryRepository) History(ctx context.Context, orderID int64) ([]HistoryEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entries, ok := r.history[orderID]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]HistoryEntry, len(entries))
	copy(out, entries)
	return out, nil
}
