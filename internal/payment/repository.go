package payment

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

var (
	ErrNotFound      = errors.New("payment not found")
	ErrNotRefundable = errors.New("payment is not refundable")
	ErrDeclined      = errors.New("payment was declined")
)

type Repository interface {
	Create(ctx context.Context, req CreateRequest) (Payment, error)
	GetByID(ctx context.Context, id int64) (Payment, error)
	GetByOrder(ctx context.Context, orderID int64) (Payment, error)
	// Process captures a pending card or PayPal payment.
	Process(ctx context.Context, id int64) (Payment, error)
	// ConfirmCOD marks a cash-on-delivery payment as accepted without
	// capturing funds.
	ConfirmCOD(ctx context.Context, id int64) (Payment, error)
	Refund(ctx context.Context, id int64) (Payment, error)
}

// InMemoryRepository approves every capture. Tests that need a decline
// flip Decline.
type InMemoryRepository struct {
	mu      sync.Mutex
	storage map[int64]Payment
	nextID  int64

	Decline bool
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{storage: make(map[int64]Payment), nextID: 1}
}

func (r *InMemoryRepository) Create(ctx context.Context, req CreateRequest) (Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p := Payment{
		ID:      r.nextID,
		OrderID: req.OrderID,
		UserID:  req.UserID,
		Amount:  req.Amount,
		Method:  req.Method,
		Status:  StatusPending,
	}
	r.nextID++
	r.storage[p.ID] = p
	return p, nil
}

func (r *InMemoryRepository) GetByID(ctx context.Context, id int64) (Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.storage[id]
	if !ok {
		return Payment{}, ErrNotFound
	}
	return p, nil
}

func (r *InMemoryRepository) GetByOrder(ctx context.Context, orderID int64) (Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.storage {
		if p.OrderID == orderID {
			return p, nil
		}
	}
	return Payment{}, ErrNotFound
}

func (r *InMemoryRepository) Process(ctx context.Context, id int64) (Payment, error) {
	return r.settle(id, func(p *Payment) error {
		if r.Decline {
			p.Status = StatusFailed
			return ErrDeclined
		}
		p.Status = StatusCompleted
		p.TransactionID = "TXN-" + uuid.NewString()
		return nil
	})
}

func (r *InMemoryRepository) ConfirmCOD(ctx context.Context, id int64) (Payment, error) {
	return r.settle(id, func(p *Payment) error {
		if p.Method != MethodCOD {
			return fmt.Errorf("payment %d is not cash on delivery", p.ID)
		}
		p.Status = StatusCompleted
		return nil
	})
}

func (r *InMemoryRepository) Refund(ctx context.Context, id int64) (Payment, error) {
	return r.settle(id, func(p *Payment) error {
		if p.Status != StatusCompleted {
			return ErrNotRefundable
		}
		p.Status = StatusRefunded
		return nil
	})
}

func (r *InMemoryRepository) settle(id int64, apply func(*Payment) error) (Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.storage[id]
	if !ok {
		return Payment{}, ErrNotFound
	}
	err := apply(&p)
	r.storage[id] = p
	if err != nil {
		return Payment{}, err
	}
	return p, nil
}
