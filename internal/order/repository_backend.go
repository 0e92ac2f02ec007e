package order

import (
	"context"
	"net/url"
	"strconv"

	"github.com/storelane/storefront-gateway/internal/backend"
)

// BackendRepository maps order operations onto the commerce backend's
// /api/orders and /api/order-status-history resources.
type BackendRepository struct {
	client *backend.Client
}

func NewBackendRepository(client *backend.Client) *BackendRepository {
	return &BackendRepository{client: client}
}

func (r *BackendRepository) Create(ctx context.Context, req CreateRequest) (Order, error) {
	var out Order
	err := r.client.Post(ctx, "/api/orders", nil, req, &out)
	return out, err
}

func (r *BackendRepository) GetByID(ctx context.Context, id int64) (Order, error) {
	var out Order
	err := r.client.Get(ctx, "/api/orders/"+strconv.FormatInt(id, 10), nil, &out)
	if backend.IsNotFound(err) {
		return Order{}, ErrNotFound
	}
	return out, err
}

func (r *BackendRepository) GetByNumber(ctx context.Context, number string) (Order, error) {
	var out Order
	err := r.client.Get(ctx, "/api/orders/order-number/"+url.PathEscape(number), nil, &out)
	if backend.IsNotFound(err) {
		return Order{}, ErrNotFound
	}
	return out, err
}

func (r *BackendRepository) List(ctx context.Context) ([]Order, error) {
	var out []Order
	err := r.client.Get(ctx, "/api/orders", nil, &out)
	return out, err
}

func (r *BackendRepository) ListByUser(ctx context.Context, userID int64) ([]Order, error) {
	var out []Order
	err := r.client.Get(ctx, "/api/orders/user/"+strconv.FormatInt(userID, 10), nil, &out)
	return out, err
}

func (r *BackendRepository) ListByStatus(ctx context.Context, status Status) ([]Order, error) {
	var out []Order
	err := r.client.Get(ctx, "/api/orders/status/"+url.PathEscape(string(status)), nil, &out)
	return out, err
}

func (r *BackendRepository) ListByEmail(ctx context.Context, email string) ([]Order, error) {
	var out []Order
	err := r.client.Get(ctx, "/api/orders/email/"+url.PathEscape(email), nil, &out)
	return out, err
}

type statusUpdatePayload struct {
	Status    Status `json:"status"`
	Remarks   string `json:"remarks,omitempty"`
	ChangedBy int64  `json:"changedBy,omitempty"`
}

func (r *BackendRepository) UpdateStatus(ctx context.Context, id int64, status Status, remarks string, changedBy int64) (Order, error) {
	payload := statusUpdatePayload{Status: status, Remarks: remarks, ChangedBy: changedBy}
	var out Order
	err := r.client.Patch(ctx, "/api/orders/"+strconv.FormatInt(id, 10)+"/status", nil, payload, &out)
	if backend.IsNotFound(err) {
		return Order{}, ErrNotFound
	}
	if backend.IsConflict(err) {
		return Order{}, ErrInvalidTransition
	}
	return out, err
}

type cancellationPayload struct {
	Reason      string `json:"reason"`
	CancelledBy int64  `json:"cancelledBy,omitempty"`
}

func (r *BackendRepository) Cancel(ctx context.Context, id int64, reason string, cancelledBy int64) (Order, error) {
	payload := cancellationPayload{Reason: reason, CancelledBy: cancelledBy}
	var out Order
	err := r.client.Post(ctx, "/api/orders/"+strconv.FormatInt(id, 10)+"/cancel", nil, payload, &out)
	if backend.IsNotFound(err) {
		return Order{}, ErrNotFound
	}
	if backend.IsConflict(err) {
		return Order{}, ErrNotCancellable
	}
	return out, err
}

func (r *BackendRepository) History(ctx context.Context, orderID int64) ([]HistoryEntry, error) {
	var out []HistoryEntry
	err := r.client.Get(ctx, "/api/order-status-history/order/"+strconv.FormatInt(orderID, 10), nil, &out)
	if backend.IsNotFound(err) {
		return nil, ErrNotFound
	}
	return out, err
}
