package payment

import (
	"context"
	"net/http"
	"strconv"

	"github.com/storelane/storefront-gateway/internal/backend"
)

type BackendRepository struct {
	client *backend.Client
}

func NewBackendRepository(client *backend.Client) *BackendRepository {
	return &BackendRepository{client: client}
}

func (r *BackendRepository) Create(ctx context.Context, req CreateRequest) (Payment, error) {
	var out Payment
	err := r.client.Post(ctx, "/api/payments", nil, req, &out)
	return out, err
}

func (r *BackendRepository) GetByID(ctx context.Context, id int64) (Payment, error) {
	var out Payment
	err := r.client.Get(ctx, "/api/payments/"+strconv.FormatInt(id, 10), nil, &out)
	if backend.IsNotFound(err) {
		return Payment{}, ErrNotFound
	}
	return out, err
}

func (r *BackendRepository) GetByOrder(ctx context.Context, orderID int64) (Payment, error) {
	var out Payment
	err := r.client.Get(ctx, "/api/payments/order/"+strconv.FormatInt(orderID, 10), nil, &out)
	if backend.IsNotFound(err) {
		return Payment{}, ErrNotFound
	}
	return out, err
}

func (r *BackendRepository) Process(ctx context.Context, id int64) (Payment, error) {
	return r.post(ctx, id, "process")
}

func (r *BackendRepository) ConfirmCOD(ctx context.Context, id int64) (Payment, error) {
	return r.post(ctx, id, "confirm-cod")
}

func (r *BackendRepository) Refund(ctx context.Context, id int64) (Payment, error) {
	out, err := r.post(ctx, id, "refund")
	if backend.StatusOf(err) == http.StatusConflict {
		return Payment{}, ErrNotRefundable
	}
	return out, err
}

func (r *BackendRepository) post(ctx context.Context, id int64, action string) (Payment, error) {
	var out Payment
	err := r.client.Post(ctx, "/api/payments/"+strconv.FormatInt(id, 10)+"/"+action, nil, nil, &out)
	switch {
	case backend.IsNotFound(err):
		return Payment{}, ErrNotFound
	case backend.StatusOf(err) == http.StatusUnprocessableEntity:
		return Payment{}, ErrDeclined
	}
	return out, err
}
