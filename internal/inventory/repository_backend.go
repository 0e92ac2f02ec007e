package inventory

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/storelane/storefront-gateway/internal/backend"
)

// BackendRepository maps inventory operations onto the commerce
// backend's /api/inventory resource. Stock adjustments are expressed as
// action endpoints keyed by product id with a quantity query parameter.
type BackendRepository struct {
	client *backend.Client
}

func NewBackendRepository(client *backend.Client) *BackendRepository {
	return &BackendRepository{client: client}
}

func (r *BackendRepository) List(ctx context.Context) ([]Record, error) {
	var out []Record
	err := r.client.Get(ctx, "/api/inventory", nil, &out)
	return out, err
}

func (r *BackendRepository) GetByProduct(ctx context.Context, productID int64) (Record, error) {
	var out Record
	err := r.client.Get(ctx, "/api/inventory/product/"+strconv.FormatInt(productID, 10), nil, &out)
	if backend.IsNotFound(err) {
		return Record{}, ErrNotFound
	}
	return out, err
}

func (r *BackendRepository) ListLowStock(ctx context.Context) ([]Record, error) {
	var out []Record
	err := r.client.Get(ctx, "/api/inventory/low-stock", nil, &out)
	return out, err
}

func (r *BackendRepository) ListOutOfStock(ctx context.Context) ([]Record, error) {
	var out []Record
	err := r.client.Get(ctx, "/api/inventory/out-of-stock", nil, &out)
	return out, err
}

func (r *BackendRepository) CheckAvailability(ctx context.Context, productID int64, quantity int) (bool, error) {
	query := url.Values{}
	query.Set("productId", strconv.FormatInt(productID, 10))
	query.Set("quantity", strconv.Itoa(quantity))
	var out bool
	err := r.client.Get(ctx, "/api/inventory/check-availability", query, &out)
	if backend.IsNotFound(err) {
		return false, ErrNotFound
	}
	return out, err
}

func (r *BackendRepository) AddStock(ctx context.Context, productID int64, quantity int) (Record, error) {
	return r.adjust(ctx, productID, "add-stock", quantity)
}

func (r *BackendRepository) RemoveStock(ctx context.Context, productID int64, quantity int) (Record, error) {
	return r.adjust(ctx, productID, "remove-stock", quantity)
}

func (r *BackendRepository) Reserve(ctx context.Context, productID int64, quantity int) (Record, error) {
	return r.adjust(ctx, productID, "reserve", quantity)
}

func (r *BackendRepository) Release(ctx context.Context, productID int64, quantity int) (Record, error) {
	return r.adjust(ctx, productID, "release", quantity)
}

func (r *BackendRepository) adjust(ctx context.Context, productID int64, action string, quantity int) (Record, error) {
	query := url.Values{}
	query.Set("quantity", strconv.Itoa(quantity))
	path := "/api/inventory/product/" + strconv.FormatInt(productID, 10) + "/" + action
	var out Record
	err := r.client.Post(ctx, path, query, nil, &out)
	switch {
	case backend.IsNotFound(err):
		return Record{}, ErrNotFound
	case backend.StatusOf(err) == http.StatusConflict:
		return Record{}, ErrInsufficientStock
	}
	return out, err
}
