package catalog

import (
	"context"
	"net/url"
	"strconv"

	"github.com/storelane/storefront-gateway/internal/backend"
)

// BackendRepository reads and writes products through the commerce
// backend's /api/products resource.
type BackendRepository struct {
	client *backend.Client
}

func NewBackendRepository(client *backend.Client) *BackendRepository {
	return &BackendRepository{client: client}
}

func (r *BackendRepository) List(ctx context.Context) ([]Product, error) {
	var out []Product
	err := r.client.Get(ctx, "/api/products", nil, &out)
	return out, err
}

func (r *BackendRepository) GetByID(ctx context.Context, id int64) (Product, error) {
	var out Product
	err := r.client.Get(ctx, "/api/products/"+strconv.FormatInt(id, 10), nil, &out)
	if backend.IsNotFound(err) {
		return Product{}, ErrNotFound
	}
	return out, err
}

func (r *BackendRepository) GetBySKU(ctx context.Context, sku string) (Product, error) {
	var out Product
	err := r.client.Get(ctx, "/api/products/sku/"+url.PathEscape(sku), nil, &out)
	if backend.IsNotFound(err) {
		return Product{}, ErrNotFound
	}
	return out, err
}

func (r *BackendRepository) Search(ctx context.Context, keyword string) ([]Product, error) {
	q := url.Values{}
	q.Set("keyword", keyword)
	var out []Product
	err := r.client.Get(ctx, "/api/products/search", q, &out)
	return out, err
}

func (r *BackendRepository) ListByCategory(ctx context.Context, categoryID int64) ([]Product, error) {
	var out []Product
	err := r.client.Get(ctx, "/api/products/category/"+strconv.FormatInt(categoryID, 10), nil, &out)
	return out, err
}

func (r *BackendRepository) ListByBrand(ctx context.Context, brand string) ([]Product, error) {
	var out []Product
	err := r.client.Get(ctx, "/api/products/brand/"+url.PathEscape(brand), nil, &out)
	return out, err
}

func (r *BackendRepository) ListByStatus(ctx context.Context, status string) ([]Product, error) {
	var out []Product
	err := r.client.Get(ctx, "/api/products/status/"+url.PathEscape(status), nil, &out)
	return out, err
}

func (r *BackendRepository) ListByPriceRange(ctx context.Context, min, max float64) ([]Product, error) {
	q := url.Values{}
	q.Set("minPrice", strconv.FormatFloat(min, 'f', -1, 64))
	q.Set("maxPrice", strconv.FormatFloat(max, 'f', -1, 64))
	var out []Product
	err := r.client.Get(ctx, "/api/products/price-range", q, &out)
	return out, err
}

func (r *BackendRepository) Featured(ctx context.Context) ([]Product, error) {
	var out []Product
	err := r.client.Get(ctx, "/api/products/featured", nil, &out)
	return out, err
}

func (r *BackendRepository) BestSellers(ctx context.Context) ([]Product, error) {
	var out []Product
	err := r.client.Get(ctx, "/api/products/best-sellers", nil, &out)
	return out, err
}

func (r *BackendRepository) NewArrivals(ctx context.Context) ([]Product, error) {
	var out []Product
	err := r.client.Get(ctx, "/api/products/new-arrivals", nil, &out)
	return out, err
}

func (r *BackendRepository) Create(ctx context.Context, p Product) (Product, error) {
	var out Product
	err := r.client.Post(ctx, "/api/products", nil, p, &out)
	return out, err
}

func (r *BackendRepository) Update(ctx context.Context, id int64, p Product) (Product, error) {
	var out Product
	err := r.client.Put(ctx, "/api/products/"+strconv.FormatInt(id, 10), p, &out)
	if backend.IsNotFound(err) {
		return Product{}, ErrNotFound
	}
	return out, err
}

func (r *BackendRepository) UpdateStatus(ctx context.Context, id int64, status string) (Product, error) {
	q := url.Values{}
	q.Set("status", status)
	var out Product
	err := r.client.Patch(ctx, "/api/products/"+strconv.FormatInt(id, 10)+"/status", q, nil, &out)
	if backend.IsNotFound(err) {
		return Product{}, ErrNotFound
	}
	return out, err
}

func (r *BackendRepository) Delete(ctx context.Context, id int64) error {
	err := r.client.Delete(ctx, "/api/products/"+strconv.FormatInt(id, 10))
	if backend.IsNotFound(err) {
		return ErrNotFound
	}
	return err
}
