package category

import (
	"context"
	"net/url"
	"strconv"

	"github.com/storelane/storefront-gateway/internal/backend"
)

// BackendRepository maps category operations onto the commerce
// backend's /api/categories resource.
type BackendRepository struct {
	client *backend.Client
}

func NewBackendRepository(client *backend.Client) *BackendRepository {
	return &BackendRepository{client: client}
}

func (r *BackendRepository) List(ctx context.Context) ([]Category, error) {
	var out []Category
	err := r.client.Get(ctx, "/api/categories", nil, &out)
	return out, err
}

func (r *BackendRepository) GetByID(ctx context.Context, id int64) (Category, error) {
	var out Category
	err := r.client.Get(ctx, "/api/categories/"+strconv.FormatInt(id, 10), nil, &out)
	if backend.IsNotFound(err) {
		return Category{}, ErrNotFound
	}
	return out, err
}

func (r *BackendRepository) GetBySlug(ctx context.Context, slug string) (Category, error) {
	var out Category
	err := r.client.Get(ctx, "/api/categories/slug/"+url.PathEscape(slug), nil, &out)
	if backend.IsNotFound(err) {
		return Category{}, ErrNotFound
	}
	return out, err
}

func (r *BackendRepository) ListByStatus(ctx context.Context, status string) ([]Category, error) {
	var out []Category
	err := r.client.Get(ctx, "/api/categories/status/"+url.PathEscape(status), nil, &out)
	return out, err
}

func (r *BackendRepository) ListRoot(ctx context.Context) ([]Category, error) {
	var out []Category
	err := r.client.Get(ctx, "/api/categories/root", nil, &out)
	return out, err
}

func (r *BackendRepository) ListSubcategories(ctx context.Context, parentID int64) ([]Category, error) {
	var out []Category
	err := r.client.Get(ctx, "/api/categories/"+strconv.FormatInt(parentID, 10)+"/subcategories", nil, &out)
	return out, err
}

func (r *BackendRepository) Create(ctx context.Context, cat Category) (Category, error) {
	var out Category
	err := r.client.Post(ctx, "/api/categories", nil, cat, &out)
	return out, err
}

func (r *BackendRepository) Update(ctx context.Context, id int64, cat Category) (Category, error) {
	var out Category
	err := r.client.Put(ctx, "/api/categories/"+strconv.FormatInt(id, 10), cat, &out)
	if backend.IsNotFound(err) {
		return Category{}, ErrNotFound
	}
	return out, err
}

func (r *BackendRepository) Delete(ctx context.Context, id int64) error {
	err := r.client.Delete(ctx, "/api/categories/"+strconv.FormatInt(id, 10))
	if backend.IsNotFound(err) {
		return ErrNotFound
	}
	return err
}
