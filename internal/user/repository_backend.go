package user

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/storelane/storefront-gateway/internal/backend"
)

// BackendRepository maps user operations onto the commerce backend's
// /api/users resource. The backend stores the bcrypt hash the gateway
// produced at registration.
type BackendRepository struct {
	client *backend.Client
}

func NewBackendRepository(client *backend.Client) *BackendRepository {
	return &BackendRepository{client: client}
}

func (r *BackendRepository) List(ctx context.Context) ([]User, error) {
	var out []User
	err := r.client.Get(ctx, "/api/users", nil, &out)
	return out, err
}

func (r *BackendRepository) GetByID(ctx context.Context, id int64) (User, error) {
	var out User
	err := r.client.Get(ctx, "/api/users/"+strconv.FormatInt(id, 10), nil, &out)
	if backend.IsNotFound(err) {
		return User{}, ErrNotFound
	}
	return out, err
}

func (r *BackendRepository) GetByEmail(ctx context.Context, email string) (User, error) {
	var out User
	err := r.client.Get(ctx, "/api/users/email/"+url.PathEscape(email), nil, &out)
	if backend.IsNotFound(err) {
		return User{}, ErrNotFound
	}
	return out, err
}

func (r *BackendRepository) Create(ctx context.Context, u User) (User, error) {
	var out User
	err := r.client.Post(ctx, "/api/users", nil, u, &out)
	if backend.StatusOf(err) == http.StatusConflict {
		return User{}, ErrEmailExists
	}
	return out, err
}

func (r *BackendRepository) Update(ctx context.Context, id int64, u User) (User, error) {
	var out User
	err := r.client.Put(ctx, "/api/users/"+strconv.FormatInt(id, 10), u, &out)
	if backend.IsNotFound(err) {
		return User{}, ErrNotFound
	}
	return out, err
}

func (r *BackendRepository) Delete(ctx context.Context, id int64) error {
	err := r.client.Delete(ctx, "/api/users/"+strconv.FormatInt(id, 10))
	if backend.IsNotFound(err) {
		return ErrNotFound
	}
	return err
}
