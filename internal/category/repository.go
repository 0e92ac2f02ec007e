package category

import (
	"context"
	"errors"
	"sync"
)

var ErrNotFound = errors.New("category not found")

type Repository interface {
	List(ctx context.Context) ([]Category, error)
	GetByID(ctx context.Context, id int64) (Category, error)
	GetBySlug(ctx context.Context, slug string) (Category, error)
	ListByStatus(ctx context.Context, status string) ([]Category, error)
	ListRoot(ctx context.Context) ([]Category, error)
	ListSubcategories(ctx context.Context, parentID int64) ([]Category, error)
	Create(ctx context.Context, cat Category) (Category, error)
	Update(ctx context.Context, id int64, cat Category) (Category, error)
	Delete(ctx context.Context, id int64) error
}

// InMemoryRepository backs tests and local development.
type InMemoryRepository struct {
	mu      sync.RWMutex
	storage []Category
	nextID  int64
}

func NewInMemoryRepository(seed []Category) *InMemoryRepository {
	r := &InMemoryRepository{storage: make([]Category, 0, len(seed)), nextID: 1}
	var maxID int64
	for _, cat := range seed {
		r.storage = append(r.storage, cat)
		if cat.ID > maxID {
			maxID = cat.ID
		}
	}
	r.nextID = maxID + 1
	return r
}

func (r *InMemoryRepository) List(ctx context.Context) ([]Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Category, len(r.storage))
	copy(out, r.storage)
	return out, nil
}

func (r *InMemoryRepository) GetByID(ctx context.Context, id int64) (Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, cat := range r.storage {
		if cat.ID == id {
			return cat, nil
		}
	}
	return Category{}, ErrNotFound
}

func (r *InMemoryRepository) GetBySlug(ctx context.Context, slug string) (Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, cat := range r.storage {
		if cat.Slug == slug {
			return cat, nil
		}
	}
	return Category{}, ErrNotFound
}

func (r *InMemoryRepository) ListByStatus(ctx context.Context, status string) ([]Category, error) {
	return r.filter(func(cat Category) bool { return cat.Status == status })
}

func (r *InMemoryRepository) ListRoot(ctx context.Context) ([]Category, error) {
	return r.filter(func(cat Category) bool { return cat.ParentID == nil })
}

func (r *InMemoryRepository) ListSubcategories(ctx context.Context, parentID int64) ([]Category, error) {
	return r.filter(func(cat Category) bool { return cat.ParentID != nil && *cat.ParentID == parentID })
}

func (r *InMemoryRepository) filter(keep func(Category) bool) ([]Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []Category{}
	for _, cat := range r.storage {
		if keep(cat) {
			out = append(out, cat)
		}
	}
	return out, nil
}

func (r *InMemoryRepository) Create(ctx context.Context, cat Category) (Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if cat.ID == 0 {
		cat.ID = r.nextID
		r.nextID++
	}
	r.storage = append(r.storage, cat)
	return cat, nil
}

func (r *InMemoryRepository) Update(ctx context.Context, id int64, cat Category) (Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.storage {
		if r.storage[i].ID == id {
			cat.ID = id
			r.storage[i] = cat
			return cat, nil
		}
	}
	return Category{}, ErrNotFound
}

func (r *InMemoryRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.storage {
		if r.storage[i].ID == id {
			r.storage = append(r.storage[:i], r.storage[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
