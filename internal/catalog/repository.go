package catalog

import (
	"context"
	"errors"
	"strings"
	"sync"
)

var ErrNotFound = errors.New("product not found")

// Repository is the product data access contract. The production
// implementation talks to the commerce backend over HTTP; the
// in-memory one serves tests.
type Repository interface {
	List(ctx context.Context) ([]Product, error)
	GetByID(ctx context.Context, id int64) (Product, error)
	GetBySKU(ctx context.Context, sku string) (Product, error)
	Search(ctx context.Context, keyword string) ([]Product, error)
	ListByCategory(ctx context.Context, categoryID int64) ([]Product, error)
	ListByBrand(ctx context.Context, brand string) ([]Product, error)
	ListByStatus(ctx context.Context, status string) ([]Product, error)
	ListByPriceRange(ctx context.Context, min, max float64) ([]Product, error)
	Featured(ctx context.Context) ([]Product, error)
	BestSellers(ctx context.Context) ([]Product, error)
	NewArrivals(ctx context.Context) ([]Product, error)
	Create(ctx context.Context, p Product) (Product, error)
	Update(ctx context.Context, id int64, p Product) (Product, error)
	UpdateStatus(ctx context.Context, id int64, status string) (Product, error)
	Delete(ctx context.Context, id int64) error
}

// InMemoryRepository is a simple in-memory implementation useful for
// tests and local development without a backend.
type InMemoryRepository struct {
	mu      sync.RWMutex
	storage []Product
	nextID  int64
}

func NewInMemoryRepository(seed []Product) *InMemoryRepository {
	r := &InMemoryRepository{
		storage: make([]Product, 0, len(seed)),
		nextID:  1,
	}
	var maxID int64
	for _, p := range seed {
		r.storage = append(r.storage, p)
		if p.ID > maxID {
			maxID = p.ID
		}
	}
	r.nextID = maxID + 1
	return r
}

func (r *InMemoryRepository) List(ctx context.Context) ([]Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Product, len(r.storage))
	copy(out, r.storage)
	return out, nil
}

func (r *InMemoryRepository) GetByID(ctx context.Context, id int64) (Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.storage {
		if p.ID == id {
			return p, nil
		}
	}
	return Product{}, ErrNotFound
}

func (r *InMemoryRepository) GetBySKU(ctx context.Context, sku string) (Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.storage {
		if p.SKU == sku {
			return p, nil
		}
	}
	return Product{}, ErrNotFound
}

func (r *InMemoryRepository) Search(ctx context.Context, keyword string) ([]Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	kw := strings.ToLower(keyword)
	out := []Product{}
	for _, p := range r.storage {
		if strings.Contains(strings.ToLower(p.Name), kw) || strings.Contains(strings.ToLower(p.Description), kw) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *InMemoryRepository) ListByCategory(ctx context.Context, categoryID int64) ([]Product, error) {
	return r.filter(func(p Product) bool { return p.CategoryID == categoryID })
}

func (r *InMemoryRepository) ListByBrand(ctx context.Context, brand string) ([]Product, error) {
	return r.filter(func(p Product) bool { return strings.EqualFold(p.Brand, brand) })
}

func (r *InMemoryRepository) ListByStatus(ctx context.Context, status string) ([]Product, error) {
	return r.filter(func(p Product) bool { return p.Status == status })
}

func (r *InMemoryRepository) ListByPriceRange(ctx context.Context, min, max float64) ([]Product, error) {
	return r.filter(func(p Product) bool { return p.Price >= min && p.Price <= max })
}

func (r *InMemoryRepository) Featured(ctx context.Context) ([]Product, error) {
	return r.filter(func(p Product) bool { return p.Rating >= 4.5 })
}

func (r *InMemoryRepository) BestSellers(ctx context.Context) ([]Product, error) {
	return r.filter(func(p Product) bool { return p.ReviewCount >= 10 })
}

func (r *InMemoryRepository) NewArrivals(ctx context.Context) ([]Product, error) {
	out, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	SortProducts(out, SortNewest)
	return out, nil
}

func (r *InMemoryRepository) filter(keep func(Product) bool) ([]Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []Product{}
	for _, p := range r.storage {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *InMemoryRepository) Create(ctx context.Context, p Product) (Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p.ID == 0 {
		p.ID = r.nextID
		r.nextID++
	}
	r.storage = append(r.storage, p)
	return p, nil
}

func (r *InMemoryRepository) Update(ctx context.Context, id int64, p Product) (Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.storage {
		if r.storage[i].ID == id {
			p.ID = id
			r.storage[i] = p
			return p, nil
		}
	}
	return Product{}, ErrNotFound
}

func (r *InMemoryRepository) UpdateStatus(ctx context.Context, id int64, status string) (Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.storage {
		if r.storage[i].ID == id {
			r.storage[i].Status = status
			return r.storage[i], nil
		}
	}
	return Product{}, ErrNotFound
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
