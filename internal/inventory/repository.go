package inventory

import (
	"context"
	"errors"
	"sync"
)

var (
	ErrNotFound          = errors.New("inventory record not found")
	ErrInsufficientStock = errors.New("insufficient stock")
)

type Repository interface {
	List(ctx context.Context) ([]Record, error)
	GetByProduct(ctx context.Context, productID int64) (Record, error)
	ListLowStock(ctx context.Context) ([]Record, error)
	ListOutOfStock(ctx context.Context) ([]Record, error)
	CheckAvailability(ctx context.Context, productID int64, quantity int) (bool, error)
	AddStock(ctx context.Context, productID int64, quantity int) (Record, error)
	RemoveStock(ctx context.Context, productID int64, quantity int) (Record, error)
	Reserve(ctx context.Context, productID int64, quantity int) (Record, error)
	Release(ctx context.Context, productID int64, quantity int) (Record, error)
}

type InMemoryRepository struct {
	mu      sync.RWMutex
	storage map[int64]Record
}

func NewInMemoryRepository(seed []Record) *InMemoryRepository {
	r := &InMemoryRepository{storage: make(map[int64]Record, len(seed))}
	for _, rec := range seed {
		r.storage[rec.ProductID] = rec
	}
	return r
}

func (r *InMemoryRepository) List(ctx context.Context) ([]Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Record, 0, len(r.storage))
	for _, rec := range r.storage {
		out = append(out, rec)
	}
	return out, nil
}

func (r *InMemoryRepository) GetByProduct(ctx context.Context, productID int64) (Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.storage[productID]
	if !ok {
		return Record{}, ErrNotFound
	}
	return rec, nil
}

func (r *InMemoryRepository) ListLowStock(ctx context.Context) ([]Record, error) {
	return r.filter(func(rec Record) bool { return rec.StockStatus() == StockStatusLow })
}

func (r *InMemoryRepository) ListOutOfStock(ctx context.Context) ([]Record, error) {
	return r.filter(func(rec Record) bool { return rec.StockStatus() == StockStatusOut })
}

func (r *InMemoryRepository) filter(keep func(Record) bool) ([]Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []Record
	for _, rec := range r.storage {
		if keep(rec) {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *InMemoryRepository) CheckAvailability(ctx context.Context, productID int64, quantity int) (bool, error) {
	rec, err := r.GetByProduct(ctx, productID)
	if err != nil {
		return false, err
	}
	return rec.AvailableQuantity >= quantity, nil
}

func (r *InMemoryRepository) AddStock(ctx context.Context, productID int64, quantity int) (Record, error) {
	return r.mutate(productID, func(rec *Record) error {
		rec.AvailableQuantity += quantity
		return nil
	})
}

func (r *InMemoryRepository) RemoveStock(ctx context.Context, productID int64, quantity int) (Record, error) {
	return r.mutate(productID, func(rec *Record) error {
		if rec.AvailableQuantity < quantity {
			return ErrInsufficientStock
		}
		rec.AvailableQuantity -= quantity
		return nil
	})
}

func (r *InMemoryRepository) Reserve(ctx context.Context, productID int64, quantity int) (Record, error) {
	return r.mutate(productID, func(rec *Record) error {
		if rec.AvailableQuantity < quantity {
			return ErrInsufficientStock
		}
		rec.AvailableQuantity -= quantity
		rec.ReservedQuantity += quantity
		return nil
	})
}

func (r *InMemoryRepository) Release(ctx context.Context, productID int64, quantity int) (Record, error) {
	return r.mutate(productID, func(rec *Record) error {
		if rec.ReservedQuantity < quantity {
			quantity = rec.ReservedQuantity
		}
		rec.ReservedQuantity -= quantity
		rec.AvailableQuantity += quantity
		return nil
	})
}

func (r *InMemoryRepository) mutate(productID int64, apply func(*Record) error) (Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.storage[productID]
	if !ok {
		return Record{}, ErrNotFound
	}
	if err := apply(&rec); err != nil {
		return Record{}, err
	}
	r.storage[productID] = rec
	return rec, nil
}
