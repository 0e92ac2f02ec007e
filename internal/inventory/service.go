package inventory

import (
	"context"
	"errors"
)

var errNonPositiveQuantity = errors.New("quantity must be positive")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Record, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByProduct(ctx context.Context, productID int64) (Record, error) {
	return s.repo.GetByProduct(ctx, productID)
}

func (s *Service) ListLowStock(ctx context.Context) ([]Record, error) {
	return s.repo.ListLowStock(ctx)
}

func (s *Service) ListOutOfStock(ctx context.Context) ([]Record, error) {
	return s.repo.ListOutOfStock(ctx)
}

func (s *Service) CheckAvailability(ctx context.Context, productID int64, quantity int) (bool, error) {
	if quantity <= 0 {
		return false, errNonPositiveQuantity
	}
	return s.repo.CheckAvailability(ctx, productID, quantity)
}

func (s *Service) AddStock(ctx context.Context, productID int64, quantity int) (Record, error) {
	if quantity <= 0 {
		return Record{}, errNonPositiveQuantity
	}
	return s.repo.AddStock(ctx, productID, quantity)
}

func (s *Service) RemoveStock(ctx context.Context, productID int64, quantity int) (Record, error) {
	if quantity <= 0 {
		return Record{}, errNonPositiveQuantity
	}
	return s.repo.RemoveStock(ctx, productID, quantity)
}

func (s *Service) Reserve(ctx context.Context, productID int64, quantity int) (Record, error) {
	if quantity <= 0 {
		return Record{}, errNonPositiveQuantity
	}
	return s.repo.Reserve(ctx, productID, quantity)
}

func (s *Service) Release(ctx context.Context, productID int64, quantity int) (Record, error) {
	if quantity <= 0 {
		return Record{}, errNonPositiveQuantity
	}
	return s.repo.Release(ctx, productID, quantity)
}
