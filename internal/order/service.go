package order

import (
	"context"
	"errors"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, req CreateRequest) (Order, error) {
	if req.UserID <= 0 {
		return Order{}, errors.New("invalid user")
	}
	if len(req.Items) == 0 {
		return Order{}, errors.New("order has no items")
	}
	return s.repo.Create(ctx, req)
}

func (s *Service) GetByID(ctx context.Context, id int64) (Order, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetByNumber(ctx context.Context, number string) (Order, error) {
	return s.repo.GetByNumber(ctx, number)
}

func (s *Service) List(ctx context.Context) ([]Order, error) {
	return s.repo.List(ctx)
}

func (s *Service) ListByUser(ctx context.Context, userID int64) ([]Order, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *Service) ListByStatus(ctx context.Context, status Status) ([]Order, error) {
	return s.repo.ListByStatus(ctx, status)
}

func (s *Service) ListByEmail(ctx context.Context, email string) ([]Order, error) {
	return s.repo.ListByEmail(ctx, email)
}

// UpdateStatus requests a transition. The current status is fetched
// first and checked against the lifecycle DAG so an illegal admin
// request never reaches the backend; the backend still enforces its
// own rules and the returned order is whatever it reports.
func (s *Service) UpdateStatus(ctx context.Context, id int64, next Status, remarks string, changedBy int64) (Order, error) {
	if !next.Valid() {
		return Order{}, ErrInvalidTransition
	}
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Order{}, err
	}
	if !current.Status.CanTransitionTo(next) {
		return Order{}, ErrInvalidTransition
	}
	return s.repo.UpdateStatus(ctx, id, next, remarks, changedBy)
}

// Cancel performs a customer cancellation. Only PENDING and CONFIRMED
// orders are cancellable; anything later is refused locally.
func (s *Service) Cancel(ctx context.Context, id int64, reason string, cancelledBy int64) (Order, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Order{}, err
	}
	if !current.Status.CanCancel() {
		return Order{}, ErrNotCancellable
	}
	return s.repo.Cancel(ctx, id, reason, cancelledBy)
}

func (s *Service) History(ctx context.Context, orderID int64) ([]HistoryEntry, error) {
	return s.repo.History(ctx, orderID)
}
