package category

import "context"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Category, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id int64) (Category, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetBySlug(ctx context.Context, slug string) (Category, error) {
	return s.repo.GetBySlug(ctx, slug)
}

func (s *Service) ListByStatus(ctx context.Context, status string) ([]Category, error) {
	return s.repo.ListByStatus(ctx, status)
}

func (s *Service) ListRoot(ctx context.Context) ([]Category, error) {
	return s.repo.ListRoot(ctx)
}

func (s *Service) ListSubcategories(ctx context.Context, parentID int64) ([]Category, error) {
	return s.repo.ListSubcategories(ctx, parentID)
}

func (s *Service) Create(ctx context.Context, cat Category) (Category, error) {
	return s.repo.Create(ctx, cat)
}

func (s *Service) Update(ctx context.Context, id int64, cat Category) (Category, error) {
	return s.repo.Update(ctx, id, cat)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
