package catalog

import (
	"context"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// BrowseQuery selects the working set for the products page and the
// refinement applied on top of it. Keyword, category and brand are
// mutually exclusive; the first one set wins.
type BrowseQuery struct {
	Keyword    string
	CategoryID int64
	Brand      string
	MinPrice   float64
	MaxPrice   float64 // negative means no upper bound
	Sort       string
}

// Browse fetches the working set from the backend and refines it
// locally: price-range filter first, then sort.
func (s *Service) Browse(ctx context.Context, q BrowseQuery) ([]Product, error) {
	var (
		products []Product
		err      error
	)
	switch {
	case q.Keyword != "":
		products, err = s.repo.Search(ctx, q.Keyword)
	case q.CategoryID != 0:
		products, err = s.repo.ListByCategory(ctx, q.CategoryID)
	case q.Brand != "":
		products, err = s.repo.ListByBrand(ctx, q.Brand)
	default:
		products, err = s.repo.List(ctx)
	}
	if err != nil {
		return nil, err
	}

	products = FilterPriceRange(products, q.MinPrice, q.MaxPrice)
	SortProducts(products, q.Sort)
	return products, nil
}

func (s *Service) List(ctx context.Context) ([]Product, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id int64) (Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetBySKU(ctx context.Context, sku string) (Product, error) {
	return s.repo.GetBySKU(ctx, sku)
}

func (s *Service) ListByStatus(ctx context.Context, status string) ([]Product, error) {
	return s.repo.ListByStatus(ctx, status)
}

func (s *Service) ListByPriceRange(ctx context.Context, min, max float64) ([]Product, error) {
	return s.repo.ListByPriceRange(ctx, min, max)
}

func (s *Service) Featured(ctx context.Context) ([]Product, error) {
	return s.repo.Featured(ctx)
}

func (s *Service) BestSellers(ctx context.Context) ([]Product, error) {
	return s.repo.BestSellers(ctx)
}

func (s *Service) NewArrivals(ctx context.Context) ([]Product, error) {
	return s.repo.NewArrivals(ctx)
}

func (s *Service) Create(ctx context.Context, p Product) (Product, error) {
	return s.repo.Create(ctx, p)
}

func (s *Service) Update(ctx context.Context, id int64, p Product) (Product, error) {
	return s.repo.Update(ctx, id, p)
}

func (s *Service) UpdateStatus(ctx context.Context, id int64, status string) (Product, error) {
	return s.repo.UpdateStatus(ctx, id, status)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
