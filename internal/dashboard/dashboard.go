package dashboard

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/storelane/storefront-gateway/internal/catalog"
	"github.com/storelane/storefront-gateway/internal/inventory"
	"github.com/storelane/storefront-gateway/internal/order"
	"github.com/storelane/storefront-gateway/internal/user"
)

type OrderSource interface {
	List(ctx context.Context) ([]order.Order, error)
}

type ProductSource interface {
	List(ctx context.Context) ([]catalog.Product, error)
}

type UserSource interface {
	List(ctx context.Context) ([]user.User, error)
}

type InventorySource interface {
	ListLowStock(ctx context.Context) ([]inventory.Record, error)
	ListOutOfStock(ctx context.Context) ([]inventory.Record, error)
}

// Stats is the admin landing page summary.
type Stats struct {
	TotalOrders     int                  `json:"totalOrders"`
	OrdersByStatus  map[order.Status]int `json:"ordersByStatus"`
	Revenue         float64              `json:"revenue"`
	TotalProducts   int                  `json:"totalProducts"`
	ActiveProducts  int                  `json:"activeProducts"`
	TotalCustomers  int                  `json:"totalCustomers"`
	LowStockCount   int                  `json:"lowStockCount"`
	OutOfStockCount int                  `json:"outOfStockCount"`
	LowStock        []inventory.Record   `json:"lowStock"`
}

type Service struct {
	orders    OrderSource
	products  ProductSource
	users     UserSource
	inventory InventorySource
}

func NewService(orders OrderSource, products ProductSource, users UserSource, inv InventorySource) *Service {
	return &Service{orders: orders, products: products, users: users, inventory: inv}
}

// Collect gathers the four backend resources concurrently. One failing
// fetch fails the whole summary; a partially wrong dashboard is worse
// than an error.
func (s *Service) Collect(ctx context.Context) (Stats, error) {
	var (
		orders     []order.Order
		products   []catalog.Product
		users      []user.User
		lowStock   []inventory.Record
		outOfStock []inventory.Record
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		orders, err = s.orders.List(ctx)
		return err
	})
	g.Go(func() (err error) {
		products, err = s.products.List(ctx)
		return err
	})
	g.Go(func() (err error) {
		users, err = s.users.List(ctx)
		return err
	})
	g.Go(func() (err error) {
		lowStock, err = s.inventory.ListLowStock(ctx)
		return err
	})
	g.Go(func() (err error) {
		outOfStock, err = s.inventory.ListOutOfStock(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return Stats{}, err
	}

	stats := Stats{
		TotalOrders:     len(orders),
		OrdersByStatus:  make(map[order.Status]int),
		TotalProducts:   len(products),
		LowStockCount:   len(lowStock),
		OutOfStockCount: len(outOfStock),
		LowStock:        lowStock,
	}
	for _, ord := range orders {
		stats.OrdersByStatus[ord.Status]++
		if ord.Status != order.StatusCancelled && ord.Status != order.StatusRefunded {
			stats.Revenue += ord.TotalAmount
		}
	}
	for _, p := range products {
		if p.Status == catalog.StatusActive {
			stats.ActiveProducts++
		}
	}
	for _, u := range users {
		if !u.IsAdmin() {
			stats.TotalCustomers++
		}
	}
	return stats, nil
}
