package dashboard

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storelane/storefront-gateway/internal/catalog"
	"github.com/storelane/storefront-gateway/internal/inventory"
	"github.com/storelane/storefront-gateway/internal/order"
	"github.com/storelane/storefront-gateway/internal/user"
)

type stubOrders struct {
	orders []order.Order
	err    error
}

func (s stubOrders) List(context.Context) ([]order.Order, error) { return s.orders, s.err }

type stubProducts struct{ products []catalog.Product }

func (s stubProducts) List(context.Context) ([]catalog.Product, error) { return s.products, nil }

type stubUsers struct{ users []user.User }

func (s stubUsers) List(context.Context) ([]user.User, error) { return s.users, nil }

type stubInventory struct{ low, out []inventory.Record }

func (s stubInventory) ListLowStock(context.Context) ([]inventory.Record, error) {
	return s.low, nil
}

func (s stubInventory) ListOutOfStock(context.Context) ([]inventory.Record, error) {
	return s.out, nil
}

func TestCollectAggregatesSources(t *testing.T) {
	service := NewService(
		stubOrders{orders: []order.Order{
			{Status: order.StatusPending, TotalAmount: 60.5},
			{Status: order.StatusDelivered, TotalAmount: 100},
			{Status: order.StatusCancelled, TotalAmount: 40},
		}},
		stubProducts{products: []catalog.Product{
			{Status: catalog.StatusActive},
			{Status: catalog.StatusActive},
			{Status: catalog.StatusInactive},
		}},
		stubUsers{users: []user.User{
			{Role: user.RoleCustomer},
			{Role: user.RoleCustomer},
			{Role: user.RoleAdmin},
		}},
		stubInventory{
			low: []inventory.Record{{ProductID: 1, AvailableQuantity: 2, ReorderLevel: 5}},
			out: []inventory.Record{{ProductID: 2}},
		},
	)

	stats, err := service.Collect(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, stats.TotalOrders)
	assert.Equal(t, 1, stats.OrdersByStatus[order.StatusCancelled])
	// cancelled orders do not count toward revenue
	assert.InDelta(t, 160.5, stats.Revenue, 1e-9)
	assert.Equal(t, 3, stats.TotalProducts)
	assert.Equal(t, 2, stats.ActiveProducts)
	assert.Equal(t, 2, stats.TotalCustomers)
	assert.Equal(t, 1, stats.LowStockCount)
	assert.Equal(t, 1, stats.OutOfStockCount)
}

func TestCollectFailsWhenAnySourceFails(t *testing.T) {
	boom := errors.New("backend unavailable")
	service := NewService(
		stubOrders{err: boom},
		stubProducts{},
		stubUsers{},
		stubInventory{},
	)

	_, err := service.Collect(context.Background())
	assert.ErrorIs(t, err, boom)
}
