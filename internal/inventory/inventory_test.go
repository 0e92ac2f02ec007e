package inventory

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordDecodesBackendPayload(t *testing.T) {
	payload := `{"id":1,"productId":7,"sku":"DESK-001","availableQuantity":25,"reservedQuantity":3,"reorderLevel":10}`

	var rec Record
	require.NoError(t, json.Unmarshal([]byte(payload), &rec))

	assert.Equal(t, "DESK-001", rec.SKU)
	assert.Equal(t, 25, rec.AvailableQuantity)
	assert.Equal(t, 3, rec.ReservedQuantity)
	assert.Equal(t, StockStatusIn, rec.StockStatus())
}

func TestStockStatusBuckets(t *testing.T) {
	cases := []struct {
		name   string
		record Record
		want   string
	}{
		{"well stocked", Record{AvailableQuantity: 100, ReorderLevel: 10}, StockStatusIn},
		{"just above reorder level", Record{AvailableQuantity: 11, ReorderLevel: 10}, StockStatusIn},
		{"exactly at reorder level", Record{AvailableQuantity: 10, ReorderLevel: 10}, StockStatusLow},
		{"below reorder level", Record{AvailableQuantity: 3, ReorderLevel: 10}, StockStatusLow},
		{"nothing available", Record{AvailableQuantity: 0, ReorderLevel: 10}, StockStatusOut},
		{"reservations do not count as available", Record{AvailableQuantity: 0, ReservedQuantity: 5, ReorderLevel: 2}, StockStatusOut},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.record.StockStatus())
		})
	}
}

func TestReserveAndRelease(t *testing.T) {
	repo := NewInMemoryRepository([]Record{
		{ID: 1, ProductID: 7, AvailableQuantity: 10, ReorderLevel: 2},
	})
	ctx := context.Background()

	rec, err := repo.Reserve(ctx, 7, 4)
	require.NoError(t, err)
	assert.Equal(t, 6, rec.AvailableQuantity)
	assert.Equal(t, 4, rec.ReservedQuantity)

	_, err = repo.Reserve(ctx, 7, 7)
	assert.ErrorIs(t, err, ErrInsufficientStock)

	// releasing more than reserved clamps instead of going negative
	rec, err = repo.Release(ctx, 7, 100)
	require.NoError(t, err)
	assert.Equal(t, 0, rec.ReservedQuantity)
	assert.Equal(t, 10, rec.AvailableQuantity)
}

func TestRemoveStockGuardsAvailable(t *testing.T) {
	repo := NewInMemoryRepository([]Record{
		{ID: 1, ProductID: 7, AvailableQuantity: 5, ReorderLevel: 2},
	})
	ctx := context.Background()

	_, err := repo.RemoveStock(ctx, 7, 6)
	assert.ErrorIs(t, err, ErrInsufficientStock)

	rec, err := repo.RemoveStock(ctx, 7, 5)
	require.NoError(t, err)
	assert.Equal(t, StockStatusOut, rec.StockStatus())
}

func TestCheckAvailabilityUsesNetQuantity(t *testing.T) {
	repo := NewInMemoryRepository([]Record{
		{ID: 1, ProductID: 7, AvailableQuantity: 2, ReservedQuantity: 8, ReorderLevel: 2},
	})
	service := NewService(repo)
	ctx := context.Background()

	ok, err := service.CheckAvailability(ctx, 7, 2)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = service.CheckAvailability(ctx, 7, 3)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = service.CheckAvailability(ctx, 7, 0)
	assert.Error(t, err)

	_, err = service.CheckAvailability(ctx, 99, 1)
	assert.ErrorIs(t, err, ErrNotFound)
}
