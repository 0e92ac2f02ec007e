package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() []Product {
	return []Product{
		{ID: 1, Name: "Desk Lamp", Price: 25, CreatedAt: "2024-03-01T10:00:00Z"},
		{ID: 2, Name: "aeropress", Price: 40, CreatedAt: "2024-05-12T09:30:00Z"},
		{ID: 3, Name: "Backpack", Price: 60, CreatedAt: "2024-01-20T15:45:00Z"},
		{ID: 4, Name: "Cable", Price: 10, CreatedAt: "2024-05-12T11:00:00Z"},
	}
}

func ids(products []Product) []int64 {
	out := make([]int64, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func TestFilterPriceRangeIsInclusiveOnBothEnds(t *testing.T) {
	got := FilterPriceRange(sample(), 10, 40)
	assert.Equal(t, []int64{1, 2, 4}, ids(got))

	// exact boundary products stay in
	exact := FilterPriceRange(sample(), 25, 25)
	require.Len(t, exact, 1)
	assert.Equal(t, int64(1), exact[0].ID)
}

func TestFilterPriceRangeNoUpperBound(t *testing.T) {
	got := FilterPriceRange(sample(), 30, -1)
	assert.Equal(t, []int64{2, 3}, ids(got))
}

func TestSortProducts(t *testing.T) {
	t.Run("name is case-insensitive lexicographic", func(t *testing.T) {
		products := sample()
		SortProducts(products, SortNameAsc)
		assert.Equal(t, []int64{2, 3, 4, 1}, ids(products))
	})

	t.Run("price ascending", func(t *testing.T) {
		products := sample()
		SortProducts(products, SortPriceAsc)
		assert.Equal(t, []int64{4, 1, 2, 3}, ids(products))
	})

	t.Run("price descending", func(t *testing.T) {
		products := sample()
		SortProducts(products, SortPriceDesc)
		assert.Equal(t, []int64{3, 2, 1, 4}, ids(products))
	})

	t.Run("newest first by creation timestamp", func(t *testing.T) {
		products := sample()
		SortProducts(products, SortNewest)
		assert.Equal(t, []int64{4, 2, 1, 3}, ids(products))
	})

	t.Run("unknown key keeps fetched order", func(t *testing.T) {
		products := sample()
		SortProducts(products, "rating")
		assert.Equal(t, []int64{1, 2, 3, 4}, ids(products))
	})
}
