package catalog

import (
	"sort"
	"strings"
)

// The products page fetches a working set (search, category or brand)
// and refines it locally: price-range filter first, then one sort.
// The backend is not involved in this step.

// Sort keys accepted by the products listing.
const (
	SortNameAsc   = "name"
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
	SortNewest    = "newest"
)

// FilterPriceRange keeps products with min <= price <= max, inclusive
// on both ends. A negative max means "no upper bound".
func FilterPriceRange(products []Product, min, max float64) []Product {
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if p.Price < min {
			continue
		}
		if max >= 0 && p.Price > max {
			continue
		}
		out = append(out, p)
	}
	return out
}

// SortProducts orders products by the given key. Unknown keys leave
// the slice untouched. Sorting is stable so equal elements keep their
// fetched order.
func SortProducts(products []Product, key string) {
	switch key {
	case SortNameAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return strings.ToLower(products[i].Name) < strings.ToLower(products[j].Name)
		})
	case SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price < products[j].Price
		})
	case SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price > products[j].Price
		})
	case SortNewest:
		// createdAt is RFC 3339, so lexicographic order is chronological
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].CreatedAt > products[j].CreatedAt
		})
	}
}
