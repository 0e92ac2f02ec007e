package inventory

// Record is the stock position of one product as the backend reports
// it. AvailableQuantity is already the net sellable figure;
// reservations are tracked separately and never subtracted again.
type Record struct {
	ID                int64  `json:"id"`
	ProductID         int64  `json:"productId"`
	SKU               string `json:"sku,omitempty"`
	AvailableQuantity int    `json:"availableQuantity"`
	ReservedQuantity  int    `json:"reservedQuantity"`
	ReorderLevel      int    `json:"reorderLevel"`
	WarehouseCode     string `json:"warehouseCode,omitempty"`
	UpdatedAt         string `json:"updatedAt,omitempty"`
}

const (
	StockStatusIn  = "IN_STOCK"
	StockStatusLow = "LOW_STOCK"
	StockStatusOut = "OUT_OF_STOCK"
)

// StockStatus buckets the available quantity. The reorder level itself
// counts as low stock.
func (r Record) StockStatus() string {
	switch {
	case r.AvailableQuantity <= 0:
		return StockStatusOut
	case r.AvailableQuantity <= r.ReorderLevel:
		return StockStatusLow
	default:
		return StockStatusIn
	}
}
