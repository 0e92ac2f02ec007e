package catalog

// Product mirrors the commerce backend's product resource. JSON tags
// follow the camelCase convention used across the gateway API.
type Product struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	SKU           string  `json:"sku"`
	Description   string  `json:"description,omitempty"`
	Price         float64 `json:"price"`
	StockQuantity int     `json:"stockQuantity"`
	CategoryID    int64   `json:"categoryId,omitempty"`
	Brand         string  `json:"brand,omitempty"`
	Status        string  `json:"status"`
	ImageURL      string  `json:"imageUrl,omitempty"`
	Rating        float64 `json:"rating,omitempty"`
	ReviewCount   int     `json:"reviewCount,omitempty"`
	CreatedAt     string  `json:"createdAt,omitempty"`
	UpdatedAt     string  `json:"updatedAt,omitempty"`
}

const (
	StatusActive   = "ACTIVE"
	StatusInactive = "INACTIVE"
)

// ValidStatus reports whether s is a product status the backend accepts.
func ValidStatus(s string) bool {
	return s == StatusActive || s == StatusInactive
}
