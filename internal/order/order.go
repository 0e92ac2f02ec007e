package order

// Status is the order lifecycle state as reported by the commerce
// backend. The gateway validates transitions before asking the
// backend to perform them, but the backend stays the authority: after
// a successful update the gateway refetches and displays whatever the
// backend returned.
type Status string

const (
	StatusPending    Status = "PENDING"
	StatusConfirmed  Status = "CONFIRMED"
	StatusProcessing Status = "PROCESSING"
	StatusShipped    Status = "SHIPPED"
	StatusDelivered  Status = "DELIVERED"
	StatusCancelled  Status = "CANCELLED"
	StatusReturned   Status = "RETURNED"
	StatusRefunded   Status = "REFUNDED"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusProcessing, StatusShipped,
		StatusDelivered, StatusCancelled, StatusReturned, StatusRefunded:
		return true
	}
	return false
}

// CanTransitionTo reports whether the backend accepts a move from s to
// next. Checking here lets the admin UI fail fast instead of
// round-tripping an operator mistake.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusPending:
		return next == StatusConfirmed || next == StatusCancelled
	case StatusConfirmed:
		return next == StatusProcessing || next == StatusCancelled
	case StatusProcessing:
		return next == StatusShipped || next == StatusCancelled
	case StatusShipped:
		return next == StatusDelivered || next == StatusReturned
	case StatusDelivered:
		return next == StatusReturned
	}
	// CANCELLED, RETURNED and REFUNDED are terminal
	return false
}

// CanCancel reports whether a customer may still cancel the order.
func (s Status) CanCancel() bool {
	return s == StatusPending || s == StatusConfirmed
}

// Terminal reports whether no further transition is possible.
func (s Status) Terminal() bool {
	return s == StatusCancelled || s == StatusReturned || s == StatusRefunded
}

// Item is one purchased product line, snapshotted at order time.
type Item struct {
	ProductID  int64   `json:"productId"`
	Name       string  `json:"productName"`
	SKU        string  `json:"sku,omitempty"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unitPrice"`
	TotalPrice float64 `json:"totalPrice"`
	ImageURL   string  `json:"productImageUrl,omitempty"`
}

// ShippingAddress is the delivery destination captured at checkout.
type ShippingAddress struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	AddressLine string `json:"addressLine1"`
	City        string `json:"city"`
	State       string `json:"state"`
	ZipCode     string `json:"zipCode"`
	Country     string `json:"country"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
}

// Order is a purchase as the backend reports it. The gateway never
// mutates one locally; it requests transitions and refetches.
type Order struct {
	ID                 int64           `json:"id"`
	OrderNumber        string          `json:"orderNumber"`
	UserID             int64           `json:"userId"`
	CustomerName       string          `json:"customerName,omitempty"`
	Email              string          `json:"customerEmail"`
	Items              []Item          `json:"items"`
	ShippingAddress    ShippingAddress `json:"shippingAddress"`
	Subtotal           float64         `json:"subtotal"`
	Tax                float64         `json:"taxAmount"`
	ShippingCost       float64         `json:"shippingFee"`
	TotalAmount        float64         `json:"totalAmount"`
	Status             Status          `json:"status"`
	PaymentStatus      string          `json:"paymentStatus,omitempty"`
	PaymentMethod      string          `json:"paymentMethod,omitempty"`
	Notes              string          `json:"notes,omitempty"`
	CancellationReason string          `json:"cancellationReason,omitempty"`
	CreatedAt          string          `json:"createdAt,omitempty"`
	UpdatedAt          string          `json:"updatedAt,omitempty"`
}

// HistoryEntry is one append-only record of a status transition,
// rendered chronologically as the tracking timeline.
type HistoryEntry struct {
	OrderID        int64  `json:"orderId"`
	PreviousStatus Status `json:"previousStatus,omitempty"`
	NewStatus      Status `json:"newStatus"`
	Remarks        string `json:"remarks,omitempty"`
	ChangedBy      int64  `json:"changedBy,omitempty"`
	ChangedAt      string `json:"changedAt"`
}

// CreateRequest is the payload sent to the backend to place an order.
type CreateRequest struct {
	UserID          int64           `json:"userId"`
	CustomerName    string          `json:"customerName"`
	Email           string          `json:"customerEmail"`
	Items           []Item          `json:"items"`
	ShippingAddress ShippingAddress `json:"shippingAddress"`
	PaymentMethod   string          `json:"paymentMethod,omitempty"`
	ShippingFee     float64         `json:"shippingFee"`
	Notes           string          `json:"notes,omitempty"`
}
