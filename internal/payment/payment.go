package payment

// Method is how the customer pays. Card and PayPal payments are
// captured by the backend's payment provider; cash on delivery is
// confirmed without capture.
const (
	MethodCreditCard = "CREDIT_CARD"
	MethodDebitCard  = "DEBIT_CARD"
	MethodPayPal     = "PAYPAL"
	MethodCOD        = "COD"
)

const (
	StatusPending   = "PENDING"
	StatusCompleted = "COMPLETED"
	StatusFailed    = "FAILED"
	StatusRefunded  = "REFUNDED"
)

// ValidMethod reports whether m names a supported payment method.
func ValidMethod(m string) bool {
	switch m {
	case MethodCreditCard, MethodDebitCard, MethodPayPal, MethodCOD:
		return true
	}
	return false
}

type Payment struct {
	ID            int64   `json:"id"`
	OrderID       int64   `json:"orderId"`
	UserID        int64   `json:"userId,omitempty"`
	Amount        float64 `json:"amount"`
	Method        string  `json:"paymentMethod"`
	Status        string  `json:"paymentStatus"`
	TransactionID string  `json:"transactionId,omitempty"`
	CreatedAt     string  `json:"createdAt,omitempty"`
	UpdatedAt     string  `json:"updatedAt,omitempty"`
}

type CreateRequest struct {
	OrderID int64   `json:"orderId"`
	UserID  int64   `json:"userId,omitempty"`
	Amount  float64 `json:"amount"`
	Method  string  `json:"paymentMethod"`
}
