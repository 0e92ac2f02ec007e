package pricing

// The storefront used to recompute the checkout formula on every
// screen; this package is the single source of truth now. Any surface
// that displays a total must go through Quote.

const (
	// TaxRate is the flat tax applied to the cart subtotal.
	TaxRate = 0.10
	// FreeShippingThreshold is the subtotal above which shipping is free.
	FreeShippingThreshold = 50.0
	// FlatShippingFee applies whenever the subtotal does not clear the threshold.
	FlatShippingFee = 10.0
)

// Quote is the price breakdown for a cart subtotal.
type Quote struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Shipping float64 `json:"shipping"`
	Total    float64 `json:"total"`
}

// QuoteSubtotal derives tax, shipping and the grand total from a
// subtotal. Shipping is free strictly above the threshold; a subtotal
// of exactly 50 still pays the flat fee.
func QuoteSubtotal(subtotal float64) Quote {
	tax := subtotal * TaxRate
	shipping := FlatShippingFee
	if subtotal > FreeShippingThreshold {
		shipping = 0
	}
	return Quote{
		Subtotal: subtotal,
		Tax:      tax,
		Shipping: shipping,
		Total:    subtotal + tax + shipping,
	}
}
