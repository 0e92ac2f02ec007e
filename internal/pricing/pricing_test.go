package pricing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuoteSubtotal(t *testing.T) {
	cases := []struct {
		name     string
		subtotal float64
		tax      float64
		shipping float64
		total    float64
	}{
		{"below threshold", 40, 4.00, 10.00, 54.00},
		{"above threshold", 60, 6.00, 0, 66.00},
		{"two line scenario", 55, 5.50, 0, 60.50},
		{"exactly at threshold still ships flat", 50, 5.00, 10.00, 65.00},
		{"empty cart", 0, 0, 10.00, 10.00},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q := QuoteSubtotal(tc.subtotal)
			assert.InDelta(t, tc.tax, q.Tax, 1e-9)
			assert.InDelta(t, tc.shipping, q.Shipping, 1e-9)
			assert.InDelta(t, tc.total, q.Total, 1e-9)
			assert.Equal(t, tc.subtotal, q.Subtotal)
		})
	}
}

func TestQuoteIsInternallyConsistent(t *testing.T) {
	for subtotal := 0.0; subtotal < 200; subtotal += 7.33 {
		q := QuoteSubtotal(subtotal)
		if math.Abs(q.Subtotal+q.Tax+q.Shipping-q.Total) > 1e-9 {
			t.Fatalf("total does not equal the sum of its parts at subtotal %.2f: %+v", subtotal, q)
		}
	}
}
