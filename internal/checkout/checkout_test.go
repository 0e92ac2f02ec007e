package checkout

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storelane/storefront-gateway/internal/cart"
	"github.com/storelane/storefront-gateway/internal/mail"
	"github.com/storelane/storefront-gateway/internal/order"
	"github.com/storelane/storefront-gateway/internal/payment"
)

const session = "session-1"

func newCheckoutService(t *testing.T) (*Service, *cart.Store, *order.InMemoryRepository, *payment.InMemoryRepository) {
	t.Helper()
	carts := cart.NewStore()
	orders := order.NewInMemoryRepository()
	payments := payment.NewInMemoryRepository()
	service := NewService(carts, order.NewService(orders), payments, mail.NoopMailer{})
	return service, carts, orders, payments
}

func fillCart(carts *cart.Store) {
	carts.Add(session, cart.Line{ProductID: 1, Name: "Walnut Desk", Price: 20, Quantity: 2})
	carts.Add(session, cart.Line{ProductID: 2, Name: "Oak Shelf", Price: 15, Quantity: 1})
}

func testInput() Input {
	return Input{
		SessionKey: session,
		UserID:     42,
		Email:      "jamie@example.com",
		ShippingAddress: order.ShippingAddress{
			FirstName: "Jamie", LastName: "Lee",
			AddressLine: "1 Main St", City: "Portland", ZipCode: "97201", Country: "US",
		},
		PaymentMethod: payment.MethodCreditCard,
	}
}

func TestCheckoutPlacesOrderAndClearsCart(t *testing.T) {
	service, carts, _, _ := newCheckoutService(t)
	fillCart(carts)

	result, err := service.Checkout(context.Background(), testInput())
	require.NoError(t, err)

	assert.NotEmpty(t, result.Reference)
	assert.Equal(t, order.StatusPending, result.Order.Status)
	assert.Equal(t, "Jamie Lee", result.Order.CustomerName)
	require.Len(t, result.Order.Items, 2)

	// subtotal 55, tax 5.50, shipping free above the threshold
	assert.InDelta(t, 55.0, result.Order.Subtotal, 1e-9)
	assert.InDelta(t, 5.5, result.Order.Tax, 1e-9)
	assert.InDelta(t, 0.0, result.Order.ShippingCost, 1e-9)
	assert.InDelta(t, 60.5, result.Order.TotalAmount, 1e-9)

	assert.Equal(t, payment.StatusCompleted, result.Payment.Status)
	assert.InDelta(t, result.Order.TotalAmount, result.Payment.Amount, 1e-9)

	assert.True(t, carts.Empty(session), "cart should be cleared after checkout")
}

func TestCheckoutCODConfirmsWithoutCapture(t *testing.T) {
	service, carts, _, _ := newCheckoutService(t)
	fillCart(carts)

	in := testInput()
	in.PaymentMethod = payment.MethodCOD

	result, err := service.Checkout(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, payment.StatusCompleted, result.Payment.Status)
	assert.Empty(t, result.Payment.TransactionID, "cash on delivery has no capture transaction")
}

func TestCheckoutCancelsOrderWhenPaymentDeclined(t *testing.T) {
	service, carts, orders, payments := newCheckoutService(t)
	fillCart(carts)
	payments.Decline = true

	_, err := service.Checkout(context.Background(), testInput())
	require.ErrorIs(t, err, ErrPaymentFailed)

	placed, err := orders.List(context.Background())
	require.NoError(t, err)
	require.Len(t, placed, 1)
	assert.Equal(t, order.StatusCancelled, placed[0].Status,
		"the placed order must be cancelled when payment fails")

	assert.False(t, carts.Empty(session), "cart is kept so the customer can retry")
}

func TestCheckoutRejectsEmptyCartAndBadMethod(t *testing.T) {
	service, carts, _, _ := newCheckoutService(t)

	_, err := service.Checkout(context.Background(), testInput())
	assert.ErrorIs(t, err, ErrEmptyCart)

	fillCart(carts)
	in := testInput()
	in.PaymentMethod = "BARTER"
	_, err = service.Checkout(context.Background(), in)
	assert.ErrorIs(t, err, ErrInvalidMethod)
}
