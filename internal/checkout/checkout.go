package checkout

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/storelane/storefront-gateway/internal/cart"
	"github.com/storelane/storefront-gateway/internal/mail"
	"github.com/storelane/storefront-gateway/internal/order"
	"github.com/storelane/storefront-gateway/internal/payment"
	"github.com/storelane/storefront-gateway/internal/pricing"
)

var (
	ErrEmptyCart     = errors.New("cart is empty")
	ErrInvalidMethod = errors.New("unsupported payment method")
	ErrPaymentFailed = errors.New("payment failed")
)

// OrderPlacer is the slice of the order service checkout drives:
// placing an order and, when payment fails, cancelling it again.
type OrderPlacer interface {
	Create(ctx context.Context, req order.CreateRequest) (order.Order, error)
	Cancel(ctx context.Context, id int64, reason string, cancelledBy int64) (order.Order, error)
}

// Input is everything checkout needs beyond the cart itself.
type Input struct {
	SessionKey      string
	UserID          int64
	Email           string
	ShippingAddress order.ShippingAddress
	PaymentMethod   string
	Notes           string
}

// Result is returned to the customer after a successful checkout.
type Result struct {
	Reference string          `json:"reference"`
	Order     order.Order     `json:"order"`
	Payment   payment.Payment `json:"payment"`
}

// Service runs the checkout sequence: quote the cart, place the order,
// take payment, then clear the cart. If payment cannot be taken the
// freshly placed order is cancelled so no unpaid order survives.
type Service struct {
	carts    *cart.Store
	orders   OrderPlacer
	payments payment.Repository
	mailer   mail.Mailer
}

func NewService(carts *cart.Store, orders OrderPlacer, payments payment.Repository, mailer mail.Mailer) *Service {
	return &Service{carts: carts, orders: orders, payments: payments, mailer: mailer}
}

func (s *Service) Checkout(ctx context.Context, in Input) (Result, error) {
	if !payment.ValidMethod(in.PaymentMethod) {
		return Result{}, ErrInvalidMethod
	}
	lines := s.carts.Lines(in.SessionKey)
	if len(lines) == 0 {
		return Result{}, ErrEmptyCart
	}

	// Reference ties the log lines of one checkout attempt together.
	reference := uuid.NewString()

	items := make([]order.Item, len(lines))
	for i, l := range lines {
		items[i] = order.Item{
			ProductID:  l.ProductID,
			Name:       l.Name,
			Quantity:   l.Quantity,
			UnitPrice:  l.Price,
			TotalPrice: l.Price * float64(l.Quantity),
			ImageURL:   l.ImageURL,
		}
	}
	quote := pricing.QuoteSubtotal(s.carts.Subtotal(in.SessionKey))

	ord, err := s.orders.Create(ctx, order.CreateRequest{
		UserID:          in.UserID,
		CustomerName:    in.ShippingAddress.FirstName + " " + in.ShippingAddress.LastName,
		Email:           in.Email,
		Items:           items,
		ShippingAddress: in.ShippingAddress,
		PaymentMethod:   in.PaymentMethod,
		ShippingFee:     quote.Shipping,
		Notes:           in.Notes,
	})
	if err != nil {
		return Result{}, fmt.Errorf("place order: %w", err)
	}
	log.Printf("checkout %s: placed order %s", reference, ord.OrderNumber)

	pay, err := s.takePayment(ctx, ord, in.PaymentMethod)
	if err != nil {
		// The order must not stand unpaid. Cancel it and keep the cart
		// so the customer can retry.
		if _, cancelErr := s.orders.Cancel(ctx, ord.ID, "payment failed", in.UserID); cancelErr != nil {
			log.Printf("checkout %s: cancel after payment failure also failed: %v", reference, cancelErr)
		}
		return Result{}, fmt.Errorf("%w: %v", ErrPaymentFailed, err)
	}

	s.carts.Clear(in.SessionKey)

	if err := s.mailer.SendOrderConfirmation(ctx, ord); err != nil {
		log.Printf("checkout %s: confirmation email failed: %v", reference, err)
	}

	return Result{Reference: reference, Order: ord, Payment: pay}, nil
}

func (s *Service) takePayment(ctx context.Context, ord order.Order, method string) (payment.Payment, error) {
	pay, err := s.payments.Create(ctx, payment.CreateRequest{
		OrderID: ord.ID,
		UserID:  ord.UserID,
		Amount:  ord.TotalAmount,
		Method:  method,
	})
	if err != nil {
		return payment.Payment{}, err
	}
	if method == payment.MethodCOD {
		return s.payments.ConfirmCOD(ctx, pay.ID)
	}
	return s.payments.Process(ctx, pay.ID)
}
