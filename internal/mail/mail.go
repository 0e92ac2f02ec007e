package mail

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/storelane/storefront-gateway/internal/order"
)

// Mailer sends transactional email. Checkout treats failures as
// non-fatal; an order stands whether or not its confirmation arrived.
type Mailer interface {
	SendOrderConfirmation(ctx context.Context, ord order.Order) error
}

type SendGridMailer struct {
	client    *sendgrid.Client
	fromName  string
	fromEmail string
}

func NewSendGridMailer(apiKey, fromName, fromEmail string) *SendGridMailer {
	return &SendGridMailer{
		client:    sendgrid.NewSendClient(apiKey),
		fromName:  fromName,
		fromEmail: fromEmail,
	}
}

func (m *SendGridMailer) SendOrderConfirmation(ctx context.Context, ord order.Order) error {
	from := sgmail.NewEmail(m.fromName, m.fromEmail)
	to := sgmail.NewEmail(ord.CustomerName, ord.Email)
	subject := fmt.Sprintf("Order %s confirmed", ord.OrderNumber)
	plain := confirmationText(ord)
	message := sgmail.NewSingleEmail(from, subject, to, plain, confirmationHTML(ord))

	resp, err := m.client.SendWithContext(ctx, message)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid returned status %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}

func confirmationText(ord order.Order) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Thanks for your order, %s!\n\n", ord.CustomerName)
	fmt.Fprintf(&b, "Order number: %s\n\n", ord.OrderNumber)
	for _, item := range ord.Items {
		fmt.Fprintf(&b, "  %d x %s  $%.2f\n", item.Quantity, item.Name, item.TotalPrice)
	}
	fmt.Fprintf(&b, "\nSubtotal: $%.2f\n", ord.Subtotal)
	fmt.Fprintf(&b, "Tax:      $%.2f\n", ord.Tax)
	fmt.Fprintf(&b, "Shipping: $%.2f\n", ord.ShippingCost)
	fmt.Fprintf(&b, "Total:    $%.2f\n", ord.TotalAmount)
	return b.String()
}

func confirmationHTML(ord order.Order) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<h2>Thanks for your order, %s!</h2>", ord.CustomerName)
	fmt.Fprintf(&b, "<p>Order number: <strong>%s</strong></p><ul>", ord.OrderNumber)
	for _, item := range ord.Items {
		fmt.Fprintf(&b, "<li>%d &times; %s &mdash; $%.2f</li>", item.Quantity, item.Name, item.TotalPrice)
	}
	fmt.Fprintf(&b, "</ul><p>Total: <strong>$%.2f</strong></p>", ord.TotalAmount)
	return b.String()
}

// NoopMailer logs instead of sending. Used when no SendGrid key is
// configured, and in tests.
type NoopMailer struct{}

func (NoopMailer) SendOrderConfirmation(_ context.Context, ord order.Order) error {
	log.Printf("mail disabled, skipping confirmation for order %s", ord.OrderNumber)
	return nil
}
