package checkout

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/storelane/storefront-gateway/internal/backend"
	"github.com/storelane/storefront-gateway/internal/cart"
	"github.com/storelane/storefront-gateway/internal/order"
	"github.com/storelane/storefront-gateway/internal/user"
)

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Post("/api/v1/checkout", h.checkout)
}

type checkoutRequest struct {
	ShippingAddress order.ShippingAddress `json:"shippingAddress"`
	PaymentMethod   string                `json:"paymentMethod"`
	Email           string                `json:"email"`
	Notes           string                `json:"notes"`
}

func (h *Handler) checkout(c *fiber.Ctx) error {
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	payload := new(checkoutRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if fields := validateCheckout(payload); len(fields) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "validation failed", "errors": fields})
	}

	result, err := h.service.Checkout(c.UserContext(), Input{
		SessionKey:      cart.SessionKey(c),
		UserID:          userID,
		Email:           payload.Email,
		ShippingAddress: payload.ShippingAddress,
		PaymentMethod:   payload.PaymentMethod,
		Notes:           payload.Notes,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(result)
}

func validateCheckout(payload *checkoutRequest) map[string]string {
	fields := map[string]string{}
	addr := payload.ShippingAddress
	if strings.TrimSpace(addr.FirstName) == "" {
		fields["shippingAddress.firstName"] = "first name is required"
	}
	if strings.TrimSpace(addr.AddressLine) == "" {
		fields["shippingAddress.addressLine1"] = "address is required"
	}
	if strings.TrimSpace(addr.City) == "" {
		fields["shippingAddress.city"] = "city is required"
	}
	if strings.TrimSpace(addr.ZipCode) == "" {
		fields["shippingAddress.zipCode"] = "zip code is required"
	}
	if !strings.Contains(payload.Email, "@") {
		fields["email"] = "a valid email is required"
	}
	if payload.PaymentMethod == "" {
		fields["paymentMethod"] = "payment method is required"
	}
	return fields
}

func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, ErrEmptyCart):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "cart is empty"})
	case errors.Is(err, ErrInvalidMethod):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	case errors.Is(err, ErrPaymentFailed):
		return c.Status(fiber.StatusPaymentRequired).JSON(fiber.Map{"message": err.Error()})
	}
	if status := backend.StatusOf(err); status != 0 {
		return c.Status(status).JSON(fiber.Map{"message": err.Error()})
	}
	return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"message": err.Error()})
}
