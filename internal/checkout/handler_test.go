package checkout

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storelane/storefront-gateway/internal/cart"
	"github.com/storelane/storefront-gateway/internal/mail"
	"github.com/storelane/storefront-gateway/internal/order"
	"github.com/storelane/storefront-gateway/internal/payment"
)

// sessionToken stands in for the JWT middleware, which stores the
// parsed token in locals for the handlers.
func sessionToken(userID int64) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("user", jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"user_id": float64(userID),
			"email":   "jamie@example.com",
			"role":    "CUSTOMER",
		}))
		return c.Next()
	}
}

func newCheckoutApp(t *testing.T) (*fiber.App, *cart.Store) {
	t.Helper()
	carts := cart.NewStore()
	service := NewService(carts, order.NewService(order.NewInMemoryRepository()),
		payment.NewInMemoryRepository(), mail.NoopMailer{})

	app := fiber.New()
	app.Use(sessionToken(42))
	NewHandler(service).RegisterProtectedRoutes(app)
	return app, carts
}

const checkoutBody = `{
	"email": "jamie@example.com",
	"paymentMethod": "CREDIT_CARD",
	"shippingAddress": {
		"firstName": "Jamie", "lastName": "Lee",
		"addressLine1": "1 Main St", "city": "Portland",
		"zipCode": "97201", "country": "US"
	}
}`

func TestCheckoutWithEmptyCartIsBadRequest(t *testing.T) {
	app, _ := newCheckoutApp(t)

	req := httptest.NewRequest("POST", "/api/v1/checkout", strings.NewReader(checkoutBody))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestCheckoutSucceedsWithSessionCart(t *testing.T) {
	app, carts := newCheckoutApp(t)

	// seed the cart under the session the cookie will carry
	carts.Add("session-a", cart.Line{ProductID: 1, Name: "Walnut Desk", Price: 20, Quantity: 2})

	req := httptest.NewRequest("POST", "/api/v1/checkout", strings.NewReader(checkoutBody))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Cookie", cart.SessionCookie+"=session-a")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.True(t, carts.Empty("session-a"))
}

func TestCheckoutValidationErrors(t *testing.T) {
	app, carts := newCheckoutApp(t)
	carts.Add("session-b", cart.Line{ProductID: 1, Name: "Walnut Desk", Price: 20, Quantity: 1})

	req := httptest.NewRequest("POST", "/api/v1/checkout",
		strings.NewReader(`{"email":"not-an-email","paymentMethod":""}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Cookie", cart.SessionCookie+"=session-b")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
