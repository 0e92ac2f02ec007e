package cart

import (
	"context"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/storelane/storefront-gateway/internal/backend"
	"github.com/storelane/storefront-gateway/internal/catalog"
	"github.com/storelane/storefront-gateway/internal/pricing"
)

// SessionCookie identifies a shopping session. Carts live in the
// gateway and belong to a session, not an account, so browsing and
// adding to cart work before sign-in.
const SessionCookie = "cart_session"

const sessionTTL = 30 * 24 * time.Hour

// ProductSource is the slice of the catalog the cart needs when a line
// is added.
type ProductSource interface {
	GetByID(ctx context.Context, id int64) (catalog.Product, error)
}

type Handler struct {
	store    *Store
	products ProductSource
}

func NewHandler(store *Store, products ProductSource) *Handler {
	return &Handler{store: store, products: products}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/cart", h.getCart)
	app.Post("/api/v1/cart/items", h.addItem)
	app.Patch("/api/v1/cart/items/:productId<[0-9]+>", h.updateItem)
	app.Delete("/api/v1/cart/items/:productId<[0-9]+>", h.removeItem)
	app.Delete("/api/v1/cart", h.clearCart)
}

// SessionKey returns the cart session for the request, minting a new
// one when the cookie is missing. Exported for the checkout handler,
// which drains the same cart.
func SessionKey(c *fiber.Ctx) string {
	if key := c.Cookies(SessionCookie); key != "" {
		return key
	}
	key := uuid.NewString()
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    key,
		Expires:  time.Now().Add(sessionTTL),
		HTTPOnly: true,
		SameSite: "Lax",
	})
	return key
}

type cartView struct {
	Items []Line        `json:"items"`
	Count int           `json:"count"`
	Quote pricing.Quote `json:"quote"`
}

func (h *Handler) view(key string) cartView {
	lines := h.store.Lines(key)
	return cartView{
		Items: lines,
		Count: h.store.Count(key),
		Quote: pricing.QuoteSubtotal(h.store.Subtotal(key)),
	}
}

func (h *Handler) getCart(c *fiber.Ctx) error {
	return c.JSON(h.view(SessionKey(c)))
}

type addItemRequest struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

func (h *Handler) addItem(c *fiber.Ctx) error {
	payload := new(addItemRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.Quantity <= 0 {
		payload.Quantity = 1
	}

	product, err := h.products.GetByID(c.UserContext(), payload.ProductID)
	if err != nil {
		if err == catalog.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "product not found"})
		}
		if status := backend.StatusOf(err); status != 0 {
			return c.Status(status).JSON(fiber.Map{"message": err.Error()})
		}
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"message": err.Error()})
	}
	if product.Status != catalog.StatusActive {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": "product is not available"})
	}
	if product.StockQuantity < payload.Quantity {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": "insufficient stock"})
	}

	key := SessionKey(c)
	h.store.Add(key, Line{
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		Quantity:  payload.Quantity,
		ImageURL:  product.ImageURL,
	})
	return c.Status(fiber.StatusCreated).JSON(h.view(key))
}

type updateItemRequest struct {
	Quantity int `json:"quantity"`
}

func (h *Handler) updateItem(c *fiber.Ctx) error {
	productID, err := strconv.ParseInt(c.Params("productId"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid product id"})
	}
	payload := new(updateItemRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	key := SessionKey(c)
	h.store.UpdateQuantity(key, productID, payload.Quantity)
	return c.JSON(h.view(key))
}

func (h *Handler) removeItem(c *fiber.Ctx) error {
	productID, err := strconv.ParseInt(c.Params("productId"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid product id"})
	}
	key := SessionKey(c)
	h.store.Remove(key, productID)
	return c.JSON(h.view(key))
}

func (h *Handler) clearCart(c *fiber.Ctx) error {
	key := SessionKey(c)
	h.store.Clear(key)
	return c.JSON(h.view(key))
}
