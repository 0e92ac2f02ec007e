package wishlist

import (
	"context"
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/storelane/storefront-gateway/internal/catalog"
	"github.com/storelane/storefront-gateway/internal/user"
)

// ProductSource resolves saved ids into displayable products.
type ProductSource interface {
	GetByID(ctx context.Context, id int64) (catalog.Product, error)
}

// Handler keeps wishlist routing isolated from the user handler.
type Handler struct {
	store    *Store
	products ProductSource
}

func NewHandler(store *Store, products ProductSource) *Handler {
	return &Handler{store: store, products: products}
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Get("/api/v1/wishlist", h.getWishlist)
	app.Post("/api/v1/wishlist", h.addProduct)
	app.Delete("/api/v1/wishlist/:productId<[0-9]+>", h.removeProduct)
}

func (h *Handler) getWishlist(c *fiber.Ctx) error {
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	// Products that left the catalog since they were saved are skipped
	// rather than failing the whole list.
	products := make([]catalog.Product, 0)
	for _, id := range h.store.IDs(userID) {
		p, err := h.products.GetByID(c.UserContext(), id)
		if err != nil {
			if errors.Is(err, catalog.ErrNotFound) {
				continue
			}
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"message": err.Error()})
		}
		products = append(products, p)
	}
	return c.JSON(fiber.Map{"items": products, "count": len(products)})
}

type addRequest struct {
	ProductID int64 `json:"productId"`
}

func (h *Handler) addProduct(c *fiber.Ctx) error {
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	payload := new(addRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.ProductID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid productId"})
	}

	if _, err := h.products.GetByID(c.UserContext(), payload.ProductID); err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "product not found"})
		}
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"message": err.Error()})
	}

	if err := h.store.Add(userID, payload.ProductID); err != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"productId": payload.ProductID})
}

func (h *Handler) removeProduct(c *fiber.Ctx) error {
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	productID, err := strconv.ParseInt(c.Params("productId"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid product id"})
	}

	if err := h.store.Remove(userID, productID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "removed"})
}
