package inventory

import (
	"context"
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/storelane/storefront-gateway/internal/backend"
)

// Handler exposes a public availability probe for product pages and
// the stock management surface for admins.
type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/inventory/availability", h.checkAvailability)
}

func (h *Handler) RegisterAdminRoutes(router fiber.Router) {
	router.Get("/inventory", h.list)
	router.Get("/inventory/low-stock", h.listLowStock)
	router.Get("/inventory/out-of-stock", h.listOutOfStock)
	router.Get("/inventory/product/:productId<[0-9]+>", h.getByProduct)
	router.Post("/inventory/product/:productId<[0-9]+>/add-stock", h.action((*Service).AddStock))
	router.Post("/inventory/product/:productId<[0-9]+>/remove-stock", h.action((*Service).RemoveStock))
	router.Post("/inventory/product/:productId<[0-9]+>/reserve", h.action((*Service).Reserve))
	router.Post("/inventory/product/:productId<[0-9]+>/release", h.action((*Service).Release))
}

// recordView decorates a record with its derived stock status so the
// admin table does not re-implement the bucketing.
type recordView struct {
	Record
	StockStatus string `json:"stockStatus"`
}

func viewOf(rec Record) recordView {
	return recordView{Record: rec, StockStatus: rec.StockStatus()}
}

func viewsOf(recs []Record) []recordView {
	out := make([]recordView, len(recs))
	for i, rec := range recs {
		out[i] = viewOf(rec)
	}
	return out
}

func (h *Handler) checkAvailability(c *fiber.Ctx) error {
	productID, err := strconv.ParseInt(c.Query("productId"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid productId"})
	}
	quantity := c.QueryInt("quantity", 1)

	available, err := h.service.CheckAvailability(c.UserContext(), productID, quantity)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"productId": productID, "quantity": quantity, "available": available})
}

func (h *Handler) list(c *fiber.Ctx) error {
	recs, err := h.service.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(viewsOf(recs))
}

func (h *Handler) listLowStock(c *fiber.Ctx) error {
	recs, err := h.service.ListLowStock(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(viewsOf(recs))
}

func (h *Handler) listOutOfStock(c *fiber.Ctx) error {
	recs, err := h.service.ListOutOfStock(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(viewsOf(recs))
}

func (h *Handler) getByProduct(c *fiber.Ctx) error {
	productID, err := strconv.ParseInt(c.Params("productId"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid product id"})
	}
	rec, err := h.service.GetByProduct(c.UserContext(), productID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(viewOf(rec))
}

// action adapts the four stock adjustment operations, which share the
// same request shape, into one handler.
func (h *Handler) action(op func(*Service, context.Context, int64, int) (Record, error)) fiber.Handler {
	return func(c *fiber.Ctx) error {
		productID, err := strconv.ParseInt(c.Params("productId"), 10, 64)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid product id"})
		}
		quantity := c.QueryInt("quantity")
		if quantity <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "quantity must be positive"})
		}
		rec, err := op(h.service, c.UserContext(), productID, quantity)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(viewOf(rec))
	}
}

func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "inventory record not found"})
	case errors.Is(err, ErrInsufficientStock):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": "insufficient stock"})
	case errors.Is(err, errNonPositiveQuantity):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if status := backend.StatusOf(err); status != 0 {
		return c.Status(status).JSON(fiber.Map{"message": err.Error()})
	}
	return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"message": err.Error()})
}
