package order

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/storelane/storefront-gateway/internal/backend"
	"github.com/storelane/storefront-gateway/internal/user"
)

// Handler exposes customer order tracking and admin order management.
type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Get("/api/v1/orders", h.myOrders)
	app.Get("/api/v1/orders/number/:number", h.getByNumber)
	app.Get("/api/v1/orders/:id<[0-9]+>", h.getOrder)
	app.Get("/api/v1/orders/:id<[0-9]+>/history", h.getHistory)
	app.Post("/api/v1/orders/:id<[0-9]+>/cancel", h.cancelOrder)
}

func (h *Handler) RegisterAdminRoutes(router fiber.Router) {
	router.Get("/orders", h.listOrders)
	router.Get("/orders/status/:status", h.listByStatus)
	router.Get("/orders/email/:email", h.listByEmail)
	router.Patch("/orders/:id<[0-9]+>/status", h.updateStatus)
}

func (h *Handler) myOrders(c *fiber.Ctx) error {
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	orders, err := h.service.ListByUser(c.UserContext(), userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(orders)
}

// loadOwned fetches the order and enforces that the caller owns it.
// Admins may inspect any order.
func (h *Handler) loadOwned(c *fiber.Ctx, id int64) (Order, error) {
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return Order{}, fiber.ErrUnauthorized
	}
	ord, err := h.service.GetByID(c.UserContext(), id)
	if err != nil {
		return Order{}, err
	}
	if ord.UserID != userID && !user.IsAdminFromCtx(c) {
		return Order{}, fiber.ErrForbidden
	}
	return ord, nil
}

func (h *Handler) getOrder(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid id"})
	}
	ord, err := h.loadOwned(c, id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(ord)
}

func (h *Handler) getByNumber(c *fiber.Ctx) error {
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	ord, err := h.service.GetByNumber(c.UserContext(), c.Params("number"))
	if err != nil {
		return respondError(c, err)
	}
	if ord.UserID != userID && !user.IsAdminFromCtx(c) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "forbidden"})
	}
	return c.JSON(ord)
}

func (h *Handler) getHistory(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid id"})
	}
	if _, err := h.loadOwned(c, id); err != nil {
		return respondError(c, err)
	}
	history, err := h.service.History(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(history)
}

type cancelRequest struct {
	Reason string `json:"reason"`
}

func (h *Handler) cancelOrder(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid id"})
	}
	if _, err := h.loadOwned(c, id); err != nil {
		return respondError(c, err)
	}

	payload := new(cancelRequest)
	_ = c.BodyParser(payload) // an empty body means no reason given

	userID, _ := user.GetUserIDFromCtx(c)
	cancelled, err := h.service.Cancel(c.UserContext(), id, payload.Reason, userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(cancelled)
}

func (h *Handler) listOrders(c *fiber.Ctx) error {
	orders, err := h.service.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(orders)
}

func (h *Handler) listByStatus(c *fiber.Ctx) error {
	status := Status(c.Params("status"))
	if !status.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid status"})
	}
	orders, err := h.service.ListByStatus(c.UserContext(), status)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(orders)
}

func (h *Handler) listByEmail(c *fiber.Ctx) error {
	orders, err := h.service.ListByEmail(c.UserContext(), c.Params("email"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(orders)
}

type statusUpdateRequest struct {
	Status  Status `json:"status"`
	Remarks string `json:"remarks"`
}

func (h *Handler) updateStatus(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid id"})
	}
	payload := new(statusUpdateRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	adminID, _ := user.GetUserIDFromCtx(c)
	updated, err := h.service.UpdateStatus(c.UserContext(), id, payload.Status, payload.Remarks, adminID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(updated)
}

func respondError(c *fiber.Ctx, err error) error {
	switch err {
	case ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "order not found"})
	case ErrInvalidTransition:
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": err.Error()})
	case ErrNotCancellable:
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": err.Error()})
	case fiber.ErrUnauthorized:
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	case fiber.ErrForbidden:
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "forbidden"})
	}
	if status := backend.StatusOf(err); status != 0 {
		return c.Status(status).JSON(fiber.Map{"message": err.Error()})
	}
	return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"message": err.Error()})
}
