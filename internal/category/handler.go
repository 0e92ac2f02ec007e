package category

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/storelane/storefront-gateway/internal/backend"
)

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/categories/root", h.listRoot)
	app.Get("/api/v1/categories/slug/:slug", h.getBySlug)
	app.Get("/api/v1/categories/status/:status", h.listByStatus)
	app.Get("/api/v1/categories/:id<[0-9]+>/subcategories", h.listSubcategories)
	app.Get("/api/v1/categories/:id<[0-9]+>", h.getCategory)
	app.Get("/api/v1/categories", h.listCategories)
}

func (h *Handler) RegisterAdminRoutes(router fiber.Router) {
	router.Post("/categories", h.createCategory)
	router.Put("/categories/:id<[0-9]+>", h.updateCategory)
	router.Delete("/categories/:id<[0-9]+>", h.deleteCategory)
}

func (h *Handler) listCategories(c *fiber.Ctx) error {
	categories, err := h.service.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(categories)
}

func (h *Handler) listRoot(c *fiber.Ctx) error {
	categories, err := h.service.ListRoot(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(categories)
}

func (h *Handler) getCategory(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid id"})
	}
	cat, err := h.service.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(cat)
}

func (h *Handler) getBySlug(c *fiber.Ctx) error {
	cat, err := h.service.GetBySlug(c.UserContext(), c.Params("slug"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(cat)
}

func (h *Handler) listByStatus(c *fiber.Ctx) error {
	categories, err := h.service.ListByStatus(c.UserContext(), c.Params("status"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(categories)
}

func (h *Handler) listSubcategories(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid id"})
	}
	categories, err := h.service.ListSubcategories(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(categories)
}

func (h *Handler) createCategory(c *fiber.Ctx) error {
	cat := new(Category)
	if err := c.BodyParser(cat); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if cat.Name == "" || cat.Slug == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "name and slug are required"})
	}
	if cat.Status == "" {
		cat.Status = StatusActive
	}

	created, err := h.service.Create(c.UserContext(), *cat)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *Handler) updateCategory(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid id"})
	}
	cat := new(Category)
	if err := c.BodyParser(cat); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	updated, err := h.service.Update(c.UserContext(), id, *cat)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(updated)
}

func (h *Handler) deleteCategory(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid id"})
	}
	if err := h.service.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "category deleted"})
}

func respondError(c *fiber.Ctx, err error) error {
	if err == ErrNotFound {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "category not found"})
	}
	if status := backend.StatusOf(err); status != 0 {
		return c.Status(status).JSON(fiber.Map{"message": err.Error()})
	}
	return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"message": err.Error()})
}
