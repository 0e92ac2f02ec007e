package catalog

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/storelane/storefront-gateway/internal/backend"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	// specific paths before the :id param to avoid route collisions
	app.Get("/api/v1/products/featured", h.featured)
	app.Get("/api/v1/products/best-sellers", h.bestSellers)
	app.Get("/api/v1/products/new-arrivals", h.newArrivals)
	app.Get("/api/v1/products/sku/:sku", h.getBySKU)
	app.Get("/api/v1/products/:id<[0-9]+>", h.getProduct)
	app.Get("/api/v1/products", h.browse)
}

func (h *Handler) RegisterAdminRoutes(router fiber.Router) {
	router.Get("/products/status/:status", h.listByStatus)
	router.Post("/products", h.createProduct)
	router.Put("/products/:id<[0-9]+>", h.updateProduct)
	router.Patch("/products/:id<[0-9]+>/status", h.updateStatus)
	router.Delete("/products/:id<[0-9]+>", h.deleteProduct)
}

func (h *Handler) browse(c *fiber.Ctx) error {
	q := BrowseQuery{
		Keyword:  c.Query("keyword"),
		Brand:    c.Query("brand"),
		Sort:     c.Query("sort"),
		MaxPrice: -1,
	}
	if v := c.Query("categoryId"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid categoryId"})
		}
		q.CategoryID = id
	}
	if v := c.Query("minPrice"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f < 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid minPrice"})
		}
		q.MinPrice = f
	}
	if v := c.Query("maxPrice"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f < 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid maxPrice"})
		}
		q.MaxPrice = f
	}

	products, err := h.service.Browse(c.UserContext(), q)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(products)
}

func (h *Handler) getProduct(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid id"})
	}
	p, err := h.service.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(p)
}

func (h *Handler) getBySKU(c *fiber.Ctx) error {
	p, err := h.service.GetBySKU(c.UserContext(), c.Params("sku"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(p)
}

func (h *Handler) featured(c *fiber.Ctx) error {
	products, err := h.service.Featured(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(products)
}

func (h *Handler) bestSellers(c *fiber.Ctx) error {
	products, err := h.service.BestSellers(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(products)
}

func (h *Handler) newArrivals(c *fiber.Ctx) error {
	products, err := h.service.NewArrivals(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(products)
}

func (h *Handler) listByStatus(c *fiber.Ctx) error {
	status := c.Params("status")
	if !ValidStatus(status) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid status"})
	}
	products, err := h.service.ListByStatus(c.UserContext(), status)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(products)
}

func validateProductPayload(p *Product) map[string]string {
	errs := map[string]string{}
	if p.Name == "" {
		errs["name"] = "name is required"
	}
	if p.SKU == "" {
		errs["sku"] = "sku is required"
	}
	if p.Price < 0 {
		errs["price"] = "price must be >= 0"
	}
	if p.StockQuantity < 0 {
		errs["stockQuantity"] = "stockQuantity must be >= 0"
	}
	if p.Status != "" && !ValidStatus(p.Status) {
		errs["status"] = "invalid status"
	}
	return errs
}

func (h *Handler) createProduct(c *fiber.Ctx) error {
	p := new(Product)
	if err := c.BodyParser(p); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if ves := validateProductPayload(p); len(ves) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": ves})
	}
	if p.Status == "" {
		p.Status = StatusActive
	}

	created, err := h.service.Create(c.UserContext(), *p)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *Handler) updateProduct(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid id"})
	}
	p := new(Product)
	if err := c.BodyParser(p); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if ves := validateProductPayload(p); len(ves) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": ves})
	}

	updated, err := h.service.Update(c.UserContext(), id, *p)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(updated)
}

func (h *Handler) updateStatus(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid id"})
	}
	status := c.Query("status")
	if !ValidStatus(status) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid status"})
	}

	updated, err := h.service.UpdateStatus(c.UserContext(), id, status)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(updated)
}

func (h *Handler) deleteProduct(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid id"})
	}
	if err := h.service.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "product deleted"})
}

// respondError maps repository errors onto gateway responses: known
// sentinels become 404, backend statuses are forwarded, everything
// else is a bad gateway since the upstream call itself failed.
func respondError(c *fiber.Ctx, err error) error {
	if err == ErrNotFound {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "product not found"})
	}
	if status := backend.StatusOf(err); status != 0 {
		return c.Status(status).JSON(fiber.Map{"message": err.Error()})
	}
	return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"message": err.Error()})
}
