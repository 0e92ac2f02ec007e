package dashboard

import (
	"github.com/gofiber/fiber/v2"

	"github.com/storelane/storefront-gateway/internal/backend"
)

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterAdminRoutes(router fiber.Router) {
	router.Get("/dashboard", h.getStats)
}

func (h *Handler) getStats(c *fiber.Ctx) error {
	stats, err := h.service.Collect(c.UserContext())
	if err != nil {
		if status := backend.StatusOf(err); status != 0 {
			return c.Status(status).JSON(fiber.Map{"message": err.Error()})
		}
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(stats)
}
