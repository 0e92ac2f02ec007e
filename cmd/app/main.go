package main

import (
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	jwtware "github.com/gofiber/jwt/v2"

	"github.com/storelane/storefront-gateway/internal/backend"
	"github.com/storelane/storefront-gateway/internal/cart"
	"github.com/storelane/storefront-gateway/internal/catalog"
	"github.com/storelane/storefront-gateway/internal/category"
	"github.com/storelane/storefront-gateway/internal/checkout"
	"github.com/storelane/storefront-gateway/internal/config"
	"github.com/storelane/storefront-gateway/internal/dashboard"
	"github.com/storelane/storefront-gateway/internal/inventory"
	"github.com/storelane/storefront-gateway/internal/mail"
	"github.com/storelane/storefront-gateway/internal/order"
	"github.com/storelane/storefront-gateway/internal/payment"
	"github.com/storelane/storefront-gateway/internal/user"
	"github.com/storelane/storefront-gateway/internal/wishlist"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	app := fiber.New()
	app.Use(requestLogger)
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowOrigins,
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	client := backend.NewClient(cfg.BackendBaseURL)

	catalogService := catalog.NewService(catalog.NewBackendRepository(client))
	catalogHandler := catalog.NewHandler(catalogService)

	categoryHandler := category.NewHandler(category.NewService(category.NewBackendRepository(client)))

	carts := cart.NewStore()
	cartHandler := cart.NewHandler(carts, catalogService)

	orderService := order.NewService(order.NewBackendRepository(client))
	orderHandler := order.NewHandler(orderService)

	userService := user.NewService(user.NewBackendRepository(client))
	userHandler := user.NewHandler(userService, []byte(cfg.JWTSecret))

	inventoryService := inventory.NewService(inventory.NewBackendRepository(client))
	inventoryHandler := inventory.NewHandler(inventoryService)

	payments := payment.NewBackendRepository(client)
	paymentHandler := payment.NewHandler(payments)

	var mailer mail.Mailer = mail.NoopMailer{}
	if cfg.SendGridAPIKey != "" {
		mailer = mail.NewSendGridMailer(cfg.SendGridAPIKey, cfg.MailFromName, cfg.MailFromEmail)
	}
	checkoutHandler := checkout.NewHandler(checkout.NewService(carts, orderService, payments, mailer))

	dashboardHandler := dashboard.NewHandler(dashboard.NewService(
		orderService, catalogService, userService, inventoryService))

	// public surface: browsing, cart and sign-in work without a token
	userHandler.RegisterPublicRoutes(app)
	catalogHandler.RegisterPublicRoutes(app)
	categoryHandler.RegisterPublicRoutes(app)
	cartHandler.RegisterPublicRoutes(app)
	inventoryHandler.RegisterPublicRoutes(app)

	app.Use(jwtware.New(jwtware.Config{
		SigningKey: []byte(cfg.JWTSecret),
		Filter:     isPublicRoute,
	}))

	userHandler.RegisterProtectedRoutes(app)
	orderHandler.RegisterProtectedRoutes(app)
	checkoutHandler.RegisterProtectedRoutes(app)
	wishlistHandler := wishlist.NewHandler(wishlist.NewStore(), catalogService)
	wishlistHandler.RegisterProtectedRoutes(app)

	admin := app.Group("/api/v1/admin", user.RequireAdmin)
	catalogHandler.RegisterAdminRoutes(admin)
	categoryHandler.RegisterAdminRoutes(admin)
	orderHandler.RegisterAdminRoutes(admin)
	userHandler.RegisterAdminRoutes(admin)
	inventoryHandler.RegisterAdminRoutes(admin)
	paymentHandler.RegisterAdminRoutes(admin)
	dashboardHandler.RegisterAdminRoutes(admin)

	log.Printf("starting gateway on %s (backend %s)", cfg.Addr, cfg.BackendBaseURL)
	if err := app.Listen(cfg.Addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

// isPublicRoute tells the JWT middleware which already registered
// routes never need a token. Everything registered after the
// middleware requires one.
func isPublicRoute(c *fiber.Ctx) bool {
	p := c.Path()
	switch p {
	case "/api/v1/sign-in", "/api/v1/sign-up":
		return true
	}
	if strings.HasPrefix(p, "/api/v1/cart") {
		return true
	}
	if c.Method() != fiber.MethodGet {
		return false
	}
	return strings.HasPrefix(p, "/api/v1/products") ||
		strings.HasPrefix(p, "/api/v1/categories") ||
		p == "/api/v1/inventory/availability"
}

func requestLogger(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()
	log.Printf("%s %s -> %d (%s)", c.Method(), c.OriginalURL(), c.Response().StatusCode(), time.Since(start))
	return err
}
