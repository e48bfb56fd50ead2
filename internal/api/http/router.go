package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/ticket-classifier/internal/api/http/handlers"
	"github.com/spec-kit/ticket-classifier/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Classify       *handlers.ClassifyHandler
	AuthMiddleware *auth.SharedKeyMiddleware
	RateLimit      fiber.Handler
}

// RegisterRoutes wires HTTP routes. The rate limiter runs before the shared
// secret check.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/", cfg.Health.Root)
	app.Get("/health", cfg.Health.Health)

	chain := make([]fiber.Handler, 0, 3)
	if cfg.RateLimit != nil {
		chain = append(chain, cfg.RateLimit)
	}
	chain = append(chain, cfg.AuthMiddleware.Handle, cfg.Classify.Classify)
	app.Post("/classify", chain...)
}
