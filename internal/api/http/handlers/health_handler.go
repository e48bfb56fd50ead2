package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/ticket-classifier/internal/service"
)

// HealthHandler responds to availability probes and serves service metadata.
type HealthHandler struct {
	serviceName string
	version     string
	service     *service.ClassificationService
}

// NewHealthHandler returns a new handler instance.
func NewHealthHandler(serviceName, version string, classificationService *service.ClassificationService) *HealthHandler {
	return &HealthHandler{serviceName: serviceName, version: version, service: classificationService}
}

// Health GET /health. The body shape is part of the wire contract.
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"ok":              true,
		"model_available": h.service.ModelAvailable(),
	})
}

// Root GET /. Service metadata.
func (h *HealthHandler) Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"name":    h.serviceName,
		"version": h.version,
		"endpoints": fiber.Map{
			"GET /health":    "service status",
			"POST /classify": "classify ticket",
		},
		"model_available": h.service.ModelAvailable(),
	})
}
