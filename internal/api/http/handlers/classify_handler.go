package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/ticket-classifier/internal/api/dto"
	"github.com/spec-kit/ticket-classifier/internal/service"
)

// ClassifyHandler serves ticket classification requests.
type ClassifyHandler struct {
	service *service.ClassificationService
}

// NewClassifyHandler constructs handler.
func NewClassifyHandler(classificationService *service.ClassificationService) *ClassifyHandler {
	return &ClassifyHandler{service: classificationService}
}

// Classify POST /classify. A body that fails to parse is treated as an empty
// ticket, not rejected.
func (h *ClassifyHandler) Classify(c *fiber.Ctx) error {
	var req dto.ClassifyRequest
	if err := c.BodyParser(&req); err != nil {
		req = dto.ClassifyRequest{}
	}

	result := h.service.Classify(c.UserContext(), req.Title, req.Message)

	return c.JSON(dto.ClassifyResponse{
		Priority:         result.Priority,
		Department:       result.Department,
		EstimatedMinutes: result.EstimatedMinutes,
	})
}
