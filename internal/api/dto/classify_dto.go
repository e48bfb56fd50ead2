package dto

import (
	"github.com/spec-kit/ticket-classifier/internal/domain"
)

// ClassifyRequest payload. Both fields are optional; absent fields are
// treated as empty strings.
type ClassifyRequest struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

// ClassifyResponse response.
type ClassifyResponse struct {
	Priority         domain.Priority   `json:"priority"`
	Department       domain.Department `json:"department"`
	EstimatedMinutes int               `json:"estimated_minutes"`
}
