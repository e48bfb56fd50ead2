package events

import (
	"time"

	"github.com/spec-kit/ticket-classifier/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventClassificationCompleted EventType = "classification_completed"
)

// ClassificationSource identifies which path produced a verdict.
type ClassificationSource string

const (
	SourcePrimary  ClassificationSource = "primary"
	SourceFallback ClassificationSource = "fallback"
	SourceDefault  ClassificationSource = "default"
)

// Event represents a domain event emitted by the classification service.
type Event struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Payload   any       `json:"payload"`
}

// ClassificationCompletedPayload describes a finished classification. Only
// the length of the ticket text is carried, never the text itself.
type ClassificationCompletedPayload struct {
	Source           ClassificationSource `json:"source"`
	Priority         domain.Priority      `json:"priority"`
	Department       domain.Department    `json:"department"`
	EstimatedMinutes int                  `json:"estimated_minutes"`
	TextLength       int                  `json:"text_length"`
}
