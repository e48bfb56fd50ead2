package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/ticket-classifier/internal/classifier"
	"github.com/spec-kit/ticket-classifier/internal/domain"
	"github.com/spec-kit/ticket-classifier/internal/events"
)

// PrimaryClassifier is the model-backed classification path. Implementations
// return raw, unnormalized label candidates.
type PrimaryClassifier interface {
	Available() bool
	Classify(ctx context.Context, title, message string) (classifier.Candidate, error)
}

// ClassificationService coordinates the classification pipeline.
type ClassificationService struct {
	primary    PrimaryClassifier
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// ClassificationDependencies bundles collaborators for the service.
type ClassificationDependencies struct {
	Primary    PrimaryClassifier
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
}

// NewClassificationService constructs the service.
func NewClassificationService(deps ClassificationDependencies) *ClassificationService {
	return &ClassificationService{
		primary:    deps.Primary,
		dispatcher: deps.Dispatcher,
		logger:     deps.Logger,
	}
}

// ModelAvailable reports whether the primary path can serve requests.
func (s *ClassificationService) ModelAvailable() bool {
	return s.primary != nil && s.primary.Available()
}

// Classify produces a classification for a ticket. Empty input yields the
// neutral default without consulting either classifier. The primary path is
// used when available; any failure there routes to the keyword fallback. The
// returned labels always belong to the closed vocabulary.
func (s *ClassificationService) Classify(ctx context.Context, title, message string) domain.Classification {
	title = strings.TrimSpace(title)
	message = strings.TrimSpace(message)
	text := strings.TrimSpace(title + " " + message)

	if text == "" {
		result := domain.Classification{
			Priority:         domain.DefaultPriority,
			Department:       domain.DefaultDepartment,
			EstimatedMinutes: domain.EstimateMinutes(domain.DefaultDepartment, domain.DefaultPriority),
		}
		s.publishCompleted(ctx, events.SourceDefault, result, text)
		return result
	}

	if !s.ModelAvailable() {
		result := classifier.Fallback(text)
		s.publishCompleted(ctx, events.SourceFallback, result, text)
		return result
	}

	candidate, err := s.primary.Classify(ctx, title, message)
	if err != nil {
		s.logger.Warn("primary classifier failed; using fallback", zap.Error(err))
		result := classifier.Fallback(text)
		s.publishCompleted(ctx, events.SourceFallback, result, text)
		return result
	}

	priority := domain.NormalizePriority(candidate.Priority)
	department := domain.NormalizeDepartment(candidate.Department)
	result := domain.Classification{
		Priority:         priority,
		Department:       department,
		EstimatedMinutes: domain.EstimateMinutes(department, priority),
	}
	s.publishCompleted(ctx, events.SourcePrimary, result, text)
	return result
}

func (s *ClassificationService) publishCompleted(ctx context.Context, source events.ClassificationSource, result domain.Classification, text string) {
	if s.dispatcher == nil {
		return
	}
	s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventClassificationCompleted,
		Timestamp: time.Now(),
		Payload: events.ClassificationCompletedPayload{
			Source:           source,
			Priority:         result.Priority,
			Department:       result.Department,
			EstimatedMinutes: result.EstimatedMinutes,
			TextLength:       len(text),
		},
	})
}
