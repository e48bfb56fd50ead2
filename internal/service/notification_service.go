package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/ticket-classifier/internal/config"
	"github.com/spec-kit/ticket-classifier/internal/events"
	"github.com/spec-kit/ticket-classifier/internal/observability"
)

// NotificationService fans classification events out to observers. Handlers
// only observe; the classification result is already decided when they run.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	metrics    *observability.Metrics
	cfg        config.NotificationConfig
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger, metrics *observability.Metrics, cfg config.NotificationConfig) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		logger:     logger,
		metrics:    metrics,
		cfg:        cfg,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventClassificationCompleted, n.handleClassificationCompleted)
}

func (n *NotificationService) handleClassificationCompleted(ctx context.Context, event events.Event) {
	payload, ok := event.Payload.(events.ClassificationCompletedPayload)
	if !ok {
		n.logger.Warn("unexpected payload type", zap.String("event_id", event.ID))
		return
	}

	n.metrics.RecordClassification(string(payload.Source))
	n.logger.Info("ClassificationCompleted",
		zap.String("source", string(payload.Source)),
		zap.String("priority", string(payload.Priority)),
		zap.String("department", string(payload.Department)),
		zap.Int("estimated_minutes", payload.EstimatedMinutes),
		zap.Int("text_length", payload.TextLength))
	n.sendWebhookNotificationStub(ctx, event)
}

func (n *NotificationService) sendWebhookNotificationStub(ctx context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.WebhookURL) == "" {
		return
	}
	n.logger.Debug("sendWebhookNotificationStub",
		zap.String("url", n.cfg.WebhookURL),
		zap.String("event_id", event.ID),
		zap.String("event_type", string(event.Type)))
}
