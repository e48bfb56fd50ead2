package worker

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/spec-kit/ticket-classifier/internal/config"
	"github.com/spec-kit/ticket-classifier/internal/events"
	"github.com/spec-kit/ticket-classifier/internal/observability"
	"github.com/spec-kit/ticket-classifier/internal/service"
)

func TestStartNotificationWorkerWiresClassificationEvents(t *testing.T) {
	dispatcher := events.NewInMemoryDispatcher()
	metrics := observability.NewMetrics()
	notification := service.NewNotificationService(dispatcher, zap.NewNop(), metrics, config.NotificationConfig{})

	StartNotificationWorker(notification)

	svc := service.NewClassificationService(service.ClassificationDependencies{
		Dispatcher: dispatcher,
		Logger:     zap.NewNop(),
	})
	svc.Classify(context.Background(), "vpn is down", "")

	assert.Equal(t, int64(1), metrics.ClassificationCount(string(events.SourceFallback)))
}

func TestStartNotificationWorkerNilService(t *testing.T) {
	assert.NotPanics(t, func() {
		StartNotificationWorker(nil)
	})
}
