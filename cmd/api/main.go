package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/ticket-classifier/internal/api/http"
	"github.com/spec-kit/ticket-classifier/internal/api/http/handlers"
	"github.com/spec-kit/ticket-classifier/internal/auth"
	"github.com/spec-kit/ticket-classifier/internal/classifier"
	"github.com/spec-kit/ticket-classifier/internal/config"
	"github.com/spec-kit/ticket-classifier/internal/events"
	"github.com/spec-kit/ticket-classifier/internal/observability"
	"github.com/spec-kit/ticket-classifier/internal/persistence"
	"github.com/spec-kit/ticket-classifier/internal/ratelimit"
	"github.com/spec-kit/ticket-classifier/internal/service"
	"github.com/spec-kit/ticket-classifier/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	redis := persistence.NewRedis(ctx, cfg.Redis, logger)
	defer redis.Close()

	gemini := classifier.NewGemini(ctx, cfg.Gemini, logger)
	dispatcher := events.NewInMemoryDispatcher()
	metrics := observability.NewMetrics()

	classificationService := service.NewClassificationService(service.ClassificationDependencies{
		Primary:    gemini,
		Dispatcher: dispatcher,
		Logger:     logger,
	})

	notificationService := service.NewNotificationService(dispatcher, logger, metrics, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	authMiddleware := auth.NewSharedKeyMiddleware(cfg.Auth.ClassifierKey)

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	healthHandler := handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, classificationService)
	classifyHandler := handlers.NewClassifyHandler(classificationService)

	var rateLimitHandler fiber.Handler
	if limiter := ratelimit.NewLimiter(redis.ClientHandle(), cfg.RateLimit.PerMinute, logger); limiter != nil {
		rateLimitHandler = httptransport.RateLimitMiddleware(limiter, logger)
		logger.Info("rate limiting enabled", zap.Int("per_minute", cfg.RateLimit.PerMinute))
	}

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         healthHandler,
		Classify:       classifyHandler,
		AuthMiddleware: authMiddleware,
		RateLimit:      rateLimitHandler,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
