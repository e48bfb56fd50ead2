package classifier

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/spec-kit/ticket-classifier/internal/config"
)

// Candidate carries the raw, unvalidated labels returned by the model.
// Normalization into the closed vocabulary is the caller's job, never this
// package's.
type Candidate struct {
	Priority   string
	Department string
}

// Gemini is the model-backed primary classification path. It is constructed
// once at startup and shared across request handlers; the underlying genai
// client is safe for concurrent use.
type Gemini struct {
	client  *genai.Client
	model   string
	timeout time.Duration
	breaker *gobreaker.CircuitBreaker[Candidate]
}

// NewGemini initializes the primary classifier. A missing credential or a
// client construction error disables the primary path for the process
// lifetime. The decision is logged here exactly once, never per request.
func NewGemini(ctx context.Context, cfg config.GeminiConfig, logger *zap.Logger) *Gemini {
	if cfg.APIKey == "" {
		logger.Info("GEMINI_API_KEY not set; using fallback classifier only")
		return nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		logger.Warn("gemini init failed; using fallback classifier only", zap.Error(err))
		return nil
	}

	g := &Gemini{
		client:  client,
		model:   cfg.Model,
		timeout: cfg.Timeout(),
	}

	if cfg.Breaker.Enabled {
		g.breaker = gobreaker.NewCircuitBreaker[Candidate](gobreaker.Settings{
			Name:        "gemini",
			MaxRequests: cfg.Breaker.MaxRequests,
			Interval:    time.Duration(cfg.Breaker.IntervalSeconds) * time.Second,
			Timeout:     time.Duration(cfg.Breaker.TimeoutSeconds) * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= cfg.Breaker.FailureThreshold
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				logger.Info("circuit breaker state changed",
					zap.String("breaker", name),
					zap.String("from", from.String()),
					zap.String("to", to.String()),
				)
			},
		})
	}

	logger.Info("gemini configured", zap.String("model", cfg.Model))
	return g
}

// Available reports whether the primary path can serve requests. Safe on a
// nil receiver so a disabled classifier needs no special casing upstream.
func (g *Gemini) Available() bool {
	return g != nil && g.client != nil
}

// Classify sends the ticket to the model and returns the raw candidate pair.
// Every failure mode (transport error, timeout, open breaker, empty or
// malformed output) surfaces as an explicit error so the orchestrator's
// fallback decision stays a visible branch. Nothing panics, nothing is
// retried.
func (g *Gemini) Classify(ctx context.Context, title, message string) (Candidate, error) {
	if !g.Available() {
		return Candidate{}, errors.New("gemini client not configured")
	}
	if g.breaker == nil {
		return g.generate(ctx, title, message)
	}
	return g.breaker.Execute(func() (Candidate, error) {
		return g.generate(ctx, title, message)
	})
}

func (g *Gemini) generate(ctx context.Context, title, message string) (Candidate, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	userPrompt := fmt.Sprintf("Ticket message:\n%s\n\nTitle:\n%s\n", message, title)
	contents := []*genai.Content{{
		Role:  "user",
		Parts: []*genai.Part{genai.NewPartFromText(userPrompt)},
	}}
	generateCfg := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{genai.NewPartFromText(systemPrompt)},
		},
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, generateCfg)
	if err != nil {
		return Candidate{}, fmt.Errorf("gemini api error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return Candidate{}, errors.New("gemini returned no candidates")
	}

	var raw string
	for _, part := range resp.Candidates[0].Content.Parts {
		raw += part.Text
	}
	if raw == "" {
		return Candidate{}, errors.New("gemini returned empty output")
	}

	return parseCandidate(raw)
}

// parseCandidate decodes the model output into a raw label pair. The payload
// must be a JSON object; each label field may be absent, null, or a string.
// Any other shape is a parse failure. A malformed object is never partially
// applied.
func parseCandidate(raw string) (Candidate, error) {
	payload := extractJSONPayload(raw)

	var fields map[string]any
	if err := json.Unmarshal([]byte(payload), &fields); err != nil {
		return Candidate{}, fmt.Errorf("parse model output: %w", err)
	}
	if fields == nil {
		return Candidate{}, errors.New("model output is not a JSON object")
	}

	priority, err := stringField(fields, "priority")
	if err != nil {
		return Candidate{}, err
	}
	department, err := stringField(fields, "department")
	if err != nil {
		return Candidate{}, err
	}

	return Candidate{Priority: priority, Department: department}, nil
}

func stringField(fields map[string]any, key string) (string, error) {
	value, ok := fields[key]
	if !ok || value == nil {
		return "", nil
	}
	s, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("model output field %q is not a string", key)
	}
	return s, nil
}
