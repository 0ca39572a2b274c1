// Package gemini adapts the Google Gemini API to the generation contract.
package gemini

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/kailas-cloud/interviewprep/internal/domain"
	"github.com/kailas-cloud/interviewprep/internal/metrics"
)

const provider = "gemini"

// Compile-time check: Generator implements domain.Generator.
var _ domain.Generator = (*Generator)(nil)

// Config holds Gemini generation settings.
type Config struct {
	APIKey      string
	BaseURL     string // optional endpoint override
	Model       string
	Temperature float32
	MaxTokens   int
	Logger      *zap.Logger
}

// Generator calls models.generateContent with the prompt as a single user turn.
type Generator struct {
	client      *genai.Client
	model       string
	temperature float32
	maxTokens   int32
	logger      *zap.Logger
}

// NewGenerator creates a Gemini API client.
func NewGenerator(ctx context.Context, cfg *Config) (*Generator, error) {
	cc := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		cc.HTTPOptions.BaseURL = cfg.BaseURL
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &Generator{
		client:      client,
		model:       cfg.Model,
		temperature: cfg.Temperature,
		maxTokens:   int32(cfg.MaxTokens), //nolint:gosec // bounded by config validation
		logger:      cfg.Logger,
	}, nil
}

// Generate returns the concatenated text of the first candidate. An empty
// model selects the configured default.
func (g *Generator) Generate(ctx context.Context, prompt, model string) (string, error) {
	if model == "" {
		model = g.model
	}

	start := time.Now()

	resp, err := g.client.Models.GenerateContent(ctx, model, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(g.temperature),
		MaxOutputTokens: g.maxTokens,
	})

	duration := time.Since(start)
	metrics.GenerationRequestDuration.WithLabelValues(provider, model).Observe(duration.Seconds())

	if err != nil {
		metrics.GenerationRequestsTotal.WithLabelValues(provider, model, "error").Inc()
		return "", fmt.Errorf("gemini generate: %w: %w", domain.ErrGenerationFailure, err)
	}
	if resp == nil || len(resp.Candidates) == 0 {
		metrics.GenerationRequestsTotal.WithLabelValues(provider, model, "error").Inc()
		return "", fmt.Errorf("no candidates in response: %w", domain.ErrGenerationFailure)
	}

	metrics.GenerationRequestsTotal.WithLabelValues(provider, model, "success").Inc()
	if u := resp.UsageMetadata; u != nil {
		metrics.GenerationTokensTotal.WithLabelValues(provider, model, "prompt").Add(float64(u.PromptTokenCount))
		metrics.GenerationTokensTotal.WithLabelValues(provider, model, "completion").Add(float64(u.CandidatesTokenCount))
	}

	g.logger.Debug("Generation completed",
		zap.String("provider", provider),
		zap.String("model", model),
		zap.Duration("duration", duration),
	)

	return resp.Text(), nil
}
