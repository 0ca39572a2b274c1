package openai

import (
	"context"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/kailas-cloud/interviewprep/internal/domain"
	"github.com/kailas-cloud/interviewprep/internal/metrics"
)

// Compile-time check: Generator implements domain.Generator.
var _ domain.Generator = (*Generator)(nil)

// GeneratorConfig holds chat-completion settings.
type GeneratorConfig struct {
	Config
	Temperature float32
	MaxTokens   int
}

// Generator sends the prompt as a single user message to a chat completions
// endpoint. Groq is the default deployment.
type Generator struct {
	client      *openai.Client
	model       string
	temperature float32
	maxTokens   int
	provider    string
	logger      *zap.Logger
}

// NewGenerator creates an OpenAI-compatible chat generator.
func NewGenerator(cfg *GeneratorConfig) *Generator {
	return &Generator{
		client:      newClient(&cfg.Config),
		model:       cfg.Model,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
		provider:    cfg.Provider,
		logger:      cfg.Logger,
	}
}

// Generate returns the first choice's content verbatim. An empty model
// selects the configured default.
func (g *Generator) Generate(ctx context.Context, prompt, model string) (string, error) {
	if model == "" {
		model = g.model
	}

	req := openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: g.temperature,
		MaxTokens:   g.maxTokens,
	}

	start := time.Now()

	resp, err := g.client.CreateChatCompletion(ctx, req)

	duration := time.Since(start)
	metrics.GenerationRequestDuration.WithLabelValues(g.provider, model).Observe(duration.Seconds())

	if err != nil {
		metrics.GenerationRequestsTotal.WithLabelValues(g.provider, model, "error").Inc()
		return "", parseAPIError("generation", err, domain.ErrGenerationFailure)
	}
	if len(resp.Choices) == 0 {
		metrics.GenerationRequestsTotal.WithLabelValues(g.provider, model, "error").Inc()
		return "", fmt.Errorf("no choices in completion: %w", domain.ErrGenerationFailure)
	}

	metrics.GenerationRequestsTotal.WithLabelValues(g.provider, model, "success").Inc()
	if resp.Usage.TotalTokens > 0 {
		metrics.GenerationTokensTotal.WithLabelValues(g.provider, model, "prompt").Add(float64(resp.Usage.PromptTokens))
		metrics.GenerationTokensTotal.WithLabelValues(g.provider, model, "completion").
			Add(float64(resp.Usage.CompletionTokens))
	}

	g.logger.Debug("Generation completed",
		zap.String("provider", g.provider),
		zap.String("model", model),
		zap.Duration("duration", duration),
		zap.Int("prompt_tokens", resp.Usage.PromptTokens),
		zap.Int("completion_tokens", resp.Usage.CompletionTokens),
		zap.String("finish_reason", string(resp.Choices[0].FinishReason)),
	)

	return resp.Choices[0].Message.Content, nil
}
