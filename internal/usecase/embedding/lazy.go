package embedding

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/kailas-cloud/interviewprep/internal/domain"
	"github.com/kailas-cloud/interviewprep/internal/metrics"
)

const probeText = "dimension probe"

// Loader builds the embedder on first use.
type Loader func(ctx context.Context) (domain.Embedder, error)

// LazyEmbedder defers model construction to the first Embed call. The load
// runs at most once at a time; a failed load is retried by the next call.
// After a successful load every vector must match the probed dimension.
type LazyEmbedder struct {
	load   Loader
	logger *zap.Logger

	mu    sync.Mutex
	inner domain.Embedder
	dim   int
}

// NewLazyEmbedder creates a lazily initialised embedder.
func NewLazyEmbedder(load Loader, logger *zap.Logger) *LazyEmbedder {
	return &LazyEmbedder{load: load, logger: logger}
}

// Embed loads the model if needed and embeds text.
func (l *LazyEmbedder) Embed(ctx context.Context, text string) (domain.EmbeddingResult, error) {
	inner, dim, err := l.ensure(ctx)
	if err != nil {
		return domain.EmbeddingResult{}, err
	}

	result, err := inner.Embed(ctx, text)
	if err != nil {
		return domain.EmbeddingResult{}, asEmbeddingFailure(err)
	}
	if len(result.Embedding) != dim {
		return domain.EmbeddingResult{}, fmt.Errorf("got %d dimensions, model has %d: %w",
			len(result.Embedding), dim, domain.ErrEmbeddingFailure)
	}
	return result, nil
}

// Dimension returns the probed vector length, or 0 before the first load.
func (l *LazyEmbedder) Dimension() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.dim
}

// HealthCheck loads the model if needed and forwards to it.
func (l *LazyEmbedder) HealthCheck(ctx context.Context) error {
	inner, _, err := l.ensure(ctx)
	if err != nil {
		return err
	}
	if hc, ok := inner.(domain.HealthChecker); ok {
		return hc.HealthCheck(ctx) //nolint:wrapcheck // transparent decorator
	}
	return nil
}

func (l *LazyEmbedder) ensure(ctx context.Context) (domain.Embedder, int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.inner != nil {
		return l.inner, l.dim, nil
	}

	inner, err := l.load(ctx)
	if err != nil {
		metrics.EmbeddingModelLoadsTotal.WithLabelValues("error").Inc()
		return nil, 0, fmt.Errorf("load embedding model: %w", asEmbeddingFailure(err))
	}

	probe, err := inner.Embed(ctx, probeText)
	if err != nil {
		metrics.EmbeddingModelLoadsTotal.WithLabelValues("error").Inc()
		return nil, 0, fmt.Errorf("probe embedding model: %w", asEmbeddingFailure(err))
	}
	if len(probe.Embedding) == 0 {
		metrics.EmbeddingModelLoadsTotal.WithLabelValues("error").Inc()
		return nil, 0, fmt.Errorf("probe returned no vector: %w", domain.ErrEmbeddingFailure)
	}

	l.inner = inner
	l.dim = len(probe.Embedding)
	metrics.EmbeddingModelLoadsTotal.WithLabelValues("success").Inc()
	l.logger.Info("Embedding model loaded", zap.Int("dimensions", l.dim))

	return l.inner, l.dim, nil
}

func asEmbeddingFailure(err error) error {
	if errors.Is(err, domain.ErrEmbeddingFailure) {
		return err
	}
	return fmt.Errorf("%w: %w", domain.ErrEmbeddingFailure, err)
}
