package retrieval

import (
	"context"

	"github.com/kailas-cloud/interviewprep/internal/domain"
)

// Store returns nearest document texts for a query vector.
type Store interface {
	Query(ctx context.Context, collection string, vector []float32, k int) ([]string, error)
}

// Embedder vectorizes the query text.
type Embedder interface {
	Embed(ctx context.Context, text string) (domain.EmbeddingResult, error)
}
