// Package retrieval turns a query into the reference context block of the prompt.
package retrieval

import (
	"context"
	"fmt"
	"strings"

	"github.com/kailas-cloud/interviewprep/internal/domain"
	"github.com/kailas-cloud/interviewprep/internal/logger"
	"github.com/kailas-cloud/interviewprep/internal/metrics"
)

const separator = "\n\n"

// Service embeds a query and collects the nearest reference documents.
type Service struct {
	store Store
	embed Embedder
}

// New creates a retrieval service.
func New(store Store, embed Embedder) *Service {
	return &Service{store: store, embed: embed}
}

// Retrieve returns up to k document texts joined by a blank line, most
// similar first. No match yields "". k <= 0 selects domain.DefaultTopK.
func (s *Service) Retrieve(ctx context.Context, query, collection string, k int) (string, error) {
	if k <= 0 {
		k = domain.DefaultTopK
	}

	emb, err := s.embed.Embed(ctx, query)
	if err != nil {
		return "", fmt.Errorf("embed query: %w", err)
	}

	texts, err := s.store.Query(ctx, collection, emb.Embedding, k)
	if err != nil {
		return "", fmt.Errorf("query %s: %w", collection, err)
	}
	metrics.RetrievedDocuments.Observe(float64(len(texts)))

	if len(texts) == 0 {
		logger.FromContext(ctx).Debug("No reference documents retrieved")
		return "", nil
	}
	return strings.Join(texts, separator), nil
}
