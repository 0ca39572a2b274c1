// Package ingest embeds reference texts and writes them to the knowledge base.
package ingest

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/interviewprep/internal/domain"
	"github.com/kailas-cloud/interviewprep/internal/logger"
)

// Store is the write side of the document store.
type Store interface {
	Upsert(ctx context.Context, collection string, docs []domain.Document) error
	Reset(ctx context.Context, collection string) error
}

// Service loads documents into one collection.
type Service struct {
	store      Store
	embed      domain.Embedder
	collection string
}

// New creates an ingestion service for collection.
func New(store Store, embed domain.Embedder, collection string) *Service {
	if collection == "" {
		collection = domain.DefaultCollection
	}
	return &Service{store: store, embed: embed, collection: collection}
}

// Options control a single ingestion run.
type Options struct {
	// Reset drops the collection before writing.
	Reset bool
}

// Ingest embeds every source and upserts the batch by ID, so repeated runs
// leave one copy of each document. It returns the number of documents written.
func (s *Service) Ingest(ctx context.Context, sources []Source, opts Options) (int, error) {
	start := time.Now()
	log := logger.FromContext(ctx).With(zap.String("collection", s.collection))

	if opts.Reset {
		if err := s.store.Reset(ctx, s.collection); err != nil {
			return 0, fmt.Errorf("reset %s: %w", s.collection, err)
		}
		log.Info("Collection reset")
	}
	if len(sources) == 0 {
		return 0, nil
	}

	docs := make([]domain.Document, 0, len(sources))
	for _, src := range sources {
		emb, err := s.embed.Embed(ctx, src.Text)
		if err != nil {
			return 0, fmt.Errorf("embed %s: %w", src.ID, err)
		}
		docs = append(docs, domain.Document{ID: src.ID, Text: src.Text, Vector: emb.Embedding})
	}

	if err := s.store.Upsert(ctx, s.collection, docs); err != nil {
		return 0, fmt.Errorf("upsert %s: %w", s.collection, err)
	}

	log.Info("Documents ingested", zap.Int("count", len(docs)), zap.Duration("duration", time.Since(start)))
	return len(docs), nil
}
