package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/interviewprep/internal/config"
	"github.com/kailas-cloud/interviewprep/internal/db"
	dbRedis "github.com/kailas-cloud/interviewprep/internal/db/redis"
	dbSqlite "github.com/kailas-cloud/interviewprep/internal/db/sqlite"
	"github.com/kailas-cloud/interviewprep/internal/domain"
	"github.com/kailas-cloud/interviewprep/internal/metrics"
	documentrepo "github.com/kailas-cloud/interviewprep/internal/repository/document"
	"github.com/kailas-cloud/interviewprep/internal/repository/embcache"
	"github.com/kailas-cloud/interviewprep/internal/transport/gemini"
	openaiTransport "github.com/kailas-cloud/interviewprep/internal/transport/openai"
	"github.com/kailas-cloud/interviewprep/internal/transport/scrape"
	companyuc "github.com/kailas-cloud/interviewprep/internal/usecase/company"
	embeddinguc "github.com/kailas-cloud/interviewprep/internal/usecase/embedding"
)

// documentStore is what retrieval and ingestion need from a backend.
type documentStore interface {
	Upsert(ctx context.Context, collection string, docs []domain.Document) error
	Query(ctx context.Context, collection string, vector []float32, k int) ([]string, error)
	Reset(ctx context.Context, collection string) error
}

type stores struct {
	docs documentStore
	kv   db.Store
}

// openStores opens the configured backend. sqlite keeps everything in one
// file; redis and valkey hold documents behind an FT vector index.
func openStores(ctx context.Context, cfg config.DatabaseConfig, logger *zap.Logger) (stores, error) {
	switch cfg.Driver {
	case "sqlite":
		s, err := dbSqlite.Open(ctx, cfg.Path)
		if err != nil {
			return stores{}, fmt.Errorf("open sqlite: %w", err)
		}
		logger.Info("Opened document store", zap.String("path", cfg.Path))
		return stores{docs: s, kv: s}, nil
	case "redis", "valkey":
		s, err := dbRedis.NewStore(dbRedis.Config{Addrs: cfg.Addrs, Password: cfg.Password})
		if err != nil {
			return stores{}, fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, err)
		}
		if err := s.WaitForReady(ctx, time.Duration(cfg.ReadinessTimeout)*time.Second); err != nil {
			s.Close()
			return stores{}, fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, err)
		}
		logger.Info("Connected to database", zap.String("driver", cfg.Driver), zap.Strings("addrs", cfg.Addrs))
		return stores{docs: documentrepo.New(s), kv: s}, nil
	default:
		return stores{}, fmt.Errorf("unknown database driver %q", cfg.Driver)
	}
}

type embedders struct {
	lazy     *embeddinguc.LazyEmbedder
	document domain.Embedder
	query    domain.Embedder
}

// buildEmbedders assembles the chain OpenAI -> Cached -> Instrumented -> Lazy -> Instruction.
// The model is probed on first use, so startup never blocks on the provider.
func buildEmbedders(cfg config.EmbeddingConfig, kv db.KVStore, logger *zap.Logger) embedders {
	load := func(context.Context) (domain.Embedder, error) {
		base := openaiTransport.NewEmbedder(&openaiTransport.Config{
			APIKey:     cfg.APIKey,
			BaseURL:    cfg.BaseURL,
			Model:      cfg.Model,
			Dimensions: cfg.Dimensions,
			Provider:   cfg.Provider,
			Logger:     logger,
		})

		var e domain.Embedder = base
		if cfg.Cache && kv != nil {
			e = embcache.New(base, kv, cfg.Model, metrics.EmbeddingCacheTotal, logger)
		}
		return embeddinguc.NewInstrumentedEmbedder(e, cfg.Provider, cfg.Model, logger), nil
	}

	lazy := embeddinguc.NewLazyEmbedder(load, logger)
	return embedders{
		lazy:     lazy,
		document: domain.WithInstruction(lazy, cfg.DocumentInstruction),
		query:    domain.WithInstruction(lazy, cfg.QueryInstruction),
	}
}

func buildGenerator(ctx context.Context, cfg config.GenerationConfig, logger *zap.Logger) (domain.Generator, error) {
	switch cfg.Provider {
	case "gemini":
		g, err := gemini.NewGenerator(ctx, &gemini.Config{
			APIKey:      cfg.APIKey,
			BaseURL:     cfg.BaseURL,
			Model:       cfg.Model,
			Temperature: cfg.Temperature,
			MaxTokens:   cfg.MaxTokens,
			Logger:      logger,
		})
		if err != nil {
			return nil, fmt.Errorf("create gemini generator: %w", err)
		}
		return g, nil
	default:
		return openaiTransport.NewGenerator(&openaiTransport.GeneratorConfig{
			Config: openaiTransport.Config{
				APIKey:   cfg.APIKey,
				BaseURL:  cfg.BaseURL,
				Model:    cfg.Model,
				Provider: cfg.Provider,
				Logger:   logger,
			},
			Temperature: cfg.Temperature,
			MaxTokens:   cfg.MaxTokens,
		}), nil
	}
}

func buildScraper(cfg config.ScraperConfig, logger *zap.Logger) *companyuc.Service {
	return companyuc.New(scrape.New(scrape.Config{
		SearchURL:  cfg.SearchURL,
		UserAgent:  cfg.UserAgent,
		Selector:   cfg.Selector,
		Timeout:    time.Duration(cfg.TimeoutSec) * time.Second,
		RatePerSec: cfg.RatePerSec,
		Burst:      cfg.Burst,
		Logger:     logger,
	}))
}

// providerDisplayName is the llm_provider reported by GET /.
func providerDisplayName(cfg config.GenerationConfig) string {
	switch {
	case cfg.Provider == "gemini":
		return "Gemini"
	case strings.Contains(cfg.BaseURL, "groq.com"):
		return "Groq"
	default:
		return "OpenAI"
	}
}
