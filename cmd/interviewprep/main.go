package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/kailas-cloud/interviewprep/internal/config"
	logpkg "github.com/kailas-cloud/interviewprep/internal/logger"
	"github.com/kailas-cloud/interviewprep/internal/metrics"
	chiTransport "github.com/kailas-cloud/interviewprep/internal/transport/chi"
	analysisuc "github.com/kailas-cloud/interviewprep/internal/usecase/analysis"
	healthuc "github.com/kailas-cloud/interviewprep/internal/usecase/health"
	ingestuc "github.com/kailas-cloud/interviewprep/internal/usecase/ingest"
	retrievaluc "github.com/kailas-cloud/interviewprep/internal/usecase/retrieval"
	"github.com/kailas-cloud/interviewprep/internal/version"
)

func main() {
	_ = godotenv.Load()

	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	metrics.Register()

	if len(os.Args) > 1 && os.Args[1] == "ingest" {
		if err := runIngest(cfg, logger, os.Args[2:]); err != nil {
			logger.Fatal("Ingestion failed", zap.Error(err))
		}
		return
	}

	logger.Info("Starting interviewprep API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("db_driver", cfg.Database.Driver),
		zap.String("llm_provider", cfg.Generation.Provider),
	)

	if err := runServer(cfg, logger); err != nil {
		logger.Fatal("Server failed", zap.Error(err))
	}
}

func runServer(cfg config.Config, logger *zap.Logger) error {
	ctx := context.Background()

	stores, err := openStores(ctx, cfg.Database, logger)
	if err != nil {
		return err
	}
	defer stores.kv.Close()

	embedders := buildEmbedders(cfg.Embedding, stores.kv, logger)

	generator, err := buildGenerator(ctx, cfg.Generation, logger)
	if err != nil {
		return err
	}

	if cfg.Retrieval.SeedOnStart {
		seeder := ingestuc.New(stores.docs, embedders.document, cfg.Retrieval.Collection)
		seedCtx := logpkg.ContextWithLogger(ctx, logger)
		if _, err := seeder.Ingest(seedCtx, ingestuc.Curated(), ingestuc.Options{}); err != nil {
			logger.Warn("Seeding curated documents failed, continuing", zap.Error(err))
		}
	}

	retriever := retrievaluc.New(stores.docs, embedders.query)

	// Pass nil interface (not typed nil pointer) when scraping is disabled.
	var scraper analysisuc.CompanyScraper
	if cfg.Scraper.Enabled {
		scraper = buildScraper(cfg.Scraper, logger)
	}

	analyzer := analysisuc.New(scraper, retriever, generator, analysisuc.Config{
		Collection:      cfg.Retrieval.Collection,
		TopK:            cfg.Retrieval.TopK,
		Model:           cfg.Generation.Model,
		GenerateTimeout: time.Duration(cfg.Generation.TimeoutSec) * time.Second,
	})

	healthSvc := healthuc.New(stores.kv, embedders.lazy)

	server := chiTransport.NewServer(analyzer, healthSvc, providerDisplayName(cfg.Generation))

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      chiTransport.NewRouter(server, logger),
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case err := <-serveErr:
		return fmt.Errorf("http server: %w", err)
	case <-quit:
		logger.Info("Received shutdown signal")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
	return nil
}
