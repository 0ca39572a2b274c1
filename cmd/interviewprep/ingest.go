package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/kailas-cloud/interviewprep/internal/config"
	logpkg "github.com/kailas-cloud/interviewprep/internal/logger"
	ingestuc "github.com/kailas-cloud/interviewprep/internal/usecase/ingest"
)

// runIngest loads the curated knowledge base, or a YAML file given with -file,
// into the configured collection.
func runIngest(cfg config.Config, logger *zap.Logger, args []string) error {
	fs := flag.NewFlagSet("ingest", flag.ContinueOnError)
	file := fs.String("file", "", "YAML file with a documents list of {id, text}; defaults to the curated set")
	reset := fs.Bool("reset", false, "drop the collection before ingesting")
	collection := fs.String("collection", cfg.Retrieval.Collection, "target collection")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}

	sources := ingestuc.Curated()
	if *file != "" {
		var err error
		if sources, err = ingestuc.LoadFile(*file); err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = logpkg.ContextWithLogger(ctx, logger)

	stores, err := openStores(ctx, cfg.Database, logger)
	if err != nil {
		return err
	}
	defer stores.kv.Close()

	embedders := buildEmbedders(cfg.Embedding, stores.kv, logger)

	n, err := ingestuc.New(stores.docs, embedders.document, *collection).
		Ingest(ctx, sources, ingestuc.Options{Reset: *reset})
	if err != nil {
		return fmt.Errorf("ingest: %w", err)
	}

	logger.Info("Ingested documents", zap.Int("count", n), zap.String("collection", *collection))
	return nil
}
