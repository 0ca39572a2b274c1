// Package company derives interview insights for the hiring company named in
// a job description.
package company

import (
	"context"

	"go.uber.org/zap"

	domcompany "github.com/kailas-cloud/interviewprep/internal/domain/company"
	"github.com/kailas-cloud/interviewprep/internal/logger"
	"github.com/kailas-cloud/interviewprep/internal/metrics"
)

const querySuffix = " interview process questions rounds"

// Service scrapes best-effort insights through a SnippetFetcher.
type Service struct {
	fetcher SnippetFetcher
}

// New creates a company insight service.
func New(fetcher SnippetFetcher) *Service {
	return &Service{fetcher: fetcher}
}

// ScrapeCompanyInfo never fails: a fetch error or a page without relevant
// fragments yields domcompany.Default().
func (s *Service) ScrapeCompanyInfo(ctx context.Context, name string) domcompany.Info {
	log := logger.FromContext(ctx).With(zap.String("company", name))

	snippets, err := s.fetcher.FetchSnippets(ctx, name+querySuffix)
	if err != nil {
		metrics.ScrapeOutcomesTotal.WithLabelValues("error").Inc()
		log.Warn("Company scrape failed, using defaults", zap.Error(err))
		return domcompany.Default()
	}

	kept := relevant(snippets)
	if len(kept) == 0 {
		metrics.ScrapeOutcomesTotal.WithLabelValues("fallback").Inc()
		log.Debug("No relevant company fragments", zap.Int("fragments", len(snippets)))
		return domcompany.Default()
	}

	metrics.ScrapeOutcomesTotal.WithLabelValues("scraped").Inc()
	log.Debug("Company fragments scraped", zap.Int("fragments", len(snippets)), zap.Int("relevant", len(kept)))
	return summarize(kept)
}
