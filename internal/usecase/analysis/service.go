// Package analysis orchestrates one analysis request from extraction to generation.
package analysis

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/interviewprep/internal/domain"
	domanalysis "github.com/kailas-cloud/interviewprep/internal/domain/analysis"
	domcompany "github.com/kailas-cloud/interviewprep/internal/domain/company"
	"github.com/kailas-cloud/interviewprep/internal/logger"
	"github.com/kailas-cloud/interviewprep/internal/metrics"
	"github.com/kailas-cloud/interviewprep/internal/usecase/company"
	"github.com/kailas-cloud/interviewprep/internal/usecase/prompt"
)

// Config selects the knowledge base and model for every request.
type Config struct {
	Collection string
	TopK       int
	Model      string
	// GenerateTimeout bounds the LLM call; zero leaves it to the caller's context.
	GenerateTimeout time.Duration
}

// Service runs extract, scrape, retrieve, build and generate in order.
type Service struct {
	scraper   CompanyScraper
	retriever Retriever
	generator Generator
	cfg       Config
}

// New creates the orchestrator. A nil scraper disables company insights.
func New(scraper CompanyScraper, retriever Retriever, generator Generator, cfg Config) *Service {
	if cfg.Collection == "" {
		cfg.Collection = domain.DefaultCollection
	}
	if cfg.TopK <= 0 {
		cfg.TopK = domain.DefaultTopK
	}
	return &Service{scraper: scraper, retriever: retriever, generator: generator, cfg: cfg}
}

// Process returns the generated text verbatim. Every failure wraps
// domain.ErrServiceFailure around its cause.
func (s *Service) Process(ctx context.Context, req domanalysis.Request) (string, error) {
	start := time.Now()
	log := logger.FromContext(ctx).With(zap.String("mode", string(req.Mode())))

	out, stats, err := s.process(ctx, req)
	if err != nil {
		metrics.AnalysisRequestsTotal.WithLabelValues(string(req.Mode()), "error").Inc()
		log.Error("Analysis failed", zap.Error(err), zap.Duration("duration", time.Since(start)))
		return "", fmt.Errorf("%w: %w", domain.ErrServiceFailure, err)
	}

	metrics.AnalysisRequestsTotal.WithLabelValues(string(req.Mode()), "ok").Inc()
	log.Info("Analysis processed",
		zap.Bool("company_found", stats.company != ""),
		zap.Int("context_len", stats.contextLen),
		zap.Int("prompt_len", stats.promptLen),
		zap.Duration("duration", time.Since(start)),
	)
	return out, nil
}

type processStats struct {
	company    string
	contextLen int
	promptLen  int
}

func (s *Service) process(ctx context.Context, req domanalysis.Request) (string, processStats, error) {
	log := logger.FromContext(ctx)
	var stats processStats

	in := prompt.Input{
		Resume:         req.Resume(),
		JobDescription: req.JobDescription(),
	}

	switch r := req.(type) {
	case domanalysis.FullAnalysis:
		in.Company = s.companyInsights(ctx, r.JobDescription(), &stats)
	case domanalysis.FollowUp:
		in.PreviousOutput = r.PreviousOutput()
		in.Question = r.Question()
	}

	retrieved, err := s.retriever.Retrieve(ctx, req.Query(), s.cfg.Collection, s.cfg.TopK)
	if err != nil {
		return "", stats, fmt.Errorf("retrieve context: %w", err)
	}
	in.RetrievedContext = retrieved
	stats.contextLen = len(retrieved)
	log.Debug("Context retrieved", zap.Int("context_len", stats.contextLen))

	text := prompt.Build(in)
	stats.promptLen = len(text)
	log.Debug("Prompt built", zap.Strings("sections", prompt.Sections(in)))

	genCtx := ctx
	if s.cfg.GenerateTimeout > 0 {
		var cancel context.CancelFunc
		genCtx, cancel = context.WithTimeout(ctx, s.cfg.GenerateTimeout)
		defer cancel()
	}

	out, err := s.generator.Generate(genCtx, text, s.cfg.Model)
	if err != nil {
		return "", stats, fmt.Errorf("generate: %w", err)
	}
	return out, stats, nil
}

func (s *Service) companyInsights(ctx context.Context, jd string, stats *processStats) *domcompany.Info {
	name, ok := company.ExtractCompanyName(jd)
	if !ok {
		logger.FromContext(ctx).Debug("No company name in job description")
		return nil
	}
	stats.company = name
	if s.scraper == nil {
		return nil
	}
	info := s.scraper.ScrapeCompanyInfo(ctx, name)
	return &info
}
