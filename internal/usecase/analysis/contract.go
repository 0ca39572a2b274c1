package analysis

import (
	"context"

	domcompany "github.com/kailas-cloud/interviewprep/internal/domain/company"
)

// CompanyScraper returns best-effort interview insights for a company.
type CompanyScraper interface {
	ScrapeCompanyInfo(ctx context.Context, name string) domcompany.Info
}

// Retriever returns the reference context for a query.
type Retriever interface {
	Retrieve(ctx context.Context, query, collection string, k int) (string, error)
}

// Generator submits the built prompt to an LLM.
type Generator interface {
	Generate(ctx context.Context, prompt, model string) (string, error)
}
