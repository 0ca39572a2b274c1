package analysis

import (
	"context"

	domcompany "github.com/kailas-cloud/interviewprep/internal/domain/company"
)

type mockScraper struct {
	calls []string
	info  domcompany.Info
}

func (m *mockScraper) ScrapeCompanyInfo(_ context.Context, name string) domcompany.Info {
	m.calls = append(m.calls, name)
	return m.info
}

type mockRetriever struct {
	retrieveFn func(ctx context.Context, query, collection string, k int) (string, error)
}

func (m *mockRetriever) Retrieve(ctx context.Context, query, collection string, k int) (string, error) {
	if m.retrieveFn != nil {
		return m.retrieveFn(ctx, query, collection, k)
	}
	return "", nil
}

type mockGenerator struct {
	prompt string
	model  string
	out    string
	err    error
}

func (m *mockGenerator) Generate(_ context.Context, prompt, model string) (string, error) {
	m.prompt = prompt
	m.model = model
	return m.out, m.err
}
