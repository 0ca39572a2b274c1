package company

import "context"

// SnippetFetcher returns raw text fragments found for a search query.
type SnippetFetcher interface {
	FetchSnippets(ctx context.Context, query string) ([]string, error)
}
