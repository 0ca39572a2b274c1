// Package scrape fetches search-result snippets over HTTP and extracts them
// from the returned HTML.
package scrape

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const maxBodyBytes = 2 << 20

// Config holds the search endpoint settings.
type Config struct {
	SearchURL  string
	UserAgent  string
	Selector   string
	Timeout    time.Duration
	RatePerSec float64 // <= 0 disables throttling
	Burst      int
	Logger     *zap.Logger
}

// Fetcher runs one GET per query against a search page and returns the text
// of every element matching the selector.
type Fetcher struct {
	client    *http.Client
	searchURL string
	userAgent string
	selector  string
	limiter   *rate.Limiter
	logger    *zap.Logger
}

// New creates a Fetcher. Redirects are followed by the default policy.
func New(cfg Config) *Fetcher {
	limit := rate.Inf
	if cfg.RatePerSec > 0 {
		limit = rate.Limit(cfg.RatePerSec)
	}
	burst := max(cfg.Burst, 1)

	return &Fetcher{
		client:    &http.Client{Timeout: cfg.Timeout},
		searchURL: cfg.SearchURL,
		userAgent: cfg.UserAgent,
		selector:  cfg.Selector,
		limiter:   rate.NewLimiter(limit, burst),
		logger:    cfg.Logger,
	}
}

// FetchSnippets implements company.SnippetFetcher.
func (f *Fetcher) FetchSnippets(ctx context.Context, query string) ([]string, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit: %w", err)
	}

	u, err := url.Parse(f.searchURL)
	if err != nil {
		return nil, fmt.Errorf("parse search url: %w", err)
	}
	q := u.Query()
	q.Set("q", query)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	start := time.Now()
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search status %d", resp.StatusCode)
	}

	snippets, err := parseSnippets(io.LimitReader(resp.Body, maxBodyBytes), f.selector)
	if err != nil {
		return nil, err
	}

	f.logger.Debug("Search page scraped",
		zap.Duration("duration", time.Since(start)),
		zap.Int("snippets", len(snippets)),
	)
	return snippets, nil
}

// parseSnippets returns the trimmed, non-empty text of all selector matches.
func parseSnippets(r io.Reader, selector string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("goquery parse: %w", err)
	}

	var out []string
	doc.Find(selector).Each(func(_ int, s *goquery.Selection) {
		if text := strings.TrimSpace(s.Text()); text != "" {
			out = append(out, text)
		}
	})
	return out, nil
}
