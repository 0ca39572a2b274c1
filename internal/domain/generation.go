package domain

import "context"

// Generator submits a fully built prompt to an LLM and returns its text verbatim.
type Generator interface {
	Generate(ctx context.Context, prompt, model string) (string, error)
}
