package domain

import "errors"

var (
	// ErrInvalidRequest signals a malformed or incomplete analysis request.
	ErrInvalidRequest = errors.New("invalid request")
	// ErrEmbeddingFailure signals that the embedding model is unavailable or produced no output.
	ErrEmbeddingFailure = errors.New("embedding failure")
	// ErrStoreUnavailable signals that the document store cannot be opened or created.
	ErrStoreUnavailable = errors.New("document store unavailable")
	// ErrVectorDimMismatch signals a vector whose length differs from the collection dimension.
	ErrVectorDimMismatch = errors.New("vector dimension mismatch")
	// ErrGenerationFailure signals that the LLM call failed or returned nothing.
	ErrGenerationFailure = errors.New("generation failure")
	// ErrServiceFailure is the opaque failure returned for any failed analysis.
	ErrServiceFailure = errors.New("service failure")
)
