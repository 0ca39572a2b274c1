package domain

// KeyPrefix namespaces every key this service writes to a shared store.
const KeyPrefix = "interviewprep:"

// DefaultCollection is the knowledge-base collection queried during analysis.
const DefaultCollection = "interview_prep"

// DefaultTopK is the number of reference documents retrieved per request.
const DefaultTopK = 3

// Document is a reference text in the knowledge base. Immutable after ingestion.
type Document struct {
	ID     string
	Text   string
	Vector []float32
}
