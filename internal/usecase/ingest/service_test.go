package ingest

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kailas-cloud/interviewprep/internal/domain"
)

type mockStore struct {
	upserted   []domain.Document
	collection string
	resets     int
	upsertErr  error
}

func (m *mockStore) Upsert(_ context.Context, collection string, docs []domain.Document) error {
	m.collection = collection
	m.upserted = append(m.upserted, docs...)
	return m.upsertErr
}

func (m *mockStore) Reset(_ context.Context, _ string) error {
	m.resets++
	return nil
}

type mockEmbedder struct {
	err error
}

func (m *mockEmbedder) Embed(_ context.Context, text string) (domain.EmbeddingResult, error) {
	if m.err != nil {
		return domain.EmbeddingResult{}, m.err
	}
	return domain.EmbeddingResult{Embedding: []float32{float32(len(text)), 1}}, nil
}

func TestCurated(t *testing.T) {
	docs := Curated()
	if len(docs) != 5 {
		t.Fatalf("expected 5 curated documents, got %d", len(docs))
	}
	if docs[0].ID != "doc1" || !strings.HasPrefix(docs[0].Text, "Technical Interview Preparation:") {
		t.Errorf("unexpected first document %+v", docs[0])
	}
	if !strings.Contains(docs[4].Text, "STAR stories") {
		t.Errorf("unexpected last document %q", docs[4].Text)
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"missing text", "documents:\n  - id: a\n"},
		{"missing id", "documents:\n  - text: hello\n"},
		{"duplicate id", "documents:\n  - id: a\n    text: x\n  - id: a\n    text: y\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.data)); !errors.Is(err, domain.ErrInvalidRequest) {
				t.Fatalf("expected ErrInvalidRequest, got %v", err)
			}
		})
	}
}

func TestParse_Malformed(t *testing.T) {
	if _, err := Parse([]byte("documents: [")); err == nil {
		t.Fatal("expected yaml error")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docs.yaml")
	if err := os.WriteFile(path, []byte("documents:\n  - id: faq\n    text: Ask about on-call.\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	docs, err := LoadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(docs) != 1 || docs[0].ID != "faq" || docs[0].Text != "Ask about on-call." {
		t.Errorf("unexpected docs %+v", docs)
	}
}

func TestLoadFile_Missing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestIngest(t *testing.T) {
	store := &mockStore{}
	svc := New(store, &mockEmbedder{}, "")

	n, err := svc.Ingest(context.Background(), Curated(), Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 5 || len(store.upserted) != 5 {
		t.Fatalf("expected 5 documents, got n=%d upserted=%d", n, len(store.upserted))
	}
	if store.collection != domain.DefaultCollection {
		t.Errorf("unexpected collection %q", store.collection)
	}
	if store.resets != 0 {
		t.Error("reset must only run when requested")
	}
	if len(store.upserted[0].Vector) != 2 {
		t.Errorf("expected embedded vector, got %v", store.upserted[0].Vector)
	}
}

func TestIngest_Reset(t *testing.T) {
	store := &mockStore{}
	svc := New(store, &mockEmbedder{}, "custom")

	if _, err := svc.Ingest(context.Background(), nil, Options{Reset: true}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.resets != 1 {
		t.Errorf("expected one reset, got %d", store.resets)
	}
	if len(store.upserted) != 0 {
		t.Error("nothing must be written for an empty batch")
	}
}

func TestIngest_EmbedFailureWritesNothing(t *testing.T) {
	store := &mockStore{}
	svc := New(store, &mockEmbedder{err: domain.ErrEmbeddingFailure}, "")

	_, err := svc.Ingest(context.Background(), Curated(), Options{})
	if !errors.Is(err, domain.ErrEmbeddingFailure) {
		t.Fatalf("expected ErrEmbeddingFailure, got %v", err)
	}
	if len(store.upserted) != 0 {
		t.Error("partial batches must not be written")
	}
}

func TestIngest_StoreFailure(t *testing.T) {
	store := &mockStore{upsertErr: domain.ErrVectorDimMismatch}
	svc := New(store, &mockEmbedder{}, "")

	if _, err := svc.Ingest(context.Background(), Curated(), Options{}); !errors.Is(err, domain.ErrVectorDimMismatch) {
		t.Fatalf("expected ErrVectorDimMismatch, got %v", err)
	}
}
