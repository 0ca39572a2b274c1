package sqlite

import (
	"context"
	"errors"
	"math"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/kailas-cloud/interviewprep/internal/db"
	"github.com/kailas-cloud/interviewprep/internal/domain"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(context.Background(), filepath.Join(t.TempDir(), "data", "test.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(s.Close)
	return s
}

func seed(t *testing.T, s *Store) {
	t.Helper()
	docs := []domain.Document{
		{ID: "doc1", Text: "technical prep", Vector: []float32{1, 0, 0}},
		{ID: "doc2", Text: "interview rounds", Vector: []float32{0, 1, 0}},
		{ID: "doc3", Text: "skill gaps", Vector: []float32{0.9, 0.1, 0}},
	}
	if err := s.Upsert(context.Background(), "interview_prep", docs); err != nil {
		t.Fatalf("upsert: %v", err)
	}
}

func TestOpen_CreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "kb.db")
	s, err := Open(context.Background(), path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer s.Close()

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected database file, got %v", err)
	}
	if err := s.Ping(context.Background()); err != nil {
		t.Fatalf("ping: %v", err)
	}
}

func TestOpen_Unavailable(t *testing.T) {
	// A regular file where a directory is expected.
	blocker := filepath.Join(t.TempDir(), "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := Open(context.Background(), filepath.Join(blocker, "kb.db"))
	if !errors.Is(err, domain.ErrStoreUnavailable) {
		t.Fatalf("expected ErrStoreUnavailable, got %v", err)
	}
}

func TestQuery_OrderedBySimilarity(t *testing.T) {
	s := openTestStore(t)
	seed(t, s)

	got, err := s.Query(context.Background(), "interview_prep", []float32{1, 0, 0}, 3)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	want := []string{"technical prep", "skill gaps", "interview rounds"}
	if !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestQuery_LimitsToK(t *testing.T) {
	s := openTestStore(t)
	seed(t, s)

	got, err := s.Query(context.Background(), "interview_prep", []float32{0, 1, 0}, 1)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != 1 || got[0] != "interview rounds" {
		t.Errorf("got %v", got)
	}
}

func TestQuery_MissingCollection(t *testing.T) {
	s := openTestStore(t)

	got, err := s.Query(context.Background(), "nope", []float32{1, 0, 0}, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty result, got %v", got)
	}
}

func TestUpsert_Idempotent(t *testing.T) {
	s := openTestStore(t)
	seed(t, s)
	seed(t, s)

	got, err := s.Query(context.Background(), "interview_prep", []float32{1, 0, 0}, 10)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != 3 {
		t.Errorf("expected 3 documents after re-upsert, got %d", len(got))
	}
}

func TestUpsert_OverwritesByID(t *testing.T) {
	s := openTestStore(t)
	seed(t, s)

	err := s.Upsert(context.Background(), "interview_prep", []domain.Document{
		{ID: "doc2", Text: "updated rounds", Vector: []float32{1, 0, 0}},
	})
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}

	got, err := s.Query(context.Background(), "interview_prep", []float32{0, 0, 1}, 10)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 documents, got %v", got)
	}
	if !slices.Contains(got, "updated rounds") || slices.Contains(got, "interview rounds") {
		t.Errorf("expected doc2 text to be replaced, got %v", got)
	}
}

func TestUpsert_DimensionMismatch(t *testing.T) {
	s := openTestStore(t)
	seed(t, s)

	err := s.Upsert(context.Background(), "interview_prep", []domain.Document{
		{ID: "doc9", Text: "wrong", Vector: []float32{1, 0}},
	})
	if !errors.Is(err, domain.ErrVectorDimMismatch) {
		t.Fatalf("expected ErrVectorDimMismatch, got %v", err)
	}
}

func TestReset(t *testing.T) {
	s := openTestStore(t)
	seed(t, s)

	if err := s.Reset(context.Background(), "interview_prep"); err != nil {
		t.Fatalf("reset: %v", err)
	}
	got, err := s.Query(context.Background(), "interview_prep", []float32{1, 0, 0}, 3)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty after reset, got %v", got)
	}

	// Dimension is released with the collection.
	err = s.Upsert(context.Background(), "interview_prep", []domain.Document{
		{ID: "doc1", Text: "2d", Vector: []float32{1, 0}},
	})
	if err != nil {
		t.Fatalf("upsert after reset: %v", err)
	}
}

func TestKV(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if _, err := s.Get(ctx, "missing"); !errors.Is(err, db.ErrKeyNotFound) {
		t.Fatalf("expected ErrKeyNotFound, got %v", err)
	}
	if err := s.Set(ctx, "k", []byte("v1")); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := s.Set(ctx, "k", []byte("v2")); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	got, err := s.Get(ctx, "k")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(got) != "v2" {
		t.Errorf("expected v2, got %q", got)
	}
}

func TestCosine(t *testing.T) {
	tests := []struct {
		name string
		a, b []float32
		want float64
	}{
		{"identical", []float32{1, 2}, []float32{1, 2}, 1},
		{"orthogonal", []float32{1, 0}, []float32{0, 1}, 0},
		{"opposite", []float32{1, 0}, []float32{-1, 0}, -1},
		{"zero norm", []float32{0, 0}, []float32{1, 0}, 0},
		{"length mismatch", []float32{1}, []float32{1, 0}, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := cosine(tc.a, tc.b); math.Abs(got-tc.want) > 1e-9 {
				t.Errorf("cosine = %f, want %f", got, tc.want)
			}
		})
	}
}

func TestVectorRoundTrip(t *testing.T) {
	in := []float32{0.5, -1.25, 3}
	if got := decodeVector(encodeVector(in)); !slices.Equal(got, in) {
		t.Errorf("got %v, want %v", got, in)
	}
	if decodeVector([]byte{1, 2, 3}) != nil {
		t.Error("expected nil for truncated blob")
	}
}
