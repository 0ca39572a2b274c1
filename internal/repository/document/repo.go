// Package document stores the knowledge base in Redis/Valkey: one HASH per
// document and one HNSW vector index per collection.
package document

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"

	"github.com/kailas-cloud/interviewprep/internal/db"
	"github.com/kailas-cloud/interviewprep/internal/domain"
)

const (
	hnswM           = 16
	hnswEFConstruct = 200
)

// store is the consumer interface for documents (ISP).
type store interface {
	HSetMulti(ctx context.Context, items []db.HashSetItem) error
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	Del(ctx context.Context, key string) error
	CreateIndex(ctx context.Context, def *db.IndexDefinition) error
	DropIndex(ctx context.Context, name string, deleteDocs bool) error
	SearchKNN(ctx context.Context, q *db.KNNQuery) (*db.SearchResult, error)
}

// Repo is the Redis-backed document store.
type Repo struct {
	store store
}

// New creates a document repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// Upsert writes documents by ID. The first upsert into a collection records
// its dimension and creates the vector index.
func (r *Repo) Upsert(ctx context.Context, collection string, docs []domain.Document) error {
	if len(docs) == 0 {
		return nil
	}

	dim, err := r.dimension(ctx, collection)
	if err != nil {
		return err
	}
	isNew := dim == 0
	if isNew {
		dim = len(docs[0].Vector)
	}

	items := make([]db.HashSetItem, 0, len(docs)+1)
	for i := range docs {
		d := &docs[i]
		if len(d.Vector) == 0 || len(d.Vector) != dim {
			return fmt.Errorf("document %s: got %d, collection %s has %d: %w",
				d.ID, len(d.Vector), collection, dim, domain.ErrVectorDimMismatch)
		}
		items = append(items, db.HashSetItem{Key: docKey(collection, d.ID), Fields: buildHashFields(d)})
	}

	if isNew {
		if err := r.createIndex(ctx, collection, dim); err != nil {
			return err
		}
		items = append(items, db.HashSetItem{
			Key:    metaKey(collection),
			Fields: map[string]string{"dim": strconv.Itoa(dim)},
		})
	}

	if err := r.store.HSetMulti(ctx, items); err != nil {
		return fmt.Errorf("hset %s: %w", collection, err)
	}
	return nil
}

// Query returns up to k texts by descending cosine similarity. A missing
// index yields an empty result.
func (r *Repo) Query(ctx context.Context, collection string, vector []float32, k int) ([]string, error) {
	if k <= 0 {
		return nil, nil
	}

	result, err := r.store.SearchKNN(ctx, &db.KNNQuery{
		IndexName:    indexName(collection),
		VectorField:  fieldVector,
		Vector:       vector,
		K:            k,
		ReturnFields: []string{fieldID, fieldContent},
	})
	if err != nil {
		if errors.Is(err, db.ErrIndexNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("knn %s: %w", collection, err)
	}
	if result == nil || len(result.Entries) == 0 {
		return nil, nil
	}

	entries := slices.Clone(result.Entries)
	slices.SortStableFunc(entries, func(a, b db.SearchEntry) int {
		return cmp.Compare(b.Score, a.Score)
	})

	n := min(k, len(entries))
	texts := make([]string, 0, n)
	for _, e := range entries[:n] {
		texts = append(texts, e.Fields[fieldContent])
	}
	return texts, nil
}

// Reset drops the collection index together with its documents.
func (r *Repo) Reset(ctx context.Context, collection string) error {
	if err := r.store.DropIndex(ctx, indexName(collection), true); err != nil &&
		!errors.Is(err, db.ErrIndexNotFound) {
		return fmt.Errorf("drop index %s: %w", collection, err)
	}
	if err := r.store.Del(ctx, metaKey(collection)); err != nil {
		return fmt.Errorf("del meta %s: %w", collection, err)
	}
	return nil
}

func (r *Repo) dimension(ctx context.Context, collection string) (int, error) {
	meta, err := r.store.HGetAll(ctx, metaKey(collection))
	if err != nil {
		return 0, fmt.Errorf("hgetall meta %s: %w", collection, err)
	}
	raw, ok := meta["dim"]
	if !ok {
		return 0, nil
	}
	dim, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("parse dim %q for %s: %w", raw, collection, err)
	}
	return dim, nil
}

func (r *Repo) createIndex(ctx context.Context, collection string, dim int) error {
	def, err := db.NewIndex(indexName(collection)).
		Prefix(docPrefix(collection)).
		Tag(fieldID).
		Text(fieldContent).
		VectorHNSW(fieldVector, dim, db.DistanceCosine, hnswM, hnswEFConstruct).
		Build()
	if err != nil {
		return fmt.Errorf("build index %s: %w", collection, err)
	}
	if err := r.store.CreateIndex(ctx, def); err != nil && !errors.Is(err, db.ErrIndexExists) {
		return fmt.Errorf("create index %s: %w", collection, err)
	}
	return nil
}

func docPrefix(collection string) string {
	return fmt.Sprintf("%s%s:doc:", domain.KeyPrefix, collection)
}

func docKey(collection, id string) string {
	return docPrefix(collection) + id
}

func metaKey(collection string) string {
	return fmt.Sprintf("%s%s:meta", domain.KeyPrefix, collection)
}

func indexName(collection string) string {
	return fmt.Sprintf("%s%s:idx", domain.KeyPrefix, collection)
}
