package sqlite

import (
	"cmp"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"

	"github.com/kailas-cloud/interviewprep/internal/db"
	"github.com/kailas-cloud/interviewprep/internal/domain"
)

// Upsert inserts or overwrites documents by ID. The first upsert into a
// collection fixes its vector dimension.
func (s *Store) Upsert(ctx context.Context, collection string, docs []domain.Document) error {
	if len(docs) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return &db.Error{Op: db.OpUpsert, Err: err}
	}
	defer func() { _ = tx.Rollback() }()

	dim, err := collectionDim(ctx, tx, collection)
	if err != nil {
		return err
	}
	if dim == 0 {
		dim = len(docs[0].Vector)
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO collections (name, dim) VALUES (?, ?)`, collection, dim); err != nil {
			return &db.Error{Op: db.OpUpsert, Err: err}
		}
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO documents (collection, id, text, vector) VALUES (?, ?, ?, ?)
		ON CONFLICT (collection, id) DO UPDATE SET text = excluded.text, vector = excluded.vector`)
	if err != nil {
		return &db.Error{Op: db.OpUpsert, Err: err}
	}
	defer func() { _ = stmt.Close() }()

	for _, d := range docs {
		if len(d.Vector) == 0 || len(d.Vector) != dim {
			return fmt.Errorf("document %s: got %d, collection %s has %d: %w",
				d.ID, len(d.Vector), collection, dim, domain.ErrVectorDimMismatch)
		}
		if _, err := stmt.ExecContext(ctx, collection, d.ID, d.Text, encodeVector(d.Vector)); err != nil {
			return &db.Error{Op: db.OpUpsert, Err: fmt.Errorf("document %s: %w", d.ID, err)}
		}
	}

	if err := tx.Commit(); err != nil {
		return &db.Error{Op: db.OpUpsert, Err: err}
	}
	return nil
}

// Query returns up to k document texts ordered by descending cosine
// similarity to vector. A missing collection yields an empty result.
func (s *Store) Query(ctx context.Context, collection string, vector []float32, k int) ([]string, error) {
	if k <= 0 {
		return nil, nil
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, text, vector FROM documents WHERE collection = ?`, collection)
	if err != nil {
		return nil, &db.Error{Op: db.OpQuery, Err: err}
	}
	defer func() { _ = rows.Close() }()

	type hit struct {
		id    string
		text  string
		score float64
	}
	var hits []hit
	for rows.Next() {
		var (
			h    hit
			blob []byte
		)
		if err := rows.Scan(&h.id, &h.text, &blob); err != nil {
			return nil, &db.Error{Op: db.OpQuery, Err: err}
		}
		h.score = cosine(vector, decodeVector(blob))
		hits = append(hits, h)
	}
	if err := rows.Err(); err != nil {
		return nil, &db.Error{Op: db.OpQuery, Err: err}
	}

	slices.SortStableFunc(hits, func(a, b hit) int {
		if c := cmp.Compare(b.score, a.score); c != 0 {
			return c
		}
		return cmp.Compare(a.id, b.id)
	})

	n := min(k, len(hits))
	texts := make([]string, 0, n)
	for _, h := range hits[:n] {
		texts = append(texts, h.text)
	}
	return texts, nil
}

// Reset drops a collection and all its documents.
func (s *Store) Reset(ctx context.Context, collection string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return &db.Error{Op: db.OpUpsert, Err: err}
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM documents WHERE collection = ?`, collection); err != nil {
		return &db.Error{Op: db.OpUpsert, Err: err}
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM collections WHERE name = ?`, collection); err != nil {
		return &db.Error{Op: db.OpUpsert, Err: err}
	}
	if err := tx.Commit(); err != nil {
		return &db.Error{Op: db.OpUpsert, Err: err}
	}
	return nil
}

// collectionDim returns the recorded dimension, or 0 when the collection is new.
func collectionDim(ctx context.Context, tx *sql.Tx, collection string) (int, error) {
	var dim int
	err := tx.QueryRowContext(ctx, `SELECT dim FROM collections WHERE name = ?`, collection).Scan(&dim)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return 0, nil
	case err != nil:
		return 0, &db.Error{Op: db.OpUpsert, Err: err}
	}
	return dim, nil
}
