// Package sqlite implements the on-disk document store on modernc.org/sqlite.
// Similarity is computed in Go over the collection's vectors.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/kailas-cloud/interviewprep/internal/db"
	"github.com/kailas-cloud/interviewprep/internal/domain"
)

// Compile-time check: Store implements db.Store.
var _ db.Store = (*Store)(nil)

const schema = `
CREATE TABLE IF NOT EXISTS collections (
	name       TEXT PRIMARY KEY,
	dim        INTEGER NOT NULL,
	created_at TEXT NOT NULL DEFAULT (datetime('now'))
);
CREATE TABLE IF NOT EXISTS documents (
	collection TEXT NOT NULL REFERENCES collections(name) ON DELETE CASCADE,
	id         TEXT NOT NULL,
	text       TEXT NOT NULL,
	vector     BLOB NOT NULL,
	PRIMARY KEY (collection, id)
);
CREATE TABLE IF NOT EXISTS kv (
	key   TEXT PRIMARY KEY,
	value BLOB NOT NULL
);`

// Store is a document store backed by a single SQLite file.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the database at path, creating parent directories
// and the schema as needed.
func Open(ctx context.Context, path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, unavailable(db.OpOpen, fmt.Errorf("mkdir %s: %w", dir, err))
		}
	}

	dsn := "file:" + path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)"
	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, unavailable(db.OpOpen, err)
	}
	conn.SetMaxOpenConns(1) // single writer

	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, unavailable(db.OpOpen, err)
	}
	if _, err := conn.ExecContext(ctx, schema); err != nil {
		_ = conn.Close()
		return nil, unavailable(db.OpMigrate, err)
	}

	return &Store{db: conn}, nil
}

// Ping checks that the database file is still reachable.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// Close releases the underlying connection pool.
func (s *Store) Close() {
	_ = s.db.Close()
}

func unavailable(op string, err error) error {
	return fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, &db.Error{Op: op, Err: err})
}
