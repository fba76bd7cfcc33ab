// Package sqlite provides a SQLite-backed persistent store. It reuses the
// in-memory store for transaction semantics and writes the full snapshot as
// one JSON document after every successful commit.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite" // pure go sqlite driver

	"continuitycore/internal/infra/persistence/memory"
	"continuitycore/pkg/domain"
)

// Compile-time contract assertion.
var _ domain.PersistentStore = (*Store)(nil)

const snapshotBucket = "snapshot"

// Logger is the slice of the structured logging surface the store uses for
// swallowed persistence failures. *slog.Logger satisfies it.
type Logger interface {
	Warn(msg string, args ...any)
}

type noopLogger struct{}

func (noopLogger) Warn(string, ...any) {}

// Store persists snapshots to a single-row SQLite state table.
type Store struct {
	*memory.Store
	db     *sql.DB
	mu     sync.Mutex
	path   string
	logger Logger
}

// Option customizes a Store.
type Option func(*Store)

// WithLogger installs a logger for swallowed write failures.
func WithLogger(l Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewStore opens (or creates) the SQLite file at path and hydrates the store
// from the persisted snapshot. A missing, unreadable, or malformed snapshot
// falls back to the seed dataset without surfacing an error.
func NewStore(path string, opts ...Option) (*Store, error) {
	if path == "" {
		path = "continuitycore.db"
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil && !errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("create dirs: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS state (
		bucket TEXT PRIMARY KEY,
		payload BLOB NOT NULL
	)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create state table: %w", err)
	}
	s := &Store{db: db, path: path, logger: noopLogger{}}
	for _, opt := range opts {
		opt(s)
	}
	s.Store = memory.NewStore(s.load())
	return s, nil
}

// load reads the persisted snapshot. Every failure mode resolves to the seed
// dataset; loading is all-or-nothing.
func (s *Store) load() domain.Snapshot {
	var payload []byte
	err := s.db.QueryRow(`SELECT payload FROM state WHERE bucket = ?`, snapshotBucket).Scan(&payload)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return domain.SeedSnapshot()
	case err != nil:
		s.logger.Warn("read persisted snapshot failed, using seed", "path", s.path, "error", err)
		return domain.SeedSnapshot()
	}
	var snap domain.Snapshot
	if err := json.Unmarshal(payload, &snap); err != nil {
		s.logger.Warn("decode persisted snapshot failed, using seed", "path", s.path, "error", err)
		return domain.SeedSnapshot()
	}
	return snap
}

// persist writes the committed snapshot. Failures are logged, never surfaced;
// the in-memory state stays authoritative for the session.
func (s *Store) persist(snap domain.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	payload, err := json.Marshal(snap)
	if err != nil {
		s.logger.Warn("encode snapshot failed", "error", err)
		return
	}
	if _, err := s.db.Exec(
		`INSERT INTO state(bucket, payload) VALUES(?, ?)
		 ON CONFLICT(bucket) DO UPDATE SET payload = excluded.payload`,
		snapshotBucket, payload,
	); err != nil {
		s.logger.Warn("write snapshot failed", "path", s.path, "error", err)
	}
}

// Update applies fn through the in-memory store and writes through on commit.
func (s *Store) Update(ctx context.Context, fn func(*domain.Snapshot) error) (domain.Snapshot, error) {
	snap, err := s.Store.Update(ctx, fn)
	if err != nil {
		return snap, err
	}
	s.persist(snap)
	return snap, nil
}

// Replace swaps the snapshot wholesale and writes through.
func (s *Store) Replace(ctx context.Context, snap domain.Snapshot) (domain.Snapshot, error) {
	committed, err := s.Store.Replace(ctx, snap)
	if err != nil {
		return committed, err
	}
	s.persist(committed)
	return committed, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
