// Package postgres provides a Postgres-backed persistent store mirroring the
// in-memory semantics, snapshotting the full state after every commit.
package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	_ "github.com/jackc/pgx/v5/stdlib" // register pgx as a database/sql driver

	"continuitycore/internal/infra/persistence/memory"
	"continuitycore/pkg/domain"
)

// Compile-time contract assertion.
var _ domain.PersistentStore = (*Store)(nil)

const (
	defaultDriver  = "pgx"
	defaultDSN     = "postgres://localhost/continuitycore?sslmode=disable"
	snapshotBucket = "snapshot"
)

// Logger is the slice of the structured logging surface the store uses for
// swallowed persistence failures. *slog.Logger satisfies it.
type Logger interface {
	Warn(msg string, args ...any)
}

type noopLogger struct{}

func (noopLogger) Warn(string, ...any) {}

// Store persists snapshots to a single-row Postgres state table.
type Store struct {
	*memory.Store
	db     *sql.DB
	mu     sync.Mutex
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

// NewStore opens a Postgres-backed store using the provided DSN (falls back
// to a localhost default), ensures the state table exists, and hydrates the
// in-memory store from any persisted snapshot. A malformed snapshot falls
// back to the seed dataset without surfacing an error.
func NewStore(dsn string, opts ...Option) (*Store, error) {
	if dsn == "" {
		dsn = defaultDSN
	}
	db, err := sql.Open(defaultDriver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	ctx := context.Background()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS state (
		bucket TEXT PRIMARY KEY,
		payload BYTEA NOT NULL
	)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create state table: %w", err)
	}
	s := &Store{db: db, logger: noopLogger{}}
	for _, opt := range opts {
		opt(s)
	}
	s.Store = memory.NewStore(s.load(ctx))
	return s, nil
}

func (s *Store) load(ctx context.Context) domain.Snapshot {
	var payload []byte
	err := s.db.QueryRowContext(ctx, `SELECT payload FROM state WHERE bucket = $1`, snapshotBucket).Scan(&payload)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return domain.SeedSnapshot()
	case err != nil:
		s.logger.Warn("read persisted snapshot failed, using seed", "error", err)
		return domain.SeedSnapshot()
	}
	var snap domain.Snapshot
	if err := json.Unmarshal(payload, &snap); err != nil {
		s.logger.Warn("decode persisted snapshot failed, using seed", "error", err)
		return domain.SeedSnapshot()
	}
	return snap
}

func (s *Store) persist(snap domain.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	payload, err := json.Marshal(snap)
	if err != nil {
		s.logger.Warn("encode snapshot failed", "error", err)
		return
	}
	if _, err := s.db.Exec(
		`INSERT INTO state(bucket, payload) VALUES($1, $2)
		 ON CONFLICT(bucket) DO UPDATE SET payload = EXCLUDED.payload`,
		snapshotBucket, payload,
	); err != nil {
		s.logger.Warn("write snapshot failed", "error", err)
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
