// Package memory provides the in-memory snapshot store used for tests,
// ephemeral runs, and as the working state behind the durable stores.
package memory

import (
	"context"
	"sync"

	"continuitycore/pkg/domain"
)

// Compile-time contract assertion.
var _ domain.PersistentStore = (*Store)(nil)

// Store holds one authoritative snapshot guarded by a lock. Mutations run on
// a deep clone and the clone is swapped in only when the mutation function
// succeeds, so a reader never observes a partially updated snapshot.
type Store struct {
	mu   sync.RWMutex
	snap domain.Snapshot
}

// NewStore constructs a store holding the given initial snapshot.
func NewStore(initial domain.Snapshot) *Store {
	return &Store{snap: initial.Clone()}
}

// NewSeededStore constructs a store initialized from the example dataset.
func NewSeededStore() *Store {
	return NewStore(domain.SeedSnapshot())
}

// Update applies fn to a clone of the current snapshot and commits the clone
// when fn returns nil. On error the previous snapshot is returned unchanged.
func (s *Store) Update(ctx context.Context, fn func(*domain.Snapshot) error) (domain.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return domain.Snapshot{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	work := s.snap.Clone()
	if err := fn(&work); err != nil {
		return s.snap.Clone(), err
	}
	s.snap = work
	return work.Clone(), nil
}

// View runs fn against a read-only copy of the current snapshot.
func (s *Store) View(ctx context.Context, fn func(domain.Snapshot) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.RLock()
	snap := s.snap.Clone()
	s.mu.RUnlock()
	return fn(snap)
}

// Current returns a deep copy of the current snapshot.
func (s *Store) Current(ctx context.Context) (domain.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return domain.Snapshot{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap.Clone(), nil
}

// Replace swaps the entire snapshot.
func (s *Store) Replace(ctx context.Context, snap domain.Snapshot) (domain.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return domain.Snapshot{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap = snap.Clone()
	return s.snap.Clone(), nil
}

// Close is a no-op for the in-memory store.
func (s *Store) Close() error { return nil }
