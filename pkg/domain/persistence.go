package domain

import "context"

// PersistentStore is the contract every snapshot store implements. Update
// runs fn against a private copy of the current snapshot and publishes the
// copy only when fn returns nil, so readers never observe partial writes.
type PersistentStore interface {
	// Update applies fn transactionally and returns the committed snapshot.
	Update(ctx context.Context, fn func(*Snapshot) error) (Snapshot, error)
	// View runs fn against a read-only copy of the current snapshot.
	View(ctx context.Context, fn func(Snapshot) error) error
	// Current returns a deep copy of the current snapshot.
	Current(ctx context.Context) (Snapshot, error)
	// Replace swaps the entire snapshot, as backup restore does.
	Replace(ctx context.Context, snap Snapshot) (Snapshot, error)
	// Close releases any underlying resources.
	Close() error
}
