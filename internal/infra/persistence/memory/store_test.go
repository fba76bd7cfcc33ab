package memory

import (
	"context"
	"errors"
	"testing"

	"continuitycore/pkg/domain"
)

func TestUpdateCommitsOnSuccess(t *testing.T) {
	store := NewSeededStore()
	ctx := context.Background()

	snap, err := store.Update(ctx, func(s *domain.Snapshot) error {
		s.Company.Name = "Committed Corp"
		return nil
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if snap.Company.Name != "Committed Corp" {
		t.Fatalf("returned snapshot missing change")
	}
	current, err := store.Current(ctx)
	if err != nil {
		t.Fatalf("current: %v", err)
	}
	if current.Company.Name != "Committed Corp" {
		t.Fatalf("committed change lost")
	}
}

func TestUpdateRollsBackOnError(t *testing.T) {
	store := NewSeededStore()
	ctx := context.Background()
	boom := errors.New("boom")

	snap, err := store.Update(ctx, func(s *domain.Snapshot) error {
		s.Company.Name = "Should Not Persist"
		s.Users = nil
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if snap.Company.Name != "Acme Corporation" {
		t.Fatalf("failed update returned mutated snapshot")
	}
	current, err := store.Current(ctx)
	if err != nil {
		t.Fatalf("current: %v", err)
	}
	if current.Company.Name != "Acme Corporation" || len(current.Users) == 0 {
		t.Fatalf("failed update leaked into store")
	}
}

func TestCurrentReturnsIsolatedCopy(t *testing.T) {
	store := NewSeededStore()
	ctx := context.Background()

	first, err := store.Current(ctx)
	if err != nil {
		t.Fatalf("current: %v", err)
	}
	first.Users[0].FirstName = "Mutated"
	first.Departments[0].Processes[0].Name = "Mutated"

	second, err := store.Current(ctx)
	if err != nil {
		t.Fatalf("current: %v", err)
	}
	if second.Users[0].FirstName == "Mutated" || second.Departments[0].Processes[0].Name == "Mutated" {
		t.Fatalf("caller mutation reached the store")
	}
}

func TestReplaceSwapsWholeSnapshot(t *testing.T) {
	store := NewSeededStore()
	ctx := context.Background()

	next := domain.SeedSnapshot()
	next.Company.Name = "Replaced Corp"
	snap, err := store.Replace(ctx, next)
	if err != nil {
		t.Fatalf("replace: %v", err)
	}
	if snap.Company.Name != "Replaced Corp" {
		t.Fatalf("replace returned stale snapshot")
	}

	// The caller's copy must not alias store state.
	next.Company.Name = "Mutated After Replace"
	current, err := store.Current(ctx)
	if err != nil {
		t.Fatalf("current: %v", err)
	}
	if current.Company.Name != "Replaced Corp" {
		t.Fatalf("store aliases caller snapshot")
	}
}

func TestUpdateHonorsContextCancellation(t *testing.T) {
	store := NewSeededStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := store.Update(ctx, func(*domain.Snapshot) error { return nil }); err == nil {
		t.Fatalf("expected context error")
	}
	if err := store.View(ctx, func(domain.Snapshot) error { return nil }); err == nil {
		t.Fatalf("expected context error from view")
	}
}

func TestViewSeesCommittedState(t *testing.T) {
	store := NewSeededStore()
	ctx := context.Background()
	if _, err := store.Update(ctx, func(s *domain.Snapshot) error {
		s.Company.Name = "Viewed Corp"
		return nil
	}); err != nil {
		t.Fatalf("update: %v", err)
	}
	var seen string
	if err := store.View(ctx, func(s domain.Snapshot) error {
		seen = s.Company.Name
		return nil
	}); err != nil {
		t.Fatalf("view: %v", err)
	}
	if seen != "Viewed Corp" {
		t.Fatalf("view saw %q", seen)
	}
}
