package core

import (
	"context"
	"path/filepath"
	"testing"

	"continuitycore/internal/config"
)

func TestOpenPersistentStoreMemory(t *testing.T) {
	store, err := OpenPersistentStore(config.Config{StorageDriver: "memory"}, nil)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer store.Close()
	snap, err := store.Current(context.Background())
	if err != nil {
		t.Fatalf("current: %v", err)
	}
	if snap.Company.Name != "Acme Corporation" {
		t.Fatalf("memory store not seeded")
	}
}

func TestOpenPersistentStoreSQLite(t *testing.T) {
	cfg := config.Config{
		StorageDriver: "sqlite",
		SQLitePath:    filepath.Join(t.TempDir(), "state.db"),
	}
	store, err := OpenPersistentStore(cfg, NoopLogger{})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer store.Close()
	if _, err := store.Current(context.Background()); err != nil {
		t.Fatalf("current: %v", err)
	}
}

func TestOpenPersistentStoreUnknownDriver(t *testing.T) {
	if _, err := OpenPersistentStore(config.Config{StorageDriver: "oracle"}, nil); err == nil {
		t.Fatalf("expected error for unknown driver")
	}
}

// An empty driver value falls through to sqlite.
func TestOpenPersistentStoreDefaultsToSQLite(t *testing.T) {
	cfg := config.Config{SQLitePath: filepath.Join(t.TempDir(), "state.db")}
	store, err := OpenPersistentStore(cfg, nil)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer store.Close()
}
