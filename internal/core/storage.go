package core

import (
	"fmt"

	"continuitycore/internal/config"
	"continuitycore/internal/infra/persistence/memory"
	"continuitycore/internal/infra/persistence/postgres"
	"continuitycore/internal/infra/persistence/sqlite"
	"continuitycore/pkg/domain"
)

// StorageDriver identifies a concrete persistent storage implementation.
type StorageDriver string

const (
	StorageMemory   StorageDriver = "memory"   // in-memory only (tests / ephemeral)
	StorageSQLite   StorageDriver = "sqlite"   // embedded sqlite file
	StoragePostgres StorageDriver = "postgres" // PostgreSQL server
)

// OpenPersistentStore selects and opens a snapshot store from configuration.
func OpenPersistentStore(cfg config.Config, logger Logger) (domain.PersistentStore, error) {
	if logger == nil {
		logger = NoopLogger{}
	}
	switch StorageDriver(cfg.StorageDriver) {
	case StorageMemory:
		return memory.NewSeededStore(), nil
	case StorageSQLite, "":
		return sqlite.NewStore(cfg.SQLitePath, sqlite.WithLogger(logger))
	case StoragePostgres:
		return postgres.NewStore(cfg.PostgresDSN, postgres.WithLogger(logger))
	default:
		return nil, fmt.Errorf("unknown storage driver %s", cfg.StorageDriver)
	}
}
