// Package config loads process configuration from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config carries every tunable the process reads at startup. All values come
// from CONTINUITYCORE_* environment variables.
type Config struct {
	// StorageDriver selects the snapshot store: memory, sqlite or postgres.
	StorageDriver string `env:"CONTINUITYCORE_STORAGE_DRIVER" envDefault:"sqlite"`
	SQLitePath    string `env:"CONTINUITYCORE_SQLITE_PATH" envDefault:"continuitycore.db"`
	PostgresDSN   string `env:"CONTINUITYCORE_POSTGRES_DSN"`

	// BlobDriver selects where backups and report exports land: fs, memory
	// or s3.
	BlobDriver string `env:"CONTINUITYCORE_BLOB_DRIVER" envDefault:"fs"`
	BlobFSRoot string `env:"CONTINUITYCORE_BLOB_FS_ROOT" envDefault:"artifacts"`

	S3Bucket    string `env:"CONTINUITYCORE_S3_BUCKET"`
	S3Region    string `env:"CONTINUITYCORE_S3_REGION"`
	S3Endpoint  string `env:"CONTINUITYCORE_S3_ENDPOINT"`
	S3AccessKey string `env:"CONTINUITYCORE_S3_ACCESS_KEY"`
	S3SecretKey string `env:"CONTINUITYCORE_S3_SECRET_KEY"`
	S3Prefix    string `env:"CONTINUITYCORE_S3_PREFIX"`
	S3PathStyle bool   `env:"CONTINUITYCORE_S3_PATH_STYLE"`

	LogLevel string `env:"CONTINUITYCORE_LOG_LEVEL" envDefault:"info"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}
