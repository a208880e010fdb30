package env

import (
	"fmt"
	"lottery_backend/internal/config"
	"os"
)

const (
	storageDriverEnvName = "STORAGE_DRIVER"
	logLevelEnvName      = "LOG_LEVEL"

	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)

type storageConfig struct {
	driver string
}

// NewStorageConfig - по умолчанию postgres
func NewStorageConfig() (config.StorageConfig, error) {
	driver := os.Getenv(storageDriverEnvName)
	if len(driver) == 0 {
		driver = StorageDriverPostgres
	}

	if driver != StorageDriverPostgres && driver != StorageDriverMemory {
		return nil, fmt.Errorf("unknown storage driver %q", driver)
	}

	return &storageConfig{driver: driver}, nil
}

func (cfg *storageConfig) Driver() string {
	return cfg.driver
}

type logConfig struct {
	level string
}

func NewLogConfig() config.LogConfig {
	level := os.Getenv(logLevelEnvName)
	if len(level) == 0 {
		level = "info"
	}
	return &logConfig{level: level}
}

func (cfg *logConfig) Level() string {
	return cfg.level
}
