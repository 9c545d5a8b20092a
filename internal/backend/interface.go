package backend

import (
	"context"

	"fundsmart/internal/theme"
)

// CleanupFunc releases the resources behind a store.
type CleanupFunc func() error

// HealthFunc reports whether the store is reachable.
type HealthFunc func(ctx context.Context) error

// BackendResult is a ready preference store and how to release it.
type BackendResult struct {
	Store   theme.Store
	Cleanup CleanupFunc
	Health  HealthFunc
}

// Factory creates preference stores from configuration.
type Factory interface {
	CreateBackend(ctx context.Context, config Config) (*BackendResult, error)
}

type Config struct {
	Type BackendType

	// SQLite
	SQLiteDBPath string

	// Redis
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisPrefix   string
}

type BackendType string

const (
	MemoryBackend BackendType = "memory"
	SQLiteBackend BackendType = "sqlite"
	RedisBackend  BackendType = "redis"
)

func (bt BackendType) String() string {
	return string(bt)
}

func (bt BackendType) IsValid() bool {
	switch bt {
	case MemoryBackend, SQLiteBackend, RedisBackend:
		return true
	default:
		return false
	}
}

// GetBackendTypes returns all valid backend types.
func GetBackendTypes() []BackendType {
	return []BackendType{MemoryBackend, SQLiteBackend, RedisBackend}
}
