package backend

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"fundsmart/internal/config"
	applog "fundsmart/internal/log"
	"fundsmart/internal/storage"
	"fundsmart/internal/theme"
)

const defaultRedisPrefix = "fundsmart"

// FromAppConfig converts the application config to backend config.
func FromAppConfig(appConfig *config.Config) (Config, error) {
	if appConfig == nil {
		return Config{}, fmt.Errorf("app config is nil")
	}

	backendType := BackendType(appConfig.PreferenceBackend)
	if !backendType.IsValid() {
		return Config{}, fmt.Errorf("invalid backend type in config: %s", appConfig.PreferenceBackend)
	}

	return Config{
		Type:          backendType,
		SQLiteDBPath:  appConfig.SQLiteDBPath,
		RedisAddr:     appConfig.RedisAddr,
		RedisPassword: appConfig.RedisPassword,
		RedisDB:       appConfig.RedisDB,
		RedisPrefix:   defaultRedisPrefix,
	}, nil
}

type DefaultFactory struct {
	logger *applog.Logger
}

func NewFactory(logger *applog.Logger) Factory {
	if logger == nil {
		logger = applog.New(applog.DefaultConfig())
	}
	return &DefaultFactory{logger: logger.WithComponent(applog.ComponentBackend)}
}

func (f *DefaultFactory) CreateBackend(ctx context.Context, cfg Config) (*BackendResult, error) {
	switch cfg.Type {
	case MemoryBackend:
		return f.createMemoryBackend()
	case SQLiteBackend:
		return f.createSQLiteBackend(cfg)
	case RedisBackend:
		return f.createRedisBackend(ctx, cfg)
	default:
		return nil, fmt.Errorf("invalid backend type: %s", cfg.Type)
	}
}

func (f *DefaultFactory) createMemoryBackend() (*BackendResult, error) {
	f.logger.Info("Initialized memory preference backend")
	return &BackendResult{
		Store:   theme.NewMemoryStore(),
		Cleanup: func() error { return nil },
		Health:  func(context.Context) error { return nil },
	}, nil
}

func (f *DefaultFactory) createSQLiteBackend(cfg Config) (*BackendResult, error) {
	if cfg.SQLiteDBPath == "" {
		return nil, fmt.Errorf("SQLite database path is required for sqlite backend")
	}
	repo, err := storage.NewSQLiteRepository(cfg.SQLiteDBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize SQLite repository: %w", err)
	}

	f.logger.Info("Initialized SQLite preference backend", "db_path", cfg.SQLiteDBPath)
	return &BackendResult{
		Store:   theme.NewPreferenceStore(repo),
		Cleanup: repo.Close,
		Health:  repo.Ping,
	}, nil
}

func (f *DefaultFactory) createRedisBackend(ctx context.Context, cfg Config) (*BackendResult, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.RedisAddr,
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		PoolSize:     10,
		PoolTimeout:  30 * time.Second,
		MinIdleConns: 2,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	f.logger.Info("Initialized Redis preference backend", "addr", cfg.RedisAddr, "db", cfg.RedisDB)
	return &BackendResult{
		Store:   theme.NewRedisStore(client, cfg.RedisPrefix),
		Cleanup: client.Close,
		Health:  func(ctx context.Context) error { return client.Ping(ctx).Err() },
	}, nil
}
