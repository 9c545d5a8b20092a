package theme

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// MemoryStore keeps the preference for the lifetime of the process.
type MemoryStore struct {
	mu    sync.RWMutex
	theme Theme
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Get(context.Context) (Theme, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.theme, nil
}

func (s *MemoryStore) Set(_ context.Context, t Theme) error {
	if !t.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidTheme, t)
	}
	s.mu.Lock()
	s.theme = t
	s.mu.Unlock()
	return nil
}

// Preferences is a string key/value table, such as the SQLite repository.
type Preferences interface {
	GetPreference(ctx context.Context, key string) (string, bool, error)
	SetPreference(ctx context.Context, key, value string) error
}

// PreferenceStore stores the theme under PreferenceKey in a Preferences table.
type PreferenceStore struct {
	prefs Preferences
}

func NewPreferenceStore(prefs Preferences) *PreferenceStore {
	return &PreferenceStore{prefs: prefs}
}

func (s *PreferenceStore) Get(ctx context.Context) (Theme, error) {
	value, ok, err := s.prefs.GetPreference(ctx, PreferenceKey)
	if err != nil {
		return "", fmt.Errorf("read theme preference: %w", err)
	}
	if !ok {
		return "", nil
	}
	// A corrupt row reads as unset rather than failing every page.
	t, err := Parse(value)
	if err != nil {
		return "", nil
	}
	return t, nil
}

func (s *PreferenceStore) Set(ctx context.Context, t Theme) error {
	if !t.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidTheme, t)
	}
	if err := s.prefs.SetPreference(ctx, PreferenceKey, t.String()); err != nil {
		return fmt.Errorf("write theme preference: %w", err)
	}
	return nil
}

// redisClient is the subset of *redis.Client the store needs.
type redisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
}

// RedisStore keeps the preference in Redis so that several instances share it.
type RedisStore struct {
	client redisClient
	key    string
}

func NewRedisStore(client redisClient, prefix string) *RedisStore {
	key := PreferenceKey
	if prefix != "" {
		key = prefix + ":" + PreferenceKey
	}
	return &RedisStore{client: client, key: key}
}

func (s *RedisStore) Key() string { return s.key }

func (s *RedisStore) Get(ctx context.Context) (Theme, error) {
	value, err := s.client.Get(ctx, s.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", fmt.Errorf("redis get %s: %w", s.key, err)
	}
	t, err := Parse(value)
	if err != nil {
		return "", nil
	}
	return t, nil
}

func (s *RedisStore) Set(ctx context.Context, t Theme) error {
	if !t.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidTheme, t)
	}
	if err := s.client.Set(ctx, s.key, t.String(), 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", s.key, err)
	}
	return nil
}
