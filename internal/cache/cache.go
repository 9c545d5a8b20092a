// Package cache provides the in-process view-model cache and the janitor
// that expires its entries.
package cache

import (
	"log/slog"
	"sync"
	"time"
)

const (
	EventHit      Event = "hit"
	EventMiss     Event = "miss"
	EventEviction Event = "eviction"
)

type (
	// Cache is the read/write surface shared by cache implementations.
	Cache[T any] interface {
		Get(key string) (T, bool)
		Set(key string, value T)
		Delete(key string)
		Size() int
	}

	// Cleaner is implemented by caches whose entries expire.
	Cleaner interface {
		CleanExpired() int
	}

	Event string

	// Observer receives cache events. It runs under the cache lock and must
	// not call back into the cache.
	Observer func(Event)

	Stats struct {
		Hits      uint64
		Misses    uint64
		Evictions uint64
	}
)

// Manager periodically expires entries of every registered cache.
type Manager struct {
	mu      sync.Mutex
	caches  []Cleaner
	logger  *slog.Logger
	stop    chan struct{}
	done    chan struct{}
	started bool
	stopped bool
}

func NewManager(logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		logger: logger,
		stop:   make(chan struct{}),
		done:   make(chan struct{}),
	}
}

func (m *Manager) Register(c Cleaner) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.caches = append(m.caches, c)
}

// StartCleanup runs the janitor every interval until Stop is called.
func (m *Manager) StartCleanup(interval time.Duration) {
	m.mu.Lock()
	if m.started || m.stopped {
		m.mu.Unlock()
		return
	}
	m.started = true
	m.mu.Unlock()
	go m.run(interval)
}

func (m *Manager) run(interval time.Duration) {
	defer close(m.done)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if n := m.CleanNow(); n > 0 {
				m.logger.Debug("Expired cache entries removed", "count", n)
			}
		case <-m.stop:
			return
		}
	}
}

// CleanNow expires entries in every registered cache and returns the total.
func (m *Manager) CleanNow() int {
	m.mu.Lock()
	caches := append([]Cleaner(nil), m.caches...)
	m.mu.Unlock()

	total := 0
	for _, c := range caches {
		total += c.CleanExpired()
	}
	return total
}

// Stop ends the janitor and waits for it to exit. A stopped manager cannot
// be restarted. Stop is safe on a manager that was never started.
func (m *Manager) Stop() {
	m.mu.Lock()
	started := m.started && !m.stopped
	m.stopped = true
	m.mu.Unlock()

	if !started {
		return
	}
	close(m.stop)
	<-m.done
}
