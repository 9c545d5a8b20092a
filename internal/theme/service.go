package theme

import (
	"context"
	"fmt"
	"sync"

	applog "fundsmart/internal/log"
)

// Publisher announces preference changes to other processes.
type Publisher interface {
	PublishThemeChanged(ctx context.Context, previous, current string) error
}

// Recorder counts applied changes.
type Recorder interface {
	RecordThemeChange(theme string)
}

// Change describes one applied mutation.
type Change struct {
	Previous Theme
	Current  Theme
}

func (c Change) Changed() bool { return c.Previous != c.Current }

type Service struct {
	mu        sync.Mutex
	store     Store
	backend   string
	publisher Publisher
	recorder  Recorder
	logger    *applog.StructuredLogger
}

type Option func(*Service)

func WithPublisher(p Publisher) Option {
	return func(s *Service) { s.publisher = p }
}

func WithRecorder(r Recorder) Option {
	return func(s *Service) { s.recorder = r }
}

func WithLogger(l *applog.Logger) Option {
	return func(s *Service) { s.logger = applog.NewStructuredLogger(l) }
}

// NewService wraps store. backend names the store in logs.
func NewService(store Store, backend string, opts ...Option) *Service {
	s := &Service{store: store, backend: backend}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = applog.NewStructuredLogger(applog.New(applog.DefaultConfig()))
	}
	return s
}

// Current returns the effective theme for a client.
func (s *Service) Current(ctx context.Context, systemPrefersDark bool) (Theme, error) {
	stored, err := s.store.Get(ctx)
	if err != nil {
		return Resolve("", systemPrefersDark), err
	}
	return Resolve(stored, systemPrefersDark), nil
}

// Set stores t and announces it. A failed publish is logged only, since the
// preference is already stored.
func (s *Service) Set(ctx context.Context, t Theme, systemPrefersDark bool) (Change, error) {
	if !t.Valid() {
		return Change{}, fmt.Errorf("%w: %q", ErrInvalidTheme, t)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.apply(ctx, systemPrefersDark, func(Theme) Theme { return t })
}

// Toggle flips the effective theme.
func (s *Service) Toggle(ctx context.Context, systemPrefersDark bool) (Change, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.apply(ctx, systemPrefersDark, Theme.Toggle)
}

func (s *Service) apply(ctx context.Context, systemPrefersDark bool, next func(Theme) Theme) (Change, error) {
	stored, err := s.store.Get(ctx)
	if err != nil {
		s.logger.LogError(ctx, "Failed to read theme preference", err, applog.ComponentTheme, applog.OpRead, nil)
		return Change{}, err
	}
	previous := Resolve(stored, systemPrefersDark)
	change := Change{Previous: previous, Current: next(previous)}

	if err := s.store.Set(ctx, change.Current); err != nil {
		s.logger.LogError(ctx, "Failed to store theme preference", err, applog.ComponentTheme, applog.OpUpdate,
			applog.NewFields().WithTheme(previous.String(), change.Current.String()))
		return Change{}, err
	}

	s.logger.LogThemeChanged(ctx, previous.String(), change.Current.String(), s.backend)
	if s.recorder != nil {
		s.recorder.RecordThemeChange(change.Current.String())
	}
	if s.publisher != nil {
		if err := s.publisher.PublishThemeChanged(ctx, previous.String(), change.Current.String()); err != nil {
			s.logger.LogError(ctx, "Failed to publish theme change", err, applog.ComponentAMQP, applog.OpPublish, nil)
		}
	}
	return change, nil
}
