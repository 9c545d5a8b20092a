package theme

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	applog "fundsmart/internal/log"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name   string
		stored Theme
		dark   bool
		want   Theme
	}{
		{"stored wins over system", Light, true, Light},
		{"stored dark", Dark, false, Dark},
		{"system dark", "", true, Dark},
		{"fallback light", "", false, Light},
		{"garbage stored ignored", Theme("sepia"), true, Dark},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Resolve(tt.stored, tt.dark); got != tt.want {
				t.Errorf("Resolve(%q, %v) = %q, want %q", tt.stored, tt.dark, got, tt.want)
			}
		})
	}
}

func TestParse(t *testing.T) {
	if got, err := Parse(" DARK "); err != nil || got != Dark {
		t.Fatalf("Parse() = %q, %v", got, err)
	}
	if _, err := Parse("blue"); !errors.Is(err, ErrInvalidTheme) {
		t.Fatalf("Parse(blue) error = %v, want ErrInvalidTheme", err)
	}
}

func TestPrefersDark(t *testing.T) {
	cases := map[string]bool{`"dark"`: true, "dark": true, `"light"`: false, "": false}
	for hint, want := range cases {
		if got := PrefersDark(hint); got != want {
			t.Errorf("PrefersDark(%q) = %v, want %v", hint, got, want)
		}
	}
}

type fakePrefs struct {
	values map[string]string
	err    error
}

func (f *fakePrefs) GetPreference(_ context.Context, key string) (string, bool, error) {
	if f.err != nil {
		return "", false, f.err
	}
	v, ok := f.values[key]
	return v, ok, nil
}

func (f *fakePrefs) SetPreference(_ context.Context, key, value string) error {
	if f.err != nil {
		return f.err
	}
	f.values[key] = value
	return nil
}

func TestPreferenceStore(t *testing.T) {
	ctx := context.Background()
	prefs := &fakePrefs{values: map[string]string{}}
	store := NewPreferenceStore(prefs)

	if got, err := store.Get(ctx); err != nil || got != "" {
		t.Fatalf("Get() on empty = %q, %v", got, err)
	}
	if err := store.Set(ctx, Dark); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if prefs.values[PreferenceKey] != "dark" {
		t.Fatalf("stored %v", prefs.values)
	}
	if got, _ := store.Get(ctx); got != Dark {
		t.Fatalf("Get() = %q", got)
	}

	prefs.values[PreferenceKey] = "neon"
	if got, err := store.Get(ctx); err != nil || got != "" {
		t.Fatalf("corrupt value should read as unset, got %q, %v", got, err)
	}

	prefs.err = errors.New("disk full")
	if err := store.Set(ctx, Light); err == nil || !strings.Contains(err.Error(), "disk full") {
		t.Fatalf("Set() error = %v", err)
	}
}

type fakeRedis struct {
	values map[string]string
	err    error
}

func (f *fakeRedis) Get(_ context.Context, key string) *redis.StringCmd {
	if f.err != nil {
		return redis.NewStringResult("", f.err)
	}
	v, ok := f.values[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeRedis) Set(_ context.Context, key string, value any, _ time.Duration) *redis.StatusCmd {
	if f.err != nil {
		return redis.NewStatusResult("", f.err)
	}
	f.values[key] = value.(string)
	return redis.NewStatusResult("OK", nil)
}

func TestRedisStore(t *testing.T) {
	ctx := context.Background()
	client := &fakeRedis{values: map[string]string{}}
	store := NewRedisStore(client, "fundsmart")

	if store.Key() != "fundsmart:theme" {
		t.Fatalf("Key() = %q", store.Key())
	}
	if got, err := store.Get(ctx); err != nil || got != "" {
		t.Fatalf("Get() on missing key = %q, %v", got, err)
	}
	if err := store.Set(ctx, Light); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if got, _ := store.Get(ctx); got != Light {
		t.Fatalf("Get() = %q", got)
	}
	if err := store.Set(ctx, Theme("x")); !errors.Is(err, ErrInvalidTheme) {
		t.Fatalf("Set(invalid) error = %v", err)
	}

	client.err = errors.New("connection refused")
	if _, err := store.Get(ctx); err == nil {
		t.Fatal("expected redis error to surface")
	}
}

type recordingPublisher struct {
	calls [][2]string
	err   error
}

func (p *recordingPublisher) PublishThemeChanged(_ context.Context, previous, current string) error {
	p.calls = append(p.calls, [2]string{previous, current})
	return p.err
}

type countingRecorder struct{ themes []string }

func (r *countingRecorder) RecordThemeChange(theme string) { r.themes = append(r.themes, theme) }

func newTestService(store Store, pub Publisher) (*Service, *countingRecorder, *bytes.Buffer) {
	var buf bytes.Buffer
	rec := &countingRecorder{}
	logger := applog.New(applog.Config{Level: slog.LevelInfo, Output: &buf})
	return NewService(store, "memory", WithPublisher(pub), WithRecorder(rec), WithLogger(logger)), rec, &buf
}

func TestServiceToggle(t *testing.T) {
	ctx := context.Background()
	pub := &recordingPublisher{}
	svc, rec, buf := newTestService(NewMemoryStore(), pub)

	current, err := svc.Current(ctx, true)
	if err != nil || current != Dark {
		t.Fatalf("Current() = %q, %v", current, err)
	}

	change, err := svc.Toggle(ctx, true)
	if err != nil {
		t.Fatalf("Toggle() error = %v", err)
	}
	if change.Previous != Dark || change.Current != Light || !change.Changed() {
		t.Fatalf("Toggle() = %+v", change)
	}

	// The stored preference now beats the system preference.
	if current, _ := svc.Current(ctx, true); current != Light {
		t.Fatalf("Current() after toggle = %q", current)
	}

	if len(pub.calls) != 1 || pub.calls[0] != [2]string{"dark", "light"} {
		t.Fatalf("published %v", pub.calls)
	}
	if len(rec.themes) != 1 || rec.themes[0] != "light" {
		t.Fatalf("recorded %v", rec.themes)
	}
	if !strings.Contains(buf.String(), "previous_theme=dark") {
		t.Fatalf("log output %q", buf.String())
	}
}

func TestServiceSet(t *testing.T) {
	ctx := context.Background()
	pub := &recordingPublisher{err: errors.New("broker down")}
	svc, _, buf := newTestService(NewMemoryStore(), pub)

	change, err := svc.Set(ctx, Dark, false)
	if err != nil {
		t.Fatalf("publish failure must not fail Set: %v", err)
	}
	if change.Previous != Light || change.Current != Dark {
		t.Fatalf("Set() = %+v", change)
	}
	if !strings.Contains(buf.String(), "broker down") {
		t.Fatalf("publish error not logged: %q", buf.String())
	}

	again, err := svc.Set(ctx, Dark, false)
	if err != nil || again.Changed() {
		t.Fatalf("repeat Set() = %+v, %v", again, err)
	}

	if _, err := svc.Set(ctx, Theme("sepia"), false); !errors.Is(err, ErrInvalidTheme) {
		t.Fatalf("Set(invalid) error = %v", err)
	}
}

func TestServiceStoreFailure(t *testing.T) {
	ctx := context.Background()
	pub := &recordingPublisher{}
	svc, rec, _ := newTestService(NewPreferenceStore(&fakePrefs{err: errors.New("locked")}), pub)

	if _, err := svc.Toggle(ctx, false); err == nil {
		t.Fatal("expected store error")
	}
	if len(pub.calls) != 0 || len(rec.themes) != 0 {
		t.Fatal("nothing should be published or recorded on failure")
	}
	if current, err := svc.Current(ctx, true); err == nil || current != Dark {
		t.Fatalf("Current() = %q, %v; want fallback with error", current, err)
	}
}
