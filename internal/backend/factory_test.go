package backend

import (
	"context"
	"path/filepath"
	"testing"

	"fundsmart/internal/config"
	"fundsmart/internal/theme"
)

func TestFromAppConfig(t *testing.T) {
	if _, err := FromAppConfig(nil); err == nil {
		t.Fatal("expected error for nil config")
	}
	if _, err := FromAppConfig(&config.Config{PreferenceBackend: "sheets"}); err == nil {
		t.Fatal("expected error for unknown backend")
	}

	cfg, err := FromAppConfig(&config.Config{PreferenceBackend: "redis", RedisAddr: "cache:6379", RedisDB: 3})
	if err != nil {
		t.Fatalf("FromAppConfig() error = %v", err)
	}
	if cfg.Type != RedisBackend || cfg.RedisAddr != "cache:6379" || cfg.RedisDB != 3 || cfg.RedisPrefix != "fundsmart" {
		t.Fatalf("FromAppConfig() = %+v", cfg)
	}
}

func TestBackendTypeIsValid(t *testing.T) {
	for _, bt := range GetBackendTypes() {
		if !bt.IsValid() {
			t.Errorf("%s should be valid", bt)
		}
	}
	if BackendType("sheets").IsValid() {
		t.Error("sheets should not be valid")
	}
}

func TestCreateBackend(t *testing.T) {
	ctx := context.Background()
	factory := NewFactory(nil)

	tests := []struct {
		name string
		cfg  Config
	}{
		{"memory", Config{Type: MemoryBackend}},
		{"sqlite", Config{Type: SQLiteBackend, SQLiteDBPath: filepath.Join(t.TempDir(), "prefs.db")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := factory.CreateBackend(ctx, tt.cfg)
			if err != nil {
				t.Fatalf("CreateBackend() error = %v", err)
			}
			defer result.Cleanup()

			if err := result.Health(ctx); err != nil {
				t.Fatalf("Health() error = %v", err)
			}
			if err := result.Store.Set(ctx, theme.Dark); err != nil {
				t.Fatalf("Set() error = %v", err)
			}
			if got, err := result.Store.Get(ctx); err != nil || got != theme.Dark {
				t.Fatalf("Get() = %q, %v", got, err)
			}
		})
	}

	if _, err := factory.CreateBackend(ctx, Config{Type: "bogus"}); err == nil {
		t.Fatal("expected error for invalid type")
	}
	if _, err := factory.CreateBackend(ctx, Config{Type: SQLiteBackend}); err == nil {
		t.Fatal("expected error for missing sqlite path")
	}
}
