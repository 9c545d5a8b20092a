// Package cli holds the start-up steps shared by the fundsmart commands.
package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"fundsmart/internal/config"
	"fundsmart/internal/fixtures"
	applog "fundsmart/internal/log"
)

// SetupLogger builds the process logger at the given level and installs it
// as the slog default.
func SetupLogger(level string) *applog.Logger {
	cfg := applog.DefaultConfig()
	cfg.Level = applog.ParseLevel(level)
	logger := applog.New(cfg)
	applog.SetDefault(logger)
	return logger
}

// LoadEnvFile loads .env for local development. A missing file is fine.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// LoadAndValidateConfig exits the process when the configuration is invalid.
func LoadAndValidateConfig(logger *applog.Logger) *config.Config {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", applog.FieldError, err)
		os.Exit(1)
	}
	return cfg
}

// LoadFixtures reads the dataset from path, or the embedded one when path is
// empty. It exits the process on invalid data.
func LoadFixtures(logger *applog.Logger, path string) *fixtures.Dataset {
	log := logger.WithComponent(applog.ComponentFixtures)

	var (
		data *fixtures.Dataset
		err  error
	)
	source := "embedded"
	if path != "" {
		source = path
		data, err = fixtures.LoadFile(path)
	} else {
		data, err = fixtures.Default()
	}
	if err != nil {
		log.Error("Failed to load fixtures", applog.FieldError, err, applog.FieldSource, source, applog.FieldOperation, applog.OpLoad)
		os.Exit(1)
	}
	log.Info("Fixtures loaded", applog.FieldSource, source, applog.FieldOperation, applog.OpLoad,
		"transactions", len(data.Transactions),
		"goals", len(data.Goals))
	return data
}

// SignalContext is cancelled on SIGINT or SIGTERM. The signal is logged.
func SignalContext(logger *applog.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		defer signal.Stop(sigChan)
		select {
		case sig := <-sigChan:
			logger.Info("Shutdown signal received", "signal", sig.String())
			cancel()
		case <-ctx.Done():
		}
	}()
	return ctx, cancel
}
