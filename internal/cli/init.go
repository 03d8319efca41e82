// Package cli provides common initialization for the smartspend binaries
// and the cobra commands of smartspend-cli.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"smartspend/internal/classifier"
	"smartspend/internal/config"
	applog "smartspend/internal/log"
	"smartspend/internal/storage"
)

// SetupLogger builds the text logger for level and installs it as the
// slog default.
func SetupLogger(level, component string) *applog.Logger {
	logger := applog.NewWriter(os.Stdout, applog.ParseLevel(level), component)
	applog.SetDefault(logger)
	return logger
}

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as this is optional in production.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// LoadAndValidateConfig loads configuration and validates it.
// Returns the config or exits the process on validation failure.
func LoadAndValidateConfig(logger *applog.Logger) *config.Config {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", applog.FieldError, err)
		os.Exit(1)
	}
	return cfg
}

// LoadClassifier reads rules from path, or returns the built-in rules when
// path is empty.
func LoadClassifier(path string) (*classifier.Classifier, error) {
	if path == "" {
		return classifier.Default(), nil
	}
	cls, err := classifier.LoadRulesFile(path)
	if err != nil {
		return nil, fmt.Errorf("load rules %s: %w", path, err)
	}
	return cls, nil
}

// InitSQLite initializes a SQLite repository with the given path.
// Returns the repository or exits the process on failure.
func InitSQLite(logger *applog.Logger, dbPath string) *storage.SQLiteRepository {
	sqliteRepo, err := storage.NewSQLiteRepository(dbPath)
	if err != nil {
		logger.Error("Failed to initialize SQLite repository", applog.FieldError, err, "path", dbPath)
		os.Exit(1)
	}
	return sqliteRepo
}

// SignalContext returns a context cancelled on SIGINT or SIGTERM.
func SignalContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
}
