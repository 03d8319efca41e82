package backend

import (
	"context"

	"smartspend/internal/classifier"
	"smartspend/internal/services"
	"smartspend/internal/store"
)

// CleanupFunc represents a cleanup function for resources
type CleanupFunc func() error

// BackendResult contains the wired store, the service on top of it and an
// optional cleanup function.
type BackendResult struct {
	Store   store.Store
	Service *services.LedgerService
	Cleanup CleanupFunc
}

// Factory creates backends based on configuration
type Factory interface {
	// CreateBackend creates a backend instance based on the provided config
	CreateBackend(ctx context.Context, config Config) (*BackendResult, error)
}

// Config holds configuration for backend creation
type Config struct {
	// Backend type
	Type BackendType

	// SQLite specific
	SQLiteDBPath string

	// AMQP is optional and only used with the sqlite backend, where a
	// worker can read the same database.
	AMQPURL      string
	AMQPExchange string
	AMQPQueue    string

	// Classifier used for uploads and manual entries. Nil means built-in rules.
	Classifier *classifier.Classifier
}

// BackendType represents the type of backend
type BackendType string

const (
	SQLiteBackend BackendType = "sqlite"
	MemoryBackend BackendType = "memory"
)

// String implements fmt.Stringer
func (bt BackendType) String() string {
	return string(bt)
}

// IsValid returns true if the backend type is valid
func (bt BackendType) IsValid() bool {
	switch bt {
	case SQLiteBackend, MemoryBackend:
		return true
	default:
		return false
	}
}
