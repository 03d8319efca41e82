package backend

import (
	"context"
	"fmt"
	"log/slog"

	"smartspend/internal/amqp"
	"smartspend/internal/services"
	"smartspend/internal/storage"
	"smartspend/internal/store/memory"
)

// DefaultFactory implements the Factory interface
type DefaultFactory struct {
	logger *slog.Logger
}

// NewFactory creates a new backend factory
func NewFactory(logger *slog.Logger) Factory {
	if logger == nil {
		logger = slog.Default()
	}
	return &DefaultFactory{
		logger: logger,
	}
}

// CreateBackend implements Factory.CreateBackend
func (f *DefaultFactory) CreateBackend(ctx context.Context, config Config) (*BackendResult, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	switch config.Type {
	case SQLiteBackend:
		return f.createSQLiteBackend(config)
	case MemoryBackend:
		return f.createMemoryBackend(config)
	default:
		return nil, fmt.Errorf("unsupported backend type: %s", config.Type)
	}
}

func (f *DefaultFactory) createSQLiteBackend(config Config) (*BackendResult, error) {
	sqliteRepo, err := storage.NewSQLiteRepository(config.SQLiteDBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize SQLite repository: %w", err)
	}

	// AMQP is optional; a broker outage must not keep the API down.
	var publisher services.Publisher
	if config.AMQPURL != "" {
		amqpClient, err := amqp.NewClient(config.AMQPURL, config.AMQPExchange, config.AMQPQueue)
		if err != nil {
			f.logger.Warn("Failed to initialize AMQP client, continuing without events", "error", err)
		} else {
			publisher = amqpClient
			f.logger.Info("Initialized AMQP client",
				"exchange", config.AMQPExchange,
				"queue", config.AMQPQueue)
		}
	}

	svc := services.NewLedgerService(sqliteRepo, config.Classifier, publisher)

	f.logger.Info("Initialized SQLite backend",
		"db_path", config.SQLiteDBPath,
		"amqp_enabled", publisher != nil)

	return &BackendResult{
		Store:   sqliteRepo,
		Service: svc,
		Cleanup: svc.Close,
	}, nil
}

func (f *DefaultFactory) createMemoryBackend(config Config) (*BackendResult, error) {
	st := memory.New(nil)

	if config.AMQPURL != "" {
		f.logger.Warn("AMQP events need the sqlite backend, ignoring AMQP_URL")
	}

	f.logger.Info("Initialized memory backend")

	return &BackendResult{
		Store:   st,
		Service: services.NewLedgerService(st, config.Classifier, nil),
		Cleanup: nil, // No cleanup needed for memory backend
	}, nil
}
