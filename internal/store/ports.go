// Package store declares the ports the application reads and writes its
// state through. Implementations live in store/memory and storage.
package store

import (
	"context"

	"smartspend/internal/core"
)

type (
	TransactionReader interface {
		// Transactions returns a copy of the current set in insertion order.
		Transactions(ctx context.Context) ([]core.Transaction, error)
	}

	TransactionWriter interface {
		// ReplaceTransactions swaps the whole set atomically.
		ReplaceTransactions(ctx context.Context, txs []core.Transaction) error
		// AppendTransaction adds one transaction to the end of the set.
		AppendTransaction(ctx context.Context, tx core.Transaction) error
	}

	TargetReader interface {
		Targets(ctx context.Context) (core.Targets, error)
	}

	TargetWriter interface {
		// SetTargets replaces every target.
		SetTargets(ctx context.Context, t core.Targets) error
	}

	// Reader is what report builders need.
	Reader interface {
		TransactionReader
		TargetReader
	}

	Store interface {
		Reader
		TransactionWriter
		TargetWriter
	}
)
