package memory

import (
	"context"
	"sync"

	"smartspend/internal/core"
)

// Store keeps the transaction set and targets in process memory. Writers
// swap in a new slice; readers always get copies.
type Store struct {
	mu      sync.RWMutex
	txs     []core.Transaction
	targets core.Targets
}

// New returns an empty store seeded with targets. Nil targets means the
// built-in defaults.
func New(targets core.Targets) *Store {
	if targets == nil {
		targets = core.DefaultTargets()
	}
	return &Store{targets: targets.Clone()}
}

// Transactions implements store.TransactionReader.
func (s *Store) Transactions(_ context.Context) ([]core.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]core.Transaction(nil), s.txs...), nil
}

// ReplaceTransactions implements store.TransactionWriter.
func (s *Store) ReplaceTransactions(_ context.Context, txs []core.Transaction) error {
	for _, tx := range txs {
		if err := tx.Validate(); err != nil {
			return err
		}
	}
	next := append([]core.Transaction(nil), txs...)
	s.mu.Lock()
	s.txs = next
	s.mu.Unlock()
	return nil
}

// AppendTransaction implements store.TransactionWriter.
func (s *Store) AppendTransaction(_ context.Context, tx core.Transaction) error {
	if err := tx.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	next := make([]core.Transaction, len(s.txs), len(s.txs)+1)
	copy(next, s.txs)
	s.txs = append(next, tx)
	return nil
}

// Targets implements store.TargetReader.
func (s *Store) Targets(_ context.Context) (core.Targets, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.targets.Clone(), nil
}

// SetTargets implements store.TargetWriter.
func (s *Store) SetTargets(_ context.Context, t core.Targets) error {
	if err := t.Validate(); err != nil {
		return err
	}
	next := t.Clone()
	s.mu.Lock()
	s.targets = next
	s.mu.Unlock()
	return nil
}
