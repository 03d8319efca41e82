package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"

	"smartspend/internal/core"

	_ "modernc.org/sqlite"
)

// SQLiteRepository persists transactions and targets. Amounts are stored
// as decimal strings so no precision is lost.
type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	// A single writer keeps replace transactions serialized.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// Ping implements the readiness check.
func (r *SQLiteRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// Transactions implements store.TransactionReader
func (r *SQLiteRepository) Transactions(ctx context.Context) ([]core.Transaction, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, date, description, amount, category FROM transactions ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	defer rows.Close()

	out := []core.Transaction{}
	for rows.Next() {
		var (
			tx     core.Transaction
			amount string
		)
		if err := rows.Scan(&tx.ID, &tx.Date, &tx.Description, &amount, &tx.Category); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		tx.Amount, err = decimal.NewFromString(amount)
		if err != nil {
			return nil, fmt.Errorf("parse amount of %s: %w", tx.ID, err)
		}
		out = append(out, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}
	return out, nil
}

// ReplaceTransactions implements store.TransactionWriter. The delete and
// the inserts share one SQL transaction.
func (r *SQLiteRepository) ReplaceTransactions(ctx context.Context, txs []core.Transaction) error {
	for _, tx := range txs {
		if err := tx.Validate(); err != nil {
			return err
		}
	}

	sqlTx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer sqlTx.Rollback()

	if _, err := sqlTx.ExecContext(ctx, `DELETE FROM transactions`); err != nil {
		return fmt.Errorf("clear transactions: %w", err)
	}

	stmt, err := sqlTx.PrepareContext(ctx,
		`INSERT INTO transactions (id, position, date, description, amount, category) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, tx := range txs {
		if _, err := stmt.ExecContext(ctx, tx.ID, i, tx.Date, tx.Description, tx.Amount.String(), tx.Category); err != nil {
			return fmt.Errorf("insert transaction %s: %w", tx.ID, err)
		}
	}

	if err := sqlTx.Commit(); err != nil {
		return fmt.Errorf("commit transactions: %w", err)
	}

	slog.InfoContext(ctx, "Transactions replaced in SQLite", "count", len(txs))
	return nil
}

// AppendTransaction implements store.TransactionWriter
func (r *SQLiteRepository) AppendTransaction(ctx context.Context, tx core.Transaction) error {
	if err := tx.Validate(); err != nil {
		return err
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO transactions (id, position, date, description, amount, category)
		VALUES (?, (SELECT COALESCE(MAX(position), -1) + 1 FROM transactions), ?, ?, ?, ?)`,
		tx.ID, tx.Date, tx.Description, tx.Amount.String(), tx.Category)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}

	slog.InfoContext(ctx, "Transaction saved to SQLite",
		"id", tx.ID,
		"description", tx.Description,
		"amount", tx.Amount.String(),
		"category", tx.Category)
	return nil
}

// Targets implements store.TargetReader
func (r *SQLiteRepository) Targets(ctx context.Context) (core.Targets, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT category, amount FROM targets`)
	if err != nil {
		return nil, fmt.Errorf("query targets: %w", err)
	}
	defer rows.Close()

	targets := core.Targets{}
	for rows.Next() {
		var category, amount string
		if err := rows.Scan(&category, &amount); err != nil {
			return nil, fmt.Errorf("scan target: %w", err)
		}
		v, err := decimal.NewFromString(amount)
		if err != nil {
			return nil, fmt.Errorf("parse target %s: %w", category, err)
		}
		targets[category] = v
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate targets: %w", err)
	}
	return targets, nil
}

// SetTargets implements store.TargetWriter
func (r *SQLiteRepository) SetTargets(ctx context.Context, t core.Targets) error {
	if err := t.Validate(); err != nil {
		return err
	}

	sqlTx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer sqlTx.Rollback()

	if _, err := sqlTx.ExecContext(ctx, `DELETE FROM targets`); err != nil {
		return fmt.Errorf("clear targets: %w", err)
	}
	for category, amount := range t {
		if _, err := sqlTx.ExecContext(ctx,
			`INSERT INTO targets (category, amount) VALUES (?, ?)`, category, amount.String()); err != nil {
			return fmt.Errorf("insert target %s: %w", category, err)
		}
	}
	if err := sqlTx.Commit(); err != nil {
		return fmt.Errorf("commit targets: %w", err)
	}
	return nil
}
