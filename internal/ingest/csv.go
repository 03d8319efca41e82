// Package ingest turns raw spending records (CSV uploads, the demo
// dataset, manual entries) into categorized transactions.
package ingest

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"smartspend/internal/core"
)

// ErrMissingColumns is returned when the header lacks a date,
// description or amount column. Nothing is imported in that case.
var ErrMissingColumns = errors.New("CSV file must contain Date, Description, and Amount columns")

// Categorizer assigns a category to a description.
type Categorizer interface {
	Classify(description string) string
}

// Result is the outcome of one import.
type Result struct {
	Transactions []core.Transaction
	Imported     int
	Skipped      int
}

type columns struct {
	date, desc, amount int
}

func (c columns) width() int {
	return max(c.date, c.desc, c.amount) + 1
}

// ParseCSV reads a comma separated export. Fields are split on every
// comma with no quoting support. The first header containing "date",
// "desc" and "amount" (case-insensitive) selects each column. Rows that
// are too short or whose amount is not a non-negative decimal are skipped.
// Every transaction is categorized by cls.
func ParseCSV(r io.Reader, cls Categorizer) (Result, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return Result{}, fmt.Errorf("read csv: %w", err)
	}
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")

	cols, err := headerColumns(lines[0])
	if err != nil {
		return Result{}, err
	}

	res := Result{Transactions: []core.Transaction{}}
	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		tx, ok := parseRow(line, cols, cls)
		if !ok {
			res.Skipped++
			continue
		}
		res.Transactions = append(res.Transactions, tx)
	}
	res.Imported = len(res.Transactions)
	return res, nil
}

func headerColumns(header string) (columns, error) {
	cols := columns{date: -1, desc: -1, amount: -1}
	for i, h := range strings.Split(header, ",") {
		h = strings.ToLower(h)
		if cols.date < 0 && strings.Contains(h, "date") {
			cols.date = i
		}
		if cols.desc < 0 && strings.Contains(h, "desc") {
			cols.desc = i
		}
		if cols.amount < 0 && strings.Contains(h, "amount") {
			cols.amount = i
		}
	}
	if cols.date < 0 || cols.desc < 0 || cols.amount < 0 {
		return cols, ErrMissingColumns
	}
	return cols, nil
}

func parseRow(line string, cols columns, cls Categorizer) (core.Transaction, bool) {
	values := strings.Split(line, ",")
	if len(values) < cols.width() {
		return core.Transaction{}, false
	}
	amount, err := core.ParseAmount(values[cols.amount])
	if err != nil {
		return core.Transaction{}, false
	}
	desc := strings.TrimSpace(values[cols.desc])
	return core.Transaction{
		ID:          uuid.NewString(),
		Date:        strings.TrimSpace(values[cols.date]),
		Description: desc,
		Amount:      amount,
		Category:    cls.Classify(desc),
	}, true
}
