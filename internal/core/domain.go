package core

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Category names used by the default classifier rules and budget targets.
const (
	Food          = "Food"
	Shopping      = "Shopping"
	Transport     = "Transport"
	Utilities     = "Utilities"
	Entertainment = "Entertainment"
)

type (
	// Transaction is a single spending record. Date is kept as the raw
	// string the user supplied; ParseDate interprets it on demand.
	Transaction struct {
		ID          string
		Date        string
		Description string
		Amount      decimal.Decimal
		Category    string
	}

	// Targets maps a category name to its budget limit.
	Targets map[string]decimal.Decimal
)

var (
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrNegativeAmount   = errors.New("amount cannot be negative")
	ErrEmptyDate        = errors.New("empty date")
	ErrInvalidDate      = errors.New("invalid date")
	ErrEmptyCategory    = errors.New("empty category")
	ErrNegativeTarget   = errors.New("target cannot be negative")
	ErrEmptyTransaction = errors.New("transaction has no id")
)

// Categories returns the built-in categories in rule order.
func Categories() []string {
	return []string{Transport, Food, Shopping, Entertainment, Utilities}
}

// IsKnownCategory reports whether name is one of the built-in categories.
func IsKnownCategory(name string) bool {
	for _, c := range Categories() {
		if c == name {
			return true
		}
	}
	return false
}

// DefaultTargets returns a fresh copy of the built-in budget limits.
func DefaultTargets() Targets {
	return Targets{
		Food:          decimal.NewFromInt(1000),
		Shopping:      decimal.NewFromInt(1500),
		Transport:     decimal.NewFromInt(800),
		Utilities:     decimal.NewFromInt(1200),
		Entertainment: decimal.NewFromInt(500),
	}
}

// Get returns the target for category, zero when it has none.
func (t Targets) Get(category string) decimal.Decimal {
	if v, ok := t[category]; ok {
		return v
	}
	return decimal.Zero
}

// Total sums every target.
func (t Targets) Total() decimal.Decimal {
	total := decimal.Zero
	for _, v := range t {
		total = total.Add(v)
	}
	return total
}

// Clone returns an independent copy of t.
func (t Targets) Clone() Targets {
	out := make(Targets, len(t))
	for k, v := range t {
		out[k] = v
	}
	return out
}

// Merge returns a copy of t with every entry of other applied on top.
func (t Targets) Merge(other Targets) Targets {
	out := t.Clone()
	for k, v := range other {
		out[k] = v
	}
	return out
}

// Validate rejects blank category names and negative targets.
func (t Targets) Validate() error {
	for k, v := range t {
		if strings.TrimSpace(k) == "" {
			return ErrEmptyCategory
		}
		if v.IsNegative() {
			return ErrNegativeTarget
		}
	}
	return nil
}

// Validate checks the invariants every stored transaction holds. The date
// is kept as supplied, blank or unparseable dates included.
func (tx Transaction) Validate() error {
	if tx.ID == "" {
		return ErrEmptyTransaction
	}
	if tx.Amount.IsNegative() {
		return ErrNegativeAmount
	}
	if strings.TrimSpace(tx.Category) == "" {
		return ErrEmptyCategory
	}
	return nil
}

// Time parses the transaction date. The boolean is false when the date
// is not in any supported layout.
func (tx Transaction) Time() (time.Time, bool) {
	t, err := ParseDate(tx.Date)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
