// Package aggregator derives totals, budget progress and time series from
// a set of transactions. Every function is pure; the current time is
// always passed in by the caller.
package aggregator

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"smartspend/internal/core"
)

// Window selects which transactions a view covers.
type Window string

const (
	All    Window = "all"
	Last30 Window = "last30"
	Last90 Window = "last90"
)

var ErrUnknownWindow = errors.New("unknown window")

// ParseWindow maps a query value to a Window. Empty means All.
func ParseWindow(s string) (Window, error) {
	switch Window(strings.ToLower(strings.TrimSpace(s))) {
	case "", All:
		return All, nil
	case Last30:
		return Last30, nil
	case Last90:
		return Last90, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownWindow, s)
}

// Days is the window length, zero for All.
func (w Window) Days() int {
	switch w {
	case Last30:
		return 30
	case Last90:
		return 90
	}
	return 0
}

// Cutoff is the first calendar day (UTC midnight) inside the window.
func (w Window) Cutoff(now time.Time) time.Time {
	return core.StartOfDay(now).AddDate(0, 0, -w.Days())
}

// Filter returns the transactions inside the window as a new slice.
// All keeps everything, including unparseable dates; bounded windows
// drop transactions whose date cannot be parsed.
func (w Window) Filter(txs []core.Transaction, now time.Time) []core.Transaction {
	out := make([]core.Transaction, 0, len(txs))
	if w.Days() == 0 {
		return append(out, txs...)
	}
	cutoff := w.Cutoff(now)
	for _, tx := range txs {
		t, ok := tx.Time()
		if !ok {
			continue
		}
		if !t.Before(cutoff) {
			out = append(out, tx)
		}
	}
	return out
}
