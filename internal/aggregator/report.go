package aggregator

import (
	"time"

	"github.com/shopspring/decimal"

	"smartspend/internal/core"
)

// Report bundles every derived view of one window.
type Report struct {
	Window       Window                  `json:"window"`
	Count        int                     `json:"count"`
	Total        decimal.Decimal         `json:"total"`
	TotalTarget  decimal.Decimal         `json:"total_target"`
	Totals       []core.CategoryTotal    `json:"totals"`
	Sorted       []core.CategoryTotal    `json:"sorted"`
	Top          *core.CategoryTotal     `json:"top,omitempty"`
	Progress     []core.CategoryProgress `json:"progress"`
	Exceeding    []core.BudgetAnalysis   `json:"exceeding"`
	Daily        []core.DailyPoint       `json:"daily"`
	Status       core.BudgetStatus       `json:"status"`
	Transactions []core.Transaction      `json:"-"`
}

// Build filters txs to the window and computes every view over the result.
func Build(txs []core.Transaction, targets core.Targets, w Window, now time.Time) Report {
	filtered := w.Filter(txs, now)
	r := Report{
		Window:       w,
		Count:        len(filtered),
		Total:        TotalSpend(filtered),
		TotalTarget:  targets.Total(),
		Totals:       nonNil(CategoryTotals(filtered)),
		Sorted:       nonNil(SortedTotals(filtered)),
		Progress:     Progress(filtered, targets),
		Exceeding:    OverBudget(filtered, targets),
		Daily:        DailySeries(filtered),
		Status:       Status(filtered, targets),
		Transactions: filtered,
	}
	if r.Exceeding == nil {
		r.Exceeding = []core.BudgetAnalysis{}
	}
	if top, ok := TopCategory(filtered); ok {
		r.Top = &top
	}
	return r
}

func nonNil(in []core.CategoryTotal) []core.CategoryTotal {
	if in == nil {
		return []core.CategoryTotal{}
	}
	return in
}
