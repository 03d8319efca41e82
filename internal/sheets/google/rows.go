package google

import (
	"github.com/shopspring/decimal"

	"smartspend/internal/aggregator"
)

var budgetHeader = []any{"Category", "Spent", "Target", "Excess", "Percentage"}

// budgetRows lays out the report as sheet values: header, categories by
// spend (largest first), then a Total row. Amounts are plain decimal
// strings so USER_ENTERED parses them as numbers.
func budgetRows(r aggregator.Report) [][]any {
	rows := make([][]any, 0, len(r.Progress)+2)
	rows = append(rows, budgetHeader)

	byCategory := make(map[string]int, len(r.Progress))
	for i, p := range r.Progress {
		byCategory[p.Category] = i
	}
	for _, ct := range r.Sorted {
		p := r.Progress[byCategory[ct.Category]]
		rows = append(rows, []any{
			p.Category,
			p.Amount.String(),
			p.Target.String(),
			excessOf(p.Amount, p.Target).String(),
			p.Percentage.StringFixed(2),
		})
	}

	rows = append(rows, []any{
		"Total",
		r.Total.String(),
		r.TotalTarget.String(),
		excessOf(r.Total, r.TotalTarget).String(),
		aggregator.Percentage(r.Total, r.TotalTarget).StringFixed(2),
	})
	return rows
}

func excessOf(amount, target decimal.Decimal) decimal.Decimal {
	if amount.GreaterThan(target) {
		return amount.Sub(target)
	}
	return decimal.Zero
}
