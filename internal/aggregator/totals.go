package aggregator

import (
	"sort"

	"github.com/shopspring/decimal"

	"smartspend/internal/core"
)

var hundred = decimal.NewFromInt(100)

// TotalSpend sums every amount.
func TotalSpend(txs []core.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range txs {
		total = total.Add(tx.Amount)
	}
	return total
}

// CategoryTotals groups amounts by category in first-appearance order.
func CategoryTotals(txs []core.Transaction) []core.CategoryTotal {
	index := make(map[string]int)
	var out []core.CategoryTotal
	for _, tx := range txs {
		i, ok := index[tx.Category]
		if !ok {
			i = len(out)
			index[tx.Category] = i
			out = append(out, core.CategoryTotal{Category: tx.Category, Amount: decimal.Zero})
		}
		out[i].Amount = out[i].Amount.Add(tx.Amount)
	}
	return out
}

// SortedTotals is CategoryTotals ordered by amount, largest first.
// Equal amounts keep first-appearance order.
func SortedTotals(txs []core.Transaction) []core.CategoryTotal {
	totals := CategoryTotals(txs)
	sort.SliceStable(totals, func(i, j int) bool {
		return totals[i].Amount.GreaterThan(totals[j].Amount)
	})
	return totals
}

// TopCategory returns the category with the largest total.
func TopCategory(txs []core.Transaction) (core.CategoryTotal, bool) {
	sorted := SortedTotals(txs)
	if len(sorted) == 0 {
		return core.CategoryTotal{}, false
	}
	return sorted[0], true
}

// Share is amount as a percentage of total, one decimal place. Zero when
// total is not positive.
func Share(amount, total decimal.Decimal) decimal.Decimal {
	if !total.IsPositive() {
		return decimal.Zero
	}
	return amount.Mul(hundred).Div(total).Round(1)
}
