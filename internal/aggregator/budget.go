package aggregator

import (
	"sort"

	"github.com/shopspring/decimal"

	"smartspend/internal/core"
)

// Percentage is amount against target, rounded to two places and capped
// at 100. A target of zero or less yields zero.
func Percentage(amount, target decimal.Decimal) decimal.Decimal {
	if !target.IsPositive() {
		return decimal.Zero
	}
	p := amount.Mul(hundred).Div(target).Round(2)
	if p.GreaterThan(hundred) {
		return hundred
	}
	return p
}

// Progress returns one row per category present in txs, in
// first-appearance order. Categories without a target read as zero.
func Progress(txs []core.Transaction, targets core.Targets) []core.CategoryProgress {
	totals := CategoryTotals(txs)
	out := make([]core.CategoryProgress, 0, len(totals))
	for _, ct := range totals {
		target := targets.Get(ct.Category)
		p := core.CategoryProgress{
			Category:   ct.Category,
			Amount:     ct.Amount,
			Target:     target,
			Percentage: Percentage(ct.Amount, target),
			OverBudget: ct.Amount.GreaterThan(target),
		}
		p.Remaining = p.Target.Sub(p.Amount)
		if p.Remaining.IsNegative() {
			p.Remaining = decimal.Zero
		}
		out = append(out, p)
	}
	return out
}

// OverBudget lists the categories whose spend is strictly above target,
// largest excess first.
func OverBudget(txs []core.Transaction, targets core.Targets) []core.BudgetAnalysis {
	var out []core.BudgetAnalysis
	for _, ct := range CategoryTotals(txs) {
		target := targets.Get(ct.Category)
		if !ct.Amount.GreaterThan(target) {
			continue
		}
		out = append(out, core.BudgetAnalysis{
			Category: ct.Category,
			Amount:   ct.Amount,
			Target:   target,
			Excess:   ct.Amount.Sub(target),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Excess.GreaterThan(out[j].Excess)
	})
	return out
}

// Status summarizes whether any category is above its target.
func Status(txs []core.Transaction, targets core.Targets) core.BudgetStatus {
	st := core.BudgetStatus{Label: core.LabelOnTrack}
	for _, ct := range CategoryTotals(txs) {
		if ct.Amount.GreaterThan(targets.Get(ct.Category)) {
			st.CategoriesOver++
		}
	}
	if st.CategoriesOver > 0 {
		st.OverBudget = true
		st.Label = core.LabelOverBudget
	}
	return st
}
