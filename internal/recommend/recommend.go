// Package recommend turns an aggregated report into spending advice.
package recommend

import (
	"fmt"
	"sort"

	"smartspend/internal/aggregator"
	"smartspend/internal/core"
)

const (
	GenericAdvice  = "You're managing your expenses well. Keep it up!"
	NoDataAdvice   = "Upload more transaction data to get personalized recommendations."
	NoDataInsight  = "No expense data available"
	OnBudgetNotice = "Great job! You're within budget for all your spending categories."
)

var advice = map[string]string{
	core.Food:          "You're spending quite a bit on food. Consider cooking at home more often to save money.",
	core.Shopping:      "Your shopping expenses are high. Try reviewing and cutting down on non-essential purchases.",
	core.Transport:     "Consider alternatives like public transport or carpooling to reduce costs.",
	core.Utilities:     "Review your energy usage; there might be ways to lower your bills.",
	core.Entertainment: "Assess your subscriptions and entertainment expenses to see if any can be reduced.",
}

// Advice returns the canned recommendation for category.
func Advice(category string) string {
	if a, ok := advice[category]; ok {
		return a
	}
	return GenericAdvice
}

// Primary is the advice for the report's top category.
func Primary(r aggregator.Report) string {
	if r.Top == nil {
		return NoDataAdvice
	}
	return Advice(r.Top.Category)
}

// TopInsight describes the highest expense category.
func TopInsight(r aggregator.Report) string {
	if r.Top == nil {
		return NoDataInsight
	}
	return fmt.Sprintf("Your highest expense category is %s (%s)", r.Top.Category, core.FormatRupees(r.Top.Amount))
}

type (
	// ExceedingItem is an over-budget category with its explanation.
	ExceedingItem struct {
		core.BudgetAnalysis
		Detail string `json:"detail"`
	}

	// BreakdownItem is one category of the spending breakdown.
	BreakdownItem struct {
		core.CategoryProgress
		Note string `json:"note"`
	}

	// View is everything the recommendations page shows for one window.
	View struct {
		Window     aggregator.Window   `json:"window"`
		HasData    bool                `json:"has_data"`
		Top        *core.CategoryTotal `json:"top,omitempty"`
		TopInsight string              `json:"top_insight"`
		Primary    string              `json:"primary"`
		Exceeding  []ExceedingItem     `json:"exceeding"`
		OnBudget   string              `json:"on_budget,omitempty"`
		Tips       []string            `json:"tips"`
		Breakdown  []BreakdownItem     `json:"breakdown"`
	}
)

// Build assembles the recommendations view from a report.
func Build(r aggregator.Report) View {
	v := View{
		Window:     r.Window,
		HasData:    r.Count > 0,
		Top:        r.Top,
		TopInsight: TopInsight(r),
		Primary:    Primary(r),
		Exceeding:  make([]ExceedingItem, 0, len(r.Exceeding)),
		Tips:       Tips(r),
		Breakdown:  Breakdown(r),
	}
	for _, row := range r.Exceeding {
		v.Exceeding = append(v.Exceeding, ExceedingItem{
			BudgetAnalysis: row,
			Detail: fmt.Sprintf("You've spent %s out of your %s target.",
				core.FormatRupees(row.Amount), core.FormatRupees(row.Target)),
		})
	}
	if len(v.Exceeding) == 0 {
		v.OnBudget = OnBudgetNotice
	}
	return v
}

// Breakdown orders progress rows by amount, largest first, and notes how
// far each one is from its target.
func Breakdown(r aggregator.Report) []BreakdownItem {
	out := make([]BreakdownItem, 0, len(r.Progress))
	for _, p := range r.Progress {
		item := BreakdownItem{CategoryProgress: p}
		if p.OverBudget {
			item.Note = core.FormatRupees(p.Amount.Sub(p.Target)) + " over budget"
		} else {
			item.Note = core.FormatRupees(p.Target.Sub(p.Amount)) + " remaining"
		}
		out = append(out, item)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Amount.GreaterThan(out[j].Amount)
	})
	return out
}
