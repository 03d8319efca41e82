package core

import "github.com/shopspring/decimal"

// CategoryTotal is an amount aggregated by category name.
type CategoryTotal struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// CategoryProgress compares one category's spend with its target.
// Percentage is capped at 100 and is zero when the target is not positive.
type CategoryProgress struct {
	Category   string          `json:"category"`
	Amount     decimal.Decimal `json:"amount"`
	Target     decimal.Decimal `json:"target"`
	Percentage decimal.Decimal `json:"percentage"`
	OverBudget bool            `json:"over_budget"`
	Remaining  decimal.Decimal `json:"remaining"`
}

// BudgetAnalysis is a category row of the exceeding view.
type BudgetAnalysis struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Target   decimal.Decimal `json:"target"`
	Excess   decimal.Decimal `json:"excess"`
}

// DailyPoint is the spend of one calendar day (YYYY-MM-DD).
type DailyPoint struct {
	Date   string          `json:"date"`
	Amount decimal.Decimal `json:"amount"`
}

const (
	LabelOverBudget = "Over Budget"
	LabelOnTrack    = "On Track"
)

type BudgetStatus struct {
	OverBudget     bool   `json:"over_budget"`
	CategoriesOver int    `json:"categories_over"`
	Label          string `json:"label"`
}
