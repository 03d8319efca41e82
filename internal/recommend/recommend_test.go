package recommend

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartspend/internal/aggregator"
	"smartspend/internal/core"
	"smartspend/internal/ingest"
)

var demoNow = time.Date(2023, 4, 15, 12, 0, 0, 0, time.UTC)

func TestAdvice(t *testing.T) {
	assert.Equal(t, "Consider alternatives like public transport or carpooling to reduce costs.", Advice("Transport"))
	assert.Equal(t, GenericAdvice, Advice("Travel"))
	assert.Equal(t, GenericAdvice, Advice(""))
}

func TestDemoScenario(t *testing.T) {
	report := aggregator.Build(ingest.Demo(), core.DefaultTargets(), aggregator.All, demoNow)

	assert.True(t, report.Total.Equal(decimal.NewFromInt(12048)))
	require.NotNil(t, report.Top)
	assert.Equal(t, "Shopping", report.Top.Category)
	assert.True(t, report.Top.Amount.Equal(decimal.NewFromInt(5100)))
	assert.Equal(t, core.LabelOverBudget, report.Status.Label)
	assert.Equal(t, 5, report.Status.CategoriesOver)

	v := Build(report)
	assert.True(t, v.HasData)
	assert.Equal(t, "Your highest expense category is Shopping (₹5,100)", v.TopInsight)
	assert.Equal(t, Advice("Shopping"), v.Primary)
	assert.Empty(t, v.OnBudget)

	order := make([]string, len(v.Exceeding))
	for i, e := range v.Exceeding {
		order[i] = e.Category
	}
	assert.Equal(t, []string{"Shopping", "Food", "Utilities", "Transport", "Entertainment"}, order)
	assert.True(t, v.Exceeding[2].Excess.Equal(decimal.NewFromInt(699)))
	assert.Equal(t, "You've spent ₹1,899 out of your ₹1,200 target.", v.Exceeding[2].Detail)

	assert.Equal(t, []string{
		"You've exceeded your budget in 5 categories.",
		"Overall, you've spent ₹7,048 more than your total budget.",
	}, v.Tips)

	require.Len(t, v.Breakdown, 5)
	assert.Equal(t, "Shopping", v.Breakdown[0].Category)
	assert.Equal(t, "Utilities", v.Breakdown[2].Category)
	assert.Equal(t, "₹699 over budget", v.Breakdown[2].Note)
	assert.True(t, v.Breakdown[2].Percentage.Equal(decimal.NewFromInt(100)))
}

func TestDemoScenarioLast30(t *testing.T) {
	report := aggregator.Build(ingest.Demo(), core.DefaultTargets(), aggregator.Last30, demoNow)
	assert.Equal(t, 6, report.Count)
	assert.True(t, report.Total.Equal(decimal.NewFromInt(6450)))

	v := Build(report)
	assert.Equal(t, []string{
		"You've exceeded your budget in 3 categories.",
		"Overall, you've spent ₹1,450 more than your total budget.",
		"Shopping makes up 60.5% of your spending. Consider if this aligns with your financial goals.",
	}, v.Tips)
}

func TestUnderBudget(t *testing.T) {
	txs := []core.Transaction{{ID: "1", Date: "2023-03-01", Description: "Groceries", Amount: decimal.NewFromInt(400), Category: "Food"}}
	v := Build(aggregator.Build(txs, core.DefaultTargets(), aggregator.All, demoNow))

	assert.Empty(t, v.Exceeding)
	assert.Equal(t, OnBudgetNotice, v.OnBudget)
	assert.Equal(t, []string{
		"Great job! You're under your total budget by ₹4,600.",
		"Food makes up 100.0% of your spending. Consider if this aligns with your financial goals.",
	}, v.Tips)
	require.Len(t, v.Breakdown, 1)
	assert.Equal(t, "₹600 remaining", v.Breakdown[0].Note)
}

func TestNoData(t *testing.T) {
	v := Build(aggregator.Build(nil, core.DefaultTargets(), aggregator.All, demoNow))
	assert.False(t, v.HasData)
	assert.Nil(t, v.Top)
	assert.Equal(t, NoDataInsight, v.TopInsight)
	assert.Equal(t, NoDataAdvice, v.Primary)
	assert.Equal(t, []string{"Great job! You're under your total budget by ₹5,000."}, v.Tips)
	assert.Empty(t, v.Breakdown)
}

func TestDominanceTipNeedsMoreThanHalf(t *testing.T) {
	txs := []core.Transaction{
		{ID: "1", Date: "2023-03-01", Amount: decimal.NewFromInt(50), Category: "Food"},
		{ID: "2", Date: "2023-03-02", Amount: decimal.NewFromInt(50), Category: "Transport"},
	}
	tips := Tips(aggregator.Build(txs, core.DefaultTargets(), aggregator.All, demoNow))
	assert.Len(t, tips, 1)
}
