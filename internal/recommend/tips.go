package recommend

import (
	"fmt"

	"github.com/shopspring/decimal"

	"smartspend/internal/aggregator"
	"smartspend/internal/core"
)

// dominantShare is the share of total spend above which the top category
// gets its own tip.
var dominantShare = decimal.NewFromInt(50)

// Tips returns the additional insights in display order.
func Tips(r aggregator.Report) []string {
	var tips []string

	if n := len(r.Exceeding); n > 0 {
		tips = append(tips, fmt.Sprintf("You've exceeded your budget in %d categories.", n))
	}

	if r.Total.GreaterThan(r.TotalTarget) {
		tips = append(tips, fmt.Sprintf("Overall, you've spent %s more than your total budget.",
			core.FormatRupees(r.Total.Sub(r.TotalTarget))))
	} else {
		tips = append(tips, fmt.Sprintf("Great job! You're under your total budget by %s.",
			core.FormatRupees(r.TotalTarget.Sub(r.Total))))
	}

	if r.Top != nil && r.Top.Amount.IsPositive() {
		share := r.Top.Amount.Mul(decimal.NewFromInt(100)).Div(r.Total)
		if share.GreaterThan(dominantShare) {
			tips = append(tips, fmt.Sprintf("%s makes up %s%% of your spending. Consider if this aligns with your financial goals.",
				r.Top.Category, share.StringFixed(1)))
		}
	}
	return tips
}
