package ingest

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"smartspend/internal/core"
)

type demoRow struct {
	date, desc string
	amount     int64
	category   string
}

// The demo categories are fixed and deliberately not re-derived by the
// classifier ("Metro card recharge" and "Cab fare" are Transport here).
var demoRows = []demoRow{
	{"2023-03-01", "Uber to work", 250, core.Transport},
	{"2023-03-02", "Zomato dinner", 450, core.Food},
	{"2023-03-03", "Amazon purchase", 1200, core.Shopping},
	{"2023-03-05", "Electricity bill", 800, core.Utilities},
	{"2023-03-07", "Netflix subscription", 199, core.Entertainment},
	{"2023-03-10", "Grocery shopping", 1500, core.Food},
	{"2023-03-12", "Metro card recharge", 500, core.Transport},
	{"2023-03-15", "Mobile phone bill", 699, core.Utilities},
	{"2023-03-18", "Movie tickets", 600, core.Entertainment},
	{"2023-03-20", "Online shopping", 2100, core.Shopping},
	{"2023-03-23", "Restaurant dinner", 1200, core.Food},
	{"2023-03-25", "Cab fare", 350, core.Transport},
	{"2023-03-28", "Water bill", 400, core.Utilities},
	{"2023-03-30", "Clothing purchase", 1800, core.Shopping},
}

// Demo returns the bundled sample month with fresh IDs.
func Demo() []core.Transaction {
	out := make([]core.Transaction, len(demoRows))
	for i, r := range demoRows {
		out[i] = core.Transaction{
			ID:          uuid.NewString(),
			Date:        r.date,
			Description: r.desc,
			Amount:      decimal.NewFromInt(r.amount),
			Category:    r.category,
		}
	}
	return out
}
