package aggregator

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"smartspend/internal/core"
)

// DailySeries sums spend per UTC calendar day, oldest first.
// Transactions with unparseable dates are left out.
func DailySeries(txs []core.Transaction) []core.DailyPoint {
	byDay := make(map[string]decimal.Decimal)
	for _, tx := range txs {
		t, ok := tx.Time()
		if !ok {
			continue
		}
		key := core.DayKey(t)
		byDay[key] = byDay[key].Add(tx.Amount)
	}
	out := make([]core.DailyPoint, 0, len(byDay))
	for day, amount := range byDay {
		out = append(out, core.DailyPoint{Date: day, Amount: amount})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// LastN keeps the trailing n points of a series.
func LastN(series []core.DailyPoint, n int) []core.DailyPoint {
	if n <= 0 {
		return []core.DailyPoint{}
	}
	if len(series) > n {
		series = series[len(series)-n:]
	}
	return append(make([]core.DailyPoint, 0, len(series)), series...)
}

// Recent returns up to n transactions, newest date first. Transactions
// with unparseable dates sort after every dated one.
func Recent(txs []core.Transaction, n int) []core.Transaction {
	type dated struct {
		tx core.Transaction
		t  time.Time
		ok bool
	}
	rows := make([]dated, len(txs))
	for i, tx := range txs {
		t, ok := tx.Time()
		rows[i] = dated{tx: tx, t: t, ok: ok}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].ok != rows[j].ok {
			return rows[i].ok
		}
		return rows[i].t.After(rows[j].t)
	})
	if n < 0 {
		n = 0
	}
	if len(rows) > n {
		rows = rows[:n]
	}
	out := make([]core.Transaction, len(rows))
	for i, r := range rows {
		out[i] = r.tx
	}
	return out
}
