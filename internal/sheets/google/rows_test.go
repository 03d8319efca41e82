package google

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"smartspend/internal/aggregator"
	"smartspend/internal/core"
	"smartspend/internal/ingest"
)

func TestBudgetRowsDemo(t *testing.T) {
	report := aggregator.Build(ingest.Demo(), core.DefaultTargets(), aggregator.All, time.Now())
	rows := budgetRows(report)

	if len(rows) != 7 {
		t.Fatalf("expected header + 5 categories + total, got %d rows", len(rows))
	}
	if rows[0][0] != "Category" || rows[0][4] != "Percentage" {
		t.Fatalf("unexpected header: %v", rows[0])
	}

	want := [][]any{
		{"Shopping", "5100", "1500", "3600", "100.00"},
		{"Food", "3150", "1000", "2150", "100.00"},
		{"Utilities", "1899", "1200", "699", "100.00"},
		{"Transport", "1100", "800", "300", "100.00"},
		{"Entertainment", "799", "500", "299", "100.00"},
		{"Total", "12048", "5000", "7048", "100.00"},
	}
	for i, w := range want {
		got := rows[i+1]
		for j := range w {
			if got[j] != w[j] {
				t.Fatalf("row %d col %d: got %v, want %v", i+1, j, got[j], w[j])
			}
		}
	}
}

func TestBudgetRowsUnderBudget(t *testing.T) {
	txs := []core.Transaction{{ID: "1", Date: "2023-03-01", Description: "Lunch", Amount: mustAmount(t, "250"), Category: core.Food}}
	rows := budgetRows(aggregator.Build(txs, core.DefaultTargets(), aggregator.All, time.Now()))
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if rows[1][3] != "0" || rows[1][4] != "25.00" {
		t.Fatalf("unexpected food row: %v", rows[1])
	}
	if rows[2][3] != "0" || rows[2][4] != "5.00" {
		t.Fatalf("unexpected total row: %v", rows[2])
	}
}

func TestBudgetRowsEmpty(t *testing.T) {
	rows := budgetRows(aggregator.Build(nil, core.DefaultTargets(), aggregator.All, time.Now()))
	if len(rows) != 2 || rows[1][0] != "Total" || rows[1][1] != "0" {
		t.Fatalf("unexpected rows: %v", rows)
	}
}

func TestNewReportWriterRequiresSpreadsheet(t *testing.T) {
	if _, err := NewReportWriter(t.Context(), Options{}); err == nil {
		t.Fatal("expected error without spreadsheet id")
	}
}

func mustAmount(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := core.ParseAmount(s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return d
}
