package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"smartspend/internal/aggregator"
	"smartspend/internal/amqp"
	"smartspend/internal/store"
)

// ReportWriter publishes a budget report somewhere outside the process.
// *google.ReportWriter implements it.
type ReportWriter interface {
	WriteBudgetReport(ctx context.Context, r aggregator.Report) error
}

// ReportWorker rebuilds the budget report whenever the transaction set
// changes.
type ReportWorker struct {
	store  store.Reader
	writer ReportWriter
	now    func() time.Time
}

// NewReportWorker wires the worker. writer may be nil, in which case the
// budget status is only logged.
func NewReportWorker(st store.Reader, writer ReportWriter) *ReportWorker {
	return &ReportWorker{store: st, writer: writer, now: time.Now}
}

// HandleImport processes a single import event from AMQP.
func (w *ReportWorker) HandleImport(ctx context.Context, ev *amqp.ImportEvent) error {
	slog.InfoContext(ctx, "Processing import event",
		"source", ev.Source,
		"count", ev.Count,
		"skipped", ev.Skipped)

	r, err := w.buildReport(ctx)
	if err != nil {
		return err
	}

	slog.InfoContext(ctx, "Budget status",
		"transactions", r.Count,
		"total", r.Total.String(),
		"categories_over", r.Status.CategoriesOver,
		"label", r.Status.Label)

	if w.writer == nil {
		slog.DebugContext(ctx, "No report writer configured, skipping export")
		return nil
	}

	if err := w.writer.WriteBudgetReport(ctx, r); err != nil {
		return fmt.Errorf("write budget report: %w", err)
	}
	slog.InfoContext(ctx, "Budget report exported", "categories", len(r.Sorted))
	return nil
}

func (w *ReportWorker) buildReport(ctx context.Context) (aggregator.Report, error) {
	txs, err := w.store.Transactions(ctx)
	if err != nil {
		return aggregator.Report{}, fmt.Errorf("read transactions: %w", err)
	}
	targets, err := w.store.Targets(ctx)
	if err != nil {
		return aggregator.Report{}, fmt.Errorf("read targets: %w", err)
	}
	return aggregator.Build(txs, targets, aggregator.All, w.now()), nil
}
