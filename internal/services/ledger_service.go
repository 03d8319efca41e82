package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"smartspend/internal/aggregator"
	"smartspend/internal/amqp"
	"smartspend/internal/classifier"
	"smartspend/internal/core"
	"smartspend/internal/ingest"
	applog "smartspend/internal/log"
	"smartspend/internal/recommend"
	"smartspend/internal/store"
)

// Publisher announces transaction set changes. *amqp.Client implements it.
type Publisher interface {
	PublishImport(ctx context.Context, ev *amqp.ImportEvent) error
}

// DefaultRecent is how many transactions the visualize view lists.
const DefaultRecent = 10

// DailyBuckets is how many days of the daily series the visualize view keeps.
const DailyBuckets = 10

// LedgerService orchestrates ingest, storage, reporting and AMQP events.
type LedgerService struct {
	store      store.Store
	classifier *classifier.Classifier
	publisher  Publisher
	logs       *applog.StructuredLogger
	now        func() time.Time
}

// NewLedgerService wires the service. publisher may be nil, in which case
// events are skipped.
func NewLedgerService(st store.Store, cls *classifier.Classifier, publisher Publisher) *LedgerService {
	if cls == nil {
		cls = classifier.Default()
	}
	return &LedgerService{
		store:      st,
		classifier: cls,
		publisher:  publisher,
		logs:       applog.NewStructuredLogger(applog.New(applog.Config{Component: applog.ComponentLedger, Handler: slog.Default().Handler()})),
		now:        time.Now,
	}
}

// WithClock replaces the time source used for windowed reports.
func (s *LedgerService) WithClock(now func() time.Time) *LedgerService {
	s.now = now
	return s
}

// Classifier exposes the active rule set.
func (s *LedgerService) Classifier() *classifier.Classifier { return s.classifier }

// Classify explains which rule categorises description.
func (s *LedgerService) Classify(description string) classifier.Match {
	return s.classifier.Explain(description)
}

// Import parses a CSV upload and replaces the transaction set with it.
// A missing column fails the whole import and leaves the set untouched.
func (s *LedgerService) Import(ctx context.Context, r io.Reader) (ingest.Result, error) {
	res, err := ingest.ParseCSV(r, s.classifier)
	if err != nil {
		return ingest.Result{}, err
	}
	if err := s.store.ReplaceTransactions(ctx, res.Transactions); err != nil {
		return ingest.Result{}, fmt.Errorf("replace transactions: %w", err)
	}

	s.logs.LogImport(ctx, amqp.SourceCSV, res.Imported, res.Skipped)
	s.publish(ctx, amqp.NewImportEvent(amqp.SourceCSV, res.Imported, res.Skipped))
	return res, nil
}

// LoadDemo replaces the transaction set with the demo dataset.
func (s *LedgerService) LoadDemo(ctx context.Context) (ingest.Result, error) {
	txs := ingest.Demo()
	if err := s.store.ReplaceTransactions(ctx, txs); err != nil {
		return ingest.Result{}, fmt.Errorf("load demo: %w", err)
	}
	res := ingest.Result{Transactions: txs, Imported: len(txs)}

	s.logs.LogImport(ctx, amqp.SourceDemo, res.Imported, 0)
	s.publish(ctx, amqp.NewImportEvent(amqp.SourceDemo, res.Imported, 0))
	return res, nil
}

// AddTransaction validates a manual entry and appends it.
func (s *LedgerService) AddTransaction(ctx context.Context, in ingest.Input) (core.Transaction, error) {
	tx, err := ingest.NewTransaction(in, s.classifier)
	if err != nil {
		return core.Transaction{}, err
	}
	if err := s.store.AppendTransaction(ctx, tx); err != nil {
		return core.Transaction{}, fmt.Errorf("append transaction: %w", err)
	}

	s.logs.LogTransactionAdded(ctx, tx.ID, tx.Amount.String(), tx.Category)
	s.publish(ctx, amqp.NewImportEvent(amqp.SourceManual, 1, 0))
	return tx, nil
}

// Transactions returns the stored set restricted to w.
func (s *LedgerService) Transactions(ctx context.Context, w aggregator.Window) ([]core.Transaction, error) {
	txs, err := s.store.Transactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("read transactions: %w", err)
	}
	return w.Filter(txs, s.now()), nil
}

// Targets returns the current budget targets.
func (s *LedgerService) Targets(ctx context.Context) (core.Targets, error) {
	t, err := s.store.Targets(ctx)
	if err != nil {
		return nil, fmt.Errorf("read targets: %w", err)
	}
	return t, nil
}

// SetTargets replaces every target.
func (s *LedgerService) SetTargets(ctx context.Context, t core.Targets) (core.Targets, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	if err := s.store.SetTargets(ctx, t); err != nil {
		return nil, fmt.Errorf("set targets: %w", err)
	}
	return t.Clone(), nil
}

// UpdateTargets overlays t on the current targets and stores the result.
func (s *LedgerService) UpdateTargets(ctx context.Context, t core.Targets) (core.Targets, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	current, err := s.Targets(ctx)
	if err != nil {
		return nil, err
	}
	return s.SetTargets(ctx, current.Merge(t))
}

// Report builds the aggregate report for w from the stored state.
func (s *LedgerService) Report(ctx context.Context, w aggregator.Window) (aggregator.Report, error) {
	txs, err := s.store.Transactions(ctx)
	if err != nil {
		return aggregator.Report{}, fmt.Errorf("read transactions: %w", err)
	}
	targets, err := s.store.Targets(ctx)
	if err != nil {
		return aggregator.Report{}, fmt.Errorf("read targets: %w", err)
	}
	return aggregator.Build(txs, targets, w, s.now()), nil
}

// DistributionSlice is one category share of total spend.
type DistributionSlice struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Share    decimal.Decimal `json:"share"`
}

// DashboardView is the overview over the whole transaction set.
type DashboardView struct {
	Count        int                     `json:"count"`
	Total        decimal.Decimal         `json:"total"`
	TotalTarget  decimal.Decimal         `json:"total_target"`
	Top          *core.CategoryTotal     `json:"top,omitempty"`
	Status       core.BudgetStatus       `json:"status"`
	Progress     []core.CategoryProgress `json:"progress"`
	Distribution []DistributionSlice     `json:"distribution"`
}

// Dashboard summarises every stored transaction.
func (s *LedgerService) Dashboard(ctx context.Context) (DashboardView, error) {
	r, err := s.Report(ctx, aggregator.All)
	if err != nil {
		return DashboardView{}, err
	}
	dist := make([]DistributionSlice, 0, len(r.Totals))
	for _, ct := range r.Totals {
		dist = append(dist, DistributionSlice{
			Category: ct.Category,
			Amount:   ct.Amount,
			Share:    aggregator.Share(ct.Amount, r.Total),
		})
	}
	return DashboardView{
		Count:        r.Count,
		Total:        r.Total,
		TotalTarget:  r.TotalTarget,
		Top:          r.Top,
		Status:       r.Status,
		Progress:     r.Progress,
		Distribution: dist,
	}, nil
}

// Recommendations builds the advice view for w.
func (s *LedgerService) Recommendations(ctx context.Context, w aggregator.Window) (recommend.View, error) {
	r, err := s.Report(ctx, w)
	if err != nil {
		return recommend.View{}, err
	}
	return recommend.Build(r), nil
}

// VisualizeView carries the chart data for one window.
type VisualizeView struct {
	Window aggregator.Window    `json:"window"`
	Count  int                  `json:"count"`
	Total  decimal.Decimal      `json:"total"`
	Totals []core.CategoryTotal `json:"totals"`
	Daily  []core.DailyPoint    `json:"daily"`
	Recent []core.Transaction   `json:"recent"`
}

// Visualize returns category totals, the last DailyBuckets days of spend and
// the recent most recent transactions within w. recent <= 0 means DefaultRecent.
func (s *LedgerService) Visualize(ctx context.Context, w aggregator.Window, recent int) (VisualizeView, error) {
	if recent <= 0 {
		recent = DefaultRecent
	}
	r, err := s.Report(ctx, w)
	if err != nil {
		return VisualizeView{}, err
	}
	return VisualizeView{
		Window: r.Window,
		Count:  r.Count,
		Total:  r.Total,
		Totals: r.Sorted,
		Daily:  aggregator.LastN(r.Daily, DailyBuckets),
		Recent: aggregator.Recent(r.Transactions, recent),
	}, nil
}

func (s *LedgerService) publish(ctx context.Context, ev *amqp.ImportEvent) {
	if s.publisher == nil {
		slog.DebugContext(ctx, "AMQP client not available, skipping import event", "source", ev.Source)
		return
	}
	if err := s.publisher.PublishImport(ctx, ev); err != nil {
		// The set is already stored; the event is best effort.
		slog.ErrorContext(ctx, "Failed to publish import event",
			"source", ev.Source, "count", ev.Count, "error", err)
	}
}

// Close closes the store and publisher when they hold resources.
func (s *LedgerService) Close() error {
	var errs []error

	if c, ok := s.store.(io.Closer); ok && c != nil {
		if err := c.Close(); err != nil {
			errs = append(errs, fmt.Errorf("store: %w", err))
		}
	}

	if c, ok := s.publisher.(io.Closer); ok && c != nil {
		if err := c.Close(); err != nil {
			errs = append(errs, fmt.Errorf("amqp: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("close ledger service: %w", errors.Join(errs...))
	}
	return nil
}
