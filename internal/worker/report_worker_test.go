package worker

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartspend/internal/aggregator"
	"smartspend/internal/amqp"
	"smartspend/internal/core"
	"smartspend/internal/ingest"
	"smartspend/internal/store/memory"
)

type fakeWriter struct {
	reports []aggregator.Report
	err     error
}

func (f *fakeWriter) WriteBudgetReport(_ context.Context, r aggregator.Report) error {
	f.reports = append(f.reports, r)
	return f.err
}

type failingStore struct{}

func (failingStore) Transactions(context.Context) ([]core.Transaction, error) {
	return nil, errors.New("database is locked")
}

func (failingStore) Targets(context.Context) (core.Targets, error) {
	return core.DefaultTargets(), nil
}

func seededStore(t *testing.T) *memory.Store {
	t.Helper()
	st := memory.New(nil)
	require.NoError(t, st.ReplaceTransactions(context.Background(), ingest.Demo()))
	return st
}

func TestHandleImportWritesReport(t *testing.T) {
	w := &fakeWriter{}
	worker := NewReportWorker(seededStore(t), w)

	err := worker.HandleImport(context.Background(), amqp.NewImportEvent(amqp.SourceDemo, 14, 0))
	require.NoError(t, err)

	require.Len(t, w.reports, 1)
	r := w.reports[0]
	assert.Equal(t, aggregator.All, r.Window)
	assert.Equal(t, 14, r.Count)
	assert.Equal(t, "12048", r.Total.String())
	assert.Equal(t, 5, r.Status.CategoriesOver)
}

func TestHandleImportWithoutWriter(t *testing.T) {
	worker := NewReportWorker(seededStore(t), nil)
	require.NoError(t, worker.HandleImport(context.Background(), amqp.NewImportEvent(amqp.SourceCSV, 14, 0)))
}

func TestHandleImportWriterError(t *testing.T) {
	w := &fakeWriter{err: errors.New("quota exceeded")}
	worker := NewReportWorker(seededStore(t), w)

	err := worker.HandleImport(context.Background(), amqp.NewImportEvent(amqp.SourceCSV, 1, 0))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "write budget report")
}

func TestHandleImportStoreError(t *testing.T) {
	w := &fakeWriter{}
	worker := NewReportWorker(failingStore{}, w)

	err := worker.HandleImport(context.Background(), amqp.NewImportEvent(amqp.SourceManual, 1, 0))
	require.Error(t, err)
	assert.Empty(t, w.reports)
}
