// Package google exports budget reports to a Google Sheets spreadsheet.
package google

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	goption "google.golang.org/api/option"
	gsheet "google.golang.org/api/sheets/v4"

	"smartspend/internal/aggregator"
)

// Options configures a ReportWriter. CredentialsJSON wins over
// CredentialsFile; when both are empty GOOGLE_APPLICATION_CREDENTIALS is
// consulted.
type Options struct {
	SpreadsheetID   string
	SheetName       string
	CredentialsJSON string
	CredentialsFile string
}

// ReportWriter overwrites one sheet with the latest budget analysis.
type ReportWriter struct {
	svc           *gsheet.Service
	spreadsheetID string
	sheetName     string
}

func NewReportWriter(ctx context.Context, opts Options) (*ReportWriter, error) {
	spreadsheetID := strings.TrimSpace(opts.SpreadsheetID)
	if spreadsheetID == "" {
		return nil, errors.New("missing spreadsheet id")
	}
	sheetName := strings.TrimSpace(opts.SheetName)
	if sheetName == "" {
		sheetName = "Budget"
	}

	svc, err := newSheetsService(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("sheets service: %w", err)
	}
	return &ReportWriter{svc: svc, spreadsheetID: spreadsheetID, sheetName: sheetName}, nil
}

// newSheetsService initializes a Sheets Service using Service Account credentials.
func newSheetsService(ctx context.Context, opts Options) (*gsheet.Service, error) {
	credentialsFile := strings.TrimSpace(opts.CredentialsFile)
	if opts.CredentialsJSON == "" && credentialsFile == "" {
		credentialsFile = strings.TrimSpace(os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"))
	}

	var credentialsJSON []byte
	switch {
	case strings.TrimSpace(opts.CredentialsJSON) != "":
		credentialsJSON = []byte(opts.CredentialsJSON)
	case credentialsFile != "":
		data, err := os.ReadFile(credentialsFile)
		if err != nil {
			return nil, fmt.Errorf("read service account file: %w", err)
		}
		credentialsJSON = data
	default:
		return nil, errors.New("missing service account credentials (set GOOGLE_SERVICE_ACCOUNT_JSON, GOOGLE_SERVICE_ACCOUNT_FILE, or GOOGLE_APPLICATION_CREDENTIALS)")
	}

	slog.InfoContext(ctx, "Creating Google Sheets service with Service Account",
		"credentials_size", len(credentialsJSON),
		"scope", gsheet.SpreadsheetsScope)

	service, err := gsheet.NewService(ctx,
		goption.WithCredentialsJSON(credentialsJSON),
		goption.WithScopes(gsheet.SpreadsheetsScope))
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}
	return service, nil
}

// WriteBudgetReport clears the sheet and writes the header, one row per
// category and a total row.
func (w *ReportWriter) WriteBudgetReport(ctx context.Context, r aggregator.Report) error {
	if w.svc == nil {
		return errors.New("sheets service not initialized")
	}

	clearRange := fmt.Sprintf("%s!A:E", w.sheetName)
	if _, err := w.svc.Spreadsheets.Values.Clear(w.spreadsheetID, clearRange, &gsheet.ClearValuesRequest{}).
		Context(ctx).Do(); err != nil {
		return fmt.Errorf("clear sheet %s: %w", w.sheetName, err)
	}

	rows := budgetRows(r)
	rng := fmt.Sprintf("%s!A1:E%d", w.sheetName, len(rows))
	vr := &gsheet.ValueRange{Values: rows}
	if _, err := w.svc.Spreadsheets.Values.Update(w.spreadsheetID, rng, vr).
		ValueInputOption("USER_ENTERED").Context(ctx).Do(); err != nil {
		return fmt.Errorf("update sheet %s: %w", w.sheetName, err)
	}

	slog.InfoContext(ctx, "Budget report written to sheet",
		"sheet", w.sheetName,
		"categories", len(rows)-2,
		"total", r.Total.String())
	return nil
}
