package main

import (
	"context"
	"errors"
	"os"

	"golang.org/x/sync/errgroup"

	"smartspend/internal/amqp"
	"smartspend/internal/cli"
	"smartspend/internal/config"
	applog "smartspend/internal/log"
	gsheet "smartspend/internal/sheets/google"
	"smartspend/internal/worker"
)

func main() {
	cli.LoadEnvFile()

	logger := cli.SetupLogger(os.Getenv("LOG_LEVEL"), applog.ComponentWorker)
	logger.Info("Starting smartspend-worker")

	cfg := cli.LoadAndValidateConfig(logger)
	if cfg.AMQPURL == "" {
		logger.Error("AMQP_URL is required for the worker")
		os.Exit(1)
	}

	if err := run(cfg, logger); err != nil {
		logger.Error("Worker stopped with error", applog.FieldError, err)
		os.Exit(1)
	}
	logger.Info("Worker stopped gracefully")
}

func run(cfg *config.Config, logger *applog.Logger) error {
	ctx, stop := cli.SignalContext(context.Background())
	defer stop()

	// The worker reads the database the server writes.
	sqliteRepo := cli.InitSQLite(logger, cfg.SQLiteDBPath)
	defer sqliteRepo.Close()

	// Google Sheets export is optional
	var writer worker.ReportWriter
	if cfg.GoogleSpreadsheetID != "" {
		sheets, err := gsheet.NewReportWriter(ctx, gsheet.Options{
			SpreadsheetID:   cfg.GoogleSpreadsheetID,
			SheetName:       cfg.GoogleSheetName,
			CredentialsJSON: cfg.GoogleServiceAccountJSON,
			CredentialsFile: cfg.GoogleServiceAccountFile,
		})
		if err != nil {
			return err
		}
		writer = sheets
		logger.Info("Google Sheets export enabled", "spreadsheet_id", cfg.GoogleSpreadsheetID, "sheet", cfg.GoogleSheetName)
	} else {
		logger.Info("Google Sheets export disabled - no GOOGLE_SPREADSHEET_ID provided")
	}

	amqpClient, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
	if err != nil {
		return err
	}
	defer amqpClient.Close()

	reportWorker := worker.NewReportWorker(sqliteRepo, writer)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return amqpClient.ConsumeImports(gctx, reportWorker.HandleImport)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
