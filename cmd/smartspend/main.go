package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"smartspend/internal/auth"
	"smartspend/internal/backend"
	"smartspend/internal/cache"
	"smartspend/internal/cli"
	"smartspend/internal/config"
	apphttp "smartspend/internal/http"
	applog "smartspend/internal/log"
)

func main() {
	cli.LoadEnvFile()

	logger := cli.SetupLogger(os.Getenv("LOG_LEVEL"), applog.ComponentApp)
	cfg := cli.LoadAndValidateConfig(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("Server stopped with error", applog.FieldError, err)
		os.Exit(1)
	}
	logger.Info("Server stopped gracefully")
}

func run(cfg *config.Config, logger *applog.Logger) error {
	ctx, stop := cli.SignalContext(context.Background())
	defer stop()

	cls, err := cli.LoadClassifier(cfg.RulesFile)
	if err != nil {
		return err
	}

	backendCfg, err := backend.FromAppConfig(cfg, cls)
	if err != nil {
		return err
	}
	res, err := backend.NewFactory(logger.WithComponent(applog.ComponentBackend).Logger).CreateBackend(ctx, backendCfg)
	if err != nil {
		return err
	}
	if res.Cleanup != nil {
		defer func() {
			if err := res.Cleanup(); err != nil {
				logger.Error("Backend cleanup failed", applog.FieldError, err)
			}
		}()
	}

	users, err := auth.ParseUsers(cfg.Users)
	if err != nil {
		return err
	}
	verifier, err := auth.NewStaticVerifier(users, 0)
	if err != nil {
		return err
	}
	sessions := auth.NewSessions(cfg.SessionMaxEntries, cfg.SessionTTL)

	caches := cache.NewManager()
	caches.Register("sessions", sessions)

	srv := apphttp.NewServer(":"+cfg.Port, res.Service, verifier, sessions, apphttp.Options{
		RateLimitPerMinute: cfg.RateLimitPerMinute,
		Logger:             logger.WithComponent(applog.ComponentHTTP),
	})

	// Configure server timeouts and limits
	srv.ReadTimeout = 30 * time.Second
	srv.WriteTimeout = 30 * time.Second
	srv.IdleTimeout = 60 * time.Second
	srv.MaxHeaderBytes = 1 << 16 // 64KB

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("Starting smartspend server",
			"port", cfg.Port,
			"backend", cfg.DataBackend,
			"users", len(verifier.Users()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		return caches.Run(gctx, cfg.CacheCleanup)
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
