// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/taibuivan/langgate/internal/api"
	"github.com/taibuivan/langgate/internal/core/flow"
	"github.com/taibuivan/langgate/internal/core/language"
	"github.com/taibuivan/langgate/internal/core/otp"
	"github.com/taibuivan/langgate/internal/core/page"
	"github.com/taibuivan/langgate/internal/platform/config"
	"github.com/taibuivan/langgate/internal/platform/constants"
	redisstore "github.com/taibuivan/langgate/internal/platform/redis"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Run the HTTP API.

Startup sequence:
  1. Load configuration from environment variables.
  2. Load the language catalog.
  3. Connect to Redis when REDIS_URL is set.
  4. Wire the flow and HTTP handlers.
  5. Serve until SIGINT/SIGTERM, then shut down gracefully.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}
}

func runServe() error {
	// ── 1. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := newLogger(os.Stdout, cfg.Debug)
	slog.SetDefault(log)
	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.Bool("autopilot", cfg.Autopilot),
	)

	// Root context lives as long as the server; the rate limiter janitor stops with it.
	rootCtx, rootCancel := context.WithCancel(context.Background())
	defer rootCancel()

	startupCtx, startupCancel := context.WithTimeout(rootCtx, 30*time.Second)
	defer startupCancel()

	// ── 2. Catalog ────────────────────────────────────────────────────────
	catalog, err := loadCatalog(cfg)
	must(log, err, "load language catalog")

	// ── 3. OTP Challenges ─────────────────────────────────────────────────
	authority, rdb, err := newAuthority(startupCtx, cfg, log)
	must(log, err, "initialize otp store")

	health := api.HealthDependencies{}
	if rdb != nil {
		defer func() {
			log.Info("closing redis client")
			if cerr := rdb.Close(); cerr != nil {
				log.Error("redis close error", slog.Any("error", cerr))
			}
		}()
		health.CheckCache = func(ctx context.Context) error {
			return redisstore.Ping(ctx, rdb)
		}
	}

	// ── 4. Domain Wiring ──────────────────────────────────────────────────
	switcher, err := flow.New(flow.Dependencies{
		Catalog:   catalog,
		Authority: authority,
		Sender:    otp.NewLogSender(log),
		Logger:    log,
	}, settingsFrom(cfg))
	must(log, err, "initialize flow")

	liveness, readiness := api.NewHealthHandlers(health, log)
	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Languages: language.NewHandler(language.NewService(language.NewStaticRepository(catalog), log)),
		Flow:      page.NewHandler(switcher),
	}

	server := api.NewServer(rootCtx, cfg, log, handlers)

	// ── 5. Graceful Shutdown ──────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		return err
	}

	log.Info("server stopped cleanly")
	return nil
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is limited to startup wiring. After startup, all errors are returned.
func must(log *slog.Logger, err error, step string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", step),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
