// @title Fortuna Game Service API
// @version 1.0
// @description Backend service for spin and wheel game outcomes with daily win limits and external record persistence.
// @BasePath /
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fortuna-games/fortuna/internal/config"
	"github.com/fortuna-games/fortuna/internal/dailylimit"
	"github.com/fortuna-games/fortuna/internal/notion"
	"github.com/fortuna-games/fortuna/internal/server"
	"github.com/fortuna-games/fortuna/internal/spin"
	"github.com/fortuna-games/fortuna/internal/wheel"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Load reads .env, so schema validation has to come after it.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		slog.Error("Environment validation failed", "error", err)
		os.Exit(1)
	}

	initLogger(cfg)
	for _, w := range warnings {
		slog.Warn(w)
	}

	store, err := notion.NewClient(cfg.NotionBaseURL, cfg.NotionToken, cfg.Databases)
	if err != nil {
		slog.Error("Failed to create record store client", "error", err)
		os.Exit(1)
	}

	limiter := dailylimit.NewService(store, cfg.DailyLimits)
	spinService := spin.NewService(store, limiter, cfg.SpinWinProbability)

	wheelService, err := wheel.NewService(store, limiter, cfg.WheelSlots, cfg.WheelWinningSlots)
	if err != nil {
		slog.Error("Invalid wheel configuration", "error", err)
		os.Exit(1)
	}

	srv := server.NewServer(cfg, store, spinService, wheelService)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	case sig := <-stop:
		slog.Info("Shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Stop(ctx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Server stopped")
}
