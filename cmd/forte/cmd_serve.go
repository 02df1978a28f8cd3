package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/tonerow/forte/internal/config"
	"github.com/tonerow/forte/internal/forte"
	"github.com/tonerow/forte/internal/server"
)

func newServeCmd(catalog *forte.Catalog) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the classification API over HTTP",
		Long: `Starts the HTTP server exposing the classification query interface.
Configured through the environment: FORTE_PORT, FORTE_LOG_LEVEL,
FORTE_LOG_FORMAT, FORTE_MODE.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			logger := newLogger(cfg)

			ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			return server.New(cfg, catalog, logger).Run(ctx)
		},
	}
}

func newLogger(cfg config.Config) *slog.Logger {
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}
