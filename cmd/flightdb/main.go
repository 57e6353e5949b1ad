// Package main is the entry point for the flightdb command-line tool.
// Its sole responsibility is wiring dependencies together and running the
// app. No business logic belongs here.
package main

import (
	"errors"
	"flag"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/pkordes/flightdb/internal/cli"
	"github.com/pkordes/flightdb/internal/config"
	"github.com/pkordes/flightdb/internal/service"
	"github.com/pkordes/flightdb/internal/store"
)

func main() {
	// --- Flags ------------------------------------------------------------
	opts, err := cli.ParseOptions(os.Args[1:], os.Stderr)
	if err != nil {
		// Usage and error text were already written to stderr.
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		os.Exit(2)
	}

	// --- Config -----------------------------------------------------------
	cfg, err := config.Load(opts.Config)
	if err != nil {
		// Use the default logger before the real one is configured.
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	// log/slog is the stdlib structured logger introduced in Go 1.21.
	// Text handler to stderr keeps stdout free for data output; every line
	// carries the run id so multi-run logs stay attributable.
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})).With("run_id", uuid.New().String())
	slog.SetDefault(logger)

	// --- App --------------------------------------------------------------
	reader := store.NewTableReader(cfg.Delimiter, cfg.CommentPrefix)
	files := store.NewFileStore()
	validator := service.NewValidator()
	ingestor := service.NewIngestor(reader, validator, logger)

	app := cli.NewApp(ingestor, files, cfg, logger)
	if err := app.Run(opts); err != nil {
		logger.Error("run failed", "error", err)
		os.Exit(1)
	}
	logger.Info("all operations completed")
}
