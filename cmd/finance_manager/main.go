package main

import (
	"context"
	"flag"
	"io"
	"log/slog"
	"os"

	"github.com/SscSPs/finance_manager/cmd/docs"
	"github.com/SscSPs/finance_manager/internal/adapters/invoicepdf"
	"github.com/SscSPs/finance_manager/internal/cli"
	"github.com/SscSPs/finance_manager/internal/middleware"
	"github.com/SscSPs/finance_manager/internal/platform/config"
	"github.com/SscSPs/finance_manager/internal/repositories/database/sqlite"
	"github.com/google/subcommands"
)

// @title Finance Manager API
// @version 1.0
// @description Local API over the stock register, the income and expense ledger, invoicing and reports.

// @host localhost:8080
// @BasePath /api/v1
func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		return 1
	}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		slog.Error("Failed to open log file", slog.String("error", err.Error()))
		return 1
	}
	defer closeLog()
	slog.SetDefault(logger)

	ctx := middleware.WithLogger(context.Background(), logger)

	store := sqlite.NewStore(cfg.DBPath, sqlite.WithLogger(logger))
	if err := store.Initialize(ctx); err != nil {
		logger.Error("Failed to initialize database", slog.String("path", cfg.DBPath), slog.String("error", err.Error()))
		return 1
	}
	defer func() {
		if cerr := store.Close(); cerr != nil {
			logger.Error("Error closing database", slog.String("error", cerr.Error()))
		}
	}()

	pdf := invoicepdf.NewChromedpRenderer(invoicepdf.ChromedpConfig{
		Timeout:   cfg.RenderTimeout,
		RemoteURL: cfg.ChromeRemoteURL,
		Logger:    logger,
	})
	defer func() { _ = pdf.Close() }()
	renderer := invoicepdf.NewGenerator(pdf, cfg.InvoiceOutputDir, cfg.CurrencyCode)

	app := cli.NewApp(cfg, store, renderer, logger)
	if cfg.BackupOnStartup {
		if path, err := app.Services.Maintenance.Backup(ctx); err != nil {
			logger.Warn("Startup backup failed", slog.String("error", err.Error()))
		} else {
			logger.Info("Startup backup written", slog.String("path", path))
		}
	}

	docs.SwaggerInfo.Host = cfg.HTTPAddr

	commander := subcommands.NewCommander(flag.CommandLine, os.Args[0])
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cli.Register(commander, app)

	flag.Parse()
	return int(commander.Execute(ctx))
}

func newLogger(cfg *config.Config) (*slog.Logger, func(), error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		level = slog.LevelInfo
	}

	var out io.Writer = os.Stderr
	closeFn := func() {}
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, err
		}
		out = f
		closeFn = func() { _ = f.Close() }
	}
	return slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: level})), closeFn, nil
}
