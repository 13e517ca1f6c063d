package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/riskibarqy/batting-insights/internal/app"
	"github.com/riskibarqy/batting-insights/internal/config"
	"github.com/riskibarqy/batting-insights/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/batting-insights/internal/platform/logging"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <file.csv>...\n", filepath.Base(os.Args[0]))
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := logging.NewJSON(cfg.LogLevel)
	logging.SetDefault(logger)
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger, os.Args[1:]); err != nil {
		logger.Error("import failed", "error", err)
		_ = logger.Sync()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, logger *logging.Logger, paths []string) error {
	db, err := app.OpenDB(ctx, cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	im := newImporter(postgres.NewHitRepository(db), cfg.ImportBatchSize, cfg.ImportWorkers, logger)
	result, err := im.Run(ctx, paths)
	if result.BatchID == "" {
		return err
	}
	logger.Info("import finished",
		"batch_id", result.BatchID,
		"files", len(paths),
		"parsed", result.Parsed,
		"batches", result.Batches,
		"inserted", result.Inserted,
		"skipped", int64(result.Parsed)-result.Inserted,
	)
	return err
}
