package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/bytedance/sonic"
	"github.com/joho/godotenv"

	"github.com/draftlab/nbadraft/internal/app"
	"github.com/draftlab/nbadraft/internal/config"
	"github.com/draftlab/nbadraft/internal/platform/logging"
	"github.com/draftlab/nbadraft/internal/usecase"
)

func main() {
	_ = godotenv.Load()

	verifyFlag := flag.Bool("verify", false, "assert results against the known full-dataset baseline")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	if *verifyFlag {
		cfg.Verify = true
	}

	logger := logging.NewJSON(cfg.LogLevel)
	defer func() { _ = logger.Sync() }()
	logging.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("run aborted", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, logger *logging.Logger) error {
	analyzer, err := app.NewAnalyzer(cfg, logger)
	if err != nil {
		return err
	}
	defer func() { _ = analyzer.Close() }()

	ctx := context.Background()

	rows, err := analyzer.Ingest.Ingest(ctx)
	if err != nil {
		return err
	}
	logger.Info("ingest complete", "rows", rows, "db", cfg.DBPath)

	report, err := analyzer.Report.BuildReport(ctx)
	if err != nil {
		return err
	}

	encoded, err := sonic.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	fmt.Println(string(encoded))

	if cfg.Verify {
		if err := usecase.VerifyReport(report, usecase.DefaultBaseline()); err != nil {
			return err
		}
		logger.Info("verification passed")
	}

	return nil
}
