// Command seeder imports a dictionary dataset file into the entries table.
// It is intended to be run offline, not as part of the main service.
//
// Flags:
//
//	--input    path to the dataset file (required)
//	--format   jsonl or csv (default: jsonl)
//	--source   source slug for rows without one of their own (default: file name)
//	--dry-run  parse and dedupe without writing to DB
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/heartmarshall/banglish-backend/internal/adapter/postgres"
	"github.com/heartmarshall/banglish-backend/internal/adapter/postgres/entry"
	"github.com/heartmarshall/banglish-backend/internal/app"
	"github.com/heartmarshall/banglish-backend/internal/config"
	"github.com/heartmarshall/banglish-backend/internal/seeder"
	"github.com/heartmarshall/banglish-backend/internal/seeder/csvdata"
	"github.com/heartmarshall/banglish-backend/internal/seeder/jsonl"
)

func main() {
	inputFlag := flag.String("input", "", "path to the dataset file")
	formatFlag := flag.String("format", "jsonl", "dataset format: jsonl or csv")
	sourceFlag := flag.String("source", "", "source slug for imported rows")
	dryRunFlag := flag.Bool("dry-run", false, "parse dataset without writing to DB")
	flag.Parse()

	if *inputFlag == "" {
		log.Fatal("seeder: --input is required")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	records, err := parseFile(*inputFlag, *formatFlag, logger)
	if err != nil {
		logger.Error("parse dataset", slog.String("error", err.Error()))
		os.Exit(1)
	}

	source := *sourceFlag
	if source == "" {
		source = strings.TrimSuffix(filepath.Base(*inputFlag), filepath.Ext(*inputFlag))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	pipeline := seeder.NewPipeline(logger, entry.New(pool), postgres.NewTxManager(pool), seeder.Config{
		Source: source,
		DryRun: *dryRunFlag,
	})

	summary, err := pipeline.Run(ctx, records)
	if err != nil {
		logger.Error("import failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("import completed",
		slog.Int("attempted", summary.Attempted),
		slog.Int("inserted", summary.Inserted),
	)
}

func parseFile(path, format string, logger *slog.Logger) ([]seeder.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	switch format {
	case "jsonl":
		result, err := jsonl.Parse(f)
		if err != nil {
			return nil, err
		}
		for _, lineErr := range result.Errors {
			logger.Warn("skipped malformed line", slog.String("error", lineErr.Error()))
		}
		logger.Info("parsed jsonl dataset",
			slog.Int("lines", result.Stats.TotalLines),
			slog.Int("records", result.Stats.ParsedRecords),
			slog.Int("malformed", result.Stats.MalformedLines),
		)
		return result.Records, nil

	case "csv":
		result, err := csvdata.Parse(f)
		if err != nil {
			return nil, err
		}
		logger.Info("parsed csv dataset",
			slog.Int("rows", result.Stats.TotalRows),
			slog.Int("records", result.Stats.ParsedRecords),
			slog.Int("skipped", result.Stats.SkippedRows),
		)
		return result.Records, nil

	default:
		return nil, fmt.Errorf("unknown format %q (want jsonl or csv)", format)
	}
}
