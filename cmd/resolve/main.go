// Command resolve translates one phrase through the resolution pipeline or
// submits user feedback for it.
//
// Flags:
//
//	--query      the phrase to resolve
//	--direction  banglish_to_english (default) or english_to_banglish
//	--feedback   suggested translation to record as feedback instead of resolving
//	--correct    whether the suggested translation is correct (default true)
//	--search     list dictionary entries matching a substring instead of resolving
//	--version    print build version and exit
//
// One of --query or --search is required. The result is printed as JSON to
// stdout.
// Exit codes: 0 = hit (or feedback recorded), 1 = miss, 2 = usage or config error.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/banglish-backend/internal/adapter/filestore"
	"github.com/heartmarshall/banglish-backend/internal/adapter/postgres"
	"github.com/heartmarshall/banglish-backend/internal/adapter/postgres/entry"
	"github.com/heartmarshall/banglish-backend/internal/app"
	"github.com/heartmarshall/banglish-backend/internal/config"
	"github.com/heartmarshall/banglish-backend/internal/domain"
	"github.com/heartmarshall/banglish-backend/internal/translator"
	"github.com/heartmarshall/banglish-backend/internal/translator/ruleset"
)

const (
	exitHit   = 0
	exitMiss  = 1
	exitUsage = 2
)

func main() {
	os.Exit(run())
}

func run() int {
	queryFlag := flag.String("query", "", "phrase to resolve")
	directionFlag := flag.String("direction", string(domain.DirectionForward), "translation direction")
	feedbackFlag := flag.String("feedback", "", "suggested translation to record as feedback")
	correctFlag := flag.Bool("correct", true, "whether the suggested translation is correct")
	searchFlag := flag.String("search", "", "list dictionary entries matching a substring")
	versionFlag := flag.Bool("version", false, "print build version and exit")
	flag.Parse()

	if *versionFlag {
		fmt.Println(app.BuildVersion())
		return exitHit
	}

	if *queryFlag == "" && *searchFlag == "" {
		fmt.Fprintln(os.Stderr, "resolve: one of --query or --search is required")
		flag.Usage()
		return exitUsage
	}

	direction := domain.Direction(*directionFlag)
	if !direction.IsValid() {
		fmt.Fprintf(os.Stderr, "resolve: unknown direction %q\n", *directionFlag)
		return exitUsage
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "resolve: %v\n", err)
		return exitUsage
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		return exitUsage
	}
	defer pool.Close()

	repo := entry.New(pool)

	if *searchFlag != "" {
		entries, err := repo.Find(ctx, entry.Filter{Search: searchFlag})
		if err != nil {
			logger.Error("search entries", slog.String("error", err.Error()))
			return exitUsage
		}
		out, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			logger.Error("encode entries", slog.String("error", err.Error()))
			return exitUsage
		}
		fmt.Println(string(out))
		if len(entries) == 0 {
			return exitMiss
		}
		return exitHit
	}

	rules, err := ruleset.Default()
	if err != nil {
		logger.Error("load rules", slog.String("error", err.Error()))
		return exitUsage
	}
	if cfg.Translator.ReferencePhrasesPath != "" {
		phrases, err := ruleset.PhrasesFromFile(cfg.Translator.ReferencePhrasesPath)
		if err != nil {
			logger.Error("load reference phrases", slog.String("error", err.Error()))
			return exitUsage
		}
		rules.ReferencePhrases = phrases
	}

	svc, err := translator.NewService(ctx, logger,
		repo,
		filestore.New(cfg.Translator.FeedbackPath),
		rules,
		cfg.Translator,
	)
	if err != nil {
		logger.Error("create translator", slog.String("error", err.Error()))
		return exitUsage
	}

	if *feedbackFlag != "" {
		svc.RecordFeedback(ctx, *queryFlag, direction, *feedbackFlag, *correctFlag)
		return exitHit
	}

	result, err := svc.Resolve(ctx, *queryFlag, direction)
	if err != nil {
		fmt.Fprintf(os.Stderr, "resolve: %v\n", err)
		return exitUsage
	}
	if result == nil {
		fmt.Fprintln(os.Stderr, "resolve: no translation found")
		return exitMiss
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		logger.Error("encode result", slog.String("error", err.Error()))
		return exitUsage
	}
	fmt.Println(string(out))

	return exitHit
}
