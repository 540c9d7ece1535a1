package seeder

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/banglish-backend/internal/domain"
)

const defaultBatchSize = 500

type entryBulkRepo interface {
	// CreateBatch inserts entries, skipping normalized-Banglish conflicts,
	// and reports how many rows were actually written.
	CreateBatch(ctx context.Context, entries []domain.Entry) (int, error)
	Count(ctx context.Context) (int64, error)
}

type txRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Config controls one pipeline run.
type Config struct {
	// Source labels inserted rows whose record carries no source of its own.
	Source string

	// DryRun validates and dedupes without touching the database.
	DryRun bool

	// BatchSize caps one insert round trip. Zero means the default (500).
	BatchSize int
}

// Summary reports what one run did.
type Summary struct {
	Total      int // records handed to the pipeline
	Invalid    int // blank on either side after normalization
	Duplicates int // later occurrences of an already-seen Banglish text
	Attempted  int // candidate rows after validation and dedupe
	Inserted   int // rows actually written (0 in dry-run)
}

// Pipeline validates, dedupes and inserts dataset records. All inserts of
// one run happen in a single transaction: a run either lands completely or
// not at all.
type Pipeline struct {
	log  *slog.Logger
	repo entryBulkRepo
	txm  txRunner
	cfg  Config
}

// NewPipeline creates a pipeline with injected dependencies.
func NewPipeline(logger *slog.Logger, repo entryBulkRepo, txm txRunner, cfg Config) *Pipeline {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = defaultBatchSize
	}
	return &Pipeline{
		log:  logger.With("component", "seeder"),
		repo: repo,
		txm:  txm,
		cfg:  cfg,
	}
}

// Run processes the records and returns a summary. Validation and dedupe
// never fail; only database errors do.
func (p *Pipeline) Run(ctx context.Context, records []Record) (Summary, error) {
	summary := Summary{Total: len(records)}

	seen := map[string]struct{}{}
	candidates := make([]domain.Entry, 0, len(records))

	for _, rec := range records {
		banglishNorm := domain.NormalizeText(rec.Banglish)
		englishNorm := domain.NormalizeText(rec.English)
		if banglishNorm == "" || englishNorm == "" {
			summary.Invalid++
			continue
		}

		// First occurrence wins, mirroring the insert conflict policy.
		if _, dup := seen[banglishNorm]; dup {
			summary.Duplicates++
			continue
		}
		seen[banglishNorm] = struct{}{}

		source := rec.Source
		if source == "" {
			source = p.cfg.Source
		}

		candidates = append(candidates, domain.Entry{
			ID:                 uuid.New(),
			Banglish:           rec.Banglish,
			English:            rec.English,
			BanglishNormalized: banglishNorm,
			EnglishNormalized:  englishNorm,
			SourceSlug:         source,
		})
	}
	summary.Attempted = len(candidates)

	if p.cfg.DryRun {
		p.log.Info("dry run, skipping insert",
			slog.Int("total", summary.Total),
			slog.Int("invalid", summary.Invalid),
			slog.Int("duplicates", summary.Duplicates),
			slog.Int("candidates", summary.Attempted),
		)
		return summary, nil
	}

	err := p.txm.RunInTx(ctx, func(ctx context.Context) error {
		for start := 0; start < len(candidates); start += p.cfg.BatchSize {
			end := min(start+p.cfg.BatchSize, len(candidates))

			inserted, err := p.repo.CreateBatch(ctx, candidates[start:end])
			if err != nil {
				return fmt.Errorf("insert batch at %d: %w", start, err)
			}
			summary.Inserted += inserted
		}
		return nil
	})
	if err != nil {
		return summary, err
	}

	total, err := p.repo.Count(ctx)
	if err != nil {
		// The import itself succeeded; the final count is informational.
		p.log.Warn("count entries after import failed", slog.String("error", err.Error()))
		total = -1
	}

	p.log.Info("import finished",
		slog.Int("total", summary.Total),
		slog.Int("invalid", summary.Invalid),
		slog.Int("duplicates", summary.Duplicates),
		slog.Int("attempted", summary.Attempted),
		slog.Int("inserted", summary.Inserted),
		slog.Int("skipped_existing", summary.Attempted-summary.Inserted),
		slog.Int64("entries_total", total),
	)

	return summary, nil
}
