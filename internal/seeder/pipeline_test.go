package seeder

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/heartmarshall/banglish-backend/internal/domain"
)

// fakeRepo collects batches in memory and dedupes on normalized Banglish,
// mimicking the ON CONFLICT DO NOTHING insert.
type fakeRepo struct {
	rows     map[string]domain.Entry
	batchErr error
	batches  int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{rows: map[string]domain.Entry{}}
}

func (r *fakeRepo) CreateBatch(_ context.Context, entries []domain.Entry) (int, error) {
	if r.batchErr != nil {
		return 0, r.batchErr
	}
	r.batches++
	inserted := 0
	for _, e := range entries {
		if _, exists := r.rows[e.BanglishNormalized]; exists {
			continue
		}
		r.rows[e.BanglishNormalized] = e
		inserted++
	}
	return inserted, nil
}

func (r *fakeRepo) Count(context.Context) (int64, error) {
	return int64(len(r.rows)), nil
}

// fakeTxRunner just invokes the callback; transactional behavior itself is
// covered by the repository integration tests.
type fakeTxRunner struct {
	calls int
}

func (m *fakeTxRunner) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

func newPipeline(t *testing.T, repo *fakeRepo, cfg Config) (*Pipeline, *fakeTxRunner) {
	t.Helper()
	txm := &fakeTxRunner{}
	return NewPipeline(slog.Default(), repo, txm, cfg), txm
}

func TestPipeline_Run(t *testing.T) {
	t.Parallel()

	repo := newFakeRepo()
	p, txm := newPipeline(t, repo, Config{Source: "clean_v1"})

	records := []Record{
		{Banglish: "kemon acho", English: "how are you"},
		{Banglish: "Kemon  ACHO", English: "different"}, // dup after normalization
		{Banglish: "dhonnobad", English: "thank you", Source: "merged_v2"},
		{Banglish: "   ", English: "blank banglish"},
		{Banglish: "blank english", English: ""},
	}

	summary, err := p.Run(context.Background(), records)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if summary.Total != 5 {
		t.Errorf("Total = %d, want 5", summary.Total)
	}
	if summary.Invalid != 2 {
		t.Errorf("Invalid = %d, want 2", summary.Invalid)
	}
	if summary.Duplicates != 1 {
		t.Errorf("Duplicates = %d, want 1", summary.Duplicates)
	}
	if summary.Attempted != 2 || summary.Inserted != 2 {
		t.Errorf("Attempted/Inserted = %d/%d, want 2/2", summary.Attempted, summary.Inserted)
	}
	if txm.calls != 1 {
		t.Errorf("RunInTx called %d times, want 1", txm.calls)
	}

	// First occurrence won the dedupe.
	kept := repo.rows["kemon acho"]
	if kept.English != "how are you" {
		t.Errorf("kept English = %q, want the first occurrence", kept.English)
	}
	// Record-level source overrides the config default.
	if repo.rows["dhonnobad"].SourceSlug != "merged_v2" {
		t.Errorf("SourceSlug = %q, want %q", repo.rows["dhonnobad"].SourceSlug, "merged_v2")
	}
	if kept.SourceSlug != "clean_v1" {
		t.Errorf("default SourceSlug = %q, want %q", kept.SourceSlug, "clean_v1")
	}
}

func TestPipeline_Run_DryRun(t *testing.T) {
	t.Parallel()

	repo := newFakeRepo()
	p, txm := newPipeline(t, repo, Config{Source: "clean_v1", DryRun: true})

	summary, err := p.Run(context.Background(), []Record{
		{Banglish: "bari", English: "home"},
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if summary.Attempted != 1 || summary.Inserted != 0 {
		t.Errorf("Attempted/Inserted = %d/%d, want 1/0", summary.Attempted, summary.Inserted)
	}
	if len(repo.rows) != 0 || txm.calls != 0 {
		t.Error("dry run touched the repository")
	}
}

func TestPipeline_Run_Batching(t *testing.T) {
	t.Parallel()

	repo := newFakeRepo()
	p, _ := newPipeline(t, repo, Config{Source: "s", BatchSize: 2})

	records := []Record{
		{Banglish: "ek", English: "one"},
		{Banglish: "dui", English: "two"},
		{Banglish: "tin", English: "three"},
		{Banglish: "char", English: "four"},
		{Banglish: "pach", English: "five"},
	}

	summary, err := p.Run(context.Background(), records)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if summary.Inserted != 5 {
		t.Errorf("Inserted = %d, want 5", summary.Inserted)
	}
	if repo.batches != 3 {
		t.Errorf("batches = %d, want 3", repo.batches)
	}
}

func TestPipeline_Run_InsertFailure(t *testing.T) {
	t.Parallel()

	repo := newFakeRepo()
	repo.batchErr = errors.New("connection refused")
	p, _ := newPipeline(t, repo, Config{Source: "s"})

	_, err := p.Run(context.Background(), []Record{{Banglish: "bari", English: "home"}})
	if err == nil {
		t.Fatal("Run with failing insert = nil error, want failure")
	}
	if !errors.Is(err, repo.batchErr) {
		t.Errorf("Run error = %v, want it to wrap the insert error", err)
	}
}

func TestPipeline_Run_NoRecords(t *testing.T) {
	t.Parallel()

	repo := newFakeRepo()
	p, _ := newPipeline(t, repo, Config{Source: "s"})

	summary, err := p.Run(context.Background(), nil)
	if err != nil {
		t.Fatalf("Run(nil): %v", err)
	}
	if summary.Total != 0 || summary.Inserted != 0 {
		t.Errorf("summary = %+v, want all zero", summary)
	}
}
