package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/banglish-backend/internal/domain"
)

// SeedEntry inserts one dictionary pair and returns the stored entry.
// Normalized columns are derived the same way the seeder derives them.
func SeedEntry(t *testing.T, pool *pgxpool.Pool, banglish, english string) domain.Entry {
	t.Helper()
	ctx := context.Background()

	e := domain.Entry{
		ID:                 uuid.New(),
		Banglish:           banglish,
		English:            english,
		BanglishNormalized: domain.NormalizeText(banglish),
		EnglishNormalized:  domain.NormalizeText(english),
		SourceSlug:         "test",
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO entries (id, banglish, english, banglish_normalized, english_normalized, source_slug)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING created_at`,
		e.ID, e.Banglish, e.English, e.BanglishNormalized, e.EnglishNormalized, e.SourceSlug,
	).Scan(&e.CreatedAt)
	if err != nil {
		t.Fatalf("SeedEntry(%q): %v", banglish, err)
	}

	return e
}

// TruncateEntries wipes the entries table so a test starts from a known state.
func TruncateEntries(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	if _, err := pool.Exec(context.Background(), `TRUNCATE entries`); err != nil {
		t.Fatalf("TruncateEntries: %v", err)
	}
}
