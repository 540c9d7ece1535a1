// Package entry implements the dictionary entry repository using PostgreSQL.
// Point lookups use raw SQL; the dynamic listing query is built with squirrel.
package entry

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/banglish-backend/internal/adapter/postgres"
	"github.com/heartmarshall/banglish-backend/internal/domain"
)

// Repo provides dictionary entry persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new entry repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const entryColumns = `id, banglish, english, banglish_normalized, english_normalized, source_slug, created_at`

const lookupForwardSQL = `
SELECT ` + entryColumns + `
FROM entries
WHERE banglish_normalized = $1`

// Several Banglish spellings can normalize onto the same English text, so
// the reverse lookup picks the oldest row deterministically.
const lookupReverseSQL = `
SELECT ` + entryColumns + `
FROM entries
WHERE english_normalized = $1
ORDER BY created_at, id
LIMIT 1`

const insertSQL = `
INSERT INTO entries (id, banglish, english, banglish_normalized, english_normalized, source_slug)
VALUES ($1, $2, $3, $4, $5, $6)`

const insertBatchSQL = insertSQL + `
ON CONFLICT (banglish_normalized) DO NOTHING`

const countSQL = `SELECT count(*) FROM entries`

// Lookup returns the entry whose query-side normalized text equals the
// normalized input. Case and surrounding whitespace are ignored. Returns
// domain.ErrNotFound when no entry matches.
func (r *Repo) Lookup(ctx context.Context, text string, direction domain.Direction) (*domain.Entry, error) {
	normalized := domain.NormalizeText(text)

	var query string
	switch direction {
	case domain.DirectionForward:
		query = lookupForwardSQL
	case domain.DirectionReverse:
		query = lookupReverseSQL
	default:
		return nil, fmt.Errorf("lookup direction %q: %w", direction, domain.ErrValidation)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	var e domain.Entry
	err := q.QueryRow(ctx, query, normalized).Scan(
		&e.ID, &e.Banglish, &e.English,
		&e.BanglishNormalized, &e.EnglishNormalized,
		&e.SourceSlug, &e.CreatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "entry", normalized)
	}

	return &e, nil
}

// Find returns entries matching the filter, newest first by default.
func (r *Repo) Find(ctx context.Context, filter Filter) ([]domain.Entry, error) {
	filter.normalize()

	builder := sq.Select(
		"id", "banglish", "english",
		"banglish_normalized", "english_normalized",
		"source_slug", "created_at",
	).
		From("entries").
		PlaceholderFormat(sq.Dollar).
		OrderBy(
			fmt.Sprintf("%s %s", filter.SortBy, filter.SortOrder),
			"id",
		).
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Offset))

	if filter.Search != nil && *filter.Search != "" {
		needle := "%" + domain.NormalizeText(*filter.Search) + "%"
		builder = builder.Where(sq.Or{
			sq.ILike{"banglish_normalized": needle},
			sq.ILike{"english_normalized": needle},
		})
	}
	if filter.SourceSlug != nil && *filter.SourceSlug != "" {
		builder = builder.Where(sq.Eq{"source_slug": *filter.SourceSlug})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build entries query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.Entry
	for rows.Next() {
		var e domain.Entry
		if err := rows.Scan(
			&e.ID, &e.Banglish, &e.English,
			&e.BanglishNormalized, &e.EnglishNormalized,
			&e.SourceSlug, &e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate entries: %w", err)
	}

	return entries, nil
}

// Create inserts one entry. Returns domain.ErrAlreadyExists when another
// entry already occupies the same normalized Banglish text.
func (r *Repo) Create(ctx context.Context, e domain.Entry) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := q.Exec(ctx, insertSQL,
		e.ID, e.Banglish, e.English,
		e.BanglishNormalized, e.EnglishNormalized,
		e.SourceSlug,
	)
	if err != nil {
		return postgres.MapError(err, "entry", e.BanglishNormalized)
	}

	return nil
}

// CreateBatch inserts entries in one round trip, silently skipping rows
// whose normalized Banglish text is already taken. Returns the number of
// rows actually inserted.
func (r *Repo) CreateBatch(ctx context.Context, entries []domain.Entry) (int, error) {
	if len(entries) == 0 {
		return 0, nil
	}

	batch := &pgx.Batch{}
	for _, e := range entries {
		batch.Queue(insertBatchSQL,
			e.ID, e.Banglish, e.English,
			e.BanglishNormalized, e.EnglishNormalized,
			e.SourceSlug,
		)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	results := q.SendBatch(ctx, batch)
	defer results.Close()

	inserted := 0
	for i := range entries {
		tag, err := results.Exec()
		if err != nil {
			return inserted, postgres.MapError(err, "entry", entries[i].BanglishNormalized)
		}
		inserted += int(tag.RowsAffected())
	}

	return inserted, nil
}

// Count returns the total number of entries.
func (r *Repo) Count(ctx context.Context) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var n int64
	if err := q.QueryRow(ctx, countSQL).Scan(&n); err != nil {
		return 0, fmt.Errorf("count entries: %w", err)
	}

	return n, nil
}
