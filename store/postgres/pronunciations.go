// Package postgres loads the pronunciation dictionary from PostgreSQL.
//
// Expected schema:
//
//	CREATE TABLE pronunciations (
//	    id       bigserial PRIMARY KEY,
//	    word     text      NOT NULL,
//	    phonemes text[]    NOT NULL
//	);
package postgres

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"

	"github.com/teatak/phonseg/dictionary"
)

// Querier is the subset of pgx used by the repository. Both
// pgxpool.Pool and pgxmock satisfy it.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// PronunciationRepository reads pronunciation entries.
type PronunciationRepository struct {
	q Querier
}

// New creates a repository over the given querier.
func New(q Querier) *PronunciationRepository {
	return &PronunciationRepository{q: q}
}

type pronunciationRow struct {
	Word     string   `db:"word"`
	Phonemes []string `db:"phonemes"`
}

// ListAll returns every pronunciation entry in insertion order.
// Duplicate rows are preserved as distinct entries; BuildIndex decides
// what duplicates mean.
func (r *PronunciationRepository) ListAll(ctx context.Context) ([]dictionary.Entry, error) {
	query, args, err := sq.Select("word", "phonemes").
		From("pronunciations").
		OrderBy("id").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("postgres: build query: %w", err)
	}

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("postgres: list pronunciations: %w", err)
	}

	var scanned []pronunciationRow
	if err := pgxscan.ScanAll(&scanned, rows); err != nil {
		return nil, fmt.Errorf("postgres: scan pronunciations: %w", err)
	}

	entries := make([]dictionary.Entry, 0, len(scanned))
	for _, row := range scanned {
		entries = append(entries, dictionary.Entry{Word: row.Word, Phonemes: row.Phonemes})
	}
	return entries, nil
}
