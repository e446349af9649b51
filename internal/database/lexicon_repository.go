package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/in-tuned/emotion-engine/internal/domain"
)

// ErrEntryNotFound is returned when a lexicon row does not exist.
var ErrEntryNotFound = errors.New("lexicon entry not found")

// LexiconRepository handles database operations for lexicon entries. The
// weight vector is stored as a float8[] column in canonical emotion order.
type LexiconRepository struct {
	db *sqlx.DB
}

// NewLexiconRepository creates a new lexicon repository.
func NewLexiconRepository(db *sqlx.DB) *LexiconRepository {
	return &LexiconRepository{db: db}
}

// Upsert inserts or replaces the entry for (language, phrase).
func (r *LexiconRepository) Upsert(ctx context.Context, entry domain.LexiconEntry) error {
	query := `
		INSERT INTO lexicon_entries (language, phrase, weights, provenance, confidence)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (language, phrase)
		DO UPDATE SET weights = $3, provenance = $4, confidence = $5, updated_at = now()
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		entry.Language,
		entry.Phrase,
		pq.Array(entry.Weights[:]),
		entry.Provenance,
		entry.Confidence,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert lexicon entry: %w", err)
	}

	return nil
}

// Get retrieves the entry for (language, phrase).
func (r *LexiconRepository) Get(ctx context.Context, language, phrase string) (*domain.LexiconEntry, error) {
	var entry domain.LexiconEntry
	var weights []float64
	query := `
		SELECT language, phrase, weights, provenance, confidence
		FROM lexicon_entries
		WHERE language = $1 AND phrase = $2
	`

	err := r.db.QueryRowContext(ctx, query, language, phrase).Scan(
		&entry.Language,
		&entry.Phrase,
		pq.Array(&weights),
		&entry.Provenance,
		&entry.Confidence,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrEntryNotFound
		}
		return nil, fmt.Errorf("failed to get lexicon entry: %w", err)
	}

	copy(entry.Weights[:], weights)
	return &entry, nil
}

// ListByLanguage retrieves all entries for one language.
func (r *LexiconRepository) ListByLanguage(ctx context.Context, language string) ([]domain.LexiconEntry, error) {
	query := `
		SELECT language, phrase, weights, provenance, confidence
		FROM lexicon_entries
		WHERE language = $1
		ORDER BY phrase ASC
	`
	return r.queryEntries(ctx, query, language)
}

// ListAll retrieves every lexicon entry, for the startup load.
func (r *LexiconRepository) ListAll(ctx context.Context) ([]domain.LexiconEntry, error) {
	query := `
		SELECT language, phrase, weights, provenance, confidence
		FROM lexicon_entries
		ORDER BY language ASC, phrase ASC
	`
	return r.queryEntries(ctx, query)
}

func (r *LexiconRepository) queryEntries(ctx context.Context, query string, args ...any) ([]domain.LexiconEntry, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list lexicon entries: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var entries []domain.LexiconEntry
	for rows.Next() {
		var entry domain.LexiconEntry
		var weights []float64
		if err = rows.Scan(
			&entry.Language,
			&entry.Phrase,
			pq.Array(&weights),
			&entry.Provenance,
			&entry.Confidence,
		); err != nil {
			return nil, fmt.Errorf("failed to scan lexicon entry: %w", err)
		}
		copy(entry.Weights[:], weights)
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating lexicon entries: %w", err)
	}

	return entries, nil
}

// Delete removes the entry for (language, phrase).
func (r *LexiconRepository) Delete(ctx context.Context, language, phrase string) error {
	query := `DELETE FROM lexicon_entries WHERE language = $1 AND phrase = $2`

	result, err := r.db.ExecContext(ctx, query, language, phrase)
	if err != nil {
		return fmt.Errorf("failed to delete lexicon entry: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrEntryNotFound
	}

	return nil
}

// Count returns the total number of lexicon entries.
func (r *LexiconRepository) Count(ctx context.Context) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM lexicon_entries`

	if err := r.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count lexicon entries: %w", err)
	}

	return count, nil
}
