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

const defaultCandidateLimit = 100

// CandidateRepository handles database operations for expansion candidates.
type CandidateRepository struct {
	db *sqlx.DB
}

// NewCandidateRepository creates a new candidate repository.
func NewCandidateRepository(db *sqlx.DB) *CandidateRepository {
	return &CandidateRepository{db: db}
}

// Create inserts a new candidate. An existing pending candidate for the same
// (word, language) is replaced, so repeat lookups refresh the proposal.
func (r *CandidateRepository) Create(ctx context.Context, c *domain.ExternalLexiconCandidate) error {
	query := `
		INSERT INTO expansion_candidates
			(word, language, proposed_weights, source_definition, source, confidence, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (word, language) WHERE status = 'pending'
		DO UPDATE SET proposed_weights = $3, source_definition = $4, source = $5,
		              confidence = $6, updated_at = now()
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRowContext(
		ctx,
		query,
		c.Word,
		c.Language,
		pq.Array(c.ProposedWeights[:]),
		c.SourceDefinition,
		c.Source,
		c.Confidence,
		c.Status,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create candidate: %w", err)
	}

	return nil
}

// GetByID retrieves a candidate by its ID. Returns (nil, nil) when missing.
func (r *CandidateRepository) GetByID(ctx context.Context, id int64) (*domain.ExternalLexiconCandidate, error) {
	var c domain.ExternalLexiconCandidate
	var weights []float64
	query := `
		SELECT id, word, language, proposed_weights, source_definition, source,
		       confidence, status, created_at, updated_at
		FROM expansion_candidates
		WHERE id = $1
	`

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&c.ID,
		&c.Word,
		&c.Language,
		pq.Array(&weights),
		&c.SourceDefinition,
		&c.Source,
		&c.Confidence,
		&c.Status,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get candidate: %w", err)
	}

	copy(c.ProposedWeights[:], weights)
	return &c, nil
}

// List retrieves candidates filtered by status, newest first.
func (r *CandidateRepository) List(ctx context.Context, status domain.CandidateStatus, limit int) ([]domain.ExternalLexiconCandidate, error) {
	if limit <= 0 {
		limit = defaultCandidateLimit
	}
	query := `
		SELECT id, word, language, proposed_weights, source_definition, source,
		       confidence, status, created_at, updated_at
		FROM expansion_candidates
		WHERE status = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	rows, err := r.db.QueryContext(ctx, query, status, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var candidates []domain.ExternalLexiconCandidate
	for rows.Next() {
		var c domain.ExternalLexiconCandidate
		var weights []float64
		if err = rows.Scan(
			&c.ID,
			&c.Word,
			&c.Language,
			pq.Array(&weights),
			&c.SourceDefinition,
			&c.Source,
			&c.Confidence,
			&c.Status,
			&c.CreatedAt,
			&c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan candidate: %w", err)
		}
		copy(c.ProposedWeights[:], weights)
		candidates = append(candidates, c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating candidates: %w", err)
	}

	return candidates, nil
}

// UpdateStatus transitions a candidate to a new status.
func (r *CandidateRepository) UpdateStatus(ctx context.Context, id int64, status domain.CandidateStatus) error {
	query := `UPDATE expansion_candidates SET status = $1, updated_at = now() WHERE id = $2`

	result, err := r.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("failed to update candidate status: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("candidate not found: %d", id)
	}

	return nil
}
