package postgres

import (
	"context"
	"fmt"

	"github.com/KaurHarleen1930/hokienest-backend/internal/domain"
	"github.com/KaurHarleen1930/hokienest-backend/internal/repository"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type matchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) repository.MatchRepository {
	return &matchRepository{db: db}
}

// ReplaceMatches swaps the requester's full persisted ranking in one
// transaction: delete-all-then-insert, so a shrunk candidate pool
// never leaves stale rows behind. Every row of one regeneration shares
// a generation id.
func (r *matchRepository) ReplaceMatches(ctx context.Context, requesterID int, results []domain.MatchResult) (int, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin replace matches: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM matches WHERE requester_id = $1`, requesterID); err != nil {
		return 0, fmt.Errorf("delete stale matches: %w", err)
	}

	generation := uuid.New()
	query := `
		INSERT INTO matches (requester_id, candidate_id, score, breakdown, generation)
		VALUES ($1, $2, $3, $4, $5)
	`
	for _, res := range results {
		if _, err := tx.ExecContext(ctx, query, requesterID, res.CandidateID, res.Score, res.Breakdown, generation); err != nil {
			return 0, fmt.Errorf("insert match row: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit replace matches: %w", err)
	}
	return len(results), nil
}

func (r *matchRepository) GetSavedMatches(ctx context.Context, requesterID int) ([]*domain.SavedMatch, error) {
	var matches []*domain.SavedMatch
	query := `
		SELECT m.id, m.requester_id, m.candidate_id, m.score, m.breakdown,
		       m.generation, m.computed_at,
		       p.display_name, p.age, p.major
		FROM matches m
		JOIN profiles p ON p.id = m.candidate_id
		WHERE m.requester_id = $1
		ORDER BY m.score DESC, m.candidate_id ASC
	`
	err := r.db.SelectContext(ctx, &matches, query, requesterID)
	return matches, err
}
