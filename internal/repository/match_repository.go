package repository

import (
	"context"

	"github.com/KaurHarleen1930/hokienest-backend/internal/domain"
)

type MatchRepository interface {
	// ReplaceMatches atomically swaps the requester's persisted ranking:
	// all existing rows are deleted and the new results inserted in one
	// transaction. Calling it twice with the same results leaves the
	// same final row set.
	ReplaceMatches(ctx context.Context, requesterID int, results []domain.MatchResult) (int, error)

	// GetSavedMatches returns the last persisted ranking joined with
	// minimal candidate display fields, best match first.
	GetSavedMatches(ctx context.Context, requesterID int) ([]*domain.SavedMatch, error)
}
