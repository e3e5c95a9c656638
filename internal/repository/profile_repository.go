package repository

import (
	"context"

	"github.com/KaurHarleen1930/hokienest-backend/internal/domain"
)

type ProfileRepository interface {
	Create(ctx context.Context, profile *domain.Profile) error
	GetByUserID(ctx context.Context, userID int) (*domain.Profile, error)
	Update(ctx context.Context, profile *domain.Profile) error
	UpsertHousingPreferences(ctx context.Context, prefs *domain.HousingPreferences) error
	UpsertLifestylePreferences(ctx context.Context, prefs *domain.LifestylePreferences) error

	// ListEligible returns every match-eligible profile (both preference
	// records present), excluding the given profile id. The caller is
	// responsible for any further pool filtering (blocked users etc).
	ListEligible(ctx context.Context, excludeProfileID, limit int) ([]*domain.Profile, error)
}
