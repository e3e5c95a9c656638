package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/KaurHarleen1930/hokienest-backend/internal/domain"
	"github.com/KaurHarleen1930/hokienest-backend/internal/repository"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type profileRepository struct {
	db *sqlx.DB
}

func NewProfileRepository(db *sqlx.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) Create(ctx context.Context, profile *domain.Profile) error {
	query := `
		INSERT INTO profiles (user_id, display_name, age, gender, major)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRowContext(
		ctx, query,
		profile.UserID, profile.DisplayName, profile.Age, profile.Gender, profile.Major,
	).Scan(&profile.ID, &profile.CreatedAt, &profile.UpdatedAt)
}

func (r *profileRepository) GetByUserID(ctx context.Context, userID int) (*domain.Profile, error) {
	var profile domain.Profile
	query := `
		SELECT id, user_id, display_name, age, gender, major, created_at, updated_at
		FROM profiles WHERE user_id = $1
	`
	err := r.db.GetContext(ctx, &profile, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}

	profile.Housing, err = r.getHousing(ctx, profile.ID)
	if err != nil {
		return nil, err
	}
	profile.Lifestyle, err = r.getLifestyle(ctx, profile.ID)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) Update(ctx context.Context, profile *domain.Profile) error {
	query := `
		UPDATE profiles
		SET display_name = $1, age = $2, gender = $3, major = $4,
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = $5
		RETURNING updated_at
	`
	err := r.db.QueryRowContext(
		ctx, query,
		profile.DisplayName, profile.Age, profile.Gender, profile.Major, profile.ID,
	).Scan(&profile.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrProfileNotFound
	}
	return err
}

func (r *profileRepository) UpsertHousingPreferences(ctx context.Context, prefs *domain.HousingPreferences) error {
	query := `
		INSERT INTO housing_preferences (
			profile_id, budget_min, budget_max, move_in_date, move_out_date,
			max_distance, quiet_hours_start, quiet_hours_end
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (profile_id) DO UPDATE SET
			budget_min = EXCLUDED.budget_min,
			budget_max = EXCLUDED.budget_max,
			move_in_date = EXCLUDED.move_in_date,
			move_out_date = EXCLUDED.move_out_date,
			max_distance = EXCLUDED.max_distance,
			quiet_hours_start = EXCLUDED.quiet_hours_start,
			quiet_hours_end = EXCLUDED.quiet_hours_end,
			updated_at = CURRENT_TIMESTAMP
		RETURNING updated_at
	`
	return r.db.QueryRowContext(
		ctx, query,
		prefs.ProfileID, prefs.BudgetMin, prefs.BudgetMax, prefs.MoveInDate,
		prefs.MoveOutDate, prefs.MaxDistance, prefs.QuietHoursStart, prefs.QuietHoursEnd,
	).Scan(&prefs.UpdatedAt)
}

func (r *profileRepository) UpsertLifestylePreferences(ctx context.Context, prefs *domain.LifestylePreferences) error {
	query := `
		INSERT INTO lifestyle_preferences (
			profile_id, cleanliness_level, noise_tolerance, sleep_schedule,
			pets, comfortable_with_pets, diet, sharing_items,
			work_from_home_days, guests_frequency, smoking_policy
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (profile_id) DO UPDATE SET
			cleanliness_level = EXCLUDED.cleanliness_level,
			noise_tolerance = EXCLUDED.noise_tolerance,
			sleep_schedule = EXCLUDED.sleep_schedule,
			pets = EXCLUDED.pets,
			comfortable_with_pets = EXCLUDED.comfortable_with_pets,
			diet = EXCLUDED.diet,
			sharing_items = EXCLUDED.sharing_items,
			work_from_home_days = EXCLUDED.work_from_home_days,
			guests_frequency = EXCLUDED.guests_frequency,
			smoking_policy = EXCLUDED.smoking_policy,
			updated_at = CURRENT_TIMESTAMP
		RETURNING updated_at
	`
	return r.db.QueryRowContext(
		ctx, query,
		prefs.ProfileID, prefs.CleanlinessLevel, prefs.NoiseTolerance, prefs.SleepSchedule,
		prefs.Pets, prefs.ComfortableWithPets, prefs.Diet, prefs.SharingItems,
		prefs.WorkFromHomeDays, prefs.GuestsFrequency, pq.Array(prefs.SmokingPolicy),
	).Scan(&prefs.UpdatedAt)
}

// ListEligible loads every profile that has both preference records.
// Profiles missing either record never enter a candidate pool.
func (r *profileRepository) ListEligible(ctx context.Context, excludeProfileID, limit int) ([]*domain.Profile, error) {
	var profiles []*domain.Profile
	query := `
		SELECT p.id, p.user_id, p.display_name, p.age, p.gender, p.major,
		       p.created_at, p.updated_at
		FROM profiles p
		JOIN housing_preferences h ON h.profile_id = p.id
		JOIN lifestyle_preferences l ON l.profile_id = p.id
		WHERE p.id != $1
		ORDER BY p.id
		LIMIT $2
	`
	if err := r.db.SelectContext(ctx, &profiles, query, excludeProfileID, limit); err != nil {
		return nil, err
	}

	for _, p := range profiles {
		housing, err := r.getHousing(ctx, p.ID)
		if err != nil {
			return nil, err
		}
		lifestyle, err := r.getLifestyle(ctx, p.ID)
		if err != nil {
			return nil, err
		}
		p.Housing = housing
		p.Lifestyle = lifestyle
	}
	return profiles, nil
}

func (r *profileRepository) getHousing(ctx context.Context, profileID int) (*domain.HousingPreferences, error) {
	var prefs domain.HousingPreferences
	query := `SELECT * FROM housing_preferences WHERE profile_id = $1`
	err := r.db.GetContext(ctx, &prefs, query, profileID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &prefs, nil
}

func (r *profileRepository) getLifestyle(ctx context.Context, profileID int) (*domain.LifestylePreferences, error) {
	var prefs domain.LifestylePreferences
	query := `
		SELECT profile_id, cleanliness_level, noise_tolerance, sleep_schedule,
		       pets, comfortable_with_pets, diet, sharing_items,
		       work_from_home_days, guests_frequency, smoking_policy, updated_at
		FROM lifestyle_preferences WHERE profile_id = $1
	`
	err := r.db.QueryRowContext(ctx, query, profileID).Scan(
		&prefs.ProfileID, &prefs.CleanlinessLevel, &prefs.NoiseTolerance, &prefs.SleepSchedule,
		&prefs.Pets, &prefs.ComfortableWithPets, &prefs.Diet, &prefs.SharingItems,
		&prefs.WorkFromHomeDays, &prefs.GuestsFrequency, pq.Array(&prefs.SmokingPolicy),
		&prefs.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &prefs, nil
}
