package profile

import (
	"context"
	"fmt"
	"time"

	"github.com/KaurHarleen1930/hokienest-backend/internal/domain"
	"github.com/KaurHarleen1930/hokienest-backend/internal/repository"
)

type ProfileUseCase struct {
	profileRepo repository.ProfileRepository
}

func NewProfileUseCase(profileRepo repository.ProfileRepository) *ProfileUseCase {
	return &ProfileUseCase{profileRepo: profileRepo}
}

// UpdateProfileRequest represents profile update request
type UpdateProfileRequest struct {
	DisplayName *string `json:"display_name" binding:"omitempty,min=2,max=100"`
	Age         *int    `json:"age" binding:"omitempty,min=17,max=100"`
	Gender      *string `json:"gender" binding:"omitempty,max=50"`
	Major       *string `json:"major" binding:"omitempty,max=100"`
}

// HousingPreferencesRequest represents the housing side of onboarding
type HousingPreferencesRequest struct {
	BudgetMin       int        `json:"budget_min" binding:"min=0"`
	BudgetMax       int        `json:"budget_max" binding:"min=0"`
	MoveInDate      *time.Time `json:"move_in_date"`
	MoveOutDate     *time.Time `json:"move_out_date"`
	MaxDistance     *int       `json:"max_distance" binding:"omitempty,min=1,max=1000"`
	QuietHoursStart *int       `json:"quiet_hours_start" binding:"omitempty,min=0,max=23"`
	QuietHoursEnd   *int       `json:"quiet_hours_end" binding:"omitempty,min=0,max=23"`
}

// LifestylePreferencesRequest represents the lifestyle side of onboarding
type LifestylePreferencesRequest struct {
	CleanlinessLevel    *int     `json:"cleanliness_level" binding:"omitempty,min=1,max=5"`
	NoiseTolerance      *string  `json:"noise_tolerance" binding:"omitempty,oneof=quiet moderate loud"`
	SleepSchedule       *string  `json:"sleep_schedule" binding:"omitempty,oneof=early late flexible"`
	Pets                *string  `json:"pets" binding:"omitempty,oneof=has_pets no_pets allergic"`
	ComfortableWithPets bool     `json:"comfortable_with_pets"`
	Diet                *string  `json:"diet" binding:"omitempty,oneof=vegan vegetarian none"`
	SharingItems        *string  `json:"sharing_items" binding:"omitempty,oneof=yes sometimes no"`
	WorkFromHomeDays    *int     `json:"work_from_home_days" binding:"omitempty,min=0,max=7"`
	GuestsFrequency     *string  `json:"guests_frequency" binding:"omitempty,oneof=never rarely monthly weekly daily"`
	SmokingPolicy       []string `json:"smoking_policy" binding:"omitempty,max=10"`
}

// GetMyProfile returns current user's profile
func (uc *ProfileUseCase) GetMyProfile(ctx context.Context, userID int) (*domain.Profile, error) {
	return uc.profileRepo.GetByUserID(ctx, userID)
}

// UpdateProfile updates the demographic fields of the user's profile
func (uc *ProfileUseCase) UpdateProfile(ctx context.Context, userID int, req *UpdateProfileRequest) (*domain.Profile, error) {
	profile, err := uc.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.DisplayName != nil {
		profile.DisplayName = *req.DisplayName
	}
	if req.Age != nil {
		profile.Age = req.Age
	}
	if req.Gender != nil {
		profile.Gender = req.Gender
	}
	if req.Major != nil {
		profile.Major = req.Major
	}

	if err := uc.profileRepo.Update(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return profile, nil
}

// SetHousingPreferences creates or replaces the user's housing record.
func (uc *ProfileUseCase) SetHousingPreferences(ctx context.Context, userID int, req *HousingPreferencesRequest) (*domain.HousingPreferences, error) {
	if req.BudgetMin > req.BudgetMax {
		return nil, fmt.Errorf("budget_min must not exceed budget_max")
	}
	if req.MoveInDate != nil && req.MoveOutDate != nil && req.MoveOutDate.Before(*req.MoveInDate) {
		return nil, fmt.Errorf("move_out_date must not precede move_in_date")
	}

	profile, err := uc.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	prefs := &domain.HousingPreferences{
		ProfileID:       profile.ID,
		BudgetMin:       req.BudgetMin,
		BudgetMax:       req.BudgetMax,
		MoveInDate:      req.MoveInDate,
		MoveOutDate:     req.MoveOutDate,
		MaxDistance:     req.MaxDistance,
		QuietHoursStart: req.QuietHoursStart,
		QuietHoursEnd:   req.QuietHoursEnd,
	}
	if err := uc.profileRepo.UpsertHousingPreferences(ctx, prefs); err != nil {
		return nil, fmt.Errorf("failed to save housing preferences: %w", err)
	}
	return prefs, nil
}

// SetLifestylePreferences creates or replaces the user's lifestyle record.
func (uc *ProfileUseCase) SetLifestylePreferences(ctx context.Context, userID int, req *LifestylePreferencesRequest) (*domain.LifestylePreferences, error) {
	profile, err := uc.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	prefs := &domain.LifestylePreferences{
		ProfileID:           profile.ID,
		CleanlinessLevel:    req.CleanlinessLevel,
		NoiseTolerance:      (*domain.NoiseTolerance)(req.NoiseTolerance),
		SleepSchedule:       (*domain.SleepSchedule)(req.SleepSchedule),
		Pets:                (*domain.PetStatus)(req.Pets),
		ComfortableWithPets: req.ComfortableWithPets,
		Diet:                (*domain.Diet)(req.Diet),
		SharingItems:        (*domain.SharingItems)(req.SharingItems),
		WorkFromHomeDays:    req.WorkFromHomeDays,
		GuestsFrequency:     req.GuestsFrequency,
		SmokingPolicy:       req.SmokingPolicy,
	}
	if err := uc.profileRepo.UpsertLifestylePreferences(ctx, prefs); err != nil {
		return nil, fmt.Errorf("failed to save lifestyle preferences: %w", err)
	}
	return prefs, nil
}
