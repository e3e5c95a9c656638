package domain

import "time"

type NoiseTolerance string

const (
	NoiseQuiet    NoiseTolerance = "quiet"
	NoiseModerate NoiseTolerance = "moderate"
	NoiseLoud     NoiseTolerance = "loud"
)

type SleepSchedule string

const (
	SleepEarly    SleepSchedule = "early"
	SleepLate     SleepSchedule = "late"
	SleepFlexible SleepSchedule = "flexible"
)

type PetStatus string

const (
	PetsHasPets  PetStatus = "has_pets"
	PetsNoPets   PetStatus = "no_pets"
	PetsAllergic PetStatus = "allergic"
)

type Diet string

const (
	DietVegan      Diet = "vegan"
	DietVegetarian Diet = "vegetarian"
	DietNone       Diet = "none"
)

type SharingItems string

const (
	SharingYes       SharingItems = "yes"
	SharingSometimes SharingItems = "sometimes"
	SharingNo        SharingItems = "no"
)

// HousingPreferences holds the budget and timeline side of a profile.
// Optional fields are pointers; scorers check presence, never assume.
type HousingPreferences struct {
	ProfileID       int        `json:"profile_id" db:"profile_id"`
	BudgetMin       int        `json:"budget_min" db:"budget_min"`
	BudgetMax       int        `json:"budget_max" db:"budget_max"`
	MoveInDate      *time.Time `json:"move_in_date" db:"move_in_date"`
	MoveOutDate     *time.Time `json:"move_out_date" db:"move_out_date"`
	MaxDistance     *int       `json:"max_distance" db:"max_distance"`
	QuietHoursStart *int       `json:"quiet_hours_start" db:"quiet_hours_start"`
	QuietHoursEnd   *int       `json:"quiet_hours_end" db:"quiet_hours_end"`
	UpdatedAt       time.Time  `json:"updated_at" db:"updated_at"`
}

// LifestylePreferences holds the day-to-day compatibility side of a profile.
type LifestylePreferences struct {
	ProfileID           int             `json:"profile_id" db:"profile_id"`
	CleanlinessLevel    *int            `json:"cleanliness_level" db:"cleanliness_level"`
	NoiseTolerance      *NoiseTolerance `json:"noise_tolerance" db:"noise_tolerance"`
	SleepSchedule       *SleepSchedule  `json:"sleep_schedule" db:"sleep_schedule"`
	Pets                *PetStatus      `json:"pets" db:"pets"`
	ComfortableWithPets bool            `json:"comfortable_with_pets" db:"comfortable_with_pets"`
	Diet                *Diet           `json:"diet" db:"diet"`
	SharingItems        *SharingItems   `json:"sharing_items" db:"sharing_items"`
	WorkFromHomeDays    *int            `json:"work_from_home_days" db:"work_from_home_days"`
	GuestsFrequency     *string         `json:"guests_frequency" db:"guests_frequency"`
	SmokingPolicy       []string        `json:"smoking_policy" db:"smoking_policy"`
	UpdatedAt           time.Time       `json:"updated_at" db:"updated_at"`
}

type Profile struct {
	ID          int                   `json:"id" db:"id"`
	UserID      int                   `json:"user_id" db:"user_id"`
	DisplayName string                `json:"display_name" db:"display_name"`
	Age         *int                  `json:"age" db:"age"`
	Gender      *string               `json:"gender" db:"gender"`
	Major       *string               `json:"major" db:"major"`
	Housing     *HousingPreferences   `json:"housing_preferences"`
	Lifestyle   *LifestylePreferences `json:"lifestyle_preferences"`
	CreatedAt   time.Time             `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time             `json:"updated_at" db:"updated_at"`
}

// MatchEligible reports whether the profile can enter a candidate pool.
// Profiles missing either preference record are excluded from matching,
// never scored with defaults.
func (p *Profile) MatchEligible() bool {
	return p.Housing != nil && p.Lifestyle != nil
}
