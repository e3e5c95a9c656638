package domain

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrProfileNotFound    = errors.New("profile not found")
	ErrMatchNotFound      = errors.New("match not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")

	// ErrPreferencesIncomplete is returned when the requester's own
	// profile is missing a housing or lifestyle record; a ranking is
	// never computed from a partial requester profile.
	ErrPreferencesIncomplete = errors.New("housing and lifestyle preferences are required before matching")

	// ErrInvalidWeightAllocation is returned when a coarse priority
	// allocation does not sum to exactly 100. Malformed allocations are
	// rejected, not normalized.
	ErrInvalidWeightAllocation = errors.New("priority allocation must sum to 100")
)
