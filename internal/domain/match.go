package domain

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Breakdown maps a dimension id to its rounded point contribution
// to the composite score. Stored as JSONB.
type Breakdown map[string]float64

// Value implements driver.Valuer for Breakdown.
func (b Breakdown) Value() (driver.Value, error) {
	return json.Marshal(b)
}

// Scan implements sql.Scanner for Breakdown.
func (b *Breakdown) Scan(value interface{}) error {
	raw, ok := value.([]byte)
	if !ok {
		return errors.New("breakdown: type assertion to []byte failed")
	}
	return json.Unmarshal(raw, b)
}

// MatchResult is one scored candidate in a ranking. It lives only for
// the duration of a request unless explicitly persisted.
type MatchResult struct {
	CandidateID int       `json:"candidate_id"`
	Score       float64   `json:"score"`
	Breakdown   Breakdown `json:"breakdown"`
}

// PersistedMatch is one row of a requester's last saved ranking.
// The full set for a requester is replaced atomically on regeneration.
type PersistedMatch struct {
	ID          int       `json:"id" db:"id"`
	RequesterID int       `json:"requester_id" db:"requester_id"`
	CandidateID int       `json:"candidate_id" db:"candidate_id"`
	Score       float64   `json:"score" db:"score"`
	Breakdown   Breakdown `json:"breakdown" db:"breakdown"`
	Generation  uuid.UUID `json:"generation" db:"generation"`
	ComputedAt  time.Time `json:"computed_at" db:"computed_at"`
}

// SavedMatch is a persisted match joined with minimal candidate
// display fields for listing.
type SavedMatch struct {
	PersistedMatch
	DisplayName string  `json:"display_name" db:"display_name"`
	Age         *int    `json:"age" db:"age"`
	Major       *string `json:"major" db:"major"`
}
