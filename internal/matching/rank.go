package matching

import (
	"sort"

	"github.com/KaurHarleen1930/hokienest-backend/internal/domain"
)

// DefaultLimit caps a ranking when the caller does not ask for a
// specific size.
const DefaultLimit = 20

// Options tune a single ranking pass.
type Options struct {
	// Limit truncates the ranking; DefaultLimit when <= 0.
	Limit int
	// MinScore drops results scoring below it. Zero keeps everything.
	MinScore float64
}

// Rank scores every eligible candidate against the requester and
// returns the ordered result list: descending by composite score, ties
// broken by candidate id ascending. The requester itself and profiles
// missing a preference record are excluded from the pool. A requester
// with incomplete preferences fails fast instead of producing a
// misleading ranking.
func Rank(requester *domain.Profile, pool []*domain.Profile, weights WeightVector, opts Options) ([]domain.MatchResult, error) {
	if requester == nil || !requester.MatchEligible() {
		return nil, domain.ErrPreferencesIncomplete
	}

	results := make([]domain.MatchResult, 0, len(pool))
	for _, candidate := range pool {
		if candidate == nil || candidate.ID == requester.ID || !candidate.MatchEligible() {
			continue
		}
		res := Aggregate(requester, candidate, weights)
		if opts.MinScore > 0 && res.Score < opts.MinScore {
			continue
		}
		results = append(results, res)
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].CandidateID < results[j].CandidateID
	})

	limit := opts.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	if len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}
