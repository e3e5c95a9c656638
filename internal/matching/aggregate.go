package matching

import (
	"math"

	"github.com/KaurHarleen1930/hokienest-backend/internal/domain"
)

// Aggregate runs every feature scorer once, weighs each score by its
// resolved fraction and sums to a composite in [0,100]. The breakdown
// records each dimension's rounded point contribution. Identical
// inputs always yield identical output.
func Aggregate(requester, candidate *domain.Profile, weights WeightVector) domain.MatchResult {
	breakdown := make(domain.Breakdown, len(AllDimensions))
	var composite float64

	for _, dim := range AllDimensions {
		weight := weights[dim]
		score := scorers[dim](requester, candidate)
		contribution := score * weight / 100
		composite += contribution
		breakdown[string(dim)] = round1(contribution)
	}

	return domain.MatchResult{
		CandidateID: candidate.ID,
		Score:       clamp(round1(composite), 0, 100),
		Breakdown:   breakdown,
	}
}

// round1 rounds to 0.1 precision.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
