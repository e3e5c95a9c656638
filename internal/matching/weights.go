package matching

import (
	"fmt"

	"github.com/KaurHarleen1930/hokienest-backend/internal/domain"
	"go.uber.org/zap"
)

// smokingReserve is carved out for the smoking dimension before a
// coarse allocation is redistributed; the four user-facing categories
// are rescaled to the remaining 95%.
const smokingReserve = 5.0

// WeightConfig is a caller-supplied weight configuration. It is never
// mutated by the resolver.
type WeightConfig interface {
	weightConfig()
}

// PriorityAllocation is the coarse user-facing configuration: four
// categories in [0,100] that must sum to exactly 100.
type PriorityAllocation struct {
	Budget    int `json:"budget"`
	Commute   int `json:"commute"`
	Safety    int `json:"safety"`
	Roommates int `json:"roommates"`
}

func (PriorityAllocation) weightConfig() {}

// FeatureWeights maps dimension ids to importance scores (1-5 scale)
// or raw percentages; either way each dimension's share is its weight
// over the total.
type FeatureWeights map[Dimension]float64

func (FeatureWeights) weightConfig() {}

// DefaultAllocation is the platform-wide default used when a caller
// supplies no configuration.
func DefaultAllocation() PriorityAllocation {
	return PriorityAllocation{Budget: 30, Commute: 20, Safety: 20, Roommates: 30}
}

// socialDims receive the remainder of the coarse "roommates" category
// after sleep schedule and noise take their shares.
var socialDims = []Dimension{DimPets, DimDiet, DimSharing, DimGuests, DimWorkFromHome}

// Resolver converts a WeightConfig into a WeightVector summing to 100.
type Resolver struct {
	log *zap.Logger
}

func NewResolver(log *zap.Logger) *Resolver {
	return &Resolver{log: log}
}

// Resolve dispatches on the configuration type. A nil config resolves
// the default allocation.
func (r *Resolver) Resolve(cfg WeightConfig) (WeightVector, error) {
	if cfg == nil {
		cfg = DefaultAllocation()
	}
	switch c := cfg.(type) {
	case PriorityAllocation:
		return r.resolveAllocation(c)
	case *PriorityAllocation:
		return r.resolveAllocation(*c)
	case FeatureWeights:
		return r.resolveFeatureWeights(c)
	default:
		return nil, fmt.Errorf("unsupported weight configuration %T", cfg)
	}
}

// resolveAllocation redistributes the four coarse categories onto fine
// dimensions: budget to budget, commute to distance, safety to
// cleanliness, roommates split evenly across sleep schedule, noise and
// the social dimensions. Smoking is fixed at its 5% reserve.
func (r *Resolver) resolveAllocation(alloc PriorityAllocation) (WeightVector, error) {
	if alloc.Budget < 0 || alloc.Commute < 0 || alloc.Safety < 0 || alloc.Roommates < 0 {
		return nil, domain.ErrInvalidWeightAllocation
	}
	if alloc.Budget+alloc.Commute+alloc.Safety+alloc.Roommates != 100 {
		return nil, domain.ErrInvalidWeightAllocation
	}

	const scale = (100 - smokingReserve) / 100.0

	w := make(WeightVector, len(AllDimensions))
	for _, d := range AllDimensions {
		w[d] = 0
	}
	w[DimSmoking] = smokingReserve
	w[DimBudget] = float64(alloc.Budget) * scale
	w[DimDistance] = float64(alloc.Commute) * scale
	w[DimCleanliness] = float64(alloc.Safety) * scale

	roommates := float64(alloc.Roommates) * scale
	third := roommates / 3
	w[DimSleep] = third
	w[DimNoise] = third
	perSocial := third / float64(len(socialDims))
	for _, d := range socialDims {
		w[d] = perSocial
	}
	return w, nil
}

// resolveFeatureWeights normalizes per-dimension importances by their
// total. A zero total falls back to a uniform distribution; the
// fallback is logged, never silent.
func (r *Resolver) resolveFeatureWeights(fw FeatureWeights) (WeightVector, error) {
	var total float64
	for d, v := range fw {
		if _, ok := scorers[d]; !ok {
			return nil, fmt.Errorf("unknown dimension %q in weight configuration", d)
		}
		if v < 0 {
			return nil, fmt.Errorf("negative weight %.2f for dimension %q", v, d)
		}
		total += v
	}

	w := make(WeightVector, len(AllDimensions))
	if total == 0 {
		r.log.Warn("no feature weights supplied, falling back to uniform distribution")
		uniform := 100.0 / float64(len(AllDimensions))
		for _, d := range AllDimensions {
			w[d] = uniform
		}
		return w, nil
	}

	for _, d := range AllDimensions {
		w[d] = fw[d] / total * 100
	}
	return w, nil
}
