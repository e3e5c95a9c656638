package matching

import "math"

// Dimension identifies one comparable preference axis.
type Dimension string

const (
	DimBudget       Dimension = "budget"
	DimTimeline     Dimension = "timeline"
	DimDistance     Dimension = "distance"
	DimCleanliness  Dimension = "cleanliness"
	DimSleep        Dimension = "sleep_schedule"
	DimNoise        Dimension = "noise"
	DimPets         Dimension = "pets"
	DimDiet         Dimension = "diet"
	DimSharing      Dimension = "sharing"
	DimGuests       Dimension = "guests"
	DimWorkFromHome Dimension = "work_from_home"
	DimSmoking      Dimension = "smoking"
)

// AllDimensions is the fixed iteration order for aggregation, so that
// identical inputs always produce identical output.
var AllDimensions = []Dimension{
	DimBudget,
	DimTimeline,
	DimDistance,
	DimCleanliness,
	DimSleep,
	DimNoise,
	DimPets,
	DimDiet,
	DimSharing,
	DimGuests,
	DimWorkFromHome,
	DimSmoking,
}

// weightSumTolerance is the allowed floating-point drift on the
// resolved vector's total of 100.
const weightSumTolerance = 0.01

// WeightVector is a fully resolved per-dimension weight distribution.
// A valid vector is non-negative everywhere and sums to 100.
type WeightVector map[Dimension]float64

// Sum returns the total weight across all dimensions.
func (w WeightVector) Sum() float64 {
	var total float64
	for _, v := range w {
		total += v
	}
	return total
}

// Valid reports whether the vector is non-negative and sums to 100
// within tolerance.
func (w WeightVector) Valid() bool {
	for _, v := range w {
		if v < 0 {
			return false
		}
	}
	return math.Abs(w.Sum()-100) <= weightSumTolerance
}
