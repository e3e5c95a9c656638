package matching

import (
	"math"

	"github.com/KaurHarleen1930/hokienest-backend/internal/domain"
)

// neutralScore is returned whenever either side lacks the data a
// scorer needs. A sparse profile degrades gracefully instead of
// failing the whole pipeline.
const neutralScore = 50.0

// scorerFunc computes one dimension's score in [0,100] for a
// requester/candidate pair. Scorers are pure: no clock, no state.
type scorerFunc func(a, b *domain.Profile) float64

var scorers = map[Dimension]scorerFunc{
	DimBudget:       scoreBudget,
	DimTimeline:     scoreTimeline,
	DimDistance:     scoreDistance,
	DimCleanliness:  scoreCleanliness,
	DimSleep:        scoreSleep,
	DimNoise:        scoreNoise,
	DimPets:         scorePets,
	DimDiet:         scoreDiet,
	DimSharing:      scoreSharing,
	DimGuests:       scoreGuests,
	DimWorkFromHome: scoreWorkFromHome,
	DimSmoking:      scoreSmoking,
}

// scoreBudget compares [min,max] budget ranges: overlap length divided
// by the smaller range's length, scaled to 100. Disjoint ranges score
// 0, identical ranges 100. When both sides supply a single point
// budget, 10 points are lost per $100 of difference.
func scoreBudget(a, b *domain.Profile) float64 {
	if a.Housing == nil || b.Housing == nil {
		return neutralScore
	}
	ha, hb := a.Housing, b.Housing
	if ha.BudgetMax <= 0 || hb.BudgetMax <= 0 {
		return neutralScore
	}

	if ha.BudgetMin == ha.BudgetMax && hb.BudgetMin == hb.BudgetMax {
		diff := math.Abs(float64(ha.BudgetMax - hb.BudgetMax))
		return math.Max(0, 100-diff/10)
	}

	if ha.BudgetMin == hb.BudgetMin && ha.BudgetMax == hb.BudgetMax {
		return 100
	}

	// One side is a single point: in range scores full, outside zero.
	if ha.BudgetMin == ha.BudgetMax || hb.BudgetMin == hb.BudgetMax {
		point, rng := ha, hb
		if hb.BudgetMin == hb.BudgetMax {
			point, rng = hb, ha
		}
		if point.BudgetMax >= rng.BudgetMin && point.BudgetMax <= rng.BudgetMax {
			return 100
		}
		return 0
	}

	overlap := float64(min(ha.BudgetMax, hb.BudgetMax) - max(ha.BudgetMin, hb.BudgetMin))
	if overlap <= 0 {
		return 0
	}
	smaller := float64(min(ha.BudgetMax-ha.BudgetMin, hb.BudgetMax-hb.BudgetMin))
	return math.Min(100, overlap/smaller*100)
}

// scoreTimeline compares [moveIn,moveOut] date ranges: overlap divided
// by the average of the two durations, scaled to 100. Disjoint
// intervals score 0. An incomplete interval on either side scores
// neutral.
func scoreTimeline(a, b *domain.Profile) float64 {
	if a.Housing == nil || b.Housing == nil {
		return neutralScore
	}
	ha, hb := a.Housing, b.Housing
	if ha.MoveInDate == nil || ha.MoveOutDate == nil || hb.MoveInDate == nil || hb.MoveOutDate == nil {
		return neutralScore
	}

	aDur := ha.MoveOutDate.Sub(*ha.MoveInDate).Hours() / 24
	bDur := hb.MoveOutDate.Sub(*hb.MoveInDate).Hours() / 24
	if aDur <= 0 || bDur <= 0 {
		return neutralScore
	}

	start := *ha.MoveInDate
	if hb.MoveInDate.After(start) {
		start = *hb.MoveInDate
	}
	end := *ha.MoveOutDate
	if hb.MoveOutDate.Before(end) {
		end = *hb.MoveOutDate
	}
	overlap := end.Sub(start).Hours() / 24
	if overlap <= 0 {
		return 0
	}
	avg := (aDur + bDur) / 2
	return math.Min(100, overlap/avg*100)
}

// scoreDistance compares willingness to commute: the ratio of the
// smaller to the larger max-distance preference.
func scoreDistance(a, b *domain.Profile) float64 {
	if a.Housing == nil || b.Housing == nil ||
		a.Housing.MaxDistance == nil || b.Housing.MaxDistance == nil {
		return neutralScore
	}
	da, db := *a.Housing.MaxDistance, *b.Housing.MaxDistance
	if da <= 0 || db <= 0 {
		return neutralScore
	}
	return float64(min(da, db)) / float64(max(da, db)) * 100
}

// scoreCleanliness penalizes 20 points per level of difference on the
// 1-5 scale.
func scoreCleanliness(a, b *domain.Profile) float64 {
	if a.Lifestyle == nil || b.Lifestyle == nil ||
		a.Lifestyle.CleanlinessLevel == nil || b.Lifestyle.CleanlinessLevel == nil {
		return neutralScore
	}
	diff := math.Abs(float64(*a.Lifestyle.CleanlinessLevel - *b.Lifestyle.CleanlinessLevel))
	return math.Max(0, 100-diff*20)
}

func scoreSleep(a, b *domain.Profile) float64 {
	if a.Lifestyle == nil || b.Lifestyle == nil ||
		a.Lifestyle.SleepSchedule == nil || b.Lifestyle.SleepSchedule == nil {
		return neutralScore
	}
	sa, sb := *a.Lifestyle.SleepSchedule, *b.Lifestyle.SleepSchedule
	switch {
	case sa == sb:
		return 100
	case sa == domain.SleepFlexible || sb == domain.SleepFlexible:
		return 70
	default:
		// early vs late
		return 30
	}
}

func scoreNoise(a, b *domain.Profile) float64 {
	if a.Lifestyle == nil || b.Lifestyle == nil ||
		a.Lifestyle.NoiseTolerance == nil || b.Lifestyle.NoiseTolerance == nil {
		return neutralScore
	}
	na, nb := *a.Lifestyle.NoiseTolerance, *b.Lifestyle.NoiseTolerance
	switch {
	case na == nb:
		return 100
	case na == domain.NoiseModerate || nb == domain.NoiseModerate:
		return 70
	default:
		// quiet vs loud
		return 30
	}
}

// scorePets treats allergies as a near-hard block: an allergic side
// paired with a pet owner scores 0. A pet owner paired with a no-pets
// side scores 80 when that side is comfortable with pets, 20 when not.
func scorePets(a, b *domain.Profile) float64 {
	if a.Lifestyle == nil || b.Lifestyle == nil ||
		a.Lifestyle.Pets == nil || b.Lifestyle.Pets == nil {
		return neutralScore
	}
	pa, pb := *a.Lifestyle.Pets, *b.Lifestyle.Pets
	if pa == pb {
		return 100
	}
	if (pa == domain.PetsAllergic && pb == domain.PetsHasPets) ||
		(pb == domain.PetsAllergic && pa == domain.PetsHasPets) {
		return 0
	}
	if pa == domain.PetsAllergic || pb == domain.PetsAllergic {
		// allergic vs no_pets: both pet-negative
		return 100
	}
	// has_pets vs no_pets: depends on the pet-free side's comfort
	petFree := a.Lifestyle
	if pa == domain.PetsHasPets {
		petFree = b.Lifestyle
	}
	if petFree.ComfortableWithPets {
		return 80
	}
	return 20
}

func scoreDiet(a, b *domain.Profile) float64 {
	if a.Lifestyle == nil || b.Lifestyle == nil ||
		a.Lifestyle.Diet == nil || b.Lifestyle.Diet == nil {
		return neutralScore
	}
	da, db := *a.Lifestyle.Diet, *b.Lifestyle.Diet
	switch {
	case da == db:
		return 100
	case da == domain.DietVegan || db == domain.DietVegan:
		return 25
	case (da == domain.DietVegetarian && db == domain.DietNone) ||
		(db == domain.DietVegetarian && da == domain.DietNone):
		return 75
	default:
		return 50
	}
}

var sharingRank = map[domain.SharingItems]int{
	domain.SharingNo:        0,
	domain.SharingSometimes: 1,
	domain.SharingYes:       2,
}

func scoreSharing(a, b *domain.Profile) float64 {
	if a.Lifestyle == nil || b.Lifestyle == nil ||
		a.Lifestyle.SharingItems == nil || b.Lifestyle.SharingItems == nil {
		return neutralScore
	}
	ra, aok := sharingRank[*a.Lifestyle.SharingItems]
	rb, bok := sharingRank[*b.Lifestyle.SharingItems]
	if !aok || !bok {
		return neutralScore
	}
	diff := math.Abs(float64(ra - rb))
	return math.Max(0, 100-diff*50)
}

var guestsRank = map[string]int{
	"never":   0,
	"rarely":  1,
	"monthly": 2,
	"weekly":  3,
	"daily":   4,
}

// scoreGuests maps the ordinal frequency labels to integer ranks and
// penalizes 20 points per rank of difference. An unrecognized label is
// treated as missing data.
func scoreGuests(a, b *domain.Profile) float64 {
	if a.Lifestyle == nil || b.Lifestyle == nil ||
		a.Lifestyle.GuestsFrequency == nil || b.Lifestyle.GuestsFrequency == nil {
		return neutralScore
	}
	ra, aok := guestsRank[*a.Lifestyle.GuestsFrequency]
	rb, bok := guestsRank[*b.Lifestyle.GuestsFrequency]
	if !aok || !bok {
		return neutralScore
	}
	diff := math.Abs(float64(ra - rb))
	return math.Max(0, 100-diff*20)
}

func scoreWorkFromHome(a, b *domain.Profile) float64 {
	if a.Lifestyle == nil || b.Lifestyle == nil ||
		a.Lifestyle.WorkFromHomeDays == nil || b.Lifestyle.WorkFromHomeDays == nil {
		return neutralScore
	}
	diff := math.Abs(float64(*a.Lifestyle.WorkFromHomeDays - *b.Lifestyle.WorkFromHomeDays))
	return math.Max(0, 100-diff*10)
}

// scoreSmoking checks whether the two policy tag sets intersect at
// all: any shared tag scores 100, disjoint sets 20.
func scoreSmoking(a, b *domain.Profile) float64 {
	if a.Lifestyle == nil || b.Lifestyle == nil ||
		len(a.Lifestyle.SmokingPolicy) == 0 || len(b.Lifestyle.SmokingPolicy) == 0 {
		return neutralScore
	}
	tags := make(map[string]struct{}, len(a.Lifestyle.SmokingPolicy))
	for _, t := range a.Lifestyle.SmokingPolicy {
		tags[t] = struct{}{}
	}
	for _, t := range b.Lifestyle.SmokingPolicy {
		if _, ok := tags[t]; ok {
			return 100
		}
	}
	return 20
}
