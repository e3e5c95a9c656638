package matching

import (
	"testing"
	"time"

	"github.com/KaurHarleen1930/hokienest-backend/internal/domain"
)

func intp(v int) *int                               { return &v }
func strp(v string) *string                         { return &v }
func noisep(v domain.NoiseTolerance) *domain.NoiseTolerance { return &v }
func sleepp(v domain.SleepSchedule) *domain.SleepSchedule   { return &v }
func petsp(v domain.PetStatus) *domain.PetStatus            { return &v }
func dietp(v domain.Diet) *domain.Diet                      { return &v }
func sharep(v domain.SharingItems) *domain.SharingItems     { return &v }

func datep(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

// testProfile builds a fully populated, match-eligible profile.
func testProfile(id int) *domain.Profile {
	return &domain.Profile{
		ID:          id,
		UserID:      id,
		DisplayName: "test",
		Housing: &domain.HousingPreferences{
			ProfileID:   id,
			BudgetMin:   500,
			BudgetMax:   700,
			MoveInDate:  datep(2026, time.August, 1),
			MoveOutDate: datep(2027, time.May, 31),
			MaxDistance: intp(10),
		},
		Lifestyle: &domain.LifestylePreferences{
			ProfileID:           id,
			CleanlinessLevel:    intp(3),
			NoiseTolerance:      noisep(domain.NoiseModerate),
			SleepSchedule:       sleepp(domain.SleepEarly),
			Pets:                petsp(domain.PetsNoPets),
			ComfortableWithPets: true,
			Diet:                dietp(domain.DietNone),
			SharingItems:        sharep(domain.SharingSometimes),
			WorkFromHomeDays:    intp(2),
			GuestsFrequency:     strp("weekly"),
			SmokingPolicy:       []string{"no_smoking"},
		},
	}
}

func TestScoreBudget(t *testing.T) {
	tests := []struct {
		name                   string
		aMin, aMax, bMin, bMax int
		want                   float64
	}{
		{"identical ranges", 500, 700, 500, 700, 100},
		{"no overlap", 500, 700, 1500, 1700, 0},
		{"half overlap of smaller range", 500, 700, 600, 800, 50},
		{"contained range clamps to 100", 400, 1000, 500, 600, 100},
		{"identical points", 600, 600, 600, 600, 100},
		{"points 200 apart", 600, 600, 800, 800, 80},
		{"points 1500 apart floor at 0", 500, 500, 2000, 2000, 0},
		{"point inside range", 500, 700, 600, 600, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b := testProfile(1), testProfile(2)
			a.Housing.BudgetMin, a.Housing.BudgetMax = tt.aMin, tt.aMax
			b.Housing.BudgetMin, b.Housing.BudgetMax = tt.bMin, tt.bMax
			if got := scoreBudget(a, b); got != tt.want {
				t.Fatalf("scoreBudget = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScoreBudgetMissingDataIsNeutral(t *testing.T) {
	a, b := testProfile(1), testProfile(2)
	b.Housing = nil
	if got := scoreBudget(a, b); got != neutralScore {
		t.Fatalf("scoreBudget without housing = %v, want %v", got, neutralScore)
	}
}

func TestScoreTimeline(t *testing.T) {
	t.Run("identical ranges", func(t *testing.T) {
		a, b := testProfile(1), testProfile(2)
		if got := scoreTimeline(a, b); got != 100 {
			t.Fatalf("scoreTimeline = %v, want 100", got)
		}
	})
	t.Run("disjoint ranges", func(t *testing.T) {
		a, b := testProfile(1), testProfile(2)
		b.Housing.MoveInDate = datep(2027, time.August, 1)
		b.Housing.MoveOutDate = datep(2028, time.May, 31)
		if got := scoreTimeline(a, b); got != 0 {
			t.Fatalf("scoreTimeline = %v, want 0", got)
		}
	})
	t.Run("partial overlap is between bounds", func(t *testing.T) {
		a, b := testProfile(1), testProfile(2)
		b.Housing.MoveInDate = datep(2027, time.January, 1)
		b.Housing.MoveOutDate = datep(2027, time.October, 31)
		got := scoreTimeline(a, b)
		if got <= 0 || got >= 100 {
			t.Fatalf("scoreTimeline = %v, want in (0,100)", got)
		}
	})
	t.Run("open-ended stay is neutral", func(t *testing.T) {
		a, b := testProfile(1), testProfile(2)
		b.Housing.MoveOutDate = nil
		if got := scoreTimeline(a, b); got != neutralScore {
			t.Fatalf("scoreTimeline = %v, want %v", got, neutralScore)
		}
	})
}

func TestScoreCleanliness(t *testing.T) {
	tests := []struct {
		a, b int
		want float64
	}{
		{3, 3, 100},
		{1, 2, 80},
		{1, 3, 60},
		{1, 5, 20},
	}
	for _, tt := range tests {
		a, b := testProfile(1), testProfile(2)
		a.Lifestyle.CleanlinessLevel = intp(tt.a)
		b.Lifestyle.CleanlinessLevel = intp(tt.b)
		if got := scoreCleanliness(a, b); got != tt.want {
			t.Fatalf("scoreCleanliness(%d,%d) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestScoreSleepAndNoise(t *testing.T) {
	tests := []struct {
		name         string
		sleepA       domain.SleepSchedule
		sleepB       domain.SleepSchedule
		wantSleep    float64
		noiseA       domain.NoiseTolerance
		noiseB       domain.NoiseTolerance
		wantNoise    float64
	}{
		{"identical", domain.SleepEarly, domain.SleepEarly, 100, domain.NoiseQuiet, domain.NoiseQuiet, 100},
		{"flexible and moderate soften", domain.SleepEarly, domain.SleepFlexible, 70, domain.NoiseQuiet, domain.NoiseModerate, 70},
		{"hard mismatch", domain.SleepEarly, domain.SleepLate, 30, domain.NoiseQuiet, domain.NoiseLoud, 30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b := testProfile(1), testProfile(2)
			a.Lifestyle.SleepSchedule = sleepp(tt.sleepA)
			b.Lifestyle.SleepSchedule = sleepp(tt.sleepB)
			a.Lifestyle.NoiseTolerance = noisep(tt.noiseA)
			b.Lifestyle.NoiseTolerance = noisep(tt.noiseB)
			if got := scoreSleep(a, b); got != tt.wantSleep {
				t.Fatalf("scoreSleep = %v, want %v", got, tt.wantSleep)
			}
			if got := scoreNoise(a, b); got != tt.wantNoise {
				t.Fatalf("scoreNoise = %v, want %v", got, tt.wantNoise)
			}
		})
	}
}

func TestScorePets(t *testing.T) {
	tests := []struct {
		name        string
		a, b        domain.PetStatus
		bComfort    bool
		want        float64
	}{
		{"both owners", domain.PetsHasPets, domain.PetsHasPets, true, 100},
		{"both pet free", domain.PetsNoPets, domain.PetsNoPets, false, 100},
		{"allergic vs owner", domain.PetsAllergic, domain.PetsHasPets, true, 0},
		{"owner vs allergic", domain.PetsHasPets, domain.PetsAllergic, true, 0},
		{"allergic vs pet free", domain.PetsAllergic, domain.PetsNoPets, false, 100},
		{"owner vs comfortable pet-free", domain.PetsHasPets, domain.PetsNoPets, true, 80},
		{"owner vs uncomfortable pet-free", domain.PetsHasPets, domain.PetsNoPets, false, 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b := testProfile(1), testProfile(2)
			a.Lifestyle.Pets = petsp(tt.a)
			a.Lifestyle.ComfortableWithPets = false
			b.Lifestyle.Pets = petsp(tt.b)
			b.Lifestyle.ComfortableWithPets = tt.bComfort
			if got := scorePets(a, b); got != tt.want {
				t.Fatalf("scorePets = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScoreDiet(t *testing.T) {
	tests := []struct {
		a, b domain.Diet
		want float64
	}{
		{domain.DietVegan, domain.DietVegan, 100},
		{domain.DietVegan, domain.DietNone, 25},
		{domain.DietVegetarian, domain.DietVegan, 25},
		{domain.DietVegetarian, domain.DietNone, 75},
		{domain.DietNone, domain.DietVegetarian, 75},
	}
	for _, tt := range tests {
		a, b := testProfile(1), testProfile(2)
		a.Lifestyle.Diet = dietp(tt.a)
		b.Lifestyle.Diet = dietp(tt.b)
		if got := scoreDiet(a, b); got != tt.want {
			t.Fatalf("scoreDiet(%s,%s) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestScoreGuestsAndSharing(t *testing.T) {
	a, b := testProfile(1), testProfile(2)
	a.Lifestyle.GuestsFrequency = strp("never")
	b.Lifestyle.GuestsFrequency = strp("daily")
	if got := scoreGuests(a, b); got != 20 {
		t.Fatalf("scoreGuests(never,daily) = %v, want 20", got)
	}
	b.Lifestyle.GuestsFrequency = strp("all the time")
	if got := scoreGuests(a, b); got != neutralScore {
		t.Fatalf("scoreGuests with unknown label = %v, want %v", got, neutralScore)
	}

	a.Lifestyle.SharingItems = sharep(domain.SharingYes)
	b.Lifestyle.SharingItems = sharep(domain.SharingNo)
	if got := scoreSharing(a, b); got != 0 {
		t.Fatalf("scoreSharing(yes,no) = %v, want 0", got)
	}
	b.Lifestyle.SharingItems = sharep(domain.SharingSometimes)
	if got := scoreSharing(a, b); got != 50 {
		t.Fatalf("scoreSharing(yes,sometimes) = %v, want 50", got)
	}
}

func TestScoreSmoking(t *testing.T) {
	a, b := testProfile(1), testProfile(2)
	a.Lifestyle.SmokingPolicy = []string{"no_smoking", "alcohol_ok"}
	b.Lifestyle.SmokingPolicy = []string{"alcohol_ok"}
	if got := scoreSmoking(a, b); got != 100 {
		t.Fatalf("scoreSmoking intersecting = %v, want 100", got)
	}
	b.Lifestyle.SmokingPolicy = []string{"smoking_ok"}
	if got := scoreSmoking(a, b); got != 20 {
		t.Fatalf("scoreSmoking disjoint = %v, want 20", got)
	}
	b.Lifestyle.SmokingPolicy = nil
	if got := scoreSmoking(a, b); got != neutralScore {
		t.Fatalf("scoreSmoking empty = %v, want %v", got, neutralScore)
	}
}

// Every scorer stays within [0,100] and absolute-difference scorers
// are symmetric.
func TestScorerBoundsAndSymmetry(t *testing.T) {
	a := testProfile(1)
	b := testProfile(2)
	b.Housing.BudgetMin, b.Housing.BudgetMax = 900, 1400
	b.Housing.MaxDistance = intp(3)
	b.Lifestyle.CleanlinessLevel = intp(5)
	b.Lifestyle.NoiseTolerance = noisep(domain.NoiseLoud)
	b.Lifestyle.SleepSchedule = sleepp(domain.SleepLate)
	b.Lifestyle.Pets = petsp(domain.PetsHasPets)
	b.Lifestyle.Diet = dietp(domain.DietVegan)
	b.Lifestyle.SharingItems = sharep(domain.SharingNo)
	b.Lifestyle.WorkFromHomeDays = intp(7)
	b.Lifestyle.GuestsFrequency = strp("never")
	b.Lifestyle.SmokingPolicy = []string{"smoking_ok"}

	for dim, score := range scorers {
		got := score(a, b)
		if got < 0 || got > 100 {
			t.Errorf("%s: score %v out of [0,100]", dim, got)
		}
	}

	symmetric := []Dimension{
		DimBudget, DimTimeline, DimDistance, DimCleanliness, DimSleep,
		DimNoise, DimDiet, DimSharing, DimGuests, DimWorkFromHome, DimSmoking,
	}
	for _, dim := range symmetric {
		if ab, ba := scorers[dim](a, b), scorers[dim](b, a); ab != ba {
			t.Errorf("%s: asymmetric, %v vs %v", dim, ab, ba)
		}
	}
}
