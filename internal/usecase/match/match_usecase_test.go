package match

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/KaurHarleen1930/hokienest-backend/internal/cache"
	"github.com/KaurHarleen1930/hokienest-backend/internal/config"
	"github.com/KaurHarleen1930/hokienest-backend/internal/domain"
	"github.com/KaurHarleen1930/hokienest-backend/internal/matching"
	"go.uber.org/zap"
)

type fakeProfileRepo struct {
	profiles map[int]*domain.Profile // keyed by user id
}

func (f *fakeProfileRepo) Create(ctx context.Context, p *domain.Profile) error { return nil }
func (f *fakeProfileRepo) Update(ctx context.Context, p *domain.Profile) error { return nil }
func (f *fakeProfileRepo) UpsertHousingPreferences(ctx context.Context, p *domain.HousingPreferences) error {
	return nil
}
func (f *fakeProfileRepo) UpsertLifestylePreferences(ctx context.Context, p *domain.LifestylePreferences) error {
	return nil
}

func (f *fakeProfileRepo) GetByUserID(ctx context.Context, userID int) (*domain.Profile, error) {
	p, ok := f.profiles[userID]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	return p, nil
}

func (f *fakeProfileRepo) ListEligible(ctx context.Context, excludeProfileID, limit int) ([]*domain.Profile, error) {
	var out []*domain.Profile
	for _, p := range f.profiles {
		if p.ID != excludeProfileID && p.MatchEligible() {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeMatchRepo struct {
	rows map[int][]domain.MatchResult
}

func (f *fakeMatchRepo) ReplaceMatches(ctx context.Context, requesterID int, results []domain.MatchResult) (int, error) {
	if f.rows == nil {
		f.rows = make(map[int][]domain.MatchResult)
	}
	f.rows[requesterID] = append([]domain.MatchResult(nil), results...)
	return len(results), nil
}

func (f *fakeMatchRepo) GetSavedMatches(ctx context.Context, requesterID int) ([]*domain.SavedMatch, error) {
	var out []*domain.SavedMatch
	for _, r := range f.rows[requesterID] {
		out = append(out, &domain.SavedMatch{
			PersistedMatch: domain.PersistedMatch{
				RequesterID: requesterID,
				CandidateID: r.CandidateID,
				Score:       r.Score,
				Breakdown:   r.Breakdown,
			},
		})
	}
	return out, nil
}

type fakeCache struct {
	entries map[int][]*domain.SavedMatch
	hits    int
}

func (f *fakeCache) Get(ctx context.Context, requesterID int) ([]*domain.SavedMatch, error) {
	if e, ok := f.entries[requesterID]; ok {
		f.hits++
		return e, nil
	}
	return nil, cache.ErrMiss
}

func (f *fakeCache) Set(ctx context.Context, requesterID int, results []*domain.SavedMatch) error {
	if f.entries == nil {
		f.entries = make(map[int][]*domain.SavedMatch)
	}
	f.entries[requesterID] = results
	return nil
}

func (f *fakeCache) Invalidate(ctx context.Context, requesterID int) error {
	delete(f.entries, requesterID)
	return nil
}

func intp(v int) *int { return &v }

func eligibleProfile(id int) *domain.Profile {
	moveIn := time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC)
	moveOut := time.Date(2027, time.May, 31, 0, 0, 0, 0, time.UTC)
	noise := domain.NoiseModerate
	sleep := domain.SleepEarly
	pets := domain.PetsNoPets
	diet := domain.DietNone
	sharing := domain.SharingSometimes
	guests := "weekly"
	return &domain.Profile{
		ID:          id,
		UserID:      id,
		DisplayName: "student",
		Housing: &domain.HousingPreferences{
			ProfileID:   id,
			BudgetMin:   500,
			BudgetMax:   700,
			MoveInDate:  &moveIn,
			MoveOutDate: &moveOut,
			MaxDistance: intp(10),
		},
		Lifestyle: &domain.LifestylePreferences{
			ProfileID:           id,
			CleanlinessLevel:    intp(3),
			NoiseTolerance:      &noise,
			SleepSchedule:       &sleep,
			Pets:                &pets,
			ComfortableWithPets: true,
			Diet:                &diet,
			SharingItems:        &sharing,
			WorkFromHomeDays:    intp(2),
			GuestsFrequency:     &guests,
			SmokingPolicy:       []string{"no_smoking"},
		},
	}
}

func newTestUseCase(profiles ...*domain.Profile) (*MatchUseCase, *fakeMatchRepo, *fakeCache) {
	repo := &fakeProfileRepo{profiles: make(map[int]*domain.Profile)}
	for _, p := range profiles {
		repo.profiles[p.UserID] = p
	}
	matchRepo := &fakeMatchRepo{}
	matchCache := &fakeCache{}
	uc := NewMatchUseCase(
		repo,
		matchRepo,
		matchCache,
		matching.NewResolver(zap.NewNop()),
		nil,
		config.MatchingConfig{DefaultLimit: 20, PoolSize: 100},
		zap.NewNop(),
	)
	return uc, matchRepo, matchCache
}

func TestGenerateMatchesPersistsRanking(t *testing.T) {
	uc, matchRepo, _ := newTestUseCase(eligibleProfile(1), eligibleProfile(2), eligibleProfile(3))

	resp, err := uc.GenerateMatches(context.Background(), 1, &GenerateMatchesRequest{})
	if err != nil {
		t.Fatalf("GenerateMatches: %v", err)
	}
	if len(resp.Results) != 2 {
		t.Fatalf("got %d results, want 2", len(resp.Results))
	}
	if resp.Saved != 2 {
		t.Fatalf("saved = %d, want 2", resp.Saved)
	}
	if len(matchRepo.rows[1]) != 2 {
		t.Fatalf("store holds %d rows, want 2", len(matchRepo.rows[1]))
	}
}

func TestGenerateMatchesTwiceLeavesOneRowSet(t *testing.T) {
	uc, matchRepo, _ := newTestUseCase(eligibleProfile(1), eligibleProfile(2), eligibleProfile(3))

	for i := 0; i < 2; i++ {
		if _, err := uc.GenerateMatches(context.Background(), 1, &GenerateMatchesRequest{}); err != nil {
			t.Fatalf("GenerateMatches run %d: %v", i, err)
		}
	}
	if got := len(matchRepo.rows[1]); got != 2 {
		t.Fatalf("store holds %d rows after regeneration, want 2", got)
	}
}

func TestGenerateMatchesDryRunSkipsPersistence(t *testing.T) {
	uc, matchRepo, _ := newTestUseCase(eligibleProfile(1), eligibleProfile(2))

	resp, err := uc.GenerateMatches(context.Background(), 1, &GenerateMatchesRequest{DryRun: true})
	if err != nil {
		t.Fatalf("GenerateMatches: %v", err)
	}
	if resp.Saved != 0 {
		t.Fatalf("saved = %d, want 0 on dry run", resp.Saved)
	}
	if len(matchRepo.rows) != 0 {
		t.Fatalf("store written on dry run: %+v", matchRepo.rows)
	}
}

func TestGenerateMatchesIncompleteRequester(t *testing.T) {
	incomplete := eligibleProfile(1)
	incomplete.Lifestyle = nil
	uc, _, _ := newTestUseCase(incomplete, eligibleProfile(2))

	_, err := uc.GenerateMatches(context.Background(), 1, &GenerateMatchesRequest{})
	if !errors.Is(err, domain.ErrPreferencesIncomplete) {
		t.Fatalf("err = %v, want ErrPreferencesIncomplete", err)
	}
}

func TestGenerateMatchesMalformedAllocation(t *testing.T) {
	uc, _, _ := newTestUseCase(eligibleProfile(1), eligibleProfile(2))

	_, err := uc.GenerateMatches(context.Background(), 1, &GenerateMatchesRequest{
		Priorities: &PriorityAllocationRequest{Budget: 30, Commute: 30, Safety: 30, Roommates: 20},
	})
	if !errors.Is(err, domain.ErrInvalidWeightAllocation) {
		t.Fatalf("err = %v, want ErrInvalidWeightAllocation", err)
	}
}

func TestGenerateMatchesRejectsMixedConfig(t *testing.T) {
	uc, _, _ := newTestUseCase(eligibleProfile(1), eligibleProfile(2))

	_, err := uc.GenerateMatches(context.Background(), 1, &GenerateMatchesRequest{
		Priorities: &PriorityAllocationRequest{Budget: 25, Commute: 25, Safety: 25, Roommates: 25},
		Weights:    map[string]float64{"budget": 5},
	})
	if err == nil {
		t.Fatal("expected error for mixed priorities and weights")
	}
}

func TestGenerateMatchesUnknownRequester(t *testing.T) {
	uc, _, _ := newTestUseCase(eligibleProfile(2))

	_, err := uc.GenerateMatches(context.Background(), 1, &GenerateMatchesRequest{})
	if !errors.Is(err, domain.ErrProfileNotFound) {
		t.Fatalf("err = %v, want ErrProfileNotFound", err)
	}
}

func TestGetSavedMatchesUsesCacheAfterGeneration(t *testing.T) {
	uc, _, matchCache := newTestUseCase(eligibleProfile(1), eligibleProfile(2))

	if _, err := uc.GenerateMatches(context.Background(), 1, &GenerateMatchesRequest{}); err != nil {
		t.Fatalf("GenerateMatches: %v", err)
	}

	saved, err := uc.GetSavedMatches(context.Background(), 1)
	if err != nil {
		t.Fatalf("GetSavedMatches: %v", err)
	}
	if len(saved) != 1 || saved[0].CandidateID != 2 {
		t.Fatalf("unexpected saved matches: %+v", saved)
	}
	if matchCache.hits != 1 {
		t.Fatalf("cache hits = %d, want 1", matchCache.hits)
	}
}

func TestGetSavedMatchesFallsBackToStore(t *testing.T) {
	uc, matchRepo, matchCache := newTestUseCase(eligibleProfile(1), eligibleProfile(2))
	matchRepo.rows = map[int][]domain.MatchResult{
		1: {{CandidateID: 2, Score: 91.5}},
	}

	saved, err := uc.GetSavedMatches(context.Background(), 1)
	if err != nil {
		t.Fatalf("GetSavedMatches: %v", err)
	}
	if len(saved) != 1 || saved[0].Score != 91.5 {
		t.Fatalf("unexpected saved matches: %+v", saved)
	}
	// The miss populated the cache for the next read.
	if len(matchCache.entries[1]) != 1 {
		t.Fatalf("cache not populated after store read")
	}
}
