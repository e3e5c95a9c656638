package match

import (
	"context"
	"errors"
	"fmt"

	"github.com/KaurHarleen1930/hokienest-backend/internal/cache"
	"github.com/KaurHarleen1930/hokienest-backend/internal/config"
	"github.com/KaurHarleen1930/hokienest-backend/internal/domain"
	"github.com/KaurHarleen1930/hokienest-backend/internal/infrastructure/gemini"
	"github.com/KaurHarleen1930/hokienest-backend/internal/matching"
	"github.com/KaurHarleen1930/hokienest-backend/internal/repository"
	"go.uber.org/zap"
)

// MatchCache is the subset of the redis cache the use case needs;
// kept as an interface so tests can run without a redis server.
type MatchCache interface {
	Get(ctx context.Context, requesterID int) ([]*domain.SavedMatch, error)
	Set(ctx context.Context, requesterID int, results []*domain.SavedMatch) error
	Invalidate(ctx context.Context, requesterID int) error
}

type MatchUseCase struct {
	profileRepo  repository.ProfileRepository
	matchRepo    repository.MatchRepository
	cache        MatchCache
	resolver     *matching.Resolver
	geminiClient *gemini.GeminiClient
	cfg          config.MatchingConfig
	log          *zap.Logger
}

func NewMatchUseCase(
	profileRepo repository.ProfileRepository,
	matchRepo repository.MatchRepository,
	matchCache MatchCache,
	resolver *matching.Resolver,
	geminiClient *gemini.GeminiClient,
	cfg config.MatchingConfig,
	log *zap.Logger,
) *MatchUseCase {
	return &MatchUseCase{
		profileRepo:  profileRepo,
		matchRepo:    matchRepo,
		cache:        matchCache,
		resolver:     resolver,
		geminiClient: geminiClient,
		cfg:          cfg,
		log:          log,
	}
}

// PriorityAllocationRequest is the coarse 4-category configuration as
// submitted by the client.
type PriorityAllocationRequest struct {
	Budget    int `json:"budget" binding:"min=0,max=100"`
	Commute   int `json:"commute" binding:"min=0,max=100"`
	Safety    int `json:"safety" binding:"min=0,max=100"`
	Roommates int `json:"roommates" binding:"min=0,max=100"`
}

// GenerateMatchesRequest configures one ranking run. Priorities and
// Weights are mutually exclusive; with neither, the platform default
// allocation applies.
type GenerateMatchesRequest struct {
	Priorities *PriorityAllocationRequest `json:"priorities"`
	Weights    map[string]float64         `json:"weights"`
	Limit      int                        `json:"limit" binding:"min=0,max=100"`
	MinScore   float64                    `json:"min_score" binding:"min=0,max=100"`
	DryRun     bool                       `json:"dry_run"`
}

// GenerateMatchesResponse carries the fresh ranking plus how many rows
// were persisted.
type GenerateMatchesResponse struct {
	Results     []domain.MatchResult `json:"results"`
	Saved       int                  `json:"saved"`
	Explanation *string              `json:"explanation,omitempty"`
}

func (uc *MatchUseCase) weightConfig(req *GenerateMatchesRequest) (matching.WeightConfig, error) {
	if req.Priorities != nil && len(req.Weights) > 0 {
		return nil, fmt.Errorf("priorities and weights are mutually exclusive")
	}
	if req.Priorities != nil {
		return matching.PriorityAllocation{
			Budget:    req.Priorities.Budget,
			Commute:   req.Priorities.Commute,
			Safety:    req.Priorities.Safety,
			Roommates: req.Priorities.Roommates,
		}, nil
	}
	if len(req.Weights) > 0 {
		fw := make(matching.FeatureWeights, len(req.Weights))
		for dim, w := range req.Weights {
			fw[matching.Dimension(dim)] = w
		}
		return fw, nil
	}
	return nil, nil // resolver falls back to the default allocation
}

// GenerateMatches computes a fresh ranking for the user and, unless
// dry-run, atomically replaces the persisted one and refreshes the
// cache.
func (uc *MatchUseCase) GenerateMatches(ctx context.Context, userID int, req *GenerateMatchesRequest) (*GenerateMatchesResponse, error) {
	requester, err := uc.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !requester.MatchEligible() {
		return nil, domain.ErrPreferencesIncomplete
	}

	cfg, err := uc.weightConfig(req)
	if err != nil {
		return nil, err
	}
	weights, err := uc.resolver.Resolve(cfg)
	if err != nil {
		return nil, err
	}

	pool, err := uc.profileRepo.ListEligible(ctx, requester.ID, uc.cfg.PoolSize)
	if err != nil {
		return nil, fmt.Errorf("failed to load candidate pool: %w", err)
	}

	limit := req.Limit
	if limit <= 0 {
		limit = uc.cfg.DefaultLimit
	}
	minScore := req.MinScore
	if minScore <= 0 {
		minScore = uc.cfg.MinScore
	}

	results, err := matching.Rank(requester, pool, weights, matching.Options{
		Limit:    limit,
		MinScore: minScore,
	})
	if err != nil {
		return nil, err
	}

	resp := &GenerateMatchesResponse{Results: results}

	if !req.DryRun {
		saved, err := uc.matchRepo.ReplaceMatches(ctx, requester.ID, results)
		if err != nil {
			return nil, fmt.Errorf("failed to persist matches: %w", err)
		}
		resp.Saved = saved
		uc.refreshCache(ctx, requester.ID)
	}

	uc.log.Info("generated matches",
		zap.Int("requester_id", requester.ID),
		zap.Int("pool_size", len(pool)),
		zap.Int("results", len(results)),
		zap.Bool("dry_run", req.DryRun),
	)

	if explanation := uc.explainTopMatch(ctx, requester, pool, results); explanation != "" {
		resp.Explanation = &explanation
	}
	return resp, nil
}

// GetSavedMatches returns the user's last persisted ranking, serving
// from cache when possible.
func (uc *MatchUseCase) GetSavedMatches(ctx context.Context, userID int) ([]*domain.SavedMatch, error) {
	requester, err := uc.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		cached, err := uc.cache.Get(ctx, requester.ID)
		if err == nil {
			return cached, nil
		}
		if !errors.Is(err, cache.ErrMiss) {
			uc.log.Warn("match cache read failed", zap.Int("requester_id", requester.ID), zap.Error(err))
		}
	}

	saved, err := uc.matchRepo.GetSavedMatches(ctx, requester.ID)
	if err != nil {
		return nil, err
	}
	if uc.cache != nil {
		if err := uc.cache.Set(ctx, requester.ID, saved); err != nil {
			uc.log.Warn("match cache write failed", zap.Int("requester_id", requester.ID), zap.Error(err))
		}
	}
	return saved, nil
}

// refreshCache re-reads the persisted ranking and replaces the cache
// entry. Cache failures are logged and swallowed; the store stays
// authoritative.
func (uc *MatchUseCase) refreshCache(ctx context.Context, requesterID int) {
	if uc.cache == nil {
		return
	}
	saved, err := uc.matchRepo.GetSavedMatches(ctx, requesterID)
	if err != nil {
		uc.log.Warn("cache refresh read failed", zap.Int("requester_id", requesterID), zap.Error(err))
		return
	}
	if err := uc.cache.Set(ctx, requesterID, saved); err != nil {
		uc.log.Warn("cache refresh write failed", zap.Int("requester_id", requesterID), zap.Error(err))
	}
}

// explainTopMatch asks Gemini for a one-line note on the best result.
// Strictly best effort: a nil client or an API failure never affects
// the ranking.
func (uc *MatchUseCase) explainTopMatch(ctx context.Context, requester *domain.Profile, pool []*domain.Profile, results []domain.MatchResult) string {
	if uc.geminiClient == nil || len(results) == 0 {
		return ""
	}
	top := results[0]
	var candidate *domain.Profile
	for _, p := range pool {
		if p.ID == top.CandidateID {
			candidate = p
			break
		}
	}
	if candidate == nil {
		return ""
	}
	explanation, err := uc.geminiClient.GenerateMatchExplanation(
		ctx, requester.DisplayName, candidate.DisplayName, top.Score, top.Breakdown)
	if err != nil {
		uc.log.Warn("match explanation failed", zap.Error(err))
		return ""
	}
	return explanation
}
