package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/KaurHarleen1930/hokienest-backend/internal/domain"
	"github.com/redis/go-redis/v9"
)

// ErrMiss is returned when no ranking is cached for a requester.
var ErrMiss = errors.New("match cache miss")

// MatchCache keeps the last generated ranking per requester in Redis.
// The cache is advisory: the match store stays authoritative.
type MatchCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewMatchCache(client *redis.Client, ttl time.Duration) *MatchCache {
	return &MatchCache{client: client, ttl: ttl}
}

func matchKey(requesterID int) string {
	return fmt.Sprintf("matches:%d", requesterID)
}

func (c *MatchCache) Get(ctx context.Context, requesterID int) ([]*domain.SavedMatch, error) {
	raw, err := c.client.Get(ctx, matchKey(requesterID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrMiss
		}
		return nil, err
	}
	var results []*domain.SavedMatch
	if err := json.Unmarshal(raw, &results); err != nil {
		return nil, err
	}
	return results, nil
}

func (c *MatchCache) Set(ctx context.Context, requesterID int, results []*domain.SavedMatch) error {
	raw, err := json.Marshal(results)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, matchKey(requesterID), raw, c.ttl).Err()
}

func (c *MatchCache) Invalidate(ctx context.Context, requesterID int) error {
	return c.client.Del(ctx, matchKey(requesterID)).Err()
}
