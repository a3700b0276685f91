package usecase

import (
	"context"
	"time"

	"talent-match/internal/infrastructure/cache"

	"github.com/google/uuid"
)

// RankCache memoizes a candidate's ranked match list. Every skill write
// invalidates the entry; a missing or unreachable Redis is a cache miss.
type RankCache struct {
	redis *cache.Redis
	ttl   time.Duration
}

func NewRankCache(redis *cache.Redis, ttl time.Duration) *RankCache {
	return &RankCache{redis: redis, ttl: ttl}
}

func rankKey(candidateID uuid.UUID) string {
	return "match:rank:" + candidateID.String()
}

func (c *RankCache) Get(ctx context.Context, candidateID uuid.UUID) ([]MatchResult, bool) {
	if c == nil || c.redis == nil {
		return nil, false
	}
	var out []MatchResult
	ok, err := c.redis.GetJSON(ctx, rankKey(candidateID), &out)
	if err != nil || !ok {
		return nil, false
	}
	return out, true
}

func (c *RankCache) Set(ctx context.Context, candidateID uuid.UUID, results []MatchResult) {
	if c == nil || c.redis == nil {
		return
	}
	_ = c.redis.SetJSON(ctx, rankKey(candidateID), results, c.ttl)
}

func (c *RankCache) Invalidate(ctx context.Context, candidateID uuid.UUID) {
	if c == nil || c.redis == nil {
		return
	}
	_ = c.redis.Delete(ctx, rankKey(candidateID))
}
