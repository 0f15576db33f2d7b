// Package cache holds the Redis-backed remaining-seats hint used by display
// reads. The cache may briefly over-report availability; the ledger's
// conditional update is the authoritative check, so a stale hint can never
// cause an oversell.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const keyPrefix = "show:remaining:"

type AvailabilityCache struct {
	rdb *redis.Client
	ttl time.Duration
	log *zap.Logger
}

func NewAvailabilityCache(rdb *redis.Client, ttl time.Duration, log *zap.Logger) *AvailabilityCache {
	return &AvailabilityCache{
		rdb: rdb,
		ttl: ttl,
		log: log.With(zap.String("cache", "availability")),
	}
}

// GetRemaining returns the cached remaining count. The second return is
// false on a miss or any Redis failure; callers fall back to the ledger.
func (c *AvailabilityCache) GetRemaining(ctx context.Context, showID uuid.UUID) (int, bool) {
	remaining, err := c.rdb.Get(ctx, keyPrefix+showID.String()).Int()
	if err == redis.Nil {
		return 0, false
	}
	if err != nil {
		c.log.Warn("Availability cache read failed",
			zap.Error(err),
			zap.String("show_id", showID.String()),
		)
		return 0, false
	}
	return remaining, true
}

// SetRemaining writes through the latest remaining count. Failures are
// logged and swallowed; the cache is a hint, never a source of truth.
func (c *AvailabilityCache) SetRemaining(ctx context.Context, showID uuid.UUID, remaining int) {
	err := c.rdb.Set(ctx, keyPrefix+showID.String(), fmt.Sprintf("%d", remaining), c.ttl).Err()
	if err != nil {
		c.log.Warn("Availability cache write failed",
			zap.Error(err),
			zap.String("show_id", showID.String()),
			zap.Int("remaining", remaining),
		)
	}
}
