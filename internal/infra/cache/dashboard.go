package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
)

const dashboardKey = "salon:dashboard"

// DashboardCache keeps the staff overview warm for a short TTL. A nil cache
// is valid and every call falls through to the database.
type DashboardCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewDashboardCache(rdb *redis.Client, ttl time.Duration) *DashboardCache {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &DashboardCache{rdb: rdb, ttl: ttl}
}

func (c *DashboardCache) Get(ctx context.Context, out any) bool {
	if c == nil || c.rdb == nil {
		return false
	}

	raw, err := c.rdb.Get(ctx, dashboardKey).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(raw, out) == nil
}

func (c *DashboardCache) Set(ctx context.Context, val any) {
	if c == nil || c.rdb == nil {
		return
	}

	raw, err := json.Marshal(val)
	if err != nil {
		return
	}
	c.rdb.Set(ctx, dashboardKey, raw, c.ttl)
}

// Invalidate drops the cached overview; bookings and deposit verifications
// call it so staff never act on stale pending lists.
func (c *DashboardCache) Invalidate(ctx context.Context) {
	if c == nil || c.rdb == nil {
		return
	}
	c.rdb.Del(ctx, dashboardKey)
}
