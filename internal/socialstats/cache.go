package socialstats

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Cache wraps the parser with a freshness window: within the TTL the stored
// snapshot is served and the profile page is not fetched at all.
type Cache struct {
	rdb    *redis.Client
	parser *Parser
	ttl    time.Duration
	log    *zap.Logger
}

func NewCache(rdb *redis.Client, parser *Parser, ttl time.Duration, log *zap.Logger) *Cache {
	return &Cache{rdb: rdb, parser: parser, ttl: ttl, log: log}
}

func cacheKey(handle string) string {
	return "socialstats:" + handle
}

func (c *Cache) Get(ctx context.Context, handle string) (*ProfileStats, error) {
	if data, err := c.rdb.Get(ctx, cacheKey(handle)).Bytes(); err == nil {
		var stats ProfileStats
		if json.Unmarshal(data, &stats) == nil {
			return &stats, nil
		}
	}

	stats, err := c.parser.FetchProfile(ctx, handle)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(stats); err == nil {
		if err := c.rdb.Set(ctx, cacheKey(handle), data, c.ttl).Err(); err != nil {
			c.log.Warn("failed to cache profile stats", zap.String("handle", handle), zap.Error(err))
		}
	}
	return stats, nil
}

// Invalidate drops the cached snapshot so the next Get refetches.
func (c *Cache) Invalidate(ctx context.Context, handle string) error {
	return c.rdb.Del(ctx, cacheKey(handle)).Err()
}
