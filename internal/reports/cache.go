package reports

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/boraai/conference-backend/pkg/database"
)

// Cache stores serialized report results in Redis under a short TTL.
// Entries expire on their own; writes do not invalidate them, so a report
// can lag a write by at most the TTL. A nil *Cache disables caching.
type Cache struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewCache creates a report cache over rdb.
func NewCache(rdb *redis.Client, ttl time.Duration, logger *zap.Logger) *Cache {
	return &Cache{rdb: rdb, ttl: ttl, logger: logger}
}

func cacheKey(name string) string {
	return "reports:" + name
}

// Get returns the cached result for name, if present. Cache errors are
// logged and treated as misses.
func (c *Cache) Get(ctx context.Context, name string) (database.Result, bool) {
	if c == nil {
		return database.Result{}, false
	}
	raw, err := c.rdb.Get(ctx, cacheKey(name)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("report cache read", zap.String("report", name), zap.Error(err))
		}
		return database.Result{}, false
	}
	var res database.Result
	if err := json.Unmarshal(raw, &res); err != nil {
		c.logger.Warn("report cache decode", zap.String("report", name), zap.Error(err))
		return database.Result{}, false
	}
	return res, true
}

// Set stores the result for name under the configured TTL.
func (c *Cache) Set(ctx context.Context, name string, res database.Result) {
	if c == nil {
		return
	}
	raw, err := json.Marshal(res)
	if err != nil {
		c.logger.Warn("report cache encode", zap.String("report", name), zap.Error(err))
		return
	}
	if err := c.rdb.Set(ctx, cacheKey(name), raw, c.ttl).Err(); err != nil {
		c.logger.Warn("report cache write", zap.String("report", name), zap.Error(err))
	}
}
