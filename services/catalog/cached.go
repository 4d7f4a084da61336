package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"scenicinn/models"
)

// CachedReader wraps another Reader with a Redis cache-aside layer. Cache
// faults are logged and fall through to the underlying reader, so a Redis
// outage degrades latency, not correctness.
type CachedReader struct {
	next   Reader
	cache  *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewCachedReader(next Reader, cache *redis.Client, ttl time.Duration, logger *zap.Logger) *CachedReader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CachedReader{
		next:   next,
		cache:  cache,
		ttl:    ttl,
		logger: logger,
	}
}

func (c *CachedReader) ListMenus(ctx context.Context) ([]models.Menu, error) {
	const key = "catalog:menus"

	if data, err := c.cache.Get(ctx, key).Result(); err == nil {
		var menus []models.Menu
		if err := json.Unmarshal([]byte(data), &menus); err == nil {
			return menus, nil
		}
		c.logger.Warn("discarding unreadable menu cache entry", zap.String("key", key))
	}

	menus, err := c.next.ListMenus(ctx)
	if err != nil {
		return nil, err
	}
	c.store(ctx, key, menus)
	return menus, nil
}

func (c *CachedReader) ListMenuItems(ctx context.Context, menuID string) ([]models.MenuItem, error) {
	key := fmt.Sprintf("catalog:menu-items:%s", menuID)

	if data, err := c.cache.Get(ctx, key).Result(); err == nil {
		var items []models.MenuItem
		if err := json.Unmarshal([]byte(data), &items); err == nil {
			return items, nil
		}
		c.logger.Warn("discarding unreadable menu cache entry", zap.String("key", key))
	}

	items, err := c.next.ListMenuItems(ctx, menuID)
	if err != nil {
		return nil, err
	}
	c.store(ctx, key, items)
	return items, nil
}

func (c *CachedReader) store(ctx context.Context, key string, value interface{}) {
	data, err := json.Marshal(value)
	if err != nil {
		c.logger.Warn("failed to marshal catalog cache entry", zap.String("key", key), zap.Error(err))
		return
	}
	if err := c.cache.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.logger.Warn("failed to store catalog cache entry", zap.String("key", key), zap.Error(err))
	}
}
