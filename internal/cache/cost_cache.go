package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/Santy01/gestion-viajes-api/internal/repository"
)

const defaultTTL = 10 * time.Minute

// CostCache stores destination costs keyed by destination id.
type CostCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCostCache(client *redis.Client, ttl time.Duration) *CostCache {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &CostCache{client: client, ttl: ttl}
}

func key(id uint) string {
	return "destination:cost:" + strconv.FormatUint(uint64(id), 10)
}

// Get returns nil, nil on a cache miss.
func (c *CostCache) Get(ctx context.Context, id uint) (*decimal.Decimal, error) {
	val, err := c.client.Get(ctx, key(id)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("cache get for destination %d: %w", id, err)
	}

	cost, err := decimal.NewFromString(val)
	if err != nil {
		return nil, fmt.Errorf("parsing cached cost for destination %d: %w", id, err)
	}
	return &cost, nil
}

func (c *CostCache) Set(ctx context.Context, id uint, cost decimal.Decimal) error {
	if err := c.client.Set(ctx, key(id), cost.StringFixed(2), c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set for destination %d: %w", id, err)
	}
	return nil
}

// Invalidate drops the cached cost for the destination.
func (c *CostCache) Invalidate(ctx context.Context, id uint) error {
	if err := c.client.Del(ctx, key(id)).Err(); err != nil {
		return fmt.Errorf("cache delete for destination %d: %w", id, err)
	}
	return nil
}

func (c *CostCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// CachedCostLookup reads through the cache and falls back to the wrapped lookup.
// Redis failures are logged and never fail the lookup.
type CachedCostLookup struct {
	next  repository.CostLookup
	cache *CostCache
	log   logrus.FieldLogger
}

func NewCachedCostLookup(next repository.CostLookup, cache *CostCache, log logrus.FieldLogger) *CachedCostLookup {
	return &CachedCostLookup{next: next, cache: cache, log: log}
}

func (l *CachedCostLookup) CostByID(ctx context.Context, tx *gorm.DB, id uint) (decimal.Decimal, bool, error) {
	cached, err := l.cache.Get(ctx, id)
	if err != nil {
		l.log.WithError(err).WithField("destination_id", id).Warn("cost cache read failed")
	}
	if cached != nil {
		return *cached, true, nil
	}

	cost, ok, err := l.next.CostByID(ctx, tx, id)
	if err != nil || !ok {
		return cost, ok, err
	}

	if err := l.cache.Set(ctx, id, cost); err != nil {
		l.log.WithError(err).WithField("destination_id", id).Warn("cost cache write failed")
	}
	return cost, true, nil
}
