package catalog

import (
	"context"
	"time"

	"dispatch/internal/core/ports"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const keyPrefix = "catalog:sku:"

// CachedClient keeps SKU activity in Redis for ttl. Redis failures degrade
// to calling the catalog directly.
type CachedClient struct {
	next   ports.CatalogClient
	rdb    redis.UniversalClient
	ttl    time.Duration
	logger *zap.Logger
}

func NewCachedClient(next ports.CatalogClient, rdb redis.UniversalClient, ttl time.Duration, logger *zap.Logger) *CachedClient {
	return &CachedClient{
		next:   next,
		rdb:    rdb,
		ttl:    ttl,
		logger: logger.With(zap.String("component", "catalog-cache")),
	}
}

func (c *CachedClient) ActiveSKUs(ctx context.Context, skus []string) (map[string]bool, error) {
	result := make(map[string]bool, len(skus))
	if len(skus) == 0 {
		return result, nil
	}

	misses := c.lookup(ctx, skus, result)
	if len(misses) == 0 {
		return result, nil
	}

	fetched, err := c.next.ActiveSKUs(ctx, misses)
	if err != nil {
		return nil, err
	}
	for sku, active := range fetched {
		result[sku] = active
	}
	c.store(ctx, fetched)
	return result, nil
}

func (c *CachedClient) lookup(ctx context.Context, skus []string, into map[string]bool) []string {
	keys := make([]string, len(skus))
	for i, sku := range skus {
		keys[i] = keyPrefix + sku
	}

	values, err := c.rdb.MGet(ctx, keys...).Result()
	if err != nil {
		c.logger.Warn("sku cache read failed", zap.Error(err))
		return skus
	}

	var misses []string
	for i, v := range values {
		switch v {
		case "1":
			into[skus[i]] = true
		case "0":
			into[skus[i]] = false
		default:
			misses = append(misses, skus[i])
		}
	}
	return misses
}

func (c *CachedClient) store(ctx context.Context, fetched map[string]bool) {
	_, err := c.rdb.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for sku, active := range fetched {
			value := "0"
			if active {
				value = "1"
			}
			pipe.Set(ctx, keyPrefix+sku, value, c.ttl)
		}
		return nil
	})
	if err != nil {
		c.logger.Warn("sku cache write failed", zap.Error(err))
	}
}
