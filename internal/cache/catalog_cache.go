package cache

import (
	"context"
	"encoding/json"
	"time"

	dom "printshop/internal/domain"

	"github.com/redis/go-redis/v9"
)

const keyProducts = "catalog:products"

// CatalogCache caches the product list in Redis. Any product write
// invalidates it.
type CatalogCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewCatalogCache returns a new CatalogCache.
func NewCatalogCache(rdb *redis.Client, ttl time.Duration) *CatalogCache {
	return &CatalogCache{rdb: rdb, ttl: ttl}
}

// GetProducts returns the cached product list or nil if miss.
func (c *CatalogCache) GetProducts(ctx context.Context) ([]dom.Product, error) {
	b, err := c.rdb.Get(ctx, keyProducts).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var list []dom.Product
	if err := json.Unmarshal(b, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// SetProducts stores the product list in cache.
func (c *CatalogCache) SetProducts(ctx context.Context, list []dom.Product) error {
	b, err := json.Marshal(list)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, keyProducts, b, c.ttl).Err()
}

// Invalidate removes the cached list (cache invalidation on write).
func (c *CatalogCache) Invalidate(ctx context.Context) error {
	return c.rdb.Del(ctx, keyProducts).Err()
}
