package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/stockroom/inventory-api/internal/core/domain"
)

const defaultCacheTTL = 5 * time.Minute

// ProductCache is a read-through cache for product lookups by id.
// Key format: product:<id>
type ProductCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewProductCache creates a ProductCache wrapping the given Redis client.
// A non-positive ttl falls back to the default.
func NewProductCache(client *redis.Client, ttl time.Duration) *ProductCache {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &ProductCache{client: client, ttl: ttl}
}

// Get returns the cached product and whether the lookup was a hit.
// A missing key is a miss, not an error.
func (c *ProductCache) Get(ctx context.Context, id string) (*domain.Product, bool, error) {
	raw, err := c.client.Get(ctx, c.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cache get: %w", err)
	}

	var p domain.Product
	if err := json.Unmarshal(raw, &p); err != nil {
		// Corrupt entry: drop it and treat as a miss.
		_ = c.client.Del(ctx, c.key(id)).Err()
		return nil, false, nil
	}
	return &p, true, nil
}

// Set stores the product for the configured TTL.
func (c *ProductCache) Set(ctx context.Context, p *domain.Product) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return c.client.Set(ctx, c.key(p.ID), raw, c.ttl).Err()
}

// Invalidate drops the cached entry after a mutation.
func (c *ProductCache) Invalidate(ctx context.Context, id string) error {
	return c.client.Del(ctx, c.key(id)).Err()
}

func (c *ProductCache) key(id string) string {
	return "product:" + id
}
