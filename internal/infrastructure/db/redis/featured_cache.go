package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/hazellab/catalog-api/internal/api/metrics"
	"github.com/hazellab/catalog-api/internal/core/domain"
)

const (
	featuredKey = "catalog:featured"
	featuredTTL = 10 * time.Minute
)

// FeaturedCache keeps the featured product list in Redis so the storefront
// landing page does not hit Mongo on every request. Entries expire after
// featuredTTL and are invalidated eagerly on catalog mutations.
type FeaturedCache struct {
	client *redis.Client
}

// NewFeaturedCache creates a FeaturedCache wrapping the given Redis client.
func NewFeaturedCache(client *redis.Client) *FeaturedCache {
	return &FeaturedCache{client: client}
}

// Get returns the cached featured products. The second return value reports
// whether the cache held an entry.
func (c *FeaturedCache) Get(ctx context.Context) ([]*domain.Product, bool, error) {
	payload, err := c.client.Get(ctx, featuredKey).Bytes()
	if errors.Is(err, redis.Nil) {
		metrics.FeaturedCacheTotal.WithLabelValues("miss").Inc()
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("featured cache get: %w", err)
	}

	var products []*domain.Product
	if err := json.Unmarshal(payload, &products); err != nil {
		return nil, false, fmt.Errorf("featured cache decode: %w", err)
	}
	metrics.FeaturedCacheTotal.WithLabelValues("hit").Inc()
	return products, true, nil
}

// Set stores the featured product list, replacing any previous entry.
func (c *FeaturedCache) Set(ctx context.Context, products []*domain.Product) error {
	payload, err := json.Marshal(products)
	if err != nil {
		return fmt.Errorf("featured cache encode: %w", err)
	}
	if err := c.client.Set(ctx, featuredKey, payload, featuredTTL).Err(); err != nil {
		return fmt.Errorf("featured cache set: %w", err)
	}
	return nil
}

// Invalidate drops the cached entry so the next read repopulates from Mongo.
func (c *FeaturedCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, featuredKey).Err(); err != nil {
		return fmt.Errorf("featured cache invalidate: %w", err)
	}
	return nil
}
