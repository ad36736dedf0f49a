// Package cache holds the read-through product cache used by the public
// catalog endpoints. Redis keeps single-product lookups off the database;
// singleflight collapses concurrent misses for the same product into one
// load.
package cache

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"golang.org/x/sync/singleflight"

	"github.com/ojohpeters/Farmers-marketplace/models"
)

const productTTL = 30 * time.Second

// ProductCache is safe to leave nil: a nil cache always forwards to the
// loader, so callers never guard for Redis being unconfigured.
type ProductCache struct {
	client *redis.Client
	group  singleflight.Group
}

func NewProductCache(client *redis.Client) *ProductCache {
	return &ProductCache{client: client}
}

func productKey(id uint) string {
	return "product:" + strconv.FormatUint(uint64(id), 10)
}

// Get returns the cached product or falls through to load, caching the
// result. Cache errors are treated as misses.
func (c *ProductCache) Get(ctx context.Context, id uint, load func() (*models.Product, error)) (*models.Product, error) {
	if c == nil || c.client == nil {
		return load()
	}

	if raw, err := c.client.Get(ctx, productKey(id)).Result(); err == nil {
		var p models.Product
		if json.Unmarshal([]byte(raw), &p) == nil {
			return &p, nil
		}
	}

	v, err, _ := c.group.Do(productKey(id), func() (interface{}, error) {
		p, err := load()
		if err != nil {
			return nil, err
		}
		if payload, err := json.Marshal(p); err == nil {
			c.client.Set(ctx, productKey(id), payload, productTTL)
		}
		return p, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*models.Product), nil
}

// Invalidate drops the cached entry after an admin edit or delete.
func (c *ProductCache) Invalidate(ctx context.Context, id uint) {
	if c == nil || c.client == nil {
		return
	}
	c.client.Del(ctx, productKey(id))
}
