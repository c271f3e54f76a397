package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tair/wastesmart-storefront/internal/catalog/domain"
	"github.com/tair/wastesmart-storefront/pkg/logger"
)

const keyPrefix = "catalog:"

// Source is everything the catalog reads and writes through
type Source interface {
	domain.ProductRepository
	domain.VendorRepository
}

// CachedCatalog serves catalog reads from Redis for ttl and drops every
// cached entry after a successful write. Redis failures fall through to next.
type CachedCatalog struct {
	next  Source
	redis redis.Cmdable
	ttl   time.Duration
}

func NewCachedCatalog(next Source, redisClient redis.Cmdable, ttl time.Duration) *CachedCatalog {
	return &CachedCatalog{next: next, redis: redisClient, ttl: ttl}
}

func (c *CachedCatalog) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return cached(ctx, c, "products", func() ([]domain.Product, error) {
		return c.next.ListProducts(ctx)
	})
}

func (c *CachedCatalog) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	return cached(ctx, c, fmt.Sprintf("product:%d", id), func() (*domain.Product, error) {
		return c.next.GetProduct(ctx, id)
	})
}

func (c *CachedCatalog) ListVendors(ctx context.Context) ([]domain.Vendor, error) {
	return cached(ctx, c, "vendors", func() ([]domain.Vendor, error) {
		return c.next.ListVendors(ctx)
	})
}

func (c *CachedCatalog) GetVendor(ctx context.Context, id int64) (*domain.Vendor, error) {
	return cached(ctx, c, fmt.Sprintf("vendor:%d", id), func() (*domain.Vendor, error) {
		return c.next.GetVendor(ctx, id)
	})
}

func (c *CachedCatalog) ListVendorProducts(ctx context.Context, vendorID int64) ([]domain.Product, error) {
	return cached(ctx, c, fmt.Sprintf("vendor:%d:products", vendorID), func() ([]domain.Product, error) {
		return c.next.ListVendorProducts(ctx, vendorID)
	})
}

func (c *CachedCatalog) CreateProduct(ctx context.Context, in domain.ProductInput) (*domain.Product, error) {
	p, err := c.next.CreateProduct(ctx, in)
	if err == nil {
		c.invalidate(ctx)
	}
	return p, err
}

func (c *CachedCatalog) UpdateProduct(ctx context.Context, id int64, in domain.ProductInput) (*domain.Product, error) {
	p, err := c.next.UpdateProduct(ctx, id, in)
	if err == nil {
		c.invalidate(ctx)
	}
	return p, err
}

func (c *CachedCatalog) DeleteProduct(ctx context.Context, id int64) error {
	err := c.next.DeleteProduct(ctx, id)
	if err == nil {
		c.invalidate(ctx)
	}
	return err
}

// invalidate removes every catalog key
func (c *CachedCatalog) invalidate(ctx context.Context) {
	iter := c.redis.Scan(ctx, 0, keyPrefix+"*", 0).Iterator()

	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		logger.Warn(ctx).Err(err).Msg("Failed to scan catalog cache")
		return
	}
	if len(keys) == 0 {
		return
	}
	if err := c.redis.Del(ctx, keys...).Err(); err != nil {
		logger.Warn(ctx).Err(err).Int("keys", len(keys)).Msg("Failed to invalidate catalog cache")
		return
	}
	logger.Debug(ctx).Int("keys", len(keys)).Msg("Catalog cache invalidated")
}

// cached returns the value under key or loads, stores and returns it.
// Load errors are never cached.
func cached[T any](ctx context.Context, c *CachedCatalog, key string, load func() (T, error)) (T, error) {
	key = keyPrefix + key

	data, err := c.redis.Get(ctx, key).Bytes()
	if err == nil {
		var v T
		if jerr := json.Unmarshal(data, &v); jerr == nil {
			logger.Debug(ctx).Str("cache_key", key).Msg("Cache hit")
			return v, nil
		}
		logger.Warn(ctx).Str("cache_key", key).Msg("Discarding undecodable cache entry")
	} else if !errors.Is(err, redis.Nil) {
		logger.Warn(ctx).Err(err).Str("cache_key", key).Msg("Catalog cache unavailable")
	}

	v, err := load()
	if err != nil {
		return v, err
	}

	if data, err := json.Marshal(v); err == nil {
		if err := c.redis.Set(ctx, key, data, c.ttl).Err(); err != nil {
			logger.Warn(ctx).Err(err).Str("cache_key", key).Msg("Failed to cache catalog response")
		}
	}
	return v, nil
}
