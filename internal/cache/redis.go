// Package cache provides the Redis-backed catalog cache.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/voyago/travel_booking_app/internal/core/domain"
)

// RedisCache caches catalog listings per booking type. A cache miss is
// reported as (nil, nil) so callers fall through to the static catalog.
type RedisCache struct {
	client     *redis.Client
	catalogTTL time.Duration
}

// NewRedisCache connects to Redis and returns the cache.
func NewRedisCache(addr, password string, db int, catalogTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:     redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db}),
		catalogTTL: catalogTTL,
	}
}

// GetProducts returns the cached listing for bookingType, or (nil, nil) on a
// miss.
func (c *RedisCache) GetProducts(ctx context.Context, bookingType domain.BookingType) ([]domain.Product, error) {
	data, err := c.client.Get(ctx, catalogKey(bookingType)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var products []domain.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// SetProducts stores the listing for bookingType with the configured TTL.
func (c *RedisCache) SetProducts(ctx context.Context, bookingType domain.BookingType, products []domain.Product) error {
	payload, err := json.Marshal(products)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, catalogKey(bookingType), payload, c.catalogTTL).Err()
}

// Ping verifies the connection.
func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close releases the client's resources.
func (c *RedisCache) Close() error {
	return c.client.Close()
}

func catalogKey(bookingType domain.BookingType) string {
	return fmt.Sprintf("cache:catalog:%s", bookingType)
}
