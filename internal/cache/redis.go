package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/Kibe27/flightsasa/config"
	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	client     *redis.Client
	pricingTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, pricingTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:     redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		pricingTTL: pricingTTL,
	}
}

// GetPricingLevel returns the cached pricing level, or 0 on a cache miss.
func (c *RedisCache) GetPricingLevel(ctx context.Context) (int, error) {
	val, err := c.client.Get(ctx, pricingKey()).Result()
	if err != nil {
		if err == redis.Nil {
			return 0, nil
		}
		return 0, err
	}
	level, err := strconv.Atoi(val)
	if err != nil {
		return 0, err
	}
	return level, nil
}

func (c *RedisCache) SetPricingLevel(ctx context.Context, level int) error {
	return c.client.Set(ctx, pricingKey(), strconv.Itoa(level), c.pricingTTL).Err()
}

func (c *RedisCache) InvalidatePricingLevel(ctx context.Context) error {
	return c.client.Del(ctx, pricingKey()).Err()
}

// AcquireBookingLock guards against double submission of the same displayed option.
func (c *RedisCache) AcquireBookingLock(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	return c.client.SetNX(ctx, bookingLockKey(key), "locked", ttl).Result()
}

func (c *RedisCache) ReleaseBookingLock(ctx context.Context, key string) error {
	return c.client.Del(ctx, bookingLockKey(key)).Err()
}

func pricingKey() string {
	return "cache:pricing_level"
}

func bookingLockKey(key string) string {
	return fmt.Sprintf("lock:booking:%s", key)
}
