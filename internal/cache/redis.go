package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/PrimeCutStudio/salon-booking/internal/models"
)

const windowsKey = "cache:availability_windows"

// RedisCache holds the open-windows listing so the public availability
// endpoint does not hit Postgres on every poll. Any window mutation
// invalidates the whole key; the TTL bounds staleness when invalidation
// is missed.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func New(addr, password string, db int, ttl time.Duration) *RedisCache {
	return &RedisCache{
		client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
			DB:       db,
		}),
		ttl: ttl,
	}
}

func (c *RedisCache) GetWindows(ctx context.Context) ([]models.ServiceAvailability, error) {
	data, err := c.client.Get(ctx, windowsKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var windows []models.ServiceAvailability
	if err := json.Unmarshal(data, &windows); err != nil {
		return nil, err
	}
	return windows, nil
}

func (c *RedisCache) SetWindows(ctx context.Context, windows []models.ServiceAvailability) error {
	payload, err := json.Marshal(windows)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, windowsKey, payload, c.ttl).Err()
}

func (c *RedisCache) InvalidateWindows(ctx context.Context) error {
	return c.client.Del(ctx, windowsKey).Err()
}
