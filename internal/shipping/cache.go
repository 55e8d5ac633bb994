package shipping

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var ErrCacheMiss = errors.New("cache miss")

// RegionCache stores reshaped region lists; the external lookup data
// changes rarely, so a TTL cache removes most provider round trips.
type RegionCache interface {
	Get(ctx context.Context, key string) ([]Region, error)
	Set(ctx context.Context, key string, regions []Region) error
}

type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client, ttl: 12 * time.Hour}
}

func (r *RedisCache) Get(ctx context.Context, key string) ([]Region, error) {
	data, err := r.client.Get(ctx, cacheKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	var regions []Region
	if err := json.Unmarshal(data, &regions); err != nil {
		return nil, fmt.Errorf("unmarshal regions failed: %w", err)
	}
	return regions, nil
}

func (r *RedisCache) Set(ctx context.Context, key string, regions []Region) error {
	data, err := json.Marshal(regions)
	if err != nil {
		return fmt.Errorf("marshal regions failed: %w", err)
	}
	if err := r.client.Set(ctx, cacheKey(key), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func cacheKey(key string) string {
	return "shipping:" + key
}
