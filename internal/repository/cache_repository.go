package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// CacheRepository stores JSON encoded read models in Redis.
type CacheRepository interface {
	// Get decodes the cached value into dest and reports whether it was present.
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	// DeletePrefix drops every key starting with prefix.
	DeletePrefix(ctx context.Context, prefix string) error
}

type redisCacheRepository struct {
	redisClient *redis.Client
}

// NewCacheRepository returns a Redis cache, or a no-op cache when redisClient is nil.
func NewCacheRepository(redisClient *redis.Client) CacheRepository {
	if redisClient == nil {
		return noopCache{}
	}
	return &redisCacheRepository{redisClient: redisClient}
}

func (r *redisCacheRepository) Get(ctx context.Context, key string, dest any) (bool, error) {
	data, err := r.redisClient.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to get cache key %s: %w", key, err)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("failed to unmarshal cache key %s: %w", key, err)
	}
	return true, nil
}

func (r *redisCacheRepository) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal cache key %s: %w", key, err)
	}
	if err := r.redisClient.Set(ctx, key, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set cache key %s: %w", key, err)
	}
	return nil
}

func (r *redisCacheRepository) DeletePrefix(ctx context.Context, prefix string) error {
	iter := r.redisClient.Scan(ctx, 0, prefix+"*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan cache prefix %s: %w", prefix, err)
	}
	if len(keys) == 0 {
		return nil
	}
	return r.redisClient.Del(ctx, keys...).Err()
}

type noopCache struct{}

func (noopCache) Get(context.Context, string, any) (bool, error)       { return false, nil }
func (noopCache) Set(context.Context, string, any, time.Duration) error { return nil }
func (noopCache) DeletePrefix(context.Context, string) error            { return nil }
