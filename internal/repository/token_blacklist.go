package repository

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

// TokenBlacklist remembers revoked tokens until they would have expired anyway.
type TokenBlacklist interface {
	Revoke(ctx context.Context, token string, ttl time.Duration) error
	IsRevoked(ctx context.Context, token string) (bool, error)
}

// NewTokenBlacklist returns a Redis backed blacklist, or a process-local one
// when redisClient is nil.
func NewTokenBlacklist(redisClient *redis.Client) TokenBlacklist {
	if redisClient == nil {
		return &memoryBlacklist{tokens: map[string]time.Time{}}
	}
	return &redisBlacklist{redisClient: redisClient}
}

type redisBlacklist struct {
	redisClient *redis.Client
}

func (b *redisBlacklist) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return b.redisClient.Set(ctx, "blacklist:"+token, "true", ttl).Err()
}

func (b *redisBlacklist) IsRevoked(ctx context.Context, token string) (bool, error) {
	n, err := b.redisClient.Exists(ctx, "blacklist:"+token).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

type memoryBlacklist struct {
	mu     sync.Mutex
	tokens map[string]time.Time
}

func (b *memoryBlacklist) Revoke(_ context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	now := time.Now()
	for t, exp := range b.tokens {
		if now.After(exp) {
			delete(b.tokens, t)
		}
	}
	b.tokens[token] = now.Add(ttl)
	return nil
}

func (b *memoryBlacklist) IsRevoked(_ context.Context, token string) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	exp, ok := b.tokens[token]
	return ok && time.Now().Before(exp), nil
}
