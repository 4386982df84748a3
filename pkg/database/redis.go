package database

import (
	"context"
	"time"

	"bizops-dashboard/internal/config"
	"bizops-dashboard/pkg/log"

	"github.com/go-redis/redis/v8"
)

// RDB stays nil when no Redis address is configured.
var RDB *redis.Client

// InitRedis connects RDB. A failed ping is logged and leaves RDB nil so the
// dashboard keeps serving without its cache.
func InitRedis(cfg config.RedisConfig) {
	if cfg.Addr == "" {
		log.Info("Redis not configured, cache disabled")
		return
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Error("failed to connect to redis", err)
		_ = client.Close()
		return
	}
	RDB = client
	log.Info("Redis client connected successfully")
}
