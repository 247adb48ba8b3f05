package utils

import (
	"context"
	"fmt"
	"time"

	"raphtravel/config"

	"github.com/go-redis/redis/v8"
)

// NewCacheClient builds the generic Redis cache client used for provider
// search-result and live-price caching.
func NewCacheClient(cfg *config.Config) (*redis.Client, error) {
	return newRedisClient(cfg, cfg.RedisCacheDB)
}

// NewAuthCacheClient builds the dedicated Redis client for session token
// hash caching used by the auth middleware.
func NewAuthCacheClient(cfg *config.Config) (*redis.Client, error) {
	return newRedisClient(cfg, cfg.RedisAuthDB)
}

func newRedisClient(cfg *config.Config, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis (db %d): %w", db, err)
	}
	return client, nil
}
