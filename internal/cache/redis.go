package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// KeyPrefix namespaces every key written to Redis
const KeyPrefix = "elementsrpc:"

// RedisConfig for creating a new RedisCache
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// RedisCache stores results in Redis so several clients can share them.
// Redis failures are logged and treated as misses.
type RedisCache struct {
	rdb    redis.UniversalClient
	ttl    time.Duration
	logger zerolog.Logger
}

// NewRedisCache creates a RedisCache. No connection is made until first use.
func NewRedisCache(cfg RedisConfig, logger zerolog.Logger) *RedisCache {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	return NewRedisCacheFromClient(rdb, cfg.TTL, logger)
}

// NewRedisCacheFromClient wraps an existing Redis client
func NewRedisCacheFromClient(rdb redis.UniversalClient, ttl time.Duration, logger zerolog.Logger) *RedisCache {
	return &RedisCache{
		rdb:    rdb,
		ttl:    ttl,
		logger: logger.With().Str("component", "cache").Str("backend", "redis").Logger(),
	}
}

// Ping checks connectivity
func (rc *RedisCache) Ping(ctx context.Context) error {
	return rc.rdb.Ping(ctx).Err()
}

// Get retrieves a value from Redis
func (rc *RedisCache) Get(ctx context.Context, key string) ([]byte, bool) {
	data, err := rc.rdb.Get(ctx, KeyPrefix+key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			rc.logger.Warn().Err(err).Str("key", key).Msg("redis get failed")
		}
		return nil, false
	}
	return data, true
}

// Set stores a value in Redis with the configured TTL
func (rc *RedisCache) Set(ctx context.Context, key string, value []byte) {
	if err := rc.rdb.Set(ctx, KeyPrefix+key, value, rc.ttl).Err(); err != nil {
		rc.logger.Warn().Err(err).Str("key", key).Msg("redis set failed")
	}
}

// Close closes the Redis client
func (rc *RedisCache) Close() error {
	return rc.rdb.Close()
}
