package cache

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"elementsrpc/internal/config"
)

// Cache defines the interface for RPC result caching
// This interface allows for different implementations (in-memory, Redis, etc.)
type Cache interface {
	// Get retrieves a cached result by key
	// Returns the cached data and true if found, nil and false otherwise
	Get(ctx context.Context, key string) ([]byte, bool)

	// Set stores a result in the cache with the given key
	Set(ctx context.Context, key string, value []byte)

	// Close releases any resources held by the cache
	Close() error
}

// New creates the cache backend described by cfg.
// A nil or disabled config yields a NoopCache.
func New(cfg *config.CacheConfig, logger zerolog.Logger) (Cache, error) {
	if cfg == nil || !cfg.Enabled {
		return NewNoopCache(), nil
	}

	switch cfg.Backend {
	case config.CacheBackendMemory:
		return NewMemoryCache(cfg.Size, cfg.GetTTLDuration())
	case config.CacheBackendRedis:
		return NewRedisCache(RedisConfig{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
			TTL:      cfg.GetTTLDuration(),
		}, logger), nil
	default:
		return nil, fmt.Errorf("unknown cache backend '%s'", cfg.Backend)
	}
}

// NoopCache is a cache that does nothing (used when caching is disabled)
type NoopCache struct{}

// NewNoopCache creates a new no-op cache
func NewNoopCache() *NoopCache {
	return &NoopCache{}
}

// Get always returns not found
func (nc *NoopCache) Get(ctx context.Context, key string) ([]byte, bool) {
	return nil, false
}

// Set does nothing
func (nc *NoopCache) Set(ctx context.Context, key string, value []byte) {}

// Close does nothing
func (nc *NoopCache) Close() error { return nil }
