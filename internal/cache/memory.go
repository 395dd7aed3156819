package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// MemoryCache is an in-process LRU whose entries expire after a fixed TTL
type MemoryCache struct {
	lru *expirable.LRU[string, []byte]
}

// NewMemoryCache creates a MemoryCache holding at most size results
func NewMemoryCache(size int, ttl time.Duration) (*MemoryCache, error) {
	if size <= 0 {
		return nil, fmt.Errorf("memory cache size must be positive, got %d", size)
	}
	return &MemoryCache{lru: expirable.NewLRU[string, []byte](size, nil, ttl)}, nil
}

func (mc *MemoryCache) Get(_ context.Context, key string) ([]byte, bool) {
	return mc.lru.Get(key)
}

func (mc *MemoryCache) Set(_ context.Context, key string, value []byte) {
	mc.lru.Add(key, value)
}

// Len returns the number of entries, expired ones not yet swept included
func (mc *MemoryCache) Len() int {
	return mc.lru.Len()
}

// Close drops every entry
func (mc *MemoryCache) Close() error {
	mc.lru.Purge()
	return nil
}
