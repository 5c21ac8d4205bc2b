// CineMatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package cache

import (
	"fmt"
	"time"
)

// Cacher is the interface both cache implementations satisfy, so the
// eviction strategy can be picked from configuration.
type Cacher[V any] interface {
	Get(key string) (V, bool)
	Set(key string, value V)
	SetWithTTL(key string, value V, ttl time.Duration)
	Delete(key string)
	Clear()
	Len() int
	GetStats() Stats
	Close()
}

// CacheType names a Cacher implementation.
type CacheType string

const (
	// CacheTypeTTL selects Cache.
	CacheTypeTTL CacheType = "ttl"

	// CacheTypeLRU selects LRUCache.
	CacheTypeLRU CacheType = "lru"
)

// CacheConfig selects and sizes a cache.
type CacheConfig struct {
	Type CacheType

	// TTL is the default entry lifetime; <= 0 means entries never expire.
	TTL time.Duration

	// Capacity bounds LRUCache. Ignored for TTL caches.
	Capacity int
}

// NewCacher builds the cache described by cfg. An empty Type selects TTL.
func NewCacher[V any](cfg CacheConfig) (Cacher[V], error) {
	switch cfg.Type {
	case CacheTypeTTL, "":
		return New[V](cfg.TTL), nil
	case CacheTypeLRU:
		return NewLRUCache[V](cfg.Capacity, cfg.TTL), nil
	default:
		return nil, fmt.Errorf("unknown cache type %q", cfg.Type)
	}
}

var (
	_ Cacher[int] = (*Cache[int])(nil)
	_ Cacher[int] = (*LRUCache[int])(nil)
)
