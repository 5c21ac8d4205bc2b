// CineMatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

// Package cache provides the generic in-memory caches used to memoize genre
// rankings.
//
// Two implementations satisfy Cacher:
//
//   - Cache: map plus TTL, swept by a background goroutine
//   - LRUCache: bounded by entry count, least recently used evicted first
//
// Each instance guards its entries with a single sync.RWMutex. Lookups take
// the read lock; Set, Delete, Clear and expiry take the write lock. Hit and
// miss counters sit behind their own mutex so readers never wait on stats.
//
// # Lifecycle
//
// A cache is owned by whoever created it. Cache starts a cleanup goroutine
// when it has a positive TTL; Close stops it. Close is idempotent and safe to
// call on every implementation.
//
//	c := cache.NewCacher[[]Ranking](cache.CacheConfig{Type: cache.CacheTypeTTL, TTL: time.Hour})
//	defer c.Close()
package cache
