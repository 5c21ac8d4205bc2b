// CineMatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package cache

import (
	"sync"
	"time"
)

// DefaultCleanupInterval is how often Cache sweeps expired entries.
const DefaultCleanupInterval = 5 * time.Minute

type entry[V any] struct {
	value     V
	expiresAt time.Time // zero means never
}

func (e entry[V]) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && now.After(e.expiresAt)
}

// Stats tracks cache performance.
type Stats struct {
	Hits        int64     `json:"hits"`
	Misses      int64     `json:"misses"`
	Evictions   int64     `json:"evictions"`
	TotalKeys   int64     `json:"total_keys"`
	LastCleanup time.Time `json:"last_cleanup,omitempty"`
}

// HitRate returns hits as a percentage of lookups.
func (s Stats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total) * 100
}

// statsRecorder is embedded by every implementation.
type statsRecorder struct {
	mu    sync.Mutex
	stats Stats
}

func (r *statsRecorder) hit() {
	r.mu.Lock()
	r.stats.Hits++
	r.mu.Unlock()
}

func (r *statsRecorder) miss() {
	r.mu.Lock()
	r.stats.Misses++
	r.mu.Unlock()
}

func (r *statsRecorder) evicted(n int64) {
	r.mu.Lock()
	r.stats.Evictions += n
	r.mu.Unlock()
}

func (r *statsRecorder) snapshot(keys int) Stats {
	r.mu.Lock()
	defer r.mu.Unlock()
	s := r.stats
	s.TotalKeys = int64(keys)
	return s
}

// Cache is a thread-safe map cache with a default TTL. A TTL <= 0 disables
// expiry, which suits data that is loaded once per process.
type Cache[V any] struct {
	mu      sync.RWMutex
	entries map[string]entry[V]
	ttl     time.Duration
	rec     statsRecorder

	stop      chan struct{}
	closeOnce sync.Once
	done      chan struct{}
}

// New creates a Cache. When ttl > 0 a goroutine sweeps expired entries every
// DefaultCleanupInterval until Close is called.
func New[V any](ttl time.Duration) *Cache[V] {
	return newWithInterval[V](ttl, DefaultCleanupInterval)
}

func newWithInterval[V any](ttl, interval time.Duration) *Cache[V] {
	c := &Cache[V]{
		entries: make(map[string]entry[V]),
		ttl:     ttl,
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
	if ttl > 0 && interval > 0 {
		go c.cleanupLoop(interval)
	} else {
		close(c.done)
	}
	return c
}

// Get returns the value for key if present and unexpired.
func (c *Cache[V]) Get(key string) (V, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		c.rec.miss()
		var zero V
		return zero, false
	}
	if e.expired(time.Now()) {
		c.mu.Lock()
		// Re-check: a concurrent Set may have refreshed the entry.
		if cur, still := c.entries[key]; still && cur.expired(time.Now()) {
			delete(c.entries, key)
			c.rec.evicted(1)
		}
		c.mu.Unlock()
		c.rec.miss()
		var zero V
		return zero, false
	}

	c.rec.hit()
	return e.value, true
}

// Set stores value under key with the default TTL.
func (c *Cache[V]) Set(key string, value V) {
	c.SetWithTTL(key, value, c.ttl)
}

// SetWithTTL stores value under key. ttl <= 0 stores it without expiry.
func (c *Cache[V]) SetWithTTL(key string, value V, ttl time.Duration) {
	e := entry[V]{value: value}
	if ttl > 0 {
		e.expiresAt = time.Now().Add(ttl)
	}
	c.mu.Lock()
	c.entries[key] = e
	c.mu.Unlock()
}

// Delete removes key.
func (c *Cache[V]) Delete(key string) {
	c.mu.Lock()
	_, ok := c.entries[key]
	delete(c.entries, key)
	c.mu.Unlock()
	if ok {
		c.rec.evicted(1)
	}
}

// Clear removes every entry.
func (c *Cache[V]) Clear() {
	c.mu.Lock()
	n := int64(len(c.entries))
	c.entries = make(map[string]entry[V])
	c.mu.Unlock()
	c.rec.evicted(n)
}

// Len returns the number of stored entries, expired ones included until swept.
func (c *Cache[V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// GetStats returns a snapshot of the counters.
func (c *Cache[V]) GetStats() Stats {
	return c.rec.snapshot(c.Len())
}

// Close stops the cleanup goroutine and waits for it to exit.
func (c *Cache[V]) Close() {
	c.closeOnce.Do(func() { close(c.stop) })
	<-c.done
}

func (c *Cache[V]) cleanupLoop(interval time.Duration) {
	defer close(c.done)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-c.stop:
			return
		case <-ticker.C:
			c.cleanup()
		}
	}
}

func (c *Cache[V]) cleanup() {
	now := time.Now()
	var n int64
	c.mu.Lock()
	for key, e := range c.entries {
		if e.expired(now) {
			delete(c.entries, key)
			n++
		}
	}
	c.mu.Unlock()

	c.rec.mu.Lock()
	c.rec.stats.Evictions += n
	c.rec.stats.LastCleanup = now
	c.rec.mu.Unlock()
}
