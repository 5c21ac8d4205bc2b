// CineMatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package cache

import (
	"sync"
	"time"
)

type lruNode[V any] struct {
	key       string
	value     V
	expiresAt time.Time
	prev      *lruNode[V]
	next      *lruNode[V]
}

// LRUCache is a thread-safe cache bounded by entry count. The least recently
// used entry is evicted when capacity is exceeded. Entries also expire after
// ttl when ttl > 0.
//
// A doubly linked list with sentinels keeps ordering; head.next is the most
// recently used entry and tail.prev the least.
type LRUCache[V any] struct {
	mu       sync.RWMutex
	capacity int
	ttl      time.Duration
	items    map[string]*lruNode[V]
	head     *lruNode[V]
	tail     *lruNode[V]
	rec      statsRecorder
}

// NewLRUCache creates an LRU cache. capacity <= 0 defaults to 1000.
func NewLRUCache[V any](capacity int, ttl time.Duration) *LRUCache[V] {
	if capacity <= 0 {
		capacity = 1000
	}
	c := &LRUCache[V]{
		capacity: capacity,
		ttl:      ttl,
		items:    make(map[string]*lruNode[V], capacity),
		head:     &lruNode[V]{},
		tail:     &lruNode[V]{},
	}
	c.head.next = c.tail
	c.tail.prev = c.head
	return c
}

// Get returns the value for key and marks it most recently used. Recency
// changes the list, so Get takes the write lock.
func (c *LRUCache[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero V
	n, ok := c.items[key]
	if !ok {
		c.rec.miss()
		return zero, false
	}
	if !n.expiresAt.IsZero() && time.Now().After(n.expiresAt) {
		c.remove(n)
		c.rec.evicted(1)
		c.rec.miss()
		return zero, false
	}
	c.moveToFront(n)
	c.rec.hit()
	return n.value, true
}

// Set stores value under key with the default TTL.
func (c *LRUCache[V]) Set(key string, value V) {
	c.SetWithTTL(key, value, c.ttl)
}

// SetWithTTL stores value under key, evicting the least recently used entry
// when over capacity.
func (c *LRUCache[V]) SetWithTTL(key string, value V, ttl time.Duration) {
	var expiresAt time.Time
	if ttl > 0 {
		expiresAt = time.Now().Add(ttl)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if n, ok := c.items[key]; ok {
		n.value = value
		n.expiresAt = expiresAt
		c.moveToFront(n)
		return
	}

	n := &lruNode[V]{key: key, value: value, expiresAt: expiresAt}
	c.pushFront(n)
	c.items[key] = n
	for len(c.items) > c.capacity {
		c.remove(c.tail.prev)
		c.rec.evicted(1)
	}
}

// Delete removes key.
func (c *LRUCache[V]) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if n, ok := c.items[key]; ok {
		c.remove(n)
		c.rec.evicted(1)
	}
}

// Clear removes every entry.
func (c *LRUCache[V]) Clear() {
	c.mu.Lock()
	n := int64(len(c.items))
	c.items = make(map[string]*lruNode[V], c.capacity)
	c.head.next = c.tail
	c.tail.prev = c.head
	c.mu.Unlock()
	c.rec.evicted(n)
}

// Len returns the number of stored entries.
func (c *LRUCache[V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// GetStats returns a snapshot of the counters.
func (c *LRUCache[V]) GetStats() Stats {
	return c.rec.snapshot(c.Len())
}

// Close is a no-op; LRUCache runs no goroutines.
func (c *LRUCache[V]) Close() {}

func (c *LRUCache[V]) pushFront(n *lruNode[V]) {
	n.prev = c.head
	n.next = c.head.next
	c.head.next.prev = n
	c.head.next = n
}

func (c *LRUCache[V]) unlink(n *lruNode[V]) {
	n.prev.next = n.next
	n.next.prev = n.prev
}

func (c *LRUCache[V]) moveToFront(n *lruNode[V]) {
	c.unlink(n)
	c.pushFront(n)
}

func (c *LRUCache[V]) remove(n *lruNode[V]) {
	c.unlink(n)
	delete(c.items, n.key)
}
