// CineMatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package cache

import (
	"fmt"
	"sync"
	"testing"
	"time"
)

func TestCacheGetSet(t *testing.T) {
	t.Parallel()

	c := New[[]int](0)
	defer c.Close()

	if _, ok := c.Get("genre:comedy:10"); ok {
		t.Fatal("Get on empty cache returned ok")
	}
	c.Set("genre:comedy:10", []int{2, 1})

	got, ok := c.Get("genre:comedy:10")
	if !ok || len(got) != 2 || got[0] != 2 {
		t.Errorf("Get() = %v, %v, want [2 1], true", got, ok)
	}

	stats := c.GetStats()
	if stats.Hits != 1 || stats.Misses != 1 || stats.TotalKeys != 1 {
		t.Errorf("stats = %+v, want 1 hit, 1 miss, 1 key", stats)
	}
	if rate := stats.HitRate(); rate != 50 {
		t.Errorf("HitRate() = %v, want 50", rate)
	}
}

func TestCacheExpiry(t *testing.T) {
	t.Parallel()

	c := New[string](time.Hour)
	defer c.Close()

	c.SetWithTTL("short", "v", time.Millisecond)
	c.Set("long", "v")
	time.Sleep(5 * time.Millisecond)

	if _, ok := c.Get("short"); ok {
		t.Error("expired entry returned")
	}
	if _, ok := c.Get("long"); !ok {
		t.Error("unexpired entry missing")
	}
	if ev := c.GetStats().Evictions; ev != 1 {
		t.Errorf("Evictions = %d, want 1", ev)
	}
}

func TestCacheCleanupLoop(t *testing.T) {
	t.Parallel()

	c := newWithInterval[int](time.Millisecond, 2*time.Millisecond)
	c.Set("a", 1)

	deadline := time.Now().Add(time.Second)
	for c.Len() > 0 && time.Now().Before(deadline) {
		time.Sleep(2 * time.Millisecond)
	}
	c.Close()

	if c.Len() != 0 {
		t.Errorf("Len() = %d after cleanup, want 0", c.Len())
	}
	if c.GetStats().LastCleanup.IsZero() {
		t.Error("LastCleanup not recorded")
	}
}

func TestCacheCloseIdempotent(t *testing.T) {
	t.Parallel()

	c := New[int](time.Minute)
	c.Close()
	c.Close()
}

func TestCacheDeleteClear(t *testing.T) {
	t.Parallel()

	c := New[int](0)
	defer c.Close()

	c.Set("a", 1)
	c.Set("b", 2)
	c.Delete("a")
	c.Delete("missing")
	if _, ok := c.Get("a"); ok {
		t.Error("deleted key still present")
	}
	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len() = %d after Clear, want 0", c.Len())
	}
	if ev := c.GetStats().Evictions; ev != 2 {
		t.Errorf("Evictions = %d, want 2", ev)
	}
}

func TestCacheConcurrentAccess(t *testing.T) {
	t.Parallel()

	c := New[int](time.Minute)
	defer c.Close()

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				key := fmt.Sprintf("k%d", i%10)
				c.Set(key, w)
				c.Get(key)
			}
		}(w)
	}
	wg.Wait()

	if c.Len() != 10 {
		t.Errorf("Len() = %d, want 10", c.Len())
	}
	if s := c.GetStats(); s.Hits+s.Misses != 1600 {
		t.Errorf("lookups = %d, want 1600", s.Hits+s.Misses)
	}
}

func TestNewCacher(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     CacheConfig
		wantErr bool
	}{
		{"default", CacheConfig{}, false},
		{"ttl", CacheConfig{Type: CacheTypeTTL, TTL: time.Minute}, false},
		{"lru", CacheConfig{Type: CacheTypeLRU, Capacity: 4}, false},
		{"unknown", CacheConfig{Type: "lfu"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c, err := NewCacher[string](tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewCacher() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			defer c.Close()
			c.Set("k", "v")
			if v, ok := c.Get("k"); !ok || v != "v" {
				t.Errorf("Get() = %q, %v, want v, true", v, ok)
			}
		})
	}
}
