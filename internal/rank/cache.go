// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rank

import (
	"strings"
	"sync"
	"time"

	"github.com/pdiddy/pubengine/pkg/types"
)

type cacheEntry struct {
	results  []types.RankedResult
	inserted time.Time
}

// Cache is a bounded, time-boxed result cache keyed by normalized query
// text. Entries expire after the configured TTL. When the cache is full the
// entry with the oldest insertion timestamp is evicted — oldest by
// insertion time, not least-recently-used; callers depend on this exact
// rule.
type Cache struct {
	mu      sync.Mutex
	ttl     time.Duration
	max     int
	entries map[string]cacheEntry

	// now is replaceable in tests.
	now func() time.Time
}

// NewCache returns an empty cache with the configured TTL and capacity.
// Non-positive values fall back to the defaults (60s, 128).
func NewCache(cfg types.CacheConfig) *Cache {
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 60 * time.Second
	}
	limit := cfg.MaxEntries
	if limit <= 0 {
		limit = 128
	}
	return &Cache{
		ttl:     ttl,
		max:     limit,
		entries: make(map[string]cacheEntry, limit),
		now:     time.Now,
	}
}

// Key normalizes a query into its cache key.
func Key(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

// Get returns the cached results for key, expiring the entry first when it
// has outlived the TTL.
func (c *Cache) Get(key string) ([]types.RankedResult, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().Sub(entry.inserted) > c.ttl {
		delete(c.entries, key)
		return nil, false
	}
	return entry.results, true
}

// Set stores results under key. When the cache is at capacity the entry
// with the smallest insertion timestamp is removed first.
func (c *Cache) Set(key string, results []types.RankedResult) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.entries) >= c.max {
		var oldestKey string
		var oldest time.Time
		first := true
		for k, e := range c.entries {
			if first || e.inserted.Before(oldest) {
				oldestKey = k
				oldest = e.inserted
				first = false
			}
		}
		delete(c.entries, oldestKey)
	}

	c.entries[key] = cacheEntry{results: results, inserted: c.now()}
}

// Len returns the number of stored entries, including expired ones that
// have not been read since expiring.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
