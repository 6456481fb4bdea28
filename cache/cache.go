// Package cache provides the process-local TTL store shared by the
// availability engine and the booking orchestrator. It is deliberately
// unaware of booking semantics: keys are opaque strings, values are opaque
// payloads. There is no cross-instance coherence; TTLs are kept short for
// exactly that reason.
package cache

import (
	"sort"
	"strings"
	"sync"
	"time"
)

type entry struct {
	value     any
	createdAt time.Time
	expiresAt time.Time
}

// Stats is a point-in-time snapshot of the store.
type Stats struct {
	Entries  int `json:"entries"`
	Capacity int `json:"capacity"`
	Hits     int `json:"hits"`
	Misses   int `json:"misses"`
}

// Cache is a capacity-bounded in-memory key/value store with per-entry
// expiry. Concurrent use is safe; overlapping writes to one key resolve
// last-write-wins.
type Cache struct {
	mu       sync.RWMutex
	items    map[string]entry
	capacity int
	hits     int
	misses   int

	// now is swappable so tests can drive expiry deterministically.
	now func() time.Time
}

const DefaultCapacity = 500

// New returns an empty cache bounded to capacity entries. A capacity of
// zero or less falls back to DefaultCapacity.
func New(capacity int) *Cache {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Cache{
		items:    make(map[string]entry),
		capacity: capacity,
		now:      time.Now,
	}
}

// Get returns the live value for key. An expired entry behaves exactly
// like a miss and is removed as a side effect, so stale entries never
// accumulate as tombstones.
func (c *Cache) Get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.items[key]
	if !ok {
		c.misses++
		return nil, false
	}
	if c.now().After(e.expiresAt) {
		delete(c.items, key)
		c.misses++
		return nil, false
	}
	c.hits++
	return e.value, true
}

// Set stores value under key for ttl. When the store is at capacity the
// oldest ~10% of entries by creation time are evicted first; population
// recency beats access recency because the workload repopulates hot keys
// every TTL window anyway.
func (c *Cache) Set(key string, value any, ttl time.Duration) {
	now := c.now()
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.items[key]; !exists && len(c.items) >= c.capacity {
		c.evictOldestLocked()
	}
	c.items[key] = entry{
		value:     value,
		createdAt: now,
		expiresAt: now.Add(ttl),
	}
}

// evictOldestLocked removes the oldest 10% of entries (at least one) by
// creation time. Caller holds the write lock.
func (c *Cache) evictOldestLocked() {
	n := len(c.items) / 10
	if n < 1 {
		n = 1
	}

	type aged struct {
		key       string
		createdAt time.Time
	}
	all := make([]aged, 0, len(c.items))
	for k, e := range c.items {
		all = append(all, aged{key: k, createdAt: e.createdAt})
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].createdAt.Before(all[j].createdAt)
	})
	for i := 0; i < n && i < len(all); i++ {
		delete(c.items, all[i].key)
	}
}

// Invalidate removes key and reports whether it was present.
func (c *Cache) Invalidate(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.items[key]
	if ok {
		delete(c.items, key)
	}
	return ok
}

// InvalidateByPrefix removes every entry whose key starts with prefix and
// returns the number removed. Key namespaces are colon-delimited
// ("availability:12:2026-03-01"), so invalidating "availability:12:" clears
// one game's dates without touching pricing or listing entries.
func (c *Cache) InvalidateByPrefix(prefix string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	count := 0
	for k := range c.items {
		if strings.HasPrefix(k, prefix) {
			delete(c.items, k)
			count++
		}
	}
	return count
}

// Clear empties the store.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make(map[string]entry)
}

// Prune proactively removes expired entries and returns how many were
// dropped. Get already deletes lazily, so Prune exists for callers that
// want to bound memory between reads.
func (c *Cache) Prune() int {
	now := c.now()
	c.mu.Lock()
	defer c.mu.Unlock()
	count := 0
	for k, e := range c.items {
		if now.After(e.expiresAt) {
			delete(c.items, k)
			count++
		}
	}
	return count
}

// Stats reports current occupancy and hit counters.
func (c *Cache) Stats() Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return Stats{
		Entries:  len(c.items),
		Capacity: c.capacity,
		Hits:     c.hits,
		Misses:   c.misses,
	}
}
