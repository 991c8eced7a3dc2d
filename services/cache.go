package services

import (
	"sync"
	"time"
)

type cacheEntry struct {
	val string
	at  time.Time
}

// Cache is a keyed in-process memoization with a fixed TTL. Staleness is
// tolerable for what it holds, so there is no cross-process coordination.
type Cache struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]cacheEntry
}

func NewCache(ttl time.Duration) *Cache {
	return &Cache{ttl: ttl, entries: make(map[string]cacheEntry)}
}

func (c *Cache) Get(key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.entries[key]
	if !ok || time.Since(entry.at) > c.ttl {
		return "", false
	}
	return entry.val, true
}

func (c *Cache) Set(key, val string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = cacheEntry{val: val, at: time.Now()}
}
