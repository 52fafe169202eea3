// Package cache holds the ICache backends: an in-process TTL map and Redis.
package cache

import (
	"context"
	"strings"
	"sync"
	"time"

	"travel_backoffice/internal/infrastructure/metrics"
	"travel_backoffice/internal/usecase/interfaces"
)

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

func (e memoryEntry) isExpired(now time.Time) bool {
	return !e.expiresAt.IsZero() && now.After(e.expiresAt)
}

// MemoryCache is a thread-safe TTL cache; a ttl of zero keeps entries forever.
// Expired entries are dropped lazily on Get and by a background sweep that stops
// with the context given to NewMemoryCache.
type MemoryCache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	items   map[string]memoryEntry
	metrics *metrics.Metrics
	now     func() time.Time
}

var _ interfaces.ICache = (*MemoryCache)(nil)

func NewMemoryCache(ctx context.Context, ttl time.Duration, m *metrics.Metrics) *MemoryCache {
	c := &MemoryCache{
		ttl:     ttl,
		items:   make(map[string]memoryEntry),
		metrics: m,
		now:     time.Now,
	}
	if ttl > 0 {
		go c.cleanup(ctx, ttl)
	}
	return c
}

func (c *MemoryCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.mu.RLock()
	entry, ok := c.items[key]
	c.mu.RUnlock()

	if !ok {
		c.metrics.RecordCacheLookup("miss")
		return nil, false, nil
	}
	if entry.isExpired(c.now()) {
		c.mu.Lock()
		if current, still := c.items[key]; still && current.isExpired(c.now()) {
			delete(c.items, key)
		}
		c.mu.Unlock()
		c.metrics.RecordCacheLookup("miss")
		return nil, false, nil
	}

	c.metrics.RecordCacheLookup("hit")
	out := make([]byte, len(entry.value))
	copy(out, entry.value)
	return out, true, nil
}

func (c *MemoryCache) Set(_ context.Context, key string, value []byte) error {
	v := make([]byte, len(value))
	copy(v, value)

	entry := memoryEntry{value: v}
	if c.ttl > 0 {
		entry.expiresAt = c.now().Add(c.ttl)
	}

	c.mu.Lock()
	c.items[key] = entry
	c.mu.Unlock()
	return nil
}

func (c *MemoryCache) DeleteByPrefix(_ context.Context, prefix string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for k := range c.items {
		if strings.HasPrefix(k, prefix) {
			delete(c.items, k)
		}
	}
	return nil
}

func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

func (c *MemoryCache) cleanup(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.evictExpired()
		}
	}
}

func (c *MemoryCache) evictExpired() {
	now := c.now()
	c.mu.Lock()
	defer c.mu.Unlock()
	for k, e := range c.items {
		if e.isExpired(now) {
			delete(c.items, k)
		}
	}
}
