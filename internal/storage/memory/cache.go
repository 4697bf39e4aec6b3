// internal/storage/memory/cache.go
package memory

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// DefaultCacheSize bounds the in-process schedule cache.
const DefaultCacheSize = 1024

// ScheduleCache keeps schedules in process when no Redis is configured.
// It holds at most size entries, evicting the least recently used, and drops
// entries older than ttl. A zero ttl only relies on the size bound.
type ScheduleCache struct {
	lru *expirable.LRU[string, []byte]
}

func NewScheduleCache(size int, ttl time.Duration) *ScheduleCache {
	if size <= 0 {
		size = DefaultCacheSize
	}
	return &ScheduleCache{lru: expirable.NewLRU[string, []byte](size, nil, ttl)}
}

func (c *ScheduleCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	v, ok := c.lru.Get(key)
	return v, ok, nil
}

func (c *ScheduleCache) Set(ctx context.Context, key string, value []byte) error {
	c.lru.Add(key, value)
	return nil
}

// Len reports how many entries are held, expired ones not yet purged included.
func (c *ScheduleCache) Len() int {
	return c.lru.Len()
}
