// Package cache provides the process-wide result cache: a bounded LRU with
// single-flight deduplication so concurrent identical requests share one
// computation instead of racing.
package cache

import (
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"
)

// Cache memoizes expensive computations by key. Entries live for the process
// lifetime or until evicted by the LRU bound; there is no TTL and no
// persistence.
type Cache[V any] struct {
	lru   *lru.Cache[string, V]
	group singleflight.Group
}

// New creates a cache bounded to size entries.
func New[V any](size int) (*Cache[V], error) {
	l, err := lru.New[string, V](size)
	if err != nil {
		return nil, err
	}
	return &Cache[V]{lru: l}, nil
}

// Get returns the cached value for key, if present.
func (c *Cache[V]) Get(key string) (V, bool) {
	return c.lru.Get(key)
}

// GetOrCompute returns the cached value for key, computing and storing it on
// miss. At most one computation runs per key at a time; concurrent callers
// with the same key block and receive the shared result. Failed computations
// are not cached.
func (c *Cache[V]) GetOrCompute(key string, compute func() (V, error)) (V, error) {
	if v, ok := c.lru.Get(key); ok {
		return v, nil
	}

	v, err, _ := c.group.Do(key, func() (interface{}, error) {
		// Another caller may have finished while we waited for the group.
		if v, ok := c.lru.Get(key); ok {
			return v, nil
		}
		v, err := compute()
		if err != nil {
			return v, err
		}
		c.lru.Add(key, v)
		return v, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}
	return v.(V), nil
}

// Len reports the number of cached entries.
func (c *Cache[V]) Len() int {
	return c.lru.Len()
}

// Purge drops every entry.
func (c *Cache[V]) Purge() {
	c.lru.Purge()
}
