package service

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Cache is a size-bounded TTL cache for catalog reads. A nil *Cache is a
// valid cache that never hits.
type Cache[V any] struct {
	name string
	lru  *expirable.LRU[string, V]
}

// NewCache creates a cache holding at most size entries for ttl each.
func NewCache[V any](name string, size int, ttl time.Duration) *Cache[V] {
	return &Cache[V]{
		name: name,
		lru:  expirable.NewLRU[string, V](size, nil, ttl),
	}
}

func (c *Cache[V]) Get(key string) (V, bool) {
	var zero V
	if c == nil {
		return zero, false
	}
	v, ok := c.lru.Get(key)
	if ok {
		cacheLookups.WithLabelValues(c.name, "hit").Inc()
		return v, true
	}
	cacheLookups.WithLabelValues(c.name, "miss").Inc()
	return zero, false
}

func (c *Cache[V]) Set(key string, v V) {
	if c == nil {
		return
	}
	c.lru.Add(key, v)
}

// Purge drops every entry; called after any write to the catalog.
func (c *Cache[V]) Purge() {
	if c == nil {
		return
	}
	c.lru.Purge()
}

func (c *Cache[V]) size() int {
	if c == nil {
		return 0
	}
	return c.lru.Len()
}
