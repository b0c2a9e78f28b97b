// Package inmem provides in-memory implementations of fesoddoc services.
package inmem

import (
	"sync"

	"github.com/fwojciec/fesoddoc"
)

// Ensure Cache implements fesoddoc.Cache at compile time.
var _ fesoddoc.Cache = (*Cache)(nil)

// Cache is an unbounded, mutex-guarded fesoddoc.Cache. Entries live until
// the process exits.
type Cache struct {
	mu    sync.RWMutex
	items map[string]any
}

// NewCache returns an empty Cache.
func NewCache() *Cache {
	return &Cache{items: make(map[string]any)}
}

// Has reports whether key is present.
func (c *Cache) Has(key string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.items[key]
	return ok
}

// Get returns the value stored under key.
func (c *Cache) Get(key string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.items[key]
	return v, ok
}

// Set stores value under key, replacing any previous value.
func (c *Cache) Set(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = value
}

// Len returns the number of cached keys.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
