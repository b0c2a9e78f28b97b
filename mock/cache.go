package mock

import (
	"github.com/fwojciec/fesoddoc"
)

var _ fesoddoc.Cache = (*Cache)(nil)

// Cache is a mock implementation of fesoddoc.Cache.
type Cache struct {
	HasFn func(key string) bool
	GetFn func(key string) (any, bool)
	SetFn func(key string, value any)
}

func (c *Cache) Has(key string) bool {
	return c.HasFn(key)
}

func (c *Cache) Get(key string) (any, bool) {
	return c.GetFn(key)
}

func (c *Cache) Set(key string, value any) {
	c.SetFn(key, value)
}
