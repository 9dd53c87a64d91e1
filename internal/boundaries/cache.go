// Package boundaries loads per-country boundary documents and holds
// the process-wide caches around them.
package boundaries

import (
	"sync"

	"countrymap/internal/geom"
)

// Cache maps country codes to parsed boundary collections. Entries are
// never evicted; geometry is immutable once loaded, so sharing one
// collection across chart instances is safe. The cache is an explicit
// object created at program start so tests can isolate it.
type Cache struct {
	mu      sync.Mutex
	entries map[string]*geom.FeatureCollection
}

func NewCache() *Cache {
	return &Cache{entries: make(map[string]*geom.FeatureCollection)}
}

func (c *Cache) Get(country string) (*geom.FeatureCollection, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fc, ok := c.entries[country]
	return fc, ok
}

func (c *Cache) Put(country string, fc *geom.FeatureCollection) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[country] = fc
}

func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
