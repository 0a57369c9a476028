package memory

import (
	"context"
	"sync"

	"github.com/jana0025/IR-PROJECT/internal/core/domain"
	"github.com/jana0025/IR-PROJECT/internal/core/ports/driven"
)

// Ensure GeocodeCache implements the interface.
var _ driven.GeocodeCache = (*GeocodeCache)(nil)

// GeocodeCache is a process-wide, unbounded geocode cache.
// Concurrent misses on the same key may both reach the geocoder; the
// last write wins and both writes carry the same answer.
type GeocodeCache struct {
	mu      sync.RWMutex
	entries map[string]domain.GeocodeResult
}

// NewGeocodeCache creates an empty cache.
func NewGeocodeCache() *GeocodeCache {
	return &GeocodeCache{entries: make(map[string]domain.GeocodeResult)}
}

// Get returns the cached result for key.
func (c *GeocodeCache) Get(_ context.Context, key string) (domain.GeocodeResult, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	res, ok := c.entries[key]
	return res, ok
}

// Put stores a result for key.
func (c *GeocodeCache) Put(_ context.Context, key string, result domain.GeocodeResult) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = result
}

// Len returns the number of cached names.
func (c *GeocodeCache) Len(_ context.Context) int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
