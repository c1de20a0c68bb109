package cache

import (
	"fmt"
	"sync"
	"time"

	"k8s.io/klog/v2"

	"github.com/elevated-systems/compute-gardener-regionmap/pkg/regionmap/clock"
	"github.com/elevated-systems/compute-gardener-regionmap/pkg/regionmap/metrics"
)

// Cache provides thread-safe caching of region lookups with TTL. Several
// cloud regions share a metro, so identical coordinates are resolved once.
type Cache struct {
	data  map[string]*cacheEntry
	mutex sync.RWMutex
	ttl   time.Duration
	clock clock.Clock

	hits   int64
	misses int64
}

type cacheEntry struct {
	data      any
	timestamp time.Time
	hits      int64
}

// New creates a new cache instance
func New(ttl time.Duration, clk clock.Clock) *Cache {
	if ttl <= 0 {
		ttl = time.Hour
	}
	if clk == nil {
		clk = clock.RealClock{}
	}

	return &Cache{
		data:  make(map[string]*cacheEntry),
		ttl:   ttl,
		clock: clk,
	}
}

// Key builds the cache key of a lookup. Coordinates are rounded to four
// decimals (about 11m), the precision of the region tables.
func Key(lat, lon float64, signalType string) string {
	return fmt.Sprintf("%.4f,%.4f,%s", lat, lon, signalType)
}

// Get retrieves data from cache if valid
func (c *Cache) Get(key string) (any, bool) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	entry, exists := c.data[key]
	if !exists || c.clock.Since(entry.timestamp) > c.ttl {
		c.misses++
		metrics.CacheLookupsTotal.WithLabelValues("miss").Inc()
		return nil, false
	}

	entry.hits++
	c.hits++
	metrics.CacheLookupsTotal.WithLabelValues("hit").Inc()
	return entry.data, true
}

// Set stores data in cache
func (c *Cache) Set(key string, data any) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.data[key] = &cacheEntry{
		data:      data,
		timestamp: c.clock.Now(),
	}

	klog.V(4).InfoS("Cached region lookup", "key", key)
}

// GetMetrics returns cache performance metrics
func (c *Cache) GetMetrics() (hits, misses int64) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return c.hits, c.misses
}

// Prune removes expired entries and returns how many were dropped
func (c *Cache) Prune() int {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	removed := 0
	for key, entry := range c.data {
		age := c.clock.Since(entry.timestamp)
		if age > c.ttl {
			delete(c.data, key)
			removed++
			klog.V(4).InfoS("Removed expired cache entry",
				"key", key,
				"age", age.String(),
				"hits", entry.hits)
		}
	}
	return removed
}

// Size returns the number of entries in the cache
func (c *Cache) Size() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return len(c.data)
}
