package cache

import (
	"time"

	"github.com/dgraph-io/ristretto"
)

// Ristretto adapts a ristretto cache to the Store interface. Writes are
// applied asynchronously by ristretto; an at-most-slightly-stale read is
// acceptable for advisory data.
type Ristretto struct {
	cache *ristretto.Cache
}

// NewRistretto creates a ristretto-backed store sized for advisory workloads
// (a handful of entries per user and ticker).
func NewRistretto() (*Ristretto, error) {
	c, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 10_000,
		MaxCost:     1 << 20,
		BufferItems: 64,
	})
	if err != nil {
		return nil, err
	}
	return &Ristretto{cache: c}, nil
}

// Get returns the cached value for key, if present and unexpired.
func (r *Ristretto) Get(key string) (interface{}, bool) {
	return r.cache.Get(key)
}

// Set stores value under key for the given TTL. Every entry costs 1;
// the cache bounds entry count, not byte size.
func (r *Ristretto) Set(key string, value interface{}, ttl time.Duration) {
	r.cache.SetWithTTL(key, value, 1, ttl)
}

// Close releases the cache's resources.
func (r *Ristretto) Close() {
	r.cache.Close()
}
