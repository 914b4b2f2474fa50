// Package cache defines the time-bounded cache capability used by the market
// gateway and the opportunity selector. The cache is a performance layer
// only, never a source of truth: every cached value can be recomputed, and
// overwriting an entry with an equivalent value is always safe, so no
// cross-writer coordination is needed.
package cache

import "time"

// Store is a key-value store with per-key TTL.
type Store interface {
	// Get returns the cached value for key, or false if the key is absent
	// or its TTL has elapsed.
	Get(key string) (interface{}, bool)
	// Set stores value under key for the given TTL.
	Set(key string, value interface{}, ttl time.Duration)
}
