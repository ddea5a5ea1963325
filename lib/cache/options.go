package cache

import (
	"time"
)

// Options configures a Cache or Sharded instance during initialization.
type Options[K comparable, V any] struct {
	// TTL is the default time-to-live applied by Set. Zero means entries
	// never expire. SetE overrides it per entry.
	TTL time.Duration
	// OnEvict is called for every entry that leaves the cache involuntarily:
	// capacity evictions, expiry collection and RemoveOldest. It is not called
	// for explicit Remove or Clear.
	//
	// The callback runs while the cache lock is held and must not call back
	// into the cache.
	OnEvict func(key K, value V)
}

// DefaultOptions returns the default cache options: no expiry, no eviction
// callback.
func DefaultOptions[K comparable, V any]() *Options[K, V] {
	return &Options[K, V]{}
}
