package cache

import (
	"time"
)

// --------------------------------------------------------------------------
// Interface Definition
// --------------------------------------------------------------------------

// ICache is the interface shared by the plain and the sharded cache. It
// covers the operations whose behavior is identical across implementations;
// capacity-shape specifics (RemoveOldest, Resize) live on the concrete types
// because a sharded cache has no global recency order to answer them with.
type ICache[K comparable, V any] interface {
	// Set inserts or updates a key-value pair using the configured default TTL.
	Set(key K, value V)
	// SetE inserts or updates a key-value pair with an individual time-to-live.
	// A zero ttl means the entry never expires.
	SetE(key K, value V, ttl time.Duration)
	// Get returns the value for key and marks the entry as most recently used.
	// The boolean reports whether a live (present, unexpired) entry was found.
	Get(key K) (V, bool)
	// Peek returns the value for key without updating its recency.
	Peek(key K) (V, bool)
	// Contains reports whether a live entry for key exists. It does not count
	// as a cache access and updates neither recency nor statistics.
	Contains(key K) bool
	// Remove deletes key from the cache and reports whether an entry was
	// present. Explicit removals do not fire the eviction callback.
	Remove(key K) bool
	// RemoveExpired eagerly drops all entries whose deadline has passed and
	// returns how many were removed.
	RemoveExpired() int
	// Keys returns a snapshot of the cached keys. For the plain cache the
	// order runs from least to most recently used.
	Keys() []K
	// Len returns the number of cached entries, including entries that have
	// expired but not yet been collected.
	Len() int
	// Clear removes all entries without firing eviction callbacks.
	Clear()
	// Stats returns a point-in-time snapshot of the cache counters.
	Stats() Stats
}

// --------------------------------------------------------------------------
// Statistics
// --------------------------------------------------------------------------

// Stats is a point-in-time snapshot of cache counters. Hits and misses are
// counted by Get and Peek; evictions cover both capacity evictions and
// expiry-based removals.
type Stats struct {
	Entries   int    `json:"entries"`
	Capacity  int    `json:"capacity"`
	Hits      uint64 `json:"hits"`
	Misses    uint64 `json:"misses"`
	Evictions uint64 `json:"evictions"`
}

// Interface conformance checks for both implementations.
var (
	_ ICache[string, int] = (*Cache[string, int])(nil)
	_ ICache[string, int] = (*Sharded[string, int])(nil)
)
