package cache

import (
	"crypto/rand"
	"encoding/binary"
	"time"

	"github.com/puzpuzpuz/xsync/v3"
)

// --------------------------------------------------------------------------
// Key Hashing
// --------------------------------------------------------------------------

// generateSeed creates a random seed for the shard hash so that key
// distribution differs between cache instances.
func generateSeed() uint64 {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		// fall back to the clock if the entropy source is unavailable
		return uint64(time.Now().UnixNano())
	}
	return binary.LittleEndian.Uint64(b[:])
}

// hashKey hashes a string key with the instance seed.
// This function uses the FNV-1a hash algorithm, which is fast and has good
// distribution for short keys.
func hashKey(s string, seed uint64) uint64 {
	const (
		offset64 = 14695981039346656037
		prime64  = 1099511628211
	)

	hash := uint64(offset64) ^ seed
	for i := 0; i < len(s); i++ {
		hash ^= uint64(s[i])
		hash *= prime64
	}
	return hash
}

// --------------------------------------------------------------------------
// Sharded Cache
// --------------------------------------------------------------------------

// Sharded splits an LRU cache into independently locked shards to cut lock
// contention under concurrent load and to keep the per-shard order splices
// short. Keys are distributed across shards by a seeded FNV-1a hash, which
// restricts the key type to strings.
//
// Each shard is a complete Cache with its own capacity and recency order;
// there is no recency order across shards, which is why Sharded has no
// RemoveOldest or Resize. Aggregate hit/miss/eviction counters use striped
// xsync counters so that hot read paths on different shards do not contend
// on a single statistics cache line.
//
// Thread-safety: all methods are safe for concurrent use.
type Sharded[K ~string, V any] struct {
	seed   uint64
	shards []*Cache[K, V]

	// aggregate statistics across all shards
	hits      *xsync.Counter
	misses    *xsync.Counter
	evictions *xsync.Counter
}

// NewSharded creates a sharded cache with numShards shards holding at most
// capacityPerShard entries each. Values below 1 are clamped to 1. Passing
// nil options selects the defaults.
func NewSharded[K ~string, V any](numShards, capacityPerShard int, opts *Options[K, V]) *Sharded[K, V] {
	if numShards < 1 {
		numShards = 1
	}
	if opts == nil {
		opts = DefaultOptions[K, V]()
	}

	s := &Sharded[K, V]{
		seed:      generateSeed(),
		shards:    make([]*Cache[K, V], numShards),
		hits:      xsync.NewCounter(),
		misses:    xsync.NewCounter(),
		evictions: xsync.NewCounter(),
	}

	// chain the aggregate eviction counter in front of the user callback
	userEvict := opts.OnEvict
	shardOpts := &Options[K, V]{
		TTL: opts.TTL,
		OnEvict: func(key K, value V) {
			s.evictions.Inc()
			if userEvict != nil {
				userEvict(key, value)
			}
		},
	}

	for i := range s.shards {
		s.shards[i] = New(capacityPerShard, shardOpts)
	}
	return s
}

// shard returns the shard responsible for key.
func (s *Sharded[K, V]) shard(key K) *Cache[K, V] {
	// shift out the lowest bits so they do not feed the modulo directly
	shifted := hashKey(string(key), s.seed) >> 7
	return s.shards[shifted%uint64(len(s.shards))]
}

// ShardCount returns the number of shards.
func (s *Sharded[K, V]) ShardCount() int {
	return len(s.shards)
}

// --------------------------------------------------------------------------
// ICache Implementation
// --------------------------------------------------------------------------

// Set inserts or updates a key-value pair using the configured default TTL.
func (s *Sharded[K, V]) Set(key K, value V) {
	s.shard(key).Set(key, value)
}

// SetE inserts or updates a key-value pair with an individual time-to-live.
// A zero ttl means the entry never expires.
func (s *Sharded[K, V]) SetE(key K, value V, ttl time.Duration) {
	s.shard(key).SetE(key, value, ttl)
}

// Get returns the value for key and marks the entry as most recently used
// within its shard.
func (s *Sharded[K, V]) Get(key K) (V, bool) {
	v, ok := s.shard(key).Get(key)
	if ok {
		s.hits.Inc()
	} else {
		s.misses.Inc()
	}
	return v, ok
}

// Peek returns the value for key without updating its recency.
func (s *Sharded[K, V]) Peek(key K) (V, bool) {
	v, ok := s.shard(key).Peek(key)
	if ok {
		s.hits.Inc()
	} else {
		s.misses.Inc()
	}
	return v, ok
}

// Contains reports whether a live entry for key exists.
func (s *Sharded[K, V]) Contains(key K) bool {
	return s.shard(key).Contains(key)
}

// Remove deletes key from its shard and reports whether an entry was present.
func (s *Sharded[K, V]) Remove(key K) bool {
	return s.shard(key).Remove(key)
}

// RemoveExpired eagerly drops expired entries from all shards and returns
// how many were removed.
func (s *Sharded[K, V]) RemoveExpired() int {
	removed := 0
	for _, sh := range s.shards {
		removed += sh.RemoveExpired()
	}
	return removed
}

// Keys returns a snapshot of the cached keys across all shards. Keys are
// grouped by shard; there is no global recency order.
func (s *Sharded[K, V]) Keys() []K {
	var keys []K
	for _, sh := range s.shards {
		keys = append(keys, sh.Keys()...)
	}
	return keys
}

// Len returns the total number of cached entries across all shards.
func (s *Sharded[K, V]) Len() int {
	total := 0
	for _, sh := range s.shards {
		total += sh.Len()
	}
	return total
}

// Clear removes all entries from all shards without firing eviction
// callbacks.
func (s *Sharded[K, V]) Clear() {
	for _, sh := range s.shards {
		sh.Clear()
	}
}

// Stats returns a point-in-time snapshot aggregated across all shards.
// Hits and misses come from the striped aggregate counters, entries and
// capacity are summed over the shards.
func (s *Sharded[K, V]) Stats() Stats {
	entries := 0
	capacity := 0
	for _, sh := range s.shards {
		entries += sh.Len()
		capacity += sh.Cap()
	}

	return Stats{
		Entries:   entries,
		Capacity:  capacity,
		Hits:      uint64(s.hits.Value()),
		Misses:    uint64(s.misses.Value()),
		Evictions: uint64(s.evictions.Value()),
	}
}
