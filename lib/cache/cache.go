package cache

import (
	"sync"
	"time"

	"github.com/ValentinKolb/oSeq/lib/container/linked"
)

// --------------------------------------------------------------------------
// Entry Structure
// --------------------------------------------------------------------------

// entry carries a cached value together with its expiration deadline.
type entry[V any] struct {
	value     V
	expiresAt int64 // Unix nanoseconds, 0 = never expires
}

// expired reports whether the entry's deadline has passed at time now.
func (e entry[V]) expired(now int64) bool {
	return e.expiresAt != 0 && now >= e.expiresAt
}

// --------------------------------------------------------------------------
// Core Cache Structure
// --------------------------------------------------------------------------

// Cache is a bounded LRU cache with optional per-entry expiry. Its recency
// bookkeeping runs on a linked.Map: the least recently used entry sits at
// position 0 of the order sequence, the most recently used at the tail, and
// a hit relocates the entry to the tail via the map's move-on-reinsert
// semantics. When a new key would exceed the capacity, the entry at position
// 0 is evicted.
//
// Expired entries are removed lazily when an access touches them; the expiry
// heap additionally lets RemoveExpired reclaim them eagerly without a full
// scan.
//
// Note that a hit is O(n) in the worst case: relocating the entry to the
// most recently used position splices the order sequence. For caches of a
// few thousand entries this is irrelevant; for larger working sets under
// concurrent load, prefer Sharded, which also shortens the splices.
//
// Thread-safety: all methods are safe for concurrent use; a single mutex
// serializes access.
type Cache[K comparable, V any] struct {
	mu       sync.Mutex
	capacity int
	ttl      time.Duration
	onEvict  func(K, V)
	entries  *linked.Map[K, entry[V]]
	expiry   *expiryHeap[K]

	// statistics, guarded by mu
	hits      uint64
	misses    uint64
	evictions uint64
}

// New creates a cache holding at most capacity entries. A capacity below 1
// is clamped to 1. Passing nil options selects the defaults.
func New[K comparable, V any](capacity int, opts *Options[K, V]) *Cache[K, V] {
	if opts == nil {
		opts = DefaultOptions[K, V]()
	}
	if capacity < 1 {
		capacity = 1
	}

	return &Cache[K, V]{
		capacity: capacity,
		ttl:      opts.TTL,
		onEvict:  opts.OnEvict,
		entries:  linked.New[K, entry[V]](),
		expiry:   newExpiryHeap[K](),
	}
}

// --------------------------------------------------------------------------
// Write Operations
// --------------------------------------------------------------------------

// Set inserts or updates a key-value pair using the configured default TTL.
func (c *Cache[K, V]) Set(key K, value V) {
	c.SetE(key, value, c.ttl)
}

// SetE inserts or updates a key-value pair with an individual time-to-live.
// A zero ttl means the entry never expires. Updating an existing key moves
// it to the most recently used position and never triggers an eviction.
func (c *Cache[K, V]) SetE(key K, value V, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var deadline int64
	if ttl > 0 {
		deadline = time.Now().Add(ttl).UnixNano()
	}

	// make room before admitting a brand-new key
	if !c.entries.Has(key) {
		for c.entries.Len() >= c.capacity {
			c.evictOldest()
		}
	}

	c.entries.Append(key, entry[V]{value: value, expiresAt: deadline})
	if deadline != 0 {
		c.expiry.update(key, deadline)
	} else {
		c.expiry.remove(key)
	}
}

// Remove deletes key from the cache and reports whether an entry was
// present. Explicit removals do not fire the eviction callback.
func (c *Cache[K, V]) Remove(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.entries.Has(key) {
		return false
	}
	c.entries.Remove(key)
	c.expiry.remove(key)
	return true
}

// RemoveOldest evicts the least recently used entry and returns it. The
// boolean is false on an empty cache. The eviction callback fires.
func (c *Cache[K, V]) RemoveOldest() (K, V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key, ok := c.entries.KeyAt(0)
	if !ok {
		var (
			zeroK K
			zeroV V
		)
		return zeroK, zeroV, false
	}

	e := c.entries.Get(key)
	c.removeEntry(key, true)
	return key, e.value, true
}

// RemoveExpired eagerly drops all entries whose deadline has passed and
// returns how many were removed. Expired entries are otherwise collected
// lazily on access; this method reclaims the memory now, in O(log n) per
// expired entry thanks to the expiry heap.
func (c *Cache[K, V]) RemoveExpired() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now().UnixNano()
	removed := 0
	for {
		key, deadline, ok := c.expiry.peek()
		if !ok || deadline > now {
			break
		}
		c.removeEntry(key, true)
		removed++
	}
	return removed
}

// Clear removes all entries without firing eviction callbacks. The
// statistics counters keep their lifetime values.
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries.Clear()
	c.expiry = newExpiryHeap[K]()
}

// Resize changes the capacity, evicting least recently used entries while
// the cache is over the new limit. It returns the number of evictions. A
// capacity below 1 is clamped to 1.
func (c *Cache[K, V]) Resize(capacity int) int {
	if capacity < 1 {
		capacity = 1
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.capacity = capacity
	evicted := 0
	for c.entries.Len() > c.capacity {
		c.evictOldest()
		evicted++
	}
	return evicted
}

// --------------------------------------------------------------------------
// Read Operations
// --------------------------------------------------------------------------

// Get returns the value for key and marks the entry as most recently used.
// The boolean reports whether a live entry was found; an expired entry
// counts as a miss and is collected on the spot.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries.Lookup(key)
	if !ok {
		c.misses++
		var zero V
		return zero, false
	}
	if e.expired(time.Now().UnixNano()) {
		c.removeEntry(key, true)
		c.misses++
		var zero V
		return zero, false
	}

	// relocate to the most recently used position
	c.entries.Append(key, e)
	c.hits++
	return e.value, true
}

// Peek returns the value for key without updating its recency. It still
// counts as a cache access for the hit/miss statistics. Expired entries are
// reported as misses but left for lazy collection.
func (c *Cache[K, V]) Peek(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries.Lookup(key)
	if !ok || e.expired(time.Now().UnixNano()) {
		c.misses++
		var zero V
		return zero, false
	}

	c.hits++
	return e.value, true
}

// Contains reports whether a live entry for key exists. It updates neither
// recency nor statistics.
func (c *Cache[K, V]) Contains(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries.Lookup(key)
	return ok && !e.expired(time.Now().UnixNano())
}

// Keys returns a snapshot of the cached keys from least to most recently
// used. Entries that have expired but not yet been collected are included.
func (c *Cache[K, V]) Keys() []K {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.entries.Keys()
}

// Len returns the number of cached entries, including entries that have
// expired but not yet been collected.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.entries.Len()
}

// Cap returns the configured capacity.
func (c *Cache[K, V]) Cap() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.capacity
}

// Stats returns a point-in-time snapshot of the cache counters.
func (c *Cache[K, V]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	return Stats{
		Entries:   c.entries.Len(),
		Capacity:  c.capacity,
		Hits:      c.hits,
		Misses:    c.misses,
		Evictions: c.evictions,
	}
}

// --------------------------------------------------------------------------
// Internal Helpers
// --------------------------------------------------------------------------

// evictOldest drops the entry at position 0 of the order sequence.
// The caller must hold c.mu.
func (c *Cache[K, V]) evictOldest() {
	key, ok := c.entries.KeyAt(0)
	if !ok {
		return
	}
	c.removeEntry(key, true)
}

// removeEntry deletes key from both bookkeeping structures. With evict set,
// the eviction counter and callback fire. The caller must hold c.mu.
func (c *Cache[K, V]) removeEntry(key K, evict bool) {
	e, ok := c.entries.Lookup(key)
	if !ok {
		c.expiry.remove(key)
		return
	}

	c.entries.Remove(key)
	c.expiry.remove(key)

	if evict {
		c.evictions++
		if c.onEvict != nil {
			c.onEvict(key, e.value)
		}
	}
}
