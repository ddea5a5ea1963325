// Package cache implements a bounded LRU cache with optional per-entry
// expiry, in a plain and a sharded variant. It is the canonical consumer of
// the linked map container: all recency bookkeeping runs on a
// linked.Map, whose move-on-reinsert semantics make "promote to most
// recently used" a single operation, and whose positional access makes the
// eviction victim simply the entry at position 0.
//
// The package focuses on:
//   - Strict capacity bounds with least-recently-used eviction and an
//     optional eviction callback
//   - Per-entry time-to-live with lazy collection on access plus eager
//     collection via an expiry heap (no full scans)
//   - Concurrency via external locking around the single-threaded container,
//     per cache or per shard
//   - Hit/miss/eviction statistics, exportable as Prometheus-style metrics
//
// Key Components:
//
//   - ICache: The interface shared by both implementations, covering the
//     operations whose behavior is identical across them.
//
//   - Cache: The plain implementation. One mutex, one linked.Map, one expiry
//     heap. Suited for moderate entry counts and moderate concurrency.
//
//   - Sharded: Splits the key space over independently locked shards using a
//     seeded FNV-1a hash (string keys only). Cuts lock contention and keeps
//     the per-shard order splices short; aggregate statistics use striped
//     xsync counters to keep hot paths from contending on one cache line.
//
//   - RegisterMetrics: Exposes any ICache's counters on a VictoriaMetrics
//     set as gauges that read fresh snapshots on scrape.
//
// Example Usage:
//
//	c := cache.New[string, string](1024, &cache.Options[string, string]{
//	    TTL: 5 * time.Minute,
//	})
//	c.Set("session:abc", payload)
//
//	if v, ok := c.Get("session:abc"); ok {
//	    // cache hit, entry promoted to most recently used
//	}
//
// For write-heavy concurrent workloads:
//
//	s := cache.NewSharded[string, string](16, 256, nil)
package cache
