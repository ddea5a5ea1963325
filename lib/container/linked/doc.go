// Package linked implements a generic associative container that combines a
// hash index with an explicit key order. Entries are reachable both by key
// (O(1) expected) and by position (insertion order, or any order established
// by positional inserts), which makes the container a natural fit for
// recency bookkeeping, ordered configuration sets and other places where
// "a map that remembers its order" is wanted.
//
// The package focuses on:
//   - Keeping the hash view and the order view consistent after every
//     mutation: each key appears exactly once in the order, and exactly the
//     keys in the index appear there (a bijection between the two views)
//   - Move-on-reinsert semantics: inserting an existing key at a position
//     relocates the entry instead of duplicating it
//   - A soft failure policy: lookups yield zero values for absent keys and
//     out-of-range positions, mutations degrade to no-ops on invalid input
//
// Key Components:
//
//   - Map: The container itself. Both internal views are private; every
//     mutation passes through a single surface that updates them together,
//     which is what upholds the bijection. Accessors return value copies -
//     reading never creates an entry, and callers cannot mutate through a
//     returned value.
//
//   - Iterator: A forward-only cursor over the order with explicit equality
//     and an end sentinel. Cursors carry the map generation they were created
//     at; structural mutations invalidate outstanding cursors, and a stale
//     cursor panics on use instead of walking a spliced sequence. All()
//     offers the same traversal as a range-over-func sequence.
//
// Example Usage:
//
//	m := linked.New[string, int]()
//	m.Append("x", 1)
//	m.Append("y", 2)
//	m.Insert(0, "y", 9) // moves "y" to the front with the new value
//
//	m.Keys()    // ["y", "x"]
//	m.Get("y")  // 9
//	m.At(1)     // 1
//
// Thread-safety: Map performs no internal locking. See lib/cache for a
// goroutine-safe consumer built on top of it.
package linked
