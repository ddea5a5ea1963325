package linked

import (
	"fmt"
	"iter"
)

// --------------------------------------------------------------------------
// Cursor Iteration
// --------------------------------------------------------------------------

// Iterator is a forward-only cursor over a map's order sequence. It yields
// entries from position 0 to Len()-1, dereferencing values through the hash
// index; position Len() is the canonical end sentinel.
//
// A cursor is bound to the generation of the map at the moment it was
// obtained. Any structural mutation (Insert, Append, Remove, RemoveAt, Clear)
// invalidates it: the next cursor operation panics instead of silently
// walking a spliced sequence. Obtain a fresh cursor after mutating.
type Iterator[K comparable, V any] struct {
	m   *Map[K, V]
	pos int
	gen uint64
}

// Iter returns a cursor positioned at the first entry.
func (m *Map[K, V]) Iter() *Iterator[K, V] {
	return &Iterator[K, V]{m: m, gen: m.gen}
}

// End returns the end sentinel: a cursor positioned one past the last entry.
// A cursor that has been advanced past the last entry compares Equal to it.
func (m *Map[K, V]) End() *Iterator[K, V] {
	return &Iterator[K, V]{m: m, pos: len(m.order), gen: m.gen}
}

// Next returns the entry at the current position and advances the cursor by
// one. The boolean is false once the end sentinel has been reached.
func (it *Iterator[K, V]) Next() (K, V, bool) {
	it.check()
	if it.pos >= len(it.m.order) {
		var (
			zeroK K
			zeroV V
		)
		return zeroK, zeroV, false
	}

	k := it.m.order[it.pos]
	it.pos++
	return k, it.m.index[k], true
}

// Pos returns the cursor's current position in the order sequence.
func (it *Iterator[K, V]) Pos() int { return it.pos }

// AtEnd reports whether the cursor has reached the end sentinel.
func (it *Iterator[K, V]) AtEnd() bool {
	it.check()
	return it.pos >= len(it.m.order)
}

// Equal reports whether two cursors reference the same map and the same
// position.
func (it *Iterator[K, V]) Equal(other *Iterator[K, V]) bool {
	return other != nil && it.m == other.m && it.pos == other.pos
}

// check panics if the map was structurally mutated after the cursor was
// obtained.
func (it *Iterator[K, V]) check() {
	if it.gen != it.m.gen {
		panic(fmt.Sprintf("linked: iterator invalidated by map mutation (position %d)", it.pos))
	}
}

// --------------------------------------------------------------------------
// Range-Over-Func Iteration
// --------------------------------------------------------------------------

// All returns an iterator over all entries in order, for use with a range
// statement. The same invalidation rule as for cursors applies: mutating the
// map from inside the loop panics on the next step.
//
//	for k, v := range m.All() {
//	    ...
//	}
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		gen := m.gen
		for i := 0; i < len(m.order); i++ {
			if m.gen != gen {
				panic("linked: map mutated during iteration")
			}
			k := m.order[i]
			if !yield(k, m.index[k]) {
				return
			}
		}
	}
}
