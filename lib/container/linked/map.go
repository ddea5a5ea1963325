package linked

import (
	"slices"
)

// --------------------------------------------------------------------------
// Core Map Structure
// --------------------------------------------------------------------------

// Map is a generic associative container that maintains two simultaneously
// valid views of one logical set of entries: a hash index for O(1) expected
// key lookup and an explicit key order for positional access and iteration.
// Both views are updated together by every mutation; the key order always
// contains each key exactly once, and exactly the keys present in the index.
//
// Lookups follow the soft failure policy: a missing key or an out-of-range
// position yields the zero value of V (or K) instead of an error. The
// comma-ok variants (Lookup, KeyAt, Has) report presence explicitly where
// callers need to distinguish "absent" from "stored zero value". Accessors
// return value copies, never references into the container - reading can
// therefore never create or mutate an entry as a side effect.
//
// Mutations never fail either: removing an absent key or inserting at an
// invalid position is a complete no-op.
//
// Thread-safety: Map is not safe for concurrent use. Callers sharing one
// across goroutines must serialize access externally.
type Map[K comparable, V any] struct {
	index map[K]V // Key -> value (hash view)
	order []K     // Iteration and positional order (sequence view)
	gen   uint64  // Mutation generation, used to detect stale iterators
}

// New creates an empty map.
func New[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{
		index: make(map[K]V),
		order: make([]K, 0),
	}
}

// --------------------------------------------------------------------------
// Queries
// --------------------------------------------------------------------------

// Len returns the number of entries. O(1).
func (m *Map[K, V]) Len() int { return len(m.order) }

// Has reports whether key is present. O(1) expected.
func (m *Map[K, V]) Has(key K) bool {
	_, exists := m.index[key]
	return exists
}

// Get returns the value associated with key, or the zero value of V if the
// key is absent. Use Lookup when the distinction matters. O(1) expected.
func (m *Map[K, V]) Get(key K) V {
	return m.index[key]
}

// Lookup returns the value associated with key. The boolean reports whether
// the key was present. O(1) expected.
func (m *Map[K, V]) Lookup(key K) (V, bool) {
	v, exists := m.index[key]
	return v, exists
}

// At returns the value whose key sits at position idx in the order, or the
// zero value of V if idx is outside [0, Len()). O(1) expected.
func (m *Map[K, V]) At(idx int) V {
	if idx < 0 || idx >= len(m.order) {
		var zero V
		return zero
	}
	return m.index[m.order[idx]]
}

// KeyAt returns the key at position idx in the order. The boolean is false
// if idx is outside [0, Len()). O(1).
func (m *Map[K, V]) KeyAt(idx int) (K, bool) {
	if idx < 0 || idx >= len(m.order) {
		var zero K
		return zero, false
	}
	return m.order[idx], true
}

// IndexOf returns the position of key in the order, or -1 if the key is
// absent. This is a linear scan of the order sequence. O(n).
func (m *Map[K, V]) IndexOf(key K) int {
	for i, k := range m.order {
		if k == key {
			return i
		}
	}
	return -1
}

// --------------------------------------------------------------------------
// Mutations
// --------------------------------------------------------------------------

// Insert places key at position idx of the order with the given value. The
// position is validated against the size before anything happens: an idx
// outside [0, Len()] makes the whole call a no-op, including the value write.
//
// If the key already exists, its entry is first detached from the order and
// the target position re-clamped to the shrunk sequence, so the net effect is
// "move the key to idx with the new value" - a key is never duplicated.
// O(n), dominated by the order splice; the hash step is O(1) expected.
func (m *Map[K, V]) Insert(idx int, key K, value V) {
	if idx < 0 || idx > len(m.order) {
		return
	}

	if _, exists := m.index[key]; exists {
		m.detach(key)
		// the order just shrank by one, re-clamp the target position
		if idx > len(m.order) {
			idx = len(m.order)
		}
	}

	m.order = slices.Insert(m.order, idx, key)
	m.index[key] = value
	m.gen++
}

// Append places key at the end of the order with the given value, equivalent
// to Insert(Len(), key, value). Appending a brand-new key is the fast path:
// no detach scan is needed and the tail insert is O(1) amortized.
func (m *Map[K, V]) Append(key K, value V) {
	m.Insert(len(m.order), key, value)
}

// Remove deletes the entry for key from both views. Removing an absent key
// is a no-op. O(n).
func (m *Map[K, V]) Remove(key K) {
	if _, exists := m.index[key]; !exists {
		return
	}
	delete(m.index, key)
	m.detach(key)
	m.gen++
}

// RemoveAt deletes the entry at position idx of the order from both views.
// An idx outside [0, Len()) is a no-op. O(n).
func (m *Map[K, V]) RemoveAt(idx int) {
	if idx < 0 || idx >= len(m.order) {
		return
	}
	delete(m.index, m.order[idx])
	m.order = slices.Delete(m.order, idx, idx+1)
	m.gen++
}

// Clear removes all entries. O(1) apart from garbage collection.
func (m *Map[K, V]) Clear() {
	m.index = make(map[K]V)
	m.order = m.order[:0]
	m.gen++
}

// detach removes the single occurrence of key from the order sequence.
// The caller must ensure the key exists.
func (m *Map[K, V]) detach(key K) {
	for i, k := range m.order {
		if k == key {
			m.order = slices.Delete(m.order, i, i+1)
			return
		}
	}
}

// --------------------------------------------------------------------------
// Snapshots and Conversion
// --------------------------------------------------------------------------

// Keys returns the keys in order as a freshly allocated slice. O(n).
func (m *Map[K, V]) Keys() []K {
	return slices.Clone(m.order)
}

// Values returns the values in order as a freshly allocated slice. O(n).
func (m *Map[K, V]) Values() []V {
	out := make([]V, len(m.order))
	for i, k := range m.order {
		out[i] = m.index[k]
	}
	return out
}

// Clone returns a deep copy of the map: both the index and the order are
// copied, and the copy can be mutated independently of the original. O(n).
func (m *Map[K, V]) Clone() *Map[K, V] {
	cp := &Map[K, V]{
		index: make(map[K]V, len(m.index)),
		order: slices.Clone(m.order),
	}
	for k, v := range m.index {
		cp.index[k] = v
	}
	return cp
}

// ConvertValues returns the values in order, each transformed by fn. It is a
// free function rather than a method because Go methods cannot introduce
// additional type parameters. O(n).
func ConvertValues[K comparable, V, U any](m *Map[K, V], fn func(V) U) []U {
	out := make([]U, len(m.order))
	for i, k := range m.order {
		out[i] = fn(m.index[k])
	}
	return out
}
