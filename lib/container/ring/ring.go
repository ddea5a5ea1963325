package ring

import (
	"github.com/ValentinKolb/oSeq/lib/container"
)

// --------------------------------------------------------------------------
// Core Buffer Structure
// --------------------------------------------------------------------------

// Buffer is a generic fixed-capacity ring buffer with overwrite-on-full
// semantics: once the buffer is full, PushBack silently discards the oldest
// element to make room for the new one. The capacity is set at construction
// and never changes - use cases that need growth should wrap or replace the
// buffer, not mutate it in place.
//
// The valid elements occupy the physical slots (start + i) % capacity for
// i in [0, size). Slots outside that window hold stale values which are never
// reachable through the public API and are deliberately not zeroed.
//
// Positional access (Get/Set) follows the hard failure policy: an index
// outside [0, Len()) returns a *container.IndexError. Mutations never fail;
// PushBack on a zero-capacity buffer and PopFront on an empty buffer degrade
// to no-ops.
//
// Thread-safety: Buffer is not safe for concurrent use. Callers sharing one
// across goroutines must serialize access externally.
type Buffer[T any] struct {
	buf   []T // Physical storage, length == capacity, never reallocated
	start int // Physical slot of the logical first (oldest) element
	size  int // Number of valid elements (0 <= size <= capacity)
}

// New creates a buffer with the given fixed capacity.
//
// A capacity <= 0 yields a permanently empty buffer: every PushBack is a
// no-op, Len stays 0 and IsEmpty and IsFull both report true.
func New[T any](capacity int) *Buffer[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Buffer[T]{
		buf: make([]T, capacity),
	}
}

// --------------------------------------------------------------------------
// Queries
// --------------------------------------------------------------------------

// Cap returns the fixed capacity of the buffer. O(1).
func (b *Buffer[T]) Cap() int { return len(b.buf) }

// Len returns the number of valid elements. O(1).
func (b *Buffer[T]) Len() int { return b.size }

// IsEmpty returns whether the buffer holds no elements. O(1).
func (b *Buffer[T]) IsEmpty() bool { return b.size == 0 }

// IsFull returns whether the buffer is at capacity. Note that a
// zero-capacity buffer is both empty and full at all times. O(1).
func (b *Buffer[T]) IsFull() bool { return b.size == len(b.buf) }

// --------------------------------------------------------------------------
// Indexed Access
// --------------------------------------------------------------------------

// slot translates a logical index to its physical slot.
// The caller must guarantee 0 <= i < size (which implies capacity > 0).
func (b *Buffer[T]) slot(i int) int {
	return (b.start + i) % len(b.buf)
}

// Get returns the element at logical index i, where index 0 is the oldest
// element. An index outside [0, Len()) yields a *container.IndexError. O(1).
func (b *Buffer[T]) Get(i int) (T, error) {
	if i < 0 || i >= b.size {
		var zero T
		return zero, container.NewIndexError(i, b.size)
	}
	return b.buf[b.slot(i)], nil
}

// Set overwrites the element at logical index i. An index outside [0, Len())
// yields a *container.IndexError and leaves the buffer unchanged. O(1).
func (b *Buffer[T]) Set(i int, v T) error {
	if i < 0 || i >= b.size {
		return container.NewIndexError(i, b.size)
	}
	b.buf[b.slot(i)] = v
	return nil
}

// --------------------------------------------------------------------------
// Mutations
// --------------------------------------------------------------------------

// PushBack appends v as the newest element. If the buffer is full, the oldest
// element is overwritten in place and the window advances - capacity and
// length stay unchanged. On a zero-capacity buffer the call is a no-op. O(1).
func (b *Buffer[T]) PushBack(v T) {
	if len(b.buf) == 0 {
		return
	}

	if b.size < len(b.buf) {
		b.buf[b.slot(b.size)] = v
		b.size++
		return
	}

	// full: reuse the oldest slot and advance the window by one
	b.buf[b.start] = v
	b.start = (b.start + 1) % len(b.buf)
}

// PopFront removes and returns the oldest element. On an empty buffer the
// call is a no-op and the boolean is false. The vacated slot is not zeroed;
// it becomes unreachable through the window invariant. O(1).
func (b *Buffer[T]) PopFront() (T, bool) {
	if b.size == 0 {
		var zero T
		return zero, false
	}

	v := b.buf[b.start]
	b.start = (b.start + 1) % len(b.buf)
	b.size--
	return v, true
}

// Clear logically empties the buffer by resetting the window counters. The
// storage contents are left untouched - no slot below the new length is ever
// read, so zeroing is unnecessary. O(1).
func (b *Buffer[T]) Clear() {
	b.start = 0
	b.size = 0
}

// --------------------------------------------------------------------------
// Snapshots
// --------------------------------------------------------------------------

// Front returns the first min(n, Len()) elements in logical order as a
// freshly allocated slice. A non-positive n selects the whole contents.
// The result is a snapshot, not a view: later mutations of the buffer do
// not affect it. O(n).
func (b *Buffer[T]) Front(n int) []T {
	if n <= 0 || n > b.size {
		n = b.size
	}

	out := make([]T, n)
	for i := 0; i < n; i++ {
		out[i] = b.buf[b.slot(i)]
	}
	return out
}

// Back returns the last min(n, Len()) elements in logical order as a freshly
// allocated slice. A non-positive n selects the whole contents. O(n).
func (b *Buffer[T]) Back(n int) []T {
	if n <= 0 || n > b.size {
		n = b.size
	}

	out := make([]T, n)
	for i := 0; i < n; i++ {
		out[i] = b.buf[b.slot(b.size-n+i)]
	}
	return out
}

// Clone returns a deep copy of the buffer. The copy shares no backing storage
// with the original; both sides can be mutated independently. O(capacity).
func (b *Buffer[T]) Clone() *Buffer[T] {
	cp := &Buffer[T]{
		buf:   make([]T, len(b.buf)),
		start: b.start,
		size:  b.size,
	}
	copy(cp.buf, b.buf)
	return cp
}
