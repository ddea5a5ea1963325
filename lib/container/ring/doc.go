// Package ring implements a generic fixed-capacity ring buffer with
// overwrite-on-full semantics. It is the building block for sliding-window
// style consumers: the newest N values are always available in arrival order,
// and everything older is discarded automatically without any allocation or
// data movement.
//
// The package focuses on:
//   - Strictly bounded memory: the backing array is allocated once at
//     construction and never grows or shrinks
//   - O(1) mutations: PushBack, PopFront and Clear all run in constant time,
//     including the overwrite path on a full buffer
//   - Snapshot reads: Front and Back return freshly allocated slices, never
//     views into the internal storage
//
// Key Components:
//
//   - Buffer: The ring buffer itself. Logical indices run from 0 (oldest) to
//     Len()-1 (newest) and are translated to physical slots via
//     (start + i) % capacity. Positional access hard-fails with a
//     *container.IndexError on out-of-range indices, while mutations degrade
//     to no-ops on the edge cases (full, empty, zero capacity).
//
// Example Usage:
//
//	buf := ring.New[string](3)
//	buf.PushBack("a")
//	buf.PushBack("b")
//	buf.PushBack("c")
//	buf.PushBack("d") // overwrites "a"
//
//	buf.Front(0) // ["b", "c", "d"]
//	buf.Back(1)  // ["d"]
//
// Thread-safety: Buffer performs no internal locking. See lib/window for a
// goroutine-safe consumer built on top of it.
package ring
