package cache

import (
	"container/heap"
)

// --------------------------------------------------------------------------
// Expiry Heap
// --------------------------------------------------------------------------

// expiryItem tracks the deadline of a single cache entry.
type expiryItem[K comparable] struct {
	key      K
	deadline int64 // Unix nanoseconds
	index    int   // Index in the heap slice, maintained by the heap package
}

// expiryHeap combines a binary min-heap ordered by deadline with a hash map
// for O(1) access by key. It lets the cache answer "which entry expires
// next" in O(1) and adjust or drop any entry's deadline in O(log n), so
// RemoveExpired never has to scan the whole cache.
//
// Only entries with a TTL are tracked here; entries without a deadline cost
// nothing.
//
// Thread-safety: not safe for concurrent use. The owning cache serializes
// access under its own lock.
type expiryHeap[K comparable] struct {
	items    []*expiryItem[K]
	itemsMap map[K]*expiryItem[K]
}

// newExpiryHeap creates an empty expiry heap.
func newExpiryHeap[K comparable]() *expiryHeap[K] {
	return &expiryHeap[K]{
		items:    make([]*expiryItem[K], 0),
		itemsMap: make(map[K]*expiryItem[K]),
	}
}

// Len returns the number of tracked deadlines (part of heap.Interface).
func (eh *expiryHeap[K]) Len() int { return len(eh.items) }

// Less orders items by deadline, earliest first (part of heap.Interface).
func (eh *expiryHeap[K]) Less(i, j int) bool {
	return eh.items[i].deadline < eh.items[j].deadline
}

// Swap exchanges items at positions i and j (part of heap.Interface).
func (eh *expiryHeap[K]) Swap(i, j int) {
	eh.items[i], eh.items[j] = eh.items[j], eh.items[i]
	eh.items[i].index = i
	eh.items[j].index = j
}

// Push adds an item to the heap (part of heap.Interface).
func (eh *expiryHeap[K]) Push(x any) {
	n := len(eh.items)
	it := x.(*expiryItem[K])
	it.index = n
	eh.items = append(eh.items, it)
	eh.itemsMap[it.key] = it
}

// Pop removes and returns the item with the earliest deadline (part of
// heap.Interface).
func (eh *expiryHeap[K]) Pop() any {
	old := eh.items
	n := len(old)
	it := old[n-1]
	old[n-1] = nil // Avoid memory leak
	it.index = -1  // For safety
	eh.items = old[:n-1]
	delete(eh.itemsMap, it.key)
	return it
}

// update inserts the deadline for key, or adjusts an existing one and fixes
// the heap ordering.
func (eh *expiryHeap[K]) update(key K, deadline int64) {
	if it, exists := eh.itemsMap[key]; exists {
		it.deadline = deadline
		heap.Fix(eh, it.index)
		return
	}

	heap.Push(eh, &expiryItem[K]{key: key, deadline: deadline})
}

// remove drops the deadline tracked for key, if any.
func (eh *expiryHeap[K]) remove(key K) {
	if it, exists := eh.itemsMap[key]; exists {
		heap.Remove(eh, it.index)
	}
}

// peek returns the key with the earliest deadline without removing it.
func (eh *expiryHeap[K]) peek() (K, int64, bool) {
	if len(eh.items) == 0 {
		var zero K
		return zero, 0, false
	}
	return eh.items[0].key, eh.items[0].deadline, true
}
