// Package container provides generic in-memory container primitives with
// explicit ordering guarantees and documented failure policies. The containers
// are pure data structures: they perform no I/O, spawn no goroutines and hold
// no locks, which makes them cheap to embed in larger systems that bring their
// own synchronization.
//
// The package focuses on:
//   - Bounded, allocation-conscious storage (fixed capacity, snapshot-style reads)
//   - Keeping multiple internal views of one logical data set consistent under
//     every mutation path
//   - A documented failure policy per container instead of implicit behavior
//
// Key Components:
//
//   - IndexError / ErrOutOfRange: The shared error surface for containers with
//     a hard failure policy. An IndexError carries the offending index and the
//     container length; errors.Is(err, ErrOutOfRange) matches it.
//
// Implementations:
//
//	The package includes two container implementations in subpackages:
//
//	- Ring Buffer (ring): A generic fixed-capacity circular buffer with
//	  overwrite-on-full semantics. Positional access follows the hard failure
//	  policy: out-of-range indices return an IndexError.
//	  Available in the "github.com/ValentinKolb/oSeq/lib/container/ring" package.
//
//	- Linked Map (linked): A generic associative container that combines a hash
//	  index with an explicit key order, supporting both key-based and positional
//	  access. Lookups follow the soft failure policy: missing keys and
//	  out-of-range positions yield zero values instead of errors.
//	  Available in the "github.com/ValentinKolb/oSeq/lib/container/linked" package.
//
// Neither container is safe for unsynchronized concurrent use; callers that
// share a container across goroutines must serialize access externally. The
// lib/cache and lib/window packages show how to do that.
package container
