package container

import (
	"errors"
	"fmt"
)

// --------------------------------------------------------------------------
// Error Definitions
// --------------------------------------------------------------------------

// ErrOutOfRange is the sentinel error for positional access outside the valid
// window of a container. Callers can match it with errors.Is regardless of
// which container produced the error.
var ErrOutOfRange = errors.New("index out of range")

// IndexError is the error type returned by containers with a hard failure
// policy for positional access. It wraps the out-of-range sentinel and carries
// the offending index together with the container length at the time of the
// access, so callers can report the exact violation.
type IndexError struct {
	Index int // The requested logical index
	Len   int // Number of valid elements when the access happened
}

// Error implements the error interface.
func (e *IndexError) Error() string {
	return fmt.Sprintf("ContainerError (index out of range): index %d, valid range [0, %d)", e.Index, e.Len)
}

// Is makes errors.Is(err, ErrOutOfRange) match any IndexError.
func (e *IndexError) Is(target error) bool {
	return target == ErrOutOfRange
}

// NewIndexError creates a new IndexError for the given index and length.
func NewIndexError(index, length int) *IndexError {
	return &IndexError{
		Index: index,
		Len:   length,
	}
}
