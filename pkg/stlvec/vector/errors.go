package vector

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange reports an index outside the valid range of the operation.
	ErrOutOfRange = errors.New("vector: index out of range")

	// ErrInvalidRange reports an erase range that is not 0 <= begin <= end <= size.
	ErrInvalidRange = errors.New("vector: invalid range")

	// ErrEmpty reports an operation that needs at least one element.
	ErrEmpty = errors.New("vector: empty vector")

	// ErrReleased reports use of a vector after Release.
	ErrReleased = errors.New("vector: used after release")
)

// RangeError carries the offending index (or range) and the size the
// operation saw. It unwraps to ErrOutOfRange or ErrInvalidRange.
type RangeError struct {
	Op    string
	Index int
	End   int
	Size  int
	err   error
}

func (e *RangeError) Error() string {
	if e.err == ErrInvalidRange {
		return fmt.Sprintf("%s: range [%d, %d) invalid for size %d", e.Op, e.Index, e.End, e.Size)
	}
	return fmt.Sprintf("%s: index %d out of range for size %d", e.Op, e.Index, e.Size)
}

func (e *RangeError) Unwrap() error {
	return e.err
}

func outOfRange(op string, index, size int) error {
	return &RangeError{Op: op, Index: index, End: index + 1, Size: size, err: ErrOutOfRange}
}

func invalidRange(op string, begin, end, size int) error {
	return &RangeError{Op: op, Index: begin, End: end, Size: size, err: ErrInvalidRange}
}
