package stlvec

import (
	"errors"
	"fmt"

	"github.com/stlvec/stlvec-go/internal/handles"
	"github.com/stlvec/stlvec-go/pkg/stlvec/vector"
)

// Status is the integer error code reported across the foreign boundary.
type Status int32

const (
	StatusOK Status = iota
	StatusOutOfRange
	StatusEmpty
	StatusInvalidRange
	StatusInvalidHandle
	StatusStaleHandle
	StatusTypeMismatch
	StatusInternal
)

var statusNames = [...]string{
	StatusOK:            "ok",
	StatusOutOfRange:    "out of range",
	StatusEmpty:         "empty",
	StatusInvalidRange:  "invalid range",
	StatusInvalidHandle: "invalid handle",
	StatusStaleHandle:   "stale handle",
	StatusTypeMismatch:  "type mismatch",
	StatusInternal:      "internal error",
}

func (s Status) String() string {
	if s >= 0 && int(s) < len(statusNames) {
		return statusNames[s]
	}
	return fmt.Sprintf("status(%d)", int32(s))
}

var (
	ErrOutOfRange    = vector.ErrOutOfRange
	ErrEmpty         = vector.ErrEmpty
	ErrInvalidRange  = vector.ErrInvalidRange
	ErrInvalidHandle = handles.ErrInvalid
	ErrStaleHandle   = handles.ErrStale
	ErrTypeMismatch  = handles.ErrKind

	// ErrInternal covers registry exhaustion and any failure without a more
	// specific status.
	ErrInternal = errors.New("stlvec: internal error")

	// ErrLibraryClosed is returned by Close when called twice.
	ErrLibraryClosed = errors.New("stlvec: library closed")
)

// OpError records which boundary function failed.
type OpError struct {
	Func string
	Err  error
}

func (e *OpError) Error() string {
	return e.Func + ": " + e.Err.Error()
}

func (e *OpError) Unwrap() error {
	return e.Err
}

// StatusOf maps an error to its boundary status code.
func StatusOf(err error) Status {
	switch {
	case err == nil:
		return StatusOK
	case errors.Is(err, vector.ErrOutOfRange):
		return StatusOutOfRange
	case errors.Is(err, vector.ErrEmpty):
		return StatusEmpty
	case errors.Is(err, vector.ErrInvalidRange):
		return StatusInvalidRange
	case errors.Is(err, handles.ErrInvalid):
		return StatusInvalidHandle
	case errors.Is(err, handles.ErrStale), errors.Is(err, vector.ErrReleased):
		return StatusStaleHandle
	case errors.Is(err, handles.ErrKind):
		return StatusTypeMismatch
	default:
		return StatusInternal
	}
}

// ErrorOf maps a status code reported by a foreign boundary back to a Go
// error. StatusOK maps to nil.
func ErrorOf(s Status) error {
	switch s {
	case StatusOK:
		return nil
	case StatusOutOfRange:
		return ErrOutOfRange
	case StatusEmpty:
		return ErrEmpty
	case StatusInvalidRange:
		return ErrInvalidRange
	case StatusInvalidHandle:
		return ErrInvalidHandle
	case StatusStaleHandle:
		return ErrStaleHandle
	case StatusTypeMismatch:
		return ErrTypeMismatch
	default:
		return ErrInternal
	}
}
