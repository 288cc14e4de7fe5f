// Package vector implements the growable contiguous sequence that every
// stlvec handle refers to.
//
// A Vector is written once over an integer element type and instantiated per
// element type by the boundary layer in package stlvec. Storage growth is
// whatever append provides; the package adds bounds checking and nothing else.
//
// # Bounds
//
// At, Set and Erase accept indices in [0, Size()). Insert accepts [0, Size()].
// EraseRange accepts 0 <= begin <= end <= Size(). Violations are reported as
// errors that wrap ErrOutOfRange or ErrInvalidRange; indices are never clamped.
//
// # Threading
//
// A Vector is not safe for concurrent use. Callers own synchronization.
package vector
