// Package list adapts a flat per-type vector function table into a
// list-like Go value.
//
// The table is anything that satisfies Ops: the native stlvec.Table, or a
// client driving the same functions through another boundary such as the
// wasm host module. List resolves negative indices and checks bounds itself
// before calling the table, so ordinary misuse surfaces as ErrIndex rather
// than as a boundary failure.
package list

import (
	"errors"
	"fmt"
	"iter"
	"strconv"
	"strings"

	"github.com/stlvec/stlvec-go/pkg/stlvec/vector"
)

var (
	// ErrIndex reports an index outside the list after negative resolution.
	ErrIndex = errors.New("list: index out of range")

	// ErrNotFound reports a value that is not in the list.
	ErrNotFound = errors.New("list: value not found")

	// ErrEmpty reports a pop from an empty list.
	ErrEmpty = errors.New("list: pop from empty list")

	// ErrStep reports a zero slice step.
	ErrStep = errors.New("list: slice step cannot be zero")

	// ErrClosed is returned by Close when called twice.
	ErrClosed = errors.New("list: closed")
)

// Ops is the flat function table of one element type.
type Ops[T vector.Integer] interface {
	New() uintptr
	Delete(h uintptr)
	Size(h uintptr) uint64
	At(h uintptr, i uint64) T
	Set(h uintptr, i uint64, value T)
	PushBack(h uintptr, value T)
	Insert(h uintptr, i uint64, value T)
	Erase(h uintptr, i uint64)
	EraseSlice(h uintptr, begin, end uint64)
	Find(h uintptr, value T) int
	PopBack(h uintptr) T
	Count(h uintptr, value T) uint64
	Sort(h uintptr)
	Reverse(h uintptr)
	Equal(a, b uintptr) bool

	// TakeError returns and clears the failure recorded by the last call.
	TakeError() error
}

// List is a list view over one vector handle. It is not safe for concurrent
// use.
type List[T vector.Integer] struct {
	ops     Ops[T]
	handle  uintptr
	managed bool
	closed  bool
}

// Option configures Attach.
type Option func(*settings)

type settings struct {
	managed bool
}

// Managed sets whether Close deletes the handle.
func Managed(managed bool) Option {
	return func(s *settings) {
		s.managed = managed
	}
}

// New allocates a fresh vector through ops, fills it with values, and returns
// a list that deletes the vector on Close.
func New[T vector.Integer](ops Ops[T], values ...T) (*List[T], error) {
	h := ops.New()
	if err := ops.TakeError(); err != nil {
		if h != 0 {
			ops.Delete(h)
			_ = ops.TakeError()
		}
		return nil, err
	}
	l := &List[T]{ops: ops, handle: h, managed: true}
	if err := l.Extend(values...); err != nil {
		_ = l.Close()
		return nil, err
	}
	return l, nil
}

// Attach wraps an existing handle. By default the list does not own it and
// Close leaves it alive; pass Managed(true) to transfer ownership.
func Attach[T vector.Integer](ops Ops[T], h uintptr, opts ...Option) *List[T] {
	var s settings
	for _, opt := range opts {
		opt(&s)
	}
	return &List[T]{ops: ops, handle: h, managed: s.managed}
}

// Handle returns the underlying vector handle.
func (l *List[T]) Handle() uintptr {
	return l.handle
}

// Managed reports whether Close deletes the handle.
func (l *List[T]) Managed() bool {
	return l.managed
}

// Close deletes the handle if the list owns it.
func (l *List[T]) Close() error {
	if l.closed {
		return ErrClosed
	}
	l.closed = true
	if !l.managed {
		return nil
	}
	l.ops.Delete(l.handle)
	return l.ops.TakeError()
}

// Len returns the number of elements. It returns 0 if the handle is unusable.
func (l *List[T]) Len() int {
	n, err := l.size()
	if err != nil {
		return 0
	}
	return n
}

func (l *List[T]) size() (int, error) {
	n := l.ops.Size(l.handle)
	return int(n), l.ops.TakeError()
}

// resolve maps a possibly negative index to [0, limit).
func resolve(i, size, limit int) (int, error) {
	if i < 0 {
		i += size
	}
	if i < 0 || i >= limit {
		return 0, fmt.Errorf("%w: %d", ErrIndex, i)
	}
	return i, nil
}

func (l *List[T]) index(i int) (int, error) {
	size, err := l.size()
	if err != nil {
		return 0, err
	}
	return resolve(i, size, size)
}

// Get returns the element at i. Negative indices count from the end.
func (l *List[T]) Get(i int) (T, error) {
	idx, err := l.index(i)
	if err != nil {
		return 0, err
	}
	v := l.ops.At(l.handle, uint64(idx))
	return v, l.ops.TakeError()
}

// Set overwrites the element at i.
func (l *List[T]) Set(i int, value T) error {
	idx, err := l.index(i)
	if err != nil {
		return err
	}
	l.ops.Set(l.handle, uint64(idx), value)
	return l.ops.TakeError()
}

// Insert places value before position i. i may equal Len().
func (l *List[T]) Insert(i int, value T) error {
	size, err := l.size()
	if err != nil {
		return err
	}
	idx, err := resolve(i, size, size+1)
	if err != nil {
		return err
	}
	l.ops.Insert(l.handle, uint64(idx), value)
	return l.ops.TakeError()
}

// Delete removes the element at i.
func (l *List[T]) Delete(i int) error {
	idx, err := l.index(i)
	if err != nil {
		return err
	}
	l.ops.Erase(l.handle, uint64(idx))
	return l.ops.TakeError()
}

// Append adds value at the end.
func (l *List[T]) Append(value T) error {
	l.ops.PushBack(l.handle, value)
	return l.ops.TakeError()
}

// Extend appends every value in order.
func (l *List[T]) Extend(values ...T) error {
	for _, v := range values {
		if err := l.Append(v); err != nil {
			return err
		}
	}
	return nil
}

// Index returns the position of the first element equal to value.
func (l *List[T]) Index(value T) (int, error) {
	i := l.ops.Find(l.handle, value)
	if err := l.ops.TakeError(); err != nil {
		return 0, err
	}
	if i < 0 {
		return 0, fmt.Errorf("%w: %d", ErrNotFound, value)
	}
	return i, nil
}

// Contains reports whether value is in the list.
func (l *List[T]) Contains(value T) bool {
	_, err := l.Index(value)
	return err == nil
}

// Remove deletes the first element equal to value.
func (l *List[T]) Remove(value T) error {
	i, err := l.Index(value)
	if err != nil {
		return err
	}
	return l.Delete(i)
}

// Pop removes and returns the last element.
func (l *List[T]) Pop() (T, error) {
	size, err := l.size()
	if err != nil {
		return 0, err
	}
	if size == 0 {
		return 0, ErrEmpty
	}
	v := l.ops.PopBack(l.handle)
	return v, l.ops.TakeError()
}

// PopAt removes and returns the element at i.
func (l *List[T]) PopAt(i int) (T, error) {
	size, err := l.size()
	if err != nil {
		return 0, err
	}
	if size == 0 {
		return 0, ErrEmpty
	}
	v, err := l.Get(i)
	if err != nil {
		return 0, err
	}
	return v, l.Delete(i)
}

// Count returns how many elements equal value.
func (l *List[T]) Count(value T) (int, error) {
	n := l.ops.Count(l.handle, value)
	if err := l.ops.TakeError(); err != nil {
		return 0, err
	}
	return int(n), nil
}

// Sort sorts the list ascending.
func (l *List[T]) Sort() error {
	l.ops.Sort(l.handle)
	return l.ops.TakeError()
}

// Reverse reverses the list in place.
func (l *List[T]) Reverse() error {
	l.ops.Reverse(l.handle)
	return l.ops.TakeError()
}

// Equal reports whether both lists hold the same elements in order. Lists
// over the same table are compared by the table itself.
func (l *List[T]) Equal(other *List[T]) bool {
	if other == nil {
		return false
	}
	if l.ops == other.ops {
		eq := l.ops.Equal(l.handle, other.handle)
		err := l.ops.TakeError()
		return eq && err == nil
	}
	a, err := l.Values()
	if err != nil {
		return false
	}
	b, err := other.Values()
	if err != nil || len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Values copies every element into a slice.
func (l *List[T]) Values() ([]T, error) {
	size, err := l.size()
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, size)
	for i := 0; i < size; i++ {
		out = append(out, l.ops.At(l.handle, uint64(i)))
	}
	return out, l.ops.TakeError()
}

// All iterates over the elements, stopping at the first failed read.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < l.Len(); i++ {
			v := l.ops.At(l.handle, uint64(i))
			if l.ops.TakeError() != nil || !yield(v) {
				return
			}
		}
	}
}

// Slice returns the elements selected by start:stop:step. Negative start and
// stop count from the end; out-of-range bounds are clamped.
func (l *List[T]) Slice(start, stop, step int) ([]T, error) {
	if step == 0 {
		return nil, ErrStep
	}
	size, err := l.size()
	if err != nil {
		return nil, err
	}
	if size == 0 {
		return []T{}, nil
	}

	if start < 0 {
		start += size
	}
	if stop < 0 {
		stop += size
	}
	start = max(0, min(start, size-1))
	stop = max(-1, min(stop, size))

	out := []T{}
	for i := start; (step > 0 && i < stop) || (step < 0 && i > stop); i += step {
		out = append(out, l.ops.At(l.handle, uint64(i)))
	}
	return out, l.ops.TakeError()
}

// DeleteSlice removes the elements between start and stop. Negative bounds
// count from the end, bounds are clamped to the list, and reversed bounds
// are swapped.
func (l *List[T]) DeleteSlice(start, stop int) error {
	size, err := l.size()
	if err != nil {
		return err
	}
	if size == 0 {
		return nil
	}

	if start < 0 {
		start += size
	}
	if stop < 0 {
		stop += size
	}
	start = max(0, min(start, size))
	stop = max(0, min(stop, size))
	if start > stop {
		start, stop = stop, start
	}

	l.ops.EraseSlice(l.handle, uint64(start), uint64(stop))
	return l.ops.TakeError()
}

// String formats the list as "[1, 2, 3]".
func (l *List[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	i := 0
	for v := range l.All() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(format(v))
		i++
	}
	b.WriteByte(']')
	return b.String()
}

func format[T vector.Integer](v T) string {
	if v < 0 {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatUint(uint64(v), 10)
}
