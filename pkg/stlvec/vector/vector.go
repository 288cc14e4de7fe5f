package vector

import (
	"cmp"
	"slices"
)

// Integer is the set of element types a Vector can hold.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Vector is a growable array of integers.
type Vector[T Integer] struct {
	data     []T
	released bool
}

// New returns an empty vector.
func New[T Integer]() *Vector[T] {
	return &Vector[T]{}
}

// From returns a vector holding a copy of values.
func From[T Integer](values ...T) *Vector[T] {
	return &Vector[T]{data: slices.Clone(values)}
}

// Release drops the backing storage. Every later call except Released and
// Release itself fails with ErrReleased or behaves as an empty vector.
func (v *Vector[T]) Release() {
	v.data = nil
	v.released = true
}

// Released reports whether Release was called.
func (v *Vector[T]) Released() bool {
	return v.released
}

// Size returns the number of stored elements.
func (v *Vector[T]) Size() int {
	return len(v.data)
}

// At returns the element at index i.
func (v *Vector[T]) At(i int) (T, error) {
	if err := v.check("at", i, len(v.data)); err != nil {
		var zero T
		return zero, err
	}
	return v.data[i], nil
}

// Set overwrites the element at index i.
func (v *Vector[T]) Set(i int, value T) error {
	if err := v.check("set", i, len(v.data)); err != nil {
		return err
	}
	v.data[i] = value
	return nil
}

// PushBack appends value.
func (v *Vector[T]) PushBack(value T) error {
	if v.released {
		return ErrReleased
	}
	v.data = append(v.data, value)
	return nil
}

// Insert places value before position i. i may equal Size().
func (v *Vector[T]) Insert(i int, value T) error {
	if err := v.check("insert", i, len(v.data)+1); err != nil {
		return err
	}
	v.data = slices.Insert(v.data, i, value)
	return nil
}

// Erase removes the element at index i.
func (v *Vector[T]) Erase(i int) error {
	if err := v.check("erase", i, len(v.data)); err != nil {
		return err
	}
	v.data = slices.Delete(v.data, i, i+1)
	return nil
}

// EraseRange removes the half-open range [begin, end).
func (v *Vector[T]) EraseRange(begin, end int) error {
	if v.released {
		return ErrReleased
	}
	if begin < 0 || begin > end || end > len(v.data) {
		return invalidRange("erase_range", begin, end, len(v.data))
	}
	v.data = slices.Delete(v.data, begin, end)
	return nil
}

// Find returns the lowest index holding value, or -1.
func (v *Vector[T]) Find(value T) int {
	return slices.Index(v.data, value)
}

// PopBack removes and returns the last element.
func (v *Vector[T]) PopBack() (T, error) {
	var zero T
	if v.released {
		return zero, ErrReleased
	}
	n := len(v.data)
	if n == 0 {
		return zero, ErrEmpty
	}
	back := v.data[n-1]
	v.data = v.data[:n-1]
	return back, nil
}

// Count returns how many elements equal value.
func (v *Vector[T]) Count(value T) int {
	n := 0
	for _, x := range v.data {
		if x == value {
			n++
		}
	}
	return n
}

// Sort orders the elements ascending. Equal elements keep their relative order.
func (v *Vector[T]) Sort() {
	slices.SortStableFunc(v.data, cmp.Compare[T])
}

// Reverse reverses the element order in place.
func (v *Vector[T]) Reverse() {
	slices.Reverse(v.data)
}

// Equal reports whether both vectors hold the same elements in the same order.
func (v *Vector[T]) Equal(other *Vector[T]) bool {
	if v == other {
		return true
	}
	if other == nil {
		return false
	}
	return slices.Equal(v.data, other.data)
}

// Values returns a copy of the contents. The result is never nil.
func (v *Vector[T]) Values() []T {
	return append(make([]T, 0, len(v.data)), v.data...)
}

func (v *Vector[T]) check(op string, i, limit int) error {
	if v.released {
		return ErrReleased
	}
	if i < 0 || i >= limit {
		return outOfRange(op, i, len(v.data))
	}
	return nil
}
