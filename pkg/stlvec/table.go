package stlvec

import (
	"context"
	"math"

	"go.uber.org/zap"

	"github.com/stlvec/stlvec-go/internal/handles"
	"github.com/stlvec/stlvec-go/pkg/stlvec/vector"
)

// Table is the flat function table for one element type. Every method is a
// pass-through to vector.Vector after resolving the handle.
type Table[T vector.Integer] struct {
	lib   *Library
	typ   ElementType
	kind  handles.Kind
	names [numOps]string
}

func newTable[T vector.Integer](lib *Library, typ ElementType, kind handles.Kind) *Table[T] {
	t := &Table[T]{lib: lib, typ: typ, kind: kind}
	for _, op := range Operations() {
		t.names[op] = ExportName(Prefix, typ, op)
	}
	return t
}

// Type returns the element type this table serves.
func (t *Table[T]) Type() ElementType {
	return t.typ
}

// TakeError returns and clears the owning library's last failure.
func (t *Table[T]) TakeError() error {
	return t.lib.TakeError()
}

func (t *Table[T]) fail(op Op, err error) {
	t.lib.record(t.names[op], err)
}

// get resolves h for op. Every operation starts here or in New/Delete, which
// also reset the last-error slot so it only ever describes the latest call.
func (t *Table[T]) get(op Op, h uintptr) *vector.Vector[T] {
	t.lib.ClearError()
	v, err := t.lib.reg.Get(handles.Handle(h), t.kind)
	if err != nil {
		t.fail(op, err)
		return nil
	}
	return v.(*vector.Vector[T])
}

// index converts a foreign unsigned index. Values beyond the platform int
// range can never be in bounds, so they are mapped to math.MaxInt and fail
// the bounds check.
func index(i uint64) int {
	if i > math.MaxInt {
		return math.MaxInt
	}
	return int(i)
}

// New allocates an empty vector and returns its handle, or 0 on failure.
func (t *Table[T]) New() uintptr {
	t.lib.ClearError()
	h, err := t.lib.reg.Insert(t.kind, vector.New[T]())
	if err != nil {
		t.fail(OpNew, err)
		return 0
	}
	t.lib.log.Debug(context.Background(), "vector created",
		zap.String("type", t.typ.Name), zap.Uintptr("handle", uintptr(h)))
	return uintptr(h)
}

// Delete releases the vector. The handle must not be used afterwards; doing
// so reports StatusStaleHandle.
func (t *Table[T]) Delete(h uintptr) {
	t.lib.ClearError()
	v, err := t.lib.reg.Release(handles.Handle(h), t.kind)
	if err != nil {
		t.fail(OpDelete, err)
		return
	}
	v.(*vector.Vector[T]).Release()
	t.lib.log.Debug(context.Background(), "vector deleted",
		zap.String("type", t.typ.Name), zap.Uintptr("handle", h))
}

// Size returns the element count.
func (t *Table[T]) Size(h uintptr) uint64 {
	v := t.get(OpSize, h)
	if v == nil {
		return 0
	}
	return uint64(v.Size())
}

// At returns the element at i.
func (t *Table[T]) At(h uintptr, i uint64) T {
	v := t.get(OpAt, h)
	if v == nil {
		return 0
	}
	x, err := v.At(index(i))
	if err != nil {
		t.fail(OpAt, err)
	}
	return x
}

// Set overwrites the element at i.
func (t *Table[T]) Set(h uintptr, i uint64, value T) {
	v := t.get(OpSet, h)
	if v == nil {
		return
	}
	if err := v.Set(index(i), value); err != nil {
		t.fail(OpSet, err)
	}
}

// PushBack appends value.
func (t *Table[T]) PushBack(h uintptr, value T) {
	v := t.get(OpPushBack, h)
	if v == nil {
		return
	}
	if err := v.PushBack(value); err != nil {
		t.fail(OpPushBack, err)
	}
}

// Insert places value before position i.
func (t *Table[T]) Insert(h uintptr, i uint64, value T) {
	v := t.get(OpInsert, h)
	if v == nil {
		return
	}
	if err := v.Insert(index(i), value); err != nil {
		t.fail(OpInsert, err)
	}
}

// Erase removes the element at i.
func (t *Table[T]) Erase(h uintptr, i uint64) {
	v := t.get(OpErase, h)
	if v == nil {
		return
	}
	if err := v.Erase(index(i)); err != nil {
		t.fail(OpErase, err)
	}
}

// EraseSlice removes [begin, end).
func (t *Table[T]) EraseSlice(h uintptr, begin, end uint64) {
	v := t.get(OpEraseSlice, h)
	if v == nil {
		return
	}
	if err := v.EraseRange(index(begin), index(end)); err != nil {
		t.fail(OpEraseSlice, err)
	}
}

// Find returns the lowest index of value, or -1 when absent or on failure.
func (t *Table[T]) Find(h uintptr, value T) int {
	v := t.get(OpFind, h)
	if v == nil {
		return -1
	}
	return v.Find(value)
}

// PopBack removes and returns the last element.
func (t *Table[T]) PopBack(h uintptr) T {
	v := t.get(OpPopBack, h)
	if v == nil {
		return 0
	}
	x, err := v.PopBack()
	if err != nil {
		t.fail(OpPopBack, err)
	}
	return x
}

// Count returns the number of elements equal to value.
func (t *Table[T]) Count(h uintptr, value T) uint64 {
	v := t.get(OpCount, h)
	if v == nil {
		return 0
	}
	return uint64(v.Count(value))
}

// Sort sorts ascending, stable.
func (t *Table[T]) Sort(h uintptr) {
	if v := t.get(OpSort, h); v != nil {
		v.Sort()
	}
}

// Reverse reverses in place.
func (t *Table[T]) Reverse(h uintptr) {
	if v := t.get(OpReverse, h); v != nil {
		v.Reverse()
	}
}

// Equal reports whether both handles hold equal sequences.
func (t *Table[T]) Equal(a, b uintptr) bool {
	va := t.get(OpEqual, a)
	if va == nil {
		return false
	}
	vb := t.get(OpEqual, b)
	if vb == nil {
		return false
	}
	return va.Equal(vb)
}

// Values returns a copy of the vector's contents. It is not part of the
// foreign table; hosts written in Go use it to snapshot a handle.
func (t *Table[T]) Values(h uintptr) []T {
	v := t.get(OpSize, h)
	if v == nil {
		return nil
	}
	return v.Values()
}
