package list

import (
	"errors"
	"fmt"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errFake = errors.New("fake failure")

// fakeOps records every call and keeps vectors in a map.
type fakeOps struct {
	next  uintptr
	vecs  map[uintptr][]int
	calls []string
	err   error
}

func newFakeOps() *fakeOps {
	return &fakeOps{vecs: map[uintptr][]int{}}
}

func (f *fakeOps) call(format string, args ...any) {
	f.calls = append(f.calls, fmt.Sprintf(format, args...))
}

func (f *fakeOps) vec(h uintptr) []int {
	v, ok := f.vecs[h]
	if !ok {
		f.err = errFake
	}
	return v
}

func (f *fakeOps) New() uintptr {
	f.next++
	f.vecs[f.next] = []int{}
	f.call("new")
	return f.next
}

func (f *fakeOps) Delete(h uintptr) {
	f.call("delete %d", h)
	f.vec(h)
	delete(f.vecs, h)
}

func (f *fakeOps) Size(h uintptr) uint64 {
	return uint64(len(f.vec(h)))
}

func (f *fakeOps) At(h uintptr, i uint64) int {
	f.call("at %d", i)
	return f.vec(h)[i]
}

func (f *fakeOps) Set(h uintptr, i uint64, v int) {
	f.call("set %d %d", i, v)
	f.vec(h)[i] = v
}

func (f *fakeOps) PushBack(h uintptr, v int) {
	if _, ok := f.vecs[h]; !ok {
		f.err = errFake
		return
	}
	f.vecs[h] = append(f.vecs[h], v)
}

func (f *fakeOps) Insert(h uintptr, i uint64, v int) {
	f.call("insert %d %d", i, v)
	f.vecs[h] = slices.Insert(f.vec(h), int(i), v)
}

func (f *fakeOps) Erase(h uintptr, i uint64) {
	f.call("erase %d", i)
	f.vecs[h] = slices.Delete(f.vec(h), int(i), int(i)+1)
}

func (f *fakeOps) EraseSlice(h uintptr, b, e uint64) {
	f.call("erase_slice %d %d", b, e)
	f.vecs[h] = slices.Delete(f.vec(h), int(b), int(e))
}

func (f *fakeOps) Find(h uintptr, v int) int {
	return slices.Index(f.vec(h), v)
}

func (f *fakeOps) PopBack(h uintptr) int {
	f.call("pop_back")
	v := f.vec(h)
	last := v[len(v)-1]
	f.vecs[h] = v[:len(v)-1]
	return last
}

func (f *fakeOps) Count(h uintptr, v int) uint64 {
	n := 0
	for _, x := range f.vec(h) {
		if x == v {
			n++
		}
	}
	return uint64(n)
}

func (f *fakeOps) Sort(h uintptr) {
	slices.Sort(f.vec(h))
}

func (f *fakeOps) Reverse(h uintptr) {
	slices.Reverse(f.vec(h))
}

func (f *fakeOps) Equal(a, b uintptr) bool {
	f.call("equal")
	return slices.Equal(f.vec(a), f.vec(b))
}

func (f *fakeOps) TakeError() error {
	err := f.err
	f.err = nil
	return err
}

func newFakeList(t *testing.T, values ...int) (*List[int], *fakeOps) {
	t.Helper()
	ops := newFakeOps()
	l, err := New[int](ops, values...)
	require.NoError(t, err)
	ops.calls = nil
	return l, ops
}

func TestNegativeIndex(t *testing.T) {
	l, ops := newFakeList(t, 1, 2, 3)

	v, err := l.Get(-1)
	require.NoError(t, err)
	assert.Equal(t, 3, v)

	require.NoError(t, l.Set(-3, 9))
	require.NoError(t, l.Delete(-2))
	assert.Equal(t, []string{"at 2", "set 0 9", "erase 1"}, ops.calls)
}

func TestIndexOutOfRange(t *testing.T) {
	l, ops := newFakeList(t, 1, 2, 3)

	for _, i := range []int{3, -4, 100} {
		_, err := l.Get(i)
		assert.ErrorIs(t, err, ErrIndex, "get %d", i)
		assert.ErrorIs(t, l.Set(i, 0), ErrIndex, "set %d", i)
		assert.ErrorIs(t, l.Delete(i), ErrIndex, "delete %d", i)
	}
	assert.ErrorIs(t, l.Insert(4, 0), ErrIndex)
	assert.Empty(t, ops.calls, "out-of-range calls must not reach the table")
}

func TestInsert(t *testing.T) {
	l, ops := newFakeList(t, 1, 2, 3)

	require.NoError(t, l.Insert(3, 4))
	require.NoError(t, l.Insert(-1, 7))
	require.NoError(t, l.Insert(0, 0))
	assert.Equal(t, []string{"insert 3 4", "insert 3 7", "insert 0 0"}, ops.calls)
	assert.Equal(t, []int{0, 1, 2, 3, 7, 4}, ops.vecs[l.Handle()])
}

func TestSlice(t *testing.T) {
	values := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}

	tests := []struct {
		name              string
		start, stop, step int
		want              []int
	}{
		{"whole", 0, 10, 1, values},
		{"reverse clamped", 100, -100, -1, []int{9, 8, 7, 6, 5, 4, 3, 2, 1, 0}},
		{"forward clamped empty", 100, -100, 1, []int{}},
		{"negative bounds", -3, -1, 1, []int{7, 8}},
		{"stride", 1, 10, 3, []int{1, 4, 7}},
		{"reverse stride", 9, 0, -4, []int{9, 5, 1}},
		{"empty window", 5, 2, 1, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, _ := newFakeList(t, values...)
			got, err := l.Slice(tt.start, tt.stop, tt.step)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	l, _ := newFakeList(t, values...)
	_, err := l.Slice(0, 10, 0)
	require.ErrorIs(t, err, ErrStep)

	empty, _ := newFakeList(t)
	got, err := empty.Slice(-5, 5, 1)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestDeleteSlice(t *testing.T) {
	tests := []struct {
		name        string
		start, stop int
		call        string
	}{
		{"in range", 2, 5, "erase_slice 2 5"},
		{"clamped", -100, 100, "erase_slice 0 10"},
		{"negative", -3, -1, "erase_slice 7 9"},
		{"swapped", 8, 3, "erase_slice 3 8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, ops := newFakeList(t, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9)
			require.NoError(t, l.DeleteSlice(tt.start, tt.stop))
			assert.Equal(t, []string{tt.call}, ops.calls)
		})
	}

	empty, ops := newFakeList(t)
	require.NoError(t, empty.DeleteSlice(0, 10))
	assert.Empty(t, ops.calls)
}

func TestSearchAndRemove(t *testing.T) {
	l, _ := newFakeList(t, 4, 5, 4, 6)

	i, err := l.Index(4)
	require.NoError(t, err)
	assert.Equal(t, 0, i)
	assert.True(t, l.Contains(6))
	assert.False(t, l.Contains(7))
	n, err := l.Count(4)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	_, err = l.Index(7)
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, l.Remove(4))
	assert.Equal(t, "[5, 4, 6]", l.String())
	require.ErrorIs(t, l.Remove(7), ErrNotFound)
}

func TestPop(t *testing.T) {
	l, ops := newFakeList(t, 1, 2, 3)

	v, err := l.Pop()
	require.NoError(t, err)
	assert.Equal(t, 3, v)

	v, err = l.PopAt(0)
	require.NoError(t, err)
	assert.Equal(t, 1, v)
	assert.Equal(t, 1, l.Len())

	require.NoError(t, l.DeleteSlice(0, 1))
	ops.calls = nil
	_, err = l.Pop()
	require.ErrorIs(t, err, ErrEmpty)
	_, err = l.PopAt(-1)
	require.ErrorIs(t, err, ErrEmpty)
	assert.Empty(t, ops.calls)
}

func TestEqual(t *testing.T) {
	ops := newFakeOps()
	a, err := New[int](ops, 1, 2)
	require.NoError(t, err)
	b, err := New[int](ops, 1, 2)
	require.NoError(t, err)
	ops.calls = nil

	assert.True(t, a.Equal(b))
	assert.Equal(t, []string{"equal"}, ops.calls)
	assert.False(t, a.Equal(nil))

	c, _ := newFakeList(t, 1, 2)
	assert.True(t, a.Equal(c))
	require.NoError(t, c.Append(3))
	assert.False(t, a.Equal(c))
}

func TestSortReverseString(t *testing.T) {
	l, _ := newFakeList(t, 3, -1, 2)

	assert.Equal(t, "[3, -1, 2]", l.String())
	require.NoError(t, l.Sort())
	assert.Equal(t, "[-1, 2, 3]", l.String())
	require.NoError(t, l.Reverse())

	values, err := l.Values()
	require.NoError(t, err)
	assert.Equal(t, []int{3, 2, -1}, values)
	assert.Equal(t, values, slices.Collect(l.All()))

	empty, _ := newFakeList(t)
	assert.Equal(t, "[]", empty.String())
}

func TestOwnership(t *testing.T) {
	ops := newFakeOps()
	h := ops.New()

	attached := Attach[int](ops, h)
	assert.False(t, attached.Managed())
	require.NoError(t, attached.Close())
	require.ErrorIs(t, attached.Close(), ErrClosed)
	assert.Contains(t, ops.vecs, h, "unmanaged close must keep the vector")

	owned := Attach[int](ops, h, Managed(true))
	require.NoError(t, owned.Close())
	assert.NotContains(t, ops.vecs, h)
	assert.Equal(t, []string{"new", fmt.Sprintf("delete %d", h)}, ops.calls)
}

func TestTableErrorsSurface(t *testing.T) {
	ops := newFakeOps()
	l := Attach[int](ops, 42)

	assert.Zero(t, l.Len())
	_, err := l.Get(0)
	require.ErrorIs(t, err, errFake)
	require.ErrorIs(t, l.Append(1), errFake)
	_, err = l.Values()
	require.ErrorIs(t, err, errFake)
}

func TestFailuresDoNotOutliveTheirCall(t *testing.T) {
	l, ops := newFakeList(t, 1, 2)
	stale := Attach[int](ops, 99)

	_, err := stale.Count(1)
	require.ErrorIs(t, err, errFake)
	assert.False(t, l.Equal(stale))
	assert.NoError(t, ops.TakeError())
	require.NoError(t, l.Append(3))

	_, err = stale.PopAt(0)
	require.ErrorIs(t, err, errFake)
	assert.NotErrorIs(t, err, ErrEmpty)
}

func TestNewReleasesHandleOnFailure(t *testing.T) {
	ops := newFakeOps()
	ops.err = errFake
	_, err := New[int](ops, 1)
	require.ErrorIs(t, err, errFake)
	assert.Empty(t, ops.vecs)
	assert.Equal(t, []string{"new", "delete 1"}, ops.calls)
}
