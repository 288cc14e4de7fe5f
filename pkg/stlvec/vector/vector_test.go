package vector

import (
	"errors"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPushBackThenAt(t *testing.T) {
	values := []int32{7, -3, 0, 42, 7}
	v := New[int32]()
	for _, x := range values {
		require.NoError(t, v.PushBack(x))
	}

	require.Equal(t, len(values), v.Size())
	for i, want := range values {
		got, err := v.At(i)
		require.NoError(t, err)
		assert.Equal(t, want, got, "index %d", i)
	}
}

func TestAtOutOfRange(t *testing.T) {
	v := From[int64](1, 2, 3)

	for _, i := range []int{-1, 3, 100} {
		_, err := v.At(i)
		require.ErrorIs(t, err, ErrOutOfRange)

		var rerr *RangeError
		require.True(t, errors.As(err, &rerr))
		assert.Equal(t, i, rerr.Index)
		assert.Equal(t, 3, rerr.Size)
		assert.Equal(t, "at", rerr.Op)
	}
}

func TestSet(t *testing.T) {
	v := From[int32](1, 2, 3)

	require.NoError(t, v.Set(1, 20))
	assert.Equal(t, []int32{1, 20, 3}, v.Values())

	require.ErrorIs(t, v.Set(3, 9), ErrOutOfRange)
	require.ErrorIs(t, New[int32]().Set(0, 9), ErrOutOfRange)
	assert.Equal(t, []int32{1, 20, 3}, v.Values())
}

func TestInsertBounds(t *testing.T) {
	v := From[int](1, 2)

	require.NoError(t, v.Insert(0, 0))
	require.NoError(t, v.Insert(3, 3))
	require.NoError(t, v.Insert(2, 9))
	assert.Equal(t, []int{0, 1, 9, 2, 3}, v.Values())

	require.ErrorIs(t, v.Insert(6, 1), ErrOutOfRange)
	require.ErrorIs(t, v.Insert(-1, 1), ErrOutOfRange)
}

func TestInsertEraseInverse(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for round := 0; round < 50; round++ {
		v := New[int32]()
		for n := rng.IntN(20); n > 0; n-- {
			require.NoError(t, v.PushBack(rng.Int32N(10)))
		}
		before := v.Values()
		i := rng.IntN(v.Size() + 1)

		require.NoError(t, v.Insert(i, 99))
		require.Equal(t, len(before)+1, v.Size())
		require.NoError(t, v.Erase(i))

		require.Equal(t, before, v.Values(), "round %d index %d", round, i)
	}
}

func TestValuesNeverNil(t *testing.T) {
	fresh := New[int32]()
	require.NotNil(t, fresh.Values())

	drained := From[int32](7)
	require.NoError(t, drained.Erase(0))
	assert.Equal(t, fresh.Values(), drained.Values())

	released := From[int32](1)
	released.Release()
	assert.Equal(t, []int32{}, released.Values())
}

func TestErase(t *testing.T) {
	v := From[int32](1, 2, 3)

	require.NoError(t, v.Erase(1))
	assert.Equal(t, []int32{1, 3}, v.Values())

	require.ErrorIs(t, v.Erase(2), ErrOutOfRange)
	require.ErrorIs(t, New[int32]().Erase(0), ErrOutOfRange)
}

func TestEraseRange(t *testing.T) {
	tests := []struct {
		name       string
		begin, end int
		want       []int
		err        error
	}{
		{"middle", 1, 3, []int{0, 3, 4}, nil},
		{"empty range", 2, 2, []int{0, 1, 2, 3, 4}, nil},
		{"everything", 0, 5, []int{}, nil},
		{"tail", 3, 5, []int{0, 1, 2}, nil},
		{"end past size", 3, 6, nil, ErrInvalidRange},
		{"begin after end", 3, 2, nil, ErrInvalidRange},
		{"negative begin", -1, 2, nil, ErrInvalidRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := From(0, 1, 2, 3, 4)
			err := v.EraseRange(tt.begin, tt.end)
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
				assert.Equal(t, 5, v.Size(), "failed erase must not mutate")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 5-(tt.end-tt.begin), v.Size())
			assert.Equal(t, tt.want, append([]int{}, v.Values()...))
		})
	}
}

func TestPushPopInverse(t *testing.T) {
	v := From[int64](5, 6)

	require.NoError(t, v.PushBack(-8))
	got, err := v.PopBack()
	require.NoError(t, err)
	assert.Equal(t, int64(-8), got)
	assert.Equal(t, 2, v.Size())
}

func TestPopBackEmpty(t *testing.T) {
	v := New[int32]()
	_, err := v.PopBack()
	require.ErrorIs(t, err, ErrEmpty)
	assert.Zero(t, v.Size())
}

func TestFindAndCount(t *testing.T) {
	v := From[int32](4, 1, 4, 2, 4)

	assert.Equal(t, 0, v.Find(4))
	assert.Equal(t, 1, v.Find(1))
	assert.Equal(t, -1, v.Find(9))
	assert.Equal(t, 3, v.Count(4))
	assert.Equal(t, 0, v.Count(9))
	assert.Equal(t, -1, New[int32]().Find(0))
}

func TestFindCountAgree(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	v := New[int]()
	for i := 0; i < 200; i++ {
		require.NoError(t, v.PushBack(rng.IntN(30)))
	}
	values := v.Values()

	for x := -1; x <= 31; x++ {
		idx := v.Find(x)
		assert.Equal(t, slices.Index(values, x), idx)
		assert.Equal(t, v.Count(x) == 0, idx == -1, "value %d", x)
	}
}

func TestSort(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))
	v := New[int32]()
	for i := 0; i < 100; i++ {
		require.NoError(t, v.PushBack(rng.Int32N(50)-25))
	}

	v.Sort()
	once := v.Values()
	for i := 0; i+1 < len(once); i++ {
		require.LessOrEqual(t, once[i], once[i+1])
	}

	v.Sort()
	assert.Equal(t, once, v.Values())
}

func TestReverseInvolution(t *testing.T) {
	v := From[int64](1, 2, 3, 4)
	v.Reverse()
	assert.Equal(t, []int64{4, 3, 2, 1}, v.Values())
	v.Reverse()
	assert.Equal(t, []int64{1, 2, 3, 4}, v.Values())
}

func TestEqual(t *testing.T) {
	a := From[int32](1, 2, 3)
	b := From[int32](1, 2, 3)
	c := From[int32](1, 2)
	d := From[int32](1, 2, 4)

	assert.True(t, a.Equal(a))
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(d))
	assert.False(t, a.Equal(nil))
	assert.True(t, New[int32]().Equal(New[int32]()))
}

func TestEndToEnd(t *testing.T) {
	v := New[int32]()
	for _, x := range []int32{3, 1, 2} {
		require.NoError(t, v.PushBack(x))
	}

	v.Sort()
	assert.Equal(t, []int32{1, 2, 3}, v.Values())

	v.Reverse()
	assert.Equal(t, []int32{3, 2, 1}, v.Values())

	require.NoError(t, v.Erase(0))
	assert.Equal(t, []int32{2, 1}, v.Values())
	assert.Equal(t, 2, v.Size())

	v.Release()
	assert.True(t, v.Released())
}

func TestReleased(t *testing.T) {
	v := From[int32](1)
	v.Release()

	_, err := v.At(0)
	require.ErrorIs(t, err, ErrReleased)
	require.ErrorIs(t, v.PushBack(1), ErrReleased)
	require.ErrorIs(t, v.EraseRange(0, 0), ErrReleased)
	_, err = v.PopBack()
	require.ErrorIs(t, err, ErrReleased)
	assert.Zero(t, v.Size())
}

func TestRangeErrorMessage(t *testing.T) {
	err := From[int](1).Erase(4)
	assert.EqualError(t, err, "erase: index 4 out of range for size 1")

	err = From[int](1).EraseRange(1, 0)
	assert.EqualError(t, err, "erase_range: range [1, 0) invalid for size 1")
}
