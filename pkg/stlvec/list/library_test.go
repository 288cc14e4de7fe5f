package list_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stlvec/stlvec-go/pkg/stlvec"
	"github.com/stlvec/stlvec-go/pkg/stlvec/list"
)

func TestListOverLibrary(t *testing.T) {
	lib, err := stlvec.Open(stlvec.Config{})
	require.NoError(t, err)
	defer lib.Close()

	l, err := list.New[int32](lib.Int, 5, 3, 8)
	require.NoError(t, err)

	require.NoError(t, l.Sort())
	assert.Equal(t, "[3, 5, 8]", l.String())

	got, err := l.Slice(-1, -100, -1)
	require.NoError(t, err)
	assert.Equal(t, []int32{8, 5, 3}, got)

	require.NoError(t, l.DeleteSlice(1, 100))
	assert.Equal(t, 1, l.Len())

	other := list.Attach[int32](lib.Int, lib.Int.New(), list.Managed(true))
	require.NoError(t, other.Append(3))
	assert.True(t, l.Equal(other))

	require.NoError(t, l.Close())
	require.NoError(t, other.Close())
	assert.Zero(t, lib.LiveHandles())
}

func TestListSeesStaleHandle(t *testing.T) {
	lib, err := stlvec.Open(stlvec.Config{})
	require.NoError(t, err)
	defer lib.Close()

	l, err := list.New[int](lib.Long, 1)
	require.NoError(t, err)
	h := l.Handle()
	require.NoError(t, l.Close())

	stale := list.Attach[int](lib.Long, h)
	_, err = stale.Get(0)
	require.ErrorIs(t, err, stlvec.ErrStaleHandle)
	require.ErrorIs(t, stale.Append(2), stlvec.ErrStaleHandle)
}

func TestStaleFailureDoesNotLeak(t *testing.T) {
	lib, err := stlvec.Open(stlvec.Config{})
	require.NoError(t, err)
	defer lib.Close()

	l, err := list.New[int](lib.Long, 1)
	require.NoError(t, err)
	h := l.Handle()
	require.NoError(t, l.Close())
	stale := list.Attach[int](lib.Long, h)

	_, err = stale.Count(1)
	require.ErrorIs(t, err, stlvec.ErrStaleHandle)
	_, err = stale.PopAt(0)
	require.ErrorIs(t, err, stlvec.ErrStaleHandle)

	fresh, err := list.New[int](lib.Long, 2)
	require.NoError(t, err)
	assert.False(t, fresh.Equal(stale))
	require.NoError(t, fresh.Append(3))
	n, err := fresh.Count(3)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	require.NoError(t, fresh.Close())
	assert.Zero(t, lib.LiveHandles())
}
