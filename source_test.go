//go:build unix

package arena

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeapSource(t *testing.T) {
	buf, err := HeapSource{}.Acquire(128)
	require.NoError(t, err)
	assert.Len(t, buf, 128)
	assert.NoError(t, HeapSource{}.Release(buf))

	_, err = HeapSource{}.Acquire(0)
	assert.ErrorIs(t, err, ErrInvalidSlabSize)
}

func TestMmapSource(t *testing.T) {
	buf, err := MmapSource{}.Acquire(4096)
	require.NoError(t, err)
	require.Len(t, buf, 4096)
	buf[0], buf[4095] = 1, 2
	assert.NoError(t, MmapSource{}.Release(buf))

	_, err = MmapSource{}.Acquire(-1)
	assert.ErrorIs(t, err, ErrInvalidSlabSize)
	assert.NoError(t, MmapSource{}.Release(nil))
}

func TestArenaOnMmapSlabs(t *testing.T) {
	a := NewArena(WithBlocking(256), WithSlabSource(MmapSource{}))
	defer a.Clear()

	for i := 0; i < 600; i++ {
		p := New[point](a)
		require.Equal(t, point{}, *p)
		p.X, p.Y = int64(i), int64(-i)
	}
	assert.Equal(t, 3, a.NumSlabs())

	a.Clear()
	assert.Zero(t, a.NumSlabs())
	assert.Equal(t, point{}, *New[point](a))
}
