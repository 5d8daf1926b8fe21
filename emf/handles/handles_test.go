package handles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allocN(t *testing.T, tbl *Table, n int) []uint32 {
	t.Helper()
	out := make([]uint32, n)
	for i := range out {
		h, err := tbl.Allocate()
		require.NoError(t, err)
		out[i] = h
	}
	return out
}

func TestAllocateStartsAtOne(t *testing.T) {
	tbl := New()
	assert.Equal(t, []uint32{1, 2, 3, 4}, allocN(t, tbl, 4))
	assert.Equal(t, 4, tbl.Live())
	assert.Equal(t, uint32(4), tbl.Peak())
	assert.True(t, tbl.InUse(0), "handle 0 is reserved")
}

func TestFreedHandleReusedFirst(t *testing.T) {
	tbl := New()
	allocN(t, tbl, 10)
	require.NoError(t, tbl.Free(3))
	require.NoError(t, tbl.Free(7))

	h, err := tbl.Allocate()
	require.NoError(t, err)
	assert.Equal(t, uint32(3), h)
	h, err = tbl.Allocate()
	require.NoError(t, err)
	assert.Equal(t, uint32(7), h)
	h, err = tbl.Allocate()
	require.NoError(t, err)
	assert.Equal(t, uint32(11), h)
	assert.Equal(t, uint32(11), tbl.Peak())
}

func TestFreeInvalid(t *testing.T) {
	tbl := New()
	h, err := tbl.Allocate()
	require.NoError(t, err)

	for _, bad := range []uint32{0, 2, 1000, BlackPen} {
		err := tbl.Free(bad)
		assert.ErrorIs(t, err, ErrInvalidHandle, "handle %d", bad)
	}

	require.NoError(t, tbl.Free(h))
	err = tbl.Free(h)
	assert.ErrorIs(t, err, ErrInvalidHandle, "double free")
	assert.Contains(t, err.Error(), "1")
}

func TestCancelRestoresPeak(t *testing.T) {
	tbl := New()
	allocN(t, tbl, 2)
	h, err := tbl.Allocate()
	require.NoError(t, err)
	require.Equal(t, uint32(3), tbl.Peak())

	require.NoError(t, tbl.Cancel(h))
	assert.Equal(t, uint32(2), tbl.Peak())
	assert.Equal(t, 2, tbl.Live())
	assert.False(t, tbl.InUse(h))

	// Reusing a freed slot below the peak leaves the peak alone.
	require.NoError(t, tbl.Free(1))
	h, err = tbl.Allocate()
	require.NoError(t, err)
	require.Equal(t, uint32(1), h)
	require.NoError(t, tbl.Cancel(h))
	assert.Equal(t, uint32(2), tbl.Peak())

	assert.ErrorIs(t, tbl.Cancel(h), ErrInvalidHandle)
	assert.ErrorIs(t, tbl.Cancel(0), ErrInvalidHandle)

	res := New(WithReserved(4))
	h, err = res.Allocate()
	require.NoError(t, err)
	require.NoError(t, res.Cancel(h))
	assert.Equal(t, uint32(4), res.Peak())
}

func TestTableFull(t *testing.T) {
	tbl := New(WithLimit(3))
	assert.Equal(t, []uint32{1, 2, 3}, allocN(t, tbl, 3))
	_, err := tbl.Allocate()
	assert.ErrorIs(t, err, ErrTableFull)

	require.NoError(t, tbl.Free(2))
	h, err := tbl.Allocate()
	require.NoError(t, err)
	assert.Equal(t, uint32(2), h)
}

func TestTableFullAtWordBoundary(t *testing.T) {
	tbl := New(WithLimit(64))
	hs := allocN(t, tbl, 64)
	assert.Equal(t, uint32(64), hs[63])
	_, err := tbl.Allocate()
	assert.ErrorIs(t, err, ErrTableFull)
}

func TestReserved(t *testing.T) {
	tbl := New(WithReserved(15))
	h, err := tbl.Allocate()
	require.NoError(t, err)
	assert.Equal(t, uint32(16), h)
	assert.ErrorIs(t, tbl.Free(5), ErrInvalidHandle)
	assert.Equal(t, []uint32{16}, tbl.Handles())
}

func TestPeakWithoutAllocations(t *testing.T) {
	assert.Zero(t, New().Peak())
	assert.Equal(t, uint32(4), New(WithReserved(4)).Peak())
}

func TestChurnStaysLow(t *testing.T) {
	tbl := New()
	allocN(t, tbl, 500)
	for round := 0; round < 1000; round++ {
		h := uint32(round%500 + 1)
		require.NoError(t, tbl.Free(h))
		got, err := tbl.Allocate()
		require.NoError(t, err)
		require.Equal(t, h, got)
	}
	assert.Equal(t, uint32(500), tbl.Peak())
	assert.Len(t, tbl.Handles(), 500)
}

func TestStock(t *testing.T) {
	assert.True(t, IsStock(WhiteBrush))
	assert.True(t, IsStock(DCPen))
	assert.False(t, IsStock(42))
	assert.False(t, New().InUse(NullBrush))
}
