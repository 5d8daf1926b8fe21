package emf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrackerAppendAndRewalk(t *testing.T) {
	tr := NewTracker(WithInitialCapacity(16))
	recs := [][]byte{
		headerRecord(),
		commentRecord([]byte("one")),
		commentRecord([]byte("two, longer")),
		rawRecord(EMRSaveDC, 8),
		eofRecord(),
	}
	used := 0
	for _, r := range recs {
		require.NoError(t, tr.Append(r))
		used += len(r)
		assert.Equal(t, used, tr.Used())
		assert.GreaterOrEqual(t, tr.Cap(), tr.Used())
	}
	assert.Equal(t, len(recs), tr.Records())

	i := 0
	n, err := Walk(tr.Bytes(), func(rec Record) error {
		assert.Equal(t, recs[i], rec.Bytes(), "record %d", i)
		i++
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, len(recs), n)
}

func TestTrackerGrowthIsGeometric(t *testing.T) {
	tr := NewTracker(WithInitialCapacity(8))
	grows := 0
	last := tr.Cap()
	for i := 0; i < 1024; i++ {
		require.NoError(t, tr.Append(rawRecord(EMRSaveDC, 8)))
		if tr.Cap() != last {
			grows++
			last = tr.Cap()
		}
	}
	assert.Equal(t, 8*1024, tr.Used())
	assert.LessOrEqual(t, grows, 11, "doubling from 8 to 8192 takes 10 steps")
}

func TestTrackerBytesView(t *testing.T) {
	tr := NewTracker()
	require.NoError(t, tr.Append(rawRecord(EMRSaveDC, 8)))
	view := tr.Bytes()
	assert.Equal(t, 8, cap(view))
	_ = append(view, 0xAA)
	require.NoError(t, tr.Append(rawRecord(EMRRestoreDC, 12)))
	assert.Equal(t, byte(EMRRestoreDC), tr.Bytes()[8])
}

func TestTrackerOutOfMemory(t *testing.T) {
	tr := NewTracker(WithInitialCapacity(8), WithMaxSize(32))
	require.NoError(t, tr.Append(rawRecord(EMRSaveDC, 24)))
	err := tr.Append(rawRecord(EMRSaveDC, 12))
	assert.ErrorIs(t, err, ErrOutOfMemory)
	assert.Equal(t, 24, tr.Used(), "a failed append leaves the buffer untouched")
	require.NoError(t, tr.Append(rawRecord(EMRSaveDC, 8)))
	assert.Equal(t, 32, tr.Cap())
}

func TestTrackerPatch(t *testing.T) {
	tr := NewTracker()
	require.NoError(t, tr.Append(rawRecord(EMRSaveDC, 8)))
	require.NoError(t, tr.Patch(4, []byte{0x10, 0, 0, 0}))
	assert.Equal(t, byte(0x10), tr.Bytes()[4])
	assert.ErrorIs(t, tr.Patch(6, []byte{1, 2, 3}), ErrPatchRange)
	assert.ErrorIs(t, tr.Patch(-1, []byte{1}), ErrPatchRange)
}

func TestTrackerFinish(t *testing.T) {
	tr := NewTracker()
	require.NoError(t, tr.Append(eofRecord()))
	out, err := tr.Finish()
	require.NoError(t, err)
	assert.Len(t, out, 20)
	assert.True(t, tr.Closed())

	_, err = tr.Finish()
	assert.ErrorIs(t, err, ErrSessionClosed)
	assert.ErrorIs(t, tr.Append(eofRecord()), ErrSessionClosed)
	assert.ErrorIs(t, tr.Patch(0, []byte{1}), ErrSessionClosed)
	_, err = tr.Mutable()
	assert.ErrorIs(t, err, ErrSessionClosed)
	assert.Nil(t, tr.Bytes())
}

func TestTrackerAbort(t *testing.T) {
	tr := NewTracker()
	require.NoError(t, tr.Append(eofRecord()))
	tr.Abort()
	assert.Zero(t, tr.Used())
	assert.ErrorIs(t, tr.Append(eofRecord()), ErrSessionClosed)
}
