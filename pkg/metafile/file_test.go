package metafile

import (
	"encoding/binary"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/emfkit/emf"
	"github.com/joshuapare/emfkit/emf/records"
)

func finished(t *testing.T) []byte {
	t.Helper()
	b, err := drawing(t).Finish(binary.LittleEndian)
	require.NoError(t, err)
	return b
}

func TestWalkTruncated(t *testing.T) {
	b := finished(t)
	// Cut inside the EOF record.
	cut := b[:len(b)-8]

	report := emf.NewDiagnosticReport()
	f, err := Load(cut, WithDiagnostics(report))
	require.NoError(t, err)

	sum, err := f.Walk(nil)
	var serr *emf.StreamError
	require.ErrorAs(t, err, &serr)
	assert.ErrorIs(t, err, emf.ErrOversizedRecord)

	total, err := Load(b)
	require.NoError(t, err)
	full, err := total.Walk(nil)
	require.NoError(t, err)

	assert.Equal(t, full.Records-1, sum.Records)
	assert.Equal(t, serr.Records, sum.Records)
	assert.Equal(t, len(b)-len(records.EOF(nil)), serr.Offset)
	assert.Same(t, report, sum.Diagnostics)
	assert.Equal(t, 1, report.Summary.Critical)
}

func TestWalkHeaderMismatch(t *testing.T) {
	b := finished(t)
	// Claim one record more than the stream holds.
	b[0x34]++

	f, err := Load(b)
	require.NoError(t, err)
	sum, err := f.Walk(nil)
	require.NoError(t, err)
	assert.Equal(t, 1, sum.Diagnostics.Summary.Warnings)
	assert.ErrorIs(t, sum.Diagnostics.Diagnostics[0].Err, emf.ErrHeaderMismatch)
}

func TestWalkCallbackError(t *testing.T) {
	f, err := Load(finished(t))
	require.NoError(t, err)

	stop := errors.New("stop")
	var seen []emf.RecordType
	sum, err := f.Walk(func(r emf.Record) error {
		seen = append(seen, r.Type)
		if r.Type == emf.EMRCreateBrushIndirect {
			return stop
		}
		return nil
	})
	require.ErrorIs(t, err, stop)
	assert.Equal(t, []emf.RecordType{emf.EMRHeader, emf.EMRSetMapMode, emf.EMRCreateBrushIndirect}, seen)
	assert.Equal(t, 3, sum.Records)
}

func TestIteratorAndHeader(t *testing.T) {
	b := finished(t)
	f, err := Load(b)
	require.NoError(t, err)

	hdr, err := f.Header()
	require.NoError(t, err)
	assert.EqualValues(t, len(b), hdr.Bytes)

	it := f.Iterator()
	rec, err := it.Next()
	require.NoError(t, err)
	body, err := records.Decode(rec)
	require.NoError(t, err)
	hb, ok := body.(records.HeaderBody)
	require.True(t, ok)
	assert.Equal(t, "emfkit\x00test\x00", hb.Description)
}

func TestOpenMissing(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.emf"))
	require.Error(t, err)
}

func TestCloseTwice(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.emf")
	require.NoError(t, drawing(t).Save(path, binary.LittleEndian))
	f, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	require.NoError(t, f.Close())

	mem, err := Load(finished(t))
	require.NoError(t, err)
	require.NoError(t, mem.Close())
}

func TestLoadBigEndianLeavesInput(t *testing.T) {
	be, err := drawing(t).Finish(binary.BigEndian)
	require.NoError(t, err)
	orig := append([]byte(nil), be...)

	_, err = Load(be, WithSourceOrder(binary.BigEndian))
	require.NoError(t, err)
	assert.Equal(t, orig, be)

	// Native input declared big-endian does not frame.
	_, err = Load(finished(t), WithSourceOrder(binary.BigEndian))
	require.Error(t, err)
}
