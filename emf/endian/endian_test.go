package endian

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/emfkit/emf"
	"github.com/joshuapare/emfkit/internal/buf"
	"github.com/joshuapare/emfkit/internal/format"
)

var le = binary.LittleEndian

// record builds a native record of the given size with the header filled in.
func record(typ emf.RecordType, size int) []byte {
	r := make([]byte, size)
	le.PutUint32(r[0:], uint32(typ))
	le.PutUint32(r[4:], uint32(size))
	return r
}

func header() []byte {
	r := record(emf.EMRHeader, format.HeaderBaseSize)
	le.PutUint32(r[0x10:], 100) // rclBounds.right
	le.PutUint32(r[0x28:], format.HeaderSignature)
	le.PutUint32(r[0x2C:], format.HeaderVersion)
	le.PutUint16(r[0x38:], 3)
	le.PutUint32(r[0x48:], 1024)
	return r
}

func eof() []byte {
	r := record(emf.EMREOF, format.EOFSize)
	le.PutUint32(r[0x0C:], 0x10)
	le.PutUint32(r[0x10:], format.EOFSize)
	return r
}

func textColor() []byte {
	r := record(emf.EMRSetTextColor, 12)
	copy(r[8:], []byte{0x11, 0x22, 0x33, 0x00})
	return r
}

func polyline16() []byte {
	r := record(emf.EMRPolyline16, 0x1C+3*4)
	le.PutUint32(r[0x18:], 3)
	for i := range 3 {
		le.PutUint16(r[0x1C+4*i:], uint16(0x0100+i))
		le.PutUint16(r[0x1E+4*i:], uint16(0x0200+i))
	}
	return r
}

// extTextOutW holds "Hi" with a spacing array.
func extTextOutW() []byte {
	r := record(emf.EMRExtTextOutW, 88)
	le.PutUint32(r[0x18:], 1)
	le.PutUint32(r[0x2C:], 2)  // nChars
	le.PutUint32(r[0x30:], 76) // offString
	le.PutUint32(r[0x48:], 80) // offDx
	le.PutUint16(r[76:], 'H')
	le.PutUint16(r[78:], 'i')
	le.PutUint32(r[80:], 7)
	le.PutUint32(r[84:], 9)
	return r
}

// stretchDIBits carries a 1x1 32-bit bitmap.
func stretchDIBits() []byte {
	r := record(emf.EMRStretchDIBits, 124)
	le.PutUint32(r[0x30:], 80)  // offBmiSrc
	le.PutUint32(r[0x34:], 40)  // cbBmiSrc
	le.PutUint32(r[0x38:], 120) // offBitsSrc
	le.PutUint32(r[0x3C:], 4)   // cbBitsSrc
	le.PutUint32(r[0x44:], 0x00CC0020)
	le.PutUint32(r[80:], 40)
	le.PutUint32(r[84:], 1)
	le.PutUint32(r[88:], 1)
	le.PutUint16(r[92:], 1)
	le.PutUint16(r[94:], 32)
	copy(r[120:], []byte{0xAA, 0xBB, 0xCC, 0xDD})
	return r
}

func stream(recs ...[]byte) []byte {
	return bytes.Join(recs, nil)
}

func TestSwapIsInvolution(t *testing.T) {
	orig := stream(header(), textColor(), polyline16(), extTextOutW(), stretchDIBits(), eof())
	b := bytes.Clone(orig)

	require.NoError(t, Swap(b, true))
	assert.NotEqual(t, orig, b)
	require.NoError(t, Swap(b, false))
	assert.Equal(t, orig, b)
}

func TestSwapFields(t *testing.T) {
	hdr, tc, poly, text, dib := header(), textColor(), polyline16(), extTextOutW(), stretchDIBits()
	b := stream(hdr, tc, poly, text, dib, eof())
	require.NoError(t, Swap(b, true))

	off := 0
	next := func(r []byte) []byte {
		out := b[off : off+len(r)]
		off += len(r)
		return out
	}

	h := next(hdr)
	assert.Equal(t, uint32(emf.EMRHeader), buf.U32BE(h))
	assert.Equal(t, uint32(format.HeaderSignature), buf.U32BE(h[0x28:]))
	assert.Equal(t, uint16(3), buf.U16BE(h[0x38:]))
	assert.Equal(t, uint32(1024), buf.U32BE(h[0x48:]))

	c := next(tc)
	assert.Equal(t, []byte{0x11, 0x22, 0x33, 0x00}, c[8:12], "COLORREF is bytes")

	p := next(poly)
	assert.Equal(t, uint32(3), buf.U32BE(p[0x18:]))
	assert.Equal(t, uint16(0x0102), buf.U16BE(p[0x1C+8:]))

	x := next(text)
	assert.Equal(t, uint16('H'), buf.U16BE(x[76:]))
	assert.Equal(t, uint32(9), buf.U32BE(x[84:]))

	d := next(dib)
	assert.Equal(t, uint32(40), buf.U32BE(d[80:]), "biSize")
	assert.Equal(t, uint16(32), buf.U16BE(d[94:]), "biBitCount")
	assert.Equal(t, []byte{0xAA, 0xBB, 0xCC, 0xDD}, d[120:], "pixels are bytes")

	e := b[off:]
	assert.Equal(t, uint32(format.EOFSize), buf.U32BE(e[0x10:]), "nSizeLast")
}

func TestSwapUnknownTypeLeavesStreamUntouched(t *testing.T) {
	undef := record(emf.RecordType(69), 12)
	orig := stream(header(), textColor(), undef, eof())
	b := bytes.Clone(orig)

	err := Swap(b, true)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoSchema)
	var se *SwapError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, len(header())+len(textColor()), se.Offset)
	assert.Equal(t, emf.RecordType(69), se.Type)
	assert.Equal(t, orig, b)
}

func TestSwapFieldBounds(t *testing.T) {
	poly := polyline16()
	le.PutUint32(poly[0x18:], 9) // more points than the record holds
	orig := stream(header(), poly, eof())
	b := bytes.Clone(orig)

	err := Swap(b, true)
	assert.ErrorIs(t, err, ErrFieldBounds)
	assert.Equal(t, orig, b)
}

func TestSwapFramingFaults(t *testing.T) {
	t.Run("missing EOF", func(t *testing.T) {
		b := stream(header(), textColor())
		err := Swap(b, true)
		var se *emf.StreamError
		require.True(t, errors.As(err, &se))
		assert.ErrorIs(t, err, emf.ErrTruncatedStream)
		assert.Equal(t, 2, se.Records)
	})
	t.Run("oversized", func(t *testing.T) {
		tc := textColor()
		le.PutUint32(tc[4:], 400)
		err := Swap(stream(header(), tc, eof()), true)
		assert.ErrorIs(t, err, emf.ErrOversizedRecord)
	})
	t.Run("undersized", func(t *testing.T) {
		tc := textColor()
		le.PutUint32(tc[4:], 4)
		err := Swap(stream(header(), tc, eof()), true)
		assert.ErrorIs(t, err, emf.ErrUndersizedRecord)
	})
}

func TestSwapStopsAtEOF(t *testing.T) {
	orig := stream(header(), eof())
	b := append(bytes.Clone(orig), 0xDE, 0xAD, 0xBE, 0xEF)

	require.NoError(t, Swap(b, true))
	assert.Equal(t, []byte{0xDE, 0xAD, 0xBE, 0xEF}, b[len(orig):])
}

func TestSwapRecord(t *testing.T) {
	orig := polyline16()
	r := bytes.Clone(orig)
	require.NoError(t, SwapRecord(r, true))
	assert.Equal(t, uint32(emf.EMRPolyline16), buf.U32BE(r))
	require.NoError(t, SwapRecord(r, false))
	assert.Equal(t, orig, r)

	assert.ErrorIs(t, SwapRecord(orig[:4], true), ErrFieldBounds)
	assert.ErrorIs(t, SwapRecord(orig[:len(orig)-4], true), ErrFieldBounds)
}

func TestByteOrderHelpers(t *testing.T) {
	orig := stream(header(), polyline16(), eof())
	b := bytes.Clone(orig)

	require.NoError(t, ToNative(b, binary.LittleEndian))
	assert.Equal(t, orig, b)

	require.NoError(t, FromNative(b, binary.BigEndian))
	assert.Equal(t, uint32(emf.EMRHeader), buf.U32BE(b))
	require.NoError(t, ToNative(b, binary.BigEndian))
	assert.Equal(t, orig, b)
}

func TestSupported(t *testing.T) {
	assert.True(t, Supported(emf.EMRHeader))
	assert.True(t, Supported(emf.EMRStretchDIBits))
	assert.False(t, Supported(emf.RecordType(69)))
	assert.False(t, Supported(emf.RecordType(0)))
}
