// Package records builds and decodes individual records.
//
// Constructors return a complete native-order record: iType, nSize and the
// body, padded to a multiple of four so nSize always equals the slice
// length. Records that are nothing but a few integers are built with a
// single helper; the constructors here cover the layouts that need offsets,
// counts or text encoding.
//
// Decode goes the other way. It returns a typed Body for the kinds this
// package understands and a Generic body for everything else, reading only
// the fields of that kind from the record's bytes.
package records

import (
	"errors"
	"math"

	"github.com/joshuapare/emfkit/emf"
	"github.com/joshuapare/emfkit/internal/format"
)

var (
	// ErrShortRecord indicates a record too small for the fields its type
	// and counts require.
	ErrShortRecord = errors.New("records: record too short")
	// ErrWrongType indicates a decoder called with a record of another type.
	ErrWrongType = errors.New("records: wrong record type")
	// ErrDxLength indicates a spacing array whose length does not match the text.
	ErrDxLength = errors.New("records: spacing array does not match text length")
)

// ColorRef is a COLORREF: red, green, blue and a zero byte.
type ColorRef struct {
	R, G, B uint8
}

// RGB returns a ColorRef.
func RGB(r, g, b uint8) ColorRef { return ColorRef{R: r, G: g, B: b} }

func putColor(b []byte, off int, c ColorRef) {
	b[off], b[off+1], b[off+2], b[off+3] = c.R, c.G, c.B, 0
}

func readColor(b []byte, off int) ColorRef {
	return ColorRef{R: b[off], G: b[off+1], B: b[off+2]}
}

// alloc returns a zeroed record of size bytes, rounded up to four, with its
// header set.
func alloc(t emf.RecordType, size int) []byte {
	size = format.Align4(size)
	b := make([]byte, size)
	format.PutU32(b, format.RecordTypeOffset, uint32(t))
	format.PutU32(b, format.RecordSizeOffset, uint32(size))
	return b
}

func putF32(b []byte, off int, v float32) { format.PutU32(b, off, math.Float32bits(v)) }

func readF32(b []byte, off int) float32 { return math.Float32frombits(format.ReadU32(b, off)) }

// boundsOf returns the smallest rectangle holding every point.
func boundsOf(pts []emf.Point16) emf.RectL {
	if len(pts) == 0 {
		return emf.RectL{}
	}
	r := emf.RectL{Left: int32(pts[0].X), Top: int32(pts[0].Y), Right: int32(pts[0].X), Bottom: int32(pts[0].Y)}
	for _, p := range pts[1:] {
		r.Left = min(r.Left, int32(p.X))
		r.Top = min(r.Top, int32(p.Y))
		r.Right = max(r.Right, int32(p.X))
		r.Bottom = max(r.Bottom, int32(p.Y))
	}
	return r
}
