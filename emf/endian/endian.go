// Package endian converts a whole record stream between the native
// little-endian form and big-endian form, in place.
//
// Each record type has a declarative schema listing its 16- and 32-bit fields.
// Byte strings, colors, palette entries and pixel data are left untouched.
// Swapping is its own inverse: Swap(b, true) followed by Swap(b, false)
// restores b exactly.
package endian

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/joshuapare/emfkit/emf"
	"github.com/joshuapare/emfkit/internal/buf"
	"github.com/joshuapare/emfkit/internal/format"
)

var (
	// ErrNoSchema indicates a record type whose layout is unknown. The
	// normalizer never guesses.
	ErrNoSchema = errors.New("endian: no schema for record type")
	// ErrFieldBounds indicates a schema field or array outside its record.
	ErrFieldBounds = errors.New("endian: field outside record")
)

// SwapError reports the record that stopped normalization.
type SwapError struct {
	Offset int
	Type   emf.RecordType
	Err    error
}

func (e *SwapError) Error() string {
	return fmt.Sprintf("endian: %s at offset 0x%X: %v", e.Type, e.Offset, e.Err)
}

func (e *SwapError) Unwrap() error { return e.Err }

// Supported reports whether t has a schema.
func Supported(t emf.RecordType) bool {
	_, ok := schemas[t]
	return ok
}

// Swap flips the byte order of every multi-byte field in the stream. With
// toForeign the input is read as native (little-endian) and left big-endian;
// without it the input is read as big-endian and left native.
//
// The stream is validated completely before the first byte changes, so on
// error b is untouched. Framing faults are reported as *emf.StreamError,
// schema faults as *SwapError.
func Swap(b []byte, toForeign bool) error {
	srcBig := !toForeign
	if err := walk(b, srcBig, false); err != nil {
		return err
	}
	return walk(b, srcBig, true)
}

// walk plans every record and, when apply is set, performs the swaps.
func walk(b []byte, srcBig bool, apply bool) error {
	off, records := 0, 0
	for {
		if off >= len(b) || len(b)-off < format.RecordHeaderSize {
			return &emf.StreamError{Offset: off, Records: records, Err: emf.ErrTruncatedStream}
		}
		typ := emf.RecordType(buf.U32Order(b[off:], srcBig))
		size := buf.U32Order(b[off+format.RecordSizeOffset:], srcBig)
		if size < format.RecordHeaderSize {
			return &emf.StreamError{Offset: off, Records: records, Err: emf.ErrUndersizedRecord}
		}
		if uint64(size) > uint64(len(b)-off) {
			return &emf.StreamError{Offset: off, Records: records, Err: emf.ErrOversizedRecord}
		}
		rec := b[off : off+int(size)]
		p, err := planRecord(rec, typ, srcBig)
		if err != nil {
			return &SwapError{Offset: off, Type: typ, Err: err}
		}
		if apply {
			p.apply()
		}
		off += int(size)
		records++
		if typ == emf.EMREOF {
			return nil
		}
	}
}

func planRecord(rec []byte, typ emf.RecordType, srcBig bool) (*planner, error) {
	segs, ok := schemas[typ]
	if !ok {
		return nil, ErrNoSchema
	}
	p := &planner{rec: rec, big: srcBig}
	if err := p.words(0, 2); err != nil {
		return nil, err
	}
	for _, s := range segs {
		if err := s.plan(p); err != nil {
			return nil, err
		}
	}
	if err := p.disjoint(); err != nil {
		return nil, err
	}
	return p, nil
}

// SwapRecord flips a single record in isolation. It exists for tooling and
// tests; streams must go through Swap.
func SwapRecord(rec []byte, toForeign bool) error {
	srcBig := !toForeign
	if len(rec) < format.RecordHeaderSize {
		return &SwapError{Err: fmt.Errorf("%w: record shorter than header", ErrFieldBounds)}
	}
	typ := emf.RecordType(buf.U32Order(rec, srcBig))
	size := buf.U32Order(rec[format.RecordSizeOffset:], srcBig)
	if uint64(size) != uint64(len(rec)) {
		return &SwapError{Type: typ, Err: fmt.Errorf("%w: nSize %d, have %d bytes", ErrFieldBounds, size, len(rec))}
	}
	p, err := planRecord(rec, typ, srcBig)
	if err != nil {
		return &SwapError{Type: typ, Err: err}
	}
	p.apply()
	return nil
}

// ToNative converts a stream stored in order to native order. Little-endian
// input is left as is.
func ToNative(b []byte, order binary.ByteOrder) error {
	if order == binary.BigEndian {
		return Swap(b, false)
	}
	return nil
}

// FromNative converts a native stream to order.
func FromNative(b []byte, order binary.ByteOrder) error {
	if order == binary.BigEndian {
		return Swap(b, true)
	}
	return nil
}
