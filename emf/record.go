package emf

import (
	"github.com/joshuapare/emfkit/internal/buf"
	"github.com/joshuapare/emfkit/internal/format"
)

// Record is a view of one record inside a stream. The bytes alias the walked
// buffer; callers must copy before the buffer is released or mutated.
type Record struct {
	Offset int        // Offset of the record from the start of the stream
	Type   RecordType // iType
	Size   int        // nSize, header included

	raw []byte
}

// NewRecord wraps the first record in raw as a record at offset 0. The
// declared size must fit within raw; trailing bytes are not part of it.
func NewRecord(raw []byte) (Record, error) {
	h, err := format.ParseRecord(raw)
	if err != nil {
		return Record{}, err
	}
	return Record{Type: h.Type, Size: h.Size, raw: h.Data}, nil
}

// Bytes returns the whole record, header included.
func (r Record) Bytes() []byte { return r.raw }

// Payload returns the bytes after the 8-byte header.
func (r Record) Payload() []byte {
	if len(r.raw) < format.RecordHeaderSize {
		return nil
	}
	return r.raw[format.RecordHeaderSize:]
}

// U32 reads a little-endian uint32 at a record-relative offset.
func (r Record) U32(off int) (uint32, bool) {
	b, ok := buf.Slice(r.raw, off, 4)
	if !ok {
		return 0, false
	}
	return buf.U32LE(b), true
}

// U16 reads a little-endian uint16 at a record-relative offset.
func (r Record) U16(off int) (uint16, bool) {
	b, ok := buf.Slice(r.raw, off, 2)
	if !ok {
		return 0, false
	}
	return buf.U16LE(b), true
}

// Slice returns n bytes at a record-relative offset.
func (r Record) Slice(off, n int) ([]byte, bool) {
	return buf.Slice(r.raw, off, n)
}
