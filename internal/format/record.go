package format

// RecordHeader is the decoded 8-byte prefix of a record plus a view of the
// whole record.
//
//	Offset  Size  Description
//	0x00    4     iType
//	0x04    4     nSize, total size including this header
//	0x08    ...   Type-specific body.
type RecordHeader struct {
	Offset int        // Offset relative to the start of the stream
	Type   RecordType // iType
	Size   int        // nSize
	Data   []byte     // Whole record, header included (alias of underlying buffer)
}

// NextRecord decodes the record header at off and returns it together with the
// offset of the following record. The returned errors are the bare sentinels
// ErrTruncatedStream, ErrUndersizedRecord and ErrOversizedRecord so callers can
// attach their own position context.
func NextRecord(b []byte, off int) (RecordHeader, int, error) {
	if off < 0 || off >= len(b) {
		return RecordHeader{}, 0, ErrTruncatedStream
	}
	if len(b)-off < RecordHeaderSize {
		return RecordHeader{}, 0, ErrTruncatedStream
	}
	typ := RecordType(ReadU32(b, off+RecordTypeOffset))
	size := ReadU32(b, off+RecordSizeOffset)
	if size < RecordHeaderSize {
		return RecordHeader{}, 0, ErrUndersizedRecord
	}
	if uint64(size) > uint64(len(b)-off) {
		return RecordHeader{}, 0, ErrOversizedRecord
	}
	next := off + int(size)
	return RecordHeader{
		Offset: off,
		Type:   typ,
		Size:   int(size),
		Data:   b[off:next],
	}, next, nil
}

// ParseRecord decodes the first record in b without iterating a stream.
func ParseRecord(b []byte) (RecordHeader, error) {
	h, _, err := NextRecord(b, 0)
	return h, err
}
