package emf

import (
	"encoding/binary"

	"github.com/joshuapare/emfkit/internal/format"
)

func rawRecord(typ RecordType, size int) []byte {
	b := make([]byte, size)
	binary.LittleEndian.PutUint32(b[0:], uint32(typ))
	binary.LittleEndian.PutUint32(b[4:], uint32(size))
	return b
}

func headerRecord() []byte {
	b := make([]byte, format.HeaderBaseSize)
	format.PutHeader(b, format.Header{
		Size:      format.HeaderBaseSize,
		Signature: format.HeaderSignature,
		Version:   format.HeaderVersion,
	})
	return b
}

func commentRecord(data []byte) []byte {
	size := format.Align4(format.CommentFixedSize + len(data))
	b := rawRecord(EMRComment, size)
	binary.LittleEndian.PutUint32(b[format.CommentDataLenOffset:], uint32(len(data)))
	copy(b[format.CommentFixedSize:], data)
	return b
}

func eofRecord() []byte {
	b := rawRecord(EMREOF, format.EOFSize)
	binary.LittleEndian.PutUint32(b[format.EOFPalOffsetOffset:], format.EOFFixedSize)
	binary.LittleEndian.PutUint32(b[format.EOFSize-4:], format.EOFSize)
	return b
}

// buildStream concatenates recs and fixes up the header totals when the first
// record is a header.
func buildStream(recs ...[]byte) []byte {
	var out []byte
	for _, r := range recs {
		out = append(out, r...)
	}
	if len(recs) > 0 && binary.LittleEndian.Uint32(out) == uint32(EMRHeader) {
		binary.LittleEndian.PutUint32(out[format.HeaderBytesOffset:], uint32(len(out)))
		binary.LittleEndian.PutUint32(out[format.HeaderRecordsOffset:], uint32(len(recs)))
	}
	return out
}
