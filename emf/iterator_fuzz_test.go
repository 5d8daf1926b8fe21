package emf

import (
	"errors"
	"io"
	"testing"
)

// FuzzIterator checks that arbitrary input never panics or yields a record
// outside the buffer.
func FuzzIterator(f *testing.F) {
	f.Add(buildStream(headerRecord(), commentRecord([]byte("seed")), eofRecord()))
	f.Add(buildStream(headerRecord(), eofRecord())[:40])
	f.Add(rawRecord(EMRComment, 8))
	f.Add([]byte{1, 0, 0, 0, 4, 0, 0, 0})
	f.Add([]byte{14, 0, 0, 0, 8, 0, 0, 0})
	f.Add([]byte{1, 0, 0, 0, 0xFF, 0xFF, 0xFF, 0xFF})
	f.Add([]byte{})

	f.Fuzz(func(t *testing.T, data []byte) {
		it := NewIterator(data, WithDiagnostics(NewDiagnosticReport()))
		consumed := 0
		for {
			rec, err := it.Next()
			if errors.Is(err, io.EOF) {
				break
			}
			if err != nil {
				var serr *StreamError
				if !errors.As(err, &serr) {
					t.Fatalf("unexpected error type %T: %v", err, err)
				}
				if serr.Records != it.Records() {
					t.Fatalf("StreamError.Records = %d, iterator consumed %d", serr.Records, it.Records())
				}
				break
			}
			if rec.Offset != consumed {
				t.Fatalf("record at %d, expected %d", rec.Offset, consumed)
			}
			if rec.Size < 8 || rec.Offset+rec.Size > len(data) {
				t.Fatalf("record [%d,+%d) outside %d-byte buffer", rec.Offset, rec.Size, len(data))
			}
			consumed += rec.Size
		}
		if it.Offset() > len(data) {
			t.Fatalf("offset %d past %d-byte buffer", it.Offset(), len(data))
		}
	})
}
