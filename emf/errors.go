package emf

import (
	"errors"
	"fmt"

	"github.com/joshuapare/emfkit/internal/format"
)

var (
	// ErrTruncatedStream indicates the stream ended before an EMR_EOF record.
	ErrTruncatedStream = format.ErrTruncatedStream
	// ErrOversizedRecord indicates a record's declared size reads past the buffer.
	ErrOversizedRecord = format.ErrOversizedRecord
	// ErrUndersizedRecord indicates a declared size below the 8-byte header,
	// which would stall the walk.
	ErrUndersizedRecord = format.ErrUndersizedRecord
	// ErrHeaderMismatch is attached to warning diagnostics when the first
	// record is not EMR_HEADER or its totals disagree with the stream. It is
	// never returned from Next.
	ErrHeaderMismatch = format.ErrHeaderMismatch

	// ErrOutOfMemory indicates the write buffer would have to grow past its limit.
	ErrOutOfMemory = errors.New("emf: buffer growth exceeds limit")
	// ErrSessionClosed indicates an operation on a finished or aborted session.
	ErrSessionClosed = errors.New("emf: session closed")
	// ErrPatchRange indicates a patch outside the bytes written so far.
	ErrPatchRange = errors.New("emf: patch outside written bytes")
)

// StreamError reports a structural fault that halted a walk. Records is the
// number of records successfully yielded before the fault.
type StreamError struct {
	Offset  int
	Records int
	Err     error
}

func (e *StreamError) Error() string {
	return fmt.Sprintf("emf: %v at offset 0x%X after %d records", e.Err, e.Offset, e.Records)
}

func (e *StreamError) Unwrap() error { return e.Err }
