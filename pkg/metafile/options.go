package metafile

import (
	"encoding/binary"

	"github.com/joshuapare/emfkit/emf"
	"github.com/joshuapare/emfkit/emf/handles"
)

type writerConfig struct {
	tracker []emf.TrackerOption
	handles []handles.Option
}

// WriterOption configures a Writer.
type WriterOption func(*writerConfig)

// WithInitialCapacity sets the size of the first buffer allocation.
func WithInitialCapacity(n int) WriterOption {
	return func(c *writerConfig) { c.tracker = append(c.tracker, emf.WithInitialCapacity(n)) }
}

// WithMaxSize caps the stream size; appends past it fail with
// emf.ErrOutOfMemory.
func WithMaxSize(n int) WriterOption {
	return func(c *writerConfig) { c.tracker = append(c.tracker, emf.WithMaxSize(n)) }
}

// WithHandleLimit sets the highest object handle the writer hands out.
func WithHandleLimit(n uint32) WriterOption {
	return func(c *writerConfig) { c.handles = append(c.handles, handles.WithLimit(n)) }
}

// WithReserved keeps handles 1..n out of circulation.
func WithReserved(n uint32) WriterOption {
	return func(c *writerConfig) { c.handles = append(c.handles, handles.WithReserved(n)) }
}

type fileConfig struct {
	order binary.ByteOrder
	diag  *emf.DiagnosticReport
}

// FileOption configures a File.
type FileOption func(*fileConfig)

// WithSourceOrder declares the byte order of the input. Big-endian input is
// copied and converted to native order before anything reads it.
func WithSourceOrder(order binary.ByteOrder) FileOption {
	return func(c *fileConfig) { c.order = order }
}

// WithDiagnostics collects walk anomalies into r.
func WithDiagnostics(r *emf.DiagnosticReport) FileOption {
	return func(c *fileConfig) { c.diag = r }
}
