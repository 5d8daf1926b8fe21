package metafile

import (
	"context"
	"encoding/binary"
	"fmt"
	"log/slog"

	"github.com/joshuapare/emfkit/emf"
	"github.com/joshuapare/emfkit/emf/endian"
	"github.com/joshuapare/emfkit/emf/handles"
	"github.com/joshuapare/emfkit/emf/records"
	"github.com/joshuapare/emfkit/internal/format"
	"github.com/joshuapare/emfkit/internal/writer"
)

// Writer is a write session: a growable record buffer and the object
// handle table that goes with it.
type Writer struct {
	tr  *emf.Tracker
	tbl *handles.Table
}

// NewWriter starts an empty write session. The first record appended must be
// the header.
func NewWriter(opts ...WriterOption) *Writer {
	var cfg writerConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Writer{
		tr:  emf.NewTracker(cfg.tracker...),
		tbl: handles.New(cfg.handles...),
	}
}

// Append copies rec onto the end of the stream.
func (w *Writer) Append(rec []byte) error {
	return w.tr.Append(rec)
}

// AppendAll appends each record in turn, stopping at the first error.
func (w *Writer) AppendAll(recs ...[]byte) error {
	for _, r := range recs {
		if err := w.tr.Append(r); err != nil {
			return err
		}
	}
	return nil
}

// Handles exposes the handle table, for callers that build object records
// themselves.
func (w *Writer) Handles() *handles.Table { return w.tbl }

// Used returns the number of bytes written so far.
func (w *Writer) Used() int { return w.tr.Used() }

// Records returns the number of records written so far.
func (w *Writer) Records() int { return w.tr.Records() }

// Bytes returns a read-only view of the records written so far. It is
// invalidated by the next append.
func (w *Writer) Bytes() []byte { return w.tr.Bytes() }

// CreateObject allocates a handle, builds the object record for it with
// build and appends the record. If either step fails the handle is released
// and does not count towards the header's handle total.
func (w *Writer) CreateObject(build func(h uint32) ([]byte, error)) (uint32, error) {
	if w.tr.Closed() {
		return 0, emf.ErrSessionClosed
	}
	h, err := w.tbl.Allocate()
	if err != nil {
		return 0, err
	}
	rec, err := build(h)
	if err == nil {
		err = w.tr.Append(rec)
	}
	if err != nil {
		_ = w.tbl.Cancel(h)
		return 0, err
	}
	return h, nil
}

// DeleteObject releases h and appends EMR_DELETEOBJECT.
func (w *Writer) DeleteObject(h uint32) error {
	if w.tr.Closed() {
		return emf.ErrSessionClosed
	}
	if err := w.tbl.Free(h); err != nil {
		return err
	}
	return w.tr.Append(records.DeleteObject(h))
}

// SelectObject appends EMR_SELECTOBJECT. Stock objects are always accepted;
// any other handle must be live.
func (w *Writer) SelectObject(h uint32) error {
	if !handles.IsStock(h) && !w.tbl.InUse(h) {
		return fmt.Errorf("%w: %d", handles.ErrInvalidHandle, h)
	}
	return w.tr.Append(records.SelectObject(h))
}

// Finish patches the header with the stream totals and ends the session.
// nHandles is the handle peak plus one, since slot 0 counts. With
// binary.BigEndian the stream is converted as the last step. The returned
// bytes belong to the caller.
func (w *Writer) Finish(order binary.ByteOrder) ([]byte, error) {
	b, err := w.tr.Mutable()
	if err != nil {
		return nil, err
	}
	if len(b) < format.HeaderBaseSize {
		return nil, fmt.Errorf("metafile: finish: %w: stream has %d bytes", emf.ErrHeaderMismatch, len(b))
	}
	if t := emf.RecordType(format.ReadU32(b, format.RecordTypeOffset)); t != emf.EMRHeader {
		return nil, fmt.Errorf("metafile: finish: %w: first record is %s", emf.ErrHeaderMismatch, t)
	}
	nHandles := w.tbl.Peak() + 1
	format.PutU32(b, format.HeaderBytesOffset, uint32(len(b)))
	format.PutU32(b, format.HeaderRecordsOffset, uint32(w.tr.Records()))
	format.PutU16(b, format.HeaderHandlesOffset, uint16(nHandles))

	if order == binary.BigEndian {
		if err := endian.Swap(b, true); err != nil {
			return nil, fmt.Errorf("metafile: finish: %w", err)
		}
	}
	out, err := w.tr.Finish()
	if err != nil {
		return nil, err
	}
	emf.Logger().LogAttrs(context.Background(), slog.LevelDebug, "metafile: finished",
		slog.Int("bytes", len(out)),
		slog.Int("records", w.tr.Records()),
		slog.Uint64("handles", uint64(nHandles)),
		slog.Bool("big_endian", order == binary.BigEndian),
	)
	return out, nil
}

// Save finishes the session and writes the stream to path atomically.
func (w *Writer) Save(path string, order binary.ByteOrder) error {
	return w.saveTo(&writer.FileWriter{Path: path}, order)
}

func (w *Writer) saveTo(sink writer.Sink, order binary.ByteOrder) error {
	b, err := w.Finish(order)
	if err != nil {
		return err
	}
	if err := sink.WriteStream(b); err != nil {
		return fmt.Errorf("metafile: save: %w", err)
	}
	return nil
}

// Abort ends the session and discards everything written.
func (w *Writer) Abort() { w.tr.Abort() }
