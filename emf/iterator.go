package emf

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/joshuapare/emfkit/internal/format"
)

// Iterator walks a record stream forward, one record per Next call. It never
// mutates the buffer and never yields a record whose declared size does not
// fit entirely inside it.
//
// Next returns io.EOF once the EMR_EOF record has been yielded. Structural
// faults come back as *StreamError and end the walk.
type Iterator struct {
	data    []byte
	next    int
	records int
	done    bool
	diag    *DiagnosticReport
	log     *slog.Logger

	headerBytes   uint32
	headerRecords uint32
	haveHeader    bool
}

// IteratorOption configures an Iterator.
type IteratorOption func(*Iterator)

// WithDiagnostics records readable anomalies and the terminating fault into r.
func WithDiagnostics(r *DiagnosticReport) IteratorOption {
	return func(it *Iterator) { it.diag = r }
}

// NewIterator returns an iterator positioned at the first record of data.
func NewIterator(data []byte, opts ...IteratorOption) *Iterator {
	it := &Iterator{data: data, log: Logger()}
	for _, opt := range opts {
		opt(it)
	}
	return it
}

// Records returns the number of records yielded so far.
func (it *Iterator) Records() int { return it.records }

// Offset returns the offset of the next record to be read.
func (it *Iterator) Offset() int { return it.next }

// Next returns the next record, io.EOF after EMR_EOF, or a *StreamError.
func (it *Iterator) Next() (Record, error) {
	if it.done {
		return Record{}, io.EOF
	}
	h, next, err := format.NextRecord(it.data, it.next)
	if err != nil {
		return Record{}, it.fail(err)
	}
	rec := Record{Offset: h.Offset, Type: h.Type, Size: h.Size, raw: h.Data}
	index := it.records
	it.records++
	it.next = next

	if index == 0 {
		it.checkHeader(rec)
	}
	if !format.IsAligned4(rec.Size) {
		it.warn(rec, index, SevWarning, nil, fmt.Sprintf("record size %d is not a multiple of 4", rec.Size))
	}
	if rec.Type == EMREOF {
		it.done = true
		it.finish(rec, index)
	}
	return rec, nil
}

// fail ends the walk with a positioned error.
func (it *Iterator) fail(err error) error {
	it.done = true
	serr := &StreamError{Offset: it.next, Records: it.records, Err: err}
	if it.diag != nil {
		it.diag.Add(Diagnostic{
			Severity: SevCritical,
			Offset:   it.next,
			Record:   it.records,
			Issue:    err.Error(),
			Err:      err,
		})
	}
	it.log.Warn("emf: walk halted", "offset", it.next, "records", it.records, "err", err)
	return serr
}

func (it *Iterator) warn(rec Record, index int, sev Severity, err error, issue string) {
	if it.diag != nil {
		it.diag.Add(Diagnostic{
			Severity: sev,
			Offset:   rec.Offset,
			Record:   index,
			Type:     rec.Type,
			Issue:    issue,
			Err:      err,
		})
	}
	level := slog.LevelWarn
	if sev == SevInfo {
		level = slog.LevelInfo
	}
	it.log.Log(context.Background(), level, "emf: "+issue, "offset", rec.Offset, "record", index, "type", rec.Type.String())
}

func (it *Iterator) checkHeader(rec Record) {
	if rec.Type != EMRHeader {
		it.warn(rec, 0, SevWarning, ErrHeaderMismatch,
			fmt.Sprintf("first record is %s, want EMR_HEADER", rec.Type))
		return
	}
	hdr, err := format.ParseHeader(rec.raw)
	if err != nil && !errors.Is(err, format.ErrSignatureMismatch) {
		it.warn(rec, 0, SevWarning, ErrHeaderMismatch, "header record too short: "+err.Error())
		return
	}
	if err != nil {
		it.warn(rec, 0, SevWarning, ErrHeaderMismatch,
			fmt.Sprintf("header signature 0x%08X, want 0x%08X", hdr.Signature, uint32(format.HeaderSignature)))
	}
	it.haveHeader = true
	it.headerBytes = hdr.Bytes
	it.headerRecords = hdr.Records
}

// finish compares the header totals with what was walked and notes trailing bytes.
func (it *Iterator) finish(eof Record, index int) {
	if it.haveHeader {
		if uint64(it.headerBytes) != uint64(it.next) {
			it.warn(eof, index, SevWarning, ErrHeaderMismatch,
				fmt.Sprintf("header nBytes %d, stream ends at %d", it.headerBytes, it.next))
		}
		if uint64(it.headerRecords) != uint64(it.records) {
			it.warn(eof, index, SevWarning, ErrHeaderMismatch,
				fmt.Sprintf("header nRecords %d, walked %d", it.headerRecords, it.records))
		}
	}
	if extra := len(it.data) - it.next; extra > 0 {
		it.warn(eof, index, SevInfo, nil, fmt.Sprintf("%d bytes after EMR_EOF", extra))
	}
}

// Walk drives an Iterator over data and calls fn for every record. It returns
// the number of records yielded. An error from fn stops the walk and is
// returned as is.
func Walk(data []byte, fn func(Record) error, opts ...IteratorOption) (int, error) {
	it := NewIterator(data, opts...)
	for {
		rec, err := it.Next()
		if errors.Is(err, io.EOF) {
			return it.Records(), nil
		}
		if err != nil {
			return it.Records(), err
		}
		if err := fn(rec); err != nil {
			return it.Records(), err
		}
	}
}
