package metafile

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/joshuapare/emfkit/emf"
	"github.com/joshuapare/emfkit/emf/endian"
	"github.com/joshuapare/emfkit/internal/mmfile"
)

// File is a read session over one stream.
type File struct {
	data    []byte
	release func() error
	diag    *emf.DiagnosticReport
}

// Summary describes a completed (or failed) walk.
type Summary struct {
	Records     int                    // records yielded before the walk ended
	Bytes       int                    // offset reached: the stream length up to EMR_EOF on success
	Types       map[emf.RecordType]int // records per type
	Diagnostics *emf.DiagnosticReport
}

// Open maps path read-only. Close releases the mapping.
func Open(path string, opts ...FileOption) (*File, error) {
	data, release, err := mmfile.Map(path)
	if err != nil {
		return nil, fmt.Errorf("metafile: open %s: %w", path, err)
	}
	f, err := newFile(data, release, opts)
	if err != nil {
		_ = release()
		return nil, fmt.Errorf("metafile: open %s: %w", path, err)
	}
	return f, nil
}

// Load wraps data. The File aliases data unless a byte-order conversion
// forces a copy.
func Load(data []byte, opts ...FileOption) (*File, error) {
	return newFile(data, nil, opts)
}

func newFile(data []byte, release func() error, opts []FileOption) (*File, error) {
	var cfg fileConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	f := &File{data: data, release: release, diag: cfg.diag}
	if cfg.order == binary.BigEndian {
		native := bytes.Clone(data)
		if err := endian.Swap(native, false); err != nil {
			return nil, err
		}
		if release != nil {
			if err := release(); err != nil {
				return nil, err
			}
		}
		f.data, f.release = native, nil
	}
	return f, nil
}

// Bytes returns the native-order stream.
func (f *File) Bytes() []byte { return f.data }

// Close releases the mapping, if any. It is safe to call more than once.
func (f *File) Close() error {
	if f.release == nil {
		return nil
	}
	err := f.release()
	f.release = nil
	f.data = nil
	return err
}

// Header decodes the header record.
func (f *File) Header() (emf.Header, error) {
	return emf.ParseHeader(f.data)
}

// Iterator returns a fresh iterator over the stream.
func (f *File) Iterator() *emf.Iterator {
	var opts []emf.IteratorOption
	if f.diag != nil {
		opts = append(opts, emf.WithDiagnostics(f.diag))
	}
	return emf.NewIterator(f.data, opts...)
}

// Walk calls fn, which may be nil, for every record. On a structural fault
// the error is an *emf.StreamError and the Summary reports what was read
// before it.
func (f *File) Walk(fn func(emf.Record) error) (Summary, error) {
	diag := f.diag
	if diag == nil {
		diag = emf.NewDiagnosticReport()
	}
	it := emf.NewIterator(f.data, emf.WithDiagnostics(diag))
	sum := Summary{Types: make(map[emf.RecordType]int), Diagnostics: diag}
	for {
		rec, err := it.Next()
		sum.Records, sum.Bytes = it.Records(), it.Offset()
		if errors.Is(err, io.EOF) {
			return sum, nil
		}
		if err != nil {
			return sum, err
		}
		sum.Types[rec.Type]++
		if fn != nil {
			if err := fn(rec); err != nil {
				return sum, err
			}
		}
	}
}
