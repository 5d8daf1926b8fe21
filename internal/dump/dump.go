// Package dump renders a record stream for people: one line per record in
// text form, or a single JSON document. The stream is only read.
package dump

import (
	"errors"
	"fmt"
	"io"

	"github.com/joshuapare/emfkit/emf"
	"github.com/joshuapare/emfkit/emf/records"
)

const (
	DefaultMaxHexBytes = 64
)

// Format selects the output form.
type Format string

const (
	// FormatText prints one aligned line per record.
	FormatText Format = "text"

	// FormatJSON prints one JSON document for the whole stream.
	FormatJSON Format = "json"
)

// Options controls dump output.
type Options struct {
	// Format is text or JSON.
	// Default: FormatText
	Format Format

	// Hex adds the raw bytes of every record.
	Hex bool

	// MaxHexBytes caps the bytes shown per record when Hex is set.
	// 0 shows everything.
	// Default: 64
	MaxHexBytes int

	// Limit stops after this many records. 0 prints the whole stream.
	Limit int

	// Diagnostics appends what the walk noticed (header totals, alignment,
	// trailing bytes).
	// Default: true
	Diagnostics bool
}

// DefaultOptions returns the options the CLI starts from.
func DefaultOptions() Options {
	return Options{
		Format:      FormatText,
		MaxHexBytes: DefaultMaxHexBytes,
		Diagnostics: true,
	}
}

// Entry is the rendered form of one record.
type Entry struct {
	Index   int    `json:"index"`
	Offset  int    `json:"offset"`
	Type    string `json:"type"`
	Size    int    `json:"size"`
	Summary string `json:"summary,omitempty"`
	Error   string `json:"error,omitempty"`
	Hex     string `json:"hex,omitempty"`
}

// Result is what a dump walked.
type Result struct {
	Records   int                   `json:"records"`
	Bytes     int                   `json:"bytes"`
	Truncated bool                  `json:"truncated,omitempty"` // stopped by Limit
	Report    *emf.DiagnosticReport `json:"diagnostics,omitempty"`
}

// Printer writes dumps to w.
type Printer struct {
	opts Options
	w    io.Writer
}

// New creates a Printer.
func New(w io.Writer, opts Options) *Printer {
	if opts.Format == "" {
		opts.Format = FormatText
	}
	return &Printer{opts: opts, w: w}
}

// Stream dumps data. Records before a structural fault are still printed;
// the fault itself is returned as *emf.StreamError.
func (p *Printer) Stream(data []byte) (Result, error) {
	report := emf.NewDiagnosticReport()
	it := emf.NewIterator(data, emf.WithDiagnostics(report))

	var (
		res     Result
		entries []Entry
		walkErr error
	)
	for {
		if p.opts.Limit > 0 && it.Records() >= p.opts.Limit {
			res.Truncated = true
			break
		}
		rec, err := it.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			walkErr = err
			break
		}
		e := p.entry(it.Records()-1, rec)
		if p.opts.Format == FormatJSON {
			entries = append(entries, e)
			continue
		}
		if err := p.writeText(e); err != nil {
			return res, err
		}
	}
	res.Records, res.Bytes = it.Records(), it.Offset()
	if p.opts.Diagnostics {
		res.Report = report
	}

	var err error
	if p.opts.Format == FormatJSON {
		err = p.writeJSON(entries, res, walkErr)
	} else {
		err = p.writeFooter(res, walkErr)
	}
	if err != nil {
		return res, err
	}
	return res, walkErr
}

func (p *Printer) entry(index int, rec emf.Record) Entry {
	e := Entry{
		Index:  index,
		Offset: rec.Offset,
		Type:   rec.Type.String(),
		Size:   rec.Size,
	}
	body, err := records.Decode(rec)
	if err != nil {
		e.Error = err.Error()
	} else {
		e.Summary = Describe(body)
	}
	if p.opts.Hex {
		raw := rec.Bytes()
		if p.opts.MaxHexBytes > 0 && len(raw) > p.opts.MaxHexBytes {
			raw = raw[:p.opts.MaxHexBytes]
		}
		e.Hex = hexBytes(raw)
	}
	return e
}

func stockName(h uint32) string {
	if h&emf.StockObject != 0 {
		return fmt.Sprintf("stock %d", h&^emf.StockObject)
	}
	return fmt.Sprintf("%d", h)
}
