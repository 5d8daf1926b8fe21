package dump

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/joshuapare/emfkit/emf"
)

const hexPerLine = 16

func (p *Printer) writeText(e Entry) error {
	line := fmt.Sprintf("%5d  0x%08X  %-26s %7d", e.Index, e.Offset, e.Type, e.Size)
	switch {
	case e.Error != "":
		line += "  !" + e.Error
	case e.Summary != "":
		line += "  " + e.Summary
	}
	if _, err := fmt.Fprintln(p.w, line); err != nil {
		return err
	}
	if e.Hex == "" {
		return nil
	}
	for _, l := range hexLines(e.Hex) {
		if _, err := fmt.Fprintf(p.w, "%7s%s\n", "", l); err != nil {
			return err
		}
	}
	return nil
}

func (p *Printer) writeFooter(res Result, walkErr error) error {
	if res.Report != nil {
		for _, d := range res.Report.Diagnostics {
			if _, err := fmt.Fprintf(p.w, "%s record %d @0x%X: %s\n", d.Severity, d.Record, d.Offset, d.Issue); err != nil {
				return err
			}
		}
	}
	tail := ""
	if res.Truncated {
		tail = " (limit reached)"
	}
	if walkErr != nil {
		tail = " (halted: " + walkErr.Error() + ")"
	}
	_, err := fmt.Fprintf(p.w, "%d records, %d bytes%s\n", res.Records, res.Bytes, tail)
	return err
}

type document struct {
	Result
	Entries []Entry `json:"entries"`
	Error   string  `json:"error,omitempty"`
}

func (p *Printer) writeJSON(entries []Entry, res Result, walkErr error) error {
	doc := document{Result: res, Entries: entries}
	if doc.Entries == nil {
		doc.Entries = []Entry{}
	}
	if walkErr != nil {
		doc.Error = walkErr.Error()
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(p.w, "%s\n", data)
	return err
}

func hexBytes(b []byte) string {
	return fmt.Sprintf("% x", b)
}

// hexLines splits the "% x" form into rows of hexPerLine bytes.
func hexLines(s string) []string {
	var out []string
	const width = hexPerLine*3 - 1
	for len(s) > width {
		out = append(out, s[:width])
		s = s[width+1:]
	}
	return append(out, s)
}

// Summarize formats per-type counts, most frequent first, for `info`.
func Summarize(types map[emf.RecordType]int) []string {
	out := make([]string, 0, len(types))
	for _, t := range sortedTypes(types) {
		out = append(out, fmt.Sprintf("%-26s %d", t.String(), types[t]))
	}
	return out
}

func sortedTypes(types map[emf.RecordType]int) []emf.RecordType {
	keys := make([]emf.RecordType, 0, len(types))
	for t := range types {
		keys = append(keys, t)
	}
	slices.SortFunc(keys, func(a, b emf.RecordType) int {
		if types[a] != types[b] {
			return types[b] - types[a]
		}
		return int(a) - int(b)
	})
	return keys
}
