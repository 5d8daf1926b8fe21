package emf

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Severity classifies a diagnostic.
type Severity int

const (
	SevInfo     Severity = iota // unusual but valid
	SevWarning                  // readable anomaly, walk continues
	SevError                    // a record could not be interpreted
	SevCritical                 // structural fault, walk halted
)

func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "INFO"
	case SevWarning:
		return "WARNING"
	case SevError:
		return "ERROR"
	case SevCritical:
		return "CRITICAL"
	default:
		return fmt.Sprintf("Severity(%d)", int(s))
	}
}

// MarshalJSON renders the severity by name.
func (s Severity) MarshalJSON() ([]byte, error) {
	return json.Marshal(strings.ToLower(s.String()))
}

// Diagnostic is a single issue observed while walking a stream.
type Diagnostic struct {
	Severity Severity   `json:"severity"`
	Offset   int        `json:"offset"`
	Record   int        `json:"record"` // zero-based record index
	Type     RecordType `json:"type"`
	Issue    string     `json:"issue"`
	Err      error      `json:"-"`
}

// DiagSummary counts diagnostics per severity.
type DiagSummary struct {
	Critical int `json:"critical"`
	Errors   int `json:"errors"`
	Warnings int `json:"warnings"`
	Info     int `json:"info"`
}

// DiagnosticReport collects diagnostics. Collection is opt-in: the walker
// only records into a report that was handed to it.
type DiagnosticReport struct {
	Diagnostics []Diagnostic `json:"diagnostics"`
	Summary     DiagSummary  `json:"summary"`
}

// NewDiagnosticReport creates an empty report.
func NewDiagnosticReport() *DiagnosticReport {
	return &DiagnosticReport{}
}

// Add appends d and updates the summary.
func (r *DiagnosticReport) Add(d Diagnostic) {
	r.Diagnostics = append(r.Diagnostics, d)
	switch d.Severity {
	case SevCritical:
		r.Summary.Critical++
	case SevError:
		r.Summary.Errors++
	case SevWarning:
		r.Summary.Warnings++
	case SevInfo:
		r.Summary.Info++
	}
}

// Sort orders diagnostics by offset, keeping insertion order for ties.
func (r *DiagnosticReport) Sort() {
	sort.SliceStable(r.Diagnostics, func(i, j int) bool {
		return r.Diagnostics[i].Offset < r.Diagnostics[j].Offset
	})
}

// HasCriticalIssues reports whether a structural fault was recorded.
func (r *DiagnosticReport) HasCriticalIssues() bool {
	return r.Summary.Critical > 0
}

// HasErrors reports whether any error or critical issue was recorded.
func (r *DiagnosticReport) HasErrors() bool {
	return r.Summary.Critical > 0 || r.Summary.Errors > 0
}

// Filter returns the diagnostics of the given severity.
func (r *DiagnosticReport) Filter(sev Severity) []Diagnostic {
	var out []Diagnostic
	for _, d := range r.Diagnostics {
		if d.Severity == sev {
			out = append(out, d)
		}
	}
	return out
}

// FormatCompact returns one line per diagnostic.
func (r *DiagnosticReport) FormatCompact() string {
	var b strings.Builder
	for _, d := range r.Diagnostics {
		fmt.Fprintf(&b, "0x%08X [%s] record %d %s: %s\n", d.Offset, d.Severity, d.Record, d.Type, d.Issue)
	}
	if len(r.Diagnostics) == 0 {
		b.WriteString("No issues found.\n")
	}
	return b.String()
}
