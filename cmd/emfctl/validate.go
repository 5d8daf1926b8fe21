package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/emfkit/emf"
	"github.com/joshuapare/emfkit/emf/records"
	"github.com/joshuapare/emfkit/pkg/metafile"
)

// errInvalid is returned when validation found errors; the details have
// already been printed.
var errInvalid = errors.New("validation failed")

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Check record framing and decodability",
		Long: `The validate command walks the whole stream and decodes every record it
knows. Structural faults stop the walk; the number of records read before the
fault is reported. Header totals that disagree with the stream are warnings.

Exit status is non-zero when a structural fault or an undecodable record is
found.

Example:
  emfctl validate drawing.emf
  emfctl validate drawing.emf --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return a.runValidate(args[0])
		},
	}
}

type validateJSON struct {
	File        string                `json:"file"`
	Valid       bool                  `json:"valid"`
	Records     int                   `json:"records"`
	Bytes       int                   `json:"bytes"`
	Error       string                `json:"error,omitempty"`
	Diagnostics *emf.DiagnosticReport `json:"diagnostics"`
}

func (a *app) runValidate(path string) error {
	report := emf.NewDiagnosticReport()
	f, err := a.open(path, metafile.WithDiagnostics(report))
	if err != nil {
		return err
	}
	defer f.Close()

	index := 0
	sum, walkErr := f.Walk(func(rec emf.Record) error {
		if _, err := records.Decode(rec); err != nil {
			report.Add(emf.Diagnostic{
				Severity: emf.SevError,
				Offset:   rec.Offset,
				Record:   index,
				Type:     rec.Type,
				Issue:    err.Error(),
				Err:      err,
			})
		}
		index++
		return nil
	})
	valid := walkErr == nil && report.Summary.Errors == 0 && report.Summary.Critical == 0

	if a.cfg.JSON {
		out := validateJSON{
			File:        path,
			Valid:       valid,
			Records:     sum.Records,
			Bytes:       sum.Bytes,
			Diagnostics: report,
		}
		if walkErr != nil {
			out.Error = walkErr.Error()
		}
		if err := a.printJSON(out); err != nil {
			return err
		}
	} else {
		for _, d := range report.Diagnostics {
			a.printf("%-8s record %d @0x%X %s: %s\n", d.Severity, d.Record, d.Offset, typeName(d), d.Issue)
		}
		if valid {
			a.printf("ok: %d records, %d bytes\n", sum.Records, sum.Bytes)
		} else {
			a.printf("invalid: %d records read\n", sum.Records)
		}
	}

	if !valid {
		if walkErr != nil {
			return fmt.Errorf("%w: %w", errInvalid, walkErr)
		}
		return errInvalid
	}
	return nil
}

func typeName(d emf.Diagnostic) string {
	if d.Type == 0 {
		return "-"
	}
	return d.Type.String()
}
