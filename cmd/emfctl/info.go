package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joshuapare/emfkit/emf"
	"github.com/joshuapare/emfkit/emf/records"
	"github.com/joshuapare/emfkit/internal/dump"
)

func newInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info <file>",
		Short: "Show header fields and record counts",
		Long: `The info command decodes the header record and walks the stream, counting
records per type.

Example:
  emfctl info drawing.emf
  emfctl info drawing.emf --json
  emfctl info drawing.be.emf --big-endian`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return a.runInfo(args[0])
		},
	}
}

type infoJSON struct {
	File        string          `json:"file"`
	Header      *headerJSON     `json:"header,omitempty"`
	Records     int             `json:"records"`
	Bytes       int             `json:"bytes"`
	Types       map[string]int  `json:"types"`
	Diagnostics emf.DiagSummary `json:"diagnostics"`
	Error       string          `json:"error,omitempty"`
}

type headerJSON struct {
	Bounds      emf.RectL `json:"bounds"`
	Frame       emf.RectL `json:"frame"`
	Version     uint32    `json:"version"`
	Bytes       uint32    `json:"bytes"`
	Records     uint32    `json:"records"`
	Handles     uint16    `json:"handles"`
	Description string    `json:"description,omitempty"`
	PalEntries  uint32    `json:"pal_entries"`
	Device      emf.SizeL `json:"device"`
	Millimeters emf.SizeL `json:"millimeters"`
	Micrometers emf.SizeL `json:"micrometers,omitzero"`
}

func (a *app) runInfo(path string) error {
	f, err := a.open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	var hdr *records.HeaderBody
	sum, walkErr := f.Walk(func(rec emf.Record) error {
		if rec.Type != emf.EMRHeader || hdr != nil {
			return nil
		}
		body, err := records.Decode(rec)
		if err != nil {
			a.log.Warn("header not decodable", "err", err)
			return nil
		}
		if h, ok := body.(records.HeaderBody); ok {
			hdr = &h
		}
		return nil
	})

	if a.cfg.JSON {
		out := infoJSON{
			File:        path,
			Records:     sum.Records,
			Bytes:       sum.Bytes,
			Types:       make(map[string]int, len(sum.Types)),
			Diagnostics: sum.Diagnostics.Summary,
		}
		for t, n := range sum.Types {
			out.Types[t.String()] = n
		}
		if hdr != nil {
			out.Header = &headerJSON{
				Bounds:      hdr.Bounds,
				Frame:       hdr.Frame,
				Version:     hdr.Version,
				Bytes:       hdr.Bytes,
				Records:     hdr.Records,
				Handles:     hdr.Handles,
				Description: hdr.Description,
				PalEntries:  hdr.PalEntries,
				Device:      hdr.Device,
				Millimeters: hdr.Millimeters,
				Micrometers: hdr.Micrometers,
			}
		}
		if walkErr != nil {
			out.Error = walkErr.Error()
		}
		if err := a.printJSON(out); err != nil {
			return err
		}
		return walkErr
	}

	a.printf("File:        %s\n", path)
	if hdr != nil {
		a.printf("Bounds:      %s\n", rectString(hdr.Bounds))
		a.printf("Frame:       %s (0.01 mm)\n", rectString(hdr.Frame))
		a.printf("Device:      %d x %d px, %d x %d mm\n", hdr.Device.CX, hdr.Device.CY, hdr.Millimeters.CX, hdr.Millimeters.CY)
		a.printf("Header:      %d bytes, %d records, %d handles, %d palette entries\n", hdr.Bytes, hdr.Records, hdr.Handles, hdr.PalEntries)
		if hdr.Description != "" {
			a.printf("Description: %s\n", strings.Join(strings.Split(strings.TrimRight(hdr.Description, "\x00"), "\x00"), " / "))
		}
	}
	a.printf("Walked:      %d records, %d bytes\n", sum.Records, sum.Bytes)
	for _, line := range dump.Summarize(sum.Types) {
		a.printf("  %s\n", line)
	}
	if d := sum.Diagnostics.Summary; d.Warnings+d.Errors+d.Critical > 0 {
		a.printf("Diagnostics: %d warnings, %d errors, %d critical\n", d.Warnings, d.Errors, d.Critical)
	}
	return walkErr
}

func rectString(r emf.RectL) string {
	return fmt.Sprintf("(%d,%d)-(%d,%d)", r.Left, r.Top, r.Right, r.Bottom)
}
