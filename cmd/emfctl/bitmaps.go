package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/joshuapare/emfkit/emf"
	"github.com/joshuapare/emfkit/emf/records"
)

func newBitmapsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "bitmaps <file> <dir>",
		Short: "Export STRETCHDIBITS images as .bmp files",
		Long: `The bitmaps command converts the DIB of every EMR_STRETCHDIBITS record and
writes it to <dir>/dib-NNNN.bmp, where NNNN is the record index. Records
whose bitmap cannot be converted are reported and skipped.

Example:
  emfctl bitmaps drawing.emf ./images`,
		Args: cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return a.runBitmaps(args[0], args[1])
		},
	}
}

type bitmapJSON struct {
	Record int    `json:"record"`
	Path   string `json:"path,omitempty"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
	Depth  int    `json:"depth,omitempty"`
	Error  string `json:"error,omitempty"`
}

func (a *app) runBitmaps(path, dir string) error {
	f, err := a.open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	var out []bitmapJSON
	index := 0
	_, walkErr := f.Walk(func(rec emf.Record) error {
		defer func() { index++ }()
		if rec.Type != emf.EMRStretchDIBits {
			return nil
		}
		entry := bitmapJSON{Record: index}
		if err := exportDIB(rec, dir, &entry); err != nil {
			a.log.Warn("bitmap skipped", "record", index, "err", err)
			entry.Error = err.Error()
		}
		out = append(out, entry)
		return nil
	})

	if a.cfg.JSON {
		if out == nil {
			out = []bitmapJSON{}
		}
		if err := a.printJSON(out); err != nil {
			return err
		}
	} else {
		for _, e := range out {
			if e.Error != "" {
				a.printf("record %d: %s\n", e.Record, e.Error)
				continue
			}
			a.printf("%s  %dx%d@%d\n", e.Path, e.Width, e.Height, e.Depth)
		}
		a.infof("%d bitmaps\n", len(out))
	}
	return walkErr
}

func exportDIB(rec emf.Record, dir string, entry *bitmapJSON) error {
	body, err := records.Decode(rec)
	if err != nil {
		return err
	}
	sd, ok := body.(records.StretchDIBitsBody)
	if !ok {
		return fmt.Errorf("unexpected body %T", body)
	}
	bm, err := sd.Bitmap()
	if err != nil {
		return err
	}

	name := filepath.Join(dir, fmt.Sprintf("dib-%04d.bmp", entry.Record))
	file, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := bm.WriteBMP(file); err != nil {
		_ = file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return err
	}
	entry.Path, entry.Width, entry.Height, entry.Depth = name, bm.Width, bm.Height, bm.Depth
	return nil
}
