package main

import (
	"github.com/spf13/cobra"

	"github.com/joshuapare/emfkit/internal/dump"
)

func newDumpCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump <file>",
		Short: "Print one line per record",
		Long: `The dump command prints every record: index, offset, type name, size and a
short decoded summary. Walk diagnostics follow the records.

Example:
  emfctl dump drawing.emf
  emfctl dump drawing.emf --hex --hex-bytes 32
  emfctl dump drawing.emf --limit 20 --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return a.runDump(args[0])
		},
	}
	cmd.Flags().Bool("hex", false, "Include raw record bytes")
	cmd.Flags().Int("hex-bytes", dump.DefaultMaxHexBytes, "Bytes of hex per record (0 = all)")
	cmd.Flags().Int("limit", 0, "Stop after this many records (0 = all)")
	return cmd
}

func (a *app) runDump(path string) error {
	f, err := a.open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	opts := dump.DefaultOptions()
	if a.cfg.JSON {
		opts.Format = dump.FormatJSON
	}
	opts.Hex = a.cfg.DumpHex
	opts.MaxHexBytes = a.cfg.DumpHexBytes
	opts.Limit = a.cfg.DumpLimit

	_, err = dump.New(a.out, opts).Stream(f.Bytes())
	return err
}
