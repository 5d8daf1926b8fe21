// Package writer exposes sinks that persist a finished record stream.
package writer

import (
	"fmt"
	"os"
	"path/filepath"
)

// Sink accepts a finalized record stream. Implementations must not retain buf
// after returning unless they copy it.
type Sink interface {
	WriteStream(buf []byte) error
}

// FileWriter writes a stream to Path through a temporary file in the same
// directory and a rename, so readers see either the old file or the new one.
type FileWriter struct {
	Path string
	Perm os.FileMode // zero means 0o644
}

// WriteStream persists buf. On failure the temporary file is removed and
// Path is left as it was.
func (w *FileWriter) WriteStream(buf []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(w.Path), ".emfkit-tmp-*")
	if err != nil {
		return fmt.Errorf("writer: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	perm := w.Perm
	if perm == 0 {
		perm = 0o644
	}
	for _, step := range []struct {
		what string
		fn   func() error
	}{
		{"write", func() error { _, err := tmp.Write(buf); return err }},
		{"chmod", func() error { return tmp.Chmod(perm) }},
		{"sync", tmp.Sync},
		{"close", tmp.Close},
	} {
		if err := step.fn(); err != nil {
			return fmt.Errorf("writer: %s %s: %w", step.what, tmp.Name(), err)
		}
	}
	if err := os.Rename(tmp.Name(), w.Path); err != nil {
		return fmt.Errorf("writer: %w", err)
	}
	committed = true
	return nil
}
