// Package mmfile maps metafile inputs into memory for read sessions.
//
// The returned slice is read-only: the walker and the dump tooling only view
// it. Callers that need to normalize byte order copy it first.
package mmfile

import (
	"errors"
	"fmt"
	"os"
)

// MaxSize is the largest input accepted: record sizes and the header's
// nBytes are 32-bit, so nothing larger can be a well-formed stream.
const MaxSize = 1<<32 - 1

// ErrTooLarge indicates the input exceeds MaxSize.
var ErrTooLarge = errors.New("mmfile: file too large")

// ReadAll reads the file at path into a fresh buffer. It is the fallback when
// mapping is unavailable and the path used by callers that must mutate.
func ReadAll(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.Size() > MaxSize {
		return nil, fmt.Errorf("%w (%d bytes)", ErrTooLarge, info.Size())
	}
	return os.ReadFile(path)
}

func noop() error { return nil }
