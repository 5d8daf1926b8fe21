package buf

import (
	"errors"
	"fmt"
	"math"
)

// ErrOutOfBounds is wrapped by every CheckArrayBounds failure.
var ErrOutOfBounds = errors.New("buf: out of bounds")

// AddOverflowSafe adds a and b, returning ok = false when the result would overflow int.
func AddOverflowSafe(a, b int) (int, bool) {
	if (b > 0 && a > math.MaxInt-b) || (b < 0 && a < math.MinInt-b) {
		return 0, false
	}
	return a + b, true
}

// MulOverflowSafe multiplies two non-negative ints. Counts read from a
// record are untrusted, so every count*width product goes through here.
func MulOverflowSafe(a, b int) (int, bool) {
	switch {
	case a < 0 || b < 0:
		return 0, false
	case a == 0 || b == 0:
		return 0, true
	case a > math.MaxInt/b:
		return 0, false
	}
	return a * b, true
}

// CheckArrayBounds checks that count elements of elementSize bytes starting
// at offset fit in a record of recLen bytes and returns the end offset.
//
//	end, err := buf.CheckArrayBounds(len(rec), off, int(cpts), 4)
//	if err != nil {
//	    return fmt.Errorf("poly16 points: %w", err)
//	}
func CheckArrayBounds(recLen, offset, count, elementSize int) (int, error) {
	if offset < 0 || count < 0 || elementSize < 0 {
		return 0, fmt.Errorf("%w: negative offset, count or width (%d, %d, %d)", ErrOutOfBounds, offset, count, elementSize)
	}
	total, ok := MulOverflowSafe(count, elementSize)
	if !ok {
		return 0, fmt.Errorf("%w: %d x %d overflows", ErrOutOfBounds, count, elementSize)
	}
	end, ok := AddOverflowSafe(offset, total)
	if !ok || end > recLen {
		return 0, fmt.Errorf("%w: [%d, +%d) in %d bytes", ErrOutOfBounds, offset, total, recLen)
	}
	return end, nil
}

// Slice returns b[off:off+n], or false when that range leaves b.
func Slice(b []byte, off, n int) ([]byte, bool) {
	if off < 0 || n < 0 || off > len(b) {
		return nil, false
	}
	if end, ok := AddOverflowSafe(off, n); ok && end <= len(b) {
		return b[off:end], true
	}
	return nil, false
}
