// Package handles implements the object-handle table of a write session.
//
// Handles are small integers naming pens, brushes, fonts and other GDI-style
// objects across records. Handle 0 is reserved. Allocation always returns the
// lowest free handle, so freed handles are reused before the table grows.
// Liveness is tracked with a bitmap of 64-bit words plus a hint pointing at the
// lowest word that may still hold a free slot, which keeps allocation cheap
// under churn.
//
// A Table is not safe for concurrent use.
package handles

import (
	"errors"
	"fmt"
	"math/bits"
)

const (
	// DefaultLimit is the highest handle a table hands out by default. The
	// header stores nHandles (peak + 1) as a 16-bit count.
	DefaultLimit = 0xFFFE

	// StockFlag marks predefined stock objects, which never enter the table.
	StockFlag = 0x80000000

	bitsPerWord = 64
)

// Stock objects.
const (
	WhiteBrush        uint32 = StockFlag | 0x00
	LtGrayBrush       uint32 = StockFlag | 0x01
	GrayBrush         uint32 = StockFlag | 0x02
	DkGrayBrush       uint32 = StockFlag | 0x03
	BlackBrush        uint32 = StockFlag | 0x04
	NullBrush         uint32 = StockFlag | 0x05
	WhitePen          uint32 = StockFlag | 0x06
	BlackPen          uint32 = StockFlag | 0x07
	NullPen           uint32 = StockFlag | 0x08
	OEMFixedFont      uint32 = StockFlag | 0x0A
	ANSIFixedFont     uint32 = StockFlag | 0x0B
	ANSIVarFont       uint32 = StockFlag | 0x0C
	SystemFont        uint32 = StockFlag | 0x0D
	DeviceDefaultFont uint32 = StockFlag | 0x0E
	DefaultPalette    uint32 = StockFlag | 0x0F
	SystemFixedFont   uint32 = StockFlag | 0x10
	DefaultGUIFont    uint32 = StockFlag | 0x11
	DCBrush           uint32 = StockFlag | 0x12
	DCPen             uint32 = StockFlag | 0x13
)

var (
	// ErrInvalidHandle indicates a free of a handle that is not live.
	ErrInvalidHandle = errors.New("handles: invalid handle")
	// ErrTableFull indicates every handle up to the limit is live.
	ErrTableFull = errors.New("handles: table full")
)

// IsStock reports whether h names a stock object.
func IsStock(h uint32) bool { return h&StockFlag != 0 }

// Table tracks which handles are live.
type Table struct {
	words    []uint64
	hint     int // lowest word index that may contain a clear bit
	live     int
	peak     uint32
	limit    uint32
	reserved uint32
}

// Option configures a Table.
type Option func(*Table)

// WithLimit sets the highest handle the table may hand out.
func WithLimit(n uint32) Option {
	return func(t *Table) {
		if n > 0 && n < StockFlag {
			t.limit = n
		}
	}
}

// WithReserved keeps handles 1..n out of circulation in addition to 0.
func WithReserved(n uint32) Option {
	return func(t *Table) { t.reserved = n }
}

// New creates an empty table.
func New(opts ...Option) *Table {
	t := &Table{limit: DefaultLimit}
	for _, opt := range opts {
		opt(t)
	}
	if t.reserved >= t.limit {
		t.reserved = t.limit
	}
	// Reserved handles are permanently marked in use.
	for h := uint32(0); h <= t.reserved; h++ {
		t.set(h)
	}
	return t
}

// Allocate returns the lowest free handle.
func (t *Table) Allocate() (uint32, error) {
	for w := t.hint; ; w++ {
		if w == len(t.words) {
			if uint64(w)*bitsPerWord > uint64(t.limit) {
				t.hint = w
				return 0, fmt.Errorf("%w (limit %d)", ErrTableFull, t.limit)
			}
			t.words = append(t.words, 0)
		}
		word := t.words[w]
		if word == ^uint64(0) {
			continue
		}
		h := uint32(w*bitsPerWord + bits.TrailingZeros64(^word))
		if h > t.limit {
			t.hint = w
			return 0, fmt.Errorf("%w (limit %d)", ErrTableFull, t.limit)
		}
		t.hint = w
		t.set(h)
		t.live++
		if h > t.peak {
			t.peak = h
		}
		return h, nil
	}
}

// Free releases h. Freeing a handle that is not live, a reserved handle or a
// stock object is an error.
func (t *Table) Free(h uint32) error {
	if IsStock(h) || h <= t.reserved || !t.InUse(h) {
		return fmt.Errorf("%w: %d", ErrInvalidHandle, h)
	}
	w := int(h / bitsPerWord)
	t.words[w] &^= 1 << (h % bitsPerWord)
	t.live--
	if w < t.hint {
		t.hint = w
	}
	return nil
}

// Cancel undoes the most recent Allocate that returned h, for an object that
// was never emitted. Unlike Free it also lowers the peak when h raised it.
func (t *Table) Cancel(h uint32) error {
	if err := t.Free(h); err != nil {
		return err
	}
	// Allocate hands out the lowest free handle, so everything below h was
	// live and the previous peak was h-1.
	if h == t.peak {
		t.peak = h - 1
	}
	return nil
}

// InUse reports whether h is live (reserved handles count as live).
func (t *Table) InUse(h uint32) bool {
	w := int(h / bitsPerWord)
	if IsStock(h) || w >= len(t.words) {
		return false
	}
	return t.words[w]&(1<<(h%bitsPerWord)) != 0
}

// Live returns the number of allocated handles, excluding reserved ones.
func (t *Table) Live() int { return t.live }

// Peak returns the highest handle ever allocated, or the reserved ceiling
// when nothing has been allocated.
func (t *Table) Peak() uint32 {
	if t.peak < t.reserved {
		return t.reserved
	}
	return t.peak
}

// Limit returns the highest handle the table may hand out.
func (t *Table) Limit() uint32 { return t.limit }

// Handles returns the live handles in ascending order.
func (t *Table) Handles() []uint32 {
	out := make([]uint32, 0, t.live)
	for w, word := range t.words {
		for word != 0 {
			b := bits.TrailingZeros64(word)
			word &^= 1 << b
			h := uint32(w*bitsPerWord + b)
			if h > t.reserved {
				out = append(out, h)
			}
		}
	}
	return out
}

func (t *Table) set(h uint32) {
	w := int(h / bitsPerWord)
	for w >= len(t.words) {
		t.words = append(t.words, 0)
	}
	t.words[w] |= 1 << (h % bitsPerWord)
}
