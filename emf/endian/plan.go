package endian

import (
	"fmt"
	"slices"

	"github.com/joshuapare/emfkit/internal/buf"
)

// span is a run of n fields of w bytes at a record-relative offset.
type span struct {
	off, w, n int
}

// planner resolves a record's schema into concrete spans. Counts, offsets and
// flags are read in the source order before anything is swapped, so the same
// plan comes out regardless of which direction the stream is heading.
type planner struct {
	rec   []byte
	big   bool // source order is big-endian
	spans []span
}

func (p *planner) size() int { return len(p.rec) }

// u32 reads a source-order uint32 at off.
func (p *planner) u32(off int) (uint32, error) {
	b, ok := buf.Slice(p.rec, off, 4)
	if !ok {
		return 0, fmt.Errorf("%w: u32 at %d, record is %d bytes", ErrFieldBounds, off, len(p.rec))
	}
	return buf.U32Order(b, p.big), nil
}

// u16 reads a source-order uint16 at off.
func (p *planner) u16(off int) (uint16, error) {
	b, ok := buf.Slice(p.rec, off, 2)
	if !ok {
		return 0, fmt.Errorf("%w: u16 at %d, record is %d bytes", ErrFieldBounds, off, len(p.rec))
	}
	return buf.U16Order(b, p.big), nil
}

// count reads a source-order uint32 and converts it for offset arithmetic.
func (p *planner) count(off int) (int, error) {
	v, err := p.u32(off)
	if err != nil {
		return 0, err
	}
	if uint64(v) > uint64(len(p.rec)) {
		// No array in a record can hold more elements than it has bytes.
		return 0, fmt.Errorf("%w: count %d at %d exceeds record size %d", ErrFieldBounds, v, off, len(p.rec))
	}
	return int(v), nil
}

// add records n fields of w bytes at off after checking they fit.
func (p *planner) add(off, w, n int) error {
	if n == 0 {
		return nil
	}
	if _, err := buf.CheckArrayBounds(len(p.rec), off, n, w); err != nil {
		return fmt.Errorf("%w: %d x %d bytes at %d: %v", ErrFieldBounds, n, w, off, err)
	}
	p.spans = append(p.spans, span{off: off, w: w, n: n})
	return nil
}

func (p *planner) words(off, n int) error  { return p.add(off, 4, n) }
func (p *planner) halves(off, n int) error { return p.add(off, 2, n) }

// wordRange adds every 32-bit field in [from, to).
func (p *planner) wordRange(from, to int) error {
	if to <= from {
		return nil
	}
	return p.words(from, (to-from)/4)
}

// disjoint fails when two planned spans share a byte. Overlapping fields
// would be swapped twice and the result would no longer invert.
func (p *planner) disjoint() error {
	sorted := slices.SortedFunc(slices.Values(p.spans), func(a, b span) int {
		return a.off - b.off
	})
	for i := 1; i < len(sorted); i++ {
		prev, cur := sorted[i-1], sorted[i]
		if prev.off+prev.w*prev.n > cur.off {
			return fmt.Errorf("%w: field at %d overlaps field at %d", ErrFieldBounds, cur.off, prev.off)
		}
	}
	return nil
}

// apply swaps every planned span in place.
func (p *planner) apply() {
	for _, s := range p.spans {
		b := p.rec[s.off:]
		switch s.w {
		case 2:
			buf.Swap16N(b, s.n)
		case 4:
			buf.Swap32N(b, s.n)
		}
	}
}
