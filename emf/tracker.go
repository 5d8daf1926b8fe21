package emf

import (
	"fmt"

	"github.com/joshuapare/emfkit/internal/format"
)

const (
	// DefaultInitialCapacity is the starting buffer size of a Tracker.
	DefaultInitialCapacity = 4096
	// DefaultMaxSize is the largest stream a Tracker grows to: nSize and the
	// header's nBytes are both 32-bit.
	DefaultMaxSize = format.MaxStreamSize
)

// Tracker is the append-only write buffer of one write session. Appends copy
// pre-serialized records to the tail; capacity doubles when it runs out.
//
// A Tracker is not safe for concurrent use.
type Tracker struct {
	buf     []byte
	used    int
	max     int
	records int
	closed  bool
}

type trackerConfig struct {
	initial int
	max     int
}

// TrackerOption configures a Tracker.
type TrackerOption func(*trackerConfig)

// WithInitialCapacity sets the initial buffer size.
func WithInitialCapacity(n int) TrackerOption {
	return func(c *trackerConfig) {
		if n > 0 {
			c.initial = n
		}
	}
}

// WithMaxSize caps the buffer size. Appends that would exceed it fail with
// ErrOutOfMemory.
func WithMaxSize(n int) TrackerOption {
	return func(c *trackerConfig) {
		if n > 0 {
			c.max = n
		}
	}
}

// NewTracker creates an empty Tracker.
func NewTracker(opts ...TrackerOption) *Tracker {
	cfg := trackerConfig{initial: DefaultInitialCapacity, max: DefaultMaxSize}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.initial > cfg.max {
		cfg.initial = cfg.max
	}
	return &Tracker{buf: make([]byte, cfg.initial), max: cfg.max}
}

// Append copies rec to the tail of the buffer. It does not validate rec: the
// record constructors guarantee size and alignment.
func (t *Tracker) Append(rec []byte) error {
	if t.closed {
		return ErrSessionClosed
	}
	if err := t.reserve(len(rec)); err != nil {
		return err
	}
	copy(t.buf[t.used:], rec)
	t.used += len(rec)
	t.records++
	return nil
}

// reserve ensures n more bytes fit, doubling capacity as needed.
func (t *Tracker) reserve(n int) error {
	need := t.used + n
	if need < t.used || need > t.max {
		return fmt.Errorf("%w (used=%d, append=%d, max=%d)", ErrOutOfMemory, t.used, n, t.max)
	}
	if need <= len(t.buf) {
		return nil
	}
	newCap := len(t.buf)
	if newCap == 0 {
		newCap = DefaultInitialCapacity
	}
	for newCap < need {
		if newCap > t.max/2 {
			newCap = t.max
			break
		}
		newCap *= 2
	}
	grown := make([]byte, newCap)
	copy(grown, t.buf[:t.used])
	Logger().Debug("emf: tracker grow", "from", len(t.buf), "to", newCap, "used", t.used)
	t.buf = grown
	return nil
}

// Used returns the number of bytes appended so far.
func (t *Tracker) Used() int { return t.used }

// Cap returns the current buffer capacity.
func (t *Tracker) Cap() int { return len(t.buf) }

// Records returns the number of successful appends.
func (t *Tracker) Records() int { return t.records }

// Closed reports whether the session has ended.
func (t *Tracker) Closed() bool { return t.closed }

// Bytes returns a view of the written bytes. The view is capacity-limited so
// appending to it cannot clobber the Tracker, but the caller must not write
// through it.
func (t *Tracker) Bytes() []byte {
	if t.buf == nil {
		return nil
	}
	return t.buf[:t.used:t.used]
}

// Patch overwrites already written bytes at off. It exists for fields that
// are only known at the end of a session, such as the header totals.
func (t *Tracker) Patch(off int, b []byte) error {
	if t.closed {
		return ErrSessionClosed
	}
	if off < 0 || off > t.used || len(b) > t.used-off {
		return fmt.Errorf("%w (off=%d, len=%d, used=%d)", ErrPatchRange, off, len(b), t.used)
	}
	copy(t.buf[off:], b)
	return nil
}

// Mutable returns the written bytes for in-place transformation before the
// session ends (e.g. byte-order normalization). No appends may happen while
// the slice is in use.
func (t *Tracker) Mutable() ([]byte, error) {
	if t.closed {
		return nil, ErrSessionClosed
	}
	return t.buf[:t.used:t.used], nil
}

// Finish ends the session and hands the written bytes to the caller. Further
// appends and a second Finish fail with ErrSessionClosed.
func (t *Tracker) Finish() ([]byte, error) {
	if t.closed {
		return nil, ErrSessionClosed
	}
	t.closed = true
	out := t.buf[:t.used:t.used]
	t.buf = nil
	return out, nil
}

// Abort ends the session and discards the buffer.
func (t *Tracker) Abort() {
	t.closed = true
	t.buf = nil
	t.used = 0
}
