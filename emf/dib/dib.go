// Package dib converts between flat RGBA pixel buffers and the packed
// Device-Independent Bitmap (DIB) encoding carried by raster records.
//
// RGBA buffers hold four bytes per pixel in R, G, B, A order, rows top to
// bottom. DIB rows are padded to four bytes and stored bottom-up unless the
// bitmap is top-down (negative biHeight). Supported depths are 1, 4 and 8
// bits (indexed through a color table) and 16, 24 and 32 bits (direct).
//
// Round trips are exact except for two documented losses: depths without an
// alpha channel (16 and 24) decode alpha as 0, and 16-bit pixels keep only
// the top five bits of each channel.
package dib

import (
	"errors"
	"fmt"

	"github.com/joshuapare/emfkit/internal/buf"
)

var (
	// ErrInvalidDimensions indicates a non-positive width or height, a
	// stride too small for the width, or a pixel area too large to address.
	ErrInvalidDimensions = errors.New("dib: invalid dimensions")
	// ErrUnsupportedDepth indicates a bit depth outside {1, 4, 8, 16, 24, 32}.
	ErrUnsupportedDepth = errors.New("dib: unsupported bit depth")
	// ErrColorTableRequired indicates an indexed depth decoded without a table.
	ErrColorTableRequired = errors.New("dib: color table required")
	// ErrColorTableNotAllowed indicates a table supplied for a direct-color depth.
	ErrColorTableNotAllowed = errors.New("dib: color table not allowed")
	// ErrShortBuffer indicates fewer bytes than the dimensions require.
	ErrShortBuffer = errors.New("dib: buffer too short")
	// ErrIndexOutOfRange indicates a pixel index past the end of the table.
	ErrIndexOutOfRange = errors.New("dib: color index out of range")
	// ErrTableTooLarge indicates a supplied table with more than 2^depth entries.
	ErrTableTooLarge = errors.New("dib: color table too large")
	// ErrUnsupportedCompression indicates a compressed (non BI_RGB) bitmap.
	ErrUnsupportedCompression = errors.New("dib: unsupported compression")
)

// RGBQuad is one color table entry, stored blue first. Reserved carries the
// alpha of indexed colors.
type RGBQuad struct {
	Blue, Green, Red, Reserved uint8
}

// Palette selects how indexed depths assign pixels to table entries.
type Palette int

const (
	// PaletteNearest stores the distinct colors in first-seen order when they
	// fit; otherwise it samples them by luminance and maps each pixel to the
	// nearest entry. A caller-supplied table is always matched by nearest color.
	PaletteNearest Palette = iota
	// PalettePosition derives each pixel's index from its position (see
	// PositionIndex). Each entry holds the first color mapped to it. It is
	// meant for generated test patterns.
	PalettePosition
)

// Options controls FromRGBA.
type Options struct {
	Depth   int
	TopDown bool      // keep RGBA row order and mark the DIB with a negative height
	Palette Palette   // index assignment for depths below 16
	Table   []RGBQuad // optional table for depths below 16
}

// Bitmap is a DIB pixel buffer and its color table.
type Bitmap struct {
	Width   int
	Height  int // always positive; TopDown carries the row order
	Depth   int
	TopDown bool
	Pixels  []byte
	Table   []RGBQuad
}

// Indexed reports whether depth uses a color table.
func Indexed(depth int) bool {
	return depth == 1 || depth == 4 || depth == 8
}

// ValidDepth reports whether depth is supported.
func ValidDepth(depth int) bool {
	switch depth {
	case 1, 4, 8, 16, 24, 32:
		return true
	}
	return false
}

// RowStride returns the padded byte length of one DIB row.
func RowStride(width, depth int) int {
	used := (width*depth + 7) / 8
	return (used + 3) &^ 3
}

// layout holds the byte sizes derived from a bitmap's dimensions.
type layout struct {
	stride  int // padded DIB row
	pixels  int // stride * height
	rgbaRow int // 4 * width
	rgba    int // rgbaRow * height
}

// sizes computes the layout of a width x height bitmap at depth. Header
// fields come from untrusted input, so every product is overflow-checked.
func sizes(width, height, depth int) (layout, error) {
	if width <= 0 || height <= 0 {
		return layout{}, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	rowBits, ok1 := buf.MulOverflowSafe(width, depth)
	rgbaRow, ok2 := buf.MulOverflowSafe(width, 4)
	if !ok1 || !ok2 {
		return layout{}, fmt.Errorf("%w: %dx%d overflows", ErrInvalidDimensions, width, height)
	}
	used := rowBits / 8
	if rowBits%8 != 0 {
		used++
	}
	l := layout{stride: (used + 3) &^ 3, rgbaRow: rgbaRow}
	var ok3, ok4 bool
	l.pixels, ok3 = buf.MulOverflowSafe(l.stride, height)
	l.rgba, ok4 = buf.MulOverflowSafe(rgbaRow, height)
	if !ok3 || !ok4 {
		return layout{}, fmt.Errorf("%w: %dx%d overflows", ErrInvalidDimensions, width, height)
	}
	return l, nil
}

// TableCapacity is the largest table an image of w x h pixels gets at depth:
// 2^depth entries, but never more than the pixel count.
func TableCapacity(width, height, depth int) int {
	if !Indexed(depth) {
		return 0
	}
	n := 1 << depth
	if px := width * height; px < n {
		n = px
	}
	return n
}

// Stride returns the padded row length of b.
func (b *Bitmap) Stride() int { return RowStride(b.Width, b.Depth) }

// SignedHeight returns the biHeight value: negative for top-down bitmaps.
func (b *Bitmap) SignedHeight() int32 {
	if b.TopDown {
		return -int32(b.Height)
	}
	return int32(b.Height)
}
