package dib

import (
	"fmt"

	"github.com/joshuapare/emfkit/internal/buf"
)

// FromRGBA packs a w x h RGBA buffer (rows stride bytes apart) into a DIB.
func FromRGBA(rgba []byte, width, height, stride int, opts Options) (*Bitmap, error) {
	if !ValidDepth(opts.Depth) {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedDepth, opts.Depth)
	}
	l, err := sizes(width, height, opts.Depth)
	if err != nil {
		return nil, err
	}
	if stride < l.rgbaRow {
		return nil, fmt.Errorf("%w: %dx%d stride %d", ErrInvalidDimensions, width, height, stride)
	}
	span, ok := buf.MulOverflowSafe(stride, height-1)
	if ok {
		span, ok = buf.AddOverflowSafe(span, l.rgbaRow)
	}
	if !ok {
		return nil, fmt.Errorf("%w: stride %d x %d rows overflows", ErrInvalidDimensions, stride, height)
	}
	if len(rgba) < span {
		return nil, fmt.Errorf("%w: have %d bytes, need %d", ErrShortBuffer, len(rgba), span)
	}
	if !Indexed(opts.Depth) && len(opts.Table) > 0 {
		return nil, ErrColorTableNotAllowed
	}
	if len(opts.Table) > 1<<opts.Depth {
		return nil, fmt.Errorf("%w: %d entries at depth %d", ErrTableTooLarge, len(opts.Table), opts.Depth)
	}

	bm := &Bitmap{
		Width:   width,
		Height:  height,
		Depth:   opts.Depth,
		TopDown: opts.TopDown,
	}
	dstStride := l.stride
	bm.Pixels = make([]byte, l.pixels)

	var index func(row, col int, px []byte) int
	if Indexed(opts.Depth) {
		var pal *palette
		switch {
		case opts.Palette == PalettePosition && len(opts.Table) == 0:
			pal = positionPalette(rgba, width, height, stride, opts.Depth)
		default:
			pal = buildPalette(rgba, width, height, stride, opts.Depth, opts.Table)
		}
		bm.Table = pal.table
		index = pal.index
	}

	for row := range height {
		src := rgba[row*stride : row*stride+4*width]
		dst := bm.Pixels[bm.dibRow(row)*dstStride:][:dstStride]
		for col := range width {
			px := src[4*col : 4*col+4]
			switch opts.Depth {
			case 32:
				dst[4*col] = px[2]
				dst[4*col+1] = px[1]
				dst[4*col+2] = px[0]
				dst[4*col+3] = px[3]
			case 24:
				dst[3*col] = px[2]
				dst[3*col+1] = px[1]
				dst[3*col+2] = px[0]
			case 16:
				lo, hi := pack555(px[0], px[1], px[2])
				dst[2*col] = lo
				dst[2*col+1] = hi
			case 8:
				dst[col] = byte(index(row, col, px))
			case 4:
				v := byte(index(row, col, px))
				if col%2 == 0 {
					dst[col/2] |= v << 4
				} else {
					dst[col/2] |= v
				}
			case 1:
				if index(row, col, px) != 0 {
					dst[col/8] |= 0x80 >> (col % 8)
				}
			}
		}
	}
	return bm, nil
}

// ToRGBA unpacks DIB pixels into a tightly packed (stride 4*width) RGBA
// buffer with rows top to bottom.
func ToRGBA(pixels []byte, table []RGBQuad, width, height, depth int, topDown bool) ([]byte, error) {
	bm := &Bitmap{Width: width, Height: height, Depth: depth, TopDown: topDown, Pixels: pixels, Table: table}
	return bm.RGBA()
}

// RGBA unpacks b into a tightly packed RGBA buffer with rows top to bottom.
func (b *Bitmap) RGBA() ([]byte, error) {
	if !ValidDepth(b.Depth) {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedDepth, b.Depth)
	}
	l, err := sizes(b.Width, b.Height, b.Depth)
	if err != nil {
		return nil, err
	}
	if Indexed(b.Depth) && len(b.Table) == 0 {
		return nil, ErrColorTableRequired
	}
	if !Indexed(b.Depth) && len(b.Table) > 0 {
		return nil, ErrColorTableNotAllowed
	}
	stride := l.stride
	if len(b.Pixels) < l.pixels {
		return nil, fmt.Errorf("%w: have %d bytes, need %d", ErrShortBuffer, len(b.Pixels), l.pixels)
	}

	out := make([]byte, l.rgba)
	for row := range b.Height {
		src := b.Pixels[b.dibRow(row)*stride:][:stride]
		dst := out[l.rgbaRow*row:]
		for col := range b.Width {
			px := dst[4*col : 4*col+4]
			var idx int
			switch b.Depth {
			case 32:
				px[0], px[1], px[2], px[3] = src[4*col+2], src[4*col+1], src[4*col], src[4*col+3]
				continue
			case 24:
				px[0], px[1], px[2], px[3] = src[3*col+2], src[3*col+1], src[3*col], 0
				continue
			case 16:
				px[0], px[1], px[2] = unpack555(src[2*col], src[2*col+1])
				px[3] = 0
				continue
			case 8:
				idx = int(src[col])
			case 4:
				idx = int(src[col/2])
				if col%2 == 0 {
					idx >>= 4
				}
				idx &= 0x0F
			case 1:
				idx = int(src[col/8]>>(7-col%8)) & 1
			}
			if idx >= len(b.Table) {
				return nil, fmt.Errorf("%w: %d at (%d,%d), table has %d", ErrIndexOutOfRange, idx, col, row, len(b.Table))
			}
			q := b.Table[idx]
			px[0], px[1], px[2], px[3] = q.Red, q.Green, q.Blue, q.Reserved
		}
	}
	return out, nil
}

// dibRow maps a top-to-bottom image row to its row in the pixel buffer.
func (b *Bitmap) dibRow(row int) int {
	if b.TopDown {
		return row
	}
	return b.Height - 1 - row
}

// pack555 encodes an RGB triple as a little-endian 5-5-5 word.
func pack555(r, g, b uint8) (lo, hi uint8) {
	r5, g5, b5 := r>>3, g>>3, b>>3
	lo = b5 | g5<<5
	hi = g5>>3 | r5<<2
	return lo, hi
}

// unpack555 expands a 5-5-5 word. Channels come back with the low three
// bits clear.
func unpack555(lo, hi uint8) (r, g, b uint8) {
	b = (lo & 0x1F) << 3
	g = (lo>>5 | (hi&0x03)<<3) << 3
	r = ((hi >> 2) & 0x1F) << 3
	return r, g, b
}
