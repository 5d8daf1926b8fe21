package dib

import (
	"bytes"
	"encoding/binary"
	"image"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
)

// maskRGBA applies m to the color channels and clears alpha when dropAlpha
// is set, matching what a lossy depth preserves.
func maskRGBA(px []byte, m byte, dropAlpha bool) []byte {
	out := bytes.Clone(px)
	for i := 0; i < len(out); i += 4 {
		out[i] &= m
		out[i+1] &= m
		out[i+2] &= m
		if dropAlpha {
			out[i+3] = 0
		}
	}
	return out
}

func twoTone(w, h int) []byte {
	px := make([]byte, 4*w*h)
	for i := 0; i < len(px); i += 4 {
		v := byte(0xAA)
		if i >= len(px)/2 {
			v = 0x55
		}
		px[i], px[i+1], px[i+2], px[i+3] = v, v, v, v
	}
	return px
}

func TestRoundTrip(t *testing.T) {
	grad10 := Gradient(10, 10, 40)
	grad4 := Gradient(4, 4, 16)
	tests := []struct {
		name    string
		rgba    []byte
		w, h    int
		depth   int
		topDown bool
		want    []byte
		table   int
	}{
		{"32 bit", grad10, 10, 10, 32, false, grad10, 0},
		{"24 bit", grad10, 10, 10, 24, false, maskRGBA(grad10, 0xFF, true), 0},
		{"16 bit", grad10, 10, 10, 16, false, maskRGBA(grad10, 0xF8, true), 0},
		{"8 bit", grad10, 10, 10, 8, true, grad10, 0},
		{"4 bit", grad4, 4, 4, 4, true, grad4, 16},
		{"1 bit", twoTone(4, 4), 4, 4, 1, true, twoTone(4, 4), 2},
		{"32 bit top-down", grad10, 10, 10, 32, true, grad10, 0},
		{"8 bit bottom-up", grad10, 10, 10, 8, false, grad10, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bm, err := FromRGBA(tt.rgba, tt.w, tt.h, 4*tt.w, Options{Depth: tt.depth, TopDown: tt.topDown})
			require.NoError(t, err)
			assert.Len(t, bm.Pixels, RowStride(tt.w, tt.depth)*tt.h)
			if tt.table > 0 {
				assert.Len(t, bm.Table, tt.table)
			}
			if !Indexed(tt.depth) {
				assert.Empty(t, bm.Table)
			}

			got, err := ToRGBA(bm.Pixels, bm.Table, tt.w, tt.h, tt.depth, tt.topDown)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRowStride(t *testing.T) {
	cases := []struct{ w, depth, want int }{
		{10, 32, 40},
		{10, 24, 32},
		{10, 16, 20},
		{10, 8, 12},
		{4, 4, 4},
		{9, 4, 8},
		{4, 1, 4},
		{33, 1, 8},
		{1, 24, 4},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, RowStride(c.w, c.depth), "width %d depth %d", c.w, c.depth)
	}
}

func TestPackingIsMSBFirst(t *testing.T) {
	x := []byte{1, 2, 3, 4}
	y := []byte{9, 9, 9, 9}

	row := slices.Concat(x, y, y, y, y, y, y, y)
	bm, err := FromRGBA(row, 8, 1, 32, Options{Depth: 1})
	require.NoError(t, err)
	assert.Equal(t, byte(0x7F), bm.Pixels[0])

	bm, err = FromRGBA(slices.Concat(x, y), 2, 1, 8, Options{Depth: 4})
	require.NoError(t, err)
	assert.Equal(t, byte(0x01), bm.Pixels[0])
}

func TestPack555(t *testing.T) {
	bm, err := FromRGBA([]byte{0xFF, 0, 0, 0, 0, 0xFF, 0, 0, 0, 0, 0xFF, 0}, 3, 1, 12, Options{Depth: 16})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0x7C, 0xE0, 0x03, 0x1F, 0x00, 0, 0}, bm.Pixels)
}

func TestRowOrder(t *testing.T) {
	red := []byte{0xFF, 0, 0, 0}
	blue := []byte{0, 0, 0xFF, 0}
	rgba := slices.Concat(red, blue)

	bottomUp, err := FromRGBA(rgba, 1, 2, 4, Options{Depth: 24})
	require.NoError(t, err)
	assert.Equal(t, []byte{0xFF, 0, 0, 0, 0, 0, 0xFF, 0}, bottomUp.Pixels)
	assert.Equal(t, int32(2), bottomUp.SignedHeight())

	topDown, err := FromRGBA(rgba, 1, 2, 4, Options{Depth: 24, TopDown: true})
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 0, 0xFF, 0, 0xFF, 0, 0, 0}, topDown.Pixels)
	assert.Equal(t, int32(-2), topDown.SignedHeight())
}

func TestPaletteSampling(t *testing.T) {
	grad := Gradient(10, 10, 40)
	bm, err := FromRGBA(grad, 10, 10, 40, Options{Depth: 4})
	require.NoError(t, err)
	require.Len(t, bm.Table, 16)

	got, err := bm.RGBA()
	require.NoError(t, err)
	inTable := make(map[RGBQuad]bool)
	for _, q := range bm.Table {
		inTable[q] = true
	}
	for i := 0; i < len(got); i += 4 {
		q := RGBQuad{Red: got[i], Green: got[i+1], Blue: got[i+2], Reserved: got[i+3]}
		assert.True(t, inTable[q], "pixel %d not from table", i/4)
	}
	// The darkest and brightest colors survive sampling.
	assert.Equal(t, grad[360:364], got[360:364])
	assert.Equal(t, grad[36:40], got[36:40])
}

func TestSuppliedTableUsesNearest(t *testing.T) {
	table := []RGBQuad{{}, {Red: 0xFF, Green: 0xFF, Blue: 0xFF, Reserved: 0xFF}}
	rgba := []byte{10, 10, 10, 10, 250, 250, 250, 250}
	bm, err := FromRGBA(rgba, 2, 1, 8, Options{Depth: 1, Table: table})
	require.NoError(t, err)
	assert.Equal(t, table, bm.Table)
	assert.Equal(t, byte(0x40), bm.Pixels[0])
}

func TestPositionPalette(t *testing.T) {
	assert.Equal(t, 0, PositionIndex(0, 0, 10, 10, 8))
	assert.Equal(t, 98, PositionIndex(9, 9, 10, 10, 8))
	assert.Equal(t, 0, PositionIndex(1, 3, 4, 4, 1))
	assert.Equal(t, 1, PositionIndex(2, 0, 4, 4, 1))
	assert.Equal(t, 0, PositionIndex(0, 0, 1, 1, 8))

	px := twoTone(4, 4)
	bm, err := FromRGBA(px, 4, 4, 16, Options{Depth: 1, Palette: PalettePosition})
	require.NoError(t, err)
	require.Len(t, bm.Table, 2)
	assert.Equal(t, RGBQuad{0xAA, 0xAA, 0xAA, 0xAA}, bm.Table[0])
	assert.Equal(t, RGBQuad{0x55, 0x55, 0x55, 0x55}, bm.Table[1])

	got, err := bm.RGBA()
	require.NoError(t, err)
	assert.Equal(t, px, got)
}

func TestConversionErrors(t *testing.T) {
	grad := Gradient(2, 2, 8)

	_, err := FromRGBA(grad, 0, 2, 8, Options{Depth: 32})
	assert.ErrorIs(t, err, ErrInvalidDimensions)
	_, err = FromRGBA(grad, 2, 2, 4, Options{Depth: 32})
	assert.ErrorIs(t, err, ErrInvalidDimensions)
	_, err = FromRGBA(grad, 2, 2, 8, Options{Depth: 2})
	assert.ErrorIs(t, err, ErrUnsupportedDepth)
	_, err = FromRGBA(grad[:12], 2, 2, 8, Options{Depth: 32})
	assert.ErrorIs(t, err, ErrShortBuffer)
	_, err = FromRGBA(grad, 2, 2, 8, Options{Depth: 24, Table: []RGBQuad{{}}})
	assert.ErrorIs(t, err, ErrColorTableNotAllowed)
	_, err = FromRGBA(grad, 2, 2, 8, Options{Depth: 1, Table: make([]RGBQuad, 3)})
	assert.ErrorIs(t, err, ErrTableTooLarge)

	_, err = ToRGBA(make([]byte, 8), nil, 2, 2, 8, false)
	assert.ErrorIs(t, err, ErrColorTableRequired)
	_, err = ToRGBA(make([]byte, 16), []RGBQuad{{}}, 2, 2, 32, false)
	assert.ErrorIs(t, err, ErrColorTableNotAllowed)
	_, err = ToRGBA(make([]byte, 4), nil, 2, 2, 32, false)
	assert.ErrorIs(t, err, ErrShortBuffer)
	_, err = ToRGBA([]byte{0, 5, 0, 0, 0, 0, 0, 0}, []RGBQuad{{}}, 2, 2, 8, false)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestGradient(t *testing.T) {
	g := Gradient(10, 10, 40)
	require.Len(t, g, 400)
	assert.Equal(t, []byte{255, 0, 0, 0}, g[0:4])     // top left
	assert.Equal(t, []byte{0, 255, 0, 0}, g[36:40])   // top right
	assert.Equal(t, []byte{0, 0, 255, 0}, g[396:400]) // bottom right
	assert.Equal(t, []byte{0, 0, 0, 255}, g[360:364]) // bottom left
	assert.Nil(t, Gradient(0, 10, 40))
	assert.Len(t, Gradient(1, 1, 4), 4)
}

func TestInfoRoundTrip(t *testing.T) {
	bm, err := FromRGBA(Gradient(4, 4, 16), 4, 4, 16, Options{Depth: 4, TopDown: true})
	require.NoError(t, err)

	info := bm.Info()
	require.Len(t, info, 40+4*len(bm.Table))
	h, err := ParseInfoHeader(info)
	require.NoError(t, err)
	assert.Equal(t, uint32(40), h.Size)
	assert.Equal(t, int32(4), h.Width)
	assert.Equal(t, int32(-4), h.Height)
	assert.Equal(t, uint16(1), h.Planes)
	assert.Equal(t, uint16(4), h.BitCount)
	assert.Equal(t, uint32(len(bm.Pixels)), h.SizeImage)
	assert.Equal(t, uint32(len(bm.Table)), h.ClrUsed)
	assert.Equal(t, len(bm.Table), h.TableEntries())

	back, err := FromInfo(info, bm.Pixels)
	require.NoError(t, err)
	assert.Equal(t, bm, back)
}

func TestFromInfoCoreHeader(t *testing.T) {
	info := make([]byte, 12+2*3)
	binary.LittleEndian.PutUint32(info[0:], 12)
	binary.LittleEndian.PutUint16(info[4:], 8)
	binary.LittleEndian.PutUint16(info[6:], 1)
	binary.LittleEndian.PutUint16(info[8:], 1)
	binary.LittleEndian.PutUint16(info[10:], 1)
	copy(info[12:], []byte{0, 0, 0, 0xFF, 0xFF, 0xFF})

	bm, err := FromInfo(info, []byte{0x0F, 0, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, []RGBQuad{{}, {Blue: 0xFF, Green: 0xFF, Red: 0xFF}}, bm.Table)

	px, err := bm.RGBA()
	require.NoError(t, err)
	assert.Equal(t, byte(0), px[0])
	assert.Equal(t, byte(0xFF), px[4*4])
}

func TestFromInfoRejects(t *testing.T) {
	bm, err := FromRGBA(Gradient(2, 2, 8), 2, 2, 8, Options{Depth: 24})
	require.NoError(t, err)
	info := bm.Info()

	_, err = ParseInfoHeader(info[:20])
	require.Error(t, err)

	binary.LittleEndian.PutUint32(info[0x10:], BIRLE8)
	_, err = FromInfo(info, bm.Pixels)
	assert.ErrorIs(t, err, ErrUnsupportedCompression)
}

func TestHostileDimensions(t *testing.T) {
	for _, depth := range []uint16{1, 8, 32} {
		info := make([]byte, 40)
		InfoHeader{
			Size:     40,
			Width:    0x7FFFFFFF,
			Height:   -0x80000000,
			Planes:   1,
			BitCount: depth,
		}.Put(info)
		if depth <= 8 {
			info = append(info, 0, 0, 0, 0)
		}
		_, err := FromInfo(info, make([]byte, 8))
		assert.ErrorIs(t, err, ErrInvalidDimensions, "depth %d", depth)
	}

	// A Bitmap built by hand skips FromInfo and must still fail cleanly.
	bm := &Bitmap{Width: 0x7FFFFFFF, Height: 0x80000000, Depth: 32, Pixels: make([]byte, 8)}
	_, err := bm.RGBA()
	assert.ErrorIs(t, err, ErrInvalidDimensions)

	bm = &Bitmap{Width: 1 << 20, Height: 1 << 20, Depth: 1, Pixels: make([]byte, 8), Table: []RGBQuad{{}, {}}}
	_, err = bm.RGBA()
	assert.ErrorIs(t, err, ErrShortBuffer)

	_, err = FromRGBA(make([]byte, 16), 1, 0x7FFFFFFF, 1<<40, Options{Depth: 32})
	assert.ErrorIs(t, err, ErrInvalidDimensions)
}

// bmpFile wraps a bitmap in the 14-byte BITMAPFILEHEADER.
func bmpFile(bm *Bitmap) []byte {
	info := bm.Info()
	off := 14 + len(info)
	out := make([]byte, 14, off+len(bm.Pixels))
	out[0], out[1] = 'B', 'M'
	binary.LittleEndian.PutUint32(out[2:], uint32(off+len(bm.Pixels)))
	binary.LittleEndian.PutUint32(out[10:], uint32(off))
	out = append(out, info...)
	return append(out, bm.Pixels...)
}

func TestMatchesStandardDecoder(t *testing.T) {
	grad := Gradient(10, 10, 40)
	for _, opts := range []Options{
		{Depth: 24},
		{Depth: 24, TopDown: true},
		{Depth: 8},
	} {
		bm, err := FromRGBA(grad, 10, 10, 40, opts)
		require.NoError(t, err)

		img, err := bmp.Decode(bytes.NewReader(bmpFile(bm)))
		require.NoError(t, err, "depth %d", opts.Depth)
		require.Equal(t, image.Rect(0, 0, 10, 10), img.Bounds())
		for y := range 10 {
			for x := range 10 {
				r, g, b, _ := img.At(x, y).RGBA()
				px := grad[y*40+x*4:]
				assert.Equal(t, [3]uint32{uint32(px[0]), uint32(px[1]), uint32(px[2])},
					[3]uint32{r >> 8, g >> 8, b >> 8}, "depth %d pixel (%d,%d)", opts.Depth, x, y)
			}
		}
	}
}

func TestWriteAndDecodeBMP(t *testing.T) {
	bm, err := FromRGBA(Gradient(10, 10, 40), 10, 10, 40, Options{Depth: 24})
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, bm.WriteBMP(&out))

	back, err := DecodeBMP(&out, Options{Depth: 24})
	require.NoError(t, err)
	assert.Equal(t, bm.Pixels, back.Pixels)
}

func TestImageIsOpaqueWithoutAlpha(t *testing.T) {
	bm, err := FromRGBA(Gradient(3, 3, 12), 3, 3, 12, Options{Depth: 16})
	require.NoError(t, err)
	img, err := bm.Image()
	require.NoError(t, err)
	assert.True(t, img.Opaque())
}
