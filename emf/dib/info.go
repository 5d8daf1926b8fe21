package dib

import (
	"fmt"

	"github.com/joshuapare/emfkit/internal/format"
)

// Compression values (biCompression). Only BIRGB pixels can be converted.
const (
	BIRGB       = 0
	BIRLE8      = 1
	BIRLE4      = 2
	BIBitfields = 3
	BIJPEG      = 4
	BIPNG       = 5
)

// DefaultPelsPerMeter is 1200 DPI.
const DefaultPelsPerMeter = 47244

// InfoHeader is a BITMAPINFOHEADER.
//
//	Offset  Size  Field
//	0x00    4     biSize
//	0x04    4     biWidth
//	0x08    4     biHeight (negative for top-down)
//	0x0C    2     biPlanes
//	0x0E    2     biBitCount
//	0x10    4     biCompression
//	0x14    4     biSizeImage
//	0x18    4     biXPelsPerMeter
//	0x1C    4     biYPelsPerMeter
//	0x20    4     biClrUsed
//	0x24    4     biClrImportant
type InfoHeader struct {
	Size          uint32
	Width         int32
	Height        int32
	Planes        uint16
	BitCount      uint16
	Compression   uint32
	SizeImage     uint32
	XPelsPerMeter int32
	YPelsPerMeter int32
	ClrUsed       uint32
	ClrImportant  uint32
}

// Header returns the info header describing b.
func (b *Bitmap) Header() InfoHeader {
	return InfoHeader{
		Size:          format.BitmapInfoHeaderSize,
		Width:         int32(b.Width),
		Height:        b.SignedHeight(),
		Planes:        1,
		BitCount:      uint16(b.Depth),
		Compression:   BIRGB,
		SizeImage:     uint32(len(b.Pixels)),
		XPelsPerMeter: DefaultPelsPerMeter,
		YPelsPerMeter: DefaultPelsPerMeter,
		ClrUsed:       uint32(len(b.Table)),
	}
}

// Put writes h into the first 40 bytes of dst.
func (h InfoHeader) Put(dst []byte) {
	format.PutU32(dst, 0x00, h.Size)
	format.PutI32(dst, 0x04, h.Width)
	format.PutI32(dst, 0x08, h.Height)
	format.PutU16(dst, 0x0C, h.Planes)
	format.PutU16(dst, 0x0E, h.BitCount)
	format.PutU32(dst, 0x10, h.Compression)
	format.PutU32(dst, 0x14, h.SizeImage)
	format.PutI32(dst, 0x18, h.XPelsPerMeter)
	format.PutI32(dst, 0x1C, h.YPelsPerMeter)
	format.PutU32(dst, 0x20, h.ClrUsed)
	format.PutU32(dst, 0x24, h.ClrImportant)
}

// Info returns the BITMAPINFO bytes for b: header then color table.
func (b *Bitmap) Info() []byte {
	out := make([]byte, format.BitmapInfoHeaderSize+format.RGBQuadSize*len(b.Table))
	b.Header().Put(out)
	for i, q := range b.Table {
		e := out[format.BitmapInfoHeaderSize+format.RGBQuadSize*i:]
		e[0], e[1], e[2], e[3] = q.Blue, q.Green, q.Red, q.Reserved
	}
	return out
}

// ParseInfoHeader decodes a BITMAPINFOHEADER or the 12-byte
// BITMAPCOREHEADER. Core headers come back with Size 12 and the fields the
// core form lacks zeroed.
func ParseInfoHeader(b []byte) (InfoHeader, error) {
	if len(b) < 4 {
		return InfoHeader{}, fmt.Errorf("%w: bitmap header", format.ErrTruncated)
	}
	size := format.ReadU32(b, 0)
	switch {
	case size == format.BitmapCoreHeaderSize && len(b) >= format.BitmapCoreHeaderSize:
		return InfoHeader{
			Size:     size,
			Width:    int32(format.ReadU16(b, 4)),
			Height:   int32(format.ReadI16(b, 6)),
			Planes:   format.ReadU16(b, 8),
			BitCount: format.ReadU16(b, 10),
		}, nil
	case size >= format.BitmapInfoHeaderSize && len(b) >= format.BitmapInfoHeaderSize:
		return InfoHeader{
			Size:          size,
			Width:         format.ReadI32(b, 0x04),
			Height:        format.ReadI32(b, 0x08),
			Planes:        format.ReadU16(b, 0x0C),
			BitCount:      format.ReadU16(b, 0x0E),
			Compression:   format.ReadU32(b, 0x10),
			SizeImage:     format.ReadU32(b, 0x14),
			XPelsPerMeter: format.ReadI32(b, 0x18),
			YPelsPerMeter: format.ReadI32(b, 0x1C),
			ClrUsed:       format.ReadU32(b, 0x20),
			ClrImportant:  format.ReadU32(b, 0x24),
		}, nil
	}
	return InfoHeader{}, fmt.Errorf("%w: bitmap header size %d with %d bytes", format.ErrTruncated, size, len(b))
}

// TableEntries returns how many color table entries follow the header.
func (h InfoHeader) TableEntries() int {
	switch {
	case h.BitCount > 8:
		if h.Compression == BIBitfields {
			return 3
		}
		return int(h.ClrUsed)
	case h.ClrUsed != 0:
		return int(h.ClrUsed)
	default:
		return 1 << h.BitCount
	}
}

// FromInfo builds a Bitmap from BITMAPINFO bytes and the pixel bits, as
// found in raster records. A table shorter than the header claims is
// truncated to the bytes present; direct-color tables are ignored.
func FromInfo(info, bits []byte) (*Bitmap, error) {
	h, err := ParseInfoHeader(info)
	if err != nil {
		return nil, err
	}
	if h.Compression != BIRGB {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedCompression, h.Compression)
	}
	depth := int(h.BitCount)
	if !ValidDepth(depth) {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedDepth, depth)
	}
	bm := &Bitmap{Width: int(h.Width), Height: int(h.Height), Depth: depth, Pixels: bits}
	if bm.Height < 0 {
		bm.Height = -bm.Height
		bm.TopDown = true
	}
	if _, err := sizes(bm.Width, bm.Height, depth); err != nil {
		return nil, fmt.Errorf("%w (biWidth %d, biHeight %d)", err, h.Width, h.Height)
	}
	if Indexed(depth) {
		entry := format.RGBQuadSize
		if h.Size == format.BitmapCoreHeaderSize {
			entry = 3
		}
		n := min(h.TableEntries(), 1<<depth)
		avail := (len(info) - int(h.Size)) / entry
		n = max(min(n, avail), 0)
		bm.Table = make([]RGBQuad, n)
		for i := range n {
			e := info[int(h.Size)+entry*i:]
			bm.Table[i] = RGBQuad{Blue: e[0], Green: e[1], Red: e[2]}
			if entry == format.RGBQuadSize {
				bm.Table[i].Reserved = e[3]
			}
		}
	}
	return bm, nil
}
