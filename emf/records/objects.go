package records

import (
	"github.com/joshuapare/emfkit/emf"
	"github.com/joshuapare/emfkit/internal/format"
	"github.com/joshuapare/emfkit/internal/textenc"
)

// Handle returns a record holding only an object handle: EMR_SELECTOBJECT,
// EMR_DELETEOBJECT and friends.
func Handle(t emf.RecordType, h uint32) []byte {
	b := alloc(t, format.ObjectRecordSize)
	format.PutU32(b, format.ObjectHandleOffset, h)
	return b
}

// SelectObject builds an EMR_SELECTOBJECT. Stock objects are selected by
// passing their constant, which carries the high bit.
func SelectObject(h uint32) []byte { return Handle(emf.EMRSelectObject, h) }

// DeleteObject builds an EMR_DELETEOBJECT.
func DeleteObject(h uint32) []byte { return Handle(emf.EMRDeleteObject, h) }

// LogBrush is a LOGBRUSH.
type LogBrush struct {
	Style uint32
	Color ColorRef
	Hatch uint32
}

// SolidBrush returns a solid LogBrush of color c.
func SolidBrush(c ColorRef) LogBrush { return LogBrush{Style: BSSolid, Color: c} }

// CreateBrushIndirect builds an EMR_CREATEBRUSHINDIRECT defining handle h.
func CreateBrushIndirect(h uint32, lb LogBrush) []byte {
	b := alloc(emf.EMRCreateBrushIndirect, 24)
	format.PutU32(b, 8, h)
	format.PutU32(b, 12, lb.Style)
	putColor(b, 16, lb.Color)
	format.PutU32(b, 20, lb.Hatch)
	return b
}

// ExtLogPen is an EXTLOGPEN without a pattern bitmap.
type ExtLogPen struct {
	Style      uint32
	Width      uint32
	BrushStyle uint32
	Color      ColorRef
	Hatch      uint32
	StyleEntry []uint32 // dash lengths for PSUserStyle
}

// ExtCreatePen builds an EMR_EXTCREATEPEN defining handle h. The bitmap
// offset and size fields are zero.
//
//	Offset  Field
//	0x08    ihPen
//	0x0C    offBmi, cbBmi, offBits, cbBits
//	0x1C    elpPenStyle, elpWidth, elpBrushStyle
//	0x28    elpColor
//	0x2C    elpHatch, elpNumEntries
//	0x34    elpStyleEntry[]
func ExtCreatePen(h uint32, pen ExtLogPen) []byte {
	b := alloc(emf.EMRExtCreatePen, 0x34+4*len(pen.StyleEntry))
	format.PutU32(b, 0x08, h)
	format.PutU32(b, 0x1C, pen.Style)
	format.PutU32(b, 0x20, pen.Width)
	format.PutU32(b, 0x24, pen.BrushStyle)
	putColor(b, 0x28, pen.Color)
	format.PutU32(b, 0x2C, pen.Hatch)
	format.PutU32(b, 0x30, uint32(len(pen.StyleEntry)))
	for i, v := range pen.StyleEntry {
		format.PutU32(b, 0x34+4*i, v)
	}
	return b
}

// LogFont is a LOGFONTW.
type LogFont struct {
	Height         int32
	Width          int32
	Escapement     int32 // tenths of a degree
	Orientation    int32 // tenths of a degree
	Weight         int32
	Italic         uint8
	Underline      uint8
	StrikeOut      uint8
	CharSet        uint8
	OutPrecision   uint8
	ClipPrecision  uint8
	Quality        uint8
	PitchAndFamily uint8
	FaceName       string // at most 31 UTF-16 units are kept
}

// FontSpec adds the LOGFONT_PANOSE extension to a LogFont. A zero Panose
// is written as all PanoseNoFit.
type FontSpec struct {
	LogFont
	FullName string
	Style    string
	Panose   [format.PanoseSize]uint8
}

// putFixedUTF16 writes s into a NUL padded field of n code units.
func putFixedUTF16(b []byte, off, n int, s string) error {
	u, err := textenc.EncodeUTF16(s)
	if err != nil {
		return err
	}
	if len(u) > 2*(n-1) {
		u = u[:2*(n-1)]
	}
	copy(b[off:off+2*n], u)
	return nil
}

func putLogFont(b []byte, off int, lf LogFont) error {
	format.PutI32(b, off, lf.Height)
	format.PutI32(b, off+4, lf.Width)
	format.PutI32(b, off+8, lf.Escapement)
	format.PutI32(b, off+12, lf.Orientation)
	format.PutI32(b, off+16, lf.Weight)
	b[off+20] = lf.Italic
	b[off+21] = lf.Underline
	b[off+22] = lf.StrikeOut
	b[off+23] = lf.CharSet
	b[off+24] = lf.OutPrecision
	b[off+25] = lf.ClipPrecision
	b[off+26] = lf.Quality
	b[off+27] = lf.PitchAndFamily
	return putFixedUTF16(b, off+28, format.LogFontFaceNameLen, lf.FaceName)
}

func readLogFont(b []byte, off int) (LogFont, error) {
	face, err := textenc.DecodeUTF16(b[off+28 : off+format.LogFontSize])
	if err != nil {
		return LogFont{}, err
	}
	return LogFont{
		Height:         format.ReadI32(b, off),
		Width:          format.ReadI32(b, off+4),
		Escapement:     format.ReadI32(b, off+8),
		Orientation:    format.ReadI32(b, off+12),
		Weight:         format.ReadI32(b, off+16),
		Italic:         b[off+20],
		Underline:      b[off+21],
		StrikeOut:      b[off+22],
		CharSet:        b[off+23],
		OutPrecision:   b[off+24],
		ClipPrecision:  b[off+25],
		Quality:        b[off+26],
		PitchAndFamily: b[off+27],
		FaceName:       face,
	}, nil
}

// ExtCreateFontIndirectW builds an EMR_EXTCREATEFONTINDIRECTW carrying a
// LOGFONT_PANOSE and defining handle h.
//
//	Offset  Field
//	0x0C    LOGFONT (92 bytes)
//	0x68    elfFullName[64]
//	0xE8    elfStyle[32]
//	0x128   elfVersion, elfStyleSize, elfMatch, elfReserved
//	0x138   elfVendorId[4], elfCulture
//	0x140   elfPanose[10], 2 bytes padding
func ExtCreateFontIndirectW(h uint32, spec FontSpec) ([]byte, error) {
	const (
		lfOff    = format.ObjectHandleOffset + 4
		fullOff  = lfOff + format.LogFontSize
		styleOff = fullOff + 2*format.LogFontFullNameLen
		tail     = styleOff + 2*format.LogFontStyleLen
	)
	b := alloc(emf.EMRExtCreateFontIndirectW, format.ExtCreateFontPanose)
	format.PutU32(b, format.ObjectHandleOffset, h)
	if err := putLogFont(b, lfOff, spec.LogFont); err != nil {
		return nil, err
	}
	if err := putFixedUTF16(b, fullOff, format.LogFontFullNameLen, spec.FullName); err != nil {
		return nil, err
	}
	if err := putFixedUTF16(b, styleOff, format.LogFontStyleLen, spec.Style); err != nil {
		return nil, err
	}
	panose := spec.Panose
	if panose == ([format.PanoseSize]uint8{}) {
		for i := range panose {
			panose[i] = PanoseNoFit
		}
	}
	copy(b[tail+24:], panose[:])
	return b, nil
}

// ExtCreateFontLogFont builds an EMR_EXTCREATEFONTINDIRECTW carrying only a
// LOGFONT.
func ExtCreateFontLogFont(h uint32, lf LogFont) ([]byte, error) {
	b := alloc(emf.EMRExtCreateFontIndirectW, format.ExtCreateFontBaseSize)
	format.PutU32(b, format.ObjectHandleOffset, h)
	if err := putLogFont(b, format.ObjectHandleOffset+4, lf); err != nil {
		return nil, err
	}
	return b, nil
}
