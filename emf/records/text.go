package records

import (
	"fmt"
	"math"

	"github.com/joshuapare/emfkit/emf"
	"github.com/joshuapare/emfkit/internal/format"
	"github.com/joshuapare/emfkit/internal/textenc"
)

// Text is the EMRTEXT carried by EMR_EXTTEXTOUTA/W.
type Text struct {
	Reference emf.PointL
	String    string
	Options   uint32    // ETO flags; ETONoRect drops Rect from the record
	Rect      emf.RectL // clipping or opaquing rectangle
	// Dx holds one advance per character, or two (x then y) with ETOPDY.
	// Nil writes no spacing array.
	Dx []int32
}

// Advances returns n equal advances for a font of the given height and
// weight, an estimate for callers that do not measure glyphs.
func Advances(height, weight int32, n int) []int32 {
	if weight <= 0 {
		weight = FWNormal
	}
	h := math.Abs(float64(height))
	w := int32(math.Round(h * 0.6 * (0.00024*float64(weight) + 0.904)))
	dx := make([]int32, n)
	for i := range dx {
		dx[i] = w
	}
	return dx
}

// encodeText returns the stored string and its length in characters.
func encodeText(s string, wide bool) ([]byte, int, error) {
	if wide {
		u, err := textenc.EncodeUTF16(s)
		return u, len(u) / 2, err
	}
	a, err := textenc.EncodeANSI(s)
	return a, len(a), err
}

func checkDx(dx []int32, chars int, opts uint32) error {
	if dx == nil {
		return nil
	}
	want := chars
	if opts&ETOPDY != 0 {
		want *= 2
	}
	if len(dx) != want {
		return fmt.Errorf("%w: %d entries for %d characters", ErrDxLength, len(dx), chars)
	}
	return nil
}

// ExtTextOutW builds an EMR_EXTTEXTOUTW with the text stored as UTF-16.
func ExtTextOutW(bounds emf.RectL, mode uint32, xScale, yScale float32, t Text) ([]byte, error) {
	return extTextOut(emf.EMRExtTextOutW, true, bounds, mode, xScale, yScale, t)
}

// ExtTextOutA builds an EMR_EXTTEXTOUTA with the text stored as
// Windows-1252 bytes.
func ExtTextOutA(bounds emf.RectL, mode uint32, xScale, yScale float32, t Text) ([]byte, error) {
	return extTextOut(emf.EMRExtTextOutA, false, bounds, mode, xScale, yScale, t)
}

func extTextOut(typ emf.RecordType, wide bool, bounds emf.RectL, mode uint32, xScale, yScale float32, t Text) ([]byte, error) {
	str, chars, err := encodeText(t.String, wide)
	if err != nil {
		return nil, err
	}
	if err := checkDx(t.Dx, chars, t.Options); err != nil {
		return nil, err
	}
	const base = format.ExtTextOutTextOffset
	fixed := format.ExtTextOutFixedSize
	if t.Options&ETONoRect != 0 {
		fixed = format.ExtTextOutFixedNoRect
	}
	offString := fixed
	offDx := offString + format.Align4(len(str))
	b := alloc(typ, offDx+4*len(t.Dx))

	format.PutRectL(b, format.RecordHeaderSize, bounds)
	format.PutU32(b, format.ExtTextOutModeOffset, mode)
	putF32(b, format.ExtTextOutXScaleOffset, xScale)
	putF32(b, format.ExtTextOutYScaleOffset, yScale)

	format.PutPointL(b, base+format.EMRTextRefOffset, t.Reference)
	format.PutU32(b, base+format.EMRTextCharsOffset, uint32(chars))
	format.PutU32(b, base+format.EMRTextStringOffset, uint32(offString))
	format.PutU32(b, base+format.EMRTextOptionsOffset, t.Options)
	dxField := base + format.EMRTextRectOffset
	if t.Options&ETONoRect == 0 {
		format.PutRectL(b, dxField, t.Rect)
		dxField += format.RectLSize
	}
	if len(t.Dx) > 0 {
		format.PutU32(b, dxField, uint32(offDx))
		for i, v := range t.Dx {
			format.PutI32(b, offDx+4*i, v)
		}
	}
	copy(b[offString:], str)
	return b, nil
}

// SmallText is the body of EMR_SMALLTEXTOUT.
type SmallText struct {
	Reference emf.PointL
	String    string
	// Options takes ETO flags. ETOSmallChars stores one byte per character
	// (Windows-1252); otherwise UTF-16. ETONoRect omits Clip.
	Options uint32
	Mode    uint32
	XScale  float32
	YScale  float32
	Clip    emf.RectL
}

// SmallTextOut builds an EMR_SMALLTEXTOUT.
//
//	Offset  Field
//	0x08    x, y
//	0x10    cChars
//	0x14    fuOptions
//	0x18    iGraphicsMode, exScale, eyScale
//	0x24    rclClip (absent with ETO_NO_RECT)
//	...     text
func SmallTextOut(t SmallText) ([]byte, error) {
	str, chars, err := encodeText(t.String, t.Options&ETOSmallChars == 0)
	if err != nil {
		return nil, err
	}
	text := format.SmallTextOutFixedSize
	if t.Options&ETONoRect == 0 {
		text += format.RectLSize
	}
	b := alloc(emf.EMRSmallTextOut, text+len(str))
	format.PutPointL(b, format.RecordHeaderSize, t.Reference)
	format.PutU32(b, format.SmallTextOutCharsOffset, uint32(chars))
	format.PutU32(b, format.SmallTextOutOptsOffset, t.Options)
	format.PutU32(b, format.SmallTextOutModeOffset, t.Mode)
	putF32(b, format.SmallTextOutModeOffset+4, t.XScale)
	putF32(b, format.SmallTextOutModeOffset+8, t.YScale)
	if t.Options&ETONoRect == 0 {
		format.PutRectL(b, format.SmallTextOutFixedSize, t.Clip)
	}
	copy(b[text:], str)
	return b, nil
}
