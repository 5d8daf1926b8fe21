package records

import (
	"fmt"
	"strings"

	"github.com/joshuapare/emfkit/emf"
	"github.com/joshuapare/emfkit/emf/dib"
	"github.com/joshuapare/emfkit/internal/buf"
	"github.com/joshuapare/emfkit/internal/format"
	"github.com/joshuapare/emfkit/internal/textenc"
)

// Body is the decoded form of one record.
type Body interface {
	Type() emf.RecordType
}

// HeaderBody is a decoded EMR_HEADER.
type HeaderBody struct {
	emf.Header
	Description string
}

// EOFBody is a decoded EMR_EOF.
type EOFBody struct {
	Palette []PaletteEntry
}

// CommentBody is a decoded EMR_COMMENT. Data aliases the record.
type CommentBody struct {
	Data []byte
}

// HandleBody is a record whose only field is an object handle.
type HandleBody struct {
	Kind   emf.RecordType
	Handle uint32
}

// BrushBody is a decoded EMR_CREATEBRUSHINDIRECT.
type BrushBody struct {
	Handle uint32
	Brush  LogBrush
}

// ValueBody is a record with a single 32-bit parameter.
type ValueBody struct {
	Kind  emf.RecordType
	Value uint32
}

// PointBody is a record with a single POINTL.
type PointBody struct {
	Kind  emf.RecordType
	Point emf.PointL
}

// BoxBody is a record with a single RECTL.
type BoxBody struct {
	Kind emf.RecordType
	Rect emf.RectL
}

// PathBody is a parameterless record such as EMR_BEGINPATH.
type PathBody struct {
	Kind emf.RecordType
}

// Poly16Body is one of the single-polygon 16-bit point records.
type Poly16Body struct {
	Kind   emf.RecordType
	Bounds emf.RectL
	Points []emf.Point16
}

// StretchDIBitsBody is a decoded EMR_STRETCHDIBITS. The bitmap is converted
// only when Bitmap is called.
type StretchDIBitsBody struct {
	Stretch
	info []byte
	bits []byte
}

// TextOutBody is a decoded EMR_EXTTEXTOUTA or EMR_EXTTEXTOUTW.
type TextOutBody struct {
	Kind   emf.RecordType
	Bounds emf.RectL
	Mode   uint32
	XScale float32
	YScale float32
	Text   Text
}

// SmallTextOutBody is a decoded EMR_SMALLTEXTOUT.
type SmallTextOutBody struct {
	SmallText
}

// Generic is any record this package does not decode.
type Generic struct {
	emf.Record
}

func (HeaderBody) Type() emf.RecordType        { return emf.EMRHeader }
func (EOFBody) Type() emf.RecordType           { return emf.EMREOF }
func (CommentBody) Type() emf.RecordType       { return emf.EMRComment }
func (b HandleBody) Type() emf.RecordType      { return b.Kind }
func (BrushBody) Type() emf.RecordType         { return emf.EMRCreateBrushIndirect }
func (b ValueBody) Type() emf.RecordType       { return b.Kind }
func (b PointBody) Type() emf.RecordType       { return b.Kind }
func (b BoxBody) Type() emf.RecordType         { return b.Kind }
func (b PathBody) Type() emf.RecordType        { return b.Kind }
func (b Poly16Body) Type() emf.RecordType      { return b.Kind }
func (StretchDIBitsBody) Type() emf.RecordType { return emf.EMRStretchDIBits }
func (b TextOutBody) Type() emf.RecordType     { return b.Kind }
func (SmallTextOutBody) Type() emf.RecordType  { return emf.EMRSmallTextOut }
func (g Generic) Type() emf.RecordType         { return g.Record.Type }

// Bitmap converts the embedded BITMAPINFO and pixels.
func (s StretchDIBitsBody) Bitmap() (*dib.Bitmap, error) {
	return dib.FromInfo(s.info, s.bits)
}

// Info returns the raw BITMAPINFO bytes.
func (s StretchDIBitsBody) Info() []byte { return s.info }

// Bits returns the raw pixel bytes.
func (s StretchDIBitsBody) Bits() []byte { return s.bits }

func short(t emf.RecordType, need, have int) error {
	return fmt.Errorf("%w: %s needs %d bytes, has %d", ErrShortRecord, t, need, have)
}

// Decode returns the typed body of rec.
func Decode(rec emf.Record) (Body, error) {
	b := rec.Bytes()
	switch rec.Type {
	case emf.EMRHeader:
		return decodeHeader(b)
	case emf.EMREOF:
		return decodeEOF(b)
	case emf.EMRComment:
		if len(b) < format.CommentFixedSize {
			return nil, short(rec.Type, format.CommentFixedSize, len(b))
		}
		data, ok := buf.Slice(b, format.CommentFixedSize, int(format.ReadU32(b, format.CommentDataLenOffset)))
		if !ok {
			return nil, short(rec.Type, format.CommentFixedSize+int(format.ReadU32(b, format.CommentDataLenOffset)), len(b))
		}
		return CommentBody{Data: data}, nil
	case emf.EMRSelectObject, emf.EMRDeleteObject, emf.EMRSelectPalette:
		if len(b) < format.ObjectRecordSize {
			return nil, short(rec.Type, format.ObjectRecordSize, len(b))
		}
		return HandleBody{Kind: rec.Type, Handle: format.ReadU32(b, format.ObjectHandleOffset)}, nil
	case emf.EMRCreateBrushIndirect:
		if len(b) < 24 {
			return nil, short(rec.Type, 24, len(b))
		}
		return BrushBody{
			Handle: format.ReadU32(b, 8),
			Brush:  LogBrush{Style: format.ReadU32(b, 12), Color: readColor(b, 16), Hatch: format.ReadU32(b, 20)},
		}, nil
	case emf.EMRSetMapMode, emf.EMRSetBkMode, emf.EMRSetPolyFillMode, emf.EMRSetROP2,
		emf.EMRSetStretchBltMode, emf.EMRSetTextAlign, emf.EMRSetMiterLimit, emf.EMRRestoreDC,
		emf.EMRSetTextColor, emf.EMRSetBkColor:
		if len(b) < format.SingleParameterSize {
			return nil, short(rec.Type, format.SingleParameterSize, len(b))
		}
		return ValueBody{Kind: rec.Type, Value: format.ReadU32(b, format.RecordHeaderSize)}, nil
	case emf.EMRMoveToEx, emf.EMRLineTo:
		if len(b) < format.PointRecordSize {
			return nil, short(rec.Type, format.PointRecordSize, len(b))
		}
		return PointBody{Kind: rec.Type, Point: format.ReadPointL(b, format.RecordHeaderSize)}, nil
	case emf.EMRRectangle, emf.EMREllipse, emf.EMRFillPath, emf.EMRStrokePath, emf.EMRStrokeAndFillPath:
		if len(b) < format.RectRecordSize {
			return nil, short(rec.Type, format.RectRecordSize, len(b))
		}
		return BoxBody{Kind: rec.Type, Rect: format.ReadRectL(b, format.RecordHeaderSize)}, nil
	case emf.EMRBeginPath, emf.EMREndPath, emf.EMRCloseFigure, emf.EMRAbortPath,
		emf.EMRFlattenPath, emf.EMRWidenPath, emf.EMRSaveDC, emf.EMRRealizePalette:
		return PathBody{Kind: rec.Type}, nil
	case emf.EMRPolyline16, emf.EMRPolygon16, emf.EMRPolyBezier16, emf.EMRPolyBezierTo16, emf.EMRPolylineTo16:
		return decodePoly16(rec.Type, b)
	case emf.EMRStretchDIBits:
		return decodeStretchDIBits(b)
	case emf.EMRExtTextOutW, emf.EMRExtTextOutA:
		return decodeExtTextOut(rec.Type, b)
	case emf.EMRSmallTextOut:
		return decodeSmallTextOut(b)
	}
	return Generic{Record: rec}, nil
}

func decodeHeader(b []byte) (Body, error) {
	h, err := format.ParseHeader(b)
	if err != nil {
		return nil, err
	}
	body := HeaderBody{Header: h}
	if h.DescriptionLen > 0 && h.DescriptionOff > 0 {
		raw, ok := buf.Slice(b, int(h.DescriptionOff), 2*int(h.DescriptionLen))
		if !ok {
			return nil, short(emf.EMRHeader, int(h.DescriptionOff)+2*int(h.DescriptionLen), len(b))
		}
		s, err := decodeDescription(raw)
		if err != nil {
			return nil, err
		}
		body.Description = s
	}
	return body, nil
}

// decodeDescription keeps the NULs that separate the application and title,
// dropping only the final terminator.
func decodeDescription(raw []byte) (string, error) {
	var parts []string
	for len(raw) >= 2 {
		n := textenc.UTF16Units(raw)
		s, err := textenc.DecodeUTF16(raw[:2*n])
		if err != nil {
			return "", err
		}
		parts = append(parts, s)
		if 2*(n+1) > len(raw) {
			break
		}
		raw = raw[2*(n+1):]
	}
	return strings.Join(parts, "\x00"), nil
}

func decodeEOF(b []byte) (Body, error) {
	if len(b) < format.EOFSize {
		return nil, short(emf.EMREOF, format.EOFSize, len(b))
	}
	n := int(format.ReadU32(b, format.EOFPalEntriesOffset))
	off := int(format.ReadU32(b, format.EOFPalOffsetOffset))
	if n == 0 {
		return EOFBody{}, nil
	}
	raw, ok := buf.Slice(b, off, n*format.PaletteEntrySize)
	if !ok || off+n*format.PaletteEntrySize > len(b)-format.SizeLastFieldWidth {
		return nil, short(emf.EMREOF, off+n*format.PaletteEntrySize+format.SizeLastFieldWidth, len(b))
	}
	pal := make([]PaletteEntry, n)
	for i := range pal {
		e := raw[i*format.PaletteEntrySize:]
		pal[i] = PaletteEntry{Red: e[0], Green: e[1], Blue: e[2], Flags: e[3]}
	}
	return EOFBody{Palette: pal}, nil
}

func decodePoly16(t emf.RecordType, b []byte) (Body, error) {
	if len(b) < format.Poly16PointsOffset {
		return nil, short(t, format.Poly16PointsOffset, len(b))
	}
	n := int(format.ReadU32(b, format.Poly16CountOffset))
	raw, ok := buf.Slice(b, format.Poly16PointsOffset, n*format.Point16Size)
	if !ok {
		return nil, short(t, format.Poly16PointsOffset+n*format.Point16Size, len(b))
	}
	pts := make([]emf.Point16, n)
	for i := range pts {
		pts[i] = format.ReadPoint16(raw, i*format.Point16Size)
	}
	return Poly16Body{Kind: t, Bounds: format.ReadRectL(b, format.RecordHeaderSize), Points: pts}, nil
}

func decodeStretchDIBits(b []byte) (Body, error) {
	if len(b) < format.StretchDIBitsFixedSize {
		return nil, short(emf.EMRStretchDIBits, format.StretchDIBitsFixedSize, len(b))
	}
	s := StretchDIBitsBody{Stretch: Stretch{
		Bounds:  format.ReadRectL(b, format.RecordHeaderSize),
		Dest:    format.ReadPointL(b, format.StretchDIBitsDestOffset),
		Src:     format.ReadPointL(b, format.StretchDIBitsSrcOffset),
		SrcExt:  format.ReadSizeL(b, format.StretchDIBitsSrcExtOffset),
		Usage:   format.ReadU32(b, format.StretchDIBitsUsageOffset),
		Rop:     format.ReadU32(b, format.StretchDIBitsRopOffset),
		DestExt: format.ReadSizeL(b, format.StretchDIBitsDestExtOffset),
	}}
	var ok bool
	offBmi := int(format.ReadU32(b, format.StretchDIBitsOffBmiOffset))
	cbBmi := int(format.ReadU32(b, format.StretchDIBitsCbBmiOffset))
	if s.info, ok = buf.Slice(b, offBmi, cbBmi); !ok {
		return nil, short(emf.EMRStretchDIBits, offBmi+cbBmi, len(b))
	}
	offBits := int(format.ReadU32(b, format.StretchDIBitsOffBitsOffset))
	cbBits := int(format.ReadU32(b, format.StretchDIBitsCbBitsOffset))
	if s.bits, ok = buf.Slice(b, offBits, cbBits); !ok {
		return nil, short(emf.EMRStretchDIBits, offBits+cbBits, len(b))
	}
	return s, nil
}

func decodeString(raw []byte, wide bool) (string, error) {
	if wide {
		return textenc.DecodeUTF16(raw)
	}
	return textenc.DecodeANSI(raw)
}

func decodeExtTextOut(t emf.RecordType, b []byte) (Body, error) {
	const base = format.ExtTextOutTextOffset
	if len(b) < format.ExtTextOutFixedNoRect {
		return nil, short(t, format.ExtTextOutFixedNoRect, len(b))
	}
	body := TextOutBody{
		Kind:   t,
		Bounds: format.ReadRectL(b, format.RecordHeaderSize),
		Mode:   format.ReadU32(b, format.ExtTextOutModeOffset),
		XScale: readF32(b, format.ExtTextOutXScaleOffset),
		YScale: readF32(b, format.ExtTextOutYScaleOffset),
	}
	tx := &body.Text
	tx.Reference = format.ReadPointL(b, base+format.EMRTextRefOffset)
	chars := int(format.ReadU32(b, base+format.EMRTextCharsOffset))
	offString := int(format.ReadU32(b, base+format.EMRTextStringOffset))
	tx.Options = format.ReadU32(b, base+format.EMRTextOptionsOffset)
	dxField := base + format.EMRTextRectOffset
	if tx.Options&ETONoRect == 0 {
		if len(b) < format.ExtTextOutFixedSize {
			return nil, short(t, format.ExtTextOutFixedSize, len(b))
		}
		tx.Rect = format.ReadRectL(b, dxField)
		dxField += format.RectLSize
	}

	wide := t == emf.EMRExtTextOutW
	unit := 1
	if wide {
		unit = 2
	}
	if chars > 0 {
		raw, ok := buf.Slice(b, offString, chars*unit)
		if !ok {
			return nil, short(t, offString+chars*unit, len(b))
		}
		s, err := decodeString(raw, wide)
		if err != nil {
			return nil, err
		}
		tx.String = s
	}
	if offDx := int(format.ReadU32(b, dxField)); offDx > 0 && chars > 0 {
		n := chars
		if tx.Options&ETOPDY != 0 {
			n *= 2
		}
		raw, ok := buf.Slice(b, offDx, 4*n)
		if !ok {
			return nil, short(t, offDx+4*n, len(b))
		}
		tx.Dx = make([]int32, n)
		for i := range tx.Dx {
			tx.Dx[i] = format.ReadI32(raw, 4*i)
		}
	}
	return body, nil
}

func decodeSmallTextOut(b []byte) (Body, error) {
	if len(b) < format.SmallTextOutFixedSize {
		return nil, short(emf.EMRSmallTextOut, format.SmallTextOutFixedSize, len(b))
	}
	st := SmallText{
		Reference: format.ReadPointL(b, format.RecordHeaderSize),
		Options:   format.ReadU32(b, format.SmallTextOutOptsOffset),
		Mode:      format.ReadU32(b, format.SmallTextOutModeOffset),
		XScale:    readF32(b, format.SmallTextOutModeOffset+4),
		YScale:    readF32(b, format.SmallTextOutModeOffset+8),
	}
	text := format.SmallTextOutFixedSize
	if st.Options&ETONoRect == 0 {
		if len(b) < text+format.RectLSize {
			return nil, short(emf.EMRSmallTextOut, text+format.RectLSize, len(b))
		}
		st.Clip = format.ReadRectL(b, text)
		text += format.RectLSize
	}
	chars := int(format.ReadU32(b, format.SmallTextOutCharsOffset))
	wide := st.Options&ETOSmallChars == 0
	unit := 1
	if wide {
		unit = 2
	}
	raw, ok := buf.Slice(b, text, chars*unit)
	if !ok {
		return nil, short(emf.EMRSmallTextOut, text+chars*unit, len(b))
	}
	s, err := decodeString(raw, wide)
	if err != nil {
		return nil, err
	}
	st.String = s
	return SmallTextOutBody{SmallText: st}, nil
}
