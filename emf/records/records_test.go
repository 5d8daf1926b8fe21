package records

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/emfkit/emf"
	"github.com/joshuapare/emfkit/emf/dib"
	"github.com/joshuapare/emfkit/emf/endian"
	"github.com/joshuapare/emfkit/internal/format"
)

func decode(t *testing.T, b []byte) Body {
	t.Helper()
	rec, err := emf.NewRecord(b)
	require.NoError(t, err)
	body, err := Decode(rec)
	require.NoError(t, err)
	return body
}

func mustBytes(t *testing.T) func([]byte, error) []byte {
	return func(b []byte, err error) []byte {
		t.Helper()
		require.NoError(t, err)
		return b
	}
}

// sampleRecords returns one of every record this package builds, header
// first and EOF last.
func sampleRecords(t *testing.T) [][]byte {
	must := mustBytes(t)
	bounds, frame := DrawingSize(297, 210, DotsPerMM(1200))
	device, mm := DeviceSize(216, 279, DotsPerMM(1200))

	bm, err := dib.FromRGBA(dib.Gradient(10, 10, 40), 10, 10, 40, dib.Options{Depth: 8})
	require.NoError(t, err)

	pts := Points16(10, 10, 200, 40, 90, 300)
	return [][]byte{
		must(Header(HeaderSpec{
			Bounds: bounds, Frame: frame, Device: device, Millimeters: mm,
			Description: Description("Test EMF", "produced by emfkit"),
		})),
		TextComment("First comment"),
		Comment([]byte{1, 2, 3}),
		SetMapMode(MMText),
		SetBkMode(Transparent),
		SetMiterLimit(8),
		SetPolyFillMode(Winding),
		SetStretchBltMode(ColorOnColor),
		SetTextAlign(TABaseline | TACenter),
		SetROP2(R2CopyPen),
		SetTextColor(RGB(255, 0, 0)),
		SetBkColor(RGB(0, 0, 0)),
		CreateBrushIndirect(1, SolidBrush(RGB(196, 127, 255))),
		SelectObject(1),
		ExtCreatePen(2, ExtLogPen{Style: PSSolid | PSEndCapSquare | PSJoinMiter | PSGeometric, Width: 50, Color: RGB(127, 255, 196)}),
		ExtCreatePen(3, ExtLogPen{Style: PSUserStyle, Width: 1, StyleEntry: []uint32{10, 5, 2, 5}}),
		SelectObject(2),
		must(ExtCreateFontIndirectW(4, FontSpec{
			LogFont:  LogFont{Height: -30, Weight: FWNormal, FaceName: "Courier New"},
			FullName: "Courier New",
			Style:    "Normal",
		})),
		must(ExtCreateFontLogFont(5, LogFont{Height: -12, FaceName: "Arial"})),
		SaveDC(),
		BeginPath(),
		MoveToEx(100, 100),
		LineTo(200, 100),
		LineTo(200, 200),
		CloseFigure(),
		EndPath(),
		StrokeAndFillPath(emf.RectL{Right: 300, Bottom: 300}),
		Rectangle(emf.RectL{Left: 10, Top: 10, Right: 50, Bottom: 50}),
		Ellipse(emf.RectL{Left: 60, Top: 10, Right: 90, Bottom: 50}),
		Polyline16(pts),
		Polygon16(pts),
		PolyBezierTo16(Points16(1, 2, 3, 4, 5, 6)),
		StretchDIBits(Stretch{Dest: emf.PointL{X: 5000, Y: 5000}, DestExt: emf.SizeL{CX: 2000, CY: 2000}}, bm),
		must(ExtTextOutW(emf.RectL{}, GMCompatible, 1, 1, Text{
			Reference: emf.PointL{X: 100, Y: 950},
			String:    "Text16 from EXTTEXTOUTW",
			Dx:        Advances(-300, FWNormal, 23),
		})),
		must(ExtTextOutA(emf.RectL{}, GMCompatible, 1, 1, Text{
			Reference: emf.PointL{X: 100, Y: 650},
			String:    "Text8",
			Options:   ETONoRect,
		})),
		must(SmallTextOut(SmallText{String: "Text8 small", Options: ETOSmallChars, Mode: GMCompatible, XScale: 1, YScale: 1})),
		must(SmallTextOut(SmallText{String: "Text16 small", Options: ETONoRect, Mode: GMCompatible, XScale: 1, YScale: 1})),
		RestoreDC(-1),
		DeleteObject(2),
		EOF(nil),
	}
}

func TestConstructorsAreFramed(t *testing.T) {
	for i, r := range sampleRecords(t) {
		require.GreaterOrEqual(t, len(r), format.RecordHeaderSize, "record %d", i)
		assert.Zero(t, len(r)%4, "record %d size %d", i, len(r))
		assert.Equal(t, uint32(len(r)), format.ReadU32(r, format.RecordSizeOffset), "record %d", i)
	}
}

func TestSampleStreamWalksAndSwaps(t *testing.T) {
	recs := sampleRecords(t)
	stream := bytes.Join(recs, nil)

	var seen []emf.RecordType
	n, err := emf.Walk(stream, func(rec emf.Record) error {
		seen = append(seen, rec.Type)
		_, err := Decode(rec)
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, len(recs), n)
	assert.Equal(t, emf.EMRHeader, seen[0])
	assert.Equal(t, emf.EMREOF, seen[len(seen)-1])

	swapped := bytes.Clone(stream)
	require.NoError(t, endian.Swap(swapped, true))
	assert.NotEqual(t, stream, swapped)
	require.NoError(t, endian.Swap(swapped, false))
	assert.Equal(t, stream, swapped)
}

func TestHeader(t *testing.T) {
	desc := Description("Test EMF", "produced by emfkit")
	b, err := Header(HeaderSpec{Description: desc, Millimeters: emf.SizeL{CX: 216, CY: 279}})
	require.NoError(t, err)

	h, err := emf.ParseHeader(b)
	require.NoError(t, err)
	assert.Equal(t, format.HeaderBaseSize, h.Form())
	assert.Equal(t, uint32(format.HeaderBaseSize), h.DescriptionOff)
	// Two NUL-terminated parts plus the final terminator.
	assert.Equal(t, uint32(len("Test EMF")+len("produced by emfkit")+3), h.DescriptionLen)
	assert.Equal(t, uint32(len(b)), h.Bytes)
	assert.Equal(t, uint32(1), h.Records)

	body := decode(t, b).(HeaderBody)
	assert.Equal(t, desc, body.Description)

	b, err = Header(HeaderSpec{Millimeters: emf.SizeL{CX: 216, CY: 279}, Micrometers: true})
	require.NoError(t, err)
	require.Len(t, b, format.HeaderExtension2Size)
	h, err = emf.ParseHeader(b)
	require.NoError(t, err)
	assert.True(t, h.HasExtension2())
	assert.Equal(t, emf.SizeL{CX: 216000, CY: 279000}, h.Micrometers)
}

func TestSizes(t *testing.T) {
	device, mm := DeviceSize(216, 279, DotsPerMM(1200))
	assert.Equal(t, emf.SizeL{CX: 10205, CY: 13181}, device)
	assert.Equal(t, emf.SizeL{CX: 216, CY: 279}, mm)

	bounds, frame := DrawingSize(297, 210, DotsPerMM(1200))
	assert.Equal(t, emf.RectL{Right: 14031, Bottom: 9921}, bounds)
	assert.Equal(t, emf.RectL{Right: 29700, Bottom: 21000}, frame)
}

func TestEOF(t *testing.T) {
	b := EOF(nil)
	require.Len(t, b, format.EOFSize)
	assert.Equal(t, uint32(format.EOFSize), format.ReadU32(b, len(b)-4))

	pal := []PaletteEntry{{Red: 1, Green: 2, Blue: 3}, {Red: 4, Green: 5, Blue: 6, Flags: 1}}
	b = EOF(pal)
	require.Len(t, b, format.EOFSize+8)
	assert.Equal(t, uint32(len(b)), format.ReadU32(b, len(b)-4))
	assert.Equal(t, pal, decode(t, b).(EOFBody).Palette)
}

func TestComment(t *testing.T) {
	b := TextComment("First comment")
	assert.Len(t, b, 28)
	body := decode(t, b).(CommentBody)
	assert.Equal(t, []byte("First comment\x00"), body.Data)
}

func TestObjects(t *testing.T) {
	b := CreateBrushIndirect(7, LogBrush{Style: BSHatched, Color: RGB(1, 2, 3), Hatch: HSCross})
	assert.Equal(t, BrushBody{Handle: 7, Brush: LogBrush{Style: BSHatched, Color: RGB(1, 2, 3), Hatch: HSCross}}, decode(t, b))

	assert.Equal(t, HandleBody{Kind: emf.EMRSelectObject, Handle: emf.StockObject | 5}, decode(t, SelectObject(emf.StockObject|5)))
	assert.Equal(t, HandleBody{Kind: emf.EMRDeleteObject, Handle: 3}, decode(t, DeleteObject(3)))

	pen := ExtCreatePen(2, ExtLogPen{Style: PSUserStyle, StyleEntry: []uint32{1, 2, 3}})
	assert.Len(t, pen, 0x34+12)
	assert.Equal(t, uint32(3), format.ReadU32(pen, 0x30))
	assert.Equal(t, uint32(3), format.ReadU32(pen, 0x3C))
}

func TestFont(t *testing.T) {
	b, err := ExtCreateFontIndirectW(4, FontSpec{
		LogFont: LogFont{Height: -30, Escapement: 900, Weight: FWBold, FaceName: "a face name that is much longer than thirty one units"},
		Style:   "Bold",
	})
	require.NoError(t, err)
	require.Len(t, b, format.ExtCreateFontPanose)

	lf, err := readLogFont(b, 12)
	require.NoError(t, err)
	assert.Equal(t, int32(-30), lf.Height)
	assert.Equal(t, int32(900), lf.Escapement)
	assert.Len(t, lf.FaceName, 31)
	// PANOSE defaults to no-fit.
	assert.Equal(t, bytes.Repeat([]byte{PanoseNoFit}, format.PanoseSize), b[0x140:0x14A])

	b, err = ExtCreateFontLogFont(5, LogFont{FaceName: "Arial"})
	require.NoError(t, err)
	assert.Len(t, b, format.ExtCreateFontBaseSize)
}

func TestStateAndPath(t *testing.T) {
	assert.Equal(t, ValueBody{Kind: emf.EMRSetMapMode, Value: MMAnisotropic}, decode(t, SetMapMode(MMAnisotropic)))
	assert.Equal(t, ValueBody{Kind: emf.EMRSetTextColor, Value: 0x00030201}, decode(t, SetTextColor(RGB(1, 2, 3))))
	assert.Equal(t, ValueBody{Kind: emf.EMRRestoreDC, Value: 0xFFFFFFFF}, decode(t, RestoreDC(-1)))
	assert.Equal(t, PointBody{Kind: emf.EMRLineTo, Point: emf.PointL{X: -5, Y: 7}}, decode(t, LineTo(-5, 7)))
	assert.Equal(t, BoxBody{Kind: emf.EMREllipse, Rect: emf.RectL{Left: 1, Top: 2, Right: 3, Bottom: 4}},
		decode(t, Ellipse(emf.RectL{Left: 1, Top: 2, Right: 3, Bottom: 4})))
	assert.Equal(t, PathBody{Kind: emf.EMRBeginPath}, decode(t, BeginPath()))
	assert.Len(t, EndPath(), 8)
}

func TestPoly16(t *testing.T) {
	pts := Points16(10, 50, -20, 5, 30, 40, 99)
	require.Len(t, pts, 3)
	b := Polygon16(pts)
	assert.Len(t, b, 28+12)

	body := decode(t, b).(Poly16Body)
	assert.Equal(t, emf.EMRPolygon16, body.Kind)
	assert.Equal(t, pts, body.Points)
	assert.Equal(t, emf.RectL{Left: -20, Top: 5, Right: 30, Bottom: 50}, body.Bounds)
}

func TestStretchDIBits(t *testing.T) {
	grad := dib.Gradient(4, 4, 16)
	for _, depth := range []int{1, 4, 8, 16, 24, 32} {
		bm, err := dib.FromRGBA(grad, 4, 4, 16, dib.Options{Depth: depth})
		require.NoError(t, err)

		b := StretchDIBits(Stretch{Dest: emf.PointL{X: 10, Y: 20}}, bm)
		body := decode(t, b).(StretchDIBitsBody)
		assert.Equal(t, emf.SizeL{CX: 4, CY: 4}, body.SrcExt, "depth %d", depth)
		assert.Equal(t, emf.SizeL{CX: 4, CY: 4}, body.DestExt, "depth %d", depth)
		assert.Equal(t, uint32(SrcCopy), body.Rop)
		assert.Equal(t, bm.Info(), body.Info())

		back, err := body.Bitmap()
		require.NoError(t, err)
		assert.Equal(t, bm, back, "depth %d", depth)
	}
}

func TestExtTextOut(t *testing.T) {
	in := Text{
		Reference: emf.PointL{X: 10, Y: 20},
		String:    "Hello",
		Rect:      emf.RectL{Right: 40, Bottom: 40},
		Dx:        []int32{1, 2, 3, 4, 5},
	}
	b, err := ExtTextOutW(emf.RectL{Right: 1}, GMCompatible, 1.5, 2, in)
	require.NoError(t, err)
	body := decode(t, b).(TextOutBody)
	assert.Equal(t, emf.EMRExtTextOutW, body.Kind)
	assert.Equal(t, float32(1.5), body.XScale)
	assert.Equal(t, in, body.Text)

	in.Options = ETONoRect | ETOPDY
	in.Rect = emf.RectL{}
	in.String = "café"
	in.Dx = []int32{1, 0, 2, 0, 3, 0, 4, 0}
	b, err = ExtTextOutA(emf.RectL{}, GMAdvanced, 1, 1, in)
	require.NoError(t, err)
	assert.Len(t, b, format.ExtTextOutFixedNoRect+4+32)
	body = decode(t, b).(TextOutBody)
	assert.Equal(t, in, body.Text)

	_, err = ExtTextOutW(emf.RectL{}, GMCompatible, 1, 1, Text{String: "abc", Dx: []int32{1}})
	assert.ErrorIs(t, err, ErrDxLength)

	b, err = ExtTextOutW(emf.RectL{}, GMCompatible, 1, 1, Text{String: "no spacing"})
	require.NoError(t, err)
	assert.Nil(t, decode(t, b).(TextOutBody).Text.Dx)
}

func TestSmallTextOut(t *testing.T) {
	for _, opts := range []uint32{ETONone, ETOSmallChars, ETONoRect, ETONoRect | ETOSmallChars} {
		in := SmallText{
			Reference: emf.PointL{X: 100, Y: 50},
			String:    "Text from SMALLTEXTOUT",
			Options:   opts,
			Mode:      GMCompatible,
			XScale:    1,
			YScale:    1,
		}
		if opts&ETONoRect == 0 {
			in.Clip = emf.RectL{Right: 10, Bottom: 10}
		}
		b, err := SmallTextOut(in)
		require.NoError(t, err)
		body := decode(t, b).(SmallTextOutBody)
		assert.Equal(t, in, body.SmallText, "options 0x%X", opts)
	}
}

func TestDecodeErrors(t *testing.T) {
	poly := Polyline16(Points16(1, 1, 2, 2))
	format.PutU32(poly, format.Poly16CountOffset, 50)
	rec, err := emf.NewRecord(poly)
	require.NoError(t, err)
	_, err = Decode(rec)
	assert.ErrorIs(t, err, ErrShortRecord)

	dibs := StretchDIBits(Stretch{}, &dib.Bitmap{Width: 1, Height: 1, Depth: 32, Pixels: make([]byte, 4)})
	format.PutU32(dibs, format.StretchDIBitsCbBitsOffset, 1000)
	rec, err = emf.NewRecord(dibs)
	require.NoError(t, err)
	_, err = Decode(rec)
	assert.ErrorIs(t, err, ErrShortRecord)

	rec, err = emf.NewRecord(Empty(emf.EMRSetMapMode))
	require.NoError(t, err)
	_, err = Decode(rec)
	assert.ErrorIs(t, err, ErrShortRecord)
}

func TestDecodeGeneric(t *testing.T) {
	b := Single(emf.EMRSetICMMode, 2)
	body := decode(t, b)
	g, ok := body.(Generic)
	require.True(t, ok)
	assert.Equal(t, emf.EMRSetICMMode, g.Type())
	assert.Equal(t, b, g.Bytes())
}
