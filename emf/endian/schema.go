package endian

import (
	"github.com/joshuapare/emfkit/emf"
	"github.com/joshuapare/emfkit/internal/format"
)

// segment is one entry of a record schema. Most are static (offset, width)
// runs; the rest locate their run through a count or offset field.
type segment interface {
	plan(p *planner) error
}

// fixed is n fields of w bytes at off.
type fixed struct{ off, w, n int }

func (s fixed) plan(p *planner) error { return p.add(s.off, s.w, s.n) }

// rest is every 32-bit field from off to the end of the record.
type rest struct{ off int }

func (s rest) plan(p *planner) error { return p.wordRange(s.off, p.size()) }

// array is count*per fields of w bytes at start, where count is the u32 at countOff.
type array struct{ countOff, start, w, per int }

func (s array) plan(p *planner) error {
	n, err := p.count(s.countOff)
	if err != nil {
		return err
	}
	return p.add(s.start, s.w, n*s.per)
}

// indirect is count*per fields of w bytes at the record offset stored at
// offOff, with count at countOff. Absent when either is zero.
type indirect struct{ countOff, offOff, w, per int }

func (s indirect) plan(p *planner) error {
	n, err := p.count(s.countOff)
	if err != nil {
		return err
	}
	off, err := p.count(s.offOff)
	if err != nil {
		return err
	}
	if n == 0 || off == 0 {
		return nil
	}
	return p.add(off, s.w, n*s.per)
}

// bmi is a BITMAPINFOHEADER found through an (offBmi, cbBmi) pair. The color
// table and the pixels that follow are bytes and stay as they are.
type bmi struct{ offOff, cbOff int }

func (s bmi) plan(p *planner) error {
	cb, err := p.count(s.cbOff)
	if err != nil {
		return err
	}
	off, err := p.count(s.offOff)
	if err != nil {
		return err
	}
	if cb == 0 || off == 0 {
		return nil
	}
	return planBitmapHeader(p, off)
}

// pfd is a PIXELFORMATDESCRIPTOR at a fixed offset.
type pfd struct{ off int }

func (s pfd) plan(p *planner) error { return planPixelFormat(p, s.off) }

// custom covers records whose shape depends on flags or several counts.
type custom func(p *planner) error

func (f custom) plan(p *planner) error { return f(p) }

func w(off, n int) fixed    { return fixed{off: off, w: 4, n: n} }
func h(off, n int) fixed    { return fixed{off: off, w: 2, n: n} }
func wr(from, to int) fixed { return fixed{off: from, w: 4, n: (to - from) / 4} }
func words32(countOff, start, per int) array {
	return array{countOff: countOff, start: start, w: 4, per: per}
}
func words16(countOff, start, per int) array {
	return array{countOff: countOff, start: start, w: 2, per: per}
}

// body is the schema of a record made only of 32-bit fields.
var body = []segment{rest{off: format.RecordHeaderSize}}

// none is the schema of a record with nothing past its header to swap.
var none = []segment{}

// schemas maps each record type to its field schema. The iType/nSize header
// is handled by the caller. A type missing from the map has no known layout.
var schemas = map[emf.RecordType][]segment{
	emf.EMRHeader:                  {custom(planHeader)},
	emf.EMRPolyBezier:              body,
	emf.EMRPolygon:                 body,
	emf.EMRPolyline:                body,
	emf.EMRPolyBezierTo:            body,
	emf.EMRPolylineTo:              body,
	emf.EMRPolyPolyline:            body,
	emf.EMRPolyPolygon:             body,
	emf.EMRSetWindowExtEx:          body,
	emf.EMRSetWindowOrgEx:          body,
	emf.EMRSetViewportExtEx:        body,
	emf.EMRSetViewportOrgEx:        body,
	emf.EMRSetBrushOrgEx:           body,
	emf.EMREOF:                     {custom(planEOF)},
	emf.EMRSetPixelV:               {w(8, 2)}, // crColor is bytes
	emf.EMRSetMapperFlags:          body,
	emf.EMRSetMapMode:              body,
	emf.EMRSetBkMode:               body,
	emf.EMRSetPolyFillMode:         body,
	emf.EMRSetROP2:                 body,
	emf.EMRSetStretchBltMode:       body,
	emf.EMRSetTextAlign:            body,
	emf.EMRSetColorAdjustment:      {h(8, 12)},
	emf.EMRSetTextColor:            none,
	emf.EMRSetBkColor:              none,
	emf.EMROffsetClipRgn:           body,
	emf.EMRMoveToEx:                body,
	emf.EMRSetMetaRgn:              body,
	emf.EMRExcludeClipRect:         body,
	emf.EMRIntersectClipRect:       body,
	emf.EMRScaleViewportExtEx:      body,
	emf.EMRScaleWindowExtEx:        body,
	emf.EMRSaveDC:                  body,
	emf.EMRRestoreDC:               body,
	emf.EMRSetWorldTransform:       body,
	emf.EMRModifyWorldTransform:    body,
	emf.EMRSelectObject:            body,
	emf.EMRCreatePen:               {w(8, 4)},           // lopnColor at 24 is bytes
	emf.EMRCreateBrushIndirect:     {w(8, 2), w(20, 1)}, // lbColor at 16 is bytes
	emf.EMRDeleteObject:            body,
	emf.EMRAngleArc:                body,
	emf.EMREllipse:                 body,
	emf.EMRRectangle:               body,
	emf.EMRRoundRect:               body,
	emf.EMRArc:                     body,
	emf.EMRChord:                   body,
	emf.EMRPie:                     body,
	emf.EMRSelectPalette:           body,
	emf.EMRCreatePalette:           {w(8, 1), h(12, 2)},
	emf.EMRSetPaletteEntries:       {w(8, 3)},
	emf.EMRResizePalette:           body,
	emf.EMRRealizePalette:          body,
	emf.EMRExtFloodFill:            {w(8, 2), w(20, 1)},
	emf.EMRLineTo:                  body,
	emf.EMRArcTo:                   body,
	emf.EMRPolyDraw:                {w(8, 5), words32(24, 28, 2)}, // abTypes are bytes
	emf.EMRSetArcDirection:         body,
	emf.EMRSetMiterLimit:           body,
	emf.EMRBeginPath:               body,
	emf.EMREndPath:                 body,
	emf.EMRCloseFigure:             body,
	emf.EMRFillPath:                body,
	emf.EMRStrokeAndFillPath:       body,
	emf.EMRStrokePath:              body,
	emf.EMRFlattenPath:             body,
	emf.EMRWidenPath:               body,
	emf.EMRSelectClipPath:          body,
	emf.EMRAbortPath:               body,
	emf.EMRComment:                 {w(8, 1)},
	emf.EMRFillRgn:                 body,
	emf.EMRFrameRgn:                body,
	emf.EMRInvertRgn:               body,
	emf.EMRPaintRgn:                body,
	emf.EMRExtSelectClipRgn:        body,
	emf.EMRBitBlt:                  {wr(8, 76), wr(80, 100), bmi{84, 88}},
	emf.EMRStretchBlt:              {wr(8, 76), wr(80, 108), bmi{84, 88}},
	emf.EMRMaskBlt:                 {wr(8, 76), wr(80, 128), bmi{84, 88}, bmi{112, 116}},
	emf.EMRPlgBlt:                  {wr(8, 88), wr(92, 140), bmi{96, 100}, bmi{124, 128}},
	emf.EMRSetDIBitsToDevice:       {wr(8, 76), bmi{48, 52}},
	emf.EMRStretchDIBits:           {wr(8, 80), bmi{48, 52}},
	emf.EMRExtCreateFontIndirectW:  {custom(planExtCreateFont)},
	emf.EMRExtTextOutA:             {wr(8, 36), custom(planTextA)},
	emf.EMRExtTextOutW:             {wr(8, 36), custom(planTextW)},
	emf.EMRPolyBezier16:            {w(8, 5), words16(24, 28, 2)},
	emf.EMRPolygon16:               {w(8, 5), words16(24, 28, 2)},
	emf.EMRPolyline16:              {w(8, 5), words16(24, 28, 2)},
	emf.EMRPolyBezierTo16:          {w(8, 5), words16(24, 28, 2)},
	emf.EMRPolylineTo16:            {w(8, 5), words16(24, 28, 2)},
	emf.EMRPolyPolyline16:          {custom(planPolyPoly16)},
	emf.EMRPolyPolygon16:           {custom(planPolyPoly16)},
	emf.EMRPolyDraw16:              {w(8, 5), words16(24, 28, 2)},
	emf.EMRCreateMonoBrush:         {wr(8, 32), bmi{16, 20}},
	emf.EMRCreateDIBPatternBrushPt: {wr(8, 32), bmi{16, 20}},
	emf.EMRExtCreatePen:            {wr(8, 40), w(44, 2), words32(48, 52, 1), bmi{12, 16}},
	emf.EMRPolyTextOutA:            {wr(8, 40), custom(planPolyTextA)},
	emf.EMRPolyTextOutW:            {wr(8, 40), custom(planPolyTextW)},
	emf.EMRSetICMMode:              body,
	emf.EMRCreateColorSpace:        {wr(8, 80)}, // lcsFilename is bytes
	emf.EMRSetColorSpace:           body,
	emf.EMRDeleteColorSpace:        body,
	emf.EMRGLSRecord:               {w(8, 1)},
	emf.EMRGLSBoundedRecord:        {w(8, 5)},
	emf.EMRPixelFormat:             {pfd{8}},
	emf.EMRDrawEscape:              {w(8, 2)},
	emf.EMRExtEscape:               {w(8, 2)},
	emf.EMRSmallTextOut:            {custom(planSmallTextOut)},
	emf.EMRForceUFIMapping:         body,
	emf.EMRNamedEscape:             {w(8, 3)},
	emf.EMRColorCorrectPalette:     body,
	emf.EMRSetICMProfileA:          {w(8, 3)},
	emf.EMRSetICMProfileW:          {w(8, 3)},
	emf.EMRAlphaBlend:              {wr(8, 40), wr(44, 76), wr(80, 108), bmi{84, 88}},
	emf.EMRSetLayout:               body,
	emf.EMRTransparentBlt:          {wr(8, 40), wr(44, 76), wr(80, 108), bmi{84, 88}},
	emf.EMRGradientFill:            {custom(planGradientFill)},
	emf.EMRSetLinkedUFIs:           body,
	emf.EMRSetTextJustification:    body,
	emf.EMRColorMatchToTargetW:     {w(8, 4)},
	emf.EMRCreateColorSpaceW:       {wr(8, 80), h(80, 260), w(600, 2)},
}
