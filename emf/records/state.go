package records

import (
	"github.com/joshuapare/emfkit/emf"
	"github.com/joshuapare/emfkit/internal/format"
)

// Single builds a record carrying one 32-bit parameter.
func Single(t emf.RecordType, v uint32) []byte {
	b := alloc(t, format.SingleParameterSize)
	format.PutU32(b, format.RecordHeaderSize, v)
	return b
}

// Empty builds a record with no parameters, such as EMR_BEGINPATH.
func Empty(t emf.RecordType) []byte { return alloc(t, format.ParameterlessSize) }

func SetMapMode(mode uint32) []byte        { return Single(emf.EMRSetMapMode, mode) }
func SetBkMode(mode uint32) []byte         { return Single(emf.EMRSetBkMode, mode) }
func SetPolyFillMode(mode uint32) []byte   { return Single(emf.EMRSetPolyFillMode, mode) }
func SetStretchBltMode(mode uint32) []byte { return Single(emf.EMRSetStretchBltMode, mode) }
func SetTextAlign(align uint32) []byte     { return Single(emf.EMRSetTextAlign, align) }
func SetROP2(op uint32) []byte             { return Single(emf.EMRSetROP2, op) }
func SetMiterLimit(limit uint32) []byte    { return Single(emf.EMRSetMiterLimit, limit) }

// SetTextColor builds an EMR_SETTEXTCOLOR.
func SetTextColor(c ColorRef) []byte {
	b := alloc(emf.EMRSetTextColor, format.SingleParameterSize)
	putColor(b, format.RecordHeaderSize, c)
	return b
}

// SetBkColor builds an EMR_SETBKCOLOR.
func SetBkColor(c ColorRef) []byte {
	b := alloc(emf.EMRSetBkColor, format.SingleParameterSize)
	putColor(b, format.RecordHeaderSize, c)
	return b
}

// Point builds a record carrying one POINTL.
func Point(t emf.RecordType, p emf.PointL) []byte {
	b := alloc(t, format.PointRecordSize)
	format.PutPointL(b, format.RecordHeaderSize, p)
	return b
}

// MoveToEx builds an EMR_MOVETOEX.
func MoveToEx(x, y int32) []byte { return Point(emf.EMRMoveToEx, emf.PointL{X: x, Y: y}) }

// LineTo builds an EMR_LINETO.
func LineTo(x, y int32) []byte { return Point(emf.EMRLineTo, emf.PointL{X: x, Y: y}) }

// Box builds a record carrying one RECTL: shapes inscribed in a box, and the
// path fills whose only field is rclBounds.
func Box(t emf.RecordType, r emf.RectL) []byte {
	b := alloc(t, format.RectRecordSize)
	format.PutRectL(b, format.RecordHeaderSize, r)
	return b
}

func Rectangle(r emf.RectL) []byte         { return Box(emf.EMRRectangle, r) }
func Ellipse(r emf.RectL) []byte           { return Box(emf.EMREllipse, r) }
func FillPath(r emf.RectL) []byte          { return Box(emf.EMRFillPath, r) }
func StrokePath(r emf.RectL) []byte        { return Box(emf.EMRStrokePath, r) }
func StrokeAndFillPath(r emf.RectL) []byte { return Box(emf.EMRStrokeAndFillPath, r) }

func BeginPath() []byte   { return Empty(emf.EMRBeginPath) }
func EndPath() []byte     { return Empty(emf.EMREndPath) }
func CloseFigure() []byte { return Empty(emf.EMRCloseFigure) }
func AbortPath() []byte   { return Empty(emf.EMRAbortPath) }
func SaveDC() []byte      { return Empty(emf.EMRSaveDC) }

// RestoreDC builds an EMR_RESTOREDC. rel is negative: -1 restores the most
// recent save.
func RestoreDC(rel int32) []byte { return Single(emf.EMRRestoreDC, uint32(rel)) }

// Poly16 builds one of the single-polygon 16-bit point records with the
// bounds computed from the points.
func Poly16(t emf.RecordType, pts []emf.Point16) []byte {
	b := alloc(t, format.Poly16PointsOffset+format.Point16Size*len(pts))
	format.PutRectL(b, format.RecordHeaderSize, boundsOf(pts))
	format.PutU32(b, format.Poly16CountOffset, uint32(len(pts)))
	for i, p := range pts {
		format.PutPoint16(b, format.Poly16PointsOffset+format.Point16Size*i, p)
	}
	return b
}

func Polyline16(pts []emf.Point16) []byte     { return Poly16(emf.EMRPolyline16, pts) }
func Polygon16(pts []emf.Point16) []byte      { return Poly16(emf.EMRPolygon16, pts) }
func PolyBezier16(pts []emf.Point16) []byte   { return Poly16(emf.EMRPolyBezier16, pts) }
func PolyBezierTo16(pts []emf.Point16) []byte { return Poly16(emf.EMRPolyBezierTo16, pts) }
func PolylineTo16(pts []emf.Point16) []byte   { return Poly16(emf.EMRPolylineTo16, pts) }

// Points16 converts x, y pairs to Point16 values. A trailing odd value is
// ignored.
func Points16(xy ...int16) []emf.Point16 {
	pts := make([]emf.Point16, len(xy)/2)
	for i := range pts {
		pts[i] = emf.Point16{X: xy[2*i], Y: xy[2*i+1]}
	}
	return pts
}
