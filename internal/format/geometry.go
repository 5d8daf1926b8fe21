package format

// RectL is a RECTL: four signed 32-bit edges.
type RectL struct {
	Left, Top, Right, Bottom int32
}

// SizeL is a SIZEL.
type SizeL struct {
	CX, CY int32
}

// PointL is a POINTL.
type PointL struct {
	X, Y int32
}

// Point16 is a POINTS, the 16-bit point used by the *16 drawing records.
type Point16 struct {
	X, Y int16
}

// ReadRectL decodes a RECTL at off.
func ReadRectL(b []byte, off int) RectL {
	return RectL{
		Left:   ReadI32(b, off),
		Top:    ReadI32(b, off+4),
		Right:  ReadI32(b, off+8),
		Bottom: ReadI32(b, off+12),
	}
}

// PutRectL encodes r at off.
func PutRectL(b []byte, off int, r RectL) {
	PutI32(b, off, r.Left)
	PutI32(b, off+4, r.Top)
	PutI32(b, off+8, r.Right)
	PutI32(b, off+12, r.Bottom)
}

// ReadSizeL decodes a SIZEL at off.
func ReadSizeL(b []byte, off int) SizeL {
	return SizeL{CX: ReadI32(b, off), CY: ReadI32(b, off+4)}
}

// PutSizeL encodes s at off.
func PutSizeL(b []byte, off int, s SizeL) {
	PutI32(b, off, s.CX)
	PutI32(b, off+4, s.CY)
}

// ReadPointL decodes a POINTL at off.
func ReadPointL(b []byte, off int) PointL {
	return PointL{X: ReadI32(b, off), Y: ReadI32(b, off+4)}
}

// PutPointL encodes p at off.
func PutPointL(b []byte, off int, p PointL) {
	PutI32(b, off, p.X)
	PutI32(b, off+4, p.Y)
}

// ReadPoint16 decodes a POINTS at off.
func ReadPoint16(b []byte, off int) Point16 {
	return Point16{X: ReadI16(b, off), Y: ReadI16(b, off+2)}
}

// PutPoint16 encodes p at off.
func PutPoint16(b []byte, off int, p Point16) {
	PutI16(b, off, p.X)
	PutI16(b, off+2, p.Y)
}
