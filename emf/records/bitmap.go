package records

import (
	"github.com/joshuapare/emfkit/emf"
	"github.com/joshuapare/emfkit/emf/dib"
	"github.com/joshuapare/emfkit/internal/format"
)

// Stretch holds the placement fields of EMR_STRETCHDIBITS.
type Stretch struct {
	Bounds  emf.RectL
	Dest    emf.PointL
	DestExt emf.SizeL // zero means the bitmap size
	Src     emf.PointL
	SrcExt  emf.SizeL // zero means the bitmap size
	Usage   uint32
	Rop     uint32 // zero means SrcCopy
}

// StretchDIBits builds an EMR_STRETCHDIBITS with the BITMAPINFO and pixels
// of bm appended after the fixed part.
func StretchDIBits(st Stretch, bm *dib.Bitmap) []byte {
	info := bm.Info()
	offBmi := format.StretchDIBitsFixedSize
	offBits := offBmi + format.Align4(len(info))
	b := alloc(emf.EMRStretchDIBits, offBits+len(bm.Pixels))

	size := emf.SizeL{CX: int32(bm.Width), CY: int32(bm.Height)}
	if st.SrcExt == (emf.SizeL{}) {
		st.SrcExt = size
	}
	if st.DestExt == (emf.SizeL{}) {
		st.DestExt = size
	}
	if st.Rop == 0 {
		st.Rop = SrcCopy
	}

	format.PutRectL(b, format.RecordHeaderSize, st.Bounds)
	format.PutPointL(b, format.StretchDIBitsDestOffset, st.Dest)
	format.PutPointL(b, format.StretchDIBitsSrcOffset, st.Src)
	format.PutSizeL(b, format.StretchDIBitsSrcExtOffset, st.SrcExt)
	format.PutU32(b, format.StretchDIBitsOffBmiOffset, uint32(offBmi))
	format.PutU32(b, format.StretchDIBitsCbBmiOffset, uint32(len(info)))
	format.PutU32(b, format.StretchDIBitsOffBitsOffset, uint32(offBits))
	format.PutU32(b, format.StretchDIBitsCbBitsOffset, uint32(len(bm.Pixels)))
	format.PutU32(b, format.StretchDIBitsUsageOffset, st.Usage)
	format.PutU32(b, format.StretchDIBitsRopOffset, st.Rop)
	format.PutSizeL(b, format.StretchDIBitsDestExtOffset, st.DestExt)
	copy(b[offBmi:], info)
	copy(b[offBits:], bm.Pixels)
	return b
}
