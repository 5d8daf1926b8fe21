// Package format houses the low-level binary layout of the Enhanced Metafile
// (EMF) record stream. The goal is to keep offsets, sizes and enumerations in
// one place, independent from the public API, so higher-level packages can
// decode and build records without repeating magic numbers.
package format

const (
	// RecordHeaderSize is the size of the header shared by every record.
	// Layout (little-endian):
	//
	//	Offset  Size  Description
	//	0x00    4     iType, the record type discriminant.
	//	0x04    4     nSize, total record size in bytes including this header.
	RecordHeaderSize = 8

	// RecordTypeOffset and RecordSizeOffset locate the two header fields.
	RecordTypeOffset = 0x00
	RecordSizeOffset = 0x04

	// RecordAlignment is the required alignment of every record size.
	RecordAlignment = 4

	// RecordAlignmentMask is the bitmask used for aligning to 4-byte boundaries.
	RecordAlignmentMask = RecordAlignment - 1

	// MaxStreamSize is the largest stream the format can describe: nSize and
	// the header's nBytes are both 32-bit.
	MaxStreamSize = 1<<32 - 1
)

// EMR_HEADER layout. The base form is 88 bytes; two optional extensions
// append the OpenGL pixel format block (100 bytes) and the micrometer size
// (108 bytes).
//
//	Offset  Size  Field
//	0x08    16    rclBounds (RECTL, device units)
//	0x18    16    rclFrame (RECTL, .01 mm)
//	0x28    4     dSignature (" EMF")
//	0x2C    4     nVersion
//	0x30    4     nBytes
//	0x34    4     nRecords
//	0x38    2     nHandles
//	0x3A    2     sReserved
//	0x3C    4     nDescription (UTF-16 code units)
//	0x40    4     offDescription
//	0x44    4     nPalEntries
//	0x48    8     szlDevice (SIZEL, pixels)
//	0x50    8     szlMillimeters (SIZEL)
//	0x58    4     cbPixelFormat      (extension 1)
//	0x5C    4     offPixelFormat     (extension 1)
//	0x60    4     bOpenGL            (extension 1)
//	0x64    8     szlMicrometers     (extension 2)
const (
	HeaderBoundsOffset         = 0x08
	HeaderFrameOffset          = 0x18
	HeaderSignatureOffset      = 0x28
	HeaderVersionOffset        = 0x2C
	HeaderBytesOffset          = 0x30
	HeaderRecordsOffset        = 0x34
	HeaderHandlesOffset        = 0x38
	HeaderReservedOffset       = 0x3A
	HeaderDescriptionLenOffset = 0x3C
	HeaderDescriptionOffset    = 0x40
	HeaderPalEntriesOffset     = 0x44
	HeaderDeviceOffset         = 0x48
	HeaderMillimetersOffset    = 0x50
	HeaderPixelFormatLenOffset = 0x58
	HeaderPixelFormatOffset    = 0x5C
	HeaderOpenGLOffset         = 0x60
	HeaderMicrometersOffset    = 0x64

	HeaderBaseSize       = 88
	HeaderExtension1Size = 100
	HeaderExtension2Size = 108

	// HeaderSignature is dSignature read as a little-endian uint32 (" EMF").
	HeaderSignature = 0x464D4520

	// HeaderVersion is the only nVersion value Windows writes.
	HeaderVersion = 0x00010000
)

// EMR_EOF layout.
//
//	Offset  Size  Field
//	0x08    4     nPalEntries
//	0x0C    4     offPalEntries
//	0x10    4*n   palette entries (LOGPALETTEENTRY, bytes)
//	size-4  4     nSizeLast (copy of nSize)
const (
	EOFPalEntriesOffset    = 0x08
	EOFPalOffsetOffset     = 0x0C
	EOFFixedSize           = 0x10
	EOFSize                = EOFFixedSize + 4
	PaletteEntrySize       = 4
	SizeLastFieldWidth     = 4
	CommentDataLenOffset   = 0x08
	CommentFixedSize       = 0x0C
	ObjectHandleOffset     = 0x08
	ObjectRecordSize       = 0x0C
	RectRecordSize         = 0x18
	PointRecordSize        = 0x10
	ParameterlessSize      = RecordHeaderSize
	SingleParameterSize    = 0x0C
	BoundsOnlyRecordSize   = 0x18
	Poly16CountOffset      = 0x18
	Poly16PointsOffset     = 0x1C
	Point16Size            = 4
	PointLSize             = 8
	RectLSize              = 16
	XFormSize              = 24
	ColorRefSize           = 4
	BitmapInfoHeaderSize   = 40
	BitmapCoreHeaderSize   = 12
	RGBQuadSize            = 4
	PixelFormatDescSize    = 40
	LogFontSize            = 92
	LogFontFaceNameLen     = 32
	LogFontFullNameLen     = 64
	LogFontStyleLen        = 32
	LogFontScriptLen       = 32
	PanoseSize             = 10
	LogFontPanoseSize      = 320
	ExtCreateFontBaseSize  = 0x0C + LogFontSize
	ExtCreateFontPanose    = 0x0C + LogFontPanoseSize
	ExtCreateFontExDVFixed = 0x0C + LogFontSize + 2*(LogFontFullNameLen+LogFontStyleLen+LogFontScriptLen)
)

// EMR_STRETCHDIBITS layout.
//
//	Offset  Size  Field
//	0x08    16    rclBounds
//	0x18    4     xDest
//	0x1C    4     yDest
//	0x20    4     xSrc
//	0x24    4     ySrc
//	0x28    4     cxSrc
//	0x2C    4     cySrc
//	0x30    4     offBmiSrc
//	0x34    4     cbBmiSrc
//	0x38    4     offBitsSrc
//	0x3C    4     cbBitsSrc
//	0x40    4     iUsageSrc
//	0x44    4     dwRop
//	0x48    4     cxDest
//	0x4C    4     cyDest
const (
	StretchDIBitsDestOffset    = 0x18
	StretchDIBitsSrcOffset     = 0x20
	StretchDIBitsSrcExtOffset  = 0x28
	StretchDIBitsOffBmiOffset  = 0x30
	StretchDIBitsCbBmiOffset   = 0x34
	StretchDIBitsOffBitsOffset = 0x38
	StretchDIBitsCbBitsOffset  = 0x3C
	StretchDIBitsUsageOffset   = 0x40
	StretchDIBitsRopOffset     = 0x44
	StretchDIBitsDestExtOffset = 0x48
	StretchDIBitsFixedSize     = 0x50
)

// EMR_EXTTEXTOUTA/W layout. The embedded EMRTEXT starts at 0x24; when
// fOptions carries ETO_NO_RECT the rectangle is absent and offDx moves up.
//
//	Offset  Size  Field
//	0x08    16    rclBounds
//	0x18    4     iGraphicsMode
//	0x1C    4     exScale (float32)
//	0x20    4     eyScale (float32)
//	0x24    8     emrtext.ptlReference
//	0x2C    4     emrtext.nChars
//	0x30    4     emrtext.offString
//	0x34    4     emrtext.fOptions
//	0x38    16    emrtext.rcl (optional)
//	0x48    4     emrtext.offDx (0x38 without rcl)
const (
	ExtTextOutModeOffset    = 0x18
	ExtTextOutXScaleOffset  = 0x1C
	ExtTextOutYScaleOffset  = 0x20
	ExtTextOutTextOffset    = 0x24
	EMRTextRefOffset        = 0x00
	EMRTextCharsOffset      = 0x08
	EMRTextStringOffset     = 0x0C
	EMRTextOptionsOffset    = 0x10
	EMRTextRectOffset       = 0x14
	EMRTextSize             = 0x28
	EMRTextSizeNoRect       = 0x18
	ExtTextOutFixedSize     = ExtTextOutTextOffset + EMRTextSize
	ExtTextOutFixedNoRect   = ExtTextOutTextOffset + EMRTextSizeNoRect
	PolyTextOutCountOffset  = 0x24
	PolyTextOutTextsOffset  = 0x28
	SmallTextOutCharsOffset = 0x10
	SmallTextOutOptsOffset  = 0x14
	SmallTextOutModeOffset  = 0x18
	SmallTextOutFixedSize   = 0x24
)

// Text output option flags (fOptions / fuOptions).
const (
	ETOOpaque         = 0x0002
	ETOClipped        = 0x0004
	ETOGlyphIndex     = 0x0010
	ETORTLReading     = 0x0080
	ETONoRect         = 0x0100
	ETOSmallChars     = 0x0200
	ETONumericsLocal  = 0x0400
	ETONumericsLatin  = 0x0800
	ETOIgnoreLanguage = 0x1000
	ETOPDY            = 0x2000
)

// Gradient fill modes (ulMode).
const (
	GradientFillRectH    = 0
	GradientFillRectV    = 1
	GradientFillTriangle = 2
)

// StockObject is the flag marking a handle as a predefined stock object.
const StockObject = 0x80000000
