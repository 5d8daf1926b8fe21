package records

import "github.com/joshuapare/emfkit/internal/format"

// Mapping modes (EMR_SETMAPMODE).
const (
	MMText        = 1
	MMLoMetric    = 2
	MMHiMetric    = 3
	MMLoEnglish   = 4
	MMHiEnglish   = 5
	MMTwips       = 6
	MMIsotropic   = 7
	MMAnisotropic = 8
)

// Background modes (EMR_SETBKMODE).
const (
	Transparent = 1
	Opaque      = 2
)

// Polygon fill modes (EMR_SETPOLYFILLMODE).
const (
	Alternate = 1
	Winding   = 2
)

// Stretch modes (EMR_SETSTRETCHBLTMODE).
const (
	BlackOnWhite = 1
	WhiteOnBlack = 2
	ColorOnColor = 3
	Halftone     = 4
)

// Text alignment flags (EMR_SETTEXTALIGN).
const (
	TANoUpdateCP = 0x00
	TAUpdateCP   = 0x01
	TALeft       = 0x00
	TARight      = 0x02
	TACenter     = 0x06
	TATop        = 0x00
	TABottom     = 0x08
	TABaseline   = 0x18
	TARTLReading = 0x100
)

// Binary raster operations (EMR_SETROP2).
const (
	R2Black   = 1
	R2NotCopy = 4
	R2XorPen  = 7
	R2CopyPen = 13
	R2White   = 16
)

// Ternary raster operations used by the bitmap records.
const (
	SrcCopy  = 0x00CC0020
	SrcPaint = 0x00EE0086
	SrcAnd   = 0x008800C6
)

// DIB color table usage.
const (
	DIBRGBColors = 0
	DIBPalColors = 1
)

// Graphics modes.
const (
	GMCompatible = 1
	GMAdvanced   = 2
)

// Brush styles.
const (
	BSSolid   = 0
	BSNull    = 1
	BSHatched = 2
	BSPattern = 3
)

// Hatch styles.
const (
	HSHorizontal = 0
	HSVertical   = 1
	HSFDiagonal  = 2
	HSBDiagonal  = 3
	HSCross      = 4
	HSDiagCross  = 5
)

// Pen style flags (EXTLOGPEN elpPenStyle).
const (
	PSSolid        = 0x00000000
	PSDash         = 0x00000001
	PSDot          = 0x00000002
	PSNull         = 0x00000005
	PSUserStyle    = 0x00000007
	PSEndCapRound  = 0x00000000
	PSEndCapSquare = 0x00000100
	PSEndCapFlat   = 0x00000200
	PSJoinRound    = 0x00000000
	PSJoinBevel    = 0x00001000
	PSJoinMiter    = 0x00002000
	PSCosmetic     = 0x00000000
	PSGeometric    = 0x00010000
)

// Font weights.
const (
	FWDontCare = 0
	FWThin     = 100
	FWLight    = 300
	FWNormal   = 400
	FWBold     = 700
	FWBlack    = 900
)

// Character sets.
const (
	ANSICharset    = 0
	DefaultCharset = 1
	SymbolCharset  = 2
)

// PanoseNoFit is the PANOSE value CreateFont writes when nothing is known.
const PanoseNoFit = 1

// Text output option flags.
const (
	ETONone       = 0
	ETOOpaque     = format.ETOOpaque
	ETOClipped    = format.ETOClipped
	ETONoRect     = format.ETONoRect
	ETOSmallChars = format.ETOSmallChars
	ETOPDY        = format.ETOPDY
)
