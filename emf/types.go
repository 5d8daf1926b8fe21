package emf

import "github.com/joshuapare/emfkit/internal/format"

// RecordType is the iType discriminant of a record.
type RecordType = format.RecordType

// Record types re-exported for callers outside the module.
const (
	EMRHeader                  = format.EMRHeader
	EMRPolyBezier              = format.EMRPolyBezier
	EMRPolygon                 = format.EMRPolygon
	EMRPolyline                = format.EMRPolyline
	EMRPolyBezierTo            = format.EMRPolyBezierTo
	EMRPolylineTo              = format.EMRPolylineTo
	EMRPolyPolyline            = format.EMRPolyPolyline
	EMRPolyPolygon             = format.EMRPolyPolygon
	EMRSetWindowExtEx          = format.EMRSetWindowExtEx
	EMRSetWindowOrgEx          = format.EMRSetWindowOrgEx
	EMRSetViewportExtEx        = format.EMRSetViewportExtEx
	EMRSetViewportOrgEx        = format.EMRSetViewportOrgEx
	EMRSetBrushOrgEx           = format.EMRSetBrushOrgEx
	EMREOF                     = format.EMREOF
	EMRSetPixelV               = format.EMRSetPixelV
	EMRSetMapperFlags          = format.EMRSetMapperFlags
	EMRSetMapMode              = format.EMRSetMapMode
	EMRSetBkMode               = format.EMRSetBkMode
	EMRSetPolyFillMode         = format.EMRSetPolyFillMode
	EMRSetROP2                 = format.EMRSetROP2
	EMRSetStretchBltMode       = format.EMRSetStretchBltMode
	EMRSetTextAlign            = format.EMRSetTextAlign
	EMRSetColorAdjustment      = format.EMRSetColorAdjustment
	EMRSetTextColor            = format.EMRSetTextColor
	EMRSetBkColor              = format.EMRSetBkColor
	EMROffsetClipRgn           = format.EMROffsetClipRgn
	EMRMoveToEx                = format.EMRMoveToEx
	EMRSetMetaRgn              = format.EMRSetMetaRgn
	EMRExcludeClipRect         = format.EMRExcludeClipRect
	EMRIntersectClipRect       = format.EMRIntersectClipRect
	EMRScaleViewportExtEx      = format.EMRScaleViewportExtEx
	EMRScaleWindowExtEx        = format.EMRScaleWindowExtEx
	EMRSaveDC                  = format.EMRSaveDC
	EMRRestoreDC               = format.EMRRestoreDC
	EMRSetWorldTransform       = format.EMRSetWorldTransform
	EMRModifyWorldTransform    = format.EMRModifyWorldTransform
	EMRSelectObject            = format.EMRSelectObject
	EMRCreatePen               = format.EMRCreatePen
	EMRCreateBrushIndirect     = format.EMRCreateBrushIndirect
	EMRDeleteObject            = format.EMRDeleteObject
	EMRAngleArc                = format.EMRAngleArc
	EMREllipse                 = format.EMREllipse
	EMRRectangle               = format.EMRRectangle
	EMRRoundRect               = format.EMRRoundRect
	EMRArc                     = format.EMRArc
	EMRChord                   = format.EMRChord
	EMRPie                     = format.EMRPie
	EMRSelectPalette           = format.EMRSelectPalette
	EMRCreatePalette           = format.EMRCreatePalette
	EMRSetPaletteEntries       = format.EMRSetPaletteEntries
	EMRResizePalette           = format.EMRResizePalette
	EMRRealizePalette          = format.EMRRealizePalette
	EMRExtFloodFill            = format.EMRExtFloodFill
	EMRLineTo                  = format.EMRLineTo
	EMRArcTo                   = format.EMRArcTo
	EMRPolyDraw                = format.EMRPolyDraw
	EMRSetArcDirection         = format.EMRSetArcDirection
	EMRSetMiterLimit           = format.EMRSetMiterLimit
	EMRBeginPath               = format.EMRBeginPath
	EMREndPath                 = format.EMREndPath
	EMRCloseFigure             = format.EMRCloseFigure
	EMRFillPath                = format.EMRFillPath
	EMRStrokeAndFillPath       = format.EMRStrokeAndFillPath
	EMRStrokePath              = format.EMRStrokePath
	EMRFlattenPath             = format.EMRFlattenPath
	EMRWidenPath               = format.EMRWidenPath
	EMRSelectClipPath          = format.EMRSelectClipPath
	EMRAbortPath               = format.EMRAbortPath
	EMRUndef69                 = format.EMRUndef69
	EMRComment                 = format.EMRComment
	EMRFillRgn                 = format.EMRFillRgn
	EMRFrameRgn                = format.EMRFrameRgn
	EMRInvertRgn               = format.EMRInvertRgn
	EMRPaintRgn                = format.EMRPaintRgn
	EMRExtSelectClipRgn        = format.EMRExtSelectClipRgn
	EMRBitBlt                  = format.EMRBitBlt
	EMRStretchBlt              = format.EMRStretchBlt
	EMRMaskBlt                 = format.EMRMaskBlt
	EMRPlgBlt                  = format.EMRPlgBlt
	EMRSetDIBitsToDevice       = format.EMRSetDIBitsToDevice
	EMRStretchDIBits           = format.EMRStretchDIBits
	EMRExtCreateFontIndirectW  = format.EMRExtCreateFontIndirectW
	EMRExtTextOutA             = format.EMRExtTextOutA
	EMRExtTextOutW             = format.EMRExtTextOutW
	EMRPolyBezier16            = format.EMRPolyBezier16
	EMRPolygon16               = format.EMRPolygon16
	EMRPolyline16              = format.EMRPolyline16
	EMRPolyBezierTo16          = format.EMRPolyBezierTo16
	EMRPolylineTo16            = format.EMRPolylineTo16
	EMRPolyPolyline16          = format.EMRPolyPolyline16
	EMRPolyPolygon16           = format.EMRPolyPolygon16
	EMRPolyDraw16              = format.EMRPolyDraw16
	EMRCreateMonoBrush         = format.EMRCreateMonoBrush
	EMRCreateDIBPatternBrushPt = format.EMRCreateDIBPatternBrushPt
	EMRExtCreatePen            = format.EMRExtCreatePen
	EMRPolyTextOutA            = format.EMRPolyTextOutA
	EMRPolyTextOutW            = format.EMRPolyTextOutW
	EMRSetICMMode              = format.EMRSetICMMode
	EMRCreateColorSpace        = format.EMRCreateColorSpace
	EMRSetColorSpace           = format.EMRSetColorSpace
	EMRDeleteColorSpace        = format.EMRDeleteColorSpace
	EMRGLSRecord               = format.EMRGLSRecord
	EMRGLSBoundedRecord        = format.EMRGLSBoundedRecord
	EMRPixelFormat             = format.EMRPixelFormat
	EMRDrawEscape              = format.EMRDrawEscape
	EMRExtEscape               = format.EMRExtEscape
	EMRUndef107                = format.EMRUndef107
	EMRSmallTextOut            = format.EMRSmallTextOut
	EMRForceUFIMapping         = format.EMRForceUFIMapping
	EMRNamedEscape             = format.EMRNamedEscape
	EMRColorCorrectPalette     = format.EMRColorCorrectPalette
	EMRSetICMProfileA          = format.EMRSetICMProfileA
	EMRSetICMProfileW          = format.EMRSetICMProfileW
	EMRAlphaBlend              = format.EMRAlphaBlend
	EMRSetLayout               = format.EMRSetLayout
	EMRTransparentBlt          = format.EMRTransparentBlt
	EMRUndef117                = format.EMRUndef117
	EMRGradientFill            = format.EMRGradientFill
	EMRSetLinkedUFIs           = format.EMRSetLinkedUFIs
	EMRSetTextJustification    = format.EMRSetTextJustification
	EMRColorMatchToTargetW     = format.EMRColorMatchToTargetW
	EMRCreateColorSpaceW       = format.EMRCreateColorSpaceW
)

// StockObject marks a handle as one of the predefined stock objects.
const StockObject = format.StockObject

// Geometry shared by record constructors and decoders.
type (
	RectL   = format.RectL
	SizeL   = format.SizeL
	PointL  = format.PointL
	Point16 = format.Point16
	Header  = format.Header
)

// ParseHeader decodes the header record at the start of b.
func ParseHeader(b []byte) (Header, error) { return format.ParseHeader(b) }
