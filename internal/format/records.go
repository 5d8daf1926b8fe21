package format

// RecordType is the iType discriminant at the start of every record.
type RecordType uint32

// Record types, in wire order. Values 69, 107 and 117 are unassigned slots
// that some producers still emit.
const (
	EMRHeader RecordType = iota + 1
	EMRPolyBezier
	EMRPolygon
	EMRPolyline
	EMRPolyBezierTo
	EMRPolylineTo
	EMRPolyPolyline
	EMRPolyPolygon
	EMRSetWindowExtEx
	EMRSetWindowOrgEx
	EMRSetViewportExtEx
	EMRSetViewportOrgEx
	EMRSetBrushOrgEx
	EMREOF
	EMRSetPixelV
	EMRSetMapperFlags
	EMRSetMapMode
	EMRSetBkMode
	EMRSetPolyFillMode
	EMRSetROP2
	EMRSetStretchBltMode
	EMRSetTextAlign
	EMRSetColorAdjustment
	EMRSetTextColor
	EMRSetBkColor
	EMROffsetClipRgn
	EMRMoveToEx
	EMRSetMetaRgn
	EMRExcludeClipRect
	EMRIntersectClipRect
	EMRScaleViewportExtEx
	EMRScaleWindowExtEx
	EMRSaveDC
	EMRRestoreDC
	EMRSetWorldTransform
	EMRModifyWorldTransform
	EMRSelectObject
	EMRCreatePen
	EMRCreateBrushIndirect
	EMRDeleteObject
	EMRAngleArc
	EMREllipse
	EMRRectangle
	EMRRoundRect
	EMRArc
	EMRChord
	EMRPie
	EMRSelectPalette
	EMRCreatePalette
	EMRSetPaletteEntries
	EMRResizePalette
	EMRRealizePalette
	EMRExtFloodFill
	EMRLineTo
	EMRArcTo
	EMRPolyDraw
	EMRSetArcDirection
	EMRSetMiterLimit
	EMRBeginPath
	EMREndPath
	EMRCloseFigure
	EMRFillPath
	EMRStrokeAndFillPath
	EMRStrokePath
	EMRFlattenPath
	EMRWidenPath
	EMRSelectClipPath
	EMRAbortPath
	EMRUndef69
	EMRComment
	EMRFillRgn
	EMRFrameRgn
	EMRInvertRgn
	EMRPaintRgn
	EMRExtSelectClipRgn
	EMRBitBlt
	EMRStretchBlt
	EMRMaskBlt
	EMRPlgBlt
	EMRSetDIBitsToDevice
	EMRStretchDIBits
	EMRExtCreateFontIndirectW
	EMRExtTextOutA
	EMRExtTextOutW
	EMRPolyBezier16
	EMRPolygon16
	EMRPolyline16
	EMRPolyBezierTo16
	EMRPolylineTo16
	EMRPolyPolyline16
	EMRPolyPolygon16
	EMRPolyDraw16
	EMRCreateMonoBrush
	EMRCreateDIBPatternBrushPt
	EMRExtCreatePen
	EMRPolyTextOutA
	EMRPolyTextOutW
	EMRSetICMMode
	EMRCreateColorSpace
	EMRSetColorSpace
	EMRDeleteColorSpace
	EMRGLSRecord
	EMRGLSBoundedRecord
	EMRPixelFormat
	EMRDrawEscape
	EMRExtEscape
	EMRUndef107
	EMRSmallTextOut
	EMRForceUFIMapping
	EMRNamedEscape
	EMRColorCorrectPalette
	EMRSetICMProfileA
	EMRSetICMProfileW
	EMRAlphaBlend
	EMRSetLayout
	EMRTransparentBlt
	EMRUndef117
	EMRGradientFill
	EMRSetLinkedUFIs
	EMRSetTextJustification
	EMRColorMatchToTargetW
	EMRCreateColorSpaceW
)

// MaxRecordType is the highest assigned record type.
const MaxRecordType = EMRCreateColorSpaceW

// recordTypeNames maps RecordType values to their canonical EMR_ names.
var recordTypeNames = [...]string{
	EMRHeader:                  "EMR_HEADER",
	EMRPolyBezier:              "EMR_POLYBEZIER",
	EMRPolygon:                 "EMR_POLYGON",
	EMRPolyline:                "EMR_POLYLINE",
	EMRPolyBezierTo:            "EMR_POLYBEZIERTO",
	EMRPolylineTo:              "EMR_POLYLINETO",
	EMRPolyPolyline:            "EMR_POLYPOLYLINE",
	EMRPolyPolygon:             "EMR_POLYPOLYGON",
	EMRSetWindowExtEx:          "EMR_SETWINDOWEXTEX",
	EMRSetWindowOrgEx:          "EMR_SETWINDOWORGEX",
	EMRSetViewportExtEx:        "EMR_SETVIEWPORTEXTEX",
	EMRSetViewportOrgEx:        "EMR_SETVIEWPORTORGEX",
	EMRSetBrushOrgEx:           "EMR_SETBRUSHORGEX",
	EMREOF:                     "EMR_EOF",
	EMRSetPixelV:               "EMR_SETPIXELV",
	EMRSetMapperFlags:          "EMR_SETMAPPERFLAGS",
	EMRSetMapMode:              "EMR_SETMAPMODE",
	EMRSetBkMode:               "EMR_SETBKMODE",
	EMRSetPolyFillMode:         "EMR_SETPOLYFILLMODE",
	EMRSetROP2:                 "EMR_SETROP2",
	EMRSetStretchBltMode:       "EMR_SETSTRETCHBLTMODE",
	EMRSetTextAlign:            "EMR_SETTEXTALIGN",
	EMRSetColorAdjustment:      "EMR_SETCOLORADJUSTMENT",
	EMRSetTextColor:            "EMR_SETTEXTCOLOR",
	EMRSetBkColor:              "EMR_SETBKCOLOR",
	EMROffsetClipRgn:           "EMR_OFFSETCLIPRGN",
	EMRMoveToEx:                "EMR_MOVETOEX",
	EMRSetMetaRgn:              "EMR_SETMETARGN",
	EMRExcludeClipRect:         "EMR_EXCLUDECLIPRECT",
	EMRIntersectClipRect:       "EMR_INTERSECTCLIPRECT",
	EMRScaleViewportExtEx:      "EMR_SCALEVIEWPORTEXTEX",
	EMRScaleWindowExtEx:        "EMR_SCALEWINDOWEXTEX",
	EMRSaveDC:                  "EMR_SAVEDC",
	EMRRestoreDC:               "EMR_RESTOREDC",
	EMRSetWorldTransform:       "EMR_SETWORLDTRANSFORM",
	EMRModifyWorldTransform:    "EMR_MODIFYWORLDTRANSFORM",
	EMRSelectObject:            "EMR_SELECTOBJECT",
	EMRCreatePen:               "EMR_CREATEPEN",
	EMRCreateBrushIndirect:     "EMR_CREATEBRUSHINDIRECT",
	EMRDeleteObject:            "EMR_DELETEOBJECT",
	EMRAngleArc:                "EMR_ANGLEARC",
	EMREllipse:                 "EMR_ELLIPSE",
	EMRRectangle:               "EMR_RECTANGLE",
	EMRRoundRect:               "EMR_ROUNDRECT",
	EMRArc:                     "EMR_ARC",
	EMRChord:                   "EMR_CHORD",
	EMRPie:                     "EMR_PIE",
	EMRSelectPalette:           "EMR_SELECTPALETTE",
	EMRCreatePalette:           "EMR_CREATEPALETTE",
	EMRSetPaletteEntries:       "EMR_SETPALETTEENTRIES",
	EMRResizePalette:           "EMR_RESIZEPALETTE",
	EMRRealizePalette:          "EMR_REALIZEPALETTE",
	EMRExtFloodFill:            "EMR_EXTFLOODFILL",
	EMRLineTo:                  "EMR_LINETO",
	EMRArcTo:                   "EMR_ARCTO",
	EMRPolyDraw:                "EMR_POLYDRAW",
	EMRSetArcDirection:         "EMR_SETARCDIRECTION",
	EMRSetMiterLimit:           "EMR_SETMITERLIMIT",
	EMRBeginPath:               "EMR_BEGINPATH",
	EMREndPath:                 "EMR_ENDPATH",
	EMRCloseFigure:             "EMR_CLOSEFIGURE",
	EMRFillPath:                "EMR_FILLPATH",
	EMRStrokeAndFillPath:       "EMR_STROKEANDFILLPATH",
	EMRStrokePath:              "EMR_STROKEPATH",
	EMRFlattenPath:             "EMR_FLATTENPATH",
	EMRWidenPath:               "EMR_WIDENPATH",
	EMRSelectClipPath:          "EMR_SELECTCLIPPATH",
	EMRAbortPath:               "EMR_ABORTPATH",
	EMRUndef69:                 "EMR_UNDEF69",
	EMRComment:                 "EMR_COMMENT",
	EMRFillRgn:                 "EMR_FILLRGN",
	EMRFrameRgn:                "EMR_FRAMERGN",
	EMRInvertRgn:               "EMR_INVERTRGN",
	EMRPaintRgn:                "EMR_PAINTRGN",
	EMRExtSelectClipRgn:        "EMR_EXTSELECTCLIPRGN",
	EMRBitBlt:                  "EMR_BITBLT",
	EMRStretchBlt:              "EMR_STRETCHBLT",
	EMRMaskBlt:                 "EMR_MASKBLT",
	EMRPlgBlt:                  "EMR_PLGBLT",
	EMRSetDIBitsToDevice:       "EMR_SETDIBITSTODEVICE",
	EMRStretchDIBits:           "EMR_STRETCHDIBITS",
	EMRExtCreateFontIndirectW:  "EMR_EXTCREATEFONTINDIRECTW",
	EMRExtTextOutA:             "EMR_EXTTEXTOUTA",
	EMRExtTextOutW:             "EMR_EXTTEXTOUTW",
	EMRPolyBezier16:            "EMR_POLYBEZIER16",
	EMRPolygon16:               "EMR_POLYGON16",
	EMRPolyline16:              "EMR_POLYLINE16",
	EMRPolyBezierTo16:          "EMR_POLYBEZIERTO16",
	EMRPolylineTo16:            "EMR_POLYLINETO16",
	EMRPolyPolyline16:          "EMR_POLYPOLYLINE16",
	EMRPolyPolygon16:           "EMR_POLYPOLYGON16",
	EMRPolyDraw16:              "EMR_POLYDRAW16",
	EMRCreateMonoBrush:         "EMR_CREATEMONOBRUSH",
	EMRCreateDIBPatternBrushPt: "EMR_CREATEDIBPATTERNBRUSHPT",
	EMRExtCreatePen:            "EMR_EXTCREATEPEN",
	EMRPolyTextOutA:            "EMR_POLYTEXTOUTA",
	EMRPolyTextOutW:            "EMR_POLYTEXTOUTW",
	EMRSetICMMode:              "EMR_SETICMMODE",
	EMRCreateColorSpace:        "EMR_CREATECOLORSPACE",
	EMRSetColorSpace:           "EMR_SETCOLORSPACE",
	EMRDeleteColorSpace:        "EMR_DELETECOLORSPACE",
	EMRGLSRecord:               "EMR_GLSRECORD",
	EMRGLSBoundedRecord:        "EMR_GLSBOUNDEDRECORD",
	EMRPixelFormat:             "EMR_PIXELFORMAT",
	EMRDrawEscape:              "EMR_DRAWESCAPE",
	EMRExtEscape:               "EMR_EXTESCAPE",
	EMRUndef107:                "EMR_UNDEF107",
	EMRSmallTextOut:            "EMR_SMALLTEXTOUT",
	EMRForceUFIMapping:         "EMR_FORCEUFIMAPPING",
	EMRNamedEscape:             "EMR_NAMEDESCAPE",
	EMRColorCorrectPalette:     "EMR_COLORCORRECTPALETTE",
	EMRSetICMProfileA:          "EMR_SETICMPROFILEA",
	EMRSetICMProfileW:          "EMR_SETICMPROFILEW",
	EMRAlphaBlend:              "EMR_ALPHABLEND",
	EMRSetLayout:               "EMR_SETLAYOUT",
	EMRTransparentBlt:          "EMR_TRANSPARENTBLT",
	EMRUndef117:                "EMR_UNDEF117",
	EMRGradientFill:            "EMR_GRADIENTFILL",
	EMRSetLinkedUFIs:           "EMR_SETLINKEDUFIS",
	EMRSetTextJustification:    "EMR_SETTEXTJUSTIFICATION",
	EMRColorMatchToTargetW:     "EMR_COLORMATCHTOTARGETW",
	EMRCreateColorSpaceW:       "EMR_CREATECOLORSPACEW",
}

// String returns the canonical EMR_ name of the record type.
func (t RecordType) String() string {
	if t > 0 && int(t) < len(recordTypeNames) {
		return recordTypeNames[t]
	}
	return "EMR_UNKNOWN"
}

// Known reports whether t is inside the assigned range (including the three
// unassigned slots, which still have a name).
func (t RecordType) Known() bool {
	return t >= EMRHeader && t <= MaxRecordType
}

// Undefined reports whether t is one of the unassigned slots.
func (t RecordType) Undefined() bool {
	return t == EMRUndef69 || t == EMRUndef107 || t == EMRUndef117
}
