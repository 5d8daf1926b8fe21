package endian

import (
	"fmt"

	"github.com/joshuapare/emfkit/internal/format"
)

// planBitmapHeader adds a BITMAPINFOHEADER, or the 12-byte BITMAPCOREHEADER
// when biSize says so, at off.
func planBitmapHeader(p *planner, off int) error {
	size, err := p.u32(off)
	if err != nil {
		return err
	}
	if size == format.BitmapCoreHeaderSize {
		if err := p.words(off, 1); err != nil {
			return err
		}
		return p.halves(off+4, 4)
	}
	if err := p.words(off, 3); err != nil { // biSize, biWidth, biHeight
		return err
	}
	if err := p.halves(off+12, 2); err != nil { // biPlanes, biBitCount
		return err
	}
	return p.words(off+16, 6)
}

// planPixelFormat adds a PIXELFORMATDESCRIPTOR at off. Bytes 8..28 are single
// byte counts and shifts.
func planPixelFormat(p *planner, off int) error {
	if err := p.halves(off, 2); err != nil {
		return err
	}
	if err := p.words(off+4, 1); err != nil {
		return err
	}
	return p.words(off+28, 3)
}

func planHeader(p *planner) error {
	size := uint32(p.size())
	descLen, err := p.u32(format.HeaderDescriptionLenOffset)
	if err != nil {
		return err
	}
	descOff, err := p.u32(format.HeaderDescriptionOffset)
	if err != nil {
		return err
	}
	var pfLen, pfOff uint32
	if size >= format.HeaderExtension1Size {
		if pfLen, err = p.u32(format.HeaderPixelFormatLenOffset); err != nil {
			return err
		}
		if pfOff, err = p.u32(format.HeaderPixelFormatOffset); err != nil {
			return err
		}
	}
	form := format.HeaderForm(size, descLen, descOff, pfLen, pfOff)

	if err := p.wordRange(format.RecordHeaderSize, format.HeaderHandlesOffset); err != nil {
		return err
	}
	if err := p.halves(format.HeaderHandlesOffset, 2); err != nil {
		return err
	}
	if err := p.wordRange(format.HeaderDescriptionLenOffset, form); err != nil {
		return err
	}
	if descLen > 0 && descOff > 0 {
		if err := p.halves(int(descOff), int(descLen)); err != nil {
			return err
		}
	}
	if form >= format.HeaderExtension1Size && pfLen > 0 && pfOff > 0 {
		return planPixelFormat(p, int(pfOff))
	}
	return nil
}

func planEOF(p *planner) error {
	last := p.size() - format.SizeLastFieldWidth
	if last < format.EOFFixedSize {
		return fmt.Errorf("%w: EOF record of %d bytes has no nSizeLast", ErrFieldBounds, p.size())
	}
	if err := p.words(format.EOFPalEntriesOffset, 2); err != nil {
		return err
	}
	return p.words(last, 1)
}

// EXTCREATEFONTINDIRECTW carries a LOGFONT, a LOGFONT_PANOSE, or a LOGFONT
// extended with full name, style, script and a design vector. The size tells
// which.
func planExtCreateFont(p *planner) error {
	const (
		logfont   = 0x0C
		faceName  = logfont + 28
		afterFace = logfont + format.LogFontSize
	)
	if err := p.words(format.ObjectHandleOffset, 1); err != nil {
		return err
	}
	if err := p.words(logfont, 5); err != nil { // height, width, escapement, orientation, weight
		return err
	}
	if err := p.halves(faceName, format.LogFontFaceNameLen); err != nil {
		return err
	}
	switch {
	case p.size() == format.ExtCreateFontPanose:
		if err := p.halves(afterFace, format.LogFontFullNameLen+format.LogFontStyleLen); err != nil {
			return err
		}
		const tail = afterFace + 2*(format.LogFontFullNameLen+format.LogFontStyleLen)
		// version, style size, match, reserved; vendor id bytes; culture; panose bytes
		if err := p.words(tail, 4); err != nil {
			return err
		}
		return p.words(tail+20, 1)
	case p.size() > format.ExtCreateFontBaseSize:
		n := format.LogFontFullNameLen + format.LogFontStyleLen + format.LogFontScriptLen
		if err := p.halves(afterFace, n); err != nil {
			return err
		}
		dv := format.ExtCreateFontExDVFixed
		if err := p.words(dv, 2); err != nil { // signature, numAxes
			return err
		}
		return array{countOff: dv + 4, start: dv + 8, w: 4, per: 1}.plan(p)
	}
	return nil
}

// planEMRText adds the EMRTEXT at off together with its string and spacing
// array. The rectangle is absent when fOptions carries ETO_NO_RECT, unless
// rectAlways is set (POLYTEXTOUT entries are always full size).
func planEMRText(p *planner, off int, wide, rectAlways bool) error {
	nChars, err := p.count(off + format.EMRTextCharsOffset)
	if err != nil {
		return err
	}
	offString, err := p.count(off + format.EMRTextStringOffset)
	if err != nil {
		return err
	}
	opts, err := p.u32(off + format.EMRTextOptionsOffset)
	if err != nil {
		return err
	}
	hasRect := rectAlways || opts&format.ETONoRect == 0
	dxField := off + format.EMRTextRectOffset
	fixedWords := 5 // ptlReference, nChars, offString, fOptions
	if hasRect {
		dxField += format.RectLSize
		fixedWords += 4
	}
	fixedWords++ // offDx
	offDx, err := p.count(dxField)
	if err != nil {
		return err
	}
	if err := p.words(off, fixedWords); err != nil {
		return err
	}
	if wide && nChars > 0 && offString > 0 {
		if err := p.halves(offString, nChars); err != nil {
			return err
		}
	}
	if nChars > 0 && offDx > 0 {
		n := nChars
		if opts&format.ETOPDY != 0 {
			n *= 2
		}
		return p.words(offDx, n)
	}
	return nil
}

func planTextA(p *planner) error {
	return planEMRText(p, format.ExtTextOutTextOffset, false, false)
}

func planTextW(p *planner) error {
	return planEMRText(p, format.ExtTextOutTextOffset, true, false)
}

func planPolyText(p *planner, wide bool) error {
	n, err := p.count(format.PolyTextOutCountOffset)
	if err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		if err := planEMRText(p, format.PolyTextOutTextsOffset+i*format.EMRTextSize, wide, true); err != nil {
			return err
		}
	}
	return nil
}

func planPolyTextA(p *planner) error { return planPolyText(p, false) }
func planPolyTextW(p *planner) error { return planPolyText(p, true) }

// POLYPOLYLINE16 / POLYPOLYGON16: bounds, nPolys, cpts, polygon counts, points.
func planPolyPoly16(p *planner) error {
	nPolys, err := p.count(0x18)
	if err != nil {
		return err
	}
	cpts, err := p.count(0x1C)
	if err != nil {
		return err
	}
	if err := p.words(8, 6); err != nil {
		return err
	}
	if err := p.words(0x20, nPolys); err != nil {
		return err
	}
	return p.halves(0x20+4*nPolys, 2*cpts)
}

func planSmallTextOut(p *planner) error {
	nChars, err := p.count(format.SmallTextOutCharsOffset)
	if err != nil {
		return err
	}
	opts, err := p.u32(format.SmallTextOutOptsOffset)
	if err != nil {
		return err
	}
	if err := p.wordRange(8, format.SmallTextOutFixedSize); err != nil {
		return err
	}
	text := format.SmallTextOutFixedSize
	if opts&format.ETONoRect == 0 {
		if err := p.words(text, 4); err != nil {
			return err
		}
		text += format.RectLSize
	}
	if opts&format.ETOSmallChars != 0 {
		return nil
	}
	return p.halves(text, nChars)
}

func planGradientFill(p *planner) error {
	nVert, err := p.count(0x18)
	if err != nil {
		return err
	}
	nObj, err := p.count(0x1C)
	if err != nil {
		return err
	}
	mode, err := p.u32(0x20)
	if err != nil {
		return err
	}
	if err := p.words(8, 7); err != nil {
		return err
	}
	const vertexSize = 16 // x, y, then four 16-bit channels
	off := 0x24
	for i := 0; i < nVert; i++ {
		if err := p.words(off, 2); err != nil {
			return err
		}
		if err := p.halves(off+8, 4); err != nil {
			return err
		}
		off += vertexSize
	}
	per := 2
	if mode == format.GradientFillTriangle {
		per = 3
	}
	return p.words(off, nObj*per)
}
