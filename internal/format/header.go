package format

import "fmt"

// Header captures EMR_HEADER. The diagram next to the Header* offset
// constants lists every field; the extension fields are zero when the record
// is too short to carry them.
type Header struct {
	Size           uint32 // nSize of the header record itself
	Bounds         RectL
	Frame          RectL
	Signature      uint32
	Version        uint32
	Bytes          uint32
	Records        uint32
	Handles        uint16
	Reserved       uint16
	DescriptionLen uint32 // UTF-16 code units
	DescriptionOff uint32
	PalEntries     uint32
	Device         SizeL
	Millimeters    SizeL
	PixelFormatLen uint32
	PixelFormatOff uint32
	OpenGL         uint32
	Micrometers    SizeL
}

// HeaderForm returns the fixed size of a header record: 88, 100 or 108. The
// fixed part ends where the first variable block (description or pixel
// format) begins, or at nSize when there is none. pfLen and pfOff are only
// consulted when the fixed part could reach the first extension.
func HeaderForm(size, descLen, descOff, pfLen, pfOff uint32) int {
	end := size
	if descLen > 0 && descOff >= HeaderBaseSize && descOff < end {
		end = descOff
	}
	if end >= HeaderExtension1Size && pfLen > 0 && pfOff >= HeaderExtension1Size && pfOff < end {
		end = pfOff
	}
	switch {
	case end >= HeaderExtension2Size:
		return HeaderExtension2Size
	case end >= HeaderExtension1Size:
		return HeaderExtension1Size
	default:
		return HeaderBaseSize
	}
}

// Form returns the fixed size of h.
func (h Header) Form() int {
	return HeaderForm(h.Size, h.DescriptionLen, h.DescriptionOff, h.PixelFormatLen, h.PixelFormatOff)
}

// HasExtension1 reports whether the pixel format fields are present.
func (h Header) HasExtension1() bool { return h.Form() >= HeaderExtension1Size }

// HasExtension2 reports whether szlMicrometers is present.
func (h Header) HasExtension2() bool { return h.Form() >= HeaderExtension2Size }

// ParseHeader extracts the EMR_HEADER fields from the start of b. When the
// signature is wrong the decoded header is still returned alongside
// ErrSignatureMismatch so callers can report what they found.
func ParseHeader(b []byte) (Header, error) {
	if len(b) < HeaderBaseSize {
		return Header{}, fmt.Errorf("emf header: %w", ErrTruncated)
	}
	if t := RecordType(ReadU32(b, RecordTypeOffset)); t != EMRHeader {
		return Header{}, fmt.Errorf("emf header: %w: %s", ErrWrongType, t)
	}
	h := Header{
		Size:           ReadU32(b, RecordSizeOffset),
		Bounds:         ReadRectL(b, HeaderBoundsOffset),
		Frame:          ReadRectL(b, HeaderFrameOffset),
		Signature:      ReadU32(b, HeaderSignatureOffset),
		Version:        ReadU32(b, HeaderVersionOffset),
		Bytes:          ReadU32(b, HeaderBytesOffset),
		Records:        ReadU32(b, HeaderRecordsOffset),
		Handles:        ReadU16(b, HeaderHandlesOffset),
		Reserved:       ReadU16(b, HeaderReservedOffset),
		DescriptionLen: ReadU32(b, HeaderDescriptionLenOffset),
		DescriptionOff: ReadU32(b, HeaderDescriptionOffset),
		PalEntries:     ReadU32(b, HeaderPalEntriesOffset),
		Device:         ReadSizeL(b, HeaderDeviceOffset),
		Millimeters:    ReadSizeL(b, HeaderMillimetersOffset),
	}
	if len(b) >= HeaderExtension1Size {
		h.PixelFormatLen = ReadU32(b, HeaderPixelFormatLenOffset)
		h.PixelFormatOff = ReadU32(b, HeaderPixelFormatOffset)
	}
	switch form := h.Form(); {
	case form > len(b):
		return Header{}, fmt.Errorf("emf header: %w", ErrTruncated)
	case form >= HeaderExtension1Size:
		h.OpenGL = ReadU32(b, HeaderOpenGLOffset)
		if form >= HeaderExtension2Size {
			h.Micrometers = ReadSizeL(b, HeaderMicrometersOffset)
		}
	default:
		h.PixelFormatLen, h.PixelFormatOff = 0, 0
	}
	if h.Signature != HeaderSignature {
		return h, fmt.Errorf("emf header: %w", ErrSignatureMismatch)
	}
	return h, nil
}

// PutHeader writes the fixed fields of h into b, which must be at least
// h.Size bytes long. iType is set to EMRHeader.
func PutHeader(b []byte, h Header) {
	PutU32(b, RecordTypeOffset, uint32(EMRHeader))
	PutU32(b, RecordSizeOffset, h.Size)
	PutRectL(b, HeaderBoundsOffset, h.Bounds)
	PutRectL(b, HeaderFrameOffset, h.Frame)
	PutU32(b, HeaderSignatureOffset, h.Signature)
	PutU32(b, HeaderVersionOffset, h.Version)
	PutU32(b, HeaderBytesOffset, h.Bytes)
	PutU32(b, HeaderRecordsOffset, h.Records)
	PutU16(b, HeaderHandlesOffset, h.Handles)
	PutU16(b, HeaderReservedOffset, h.Reserved)
	PutU32(b, HeaderDescriptionLenOffset, h.DescriptionLen)
	PutU32(b, HeaderDescriptionOffset, h.DescriptionOff)
	PutU32(b, HeaderPalEntriesOffset, h.PalEntries)
	PutSizeL(b, HeaderDeviceOffset, h.Device)
	PutSizeL(b, HeaderMillimetersOffset, h.Millimeters)
	if h.HasExtension1() {
		PutU32(b, HeaderPixelFormatLenOffset, h.PixelFormatLen)
		PutU32(b, HeaderPixelFormatOffset, h.PixelFormatOff)
		PutU32(b, HeaderOpenGLOffset, h.OpenGL)
	}
	if h.HasExtension2() {
		PutSizeL(b, HeaderMicrometersOffset, h.Micrometers)
	}
}
