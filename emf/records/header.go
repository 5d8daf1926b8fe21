package records

import (
	"math"

	"github.com/joshuapare/emfkit/emf"
	"github.com/joshuapare/emfkit/internal/format"
	"github.com/joshuapare/emfkit/internal/textenc"
)

// HeaderSpec describes the header record of a new stream.
type HeaderSpec struct {
	Bounds      emf.RectL // device units
	Frame       emf.RectL // .01 mm
	Device      emf.SizeL // reference device, pixels
	Millimeters emf.SizeL // reference device, mm
	// Description is stored as UTF-16 with a terminating NUL. Use
	// Description to build the conventional "application\0title\0" form.
	Description string
	PalEntries  uint32
	// Micrometers selects the 108-byte form and fills szlMicrometers from
	// Millimeters.
	Micrometers bool
}

// Description joins the application and title the way GDI does: each part
// NUL terminated, with the final NUL added when the record is built.
func Description(app, title string) string {
	return app + "\x00" + title + "\x00"
}

// Header builds an EMR_HEADER. nBytes, nRecords and nHandles describe a
// stream holding just this record; a writer patches them at finish.
func Header(spec HeaderSpec) ([]byte, error) {
	var desc []byte
	if spec.Description != "" {
		var err error
		if desc, err = textenc.EncodeUTF16Z(spec.Description); err != nil {
			return nil, err
		}
	}
	fixed := format.HeaderBaseSize
	if spec.Micrometers {
		fixed = format.HeaderExtension2Size
	}
	b := alloc(emf.EMRHeader, fixed+len(desc))

	h := emf.Header{
		Size:        uint32(len(b)),
		Bounds:      spec.Bounds,
		Frame:       spec.Frame,
		Signature:   format.HeaderSignature,
		Version:     format.HeaderVersion,
		Bytes:       uint32(len(b)),
		Records:     1,
		Handles:     1,
		PalEntries:  spec.PalEntries,
		Device:      spec.Device,
		Millimeters: spec.Millimeters,
	}
	if len(desc) > 0 {
		h.DescriptionLen = uint32(len(desc) / 2)
		h.DescriptionOff = uint32(fixed)
		copy(b[fixed:], desc)
	}
	if spec.Micrometers {
		h.Micrometers = emf.SizeL{CX: spec.Millimeters.CX * 1000, CY: spec.Millimeters.CY * 1000}
	}
	format.PutHeader(b, h)
	return b, nil
}

// DeviceSize returns szlDevice and szlMillimeters for a reference device of
// the given physical size and resolution in dots per millimeter.
func DeviceSize(widthMM, heightMM int32, dotsPerMM float64) (device, mm emf.SizeL) {
	device = emf.SizeL{
		CX: int32(math.Round(float64(widthMM) * dotsPerMM)),
		CY: int32(math.Round(float64(heightMM) * dotsPerMM)),
	}
	return device, emf.SizeL{CX: widthMM, CY: heightMM}
}

// DrawingSize returns rclBounds (device units) and rclFrame (.01 mm) for a
// drawing of the given physical size.
func DrawingSize(widthMM, heightMM int32, dotsPerMM float64) (bounds, frame emf.RectL) {
	bounds = emf.RectL{
		Right:  int32(math.Round(float64(widthMM) * dotsPerMM)),
		Bottom: int32(math.Round(float64(heightMM) * dotsPerMM)),
	}
	return bounds, emf.RectL{Right: widthMM * 100, Bottom: heightMM * 100}
}

// DotsPerMM converts a resolution in dots per inch.
func DotsPerMM(dpi float64) float64 { return dpi / 25.4 }

// PaletteEntry is a LOGPALETTEENTRY.
type PaletteEntry struct {
	Red, Green, Blue, Flags uint8
}

// EOF builds an EMR_EOF with an optional palette and the trailing nSizeLast.
func EOF(palette []PaletteEntry) []byte {
	b := alloc(emf.EMREOF, format.EOFSize+format.PaletteEntrySize*len(palette))
	format.PutU32(b, format.EOFPalEntriesOffset, uint32(len(palette)))
	format.PutU32(b, format.EOFPalOffsetOffset, format.EOFFixedSize)
	for i, e := range palette {
		o := format.EOFFixedSize + format.PaletteEntrySize*i
		b[o], b[o+1], b[o+2], b[o+3] = e.Red, e.Green, e.Blue, e.Flags
	}
	format.PutU32(b, len(b)-format.SizeLastFieldWidth, uint32(len(b)))
	return b
}

// Comment builds an EMR_COMMENT carrying data, padded to four bytes.
func Comment(data []byte) []byte {
	b := alloc(emf.EMRComment, format.CommentFixedSize+len(data))
	format.PutU32(b, format.CommentDataLenOffset, uint32(len(data)))
	copy(b[format.CommentFixedSize:], data)
	return b
}

// TextComment builds a comment holding s and a terminating NUL.
func TextComment(s string) []byte {
	return Comment(append([]byte(s), 0))
}
