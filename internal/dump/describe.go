package dump

import (
	"fmt"
	"strings"

	"github.com/joshuapare/emfkit/emf"
	"github.com/joshuapare/emfkit/emf/dib"
	"github.com/joshuapare/emfkit/emf/records"
)

// Describe summarizes a decoded record on one line. Records without a
// decoded form describe as "".
func Describe(body records.Body) string {
	switch b := body.(type) {
	case records.HeaderBody:
		s := fmt.Sprintf("bounds %s frame %s bytes=%d records=%d handles=%d device=%dx%d mm=%dx%d",
			rect(b.Bounds), rect(b.Frame), b.Bytes, b.Records, b.Handles,
			b.Device.CX, b.Device.CY, b.Millimeters.CX, b.Millimeters.CY)
		if b.Description != "" {
			s += fmt.Sprintf(" description=%q", b.Description)
		}
		return s
	case records.EOFBody:
		return fmt.Sprintf("palette=%d", len(b.Palette))
	case records.CommentBody:
		return fmt.Sprintf("%d bytes%s", len(b.Data), commentText(b.Data))
	case records.HandleBody:
		return "handle " + stockName(b.Handle)
	case records.BrushBody:
		return fmt.Sprintf("handle %d style=%d color=%s hatch=%d", b.Handle, b.Brush.Style, color(b.Brush.Color), b.Brush.Hatch)
	case records.ValueBody:
		switch b.Kind {
		case emf.EMRSetTextColor, emf.EMRSetBkColor:
			v := b.Value
			return color(records.RGB(uint8(v), uint8(v>>8), uint8(v>>16)))
		case emf.EMRRestoreDC:
			return fmt.Sprintf("%d", int32(b.Value))
		}
		return fmt.Sprintf("%d", b.Value)
	case records.PointBody:
		return point(b.Point)
	case records.BoxBody:
		return rect(b.Rect)
	case records.Poly16Body:
		return fmt.Sprintf("%d points bounds %s", len(b.Points), rect(b.Bounds))
	case records.StretchDIBitsBody:
		s := fmt.Sprintf("dest %s %dx%d src %s %dx%d rop=0x%08X",
			point(b.Dest), b.DestExt.CX, b.DestExt.CY, point(b.Src), b.SrcExt.CX, b.SrcExt.CY, b.Rop)
		if h, err := dib.ParseInfoHeader(b.Info()); err == nil {
			s += fmt.Sprintf(" dib %dx%d@%d", h.Width, h.Height, h.BitCount)
		}
		return s
	case records.TextOutBody:
		return fmt.Sprintf("%q at %s options=0x%04X dx=%d", b.Text.String, point(b.Text.Reference), b.Text.Options, len(b.Text.Dx))
	case records.SmallTextOutBody:
		return fmt.Sprintf("%q at %s options=0x%04X", b.String, point(b.Reference), b.Options)
	}
	return ""
}

func rect(r emf.RectL) string {
	return fmt.Sprintf("(%d,%d)-(%d,%d)", r.Left, r.Top, r.Right, r.Bottom)
}

func point(p emf.PointL) string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

func color(c records.ColorRef) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// commentText shows a comment payload when it is printable text.
func commentText(data []byte) string {
	s := strings.TrimRight(string(data), "\x00")
	if s == "" || len(s) > 80 {
		return ""
	}
	for _, r := range s {
		if r < 0x20 || r == 0x7F || r == 0xFFFD {
			return ""
		}
	}
	return fmt.Sprintf(" %q", s)
}
