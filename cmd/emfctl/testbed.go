package main

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/emfkit/emf"
	"github.com/joshuapare/emfkit/emf/dib"
	"github.com/joshuapare/emfkit/emf/endian"
	"github.com/joshuapare/emfkit/emf/handles"
	"github.com/joshuapare/emfkit/emf/records"
	"github.com/joshuapare/emfkit/internal/textenc"
	"github.com/joshuapare/emfkit/pkg/metafile"
)

const testbedDotsPerMM = 47.244094 // 1200 dpi

var errChecksFailed = errors.New("testbed: self-checks failed")

func newTestbedCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "testbed <out>",
		Short: "Generate a demonstration file that exercises every record builder",
		Long: `The testbed command draws a page of shapes, paths, bitmaps at every DIB depth
and text, and writes it to <out>. Before saving it checks that every
RGBA->DIB->RGBA conversion round-trips, that text transcoding round-trips and
that swapping the byte order twice restores the stream.

Example:
  emfctl testbed demo.emf
  emfctl testbed demo.be.emf --order big`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return a.runTestbed(args[0])
		},
	}
	cmd.Flags().String("order", "little", "Byte order of the written file: little or big")
	cmd.Flags().Int("initial-capacity", 1<<20, "Initial record buffer size in bytes")
	cmd.Flags().Int("max-size", 0, "Largest stream the writer may grow to (0 = format limit)")
	return cmd
}

type check struct {
	Name string `json:"name"`
	OK   bool   `json:"ok"`
}

type testbedJSON struct {
	Path    string  `json:"path"`
	Order   string  `json:"order"`
	Records int     `json:"records"`
	Bytes   int     `json:"bytes"`
	Checks  []check `json:"checks"`
}

func (a *app) runTestbed(path string) error {
	var order binary.ByteOrder = binary.LittleEndian
	switch a.cfg.TestbedOrder {
	case "big", "be":
		order = binary.BigEndian
	case "little", "le":
	default:
		return fmt.Errorf("testbed: unknown byte order %q (want big or little)", a.cfg.TestbedOrder)
	}

	w := metafile.NewWriter(
		metafile.WithInitialCapacity(a.cfg.InitialCapacity),
		metafile.WithMaxSize(a.cfg.MaxSize),
	)
	tb := &testbed{w: w}
	if err := tb.build(); err != nil {
		w.Abort()
		return err
	}
	tb.checkInvolution()

	count, size := w.Records(), w.Used()
	failed := false
	for _, c := range tb.checks {
		failed = failed || !c.OK
	}
	if failed {
		w.Abort()
	} else if err := w.Save(path, order); err != nil {
		return err
	}

	if a.cfg.JSON {
		if err := a.printJSON(testbedJSON{
			Path:    path,
			Order:   orderName(order == binary.BigEndian),
			Records: count,
			Bytes:   size,
			Checks:  tb.checks,
		}); err != nil {
			return err
		}
	} else {
		for _, c := range tb.checks {
			status := "ok  "
			if !c.OK {
				status = "FAIL"
			}
			a.infof("%s %s\n", status, c.Name)
		}
		if !failed {
			a.printf("wrote %s: %d records, %d bytes, %s-endian\n", path, count, size, orderName(order == binary.BigEndian))
		}
	}
	if failed {
		return errChecksFailed
	}
	return nil
}

// testbed accumulates the demonstration drawing. The first append error
// sticks and ends the build.
type testbed struct {
	w      *metafile.Writer
	checks []check
	font   uint32
	err    error
}

func (tb *testbed) add(recs ...[]byte) {
	if tb.err == nil {
		tb.err = tb.w.AppendAll(recs...)
	}
}

func (tb *testbed) addErr(rec []byte, err error) {
	if tb.err == nil && err != nil {
		tb.err = err
		return
	}
	tb.add(rec)
}

func (tb *testbed) object(build func(h uint32) ([]byte, error)) uint32 {
	if tb.err != nil {
		return 0
	}
	h, err := tb.w.CreateObject(build)
	tb.err = err
	return h
}

func (tb *testbed) selectObject(h uint32) {
	if tb.err == nil {
		tb.err = tb.w.SelectObject(h)
	}
}

func (tb *testbed) deleteObject(h uint32) {
	if tb.err == nil {
		tb.err = tb.w.DeleteObject(h)
	}
}

func (tb *testbed) check(name string, ok bool) {
	tb.checks = append(tb.checks, check{Name: name, OK: ok})
}

func (tb *testbed) build() error {
	tb.checkTranscoding()

	device, mm := records.DeviceSize(216, 279, testbedDotsPerMM) // letter, portrait
	bounds, frame := records.DrawingSize(297, 210, testbedDotsPerMM)
	hdr, err := records.Header(records.HeaderSpec{
		Bounds:      bounds,
		Frame:       frame,
		Device:      device,
		Millimeters: mm,
		Description: records.Description("Test EMF", "produced by the emfctl testbed"),
	})
	tb.addErr(hdr, err)
	tb.add(
		records.TextComment("First comment"),
		records.TextComment("Second comment"),
		records.SetMapMode(records.MMText),
		records.SetBkMode(records.Transparent),
		records.SetMiterLimit(8),
		records.SetPolyFillMode(records.Winding),
	)

	brush := tb.object(func(h uint32) ([]byte, error) {
		return records.CreateBrushIndirect(h, records.SolidBrush(records.RGB(196, 127, 255))), nil
	})
	tb.selectObject(brush)
	pen := tb.object(func(h uint32) ([]byte, error) {
		return records.ExtCreatePen(h, records.ExtLogPen{
			Style:      records.PSSolid | records.PSEndCapSquare | records.PSJoinMiter | records.PSGeometric,
			Width:      50,
			BrushStyle: records.BSSolid,
			Color:      records.RGB(127, 255, 196),
			Hatch:      records.HSHorizontal,
		}), nil
	})
	tb.selectObject(pen)

	tb.shapes(frame)

	tb.selectObject(handles.BlackPen)
	tb.selectObject(handles.GrayBrush)
	tb.deleteObject(brush)
	tb.deleteObject(pen)

	tb.bitmaps()

	for i := uint32(0); i < 16; i++ {
		x := 2900 + 100*int32(i)
		tb.add(
			records.SetROP2(i+1),
			records.Rectangle(emf.RectL{Left: x, Top: 5000, Right: x + 90, Bottom: 9019}),
		)
	}
	tb.add(records.SetROP2(records.R2CopyPen))

	tb.text()
	for _, col := range []struct {
		x     int32
		align uint32
	}{{8000, records.TABaseline}, {8600, records.TATop}, {9200, records.TABottom}} {
		tb.spinText(col.x, 300, col.align)
	}
	tb.add(records.SetTextAlign(records.TABaseline))
	if tb.font != 0 {
		tb.selectObject(handles.DeviceDefaultFont)
		tb.deleteObject(tb.font)
	}

	tb.add(records.EOF(nil))
	return tb.err
}

func (tb *testbed) shapes(frame emf.RectL) {
	tb.add(
		records.Ellipse(emf.RectL{Left: 100, Top: 1300, Right: 400, Bottom: 1600}),
		records.StrokeAndFillPath(frame),
		records.Rectangle(emf.RectL{Left: 500, Top: 1300, Right: 800, Bottom: 1600}),
		records.StrokeAndFillPath(frame),

		records.BeginPath(),
		records.MoveToEx(900, 1300),
		records.LineTo(1200, 1500),
		records.LineTo(1200, 1700),
		records.LineTo(900, 1500),
		records.CloseFigure(),
		records.EndPath(),
		records.StrokeAndFillPath(frame),

		records.Polygon16(records.Points16(1300, 1300, 1500, 1500, 1500, 1700, 1300, 1900, 1100, 1700, 1100, 1500)),
		records.Polyline16(records.Points16(2000, 1300, 2100, 1600, 1900, 1400, 2100, 1400, 1900, 1600)),

		records.BeginPath(),
		records.MoveToEx(2300, 1300),
		records.PolyBezierTo16(records.Points16(2400, 1200, 2500, 1700, 2600, 1300)),
		records.PolylineTo16(records.Points16(2600, 1600, 2300, 1600)),
		records.CloseFigure(),
		records.EndPath(),
		records.FillPath(frame),

		records.BeginPath(),
		records.MoveToEx(2800, 1300),
		records.LineTo(3000, 1500),
		records.AbortPath(),
		records.SaveDC(),
		records.SetPolyFillMode(records.Alternate),
		records.RestoreDC(-1),
	)
}

// bitmaps places one STRETCHDIBITS per depth, plus negative-height copies
// of the 16-bit and monochrome images, after checking each conversion.
func (tb *testbed) bitmaps() {
	tb.add(records.SetStretchBltMode(records.ColorOnColor))

	gradient := dib.Gradient(10, 10, 40)
	small := dib.Gradient(4, 4, 16)
	mono := bytes.Repeat([]byte{0x55}, 4*4*4)
	copy(mono, bytes.Repeat([]byte{0xAA}, 4*4*2))

	for _, img := range []struct {
		depth   int
		rgba    []byte
		w, h    int
		at      emf.PointL
		match   func(a, b []byte) bool
		flipped emf.PointL
	}{
		{32, gradient, 10, 10, emf.PointL{X: 5000, Y: 5000}, bytes.Equal, emf.PointL{}},
		{24, gradient, 10, 10, emf.PointL{X: 7020, Y: 5000}, sameRGB(0xFF), emf.PointL{}},
		{16, gradient, 10, 10, emf.PointL{X: 9040, Y: 5000}, sameRGB(0xF8), emf.PointL{X: 11060, Y: 5000}},
		{8, gradient, 10, 10, emf.PointL{X: 5000, Y: 7020}, bytes.Equal, emf.PointL{}},
		{4, small, 4, 4, emf.PointL{X: 7020, Y: 7020}, bytes.Equal, emf.PointL{}},
		{1, mono, 4, 4, emf.PointL{X: 9040, Y: 7020}, bytes.Equal, emf.PointL{X: 11060, Y: 7020}},
	} {
		bm, err := dib.FromRGBA(img.rgba, img.w, img.h, 4*img.w, dib.Options{Depth: img.depth})
		if err != nil {
			tb.err = err
			return
		}
		back, err := bm.RGBA()
		tb.check(fmt.Sprintf("RGBA->DIB->RGBA %d-bit", img.depth), err == nil && img.match(img.rgba, back))

		st := records.Stretch{
			Dest:    img.at,
			DestExt: emf.SizeL{CX: 2000, CY: 2000},
			Usage:   records.DIBRGBColors,
			Rop:     records.SrcCopy,
		}
		tb.add(records.StretchDIBits(st, bm))
		if img.flipped != (emf.PointL{}) {
			upside := *bm
			upside.TopDown = !bm.TopDown
			st.Dest = img.flipped
			tb.add(records.StretchDIBits(st, &upside))
		}
	}
}

// sameRGB compares the color channels under mask and ignores alpha, which
// direct-color depths below 32 do not store.
func sameRGB(mask byte) func(a, b []byte) bool {
	return func(a, b []byte) bool {
		if len(a) != len(b) {
			return false
		}
		for i := range a {
			if i%4 != 3 && a[i]&mask != b[i]&mask {
				return false
			}
		}
		return true
	}
}

func (tb *testbed) text() {
	face := "Arial"
	tb.font = tb.object(func(h uint32) ([]byte, error) {
		return records.ExtCreateFontIndirectW(h, records.FontSpec{
			LogFont:  records.LogFont{Height: -300, Weight: records.FWBold, CharSet: records.ANSICharset, FaceName: face},
			FullName: face,
			Style:    "Bold",
		})
	})
	tb.selectObject(tb.font)

	tb.add(records.SetTextColor(records.RGB(255, 0, 0)))
	tb.addErr(records.SmallTextOut(records.SmallText{
		Reference: emf.PointL{X: 100, Y: 50},
		String:    "Text8 from EMR_SMALLTEXTOUT",
		Options:   records.ETOSmallChars | records.ETONoRect,
		Mode:      records.GMCompatible,
		XScale:    1,
		YScale:    1,
	}))
	tb.add(records.SetTextColor(records.RGB(0, 255, 0)))
	tb.addErr(records.SmallTextOut(records.SmallText{
		Reference: emf.PointL{X: 100, Y: 350},
		String:    "Text16 from EMR_SMALLTEXTOUT",
		Options:   records.ETONone,
		Mode:      records.GMCompatible,
		XScale:    1,
		YScale:    1,
	}))
	tb.add(records.SetTextColor(records.RGB(0, 0, 255)))
	s := "Text8 from EMR_EXTTEXTOUTA"
	tb.addErr(records.ExtTextOutA(emf.RectL{}, records.GMCompatible, 1, 1, records.Text{
		Reference: emf.PointL{X: 100, Y: 650},
		String:    s,
		Rect:      emf.RectL{Right: -1, Bottom: -1},
		Dx:        records.Advances(-300, records.FWNormal, len(s)),
	}))
	tb.add(
		records.SetTextColor(records.RGB(0, 0, 0)),
		records.SetBkColor(records.RGB(255, 255, 255)),
		records.SetTextAlign(records.TALeft|records.TATop|records.TANoUpdateCP),
	)
}

// spinText writes a column of rotated labels, one font per angle.
func (tb *testbed) spinText(x, y int32, align uint32) {
	tb.add(records.SetTextAlign(align))
	for angle := int32(0); angle < 3600; angle += 300 {
		tb.selectObject(handles.DeviceDefaultFont)
		if tb.font != 0 {
			tb.deleteObject(tb.font)
		}
		tb.font = tb.object(func(h uint32) ([]byte, error) {
			return records.ExtCreateFontIndirectW(h, records.FontSpec{
				LogFont: records.LogFont{
					Height:      -30,
					Escapement:  angle,
					Orientation: angle,
					Weight:      records.FWNormal,
					CharSet:     records.ANSICharset,
					FaceName:    "Courier New",
				},
				FullName: "Courier New",
				Style:    "Normal",
			})
		})
		tb.selectObject(tb.font)

		s := fmt.Sprintf("....Degrees:%d", angle/10)
		tb.addErr(records.ExtTextOutW(emf.RectL{}, records.GMCompatible, 1, 1, records.Text{
			Reference: emf.PointL{X: x, Y: y},
			String:    s,
			Dx:        records.Advances(-30, records.FWNormal, len(s)),
		}))
	}
}

// checkTranscoding passes a string through every UTF conversion.
func (tb *testbed) checkTranscoding() {
	const want = "Ever play telegraph?"
	ok := func() bool {
		u16, err := textenc.EncodeUTF16(want)
		if err != nil {
			return false
		}
		u32, err := textenc.UTF16ToUTF32(u16)
		if err != nil {
			return false
		}
		if u16, err = textenc.UTF32ToUTF16(u32); err != nil {
			return false
		}
		s, err := textenc.DecodeUTF16(u16)
		if err != nil {
			return false
		}
		if u32, err = textenc.EncodeUTF32(s); err != nil {
			return false
		}
		s, err = textenc.DecodeUTF32(u32)
		return err == nil && s == want
	}()
	tb.check("UTF-8->16->32->16->8->32->8", ok)
}

// checkInvolution swaps a copy of the unfinished stream to big-endian and
// back and compares it with the original.
func (tb *testbed) checkInvolution() {
	orig := tb.w.Bytes()
	cp := bytes.Clone(orig)
	ok := endian.Swap(cp, true) == nil && !bytes.Equal(cp, orig) &&
		endian.Swap(cp, false) == nil && bytes.Equal(cp, orig)
	tb.check("endian native->foreign->native", ok)
}
