// Package metafile provides the caller-owned sessions for EMF files.
//
// A Writer accumulates records, tracks object handles and, at Finish, patches
// the header totals and optionally converts the stream to big-endian order:
//
//	w := metafile.NewWriter()
//	hdr, _ := records.Header(records.HeaderSpec{...})
//	_ = w.Append(hdr)
//	brush, _ := w.CreateObject(func(h uint32) ([]byte, error) {
//		return records.CreateBrushIndirect(h, records.SolidBrush(records.RGB(255, 0, 0))), nil
//	})
//	_ = w.SelectObject(brush)
//	_ = w.Append(records.Rectangle(emf.RectL{Right: 100, Bottom: 100}))
//	_ = w.Append(records.EOF(nil))
//	err := w.Save("out.emf", binary.LittleEndian)
//
// A File wraps an existing stream, memory mapped when opened from disk, and
// walks it with the record iterator:
//
//	f, err := metafile.Open("in.emf")
//	defer f.Close()
//	sum, err := f.Walk(func(rec emf.Record) error { ... })
//
// Sessions are not safe for concurrent use. Independent sessions share
// nothing and may run on separate goroutines.
package metafile
