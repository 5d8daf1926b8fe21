package writer

// MemWriter captures a stream in memory.
type MemWriter struct {
	Buf []byte
}

// WriteStream copies buf, reusing the previous backing array when it fits.
func (w *MemWriter) WriteStream(buf []byte) error {
	w.Buf = append(w.Buf[:0], buf...)
	return nil
}
