package endian

import (
	"bytes"
	"testing"
)

// FuzzSwap checks that Swap either fails without touching the buffer or
// can be undone exactly.
func FuzzSwap(f *testing.F) {
	f.Add(stream(header(), textColor(), polyline16(), extTextOutW(), stretchDIBits(), eof()))
	f.Add(stream(header(), eof()))
	f.Add(stream(header(), polyline16())[:60])
	f.Add([]byte{})

	f.Fuzz(func(t *testing.T, data []byte) {
		b := bytes.Clone(data)
		if err := Swap(b, true); err != nil {
			if !bytes.Equal(b, data) {
				t.Fatalf("failed swap modified the buffer: %v", err)
			}
			return
		}
		if err := Swap(b, false); err != nil {
			t.Fatalf("swapping back: %v", err)
		}
		if !bytes.Equal(b, data) {
			t.Fatal("swap is not an involution")
		}
	})
}
