package dib

import "math"

// Gradient fills a w x h RGBA test image. Each channel ramps linearly along
// one diagonal so every depth exercises distinct colors:
//
//	R = min(255-x', 255-y')   G = min(x', 255-y')
//	B = min(x', y')           A = min(255-x', y')
//
// where x' and y' are the column and row scaled to 0..255.
func Gradient(width, height, stride int) []byte {
	if width <= 0 || height <= 0 || stride < 4*width {
		return nil
	}
	out := make([]byte, stride*(height-1)+4*width)
	for row := range height {
		yp := scale255(row, height)
		ym := 255 - yp
		for col := range width {
			xp := scale255(col, width)
			xm := 255 - xp
			px := out[row*stride+4*col:]
			px[0] = byte(min(xm, ym))
			px[1] = byte(min(xp, ym))
			px[2] = byte(min(xp, yp))
			px[3] = byte(min(xm, yp))
		}
	}
	return out
}

func scale255(i, n int) int {
	if n < 2 {
		return 0
	}
	return 255 * i / (n - 1)
}

// PositionIndex returns the color index PalettePosition assigns to the pixel
// at (row, col): its linear position scaled to the table size for depth,
// where the table never has more entries than the image has pixels.
func PositionIndex(row, col, width, height, depth int) int {
	n := TableCapacity(width, height, depth)
	if n <= 1 {
		return 0
	}
	scale := float64(n - 1)
	pos := float64(row*width + col)
	return int(math.Round(scale * pos / float64(width*height)))
}
