package dib

import (
	"image"
	"io"

	"golang.org/x/image/bmp"
)

// Image returns b as an *image.NRGBA. Depths 16 and 24 carry no alpha and
// come back opaque.
func (b *Bitmap) Image() (*image.NRGBA, error) {
	px, err := b.RGBA()
	if err != nil {
		return nil, err
	}
	if b.Depth == 16 || b.Depth == 24 {
		for i := 3; i < len(px); i += 4 {
			px[i] = 0xFF
		}
	}
	return &image.NRGBA{
		Pix:    px,
		Stride: 4 * b.Width,
		Rect:   image.Rect(0, 0, b.Width, b.Height),
	}, nil
}

// FromImage converts any image.Image to a Bitmap.
func FromImage(img image.Image, opts Options) (*Bitmap, error) {
	r := img.Bounds()
	nrgba, ok := img.(*image.NRGBA)
	if !ok || r.Min != (image.Point{}) {
		nrgba = image.NewNRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
		for y := range r.Dy() {
			for x := range r.Dx() {
				nrgba.Set(x, y, img.At(r.Min.X+x, r.Min.Y+y))
			}
		}
	}
	return FromRGBA(nrgba.Pix, r.Dx(), r.Dy(), nrgba.Stride, opts)
}

// WriteBMP encodes b as a standalone .bmp file.
func (b *Bitmap) WriteBMP(w io.Writer) error {
	img, err := b.Image()
	if err != nil {
		return err
	}
	return bmp.Encode(w, img)
}

// DecodeBMP reads a .bmp file into a Bitmap at the requested depth.
func DecodeBMP(r io.Reader, opts Options) (*Bitmap, error) {
	img, err := bmp.Decode(r)
	if err != nil {
		return nil, err
	}
	return FromImage(img, opts)
}
