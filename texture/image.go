package texture

import (
	"fmt"
	"image"
	"image/color"
)

// Color is a single RGBA pixel with normalized [0, 1] channels.
type Color struct {
	R float64
	G float64
	B float64
	A float64
}

// Image is a fixed-size grid of RGBA pixels with float64 channels,
// normalized to [0, 1]. An Image starts out writable; once Finalize is
// called it is treated as immutable and transforms only ever read it.
type Image struct {
	// Pix holds the pixel channels in R, G, B, A order. The pixel at
	// (x, y) starts at Pix[(y*Width+x)*4].
	Pix    []float64
	Width  int
	Height int

	sealed bool
}

// New returns a writable all-zero Image of the given dimensions.
func New(width, height int) (*Image, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("invalid image dimensions %dx%d", width, height)
	}
	return &Image{
		Pix:    make([]float64, width*height*4),
		Width:  width,
		Height: height,
	}, nil
}

// FromImage samples src into a finalized Image, mapping each channel to
// [0, 1]. Alpha is kept non-premultiplied.
func FromImage(src image.Image) (*Image, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	bounds := src.Bounds()
	out, err := New(bounds.Dx(), bounds.Dy())
	if err != nil {
		return nil, err
	}
	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.NRGBA64Model.Convert(src.At(x, y)).(color.NRGBA64)
			out.Pix[i] = float64(c.R) / 65535
			out.Pix[i+1] = float64(c.G) / 65535
			out.Pix[i+2] = float64(c.B) / 65535
			out.Pix[i+3] = float64(c.A) / 65535
			i += 4
		}
	}
	out.Finalize()
	return out, nil
}

// At returns the pixel at (x, y).
func (im *Image) At(x, y int) Color {
	i := (y*im.Width + x) * 4
	return Color{
		R: im.Pix[i],
		G: im.Pix[i+1],
		B: im.Pix[i+2],
		A: im.Pix[i+3],
	}
}

// Set writes the pixel at (x, y). It panics if the image has been
// finalized.
func (im *Image) Set(x, y int, c Color) {
	if im.sealed {
		panic("texture: write to finalized image")
	}
	i := (y*im.Width + x) * 4
	im.Pix[i] = c.R
	im.Pix[i+1] = c.G
	im.Pix[i+2] = c.B
	im.Pix[i+3] = c.A
}

// Finalize marks the image immutable. Further Set calls panic.
func (im *Image) Finalize() {
	im.sealed = true
}

// Finalized reports whether the image has been finalized.
func (im *Image) Finalized() bool {
	return im.sealed
}

// NRGBA renders the image to an 8-bit *image.NRGBA for encoding.
// Channels are clamped to [0, 1] at this boundary only; transforms
// themselves never clamp.
func (im *Image) NRGBA() *image.NRGBA {
	out := image.NewNRGBA(image.Rect(0, 0, im.Width, im.Height))
	for i, j := 0, 0; i < len(im.Pix); i, j = i+4, j+4 {
		out.Pix[j] = quantize(im.Pix[i])
		out.Pix[j+1] = quantize(im.Pix[i+1])
		out.Pix[j+2] = quantize(im.Pix[i+2])
		out.Pix[j+3] = quantize(im.Pix[i+3])
	}
	return out
}

func quantize(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}
