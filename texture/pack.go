package texture

import (
	"errors"
	"fmt"
)

// Neutral channel values used when an optional packing input is absent.
// The conventions are: not metallic, fully unoccluded, half smooth.
const (
	DefaultMetallic   = 0.0
	DefaultOcclusion  = 1.0
	DefaultSmoothness = 0.5
)

// PackRequest carries the inputs of one packing operation. Metallic,
// Occlusion and Roughness are optional; Sizing is the set of candidate
// images whose resolutions must agree before any pixel is read. Callers
// are expected to include every image they supply, sampled or not, in
// Sizing.
type PackRequest struct {
	Metallic  *Image
	Occlusion *Image
	Roughness *Image
	Sizing    []*Image
}

// Invert returns a new image with inverted RGB channels and alpha copied
// through. Channel values outside [0, 1] invert to values outside [0, 1];
// no clamping is performed.
func Invert(src *Image) (*Image, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	out, err := New(src.Width, src.Height)
	if err != nil {
		return nil, err
	}
	for i := 0; i < len(src.Pix); i += 4 {
		out.Pix[i] = 1 - src.Pix[i]
		out.Pix[i+1] = 1 - src.Pix[i+1]
		out.Pix[i+2] = 1 - src.Pix[i+2]
		out.Pix[i+3] = src.Pix[i+3]
	}
	out.Finalize()
	return out, nil
}

// Pack combines the request's single-channel inputs into one RGBA image:
// R takes the metallic map's red channel, G the occlusion map's red
// channel, A the smoothness (inverted roughness) red channel. B is
// reserved and always zero. Absent inputs fall back to the package
// defaults. Output dimensions come from the first non-nil sizing member.
func Pack(req PackRequest) (*Image, error) {
	ref, err := checkSizing(req.Sizing)
	if err != nil {
		return nil, err
	}
	if err := checkSampled(ref, req.Metallic, req.Occlusion, req.Roughness); err != nil {
		return nil, err
	}

	var smoothness *Image
	if req.Roughness != nil {
		if smoothness, err = Invert(req.Roughness); err != nil {
			return nil, err
		}
	}

	out, err := New(ref.Width, ref.Height)
	if err != nil {
		return nil, err
	}
	for y := 0; y < ref.Height; y++ {
		for x := 0; x < ref.Width; x++ {
			c := Color{R: DefaultMetallic, G: DefaultOcclusion, B: 0, A: DefaultSmoothness}
			if req.Metallic != nil {
				c.R = req.Metallic.At(x, y).R
			}
			if req.Occlusion != nil {
				c.G = req.Occlusion.At(x, y).R
			}
			if smoothness != nil {
				c.A = smoothness.At(x, y).R
			}
			out.Set(x, y, c)
		}
	}
	out.Finalize()
	return out, nil
}

// SameSize reports whether every non-nil image in imgs shares one common
// width and height. An empty or all-nil set is trivially consistent.
func SameSize(imgs []*Image) bool {
	_, err := checkSizing(imgs)
	return err == nil || errors.Is(err, ErrNoReferenceDimension)
}

// checkSizing validates the sizing set and returns its first non-nil
// member as the dimension reference.
func checkSizing(imgs []*Image) (*Image, error) {
	var ref *Image
	for _, im := range imgs {
		if im == nil {
			continue
		}
		if ref == nil {
			ref = im
			continue
		}
		if im.Width != ref.Width || im.Height != ref.Height {
			return nil, fmt.Errorf("sizing set holds %dx%d and %dx%d images: %w",
				ref.Width, ref.Height, im.Width, im.Height, ErrSizeMismatch)
		}
	}
	if ref == nil {
		return nil, ErrNoReferenceDimension
	}
	return ref, nil
}

// checkSampled guards sampled inputs that the caller left out of the
// sizing set. Sampling is by identical coordinates, so a stray
// mismatched input is still a precondition failure, not an index panic.
func checkSampled(ref *Image, imgs ...*Image) error {
	for _, im := range imgs {
		if im == nil {
			continue
		}
		if im.Width != ref.Width || im.Height != ref.Height {
			return fmt.Errorf("sampled input is %dx%d, reference is %dx%d: %w",
				im.Width, im.Height, ref.Width, ref.Height, ErrSizeMismatch)
		}
	}
	return nil
}
