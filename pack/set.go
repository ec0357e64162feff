package pack

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/nfnt/resize"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/vp8l"
	_ "golang.org/x/image/webp"

	"texpack/material"
	"texpack/texture"
)

// texSet names the source files of one texture set. Any role but the
// base color may be empty.
type texSet struct {
	Metallic  string
	Occlusion string
	Roughness string
	Color     string
	Normal    string
	Height    string
	Emission  string
}

type packOptions struct {
	outImage    string
	outMaterial string
	shader      string
	fit         bool
}

// packSet runs the whole pipeline for one texture set: decode the role
// files, optionally fit stray resolutions to the base color map, pack
// the mask image, save it, and write the material description next to
// it. Validation warnings on the assembled material are logged, not
// fatal.
func packSet(logger *slog.Logger, set texSet, opt packOptions) error {
	roles := []struct {
		name string
		path string
		img  *image.Image
	}{
		{"metallic", set.Metallic, new(image.Image)},
		{"occlusion", set.Occlusion, new(image.Image)},
		{"roughness", set.Roughness, new(image.Image)},
		{"color", set.Color, new(image.Image)},
		{"normal", set.Normal, new(image.Image)},
		{"height", set.Height, new(image.Image)},
		{"emission", set.Emission, new(image.Image)},
	}

	var ref image.Image
	for _, role := range roles {
		if role.path == "" {
			continue
		}
		img, err := imgio.Open(role.path)
		if err != nil {
			return fmt.Errorf("could not open %s map %q: %w", role.name, role.path, err)
		}
		*role.img = img
		if role.name == "color" {
			ref = img
		}
	}

	if opt.fit && ref != nil {
		want := ref.Bounds()
		for _, role := range roles {
			img := *role.img
			if img == nil || (img.Bounds().Dx() == want.Dx() && img.Bounds().Dy() == want.Dy()) {
				continue
			}
			logger.Info("fitting input to base color size", "role", role.name,
				"width", want.Dx(), "height", want.Dy())
			*role.img = resize.Resize(uint(want.Dx()), uint(want.Dy()), img, resize.Bilinear)
		}
	}

	// Every supplied role goes into the sizing set, sampled or not.
	req := texture.PackRequest{}
	for _, role := range roles {
		if *role.img == nil {
			continue
		}
		im, err := texture.FromImage(*role.img)
		if err != nil {
			return fmt.Errorf("could not read %s map %q: %w", role.name, role.path, err)
		}
		switch role.name {
		case "metallic":
			req.Metallic = im
		case "occlusion":
			req.Occlusion = im
		case "roughness":
			req.Roughness = im
		}
		req.Sizing = append(req.Sizing, im)
	}

	packed, err := texture.Pack(req)
	if err != nil {
		return fmt.Errorf("could not pack texture set: %w", err)
	}

	if err := imgio.Save(opt.outImage, packed.NRGBA(), imgio.PNGEncoder()); err != nil {
		return fmt.Errorf("could not save packed image %q: %w", opt.outImage, err)
	}

	m, err := material.Assemble(material.RoleSet{
		BaseColor: set.Color,
		Normal:    set.Normal,
		Height:    set.Height,
		Emission:  set.Emission,
	}, opt.outImage, &material.AssembleOptions{Shader: opt.shader})
	if err != nil {
		return fmt.Errorf("could not assemble material: %w", err)
	}

	for _, issue := range material.Validate(m, nil) {
		logger.Warn("material validation", "level", issue.Level, "message", issue.Message, "path", issue.Path)
	}

	if err := material.EncodeFile(opt.outMaterial, m, nil); err != nil {
		return fmt.Errorf("could not write material %q: %w", opt.outMaterial, err)
	}

	return nil
}
