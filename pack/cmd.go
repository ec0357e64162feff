package pack

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
)

// SetCmd packs a single texture set given explicit role file paths.
type SetCmd struct {
	Color     string `help:"Base color map, sets the reference resolution" required:"" type:"existingfile"`
	Metallic  string `help:"Metallic map, packed into the red channel" type:"existingfile"`
	Occlusion string `help:"Ambient occlusion map, packed into the green channel" type:"existingfile"`
	Roughness string `help:"Roughness map, inverted into the alpha channel" type:"existingfile"`
	Normal    string `help:"Normal map, referenced by the material" type:"existingfile"`
	Height    string `help:"Height map, referenced by the material" type:"existingfile"`
	Emission  string `help:"Emission map, referenced by the material" type:"existingfile"`
	Out       string `help:"Packed image output path. Derived from the color map name if empty."`
	Material  string `help:"Material description output path. Derived from the color map name if empty."`
	Shader    string `help:"Shader name bound in the material" default:"standard"`
	Fit       bool   `help:"Resize mismatched inputs to the base color map's size before packing" default:"false"`
}

func (c *SetCmd) Validate(kctx *kong.Context) error {
	base := strings.TrimSuffix(c.Color, filepath.Ext(c.Color))
	if c.Out == "" {
		c.Out = base + "_mask.png"
	}
	if c.Material == "" {
		c.Material = base + ".mat"
	}

	for _, out := range []string{c.Out, c.Material} {
		if info, err := os.Stat(filepath.Dir(out)); err != nil || !info.IsDir() {
			return fmt.Errorf("invalid output path %q", out)
		}
	}

	return nil
}

func (c *SetCmd) Run() error {
	logger := slog.Default().With("color", c.Color)

	set := texSet{
		Metallic:  c.Metallic,
		Occlusion: c.Occlusion,
		Roughness: c.Roughness,
		Color:     c.Color,
		Normal:    c.Normal,
		Height:    c.Height,
		Emission:  c.Emission,
	}
	opt := packOptions{
		outImage:    c.Out,
		outMaterial: c.Material,
		shader:      c.Shader,
		fit:         c.Fit,
	}
	if err := packSet(logger, set, opt); err != nil {
		return err
	}

	logger.Info("packed", "image", c.Out, "material", c.Material)
	return nil
}
