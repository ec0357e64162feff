package main

import (
	"github.com/alecthomas/kong"

	"texpack/pack"
)

var cli struct {
	Set  pack.SetCmd  `cmd:"" help:"Pack one texture set and write its material description"`
	Scan pack.ScanCmd `cmd:"" help:"Scan a folder for texture sets by role suffix and pack each one"`
}

func main() {
	kctx := kong.Parse(&cli,
		kong.Name("texpack"),
		kong.Description("Packs grayscale PBR maps (metallic, occlusion, roughness) into the channels "+
			"of a single mask image and assembles a material description referencing it."),
		kong.UsageOnError(),
	)
	kctx.FatalIfErrorf(kctx.Run())
}
