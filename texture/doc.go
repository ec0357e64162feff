/*
Package texture implements channel packing for PBR texture maps.

It combines separate grayscale metallic, ambient-occlusion and roughness
maps into the channels of a single RGBA image (metallic to R, occlusion
to G, inverted roughness to A; B reserved), validating that all inputs
share one resolution before any pixel is read. All operations are pure
and in-memory; the package performs no I/O and no logging.

Packing example:

	packed, err := texture.Pack(texture.PackRequest{
		Metallic:  metallic,
		Occlusion: occlusion,
		Roughness: roughness,
		Sizing:    []*texture.Image{metallic, occlusion, roughness, base},
	})
	if err != nil {
		// handle error
	}

Inversion example:

	smoothness, err := texture.Invert(roughness)
	if err != nil {
		// handle error
	}
*/
package texture
