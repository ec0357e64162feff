package material

import "fmt"

// Assemble binds a packed mask map and the auxiliary role maps into a
// Material. The base color and the packed map are mandatory; every other
// role is optional and its scalar binding is only emitted when the role
// is present. The occlusion slot reuses the packed image under a second
// semantic parameter.
func Assemble(set RoleSet, packedPath string, opt *AssembleOptions) (*Material, error) {
	aopt := opt.normalize()

	if set.BaseColor == "" {
		return nil, fmt.Errorf("base color map: %w", ErrMissingRequiredInput)
	}
	if packedPath == "" {
		return nil, fmt.Errorf("packed mask map: %w", ErrMissingRequiredInput)
	}

	m := &Material{
		Shader:            aopt.Shader,
		BaseColor:         set.BaseColor,
		MaskMap:           packedPath,
		Occlusion:         packedPath,
		OcclusionStrength: aopt.OcclusionStrength,
	}

	if set.Normal != "" {
		m.Normal = set.Normal
		m.NormalMap = true
	}
	if set.Height != "" {
		m.Height = set.Height
		m.HeightStrength = aopt.HeightStrength
	}
	if set.Emission != "" {
		m.Emission = set.Emission
		m.EmissionIntensity = aopt.EmissionIntensity
	}

	return m, nil
}
