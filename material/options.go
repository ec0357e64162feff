package material

// Default scalar bindings applied during assembly.
const (
	DefaultShader            = "standard"
	DefaultHeightStrength    = 0.02
	DefaultOcclusionStrength = 1.0
	DefaultEmissionIntensity = 1.0
)

// AssembleOptions controls assembly defaults.
type AssembleOptions struct {
	// Shader overrides the shader name bound to the material.
	Shader string
	// HeightStrength overrides the parallax strength scalar used when a
	// height map is present.
	HeightStrength float64
	// OcclusionStrength overrides the occlusion strength scalar.
	OcclusionStrength float64
	// EmissionIntensity overrides the emission intensity multiplier used
	// when an emission map is present.
	EmissionIntensity float64
}

// FormatOptions controls writer formatting.
type FormatOptions struct {
	// Indent is the indentation string for the material block (default is
	// four spaces).
	Indent string
}

// ValidateOptions controls validation rules.
type ValidateOptions struct {
	// Root is used to resolve slot paths when file checks are enabled.
	Root string
	// DisableFileCheck disables filesystem existence checks for slot paths.
	// Enabled by default when Root is not set.
	DisableFileCheck bool
	// DisableExtensionsCheck disables extension validation for slot paths.
	DisableExtensionsCheck bool
	// DisableShaderNameCheck disables validation of Shader against the
	// known shader list.
	DisableShaderNameCheck bool
}

// normalize normalizes the AssembleOptions.
func (o *AssembleOptions) normalize() AssembleOptions {
	out := AssembleOptions{
		Shader:            DefaultShader,
		HeightStrength:    DefaultHeightStrength,
		OcclusionStrength: DefaultOcclusionStrength,
		EmissionIntensity: DefaultEmissionIntensity,
	}
	if o == nil {
		return out
	}
	if o.Shader != "" {
		out.Shader = o.Shader
	}
	if o.HeightStrength != 0 {
		out.HeightStrength = o.HeightStrength
	}
	if o.OcclusionStrength != 0 {
		out.OcclusionStrength = o.OcclusionStrength
	}
	if o.EmissionIntensity != 0 {
		out.EmissionIntensity = o.EmissionIntensity
	}
	return out
}

// normalize normalizes the FormatOptions.
func (o *FormatOptions) normalize() FormatOptions {
	if o == nil {
		return FormatOptions{Indent: "    "}
	}

	out := *o
	if out.Indent == "" {
		out.Indent = "    "
	}

	return out
}

// normalize normalizes the ValidateOptions.
func (o *ValidateOptions) normalize() ValidateOptions {
	if o == nil {
		return ValidateOptions{DisableFileCheck: true}
	}

	out := *o
	if out.Root == "" {
		out.DisableFileCheck = true
	}

	return out
}
