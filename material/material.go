package material

// Material is a parameter-binding record for one texture set. Slot
// values are paths as the host asset database understands them; the
// record never holds pixel data.
type Material struct {
	Shader            string  `json:"shader" yaml:"shader"`                                           // Shader name
	BaseColor         string  `json:"baseColor" yaml:"baseColor"`                                     // Base color map
	MaskMap           string  `json:"maskMap" yaml:"maskMap"`                                         // Packed metallic/occlusion/smoothness map
	Occlusion         string  `json:"occlusion,omitempty" yaml:"occlusion,omitempty"`                 // Occlusion source, same image as MaskMap
	OcclusionStrength float64 `json:"occlusionStrength,omitempty" yaml:"occlusionStrength,omitempty"` // Occlusion strength scalar
	Normal            string  `json:"normal,omitempty" yaml:"normal,omitempty"`                       // Normal map
	NormalMap         bool    `json:"normalMap,omitempty" yaml:"normalMap,omitempty"`                 // Normal-map interpretation flag for the host
	Height            string  `json:"height,omitempty" yaml:"height,omitempty"`                       // Height/parallax map
	HeightStrength    float64 `json:"heightStrength,omitempty" yaml:"heightStrength,omitempty"`       // Parallax strength scalar
	Emission          string  `json:"emission,omitempty" yaml:"emission,omitempty"`                   // Emission map
	EmissionIntensity float64 `json:"emissionIntensity,omitempty" yaml:"emissionIntensity,omitempty"` // Emission intensity multiplier
}

// RoleSet names the auxiliary maps available for assembly. Any role may
// be empty; only the base color is mandatory.
type RoleSet struct {
	BaseColor string `json:"baseColor,omitempty" yaml:"baseColor,omitempty"` // Base color map path
	Normal    string `json:"normal,omitempty" yaml:"normal,omitempty"`       // Normal map path
	Height    string `json:"height,omitempty" yaml:"height,omitempty"`       // Height map path
	Emission  string `json:"emission,omitempty" yaml:"emission,omitempty"`   // Emission map path
}
