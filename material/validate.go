package material

import (
	"os"
	"path/filepath"
	"strings"
)

// IssueLevel represents severity of validation issue.
type IssueLevel string

const (
	// IssueError indicates a validation error.
	IssueError IssueLevel = "error"
	// IssueWarning indicates a validation warning.
	IssueWarning IssueLevel = "warning"
)

// Issue represents a validation issue.
type Issue struct {
	Level   IssueLevel `json:"level" yaml:"level"`                   // Severity level
	Code    string     `json:"code,omitempty" yaml:"code,omitempty"` // Machine-readable code
	Message string     `json:"message" yaml:"message"`               // Issue message
	Path    string     `json:"path,omitempty" yaml:"path,omitempty"` // Path to the affected resource
}

// knownShaders lists the shader names the host side understands.
var knownShaders = map[string]struct{}{
	"standard":          {},
	"standard-specular": {},
	"lit":               {},
	"unlit":             {},
}

// allowedExts lists accepted texture file extensions.
var allowedExts = map[string]struct{}{
	".png":  {},
	".jpg":  {},
	".jpeg": {},
	".bmp":  {},
	".tif":  {},
	".tiff": {},
	".webp": {},
	".tga":  {},
}

// Validate validates a material and returns issues.
func Validate(m *Material, opt *ValidateOptions) []Issue {
	vopt := opt.normalize()
	var out []Issue

	if m.BaseColor == "" {
		out = append(out, Issue{Level: IssueError, Code: "missing_slot", Message: "base color slot empty"})
	}
	if m.MaskMap == "" {
		out = append(out, Issue{Level: IssueError, Code: "missing_slot", Message: "mask map slot empty"})
	}

	if !vopt.DisableShaderNameCheck && m.Shader != "" {
		if _, ok := knownShaders[m.Shader]; !ok {
			out = append(out, Issue{Level: IssueWarning, Message: "unknown shader", Path: m.Shader})
		}
	}

	if m.Occlusion != "" && m.Occlusion != m.MaskMap {
		out = append(out, Issue{Level: IssueWarning, Message: "occlusion slot not bound to mask map", Path: m.Occlusion})
	}
	if m.Normal != "" && !m.NormalMap {
		out = append(out, Issue{Level: IssueWarning, Message: "normal slot without normal-map flag", Path: m.Normal})
	}
	if m.OcclusionStrength < 0 || m.OcclusionStrength > 1 {
		out = append(out, Issue{Level: IssueWarning, Message: "occlusion strength outside [0, 1]"})
	}
	if m.Height != "" && (m.HeightStrength < 0 || m.HeightStrength > 1) {
		out = append(out, Issue{Level: IssueWarning, Message: "height strength outside [0, 1]", Path: m.Height})
	}
	if m.Emission != "" && m.EmissionIntensity < 0 {
		out = append(out, Issue{Level: IssueWarning, Message: "negative emission intensity", Path: m.Emission})
	}

	if !vopt.DisableFileCheck || !vopt.DisableExtensionsCheck {
		for _, path := range []string{m.BaseColor, m.MaskMap, m.Normal, m.Height, m.Emission} {
			if path == "" {
				continue
			}

			if !vopt.DisableExtensionsCheck {
				if _, ok := allowedExts[strings.ToLower(filepath.Ext(path))]; !ok {
					out = append(out, Issue{Level: IssueWarning, Message: "unexpected texture extension", Path: path})
				}
			}

			if strings.Contains(path, "..") {
				out = append(out, Issue{Level: IssueWarning, Message: "texture path contains '..'", Path: path})
			}

			if !vopt.DisableFileCheck {
				p := path
				if !filepath.IsAbs(p) {
					p = filepath.Join(vopt.Root, p)
				}
				if _, err := os.Stat(p); err != nil {
					out = append(out, Issue{Level: IssueWarning, Code: "missing_resource", Message: "texture file not found", Path: p})
				}
			}
		}
	}

	return out
}
