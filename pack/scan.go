package pack

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/alecthomas/kong"

	"texpack/parallel"
)

// ScanCmd scans a folder for texture sets grouped by role filename
// suffix and packs each set.
type ScanCmd struct {
	Scan   string `help:"Source folder to scan" default:"."`
	Dest   string `help:"Destination folder for packed images and materials. Relative to scan dir if not absolute." default:"packed"`
	Jobs   int    `help:"Worker count, values below one mean one per CPU" default:"0"`
	Shader string `help:"Shader name bound in the materials" default:"standard"`
	Fit    bool   `help:"Resize mismatched inputs to each set's base color map size before packing" default:"false"`

	MetallicSuffix  string `help:"Metallic map filename suffix" default:"_metallic"`
	OcclusionSuffix string `help:"Ambient occlusion map filename suffix" default:"_ao"`
	RoughnessSuffix string `help:"Roughness map filename suffix" default:"_roughness"`
	ColorSuffix     string `help:"Base color map filename suffix" default:"_color"`
	NormalSuffix    string `help:"Normal map filename suffix" default:"_normal"`
	HeightSuffix    string `help:"Height map filename suffix" default:"_height"`
	EmissionSuffix  string `help:"Emission map filename suffix" default:"_emission"`
}

func (c *ScanCmd) Validate(kctx *kong.Context) error {
	scanDir, err := filepath.Abs(c.Scan)
	var info os.FileInfo
	if err == nil {
		if info, err = os.Stat(scanDir); err == nil && !info.IsDir() {
			err = fmt.Errorf("not a directory")
		}
	}
	if err != nil {
		return fmt.Errorf("invalid scan path %q: %w", c.Scan, err)
	}
	c.Scan = scanDir

	if !filepath.IsAbs(c.Dest) {
		c.Dest = filepath.Join(scanDir, c.Dest)
	}

	for _, suffix := range []string{c.MetallicSuffix, c.OcclusionSuffix, c.RoughnessSuffix,
		c.ColorSuffix, c.NormalSuffix, c.HeightSuffix, c.EmissionSuffix} {
		if suffix == "" {
			return fmt.Errorf("role suffixes must not be empty")
		}
	}

	return nil
}

func (c *ScanCmd) Run() error {
	if err := os.MkdirAll(c.Dest, 0o755); err != nil {
		return fmt.Errorf("unable to create destination folder %q: %w", c.Dest, err)
	}

	files, err := os.ReadDir(c.Scan)
	if err != nil {
		return fmt.Errorf("unable to read folder %q: %w", c.Scan, err)
	}

	names := make([]string, 0, len(files))
	for _, file := range files {
		if file.IsDir() {
			continue
		}
		names = append(names, file.Name())
	}
	sets := groupSets(c.Scan, names, c.suffixes())

	pool := parallel.Start(c.Jobs)
	var packedCount, errCount atomic.Uint64
	for base, set := range sets {
		pool.Submit(func() {
			logger := slog.Default().With("set", base)

			if set.Color == "" {
				errCount.Add(1)
				logger.Error("texture set has no base color map")
				return
			}

			opt := packOptions{
				outImage:    filepath.Join(c.Dest, base+"_mask.png"),
				outMaterial: filepath.Join(c.Dest, base+".mat"),
				shader:      c.Shader,
				fit:         c.Fit,
			}
			if err := packSet(logger, *set, opt); err != nil {
				errCount.Add(1)
				logger.Error("could not pack texture set", "error", err)
				return
			}
			packedCount.Add(1)
		})
	}
	pool.Wait()

	packed := packedCount.Load()
	errors := errCount.Load()
	slog.Info("stats", "packed", packed, "errors", errors, "total", packed+errors)

	if errors > 0 {
		return fmt.Errorf("error packing %d texture sets", errors)
	}
	return nil
}

// roleSuffixes maps filename suffixes to texture roles.
type roleSuffixes struct {
	metallic  string
	occlusion string
	roughness string
	color     string
	normal    string
	height    string
	emission  string
}

func (c *ScanCmd) suffixes() roleSuffixes {
	return roleSuffixes{
		metallic:  strings.ToLower(c.MetallicSuffix),
		occlusion: strings.ToLower(c.OcclusionSuffix),
		roughness: strings.ToLower(c.RoughnessSuffix),
		color:     strings.ToLower(c.ColorSuffix),
		normal:    strings.ToLower(c.NormalSuffix),
		height:    strings.ToLower(c.HeightSuffix),
		emission:  strings.ToLower(c.EmissionSuffix),
	}
}

// groupSets buckets file names into texture sets keyed by their shared
// base name. Matching is case-insensitive on the name without its
// extension; the first file claiming a role wins.
func groupSets(dir string, names []string, suffixes roleSuffixes) map[string]*texSet {
	roles := []struct {
		name   string
		suffix string
		slot   func(*texSet) *string
	}{
		{"metallic", suffixes.metallic, func(s *texSet) *string { return &s.Metallic }},
		{"occlusion", suffixes.occlusion, func(s *texSet) *string { return &s.Occlusion }},
		{"roughness", suffixes.roughness, func(s *texSet) *string { return &s.Roughness }},
		{"color", suffixes.color, func(s *texSet) *string { return &s.Color }},
		{"normal", suffixes.normal, func(s *texSet) *string { return &s.Normal }},
		{"height", suffixes.height, func(s *texSet) *string { return &s.Height }},
		{"emission", suffixes.emission, func(s *texSet) *string { return &s.Emission }},
	}

	sets := make(map[string]*texSet)
	for _, name := range names {
		stem := strings.ToLower(strings.TrimSuffix(name, filepath.Ext(name)))
		path := filepath.Join(dir, name)

		for _, role := range roles {
			if !strings.HasSuffix(stem, role.suffix) || len(stem) == len(role.suffix) {
				continue
			}

			base := stem[:len(stem)-len(role.suffix)]
			set, ok := sets[base]
			if !ok {
				set = &texSet{}
				sets[base] = set
			}

			if slot := role.slot(set); *slot == "" {
				*slot = path
			} else {
				slog.Warn("duplicate role file ignored", "set", base, "role", role.name, "file", path)
			}
			break
		}
	}

	return sets
}
