package pack

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func defaultSuffixes() roleSuffixes {
	return roleSuffixes{
		metallic:  "_metallic",
		occlusion: "_ao",
		roughness: "_roughness",
		color:     "_color",
		normal:    "_normal",
		height:    "_height",
		emission:  "_emission",
	}
}

func TestGroupSets(t *testing.T) {
	names := []string{
		"rock_color.png",
		"rock_metallic.png",
		"Rock_AO.png",
		"rock_roughness.tif",
		"dirt_color.jpg",
		"dirt_normal.png",
		"readme.txt",
		"_ao.png",
	}
	sets := groupSets("base", names, defaultSuffixes())

	if len(sets) != 2 {
		t.Fatalf("expected 2 sets, got %d: %v", len(sets), sets)
	}

	rock, ok := sets["rock"]
	if !ok {
		t.Fatalf("missing rock set")
	}
	if rock.Color != filepath.Join("base", "rock_color.png") {
		t.Fatalf("rock color = %q", rock.Color)
	}
	if rock.Occlusion != filepath.Join("base", "Rock_AO.png") {
		t.Fatalf("case-insensitive match failed: %q", rock.Occlusion)
	}
	if rock.Roughness != filepath.Join("base", "rock_roughness.tif") {
		t.Fatalf("rock roughness = %q", rock.Roughness)
	}
	if rock.Normal != "" || rock.Height != "" || rock.Emission != "" {
		t.Fatalf("unexpected rock roles: %+v", rock)
	}

	dirt, ok := sets["dirt"]
	if !ok {
		t.Fatalf("missing dirt set")
	}
	if dirt.Color == "" || dirt.Normal == "" {
		t.Fatalf("dirt roles incomplete: %+v", dirt)
	}
}

func TestGroupSetsDuplicateRole(t *testing.T) {
	names := []string{"rock_color.png", "rock_color.jpg"}
	sets := groupSets("", names, defaultSuffixes())
	if len(sets) != 1 {
		t.Fatalf("expected 1 set, got %d", len(sets))
	}
	// First file claiming the role wins.
	if sets["rock"].Color != "rock_color.png" {
		t.Fatalf("rock color = %q", sets["rock"].Color)
	}
}

func TestScanRun(t *testing.T) {
	dir := t.TempDir()
	gray := func(v uint8) color.NRGBA { return color.NRGBA{R: v, G: v, B: v, A: 255} }

	writePNG(t, filepath.Join(dir, "rock_color.png"), 2, 2, color.NRGBA{R: 180, A: 255})
	writePNG(t, filepath.Join(dir, "rock_roughness.png"), 2, 2, gray(100))
	writePNG(t, filepath.Join(dir, "dirt_color.png"), 4, 4, color.NRGBA{G: 120, A: 255})

	cmd := &ScanCmd{
		Scan:            dir,
		Dest:            "packed",
		Jobs:            1,
		Shader:          "standard",
		MetallicSuffix:  "_metallic",
		OcclusionSuffix: "_ao",
		RoughnessSuffix: "_roughness",
		ColorSuffix:     "_color",
		NormalSuffix:    "_normal",
		HeightSuffix:    "_height",
		EmissionSuffix:  "_emission",
	}
	if err := cmd.Validate(nil); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if err := cmd.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}

	for _, name := range []string{"rock_mask.png", "rock.mat", "dirt_mask.png", "dirt.mat"} {
		if _, err := os.Stat(filepath.Join(dir, "packed", name)); err != nil {
			t.Fatalf("missing output %s: %v", name, err)
		}
	}

	mask := readPNG(t, filepath.Join(dir, "packed", "rock_mask.png"))
	got := mask.NRGBAAt(0, 0)
	want := color.NRGBA{R: 0, G: 255, B: 0, A: 155}
	if got != want {
		t.Fatalf("rock mask pixel %+v != %+v", got, want)
	}
}

func TestScanRunNoColor(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "rock_metallic.png"), 2, 2, color.NRGBA{A: 255})

	cmd := &ScanCmd{
		Scan:            dir,
		Dest:            "packed",
		Jobs:            1,
		Shader:          "standard",
		MetallicSuffix:  "_metallic",
		OcclusionSuffix: "_ao",
		RoughnessSuffix: "_roughness",
		ColorSuffix:     "_color",
		NormalSuffix:    "_normal",
		HeightSuffix:    "_height",
		EmissionSuffix:  "_emission",
	}
	if err := cmd.Validate(nil); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if err := cmd.Run(); err == nil {
		t.Fatalf("expected error for set without base color map")
	}
}
