package texture

import (
	"errors"
	"math"
	"testing"
)

const tolerance = 1e-12

func uniform(t *testing.T, w, h int, c Color) *Image {
	t.Helper()
	im, err := New(w, h)
	if err != nil {
		t.Fatalf("new %dx%d: %v", w, h, err)
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			im.Set(x, y, c)
		}
	}
	im.Finalize()
	return im
}

func gradient(t *testing.T, w, h int) *Image {
	t.Helper()
	im, err := New(w, h)
	if err != nil {
		t.Fatalf("new %dx%d: %v", w, h, err)
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := float64(y*w+x) / float64(w*h-1)
			im.Set(x, y, Color{R: v, G: 1 - v, B: v * v, A: 0.5 + v/2})
		}
	}
	im.Finalize()
	return im
}

func TestInvertInvolutive(t *testing.T) {
	src := gradient(t, 5, 7)
	once, err := Invert(src)
	if err != nil {
		t.Fatalf("invert: %v", err)
	}
	twice, err := Invert(once)
	if err != nil {
		t.Fatalf("invert: %v", err)
	}
	for i := range src.Pix {
		if math.Abs(twice.Pix[i]-src.Pix[i]) > tolerance {
			t.Fatalf("channel %d: %v != %v", i, twice.Pix[i], src.Pix[i])
		}
	}
}

func TestInvertValues(t *testing.T) {
	src := uniform(t, 2, 2, Color{R: 0.6, G: 0.25, B: 1, A: 0.75})
	out, err := Invert(src)
	if err != nil {
		t.Fatalf("invert: %v", err)
	}
	if out.Width != 2 || out.Height != 2 {
		t.Fatalf("dimensions changed: %dx%d", out.Width, out.Height)
	}
	got := out.At(1, 0)
	want := Color{R: 0.4, G: 0.75, B: 0, A: 0.75}
	if math.Abs(got.R-want.R) > tolerance || math.Abs(got.G-want.G) > tolerance ||
		math.Abs(got.B-want.B) > tolerance || got.A != want.A {
		t.Fatalf("invert mismatch: %+v != %+v", got, want)
	}
	if !out.Finalized() {
		t.Fatalf("output not finalized")
	}
}

func TestInvertPreservesAlpha(t *testing.T) {
	src := gradient(t, 4, 4)
	out, err := Invert(src)
	if err != nil {
		t.Fatalf("invert: %v", err)
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if out.At(x, y).A != src.At(x, y).A {
				t.Fatalf("alpha changed at (%d,%d)", x, y)
			}
		}
	}
}

func TestInvertOutOfRange(t *testing.T) {
	src := uniform(t, 1, 1, Color{R: 1.5, G: -0.25, B: 0, A: 1})
	out, err := Invert(src)
	if err != nil {
		t.Fatalf("invert: %v", err)
	}
	got := out.At(0, 0)
	if math.Abs(got.R-(-0.5)) > tolerance || math.Abs(got.G-1.25) > tolerance {
		t.Fatalf("expected unclamped invert, got %+v", got)
	}
}

func TestInvertNilSource(t *testing.T) {
	if _, err := Invert(nil); !errors.Is(err, ErrNilSource) {
		t.Fatalf("expected ErrNilSource, got %v", err)
	}
}

func TestPackAllInputs(t *testing.T) {
	metallic := uniform(t, 2, 2, Color{R: 0.3, G: 0.3, B: 0.3, A: 1})
	occlusion := uniform(t, 2, 2, Color{R: 0.8, G: 0.8, B: 0.8, A: 1})
	roughness := uniform(t, 2, 2, Color{R: 0.6, G: 0.6, B: 0.6, A: 1})

	out, err := Pack(PackRequest{
		Metallic:  metallic,
		Occlusion: occlusion,
		Roughness: roughness,
		Sizing:    []*Image{metallic, occlusion, roughness},
	})
	if err != nil {
		t.Fatalf("pack: %v", err)
	}
	if out.Width != 2 || out.Height != 2 {
		t.Fatalf("unexpected output size %dx%d", out.Width, out.Height)
	}
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			got := out.At(x, y)
			if got.R != 0.3 || got.G != 0.8 || got.B != 0 ||
				math.Abs(got.A-0.4) > tolerance {
				t.Fatalf("pixel (%d,%d): %+v", x, y, got)
			}
		}
	}
}

func TestPackDefaults(t *testing.T) {
	ref := uniform(t, 4, 4, Color{R: 0.1, G: 0.2, B: 0.3, A: 1})
	out, err := Pack(PackRequest{Sizing: []*Image{nil, ref, nil}})
	if err != nil {
		t.Fatalf("pack: %v", err)
	}
	if out.Width != 4 || out.Height != 4 {
		t.Fatalf("unexpected output size %dx%d", out.Width, out.Height)
	}
	want := Color{R: DefaultMetallic, G: DefaultOcclusion, B: 0, A: DefaultSmoothness}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if got := out.At(x, y); got != want {
				t.Fatalf("pixel (%d,%d): %+v != %+v", x, y, got, want)
			}
		}
	}
}

func TestPackSizeMismatch(t *testing.T) {
	small := uniform(t, 4, 4, Color{A: 1})
	large := uniform(t, 8, 8, Color{A: 1})
	_, err := Pack(PackRequest{Sizing: []*Image{small, large}})
	if !errors.Is(err, ErrSizeMismatch) {
		t.Fatalf("expected ErrSizeMismatch, got %v", err)
	}
}

func TestPackSampledInputMismatch(t *testing.T) {
	metallic := uniform(t, 2, 2, Color{R: 1, A: 1})
	ref := uniform(t, 4, 4, Color{A: 1})
	_, err := Pack(PackRequest{Metallic: metallic, Sizing: []*Image{ref}})
	if !errors.Is(err, ErrSizeMismatch) {
		t.Fatalf("expected ErrSizeMismatch, got %v", err)
	}
}

func TestPackNoReferenceDimension(t *testing.T) {
	for _, sizing := range [][]*Image{nil, {}, {nil, nil}} {
		_, err := Pack(PackRequest{Sizing: sizing})
		if !errors.Is(err, ErrNoReferenceDimension) {
			t.Fatalf("sizing %v: expected ErrNoReferenceDimension, got %v", sizing, err)
		}
	}
}

func TestPackDeterminism(t *testing.T) {
	metallic := gradient(t, 3, 3)
	roughness := gradient(t, 3, 3)
	req := PackRequest{
		Metallic:  metallic,
		Roughness: roughness,
		Sizing:    []*Image{metallic, roughness},
	}
	first, err := Pack(req)
	if err != nil {
		t.Fatalf("pack: %v", err)
	}
	second, err := Pack(req)
	if err != nil {
		t.Fatalf("pack: %v", err)
	}
	for i := range first.Pix {
		if first.Pix[i] != second.Pix[i] {
			t.Fatalf("nondeterministic output at channel %d", i)
		}
	}
}

func TestSameSize(t *testing.T) {
	a := uniform(t, 4, 4, Color{A: 1})
	b := uniform(t, 4, 4, Color{A: 1})
	c := uniform(t, 8, 4, Color{A: 1})

	cases := []struct {
		name string
		in   []*Image
		want bool
	}{
		{"empty", nil, true},
		{"all nil", []*Image{nil, nil}, true},
		{"single", []*Image{a}, true},
		{"matching", []*Image{a, nil, b}, true},
		{"width mismatch", []*Image{a, c}, false},
	}
	for _, tc := range cases {
		if got := SameSize(tc.in); got != tc.want {
			t.Fatalf("%s: SameSize = %v, want %v", tc.name, got, tc.want)
		}
	}
}
