package scene

import (
	"strings"
	"testing"

	"procgen/internal/rng"
)

// TestStarfieldCounts verifies the generated objects split into the requested
// varieties.
func TestStarfieldCounts(t *testing.T) {
	p := DefaultStarfieldParams()
	stars := Starfield(p, rng.New(1))
	if len(stars) != p.Stars {
		t.Fatalf("generated %d stars, expected %d", len(stars), p.Stars)
	}

	var regular, sq, lights int
	for _, o := range stars {
		switch {
		case o.EmitsLight:
			lights++
		case o.Kind == KindSuperquadricSphere:
			sq++
		case o.Kind == KindSphere:
			regular++
		}
	}
	if lights != p.LightStars {
		t.Errorf("%d light stars, expected %d", lights, p.LightStars)
	}
	if sq != p.SuperquadricStars {
		t.Errorf("%d superquadric stars, expected %d", sq, p.SuperquadricStars)
	}
	if want := p.Stars - p.SuperquadricStars - p.LightStars; regular != want {
		t.Errorf("%d regular stars, expected %d", regular, want)
	}
}

// TestStarfieldDeterministic verifies the same seed places the same stars.
func TestStarfieldDeterministic(t *testing.T) {
	p := DefaultStarfieldParams()
	a := Starfield(p, rng.New(42))
	b := Starfield(p, rng.New(42))
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("star %d differs between identically seeded runs", i)
		}
	}
}

// TestStarfieldParamsValidation verifies inconsistent counts are rejected.
func TestStarfieldParamsValidation(t *testing.T) {
	cases := []struct {
		name string
		p    StarfieldParams
	}{
		{"zero stars", StarfieldParams{Stars: 0}},
		{"negative superquadric", StarfieldParams{Stars: 10, SuperquadricStars: -1}},
		{"subsets exceed total", StarfieldParams{Stars: 10, SuperquadricStars: 6, LightStars: 6}},
	}
	for _, c := range cases {
		if err := c.p.Validate(); err == nil {
			t.Errorf("%s: expected validation error, got none", c.name)
		}
	}
}

// TestSuperquadricStarsArePointy verifies the shape exponents stay in the
// pinched range.
func TestSuperquadricStarsArePointy(t *testing.T) {
	p := StarfieldParams{Stars: 30, SuperquadricStars: 30}
	for _, o := range Starfield(p, rng.New(3)) {
		if o.North < 0.2 || o.North >= 0.5 || o.East < 0.2 || o.East >= 0.5 {
			t.Errorf("star exponents (%f, %f) outside pinched range [0.2, 0.5)", o.North, o.East)
		}
	}
}

// TestWriteDemoSceneStructure verifies the emitted scene is a single world
// block containing the sun's point light and both primitive families.
func TestWriteDemoSceneStructure(t *testing.T) {
	var sb strings.Builder
	w := NewWriter(&sb)
	WriteDemoScene(w, DefaultStarfieldParams(), rng.New(7))
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}
	out := sb.String()

	if strings.Count(out, "WorldBegin") != 1 || strings.Count(out, "WorldEnd") != 1 {
		t.Error("scene is not a single world block")
	}
	for _, cmd := range []string{"Display", "Format", "CameraEye", "SqSphere", "SqTorus", "PointLight"} {
		if !strings.Contains(out, cmd) {
			t.Errorf("scene missing %s command", cmd)
		}
	}
	if pushes, pops := strings.Count(out, "XformPush"), strings.Count(out, "XformPop"); pushes != pops {
		t.Errorf("unbalanced transform stack: %d pushes, %d pops", pushes, pops)
	}
}
