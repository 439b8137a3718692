package scene

import (
	"errors"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

// TestPolySetFormat verifies the polygon set header, vertex lines and the -1
// face terminators.
func TestPolySetFormat(t *testing.T) {
	var sb strings.Builder
	w := NewWriter(&sb)
	verts := []Vertex{
		{Pos: mgl32.Vec3{0, 0, 0}, Color: mgl32.Vec3{1, 0, 0}},
		{Pos: mgl32.Vec3{1, 0, 0}, Color: mgl32.Vec3{0, 1, 0}},
		{Pos: mgl32.Vec3{0, 1, 0}, Color: mgl32.Vec3{0, 0, 1}},
	}
	w.PolySet("PC", verts, [][]int{{0, 1, 2}})
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(sb.String()), "\n")
	if lines[0] != `PolySet "PC"` {
		t.Errorf("header = %q, expected PolySet \"PC\"", lines[0])
	}
	if lines[1] != "3 1" {
		t.Errorf("counts = %q, expected \"3 1\"", lines[1])
	}
	if len(lines) != 6 {
		t.Fatalf("got %d lines, expected 6", len(lines))
	}
	if lines[2] != "0 0 0 1 0 0" {
		t.Errorf("vertex line = %q, expected position then color", lines[2])
	}
	if !strings.HasSuffix(lines[5], "-1") {
		t.Errorf("face line %q missing -1 terminator", lines[5])
	}
}

// TestPolySetNormalKind verifies "PN" vertices carry the normal, not the color.
func TestPolySetNormalKind(t *testing.T) {
	var sb strings.Builder
	w := NewWriter(&sb)
	verts := []Vertex{{
		Pos:    mgl32.Vec3{1, 2, 3},
		Normal: mgl32.Vec3{0, 0, 1},
		Color:  mgl32.Vec3{9, 9, 9},
	}}
	w.PolySet("PN", verts, nil)
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(sb.String()), "\n")
	if lines[2] != "1 2 3 0 0 1" {
		t.Errorf("vertex line = %q, expected position then normal", lines[2])
	}
}

// TestLineSetFormat verifies segment records end in the -1 terminator.
func TestLineSetFormat(t *testing.T) {
	var sb strings.Builder
	w := NewWriter(&sb)
	verts := []Vertex{
		{Pos: mgl32.Vec3{0, 0, 0}},
		{Pos: mgl32.Vec3{1, 1, 1}},
	}
	w.LineSet("P", verts, [][2]int{{0, 1}})
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(sb.String()), "\n")
	if lines[0] != `LineSet "P"` {
		t.Errorf("header = %q", lines[0])
	}
	if lines[len(lines)-1] != "0 1 -1" {
		t.Errorf("segment line = %q, expected \"0 1 -1\"", lines[len(lines)-1])
	}
}

// TestObjectKindDispatch verifies each object kind emits its own primitive
// command and nothing else's.
func TestObjectKindDispatch(t *testing.T) {
	cases := []struct {
		kind    ObjectKind
		want    string
		exclude []string
	}{
		{KindSphere, "Sphere ", []string{"SqSphere", "SqTorus"}},
		{KindSuperquadricSphere, "SqSphere ", []string{"SqTorus"}},
		{KindTorus, "SqTorus ", []string{"SqSphere"}},
	}
	for _, c := range cases {
		var sb strings.Builder
		w := NewWriter(&sb)
		w.Object(Object{
			Kind:     c.kind,
			North:    1,
			East:     1,
			Radius1:  2,
			Radius2:  0.5,
			Color:    mgl32.Vec3{1, 1, 1},
			Material: DefaultMaterial(),
		})
		if err := w.Flush(); err != nil {
			t.Fatalf("Flush failed: %v", err)
		}
		out := sb.String()
		if !strings.Contains(out, c.want) {
			t.Errorf("kind %d: output missing %q", c.kind, c.want)
		}
		for _, ex := range c.exclude {
			if strings.Contains(out, ex) {
				t.Errorf("kind %d: output unexpectedly contains %q", c.kind, ex)
			}
		}
	}
}

// TestObjectTransformBracket verifies the transform stack is balanced around
// each object.
func TestObjectTransformBracket(t *testing.T) {
	var sb strings.Builder
	w := NewWriter(&sb)
	w.Object(Object{Kind: KindSphere, Material: DefaultMaterial()})
	w.Object(Object{Kind: KindTorus, Radius1: 1, Radius2: 0.2, Material: DefaultMaterial()})
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}
	out := sb.String()
	pushes := strings.Count(out, "XformPush")
	pops := strings.Count(out, "XformPop")
	if pushes != 2 || pops != 2 {
		t.Errorf("got %d pushes and %d pops, expected 2 each", pushes, pops)
	}
}

// TestObjectLightEmission verifies light-emitting objects produce a
// PointLight and plain ones do not.
func TestObjectLightEmission(t *testing.T) {
	var sb strings.Builder
	w := NewWriter(&sb)
	w.Object(Object{Kind: KindSphere, Material: DefaultMaterial()})
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}
	if strings.Contains(sb.String(), "PointLight") {
		t.Error("plain object emitted a PointLight")
	}

	sb.Reset()
	w = NewWriter(&sb)
	w.Object(Object{
		Kind: KindSphere, EmitsLight: true, LightIntensity: 2,
		Material: DefaultMaterial(),
	})
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}
	if !strings.Contains(sb.String(), "PointLight") {
		t.Error("light-emitting object produced no PointLight")
	}
}

// TestWriterStickyError verifies the first write failure is reported by Flush
// and later writes stay silent.
func TestWriterStickyError(t *testing.T) {
	w := NewWriter(failWriter{})
	for i := 0; i < 10000; i++ {
		w.Comment("fill the buffer until the sink fails")
	}
	if err := w.Flush(); err == nil {
		t.Error("expected Flush to report the sink error")
	}
}

type failWriter struct{}

func (failWriter) Write(p []byte) (int, error) {
	return 0, errors.New("sink closed")
}
