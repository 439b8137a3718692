package mesh

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

// TestInterleaveLayout verifies the packed layout is position, normal, color
// per vertex with defaults filled in for missing attributes.
func TestInterleaveLayout(t *testing.T) {
	m := &TriangleMesh{
		Positions: []mgl32.Vec3{{1, 2, 3}, {4, 5, 6}},
		Normals:   []mgl32.Vec3{{0, 1, 0}},
	}
	data := m.Interleave()
	if len(data) != 2*VertexStride {
		t.Fatalf("interleaved %d floats, expected %d", len(data), 2*VertexStride)
	}
	want := []float32{
		1, 2, 3, 0, 1, 0, 1, 1, 1, // explicit normal, default white
		4, 5, 6, 0, 0, 1, 1, 1, 1, // default +Z normal
	}
	for i := range want {
		if data[i] != want[i] {
			t.Fatalf("float %d = %f, expected %f", i, data[i], want[i])
		}
	}
}

// TestBounds verifies the bounding box covers all positions.
func TestBounds(t *testing.T) {
	m := &TriangleMesh{
		Positions: []mgl32.Vec3{{-1, 5, 0}, {3, -2, 7}, {0, 0, 0}},
	}
	min, max := m.Bounds()
	if min != (mgl32.Vec3{-1, -2, 0}) {
		t.Errorf("min = %v", min)
	}
	if max != (mgl32.Vec3{3, 5, 7}) {
		t.Errorf("max = %v", max)
	}
}

// TestBoundsEmpty verifies an empty mesh returns zero bounds.
func TestBoundsEmpty(t *testing.T) {
	var m TriangleMesh
	min, max := m.Bounds()
	if min != (mgl32.Vec3{}) || max != (mgl32.Vec3{}) {
		t.Errorf("empty mesh bounds = %v, %v, expected zeros", min, max)
	}
}
