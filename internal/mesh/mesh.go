// Package mesh holds the shared triangle-mesh value type produced by the
// terrain and superquadric generators and consumed by the viewer and the
// scene writer.
package mesh

import "github.com/go-gl/mathgl/mgl32"

// VertexStride is the number of float32 per interleaved vertex
// (pos.xyz + normal.xyz + color.rgb).
const VertexStride = 9

// TriangleMesh is an indexed triangle list with per-vertex attributes.
// Normals and Colors may be nil; Interleave substitutes defaults.
type TriangleMesh struct {
	Positions []mgl32.Vec3
	Normals   []mgl32.Vec3
	Colors    []mgl32.Vec3
	Indices   []uint32
}

// TriangleCount returns the number of triangles.
func (m *TriangleMesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Bounds returns the axis-aligned bounding box of the mesh positions.
func (m *TriangleMesh) Bounds() (min, max mgl32.Vec3) {
	if len(m.Positions) == 0 {
		return
	}
	min, max = m.Positions[0], m.Positions[0]
	for _, p := range m.Positions[1:] {
		for i := 0; i < 3; i++ {
			if p[i] < min[i] {
				min[i] = p[i]
			}
			if p[i] > max[i] {
				max[i] = p[i]
			}
		}
	}
	return
}

// Interleave returns the vertex attributes packed pos+normal+color per vertex,
// the layout the viewer uploads as a single VBO. Missing normals default to
// +Z, missing colors to white.
func (m *TriangleMesh) Interleave() []float32 {
	out := make([]float32, 0, len(m.Positions)*VertexStride)
	for i, p := range m.Positions {
		n := mgl32.Vec3{0, 0, 1}
		if i < len(m.Normals) {
			n = m.Normals[i]
		}
		c := mgl32.Vec3{1, 1, 1}
		if i < len(m.Colors) {
			c = m.Colors[i]
		}
		out = append(out,
			p.X(), p.Y(), p.Z(),
			n.X(), n.Y(), n.Z(),
			c.X(), c.Y(), c.Z(),
		)
	}
	return out
}
