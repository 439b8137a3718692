package superquadric

import (
	"github.com/go-gl/mathgl/mgl32"

	"procgen/internal/mesh"
	"procgen/internal/scene"
)

// Quad is one grid cell emitted as a polygon, corners in winding order
// bottom-left, bottom-right, top-right, top-left. FaceNormal is the flat
// per-face normal, distinct from the averaged normals on the corners.
type Quad struct {
	P00, P10, P11, P01 PointAttr
	FaceNormal         mgl32.Vec3
}

// Quads walks every grid cell in (ui, vi) order and calls fn with the quad.
func (g *SurfaceGrid) Quads(fn func(Quad)) {
	for ui := 0; ui < g.Divisions; ui++ {
		for vi := 0; vi < g.Divisions; vi++ {
			fn(Quad{
				P00:        g.points[ui][vi],
				P10:        g.points[ui+1][vi],
				P11:        g.points[ui+1][vi+1],
				P01:        g.points[ui][vi+1],
				FaceNormal: g.faceNormal(ui, vi),
			})
		}
	}
}

// Mesh triangulates the grid for the viewer, splitting each quad along the
// bottom-left to top-right diagonal. Every vertex carries the given color.
func (g *SurfaceGrid) Mesh(color mgl32.Vec3) *mesh.TriangleMesh {
	size := g.Divisions + 1
	m := &mesh.TriangleMesh{
		Positions: make([]mgl32.Vec3, 0, size*size),
		Normals:   make([]mgl32.Vec3, 0, size*size),
		Colors:    make([]mgl32.Vec3, 0, size*size),
		Indices:   make([]uint32, 0, g.Divisions*g.Divisions*6),
	}

	for ui := 0; ui < size; ui++ {
		for vi := 0; vi < size; vi++ {
			p := g.points[ui][vi]
			m.Positions = append(m.Positions, p.Pos.Vec3())
			m.Normals = append(m.Normals, p.Normal)
			m.Colors = append(m.Colors, color)
		}
	}

	idx := func(ui, vi int) uint32 { return uint32(ui*size + vi) }
	for ui := 0; ui < g.Divisions; ui++ {
		for vi := 0; vi < g.Divisions; vi++ {
			v00 := idx(ui, vi)
			v10 := idx(ui+1, vi)
			v11 := idx(ui+1, vi+1)
			v01 := idx(ui, vi+1)
			m.Indices = append(m.Indices, v00, v10, v11)
			m.Indices = append(m.Indices, v00, v11, v01)
		}
	}
	return m
}

// EmitPolySet writes the grid to the scene sink as a "PN" polygon set:
// one vertex per grid point with its averaged normal, one quad face per cell
// in the fixed corner winding.
func (g *SurfaceGrid) EmitPolySet(w *scene.Writer) {
	size := g.Divisions + 1
	verts := make([]scene.Vertex, 0, size*size)
	for ui := 0; ui < size; ui++ {
		for vi := 0; vi < size; vi++ {
			p := g.points[ui][vi]
			verts = append(verts, scene.Vertex{Pos: p.Pos.Vec3(), Normal: p.Normal})
		}
	}

	idx := func(ui, vi int) int { return ui*size + vi }
	faces := make([][]int, 0, g.Divisions*g.Divisions)
	for ui := 0; ui < g.Divisions; ui++ {
		for vi := 0; vi < g.Divisions; vi++ {
			faces = append(faces, []int{
				idx(ui, vi), idx(ui+1, vi), idx(ui+1, vi+1), idx(ui, vi+1),
			})
		}
	}

	w.PolySet("PN", verts, faces)
}
