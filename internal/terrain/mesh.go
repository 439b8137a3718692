package terrain

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"procgen/internal/mesh"
	"procgen/internal/scene"
)

// worldFootprint is the exported terrain extent in world units: the grid is
// scaled to cover worldFootprint x worldFootprint in x/y regardless of
// subdivision level. Heights are exported unscaled as z.
const worldFootprint = 100.0

// Mesh exports the grid as a colored triangle mesh: one vertex per cell with
// its band color, two triangles per cell split along a fixed diagonal.
func (g *HeightGrid) Mesh() *mesh.TriangleMesh {
	size := g.size
	scale := worldFootprint / float64(size-1)

	m := &mesh.TriangleMesh{
		Positions: make([]mgl32.Vec3, 0, size*size),
		Colors:    make([]mgl32.Vec3, 0, size*size),
		Normals:   make([]mgl32.Vec3, 0, size*size),
		Indices:   make([]uint32, 0, (size-1)*(size-1)*6),
	}

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			h := g.At(x, y)
			m.Positions = append(m.Positions, mgl32.Vec3{
				float32(float64(x) * scale),
				float32(float64(y) * scale),
				float32(h),
			})
			m.Colors = append(m.Colors, ColorFor(g.Normalized(h)))
		}
	}

	// Central-difference surface normals, clamped at the boundary.
	at := func(x, y int) float64 {
		if x < 0 {
			x = 0
		}
		if x >= size {
			x = size - 1
		}
		if y < 0 {
			y = 0
		}
		if y >= size {
			y = size - 1
		}
		return g.At(x, y)
	}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := (at(x+1, y) - at(x-1, y)) / (2 * scale)
			dy := (at(x, y+1) - at(x, y-1)) / (2 * scale)
			n := mgl32.Vec3{float32(-dx), float32(-dy), 1}
			m.Normals = append(m.Normals, n.Normalize())
		}
	}

	for y := 0; y < size-1; y++ {
		for x := 0; x < size-1; x++ {
			v0 := uint32(y*size + x)
			v1 := uint32(y*size + x + 1)
			v2 := uint32((y+1)*size + x)
			v3 := uint32((y+1)*size + x + 1)
			m.Indices = append(m.Indices, v0, v1, v2)
			m.Indices = append(m.Indices, v1, v3, v2)
		}
	}
	return m
}

// EmitScene writes a complete terrain scene: header, camera, lights, matte
// surface and the colored "PC" polygon set.
func (g *HeightGrid) EmitScene(w *scene.Writer) {
	p := g.params
	w.Comment("fractal terrain polyset")
	w.Comment(fmt.Sprintf("generated with n=%d D=%g seed=%d sigma=%g", p.N, p.D, p.Seed, p.Sigma))
	w.Blank()

	w.Display("Fractal Terrain", "Screen", "rgbdouble")
	w.Format(800, 600)
	w.Blank()

	w.Camera(mgl32.Vec3{150, 150, 50}, mgl32.Vec3{50, 50, -18}, mgl32.Vec3{0, 0, 1}, 38)
	w.Blank()

	w.WorldBegin()
	w.AmbientLight(mgl32.Vec3{0.6, 0.6, 0.6}, 1)
	w.FarLight(mgl32.Vec3{0, 0, 1}, mgl32.Vec3{1, 1, 1}, 1)
	w.FarLight(mgl32.Vec3{1, 1, -1}, mgl32.Vec3{0.7, 0.7, 0.7}, 0.5)
	w.Blank()

	w.Surface("matte")
	w.Blank()

	g.EmitPolySet(w)

	w.WorldEnd()
}

// EmitPolySet writes the grid to the scene sink as a "PC" polygon set:
// one colored vertex per cell, two triangles per cell.
func (g *HeightGrid) EmitPolySet(w *scene.Writer) {
	size := g.size
	scale := worldFootprint / float64(size-1)

	verts := make([]scene.Vertex, 0, size*size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			h := g.At(x, y)
			verts = append(verts, scene.Vertex{
				Pos: mgl32.Vec3{
					float32(float64(x) * scale),
					float32(float64(y) * scale),
					float32(h),
				},
				Color: ColorFor(g.Normalized(h)),
			})
		}
	}

	faces := make([][]int, 0, (size-1)*(size-1)*2)
	for y := 0; y < size-1; y++ {
		for x := 0; x < size-1; x++ {
			v0 := y*size + x
			v1 := y*size + x + 1
			v2 := (y+1)*size + x
			v3 := (y+1)*size + x + 1
			faces = append(faces, []int{v0, v1, v2}, []int{v1, v3, v2})
		}
	}

	w.PolySet("PC", verts, faces)
}
