// Package superquadric evaluates superquadric spheres and tori into dense
// parameter grids of positions and smooth-shading normals.
//
// Sphere parametric form, with sign-preserving fractional powers:
//
//	x = r * pow(cos θ, east) * pow(cos φ, north)
//	y = r * pow(sin θ, east) * pow(cos φ, north)
//	z = r * pow(sin φ, north)
//
// where pow(v, e) = sgn(v)·|v|^e, θ runs over [0, thetamax] and φ over the
// latitude band derived from the z bounds.
package superquadric

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// minNormalLength is the squared-length guard below which a normal is left
// unnormalized instead of dividing by a near-zero length.
const minNormalLength = 1e-4

// PointAttr is a single evaluated surface vertex: homogeneous position and
// averaged unit normal.
type PointAttr struct {
	Pos    mgl32.Vec4 // w = 1
	Normal mgl32.Vec3
}

// SurfaceGrid is a dense (Divisions+1)x(Divisions+1) grid of surface points
// indexed by (ui, vi) parameter coordinates. It is fully populated before it
// is returned; geometry is emitted from it afterwards.
type SurfaceGrid struct {
	Divisions int
	points    [][]PointAttr
}

// At returns the point at grid coordinates (ui, vi).
func (g *SurfaceGrid) At(ui, vi int) PointAttr {
	return g.points[ui][vi]
}

// SphereParams describes a superquadric sphere evaluation.
type SphereParams struct {
	Radius      float64
	North, East float64
	ZMin, ZMax  float64
	ThetaMax    float64 // degrees, (0, 360]
	Divisions   int
}

// Validate rejects degenerate sphere parameters. Out-of-range z bounds are
// not an error; Evaluate clamps them to [-radius, radius].
func (p SphereParams) Validate() error {
	if p.Radius <= 0 {
		return fmt.Errorf("superquadric sphere: radius must be > 0, got %g", p.Radius)
	}
	if p.ZMin > p.ZMax {
		return fmt.Errorf("superquadric sphere: zmin %g > zmax %g", p.ZMin, p.ZMax)
	}
	if p.ZMin == p.ZMax {
		return fmt.Errorf("superquadric sphere: zmin == zmax (%g), degenerate band", p.ZMin)
	}
	if p.ThetaMax <= 0 || p.ThetaMax > 360 {
		return fmt.Errorf("superquadric sphere: thetamax must be in (0, 360], got %g", p.ThetaMax)
	}
	if p.Divisions < 1 {
		return fmt.Errorf("superquadric sphere: divisions must be >= 1, got %d", p.Divisions)
	}
	return nil
}

// TorusParams describes a superquadric torus evaluation. Radius1 is the major
// radius, Radius2 the tube radius.
type TorusParams struct {
	Radius1, Radius2 float64
	North, East      float64
	PhiMin, PhiMax   float64 // degrees, clamped to [-180, 180]
	ThetaMax         float64 // degrees, (0, 360]
	Divisions        int
}

// Validate rejects degenerate torus parameters.
func (p TorusParams) Validate() error {
	if p.Radius1 <= 0 || p.Radius2 <= 0 {
		return fmt.Errorf("superquadric torus: radii must be > 0, got %g and %g", p.Radius1, p.Radius2)
	}
	if p.ThetaMax <= 0 || p.ThetaMax > 360 {
		return fmt.Errorf("superquadric torus: thetamax must be in (0, 360], got %g", p.ThetaMax)
	}
	if p.PhiMin >= p.PhiMax {
		return fmt.Errorf("superquadric torus: phimin %g >= phimax %g", p.PhiMin, p.PhiMax)
	}
	if p.Divisions < 1 {
		return fmt.Errorf("superquadric torus: divisions must be >= 1, got %d", p.Divisions)
	}
	return nil
}

// powTerm is sgn(v)·|v|^e, keeping the sign of v through fractional powers.
func powTerm(v, e float64) float64 {
	if v >= 0 {
		return math.Pow(v, e)
	}
	return -math.Pow(-v, e)
}

// EvaluateSphere evaluates a superquadric sphere into a surface grid.
func EvaluateSphere(p SphereParams) (*SurfaceGrid, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	zmin, zmax := p.ZMin, p.ZMax
	if zmin < -p.Radius {
		zmin = -p.Radius
	}
	if zmax > p.Radius {
		zmax = p.Radius
	}

	// Latitude band from the z bounds.
	phimin := math.Asin(zmin / p.Radius)
	phimax := math.Asin(zmax / p.Radius)

	g := newGrid(p.Divisions)
	for ui := 0; ui <= p.Divisions; ui++ {
		theta := float64(ui) / float64(p.Divisions) * p.ThetaMax * math.Pi / 180
		ct := powTerm(math.Cos(theta), p.East)
		st := powTerm(math.Sin(theta), p.East)

		for vi := 0; vi <= p.Divisions; vi++ {
			phi := phimin + float64(vi)/float64(p.Divisions)*(phimax-phimin)
			cp := powTerm(math.Cos(phi), p.North)
			sp := powTerm(math.Sin(phi), p.North)

			g.points[ui][vi].Pos = mgl32.Vec4{
				float32(p.Radius * ct * cp),
				float32(p.Radius * st * cp),
				float32(p.Radius * sp),
				1,
			}
		}
	}

	g.computeNormals()
	return g, nil
}

// EvaluateTorus evaluates a superquadric torus into a surface grid.
func EvaluateTorus(p TorusParams) (*SurfaceGrid, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	phimin, phimax := p.PhiMin, p.PhiMax
	if phimin < -180 {
		phimin = -180
	}
	if phimax > 180 {
		phimax = 180
	}
	phimin *= math.Pi / 180
	phimax *= math.Pi / 180

	g := newGrid(p.Divisions)
	for ui := 0; ui <= p.Divisions; ui++ {
		theta := float64(ui) / float64(p.Divisions) * p.ThetaMax * math.Pi / 180
		ct := powTerm(math.Cos(theta), p.East)
		st := powTerm(math.Sin(theta), p.East)

		for vi := 0; vi <= p.Divisions; vi++ {
			phi := phimin + float64(vi)/float64(p.Divisions)*(phimax-phimin)
			cp := powTerm(math.Cos(phi), p.North)
			sp := powTerm(math.Sin(phi), p.North)

			ring := p.Radius1 + p.Radius2*cp
			g.points[ui][vi].Pos = mgl32.Vec4{
				float32(ct * ring),
				float32(st * ring),
				float32(p.Radius2 * sp),
				1,
			}
		}
	}

	g.computeNormals()
	return g, nil
}

func newGrid(divisions int) *SurfaceGrid {
	points := make([][]PointAttr, divisions+1)
	for i := range points {
		points[i] = make([]PointAttr, divisions+1)
	}
	return &SurfaceGrid{Divisions: divisions, points: points}
}

// faceNormal returns the normalized cross product of the quad's two edge
// vectors at its bottom-left corner. A degenerate quad yields the zero vector.
func (g *SurfaceGrid) faceNormal(ui, vi int) mgl32.Vec3 {
	p00 := g.points[ui][vi].Pos.Vec3()
	v1 := g.points[ui+1][vi].Pos.Vec3().Sub(p00)
	v2 := g.points[ui][vi+1].Pos.Vec3().Sub(p00)
	n := v1.Cross(v2)
	if l := n.Len(); l > minNormalLength {
		return n.Mul(1 / l)
	}
	return n
}

// computeNormals accumulates each quad's face normal into its four corner
// vertices, then averages and renormalizes per vertex. The result is the
// smooth (Phong-style) shading normal stored on each point.
func (g *SurfaceGrid) computeNormals() {
	size := g.Divisions + 1
	acc := make([][]mgl32.Vec3, size)
	counts := make([][]int, size)
	for i := range acc {
		acc[i] = make([]mgl32.Vec3, size)
		counts[i] = make([]int, size)
	}

	for ui := 0; ui < g.Divisions; ui++ {
		for vi := 0; vi < g.Divisions; vi++ {
			n := g.faceNormal(ui, vi)
			for i := 0; i <= 1; i++ {
				for j := 0; j <= 1; j++ {
					acc[ui+i][vi+j] = acc[ui+i][vi+j].Add(n)
					counts[ui+i][vi+j]++
				}
			}
		}
	}

	for ui := 0; ui < size; ui++ {
		for vi := 0; vi < size; vi++ {
			if counts[ui][vi] == 0 {
				continue
			}
			n := acc[ui][vi].Mul(1 / float32(counts[ui][vi]))
			if l := n.Len(); l > minNormalLength {
				n = n.Mul(1 / l)
			}
			g.points[ui][vi].Normal = n
		}
	}
}
