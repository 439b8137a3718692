// Package terrain synthesizes fractal height fields by recursive midpoint
// displacement (diamond-square) and maps them to colored triangle meshes.
//
// Generation is deterministic: the same parameters and seed always produce
// the same grid. The recursion is expressed as an explicit stage loop, so
// stack depth does not grow with n.
package terrain

import (
	"fmt"
	"math"

	"procgen/internal/rng"
)

// Params configures one terrain generation call.
type Params struct {
	N     int     // grid side is 2^N + 1
	D     float64 // fractal dimension, in [2, 3]
	Seed  int64
	Sigma float64 // initial displacement standard deviation
}

// Validate rejects out-of-range terrain parameters.
func (p Params) Validate() error {
	if p.N < 1 {
		return fmt.Errorf("terrain: n must be >= 1, got %d", p.N)
	}
	if p.D < 2 || p.D > 3 {
		return fmt.Errorf("terrain: fractal dimension must be in [2, 3], got %g", p.D)
	}
	if p.Sigma <= 0 {
		return fmt.Errorf("terrain: sigma must be > 0, got %g", p.Sigma)
	}
	return nil
}

// HeightGrid is a square grid of terrain heights, side 2^n + 1. Once Generate
// returns it the grid is read-only; min and max are stored on the grid itself
// so repeated generations never see stale extremes.
type HeightGrid struct {
	size       int
	heights    [][]float64
	minH, maxH float64
	params     Params
}

// Size returns the grid side length.
func (g *HeightGrid) Size() int { return g.size }

// At returns the height at (x, y).
func (g *HeightGrid) At(x, y int) float64 { return g.heights[x][y] }

// MinMax returns the extreme heights of this grid.
func (g *HeightGrid) MinMax() (min, max float64) { return g.minH, g.maxH }

// Params returns the parameters the grid was generated with.
func (g *HeightGrid) Params() Params { return g.params }

// Normalized maps a height of this grid to [0, 1].
func (g *HeightGrid) Normalized(h float64) float64 {
	if g.maxH == g.minH {
		return 0
	}
	return (h - g.minH) / (g.maxH - g.minH)
}

// Generate synthesizes a height grid by staged midpoint displacement.
//
// Each stage halves the lattice spacing: first the diamond step fills square
// centers from their four diagonal corners, then the square step fills edge
// midpoints (three-neighbor averages on the boundary, four-neighbor in the
// interior, both lattice orientations). Already-set lattice points are
// re-perturbed between sub-steps, and the displacement magnitude decays by
// 0.5^(0.5·H) before each sub-step, with Hurst exponent H = 3 − D.
func Generate(p Params) (*HeightGrid, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	N := 1 << p.N
	size := N + 1
	heights := make([][]float64, size)
	for i := range heights {
		heights[i] = make([]float64, size)
	}

	r := rng.New(p.Seed)
	H := 3 - p.D
	decay := math.Pow(0.5, 0.5*H)

	// Three-point average plus displacement, for boundary edge midpoints.
	f3 := func(delta, x0, x1, x2 float64) float64 {
		return (x0+x1+x2)/3 + delta*r.Gauss()
	}
	// Four-point average plus displacement, for centers and interior midpoints.
	f4 := func(delta, x0, x1, x2, x3 float64) float64 {
		return (x0+x1+x2+x3)/4 + delta*r.Gauss()
	}

	// Seed the four corners.
	delta := p.Sigma
	heights[0][0] = delta * r.Gauss()
	heights[0][N] = delta * r.Gauss()
	heights[N][0] = delta * r.Gauss()
	heights[N][N] = delta * r.Gauss()

	D := N
	d := N / 2

	for stage := 1; stage <= p.N; stage++ {
		delta *= decay

		// Diamond step: square centers from their diagonal corners.
		for x := d; x < N; x += D {
			for y := d; y < N; y += D {
				heights[x][y] = f4(delta,
					heights[x+d][y+d], heights[x+d][y-d],
					heights[x-d][y+d], heights[x-d][y-d])
			}
		}

		// Re-perturb the coarse lattice.
		for x := 0; x <= N; x += D {
			for y := 0; y <= N; y += D {
				heights[x][y] += delta * r.Gauss()
			}
		}

		delta *= decay

		// Square step, boundary edges: only three neighbors exist.
		for x := d; x < N; x += D {
			heights[x][0] = f3(delta, heights[x+d][0], heights[x-d][0], heights[x][d])
			heights[x][N] = f3(delta, heights[x+d][N], heights[x-d][N], heights[x][N-d])
			heights[0][x] = f3(delta, heights[0][x+d], heights[0][x-d], heights[d][x])
			heights[N][x] = f3(delta, heights[N][x+d], heights[N][x-d], heights[N-d][x])
		}

		// Square step, interior edge midpoints, both lattice orientations.
		for x := d; x < N; x += D {
			for y := D; y < N; y += D {
				heights[x][y] = f4(delta,
					heights[x][y+d], heights[x][y-d],
					heights[x+d][y], heights[x-d][y])
			}
		}
		for x := D; x < N; x += D {
			for y := d; y < N; y += D {
				heights[x][y] = f4(delta,
					heights[x][y+d], heights[x][y-d],
					heights[x+d][y], heights[x-d][y])
			}
		}

		// Re-perturb the coarse lattice and the diamond centers.
		for x := 0; x <= N; x += D {
			for y := 0; y <= N; y += D {
				heights[x][y] += delta * r.Gauss()
			}
		}
		for x := d; x < N; x += D {
			for y := d; y < N; y += D {
				heights[x][y] += delta * r.Gauss()
			}
		}

		D /= 2
		d /= 2
	}

	g := &HeightGrid{size: size, heights: heights, params: p}
	g.minH, g.maxH = heights[0][0], heights[0][0]
	for _, row := range heights {
		for _, h := range row {
			g.minH = math.Min(g.minH, h)
			g.maxH = math.Max(g.maxH, h)
		}
	}
	return g, nil
}
