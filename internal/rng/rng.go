// Package rng provides the deterministic random source shared by all
// generators. Every generator takes an explicitly seeded *Rand so that the
// same parameters always reproduce the same output.
package rng

import (
	"math"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl32"
)

// Rand is a thin convenience wrapper around math/rand/v2 for deterministic
// seeding plus the sampling helpers the generators need.
type Rand struct {
	r *rand.Rand
}

// New creates a deterministic Rand using the provided seed.
func New(seed int64) *Rand {
	return &Rand{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Float32 returns a uniform float32 in [0,1).
func (r *Rand) Float32() float32 {
	return r.r.Float32()
}

// Float64 returns a uniform float64 in [0,1).
func (r *Rand) Float64() float64 {
	return r.r.Float64()
}

// Range returns a uniform float32 in [min,max).
func (r *Rand) Range(min, max float32) float32 {
	return min + (max-min)*r.r.Float32()
}

// Chance returns true with probability p.
func (r *Rand) Chance(p float32) bool {
	return r.r.Float32() < p
}

// Gauss returns a standard normal draw (mean 0, stddev 1).
func (r *Rand) Gauss() float64 {
	return r.r.NormFloat64()
}

// UnitVec returns a direction uniformly distributed on the unit sphere,
// sampled by inverting spherical coordinates: uniform azimuth and uniform
// cosine of the polar angle.
func (r *Rand) UnitVec() mgl32.Vec3 {
	phi := r.r.Float64() * 2 * math.Pi
	cosTheta := 2*r.r.Float64() - 1
	sinTheta := math.Sqrt(1 - cosTheta*cosTheta)
	return mgl32.Vec3{
		float32(sinTheta * math.Cos(phi)),
		float32(sinTheta * math.Sin(phi)),
		float32(cosTheta),
	}
}

// InSphere returns a point uniformly distributed inside a sphere of the given
// radius. The cube root keeps the volume density uniform.
func (r *Rand) InSphere(radius float32) mgl32.Vec3 {
	dir := r.UnitVec()
	rr := radius * float32(math.Cbrt(r.r.Float64()))
	return dir.Mul(rr)
}
