package scene

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"procgen/internal/rng"
)

// StarfieldParams controls how many stars of each variety the demo scene gets.
type StarfieldParams struct {
	Stars             int // total star count
	SuperquadricStars int // pointy superquadric stars, subset of Stars
	LightStars        int // light-emitting stars, subset of Stars
}

// DefaultStarfieldParams returns the demo defaults.
func DefaultStarfieldParams() StarfieldParams {
	return StarfieldParams{Stars: 40, SuperquadricStars: 8, LightStars: 5}
}

// Validate checks the star counts are consistent.
func (p StarfieldParams) Validate() error {
	if p.Stars <= 0 {
		return fmt.Errorf("starfield: star count must be > 0, got %d", p.Stars)
	}
	if p.SuperquadricStars < 0 || p.LightStars < 0 {
		return fmt.Errorf("starfield: star counts must be >= 0")
	}
	if p.SuperquadricStars+p.LightStars > p.Stars {
		return fmt.Errorf("starfield: %d superquadric + %d light stars exceed total %d",
			p.SuperquadricStars, p.LightStars, p.Stars)
	}
	return nil
}

const (
	regularStarMinScale = 0.03
	regularStarMaxScale = 0.08
	sqStarMinScale      = 0.08
	sqStarMaxScale      = 0.15
	lightStarScale      = 0.25
)

func fromSpherical(radius, theta, phi float32) mgl32.Vec3 {
	st := float32(math.Sin(float64(theta)))
	return mgl32.Vec3{
		radius * st * float32(math.Cos(float64(phi))),
		radius * st * float32(math.Sin(float64(phi))),
		radius * float32(math.Cos(float64(theta))),
	}
}

// starColor cycles the three demo tints: blue, red, yellow-white.
func starColor(i int) mgl32.Vec3 {
	switch i % 3 {
	case 0:
		return mgl32.Vec3{0.7, 0.7, 1.0}
	case 1:
		return mgl32.Vec3{1.0, 0.7, 0.7}
	default:
		return mgl32.Vec3{1.0, 1.0, 0.8}
	}
}

// Starfield generates the star objects: plain sphere stars, pointy
// superquadric stars and a few light-emitting ones.
func Starfield(p StarfieldParams, r *rng.Rand) []Object {
	stars := make([]Object, 0, p.Stars)

	regular := p.Stars - p.SuperquadricStars - p.LightStars
	for i := 0; i < regular; i++ {
		phi := r.Range(0, 2*math.Pi)
		theta := r.Range(0, math.Pi)
		brightness := r.Range(0.7, 1.0)
		scale := r.Range(regularStarMinScale, regularStarMaxScale)
		stars = append(stars, Object{
			Kind:     KindSphere,
			Position: fromSpherical(r.Range(8, 15), theta, phi),
			Scale:    mgl32.Vec3{scale, scale, scale},
			Color:    mgl32.Vec3{brightness, brightness, brightness},
			Material: Material{Shader: "matte", Ka: 0.8, Kd: 0.9, Ks: 0,
				Specular: mgl32.Vec3{0.8, 0.8, 0.8}, SpecExponent: 10},
		})
	}

	for i := 0; i < p.SuperquadricStars; i++ {
		phi := r.Range(0, 2*math.Pi)
		theta := r.Range(0, math.Pi)
		scale := r.Range(sqStarMinScale, sqStarMaxScale)
		stars = append(stars, Object{
			Kind:     KindSuperquadricSphere,
			Position: fromSpherical(r.Range(7, 13), theta, phi),
			Rotation: mgl32.Vec3{r.Range(0, 90), r.Range(0, 90), r.Range(0, 90)},
			Scale:    mgl32.Vec3{scale, scale, scale},
			// Exponents below 1 pinch the sphere into a pointy star.
			North:    r.Range(0.2, 0.5),
			East:     r.Range(0.2, 0.5),
			Color:    starColor(i),
			Material: DefaultMaterial(),
		})
	}

	for i := 0; i < p.LightStars; i++ {
		// Spread the light stars evenly in azimuth, mid-sky in elevation.
		phi := 2 * math.Pi * float32(i) / float32(p.LightStars)
		theta := math.Pi * (0.3 + 0.4*r.Float32())
		stars = append(stars, Object{
			Kind:           KindSuperquadricSphere,
			Position:       fromSpherical(10+r.Range(-1, 1), theta, phi),
			Scale:          mgl32.Vec3{lightStarScale, lightStarScale, lightStarScale},
			North:          1,
			East:           1,
			Color:          starColor(i),
			EmitsLight:     true,
			LightIntensity: 0.3,
			Material:       DefaultMaterial(),
		})
	}

	return stars
}

// SolarSystem returns the fixed demo objects: a sun, planets with different
// superquadric shapes, an asteroid, a gear torus and two orbital rings.
func SolarSystem() []Object {
	sun := Object{
		Kind:           KindSuperquadricSphere,
		Scale:          mgl32.Vec3{1, 1, 1},
		North:          0.3,
		East:           0.3,
		Color:          mgl32.Vec3{1, 1, 0.7},
		EmitsLight:     true,
		LightIntensity: 12,
		Material: Material{Shader: "metal", Ka: 1, Kd: 1, Ks: 0.2,
			Specular: mgl32.Vec3{1, 1, 0.7}, SpecExponent: 10},
	}

	planet := func(pos mgl32.Vec3, scale, north, east float32, color mgl32.Vec3) Object {
		return Object{
			Kind:     KindSuperquadricSphere,
			Position: pos,
			Scale:    mgl32.Vec3{scale, scale, scale},
			North:    north,
			East:     east,
			Color:    color,
			Material: DefaultMaterial(),
		}
	}

	ring := func(rot mgl32.Vec3, r1, r2, north, east float32, color mgl32.Vec3) Object {
		return Object{
			Kind:     KindTorus,
			Rotation: rot,
			Radius1:  r1,
			Radius2:  r2,
			North:    north,
			East:     east,
			Color:    color,
			Material: Material{Shader: "plastic", Ka: 0.15, Kd: 0.7, Ks: 0.3,
				Specular: mgl32.Vec3{0.4, 0.4, 0.6}, SpecExponent: 8},
		}
	}

	asteroid := Object{
		Kind:     KindSuperquadricSphere,
		Position: mgl32.Vec3{-3, -1, -3},
		Rotation: mgl32.Vec3{15, 20, 0},
		Scale:    mgl32.Vec3{0.3, 0.3, 1.0}, // elongated along z
		North:    0.3,
		East:     0.3,
		Color:    mgl32.Vec3{0.7, 0.6, 0.5},
		Material: Material{Shader: "plastic", Ka: 0.2, Kd: 0.9, Ks: 0.3,
			Specular: mgl32.Vec3{0.5, 0.5, 0.5}, SpecExponent: 5},
	}

	gear := Object{
		Kind:     KindTorus,
		Position: mgl32.Vec3{-4, 2, -3},
		Rotation: mgl32.Vec3{75, 0, 0},
		Radius1:  0.8,
		Radius2:  0.4,
		North:    1.0,
		East:     0.2, // sharp outer edge
		Color:    mgl32.Vec3{0.9, 0.7, 0.5},
		Material: Material{Shader: "plastic", Ka: 0.2, Kd: 0.9, Ks: 0.4,
			Specular: mgl32.Vec3{0.6, 0.6, 0.6}, SpecExponent: 5},
	}

	return []Object{
		sun,
		planet(mgl32.Vec3{-3, 0, 3}, 0.8, 2.0, 2.0, mgl32.Vec3{0.4, 0.4, 0.8}),  // cube-like
		planet(mgl32.Vec3{4, -1, -2}, 1.2, 0.5, 2.0, mgl32.Vec3{0.3, 0.8, 0.3}), // pinched
		planet(mgl32.Vec3{5.5, 0, -3}, 0.4, 2.0, 0.5, mgl32.Vec3{0.8, 0.8, 0.8}), // squashed moon
		asteroid,
		gear,
		ring(mgl32.Vec3{30, 0, 0}, 4.0, 0.1, 1.0, 0.2, mgl32.Vec3{0.5, 0.5, 0.8}),
		ring(mgl32.Vec3{0, 45, 0}, 5.5, 0.2, 2.0, 2.0, mgl32.Vec3{0.5, 0.5, 0.5}),
	}
}

// WriteDemoScene emits the full superquadric demo: header, camera, lights,
// starfield and solar-system objects.
func WriteDemoScene(w *Writer, p StarfieldParams, r *rng.Rand) {
	w.Comment("superquadrics demonstration scene")
	w.Display("Superquadrics Demo", "Screen", "rgbdouble")
	w.Format(800, 600)
	w.OptionReal("Divisions", 20)
	w.Blank()

	w.Camera(mgl32.Vec3{9, 7, 12}, mgl32.Vec3{0, 1, 0}, mgl32.Vec3{0, 1, 0}, 45)
	w.Clipping(0.1, 1000)
	w.Background(mgl32.Vec3{0.02, 0.02, 0.06})
	w.Blank()

	w.WorldBegin()
	w.AmbientLight(mgl32.Vec3{0.08, 0.08, 0.12}, 0.3)
	w.AmbientLight(mgl32.Vec3{0.3, 0.3, 0.2}, 0.5)
	w.PointLight(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 1, 0.7}, 12)
	w.Blank()

	w.Comment("star field")
	for _, o := range Starfield(p, r) {
		w.Object(o)
	}

	w.Comment("celestial objects")
	for _, o := range SolarSystem() {
		w.Object(o)
	}

	w.WorldEnd()
}
