// Package scene describes generated geometry to the rendering sink.
//
// The core hands the sink a stable stream of records: camera and light
// settings, surface attributes, transforms, primitives, polygon sets and line
// sets. The textual serialization implemented by Writer follows the
// line-oriented RD command format, but the record types here are the actual
// contract: they can be enumerated once, in order, without random access.
package scene

import "github.com/go-gl/mathgl/mgl32"

// ObjectKind selects which evaluator renders an object. It is a closed set;
// adding a kind means extending the switch in Writer.Object.
type ObjectKind int

const (
	// KindSphere is the renderer's built-in sphere primitive.
	KindSphere ObjectKind = iota
	// KindSuperquadricSphere is a sphere-like superquadric with north/east
	// shape exponents.
	KindSuperquadricSphere
	// KindTorus is a superquadric torus.
	KindTorus
)

// Material holds the surface attributes emitted ahead of an object.
type Material struct {
	Shader       string // "matte", "plastic" or "metal"
	Ka, Kd, Ks   float32
	Specular     mgl32.Vec3
	SpecExponent float32
}

// Object is one renderable scene object. Plain data: construct it with a
// struct literal and pass it to Writer.Object.
type Object struct {
	Kind     ObjectKind
	Position mgl32.Vec3
	Rotation mgl32.Vec3 // per-axis rotation angles in degrees
	Scale    mgl32.Vec3

	// Superquadric shape exponents.
	North, East float32

	// Torus radii (major, tube). Unused for spheres.
	Radius1, Radius2 float32

	Color mgl32.Vec3

	// Light emission (suns, bright stars).
	EmitsLight     bool
	LightIntensity float32

	Material Material
}

// Vertex is one record in a polygon or line set. Which attributes the sink
// reads is determined by the set's kind string ("P", "PC", "PN").
type Vertex struct {
	Pos    mgl32.Vec3
	Normal mgl32.Vec3
	Color  mgl32.Vec3
}

// DefaultMaterial mirrors the plastic surface most objects use.
func DefaultMaterial() Material {
	return Material{
		Shader:       "plastic",
		Ka:           0.3,
		Kd:           0.9,
		Ks:           0.5,
		Specular:     mgl32.Vec3{0.8, 0.8, 0.8},
		SpecExponent: 10,
	}
}
