package scene

import (
	"bufio"
	"fmt"
	"io"

	"github.com/go-gl/mathgl/mgl32"
)

// Writer serializes scene records as line-oriented RD commands. Errors are
// sticky: the first write failure is remembered and returned by Flush, so
// emission code can stay unconditional.
type Writer struct {
	w   *bufio.Writer
	err error
}

// NewWriter wraps w in a buffered RD command writer.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// Flush writes buffered output and reports the first error encountered.
func (w *Writer) Flush() error {
	if w.err != nil {
		return w.err
	}
	return w.w.Flush()
}

func (w *Writer) printf(format string, args ...any) {
	if w.err != nil {
		return
	}
	_, w.err = fmt.Fprintf(w.w, format, args...)
}

// Comment emits a # comment line.
func (w *Writer) Comment(s string) {
	w.printf("# %s\n", s)
}

// Blank emits an empty line, purely for readability of the stream.
func (w *Writer) Blank() {
	w.printf("\n")
}

// Display names the output device.
func (w *Writer) Display(name, device, mode string) {
	w.printf("Display %q %q %q\n", name, device, mode)
}

// Format sets the output resolution.
func (w *Writer) Format(width, height int) {
	w.printf("Format %d %d\n", width, height)
}

// Camera emits eye position, look-at point, up vector and field of view.
func (w *Writer) Camera(eye, at, up mgl32.Vec3, fov float32) {
	w.printf("CameraEye %v %v %v\n", eye.X(), eye.Y(), eye.Z())
	w.printf("CameraAt %v %v %v\n", at.X(), at.Y(), at.Z())
	w.printf("CameraUp %v %v %v\n", up.X(), up.Y(), up.Z())
	w.printf("CameraFOV %v\n", fov)
}

// Clipping sets near and far clip distances.
func (w *Writer) Clipping(near, far float32) {
	w.printf("Clipping %v %v\n", near, far)
}

// Background sets the clear color.
func (w *Writer) Background(c mgl32.Vec3) {
	w.printf("Background %v %v %v\n", c.X(), c.Y(), c.Z())
}

// OptionBool emits a named boolean renderer option.
func (w *Writer) OptionBool(name string, v bool) {
	w.printf("OptionBool %q %v\n", name, v)
}

// OptionReal emits a named scalar renderer option.
func (w *Writer) OptionReal(name string, v float32) {
	w.printf("OptionReal %q %v\n", name, v)
}

// WorldBegin opens the world block.
func (w *Writer) WorldBegin() { w.printf("WorldBegin\n") }

// WorldEnd closes the world block.
func (w *Writer) WorldEnd() { w.printf("WorldEnd\n") }

// FrameBegin opens an animation frame.
func (w *Writer) FrameBegin(n int) { w.printf("FrameBegin %d\n", n) }

// FrameEnd closes an animation frame.
func (w *Writer) FrameEnd() { w.printf("FrameEnd\n") }

// AmbientLight emits an ambient light with color and intensity.
func (w *Writer) AmbientLight(c mgl32.Vec3, intensity float32) {
	w.printf("AmbientLight %v %v %v %v\n", c.X(), c.Y(), c.Z(), intensity)
}

// FarLight emits a directional light.
func (w *Writer) FarLight(dir, c mgl32.Vec3, intensity float32) {
	w.printf("FarLight %v %v %v %v %v %v %v\n",
		dir.X(), dir.Y(), dir.Z(), c.X(), c.Y(), c.Z(), intensity)
}

// PointLight emits a point light.
func (w *Writer) PointLight(pos, c mgl32.Vec3, intensity float32) {
	w.printf("PointLight %v %v %v %v %v %v %v\n",
		pos.X(), pos.Y(), pos.Z(), c.X(), c.Y(), c.Z(), intensity)
}

// Color sets the current drawing color.
func (w *Writer) Color(c mgl32.Vec3) {
	w.printf("Color %v %v %v\n", c.X(), c.Y(), c.Z())
}

// Surface selects a surface shader by name.
func (w *Writer) Surface(shader string) {
	w.printf("Surface %q\n", shader)
}

// Material emits a full surface description: shader plus reflection
// coefficients and specular settings.
func (w *Writer) Material(m Material) {
	w.Surface(m.Shader)
	w.printf("Ka %v\n", m.Ka)
	w.printf("Kd %v\n", m.Kd)
	w.printf("Ks %v\n", m.Ks)
	w.printf("Specular %v %v %v %v\n",
		m.Specular.X(), m.Specular.Y(), m.Specular.Z(), m.SpecExponent)
}

// XformPush saves the current transform.
func (w *Writer) XformPush() { w.printf("XformPush\n") }

// XformPop restores the previously saved transform.
func (w *Writer) XformPop() { w.printf("XformPop\n") }

// Translate emits a translation.
func (w *Writer) Translate(v mgl32.Vec3) {
	w.printf("Translate %v %v %v\n", v.X(), v.Y(), v.Z())
}

// Scale emits a scale.
func (w *Writer) Scale(v mgl32.Vec3) {
	w.printf("Scale %v %v %v\n", v.X(), v.Y(), v.Z())
}

// Rotate emits a rotation about a principal axis, angle in degrees.
func (w *Writer) Rotate(axis string, degrees float32) {
	w.printf("Rotate %q %v\n", axis, degrees)
}

// Sphere emits the built-in sphere primitive.
func (w *Writer) Sphere(radius, zmin, zmax, thetamax float32) {
	w.printf("Sphere %v %v %v %v\n", radius, zmin, zmax, thetamax)
}

// SqSphere emits a superquadric sphere primitive.
func (w *Writer) SqSphere(radius, north, east, zmin, zmax, thetamax float32) {
	w.printf("SqSphere %v %v %v %v %v %v\n", radius, north, east, zmin, zmax, thetamax)
}

// SqTorus emits a superquadric torus primitive.
func (w *Writer) SqTorus(radius1, radius2, north, east, phimin, phimax, thetamax float32) {
	w.printf("SqTorus %v %v %v %v %v %v %v\n",
		radius1, radius2, north, east, phimin, phimax, thetamax)
}

// Cube emits the unit cube primitive.
func (w *Writer) Cube() { w.printf("Cube\n") }

// Tube emits a tube segment between two points.
func (w *Writer) Tube(a, b mgl32.Vec3, radius float32) {
	w.printf("Tube %v %v %v %v %v %v %v\n",
		a.X(), a.Y(), a.Z(), b.X(), b.Y(), b.Z(), radius)
}

// PolySet emits a polygon set. kind selects the per-vertex attributes:
// "P" position only, "PC" position+color, "PN" position+normal. Each face is
// a vertex index list; the -1 terminator is appended per face.
func (w *Writer) PolySet(kind string, verts []Vertex, faces [][]int) {
	w.printf("PolySet %q\n", kind)
	w.printf("%d %d\n", len(verts), len(faces))
	for _, v := range verts {
		w.vertex(kind, v)
	}
	for _, f := range faces {
		for _, idx := range f {
			w.printf("%d ", idx)
		}
		w.printf("-1\n")
	}
}

// LineSet emits point-pair line records, used for direction indicators.
func (w *Writer) LineSet(kind string, verts []Vertex, segments [][2]int) {
	w.printf("LineSet %q\n", kind)
	w.printf("%d %d\n", len(verts), len(segments))
	for _, v := range verts {
		w.vertex(kind, v)
	}
	for _, s := range segments {
		w.printf("%d %d -1\n", s[0], s[1])
	}
}

func (w *Writer) vertex(kind string, v Vertex) {
	w.printf("%v %v %v", v.Pos.X(), v.Pos.Y(), v.Pos.Z())
	switch kind {
	case "PC":
		w.printf(" %v %v %v", v.Color.X(), v.Color.Y(), v.Color.Z())
	case "PN":
		w.printf(" %v %v %v", v.Normal.X(), v.Normal.Y(), v.Normal.Z())
	}
	w.printf("\n")
}

// Object emits one scene object: its light (if any), transform stack,
// material, and the primitive selected by its kind.
func (w *Writer) Object(o Object) {
	if o.EmitsLight {
		w.Comment(fmt.Sprintf("light source at %v %v %v", o.Position.X(), o.Position.Y(), o.Position.Z()))
		w.PointLight(o.Position, o.Color, o.LightIntensity)
	}

	w.XformPush()
	w.Translate(o.Position)
	w.Color(o.Color)
	w.Material(o.Material)

	if o.Rotation.X() != 0 {
		w.Rotate("X", o.Rotation.X())
	}
	if o.Rotation.Y() != 0 {
		w.Rotate("Y", o.Rotation.Y())
	}
	if o.Rotation.Z() != 0 {
		w.Rotate("Z", o.Rotation.Z())
	}
	if o.Scale != (mgl32.Vec3{}) && o.Scale != (mgl32.Vec3{1, 1, 1}) {
		w.Scale(o.Scale)
	}

	switch o.Kind {
	case KindSphere:
		w.Sphere(1, -1, 1, 360)
	case KindSuperquadricSphere:
		w.SqSphere(1, o.North, o.East, -1, 1, 360)
	case KindTorus:
		w.SqTorus(o.Radius1, o.Radius2, o.North, o.East, -180, 180, 360)
	}

	w.XformPop()
	w.Blank()
}
