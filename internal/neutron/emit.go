package neutron

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"procgen/internal/scene"
)

// fissionDecayTime is how long a fission marker stays visible, fading and
// shrinking over its lifetime.
const fissionDecayTime = 5.0

// maxDirIndicators caps the direction line overlay so dense populations do
// not drown the frame in lines.
const maxDirIndicators = 30

// EmitHeader writes the animation preamble shared by all frames.
func (s *Simulation) EmitHeader(w *scene.Writer) {
	cfg := s.cfg
	w.Comment("neutron transport animation")
	w.Comment(fmt.Sprintf("pool=%d mfp=%g absorb=%g fission=%g dt=%g",
		cfg.NumNeutrons, cfg.MeanFreePath, cfg.AbsorptionProb, cfg.FissionProb, cfg.Timestep))
	w.Blank()

	w.Display("Neutron Transport", "Screen", "rgbdouble")
	w.Format(800, 600)
	w.Blank()

	w.Camera(mgl32.Vec3{18, 18, 12}, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 0, 1}, 45)
	w.Background(mgl32.Vec3{0.02, 0.02, 0.05})
	w.Blank()
}

// EmitFrame writes one animation frame: the static environment, the fading
// fission markers, every live neutron colored by its energy group, and a
// capped set of direction indicator lines.
func (s *Simulation) EmitFrame(w *scene.Writer, frame int) {
	w.FrameBegin(frame)
	w.WorldBegin()

	w.AmbientLight(mgl32.Vec3{0.4, 0.4, 0.4}, 1)
	w.FarLight(mgl32.Vec3{-1, -1, -1}, mgl32.Vec3{1, 1, 1}, 0.8)
	w.Blank()

	s.emitEnvironment(w)
	s.emitFissions(w)
	s.emitNeutrons(w)
	s.emitDirections(w)

	w.WorldEnd()
	w.FrameEnd()
}

// emitEnvironment draws the moderator boundary as a wireframe cube and the
// source region as a faint sphere.
func (s *Simulation) emitEnvironment(w *scene.Writer) {
	w.Comment("moderator boundary")
	w.OptionBool("Wireframe", true)
	w.XformPush()
	w.Color(mgl32.Vec3{0.3, 0.3, 0.4})
	w.Scale(mgl32.Vec3{s.cfg.MaxDistance, s.cfg.MaxDistance, s.cfg.MaxDistance})
	w.Cube()
	w.XformPop()
	w.OptionBool("Wireframe", false)

	w.Comment("source region")
	w.XformPush()
	w.Color(mgl32.Vec3{0.6, 0.6, 0.7})
	w.Sphere(s.cfg.SourceRadius, -s.cfg.SourceRadius, s.cfg.SourceRadius, 360)
	w.XformPop()
	w.Blank()
}

// emitFissions draws recent fission events as spheres that shrink and dim as
// they age out of the marker window.
func (s *Simulation) emitFissions(w *scene.Writer) {
	for _, f := range s.fissions {
		age := s.time - f.Time
		if age >= fissionDecayTime {
			continue
		}
		fade := float32(1 - age/fissionDecayTime)
		w.XformPush()
		w.Translate(f.Pos)
		w.Color(mgl32.Vec3{1, 0.5, 0}.Mul(fade))
		r := 0.3 * fade
		w.Sphere(r, -r, r, 360)
		w.XformPop()
	}
}

// emitNeutrons draws live neutrons as small spheres, colored and sized by
// energy group; the mid-energy group renders as wireframe to stay
// distinguishable from fast neutrons at a distance.
func (s *Simulation) emitNeutrons(w *scene.Writer) {
	for i := range s.neutrons {
		n := &s.neutrons[i]
		if !n.Active {
			continue
		}
		size := 0.2 - float32(n.Group)*0.03
		wire := n.Group == Epithermal
		if wire {
			w.OptionBool("Wireframe", true)
		}
		w.XformPush()
		w.Translate(n.Pos)
		w.Color(GroupColors[n.Group])
		w.Sphere(size, -size, size, 360)
		w.XformPop()
		if wire {
			w.OptionBool("Wireframe", false)
		}
	}
}

// emitDirections draws a velocity line per neutron, length proportional to
// group speed, capped at maxDirIndicators lines.
func (s *Simulation) emitDirections(w *scene.Writer) {
	var verts []scene.Vertex
	var segs [][2]int
	for i := range s.neutrons {
		n := &s.neutrons[i]
		if !n.Active {
			continue
		}
		if len(segs) == maxDirIndicators {
			break
		}
		l := float32(math.Sqrt(n.Group.Energy()) * 0.5)
		c := GroupColors[n.Group]
		verts = append(verts,
			scene.Vertex{Pos: n.Pos, Color: c},
			scene.Vertex{Pos: n.Pos.Add(n.Dir.Mul(l)), Color: c})
		segs = append(segs, [2]int{len(verts) - 2, len(verts) - 1})
	}
	if len(segs) == 0 {
		return
	}
	w.Comment("direction indicators")
	w.LineSet("PC", verts, segs)
}

// EmitTrackScene writes the static shielding scene: the shell boundaries as
// wireframe spheres, the source, and every track as tube segments colored by
// the shell each segment lies in.
func EmitTrackScene(w *scene.Writer, cfg TrackConfig, tracks []Track) {
	w.Comment("neutron shielding tracks")
	w.Comment(fmt.Sprintf("tracks=%d points=%d length=%g",
		cfg.Tracks, cfg.PointsPerTrack, cfg.TrackLength))
	w.Blank()

	w.Display("Neutron Shielding", "Screen", "rgbdouble")
	w.Format(800, 600)
	w.Blank()

	w.Camera(mgl32.Vec3{14, 14, 10}, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 0, 1}, 45)
	w.Background(mgl32.Vec3{0.02, 0.02, 0.05})
	w.Blank()

	w.WorldBegin()
	w.AmbientLight(mgl32.Vec3{0.5, 0.5, 0.5}, 1)
	w.FarLight(mgl32.Vec3{-1, -1, -1}, mgl32.Vec3{1, 1, 1}, 0.8)
	w.Blank()

	w.Comment("shell boundaries")
	w.OptionBool("Wireframe", true)
	for _, shell := range []struct {
		radius float32
		color  mgl32.Vec3
	}{
		{cfg.CoreRadius, RegionColors[RegionCore]},
		{cfg.ReflectorRadius, RegionColors[RegionReflector]},
	} {
		w.XformPush()
		w.Color(shell.color.Mul(0.5))
		w.Sphere(shell.radius, -shell.radius, shell.radius, 360)
		w.XformPop()
	}
	w.OptionBool("Wireframe", false)
	w.Blank()

	w.Comment("source region")
	w.XformPush()
	w.Color(mgl32.Vec3{1, 1, 1})
	w.Sphere(cfg.SourceRadius, -cfg.SourceRadius, cfg.SourceRadius, 360)
	w.XformPop()
	w.Blank()

	tubeRadius := cfg.TrackLength / 10 / 40
	for _, tr := range tracks {
		for j := 1; j < len(tr.Points); j++ {
			p0, p1 := tr.Points[j-1], tr.Points[j]
			if !p1.Active {
				break
			}
			w.Color(RegionColors[p1.Region])
			w.Tube(p0.Pos, p1.Pos, tubeRadius)
		}
	}

	w.WorldEnd()
}
