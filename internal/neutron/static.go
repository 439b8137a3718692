package neutron

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"procgen/internal/rng"
)

// Region identifies which shielding shell a track point lies in.
type Region int

const (
	RegionCore Region = iota
	RegionReflector
	RegionOuter
)

// RegionColors maps each shell to its display color.
var RegionColors = [3]mgl32.Vec3{
	{1, 0.3, 0.3},
	{0.3, 0.7, 1},
	{1, 1, 0.3},
}

// TrackConfig holds the static track-tracing parameters. The geometry is
// three concentric spherical shells around the origin, each with its own
// per-step absorption probability.
type TrackConfig struct {
	Tracks          int
	PointsPerTrack  int
	TrackLength     float32 // total path length when nothing absorbs
	SourceRadius    float32
	CoreRadius      float32
	ReflectorRadius float32
	Curvature       float32 // per-step direction perturbation magnitude

	CoreAbsorb      float32
	ReflectorAbsorb float32
	OuterAbsorb     float32
}

// DefaultTrackConfig returns the standard shielding demo parameters.
func DefaultTrackConfig() TrackConfig {
	return TrackConfig{
		Tracks:          250,
		PointsPerTrack:  20,
		TrackLength:     15,
		SourceRadius:    0.5,
		CoreRadius:      3,
		ReflectorRadius: 6,
		Curvature:       0.4,
		CoreAbsorb:      0.1,
		ReflectorAbsorb: 0.4,
		OuterAbsorb:     0.8,
	}
}

// Validate rejects track configurations the tracer cannot run.
func (c TrackConfig) Validate() error {
	if c.Tracks < 0 {
		return fmt.Errorf("neutron: track count must be >= 0, got %d", c.Tracks)
	}
	if c.PointsPerTrack < 2 {
		return fmt.Errorf("neutron: points per track must be >= 2, got %d", c.PointsPerTrack)
	}
	if c.TrackLength <= 0 {
		return fmt.Errorf("neutron: track length must be > 0, got %g", c.TrackLength)
	}
	if !(c.SourceRadius < c.CoreRadius && c.CoreRadius < c.ReflectorRadius) {
		return fmt.Errorf("neutron: shell radii must increase: source %g, core %g, reflector %g",
			c.SourceRadius, c.CoreRadius, c.ReflectorRadius)
	}
	return nil
}

// regionFor classifies a distance from the origin into a shell.
func (c TrackConfig) regionFor(dist float32) Region {
	switch {
	case dist < c.CoreRadius:
		return RegionCore
	case dist < c.ReflectorRadius:
		return RegionReflector
	default:
		return RegionOuter
	}
}

func (c TrackConfig) absorbFor(r Region) float32 {
	switch r {
	case RegionCore:
		return c.CoreAbsorb
	case RegionReflector:
		return c.ReflectorAbsorb
	default:
		return c.OuterAbsorb
	}
}

// TrackPoint is one sample along a track. Region is where the point lies;
// Active is false from the absorption point onward.
type TrackPoint struct {
	Pos    mgl32.Vec3
	Region Region
	Active bool
}

// Track is one traced neutron path, a fixed number of points long.
type Track struct {
	Points   []TrackPoint
	Absorbed bool
}

const minDirLength = 1e-4

// GenerateTracks traces neutron paths from the source outward. Each step
// advances a fixed distance, perturbs the direction by the curvature amount,
// and rolls the current shell's absorption probability; an absorbed track
// keeps its remaining points at the absorption position, inactive.
func GenerateTracks(cfg TrackConfig, r *rng.Rand) ([]Track, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	step := cfg.TrackLength / float32(cfg.PointsPerTrack)

	tracks := make([]Track, cfg.Tracks)
	for i := range tracks {
		pos := r.InSphere(cfg.SourceRadius)
		dir := r.UnitVec()

		points := make([]TrackPoint, cfg.PointsPerTrack)
		points[0] = TrackPoint{Pos: pos, Region: cfg.regionFor(pos.Len()), Active: true}

		absorbed := false
		for j := 1; j < cfg.PointsPerTrack; j++ {
			if absorbed {
				points[j] = TrackPoint{Pos: pos, Region: cfg.regionFor(pos.Len())}
				continue
			}

			// Curved flight: perturb and renormalize, keeping the old
			// direction if the perturbation happens to cancel it.
			perturbed := dir.Add(r.UnitVec().Mul(cfg.Curvature))
			if perturbed.Len() > minDirLength {
				dir = perturbed.Normalize()
			}
			pos = pos.Add(dir.Mul(step))

			region := cfg.regionFor(pos.Len())
			points[j] = TrackPoint{Pos: pos, Region: region, Active: true}

			if r.Chance(cfg.absorbFor(region)) {
				absorbed = true
			}
		}
		tracks[i] = Track{Points: points, Absorbed: absorbed}
	}
	return tracks, nil
}
