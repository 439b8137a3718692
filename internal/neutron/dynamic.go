package neutron

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"procgen/internal/rng"
)

// DeathCause records why a pool slot went inactive.
type DeathCause int

const (
	CauseNone DeathCause = iota
	CauseAbsorbed
	CauseFissioned
	CauseExpired
	CauseEscaped
)

// Neutron is one pool slot. Inactive slots keep their last state until the
// source or a fission event reuses them.
type Neutron struct {
	Pos      mgl32.Vec3
	Dir      mgl32.Vec3
	Group    EnergyGroup
	Lifetime float64
	Active   bool
	Cause    DeathCause
}

// FissionEvent marks where and when a fission happened, for the fading
// visual marker.
type FissionEvent struct {
	Pos  mgl32.Vec3
	Time float64
}

// Simulation advances a fixed pool of neutrons through free flight and
// per-step interaction rolls. The pool never grows: fission children and
// source bursts only reuse inactive slots.
type Simulation struct {
	cfg      Config
	rng      *rng.Rand
	neutrons []Neutron
	fissions []FissionEvent
	time     float64
}

// NewSimulation builds a simulation with an initial population of a third of
// the pool, spawned at the source.
func NewSimulation(cfg Config, seed int64) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &Simulation{
		cfg:      cfg,
		rng:      rng.New(seed),
		neutrons: make([]Neutron, cfg.NumNeutrons),
		fissions: make([]FissionEvent, 0, cfg.MaxFissionEvents),
	}
	for i := 0; i < cfg.NumNeutrons/3; i++ {
		s.spawn(&s.neutrons[i])
	}
	return s, nil
}

// Time returns the simulation clock.
func (s *Simulation) Time() float64 { return s.time }

// Neutrons exposes the pool. Callers must not mutate it.
func (s *Simulation) Neutrons() []Neutron { return s.neutrons }

// Fissions exposes the recent fission markers, oldest first.
func (s *Simulation) Fissions() []FissionEvent { return s.fissions }

// ActiveCount returns the number of live neutrons.
func (s *Simulation) ActiveCount() int {
	n := 0
	for i := range s.neutrons {
		if s.neutrons[i].Active {
			n++
		}
	}
	return n
}

// spawn activates a slot as a fresh fast neutron at the source. Positions are
// volume-uniform within the source sphere.
func (s *Simulation) spawn(n *Neutron) {
	*n = Neutron{
		Pos:    s.rng.InSphere(s.cfg.SourceRadius),
		Dir:    s.rng.UnitVec(),
		Group:  Fast,
		Active: true,
	}
}

// findInactive returns the first reusable slot, or nil when the pool is full.
func (s *Simulation) findInactive() *Neutron {
	for i := range s.neutrons {
		if !s.neutrons[i].Active {
			return &s.neutrons[i]
		}
	}
	return nil
}

// recordFission appends a fission marker, evicting the oldest when the
// marker deque is full.
func (s *Simulation) recordFission(pos mgl32.Vec3) {
	if len(s.fissions) == s.cfg.MaxFissionEvents {
		copy(s.fissions, s.fissions[1:])
		s.fissions = s.fissions[:len(s.fissions)-1]
	}
	s.fissions = append(s.fissions, FissionEvent{Pos: pos, Time: s.time})
}

// sampleScatter rolls the post-scatter group for a neutron in group g.
func (s *Simulation) sampleScatter(g EnergyGroup) EnergyGroup {
	u := s.rng.Float64()
	cum := 0.0
	for to := 0; to < numGroups; to++ {
		cum += scatterMatrix[g][to]
		if u < cum {
			return EnergyGroup(to)
		}
	}
	return Thermal
}

// Step advances the simulation by one timestep: free flight, interaction
// rolls, lifetime and boundary checks, and the periodic source burst.
func (s *Simulation) Step() {
	dt := s.cfg.Timestep

	for i := range s.neutrons {
		n := &s.neutrons[i]
		if !n.Active {
			continue
		}

		n.Lifetime += dt
		if n.Lifetime > s.cfg.MaxLifetime {
			n.Active = false
			n.Cause = CauseExpired
			continue
		}

		// Interaction probability over this step, from the exponential
		// free-flight distribution with the energy-adjusted mean free path.
		pInteract := 1 - math.Exp(-dt/s.cfg.meanFreePath(n.Group))

		if s.rng.Float64() < pInteract {
			u := s.rng.Float64()
			scatterP := 1 - s.cfg.AbsorptionProb - s.cfg.FissionProb
			switch {
			case u < scatterP:
				n.Group = s.sampleScatter(n.Group)
				n.Dir = s.rng.UnitVec()
			case u < scatterP+s.cfg.AbsorptionProb:
				n.Active = false
				n.Cause = CauseAbsorbed
			default:
				s.fission(n)
			}
			continue
		}

		// Free flight: no interaction this step.
		n.Pos = n.Pos.Add(n.Dir.Mul(n.Group.Speed() * float32(dt)))
		if n.Pos.Len() > s.cfg.MaxDistance {
			n.Active = false
			n.Cause = CauseEscaped
		}
	}

	s.time += dt

	// Periodic source burst: once per interval, top up with a tenth of the
	// pool, capacity permitting.
	if math.Mod(s.time, s.cfg.RespawnInterval) < dt {
		for i := 0; i < s.cfg.NumNeutrons/10; i++ {
			slot := s.findInactive()
			if slot == nil {
				break
			}
			s.spawn(slot)
		}
	}
}

// fission deactivates the parent and spawns two or three fast children at its
// position, as far as the pool allows.
func (s *Simulation) fission(n *Neutron) {
	pos := n.Pos
	n.Active = false
	n.Cause = CauseFissioned
	s.recordFission(pos)

	children := 2
	if s.rng.Chance(0.5) {
		children = 3
	}
	for c := 0; c < children; c++ {
		slot := s.findInactive()
		if slot == nil {
			return
		}
		*slot = Neutron{
			Pos:    pos,
			Dir:    s.rng.UnitVec(),
			Group:  Fast,
			Active: true,
		}
	}
}
