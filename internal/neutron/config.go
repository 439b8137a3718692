// Package neutron simulates neutron transport for visualization: a dynamic
// per-timestep population model with scattering, absorption and fission, and
// a static mode that traces whole particle tracks through shielding shells.
package neutron

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// EnergyGroup is the discrete neutron energy level. Interactions only ever
// keep or lower the group, never raise it.
type EnergyGroup int

const (
	Fast EnergyGroup = iota
	Epithermal
	Thermal

	numGroups = 3
)

// groupEnergies holds the representative energy per group, in MeV.
var groupEnergies = [numGroups]float64{10, 5, 1}

// GroupColors maps each energy group to its display color: red for fast,
// yellow for epithermal, blue for thermal.
var GroupColors = [numGroups]mgl32.Vec3{
	{1, 0.2, 0},
	{1, 0.8, 0},
	{0, 0.5, 1},
}

// scatterMatrix[g] gives the post-scatter group distribution for a neutron in
// group g. Rows sum to 1; the lower triangle is zero so scattering never
// increases energy.
var scatterMatrix = [numGroups][numGroups]float64{
	{0.5, 0.4, 0.1},
	{0, 0.6, 0.4},
	{0, 0, 1},
}

// Energy returns the group's representative energy in MeV.
func (g EnergyGroup) Energy() float64 { return groupEnergies[g] }

// Speed returns the group's display speed, proportional to the square root of
// its energy.
func (g EnergyGroup) Speed() float32 {
	return float32(math.Sqrt(g.Energy()) * 2)
}

func (g EnergyGroup) String() string {
	switch g {
	case Fast:
		return "fast"
	case Epithermal:
		return "epithermal"
	case Thermal:
		return "thermal"
	}
	return fmt.Sprintf("EnergyGroup(%d)", int(g))
}

// Config holds the dynamic simulation parameters.
type Config struct {
	NumNeutrons    int     // pool capacity; the population never exceeds it
	MaxLifetime    float64 // time units before a neutron expires
	AbsorptionProb float64
	FissionProb    float64
	MeanFreePath   float64 // base mean free path, scaled up with energy
	EnergyFactor   float64 // mean free path grows by this per MeV
	SourceRadius   float32 // spawn region radius
	MaxDistance    float32 // escape boundary radius
	Timestep       float64

	RespawnInterval  float64 // time units between source bursts
	MaxFissionEvents int     // fission markers kept for visual decay
}

// DefaultConfig returns the standard reactor demo parameters.
func DefaultConfig() Config {
	return Config{
		NumNeutrons:      250,
		MaxLifetime:      100,
		AbsorptionProb:   0.1,
		FissionProb:      0.15,
		MeanFreePath:     2.0,
		EnergyFactor:     0.1,
		SourceRadius:     0.5,
		MaxDistance:      10,
		Timestep:         0.5,
		RespawnInterval:  10,
		MaxFissionEvents: 20,
	}
}

// Validate rejects configurations the stepper cannot run.
func (c Config) Validate() error {
	if c.NumNeutrons < 0 {
		return fmt.Errorf("neutron: pool size must be >= 0, got %d", c.NumNeutrons)
	}
	if c.Timestep <= 0 {
		return fmt.Errorf("neutron: timestep must be > 0, got %g", c.Timestep)
	}
	if c.MeanFreePath <= 0 {
		return fmt.Errorf("neutron: mean free path must be > 0, got %g", c.MeanFreePath)
	}
	if c.AbsorptionProb < 0 || c.FissionProb < 0 ||
		c.AbsorptionProb+c.FissionProb > 1 {
		return fmt.Errorf("neutron: absorption %g + fission %g must stay within [0, 1]",
			c.AbsorptionProb, c.FissionProb)
	}
	if c.MaxDistance <= c.SourceRadius {
		return fmt.Errorf("neutron: escape radius %g must exceed source radius %g",
			c.MaxDistance, c.SourceRadius)
	}
	return nil
}

// meanFreePath returns the energy-adjusted mean free path for a group:
// higher-energy neutrons travel further between interactions.
func (c Config) meanFreePath(g EnergyGroup) float64 {
	return c.MeanFreePath * (1 + g.Energy()*c.EnergyFactor)
}
