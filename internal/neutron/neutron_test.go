package neutron

import (
	"math"
	"testing"

	"procgen/internal/rng"
)

// TestPoolNeverGrows verifies the population stays within the configured pool
// across many steps, fission included.
func TestPoolNeverGrows(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FissionProb = 0.5 // push hard on fission
	cfg.AbsorptionProb = 0.05
	s, err := NewSimulation(cfg, 1)
	if err != nil {
		t.Fatalf("NewSimulation failed: %v", err)
	}
	for i := 0; i < 200; i++ {
		s.Step()
		if n := s.ActiveCount(); n > cfg.NumNeutrons {
			t.Fatalf("step %d: %d active neutrons exceed pool of %d", i, n, cfg.NumNeutrons)
		}
		if len(s.Neutrons()) != cfg.NumNeutrons {
			t.Fatalf("step %d: pool reallocated to %d slots", i, len(s.Neutrons()))
		}
	}
}

// TestInitialPopulation verifies a third of the pool starts active, all fast,
// all inside the source region.
func TestInitialPopulation(t *testing.T) {
	cfg := DefaultConfig()
	s, err := NewSimulation(cfg, 3)
	if err != nil {
		t.Fatalf("NewSimulation failed: %v", err)
	}
	if n := s.ActiveCount(); n != cfg.NumNeutrons/3 {
		t.Errorf("initial population = %d, expected %d", n, cfg.NumNeutrons/3)
	}
	for i, n := range s.Neutrons() {
		if !n.Active {
			continue
		}
		if n.Group != Fast {
			t.Errorf("neutron %d starts in group %v, expected fast", i, n.Group)
		}
		if n.Pos.Len() > cfg.SourceRadius+1e-5 {
			t.Errorf("neutron %d spawned at distance %f, outside source radius %f",
				i, n.Pos.Len(), cfg.SourceRadius)
		}
	}
}

// TestGroupNeverIncreases verifies scattering only keeps or lowers the energy
// group over a long run.
func TestGroupNeverIncreases(t *testing.T) {
	cfg := DefaultConfig()
	cfg.AbsorptionProb = 0
	cfg.FissionProb = 0
	cfg.MaxDistance = 1e6 // keep everything alive and scattering
	cfg.MaxLifetime = 1e6
	s, err := NewSimulation(cfg, 5)
	if err != nil {
		t.Fatalf("NewSimulation failed: %v", err)
	}

	prev := make([]EnergyGroup, cfg.NumNeutrons)
	for i, n := range s.Neutrons() {
		prev[i] = n.Group
	}
	for step := 0; step < 100; step++ {
		wasActive := make([]bool, cfg.NumNeutrons)
		for i, n := range s.Neutrons() {
			wasActive[i] = n.Active
		}
		s.Step()
		for i, n := range s.Neutrons() {
			// Respawned slots legitimately reset to fast.
			if wasActive[i] && n.Active && n.Group < prev[i] {
				t.Fatalf("step %d: neutron %d energy rose from %v to %v",
					step, i, prev[i], n.Group)
			}
			prev[i] = n.Group
		}
	}
}

// TestDeathCauses verifies every inactive slot that has lived carries a
// recorded cause.
func TestDeathCauses(t *testing.T) {
	cfg := DefaultConfig()
	s, err := NewSimulation(cfg, 7)
	if err != nil {
		t.Fatalf("NewSimulation failed: %v", err)
	}
	for i := 0; i < 300; i++ {
		s.Step()
	}
	for i, n := range s.Neutrons() {
		if n.Active {
			continue
		}
		if n.Lifetime > 0 && n.Cause == CauseNone {
			t.Errorf("neutron %d died after lifetime %f with no recorded cause", i, n.Lifetime)
		}
	}
}

// TestNoFissionWhenDisabled verifies a zero fission probability never records
// a fission event or a fission death.
func TestNoFissionWhenDisabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FissionProb = 0
	s, err := NewSimulation(cfg, 11)
	if err != nil {
		t.Fatalf("NewSimulation failed: %v", err)
	}
	for i := 0; i < 200; i++ {
		s.Step()
	}
	if len(s.Fissions()) != 0 {
		t.Errorf("recorded %d fission events with fission disabled", len(s.Fissions()))
	}
	for i, n := range s.Neutrons() {
		if n.Cause == CauseFissioned {
			t.Errorf("neutron %d died of fission with fission disabled", i)
		}
	}
}

// TestEmptyPoolSteps verifies a zero-neutron configuration still steps and
// advances time without panicking.
func TestEmptyPoolSteps(t *testing.T) {
	cfg := DefaultConfig()
	cfg.NumNeutrons = 0
	s, err := NewSimulation(cfg, 13)
	if err != nil {
		t.Fatalf("NewSimulation failed: %v", err)
	}
	for i := 0; i < 50; i++ {
		s.Step()
	}
	if want := 50 * cfg.Timestep; math.Abs(s.Time()-want) > 1e-9 {
		t.Errorf("time = %f after 50 steps, expected %f", s.Time(), want)
	}
	if s.ActiveCount() != 0 {
		t.Errorf("empty pool has %d active neutrons", s.ActiveCount())
	}
}

// TestFissionEventCap verifies the marker list never exceeds its cap.
func TestFissionEventCap(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FissionProb = 0.6
	cfg.AbsorptionProb = 0.1
	s, err := NewSimulation(cfg, 17)
	if err != nil {
		t.Fatalf("NewSimulation failed: %v", err)
	}
	for i := 0; i < 300; i++ {
		s.Step()
		if len(s.Fissions()) > cfg.MaxFissionEvents {
			t.Fatalf("step %d: %d fission markers exceed cap %d",
				i, len(s.Fissions()), cfg.MaxFissionEvents)
		}
	}
	if len(s.Fissions()) == 0 {
		t.Error("high fission probability produced no fission markers")
	}
}

// TestSimulationDeterministic verifies two simulations with the same seed
// evolve identically.
func TestSimulationDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	a, err := NewSimulation(cfg, 42)
	if err != nil {
		t.Fatalf("NewSimulation failed: %v", err)
	}
	b, err := NewSimulation(cfg, 42)
	if err != nil {
		t.Fatalf("NewSimulation failed: %v", err)
	}
	for i := 0; i < 100; i++ {
		a.Step()
		b.Step()
	}
	for i := range a.Neutrons() {
		if a.Neutrons()[i] != b.Neutrons()[i] {
			t.Fatalf("neutron %d diverged between identically seeded runs", i)
		}
	}
}

// TestConfigValidation verifies invalid configurations are rejected.
func TestConfigValidation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative pool", func(c *Config) { c.NumNeutrons = -1 }},
		{"zero timestep", func(c *Config) { c.Timestep = 0 }},
		{"zero mean free path", func(c *Config) { c.MeanFreePath = 0 }},
		{"probabilities over 1", func(c *Config) { c.AbsorptionProb, c.FissionProb = 0.7, 0.7 }},
		{"negative absorption", func(c *Config) { c.AbsorptionProb = -0.1 }},
		{"escape inside source", func(c *Config) { c.MaxDistance = 0.1 }},
	}
	for _, c := range cases {
		cfg := DefaultConfig()
		c.mutate(&cfg)
		if _, err := NewSimulation(cfg, 1); err == nil {
			t.Errorf("%s: expected validation error, got none", c.name)
		}
	}
}

// TestScatterMatrixRows verifies each scatter row is a probability
// distribution with no upscatter.
func TestScatterMatrixRows(t *testing.T) {
	for g := 0; g < numGroups; g++ {
		sum := 0.0
		for to := 0; to < numGroups; to++ {
			sum += scatterMatrix[g][to]
			if to < g && scatterMatrix[g][to] != 0 {
				t.Errorf("group %d can upscatter to group %d", g, to)
			}
		}
		if math.Abs(sum-1) > 1e-9 {
			t.Errorf("scatter row %d sums to %f, expected 1", g, sum)
		}
	}
}

// TestGenerateTracksShape verifies track count, points per track, and that
// every track starts inside the source region.
func TestGenerateTracksShape(t *testing.T) {
	cfg := DefaultTrackConfig()
	tracks, err := GenerateTracks(cfg, rng.New(1))
	if err != nil {
		t.Fatalf("GenerateTracks failed: %v", err)
	}
	if len(tracks) != cfg.Tracks {
		t.Fatalf("generated %d tracks, expected %d", len(tracks), cfg.Tracks)
	}
	for i, tr := range tracks {
		if len(tr.Points) != cfg.PointsPerTrack {
			t.Fatalf("track %d has %d points, expected %d", i, len(tr.Points), cfg.PointsPerTrack)
		}
		if d := tr.Points[0].Pos.Len(); d > cfg.SourceRadius+1e-5 {
			t.Errorf("track %d starts at distance %f, outside source radius", i, d)
		}
	}
}

// TestTracksInactiveAfterAbsorption verifies an absorbed track never has an
// active point after its first inactive one.
func TestTracksInactiveAfterAbsorption(t *testing.T) {
	cfg := DefaultTrackConfig()
	cfg.OuterAbsorb = 1 // force absorptions
	tracks, err := GenerateTracks(cfg, rng.New(2))
	if err != nil {
		t.Fatalf("GenerateTracks failed: %v", err)
	}
	sawAbsorbed := false
	for i, tr := range tracks {
		if tr.Absorbed {
			sawAbsorbed = true
		}
		dead := false
		for j, p := range tr.Points {
			if !p.Active {
				dead = true
			} else if dead {
				t.Fatalf("track %d point %d active after an inactive point", i, j)
			}
		}
	}
	if !sawAbsorbed {
		t.Error("no track was absorbed despite certain outer-shell absorption")
	}
}

// TestTrackRegionsMatchDistance verifies every point's recorded region agrees
// with its distance from the origin.
func TestTrackRegionsMatchDistance(t *testing.T) {
	cfg := DefaultTrackConfig()
	tracks, err := GenerateTracks(cfg, rng.New(3))
	if err != nil {
		t.Fatalf("GenerateTracks failed: %v", err)
	}
	for i, tr := range tracks {
		for j, p := range tr.Points {
			if want := cfg.regionFor(p.Pos.Len()); p.Region != want {
				t.Fatalf("track %d point %d: region %v at distance %f, expected %v",
					i, j, p.Region, p.Pos.Len(), want)
			}
		}
	}
}

// TestTracksDeterministic verifies the same seed traces identical tracks.
func TestTracksDeterministic(t *testing.T) {
	cfg := DefaultTrackConfig()
	a, err := GenerateTracks(cfg, rng.New(9))
	if err != nil {
		t.Fatalf("GenerateTracks failed: %v", err)
	}
	b, err := GenerateTracks(cfg, rng.New(9))
	if err != nil {
		t.Fatalf("GenerateTracks failed: %v", err)
	}
	for i := range a {
		for j := range a[i].Points {
			if a[i].Points[j] != b[i].Points[j] {
				t.Fatalf("track %d point %d diverged between identically seeded runs", i, j)
			}
		}
	}
}

// TestTrackConfigValidation verifies invalid track parameters are rejected.
func TestTrackConfigValidation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*TrackConfig)
	}{
		{"negative tracks", func(c *TrackConfig) { c.Tracks = -1 }},
		{"one point per track", func(c *TrackConfig) { c.PointsPerTrack = 1 }},
		{"zero length", func(c *TrackConfig) { c.TrackLength = 0 }},
		{"shells out of order", func(c *TrackConfig) { c.CoreRadius, c.ReflectorRadius = 6, 3 }},
	}
	for _, c := range cases {
		cfg := DefaultTrackConfig()
		c.mutate(&cfg)
		if _, err := GenerateTracks(cfg, rng.New(1)); err == nil {
			t.Errorf("%s: expected validation error, got none", c.name)
		}
	}
}
