// Command neutronsim runs the neutron transport simulation and writes RD
// scene output: an animated frame sequence in dynamic mode, or a single
// shielding-track scene in static mode.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"procgen/internal/neutron"
	"procgen/internal/rng"
	"procgen/internal/scene"
)

func main() {
	frames := flag.Int("frames", 50, "animation frames (dynamic mode)")
	neutrons := flag.Int("neutrons", 250, "neutron pool size")
	fission := flag.Float64("fission", 0.15, "fission probability per interaction")
	absorb := flag.Float64("absorb", 0.1, "absorption probability per interaction")
	mfp := flag.Float64("mfp", 2.0, "base mean free path")
	static := flag.Bool("static", false, "trace whole shielding tracks instead of animating")
	seed := flag.Int64("seed", 0, "random seed; 0 picks one from the clock")
	out := flag.String("o", "", "output file; defaults to neutrons.rd or tracks.rd")
	flag.Parse()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	var err error
	if *static {
		err = runStatic(*neutrons, *seed, *out)
	} else {
		err = runDynamic(*frames, *neutrons, *fission, *absorb, *mfp, *seed, *out)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "neutronsim: %v\n", err)
		os.Exit(1)
	}
}

func runDynamic(frames, neutrons int, fission, absorb, mfp float64, seed int64, out string) error {
	cfg := neutron.DefaultConfig()
	cfg.NumNeutrons = neutrons
	cfg.FissionProb = fission
	cfg.AbsorptionProb = absorb
	cfg.MeanFreePath = mfp

	sim, err := neutron.NewSimulation(cfg, seed)
	if err != nil {
		return err
	}

	if out == "" {
		out = "neutrons.rd"
	}
	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer f.Close()

	w := scene.NewWriter(f)
	sim.EmitHeader(w)
	for frame := 1; frame <= frames; frame++ {
		sim.EmitFrame(w, frame)
		sim.Step()
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("write scene: %w", err)
	}

	fmt.Printf("wrote %s: %d frames, %d neutrons active at t=%.1f\n",
		out, frames, sim.ActiveCount(), sim.Time())
	return nil
}

func runStatic(tracks int, seed int64, out string) error {
	cfg := neutron.DefaultTrackConfig()
	cfg.Tracks = tracks

	traced, err := neutron.GenerateTracks(cfg, rng.New(seed))
	if err != nil {
		return err
	}

	if out == "" {
		out = "tracks.rd"
	}
	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer f.Close()

	w := scene.NewWriter(f)
	neutron.EmitTrackScene(w, cfg, traced)
	if err := w.Flush(); err != nil {
		return fmt.Errorf("write scene: %w", err)
	}

	absorbed := 0
	for _, tr := range traced {
		if tr.Absorbed {
			absorbed++
		}
	}
	fmt.Printf("wrote %s: %d tracks, %d absorbed\n", out, len(traced), absorbed)
	return nil
}
