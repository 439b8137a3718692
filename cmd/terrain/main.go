// Command terrain generates a fractal terrain and writes it as an RD scene
// file ready for rendering.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"procgen/internal/scene"
	"procgen/internal/terrain"
)

func main() {
	n := flag.Int("n", 6, "subdivision level; grid side is 2^n + 1")
	d := flag.Float64("d", 2.5, "fractal dimension in [2, 3]")
	seed := flag.Int64("seed", 0, "random seed; 0 picks one from the clock")
	sigma := flag.Float64("sigma", 1.0, "initial displacement standard deviation")
	out := flag.String("o", "", "output file; defaults to t<n>d<D>s<seed>.rd")
	flag.Parse()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	if err := run(*n, *d, *seed, *sigma, *out); err != nil {
		fmt.Fprintf(os.Stderr, "terrain: %v\n", err)
		os.Exit(1)
	}
}

func run(n int, d float64, seed int64, sigma float64, out string) error {
	grid, err := terrain.Generate(terrain.Params{N: n, D: d, Seed: seed, Sigma: sigma})
	if err != nil {
		return err
	}

	if out == "" {
		// e.g. t6d2_5s42.rd
		out = fmt.Sprintf("t%dd%ss%d.rd",
			n, strings.ReplaceAll(fmt.Sprintf("%g", d), ".", "_"), seed)
	}

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer f.Close()

	w := scene.NewWriter(f)
	grid.EmitScene(w)
	if err := w.Flush(); err != nil {
		return fmt.Errorf("write scene: %w", err)
	}

	min, max := grid.MinMax()
	fmt.Printf("wrote %s: %dx%d grid, heights [%.3f, %.3f]\n",
		out, grid.Size(), grid.Size(), min, max)
	return nil
}
