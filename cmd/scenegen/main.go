// Command scenegen writes the superquadric demonstration scene: a starfield
// of plain and pinched stars around a small solar system.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"procgen/internal/rng"
	"procgen/internal/scene"
)

func main() {
	stars := flag.Int("stars", 40, "total star count")
	sqStars := flag.Int("sqstars", 8, "pointy superquadric stars")
	lightStars := flag.Int("lightstars", 5, "light-emitting stars")
	seed := flag.Int64("seed", 0, "random seed; 0 picks one from the clock")
	out := flag.String("o", "scene.rd", "output file")
	flag.Parse()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	p := scene.StarfieldParams{
		Stars:             *stars,
		SuperquadricStars: *sqStars,
		LightStars:        *lightStars,
	}
	if err := run(p, *seed, *out); err != nil {
		fmt.Fprintf(os.Stderr, "scenegen: %v\n", err)
		os.Exit(1)
	}
}

func run(p scene.StarfieldParams, seed int64, out string) error {
	if err := p.Validate(); err != nil {
		return err
	}

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer f.Close()

	w := scene.NewWriter(f)
	scene.WriteDemoScene(w, p, rng.New(seed))
	if err := w.Flush(); err != nil {
		return fmt.Errorf("write scene: %w", err)
	}

	fmt.Printf("wrote %s: %d stars (seed %d)\n", out, p.Stars, seed)
	return nil
}
