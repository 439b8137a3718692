package rng

import (
	"math"
	"testing"
)

// TestDeterministic verifies the same seed reproduces the same draw sequence.
func TestDeterministic(t *testing.T) {
	a := New(42)
	b := New(42)
	for i := 0; i < 100; i++ {
		va, vb := a.Float64(), b.Float64()
		if va != vb {
			t.Errorf("draw %d differs for same seed: %f != %f", i, va, vb)
		}
	}
}

// TestSeedsDiffer verifies different seeds produce different streams.
func TestSeedsDiffer(t *testing.T) {
	a := New(1)
	b := New(2)
	same := 0
	for i := 0; i < 100; i++ {
		if a.Float64() == b.Float64() {
			same++
		}
	}
	if same == 100 {
		t.Errorf("seeds 1 and 2 produced identical 100-draw streams")
	}
}

// TestFloat32Range verifies Float32 stays in [0,1).
func TestFloat32Range(t *testing.T) {
	r := New(7)
	for i := 0; i < 1000; i++ {
		v := r.Float32()
		if v < 0 || v >= 1 {
			t.Errorf("Float32() = %f, expected in [0,1)", v)
		}
	}
}

// TestRange verifies Range stays within its bounds.
func TestRange(t *testing.T) {
	r := New(7)
	for i := 0; i < 1000; i++ {
		v := r.Range(-3, 5)
		if v < -3 || v >= 5 {
			t.Errorf("Range(-3,5) = %f, expected in [-3,5)", v)
		}
	}
}

// TestUnitVecLength verifies unit direction samples have length 1.
func TestUnitVecLength(t *testing.T) {
	r := New(99)
	for i := 0; i < 1000; i++ {
		v := r.UnitVec()
		l := float64(v.Len())
		if math.Abs(l-1) > 1e-5 {
			t.Errorf("UnitVec() length = %f, expected 1", l)
		}
	}
}

// TestUnitVecCoversSphere verifies samples land in all eight octants.
func TestUnitVecCoversSphere(t *testing.T) {
	r := New(99)
	var octants [8]int
	for i := 0; i < 1000; i++ {
		v := r.UnitVec()
		idx := 0
		if v.X() > 0 {
			idx |= 1
		}
		if v.Y() > 0 {
			idx |= 2
		}
		if v.Z() > 0 {
			idx |= 4
		}
		octants[idx]++
	}
	for i, n := range octants {
		if n == 0 {
			t.Errorf("octant %d received no samples out of 1000", i)
		}
	}
}

// TestInSphereBounded verifies samples stay inside the requested radius.
func TestInSphereBounded(t *testing.T) {
	r := New(5)
	for i := 0; i < 1000; i++ {
		p := r.InSphere(2.5)
		if p.Len() > 2.5+1e-5 {
			t.Errorf("InSphere(2.5) sample at distance %f, expected <= 2.5", p.Len())
		}
	}
}

// TestGaussMoments sanity-checks mean and variance of the Gaussian source.
func TestGaussMoments(t *testing.T) {
	r := New(1234)
	n := 20000
	sum, sumSq := 0.0, 0.0
	for i := 0; i < n; i++ {
		v := r.Gauss()
		sum += v
		sumSq += v * v
	}
	mean := sum / float64(n)
	variance := sumSq/float64(n) - mean*mean
	if math.Abs(mean) > 0.05 {
		t.Errorf("Gauss mean = %f, expected near 0", mean)
	}
	if math.Abs(variance-1) > 0.1 {
		t.Errorf("Gauss variance = %f, expected near 1", variance)
	}
}
