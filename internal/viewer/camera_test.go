package viewer

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

// TestOrbitDistance verifies the eye stays at the orbit distance from the
// target through arbitrary rotation.
func TestOrbitDistance(t *testing.T) {
	c := NewOrbitCamera(mgl32.Vec3{10, -5, 3}, 7, 800, 600)
	for i := 0; i < 50; i++ {
		c.Rotate(0.3, 0.1)
		d := float64(c.Eye().Sub(c.Target).Len())
		if math.Abs(d-7) > 1e-4 {
			t.Fatalf("eye at distance %f after rotation %d, expected 7", d, i)
		}
	}
}

// TestPitchClamped verifies the pitch never reaches the poles.
func TestPitchClamped(t *testing.T) {
	c := NewOrbitCamera(mgl32.Vec3{}, 5, 800, 600)
	c.Rotate(0, 100)
	if c.Pitch > maxPitch {
		t.Errorf("pitch %f exceeds clamp %f", c.Pitch, maxPitch)
	}
	c.Rotate(0, -200)
	if c.Pitch < minPitch {
		t.Errorf("pitch %f below clamp %f", c.Pitch, minPitch)
	}
}

// TestZoomFloor verifies zooming in never collapses the orbit.
func TestZoomFloor(t *testing.T) {
	c := NewOrbitCamera(mgl32.Vec3{}, 5, 800, 600)
	for i := 0; i < 100; i++ {
		c.Zoom(5)
	}
	if c.Distance < minDistance {
		t.Errorf("distance %f below floor %f", c.Distance, minDistance)
	}
}
