package viewer

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// OrbitCamera circles a fixed target: mouse drag adjusts yaw and pitch,
// scrolling adjusts the distance.
type OrbitCamera struct {
	Target   mgl32.Vec3
	Distance float32
	Yaw      float32 // radians around the up axis
	Pitch    float32 // radians above the horizon

	AspectRatio float32
	FOV         float32
	NearPlane   float32
	FarPlane    float32
}

const (
	minPitch    = -1.5
	maxPitch    = 1.5
	minDistance = 0.5
)

// NewOrbitCamera frames a target at the given distance.
func NewOrbitCamera(target mgl32.Vec3, distance float32, width, height int) *OrbitCamera {
	return &OrbitCamera{
		Target:      target,
		Distance:    distance,
		Yaw:         0.6,
		Pitch:       0.5,
		AspectRatio: float32(width) / float32(height),
		FOV:         60.0,
		NearPlane:   0.1,
		FarPlane:    1000.0,
	}
}

// Rotate applies a mouse drag delta, clamping pitch short of the poles.
func (c *OrbitCamera) Rotate(dYaw, dPitch float32) {
	c.Yaw += dYaw
	c.Pitch += dPitch
	if c.Pitch < minPitch {
		c.Pitch = minPitch
	}
	if c.Pitch > maxPitch {
		c.Pitch = maxPitch
	}
}

// Zoom scales the orbit distance by a scroll delta.
func (c *OrbitCamera) Zoom(delta float32) {
	c.Distance *= float32(math.Pow(0.9, float64(delta)))
	if c.Distance < minDistance {
		c.Distance = minDistance
	}
}

// Eye returns the camera position on its orbit.
func (c *OrbitCamera) Eye() mgl32.Vec3 {
	cp := float32(math.Cos(float64(c.Pitch)))
	return c.Target.Add(mgl32.Vec3{
		c.Distance * cp * float32(math.Cos(float64(c.Yaw))),
		c.Distance * cp * float32(math.Sin(float64(c.Yaw))),
		c.Distance * float32(math.Sin(float64(c.Pitch))),
	})
}

// GetViewMatrix returns the look-at matrix for the current orbit position.
func (c *OrbitCamera) GetViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Eye(), c.Target, mgl32.Vec3{0, 0, 1})
}

// GetProjectionMatrix returns the perspective projection.
func (c *OrbitCamera) GetProjectionMatrix() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), c.AspectRatio, c.NearPlane, c.FarPlane)
}
