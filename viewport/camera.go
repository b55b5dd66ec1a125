package viewport

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Default orbit pose: an elevated view of the xy-plane with z up, x to
// the right.
const (
	defaultYaw    = -math.Pi / 2
	defaultPitch  = 0.96
	defaultRadius = 6.0

	minRadius = 1.5
	maxRadius = 40.0

	// Pitch stays clear of the poles so the look-at basis never
	// degenerates against the fixed up vector.
	maxPitch = 1.55
)

// Camera orbits a target point: yaw rotates around the world z-axis,
// pitch is the elevation above the xy-plane, radius the distance to the
// target.
type Camera struct {
	Target mgl64.Vec3
	Yaw    float64
	Pitch  float64
	Radius float64

	FOV  float64
	Near float64
	Far  float64
}

// NewCamera returns a camera in the default pose with a 45 degree field
// of view.
func NewCamera() *Camera {
	c := &Camera{
		FOV:  mgl64.DegToRad(45),
		Near: 0.1,
		Far:  100,
	}
	c.Reset()
	return c
}

// Reset restores the default orbit pose. Projection settings are kept.
func (c *Camera) Reset() {
	c.Target = mgl64.Vec3{}
	c.Yaw = defaultYaw
	c.Pitch = defaultPitch
	c.Radius = defaultRadius
}

// Position returns the camera's world position on its orbit sphere.
func (c *Camera) Position() mgl64.Vec3 {
	cp := math.Cos(c.Pitch)
	dir := mgl64.Vec3{
		math.Cos(c.Yaw) * cp,
		math.Sin(c.Yaw) * cp,
		math.Sin(c.Pitch),
	}
	return c.Target.Add(dir.Mul(c.Radius))
}

// View returns the world-to-camera matrix.
func (c *Camera) View() mgl64.Mat4 {
	return mgl64.LookAtV(c.Position(), c.Target, mgl64.Vec3{0, 0, 1})
}

// Projection returns the perspective matrix for the given aspect ratio.
func (c *Camera) Projection(aspect float64) mgl64.Mat4 {
	if aspect <= 0 {
		aspect = 1
	}
	return mgl64.Perspective(c.FOV, aspect, c.Near, c.Far)
}

// Orbit rotates around the target. Pitch is clamped away from the poles.
func (c *Camera) Orbit(dYaw, dPitch float64) {
	c.Yaw += dYaw
	c.Pitch = clamp(c.Pitch+dPitch, -maxPitch, maxPitch)
}

// Zoom changes the orbit radius, clamped to keep the scene in front of
// the near plane and within the far plane.
func (c *Camera) Zoom(delta float64) {
	c.Radius = clamp(c.Radius+delta, minRadius, maxRadius)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
