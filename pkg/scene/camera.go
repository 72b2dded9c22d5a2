package scene

import (
	"github.com/chewxy/math32"

	"github.com/brickforge/partscene/pkg/math"
)

// MaxPitch is the camera pitch limit: straight up, and negated,
// straight down.
const MaxPitch = math32.Pi / 2

// Camera is a free-flying camera. Yaw accumulates without bounds,
// pitch is clamped so the view never flips over the vertical.
type Camera struct {
	Position math.Vec3
	Yaw      float32
	Pitch    float32

	FOV    float32
	Aspect float32
	Near   float32
	Far    float32
}

// NewCamera returns a camera at the origin looking down -Z.
// fov is the vertical field of view in degrees.
func NewCamera(fov, aspect, near, far float32) Camera {
	return Camera{FOV: fov, Aspect: aspect, Near: near, Far: far}
}

// Move shifts the position along the world axes, regardless of where
// the camera is looking.
func (c *Camera) Move(dx, dy, dz float32) {
	c.Position = c.Position.Add(math.Vec3{X: dx, Y: dy, Z: dz})
}

// Zoom moves the camera along the world Z axis.
func (c *Camera) Zoom(delta float32) {
	c.Position.Z += delta
}

// Rotate adds to yaw and pitch in radians. Pitch saturates at the
// vertical limits, yaw wraps freely.
func (c *Camera) Rotate(dYaw, dPitch float32) {
	c.Yaw += dYaw
	c.Pitch += dPitch
	if c.Pitch > MaxPitch {
		c.Pitch = MaxPitch
	}
	if c.Pitch < -MaxPitch {
		c.Pitch = -MaxPitch
	}
}

// SetAspect updates the projection aspect ratio, usually after a
// window resize.
func (c *Camera) SetAspect(aspect float32) {
	c.Aspect = aspect
}

// ViewMatrix returns the world-to-camera transform: the inverse of
// the camera placement built from its position, yaw and pitch.
func (c *Camera) ViewMatrix() math.Mat4 {
	placement := math.Identity().
		Translated(c.Position).
		RotatedY(c.Yaw).
		RotatedX(c.Pitch)

	view, ok := placement.Inverse()
	if !ok {
		return math.Identity()
	}
	return view
}

// ProjectionMatrix returns the camera's perspective projection.
func (c *Camera) ProjectionMatrix() math.Mat4 {
	return math.Perspective(math.Radians(c.FOV), c.Aspect, c.Near, c.Far)
}
