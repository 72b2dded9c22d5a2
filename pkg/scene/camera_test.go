package scene

import (
	"testing"

	"github.com/brickforge/partscene/pkg/math"
)

func testCamera() Camera {
	return NewCamera(45, 16.0/9.0, 0.1, 1000)
}

func TestCameraPitchClamp(t *testing.T) {
	c := testCamera()

	c.Rotate(3, 10)
	if c.Pitch != MaxPitch {
		t.Errorf("pitch = %f, want clamp at %f", c.Pitch, float32(MaxPitch))
	}

	c.Rotate(4, -20)
	if c.Pitch != -MaxPitch {
		t.Errorf("pitch = %f, want clamp at %f", c.Pitch, -float32(MaxPitch))
	}

	// Yaw passes through the same calls unclamped.
	if c.Yaw != 7 {
		t.Errorf("yaw = %f, want the plain sum 7", c.Yaw)
	}

	// Once clamped, small opposite turns work again.
	c.Rotate(0, 0.5)
	if absf(c.Pitch-(-MaxPitch+0.5)) > 1e-6 {
		t.Errorf("pitch after recovery = %f", c.Pitch)
	}
}

func TestCameraYawUnbounded(t *testing.T) {
	c := testCamera()
	for i := 0; i < 10; i++ {
		c.Rotate(10, 0)
	}
	if c.Yaw != 100 {
		t.Errorf("yaw = %f, want 100", c.Yaw)
	}
}

func TestCameraMoveUsesWorldAxes(t *testing.T) {
	c := testCamera()
	// Whatever the camera looks at, movement deltas are world-space.
	c.Rotate(2.5, -0.8)
	c.Move(1, 2, 3)
	c.Move(1, 0, 0)

	want := math.Vec3{X: 2, Y: 2, Z: 3}
	if c.Position != want {
		t.Errorf("position = %v, want %v", c.Position, want)
	}
}

func TestCameraZoom(t *testing.T) {
	c := testCamera()
	c.Zoom(2)
	c.Zoom(-0.5)

	want := math.Vec3{Z: 1.5}
	if c.Position != want {
		t.Errorf("position = %v, want %v", c.Position, want)
	}
}

func TestCameraViewMatrixInvertsPlacement(t *testing.T) {
	c := testCamera()
	c.Position = math.Vec3{X: 3, Y: 1, Z: -4}
	c.Rotate(0.6, -0.3)

	placement := math.Identity().
		Translated(c.Position).
		RotatedY(c.Yaw).
		RotatedX(c.Pitch)

	got := c.ViewMatrix().Mul(placement)
	id := math.Identity()
	for i := 0; i < 16; i++ {
		if absf(got[i]-id[i]) > 1e-5 {
			t.Errorf("view * placement element %d: got %f, want %f", i, got[i], id[i])
		}
	}
}

func TestCameraViewMatrixMovesEyeToOrigin(t *testing.T) {
	c := testCamera()
	c.Position = math.Vec3{X: -2, Y: 5, Z: 9}
	c.Rotate(1.2, 0.4)

	got := c.ViewMatrix().TransformPoint(c.Position)
	if absf(got.X) > 1e-5 || absf(got.Y) > 1e-5 || absf(got.Z) > 1e-5 {
		t.Errorf("eye maps to %v, want origin", got)
	}
}

func TestCameraProjection(t *testing.T) {
	c := NewCamera(90, 1, 0.1, 100)
	m := c.ProjectionMatrix()

	// 90 degrees vertical: f = 1/tan(45 degrees) = 1.
	if absf(m[5]-1) > 1e-5 {
		t.Errorf("projection [5] = %f, want 1", m[5])
	}
	if m[11] != -1 || m[15] != 0 {
		t.Errorf("projection [11]=%f [15]=%f, want -1 and 0", m[11], m[15])
	}
}

func TestCameraSetAspect(t *testing.T) {
	c := testCamera()
	c.Position = math.Vec3{X: 1, Y: 2, Z: 3}
	viewBefore := c.ViewMatrix()

	c.SetAspect(2 * c.Aspect)

	if c.ViewMatrix() != viewBefore {
		t.Error("aspect change altered the view matrix")
	}
	m := c.ProjectionMatrix()
	wide := NewCamera(45, 16.0/9.0, 0.1, 1000).ProjectionMatrix()
	if absf(m[0]-wide[0]/2) > 1e-6 {
		t.Errorf("projection [0] = %f, want %f", m[0], wide[0]/2)
	}
}
