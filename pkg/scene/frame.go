package scene

import "github.com/brickforge/partscene/pkg/math"

// Frame is a rigid placement: a world position and an intrinsic
// rotation given in degrees around X, Y and Z. Frames carry no scale,
// so every shape keeps its unit dimensions.
type Frame struct {
	Position math.Vec3
	Rotation math.Vec3
}

// Matrix returns the placement as a column-major transform. Rotations
// are applied intrinsically in X, Y, Z order after the translation and
// never disturb the translation column, so the fourth column of the
// result is exactly Position.
func (f Frame) Matrix() math.Mat4 {
	return math.Identity().
		Translated(f.Position).
		RotatedX(math.Radians(f.Rotation.X)).
		RotatedY(math.Radians(f.Rotation.Y)).
		RotatedZ(math.Radians(f.Rotation.Z))
}
