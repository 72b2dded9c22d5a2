package math

import (
	"math"
	"testing"
)

func TestIdentity(t *testing.T) {
	m := Identity()
	// Diagonal should be 1
	if m[0] != 1 || m[5] != 1 || m[10] != 1 || m[15] != 1 {
		t.Error("Identity diagonal should be 1")
	}
	// Off-diagonal should be 0
	if m[1] != 0 || m[4] != 0 {
		t.Error("Identity off-diagonal should be 0")
	}
}

func TestRadians(t *testing.T) {
	got := Radians(180)
	if abs(got-float32(math.Pi)) > 1e-6 {
		t.Errorf("Radians(180) = %v, want pi", got)
	}
	if Radians(0) != 0 {
		t.Errorf("Radians(0) = %v, want 0", Radians(0))
	}
}

func TestMulIdentity(t *testing.T) {
	m := Translate(1, 2, 3)
	id := Identity()
	result := m.Mul(id)

	for i := 0; i < 16; i++ {
		if result[i] != m[i] {
			t.Errorf("M * I should equal M, element %d: got %f, want %f", i, result[i], m[i])
		}
	}
}

func TestTranslate(t *testing.T) {
	m := Translate(5, 10, 15)

	// Translation should be in column 4 (indices 12, 13, 14)
	if m[12] != 5 || m[13] != 10 || m[14] != 15 {
		t.Errorf("Translate: got (%f, %f, %f), want (5, 10, 15)", m[12], m[13], m[14])
	}
}

func TestTransformPoint(t *testing.T) {
	// Translate by (10, 20, 30)
	m := Translate(10, 20, 30)
	result := m.TransformPoint(Vec3{1, 2, 3})

	expected := Vec3{11, 22, 33}
	if result != expected {
		t.Errorf("TransformPoint: got %v, want %v", result, expected)
	}
}

func TestRotateY90(t *testing.T) {
	m := RotateY(float32(math.Pi / 2)) // 90 degrees
	result := m.TransformPoint(Vec3{1, 0, 0})

	// After 90 degree Y rotation, (1,0,0) should become approximately (0,0,-1)
	if abs(result.X) > 0.001 || abs(result.Y) > 0.001 || abs(result.Z+1) > 0.001 {
		t.Errorf("RotateY 90: got %v, want (0, 0, -1)", result)
	}
}

func TestTranslatedMatchesMul(t *testing.T) {
	m := RotateY(0.3).Mul(RotateX(0.7))
	v := Vec3{2, -1, 4}

	got := m.Translated(v)
	want := m.Mul(Translate(v.X, v.Y, v.Z))
	for i := 0; i < 16; i++ {
		if abs(got[i]-want[i]) > 1e-6 {
			t.Errorf("Translated element %d: got %f, want %f", i, got[i], want[i])
		}
	}
}

func TestRotatedMatchesMul(t *testing.T) {
	m := Translate(1, 2, 3).Mul(RotateZ(0.4))
	angle := float32(0.9)

	cases := []struct {
		name string
		got  Mat4
		want Mat4
	}{
		{"X", m.RotatedX(angle), m.Mul(RotateX(angle))},
		{"Y", m.RotatedY(angle), m.Mul(RotateY(angle))},
		{"Z", m.RotatedZ(angle), m.Mul(RotateZ(angle))},
	}
	for _, c := range cases {
		for i := 0; i < 16; i++ {
			if abs(c.got[i]-c.want[i]) > 1e-6 {
				t.Errorf("Rotated%s element %d: got %f, want %f", c.name, i, c.got[i], c.want[i])
			}
		}
	}
}

func TestRotatedKeepsTranslationColumn(t *testing.T) {
	m := Identity().Translated(Vec3{2, 0, 0})
	m = m.RotatedX(0.5).RotatedY(1.1).RotatedZ(-0.3)

	if m[12] != 2 || m[13] != 0 || m[14] != 0 || m[15] != 1 {
		t.Errorf("rotation touched translation column: got (%f, %f, %f, %f)", m[12], m[13], m[14], m[15])
	}
}

func TestPerspective(t *testing.T) {
	fov := float32(math.Pi / 2) // 90 degrees, so f = 1/tan(fov/2) = 1
	aspect := float32(2.0)
	near := float32(0.1)
	far := float32(100.0)

	m := Perspective(fov, aspect, near, far)

	if abs(m[0]-0.5) > 1e-6 {
		t.Errorf("Perspective [0] = %f, want f/aspect = 0.5", m[0])
	}
	if abs(m[5]-1) > 1e-6 {
		t.Errorf("Perspective [5] = %f, want f = 1", m[5])
	}
	// Element [11] should be -1 and [15] should be 0 for perspective projection
	if m[11] != -1 {
		t.Errorf("Perspective [11] should be -1, got %f", m[11])
	}
	if m[15] != 0 {
		t.Errorf("Perspective [15] should be 0, got %f", m[15])
	}
}

func TestPerspectiveDepthRange(t *testing.T) {
	near := float32(1.0)
	far := float32(10.0)
	m := Perspective(float32(math.Pi/3), 1, near, far)

	// Points on the near and far planes should map to depth -1 and +1
	// after the perspective divide.
	nearClip := m.MulVec4(Vec4{0, 0, -near, 1})
	farClip := m.MulVec4(Vec4{0, 0, -far, 1})

	if abs(nearClip[2]/nearClip[3]+1) > 1e-5 {
		t.Errorf("near plane depth: got %f, want -1", nearClip[2]/nearClip[3])
	}
	if abs(farClip[2]/farClip[3]-1) > 1e-5 {
		t.Errorf("far plane depth: got %f, want 1", farClip[2]/farClip[3])
	}
}

func TestTranspose(t *testing.T) {
	m := Mat4{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 16,
	}
	tr := m.Transpose()

	// Row i of m becomes column i of the transpose.
	want := Mat4{
		1, 5, 9, 13,
		2, 6, 10, 14,
		3, 7, 11, 15,
		4, 8, 12, 16,
	}
	if tr != want {
		t.Errorf("Transpose: got %v, want %v", tr, want)
	}
}

func TestTransposeRoundTrip(t *testing.T) {
	m := Translate(1, 2, 3).Mul(RotateY(0.8))
	orig := m

	// In-place usage must round-trip exactly, no epsilon.
	m = m.Transpose()
	m = m.Transpose()
	if m != orig {
		t.Errorf("double transpose: got %v, want %v", m, orig)
	}

	// Out-of-place as well.
	if got := orig.Transpose().Transpose(); got != orig {
		t.Errorf("double transpose out-of-place: got %v, want %v", got, orig)
	}
}

func TestInverse(t *testing.T) {
	m := Identity().Translated(Vec3{1, -2, 3}).RotatedY(0.7).RotatedX(-0.2)

	inv, ok := m.Inverse()
	if !ok {
		t.Fatal("Inverse reported failure for an invertible matrix")
	}

	id := Identity()
	for name, got := range map[string]Mat4{
		"M * M^-1": m.Mul(inv),
		"M^-1 * M": inv.Mul(m),
	} {
		for i := 0; i < 16; i++ {
			if abs(got[i]-id[i]) > 1e-5 {
				t.Errorf("%s element %d: got %f, want %f", name, i, got[i], id[i])
			}
		}
	}
}

func TestInverseSingular(t *testing.T) {
	singular := Scale(1, 1, 0)

	dst := Translate(7, 8, 9)
	inv, ok := singular.Inverse()
	if ok {
		t.Fatal("Inverse should report failure for a singular matrix")
	}
	if inv != (Mat4{}) {
		t.Errorf("failed Inverse should return the zero matrix, got %v", inv)
	}

	// The caller's destination stays whatever it was.
	if dst != Translate(7, 8, 9) {
		t.Errorf("destination modified on failure: %v", dst)
	}
}

func TestNormalMatrixRotation(t *testing.T) {
	// For a pure rotation the inverse-transpose is the rotation itself.
	m := RotateY(0.6).Mul(RotateX(0.25))
	got := m.NormalMatrix()

	for i := 0; i < 16; i++ {
		if abs(got[i]-m[i]) > 1e-5 {
			t.Errorf("NormalMatrix element %d: got %f, want %f", i, got[i], m[i])
		}
	}
}

func TestNormalMatrixSingular(t *testing.T) {
	got := Scale(0, 1, 1).NormalMatrix()
	if got != Identity() {
		t.Errorf("NormalMatrix of singular matrix: got %v, want identity", got)
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
