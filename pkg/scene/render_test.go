package scene

import (
	"errors"
	"testing"

	"github.com/brickforge/partscene/pkg/geometry"
	"github.com/brickforge/partscene/pkg/math"
)

// recordBackend captures every call so tests can inspect the draw
// stream without a GPU.
type recordBackend struct {
	uploads  int
	uniforms []Uniforms
	draws    []MeshID
	fail     bool
}

func (b *recordBackend) UploadGeometry(g geometry.Geometry) (MeshID, error) {
	if b.fail {
		return 0, errors.New("upload refused")
	}
	b.uploads++
	return MeshID(b.uploads), nil
}

func (b *recordBackend) SetUniforms(u Uniforms) {
	b.uniforms = append(b.uniforms, u)
}

func (b *recordBackend) DrawIndexed(id MeshID) {
	b.draws = append(b.draws, id)
}

func TestRendererUploadsGeometryOnce(t *testing.T) {
	s := New(DefaultConfig())
	s.CreateShape(Cuboid, Frame{}, NewMaterial([3]float32{1, 1, 1}))
	s.CreateShape(Ellipsoid, Frame{}, NewMaterial([3]float32{1, 1, 1}))

	b := &recordBackend{}
	r := NewRenderer(b)

	for frame := 0; frame < 3; frame++ {
		if err := r.Render(s); err != nil {
			t.Fatalf("frame %d: %v", frame, err)
		}
	}

	if b.uploads != 2 {
		t.Errorf("uploads = %d, want 2", b.uploads)
	}
	if len(b.draws) != 6 {
		t.Errorf("draws = %d, want 6", len(b.draws))
	}
}

func TestRendererDrawsInSceneOrder(t *testing.T) {
	s := New(DefaultConfig())
	s.CreateShape(Cuboid, Frame{}, NewMaterial([3]float32{1, 1, 1}))
	s.CreateShape(Wedge, Frame{}, NewMaterial([3]float32{1, 1, 1}))

	b := &recordBackend{}
	if err := NewRenderer(b).Render(s); err != nil {
		t.Fatal(err)
	}

	if len(b.draws) != 2 || b.draws[0] != 1 || b.draws[1] != 2 {
		t.Errorf("draw order = %v", b.draws)
	}
}

func TestRendererUniforms(t *testing.T) {
	cfg := DefaultConfig()
	s := New(cfg)
	s.Camera.Position = math.Vec3{Z: 10}
	mat := Material{Color: [3]float32{1, 0, 0}, Shininess: 0.9, Mirror: true}
	s.CreateShape(Cuboid, Frame{Position: math.Vec3{X: 1, Y: 2, Z: 3}}, mat)

	b := &recordBackend{}
	if err := NewRenderer(b).Render(s); err != nil {
		t.Fatal(err)
	}
	if len(b.uniforms) != 1 {
		t.Fatalf("uniform sets = %d, want 1", len(b.uniforms))
	}
	u := b.uniforms[0]

	if u.Model[12] != 1 || u.Model[13] != 2 || u.Model[14] != 3 {
		t.Errorf("model translation = (%f, %f, %f)", u.Model[12], u.Model[13], u.Model[14])
	}
	if u.View != s.Camera.ViewMatrix() {
		t.Error("view matrix differs from the camera's")
	}
	if u.Projection != s.Camera.ProjectionMatrix() {
		t.Error("projection matrix differs from the camera's")
	}
	if u.Color != mat.Color || u.Shininess != 0.9 || !u.Mirror {
		t.Errorf("material uniforms = %v/%f/%v", u.Color, u.Shininess, u.Mirror)
	}
	if u.LightDir != s.LightDir || u.AmbientColor != s.AmbientColor {
		t.Error("light uniforms differ from the scene's")
	}
	if u.CameraPos != s.Camera.Position {
		t.Errorf("camera position uniform = %v", u.CameraPos)
	}
}

func TestRendererNormalMatrix(t *testing.T) {
	s := New(DefaultConfig())
	s.CreateShape(Cuboid, Frame{Rotation: math.Vec3{Y: 90}}, NewMaterial([3]float32{1, 1, 1}))

	b := &recordBackend{}
	if err := NewRenderer(b).Render(s); err != nil {
		t.Fatal(err)
	}
	u := b.uniforms[0]

	// A rigid placement is orthonormal, so the inverse-transpose equals
	// the placement's rotation part.
	for i := 0; i < 16; i++ {
		if absf(u.Normal[i]-u.Model[i]) > 1e-5 {
			t.Errorf("normal matrix element %d: got %f, want %f", i, u.Normal[i], u.Model[i])
			break
		}
	}
}

func TestDegenerateModelNormalFallback(t *testing.T) {
	// Frames cannot produce a singular model matrix, but the normal
	// matrix source the draw path uses must still degrade safely if
	// handed one.
	if got := (math.Mat4{}).NormalMatrix(); got != math.Identity() {
		t.Errorf("degenerate model yields normal matrix %v, want identity", got)
	}
}

func TestRendererUploadFailure(t *testing.T) {
	s := New(DefaultConfig())
	s.CreateShape(Cuboid, Frame{}, NewMaterial([3]float32{1, 1, 1}))

	b := &recordBackend{fail: true}
	if err := NewRenderer(b).Render(s); err == nil {
		t.Fatal("Render succeeded with a failing backend")
	}
	if len(b.draws) != 0 {
		t.Error("draw issued despite failed upload")
	}
}
