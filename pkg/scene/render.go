package scene

import (
	"fmt"

	"github.com/brickforge/partscene/pkg/geometry"
	"github.com/brickforge/partscene/pkg/math"
)

// MeshID identifies geometry uploaded to a Backend.
type MeshID uint32

// Uniforms is the per-draw state handed to the backend: the matrix
// stack, the material and the scene light.
type Uniforms struct {
	Model      math.Mat4
	View       math.Mat4
	Projection math.Mat4
	// Normal is the inverse-transpose of Model.
	Normal math.Mat4

	Color     [3]float32
	Shininess float32
	Mirror    bool

	LightDir     math.Vec3
	AmbientColor [3]float32
	DiffuseColor [3]float32
	CameraPos    math.Vec3
}

// Backend is the minimal drawing capability the scene depends on.
// Implementations own the GPU resources behind the returned ids.
type Backend interface {
	UploadGeometry(g geometry.Geometry) (MeshID, error)
	SetUniforms(u Uniforms)
	DrawIndexed(id MeshID)
}

// Renderer walks a scene and drives a Backend. It owns the mapping
// from shapes to uploaded meshes: a shape's geometry is sent to the
// backend the first time the shape is drawn and never again.
type Renderer struct {
	backend Backend
	meshes  map[*Shape]MeshID
}

// NewRenderer creates a renderer on top of a backend.
func NewRenderer(b Backend) *Renderer {
	return &Renderer{
		backend: b,
		meshes:  make(map[*Shape]MeshID),
	}
}

// Render draws every shape in the scene with the scene's camera and
// light. The camera matrices are computed once per call, the model and
// normal matrices once per shape.
func (r *Renderer) Render(s *Scene) error {
	view := s.Camera.ViewMatrix()
	proj := s.Camera.ProjectionMatrix()

	for _, shape := range s.Shapes() {
		id, ok := r.meshes[shape]
		if !ok {
			var err error
			id, err = r.backend.UploadGeometry(shape.Geometry)
			if err != nil {
				return fmt.Errorf("uploading %s geometry: %w", shape.Type, err)
			}
			r.meshes[shape] = id
		}

		model := shape.Frame.Matrix()
		r.backend.SetUniforms(Uniforms{
			Model:        model,
			View:         view,
			Projection:   proj,
			Normal:       model.NormalMatrix(),
			Color:        shape.Material.Color,
			Shininess:    shape.Material.Shininess,
			Mirror:       shape.Material.Mirror,
			LightDir:     s.LightDir,
			AmbientColor: s.AmbientColor,
			DiffuseColor: s.DiffuseColor,
			CameraPos:    s.Camera.Position,
		})
		r.backend.DrawIndexed(id)
	}
	return nil
}
