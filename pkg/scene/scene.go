// Package scene assembles shape primitives, a free camera and a single
// directional light into a renderable world. A Scene is an explicit
// value owned by the caller; nothing in this package holds global
// state.
package scene

import "github.com/brickforge/partscene/pkg/math"

// Config contains scene construction options.
type Config struct {
	// Camera projection.
	FOV    float32
	Aspect float32
	Near   float32
	Far    float32

	// Directional sun light.
	LightDir     math.Vec3
	AmbientColor [3]float32
	DiffuseColor [3]float32

	// Clear color for the backend.
	Background [3]float32
}

// DefaultConfig returns a scene configuration with a high morning sun
// and a 45 degree camera.
func DefaultConfig() Config {
	return Config{
		FOV:          45,
		Aspect:       16.0 / 9.0,
		Near:         0.1,
		Far:          1000,
		LightDir:     math.Vec3{X: 0.5, Y: 0.866, Z: 0},
		AmbientColor: [3]float32{0.3, 0.3, 0.3},
		DiffuseColor: [3]float32{1.0, 1.0, 1.0},
		Background:   [3]float32{0.15, 0.15, 0.2},
	}
}

// Scene holds the flat shape collection, the camera and the light
// parameters shared by every draw.
type Scene struct {
	Camera Camera

	LightDir     math.Vec3
	AmbientColor [3]float32
	DiffuseColor [3]float32
	Background   [3]float32

	shapes []*Shape
}

// New creates an empty scene from the configuration.
func New(cfg Config) *Scene {
	return &Scene{
		Camera:       NewCamera(cfg.FOV, cfg.Aspect, cfg.Near, cfg.Far),
		LightDir:     cfg.LightDir.Normalize(),
		AmbientColor: cfg.AmbientColor,
		DiffuseColor: cfg.DiffuseColor,
		Background:   cfg.Background,
	}
}

// CreateShape adds a shape of the given type. The unit geometry is
// generated once here and never regenerated; afterwards only the frame
// and material change.
func (s *Scene) CreateShape(t ShapeType, frame Frame, mat Material) *Shape {
	shape := &Shape{
		Type:     t,
		Frame:    frame,
		Material: mat,
		Geometry: GeometryFor(t),
	}
	s.shapes = append(s.shapes, shape)
	return shape
}

// CreateShapeNamed adds a shape by name, accepting the same aliases as
// ParseShapeType. Unknown names fall back to a cuboid; the second
// return value reports whether the name resolved, so callers can
// surface the fallback.
func (s *Scene) CreateShapeNamed(name string, frame Frame, mat Material) (*Shape, bool) {
	t, ok := ParseShapeType(name)
	return s.CreateShape(t, frame, mat), ok
}

// RemoveShape detaches a shape from the scene. Removing a shape that
// was never added is a no-op.
func (s *Scene) RemoveShape(shape *Shape) {
	for i, sh := range s.shapes {
		if sh == shape {
			s.shapes = append(s.shapes[:i], s.shapes[i+1:]...)
			return
		}
	}
}

// Shapes returns the live shapes in creation order.
func (s *Scene) Shapes() []*Shape {
	return s.shapes
}
