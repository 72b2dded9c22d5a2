package geometry

import "github.com/brickforge/partscene/pkg/math"

// Cuboid returns the unit cube spanning [-1,1] on every axis. Each
// face carries its own four vertices so normals stay flat: 24 vertices
// and 36 indices.
func Cuboid() Geometry {
	g := Geometry{
		Vertices: make([]float32, 0, 24*VertexStride),
		Indices:  make([]uint16, 0, 36),
	}

	// Front (+Z)
	g.addQuad(
		math.Vec3{X: -1, Y: -1, Z: 1},
		math.Vec3{X: 1, Y: -1, Z: 1},
		math.Vec3{X: 1, Y: 1, Z: 1},
		math.Vec3{X: -1, Y: 1, Z: 1},
		math.Vec3{Z: 1},
	)
	// Back (-Z)
	g.addQuad(
		math.Vec3{X: 1, Y: -1, Z: -1},
		math.Vec3{X: -1, Y: -1, Z: -1},
		math.Vec3{X: -1, Y: 1, Z: -1},
		math.Vec3{X: 1, Y: 1, Z: -1},
		math.Vec3{Z: -1},
	)
	// Top (+Y)
	g.addQuad(
		math.Vec3{X: -1, Y: 1, Z: 1},
		math.Vec3{X: 1, Y: 1, Z: 1},
		math.Vec3{X: 1, Y: 1, Z: -1},
		math.Vec3{X: -1, Y: 1, Z: -1},
		math.Vec3{Y: 1},
	)
	// Bottom (-Y)
	g.addQuad(
		math.Vec3{X: -1, Y: -1, Z: -1},
		math.Vec3{X: 1, Y: -1, Z: -1},
		math.Vec3{X: 1, Y: -1, Z: 1},
		math.Vec3{X: -1, Y: -1, Z: 1},
		math.Vec3{Y: -1},
	)
	// Right (+X)
	g.addQuad(
		math.Vec3{X: 1, Y: -1, Z: 1},
		math.Vec3{X: 1, Y: -1, Z: -1},
		math.Vec3{X: 1, Y: 1, Z: -1},
		math.Vec3{X: 1, Y: 1, Z: 1},
		math.Vec3{X: 1},
	)
	// Left (-X)
	g.addQuad(
		math.Vec3{X: -1, Y: -1, Z: -1},
		math.Vec3{X: -1, Y: -1, Z: 1},
		math.Vec3{X: -1, Y: 1, Z: 1},
		math.Vec3{X: -1, Y: 1, Z: -1},
		math.Vec3{X: -1},
	)

	return g
}
