package geometry

import "github.com/brickforge/partscene/pkg/math"

// Wedge returns the unit ramp: a right-triangular prism extruded along
// Z from -1 to 1. The base sits at y=-1, the vertical face at x=-1 and
// the apex edge at (-1, 1), so the slope descends toward +X. Five flat
// faces give 18 vertices and 24 indices.
func Wedge() Geometry {
	g := Geometry{
		Vertices: make([]float32, 0, 18*VertexStride),
		Indices:  make([]uint16, 0, 24),
	}

	slope := math.Vec3{X: 1, Y: 1}.Normalize()

	// Bottom (-Y)
	g.addQuad(
		math.Vec3{X: -1, Y: -1, Z: -1},
		math.Vec3{X: 1, Y: -1, Z: -1},
		math.Vec3{X: 1, Y: -1, Z: 1},
		math.Vec3{X: -1, Y: -1, Z: 1},
		math.Vec3{Y: -1},
	)
	// Vertical back (-X)
	g.addQuad(
		math.Vec3{X: -1, Y: -1, Z: -1},
		math.Vec3{X: -1, Y: -1, Z: 1},
		math.Vec3{X: -1, Y: 1, Z: 1},
		math.Vec3{X: -1, Y: 1, Z: -1},
		math.Vec3{X: -1},
	)
	// Slope from the apex edge down to the +X base edge
	g.addQuad(
		math.Vec3{X: 1, Y: -1, Z: 1},
		math.Vec3{X: 1, Y: -1, Z: -1},
		math.Vec3{X: -1, Y: 1, Z: -1},
		math.Vec3{X: -1, Y: 1, Z: 1},
		slope,
	)
	// Front cap (+Z)
	g.addTriangle(
		math.Vec3{X: -1, Y: -1, Z: 1},
		math.Vec3{X: 1, Y: -1, Z: 1},
		math.Vec3{X: -1, Y: 1, Z: 1},
		math.Vec3{Z: 1},
	)
	// Back cap (-Z)
	g.addTriangle(
		math.Vec3{X: 1, Y: -1, Z: -1},
		math.Vec3{X: -1, Y: -1, Z: -1},
		math.Vec3{X: -1, Y: 1, Z: -1},
		math.Vec3{Z: -1},
	)

	return g
}
