package geometry

import (
	"github.com/chewxy/math32"

	"github.com/brickforge/partscene/pkg/math"
)

// Cylinder returns the unit cylinder: radius 1, height 2 along Y, 16
// segments. Cap vertices and side vertices are separate pools so the
// caps stay flat while the barrel shades smoothly: 2 centers, a rim
// ring per cap and two side rings make 66 vertices and 192 indices.
func Cylinder() Geometry {
	const segments = 16

	g := Geometry{
		Vertices: make([]float32, 0, (2+4*segments)*VertexStride),
		Indices:  make([]uint16, 0, segments*12),
	}

	up := math.Vec3{Y: 1}
	down := math.Vec3{Y: -1}

	topCenter := g.addVertex(up, up)
	bottomCenter := g.addVertex(down, down)

	// One ring of radial XZ directions shared by all four pools.
	var dirs [segments]math.Vec3
	for i := range dirs {
		phi := float32(i) * 2 * math32.Pi / segments
		dirs[i] = math.Vec3{X: math32.Cos(phi), Z: math32.Sin(phi)}
	}

	var topRim, bottomRim, sideTop, sideBottom [segments]uint16
	for i, d := range dirs {
		topRim[i] = g.addVertex(math.Vec3{X: d.X, Y: 1, Z: d.Z}, up)
	}
	for i, d := range dirs {
		bottomRim[i] = g.addVertex(math.Vec3{X: d.X, Y: -1, Z: d.Z}, down)
	}
	for i, d := range dirs {
		sideTop[i] = g.addVertex(math.Vec3{X: d.X, Y: 1, Z: d.Z}, d)
	}
	for i, d := range dirs {
		sideBottom[i] = g.addVertex(math.Vec3{X: d.X, Y: -1, Z: d.Z}, d)
	}

	for i := 0; i < segments; i++ {
		next := (i + 1) % segments
		g.Indices = append(g.Indices,
			topCenter, topRim[next], topRim[i],
			bottomCenter, bottomRim[i], bottomRim[next],
		)
		g.Indices = append(g.Indices,
			sideTop[i], sideTop[next], sideBottom[next],
			sideTop[i], sideBottom[next], sideBottom[i],
		)
	}

	return g
}
