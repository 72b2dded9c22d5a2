package geometry

import (
	"github.com/chewxy/math32"

	"github.com/brickforge/partscene/pkg/math"
)

// Ellipsoid returns the unit UV sphere with 16 latitude and 16
// longitude bands. The seam column is duplicated, so each of the 17
// rings holds 17 vertices. On the unit sphere the normal equals the
// position.
func Ellipsoid() Geometry {
	const bands = 16
	const ring = bands + 1

	g := Geometry{
		Vertices: make([]float32, 0, ring*ring*VertexStride),
		Indices:  make([]uint16, 0, bands*bands*6),
	}

	for lat := 0; lat <= bands; lat++ {
		theta := float32(lat) * math32.Pi / bands
		sinTheta := math32.Sin(theta)
		cosTheta := math32.Cos(theta)

		for lon := 0; lon <= bands; lon++ {
			phi := float32(lon) * 2 * math32.Pi / bands
			p := math.Vec3{
				X: sinTheta * math32.Cos(phi),
				Y: cosTheta,
				Z: sinTheta * math32.Sin(phi),
			}
			g.addVertex(p, p)
		}
	}

	for lat := 0; lat < bands; lat++ {
		for lon := 0; lon < bands; lon++ {
			first := uint16(lat*ring + lon)
			second := first + ring
			g.Indices = append(g.Indices,
				first, first+1, second,
				first+1, second+1, second,
			)
		}
	}

	return g
}
