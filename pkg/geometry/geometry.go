// Package geometry provides the canonical unit meshes for shape
// primitives as interleaved vertex and index buffers.
package geometry

import (
	"fmt"

	"github.com/brickforge/partscene/pkg/math"
)

// VertexStride is the number of floats per vertex: position xyz
// followed by normal xyz.
const VertexStride = 6

// MaxVertices is the largest vertex count addressable by the uint16
// index buffer.
const MaxVertices = 1 << 16

// Geometry is an immutable triangle mesh. Vertices holds VertexStride
// floats per vertex, Indices holds three entries per triangle wound
// counter-clockwise when seen from outside.
type Geometry struct {
	Vertices []float32
	Indices  []uint16
}

// VertexCount returns the number of vertices in the buffer.
func (g Geometry) VertexCount() int {
	return len(g.Vertices) / VertexStride
}

// TriangleCount returns the number of triangles in the index buffer.
func (g Geometry) TriangleCount() int {
	return len(g.Indices) / 3
}

// Validate checks the buffer contract: a whole number of interleaved
// vertices, a whole number of triangles, every index in range and the
// vertex count within the 16-bit index budget.
func (g Geometry) Validate() error {
	if len(g.Vertices)%VertexStride != 0 {
		return fmt.Errorf("vertex buffer length %d is not a multiple of %d", len(g.Vertices), VertexStride)
	}
	count := g.VertexCount()
	if count > MaxVertices {
		return fmt.Errorf("vertex count %d exceeds uint16 index range", count)
	}
	if len(g.Indices)%3 != 0 {
		return fmt.Errorf("index buffer length %d is not a multiple of 3", len(g.Indices))
	}
	for i, idx := range g.Indices {
		if int(idx) >= count {
			return fmt.Errorf("index %d at position %d out of range (%d vertices)", idx, i, count)
		}
	}
	return nil
}

// addVertex appends one interleaved vertex and returns its index.
func (g *Geometry) addVertex(p, n math.Vec3) uint16 {
	g.Vertices = append(g.Vertices, p.X, p.Y, p.Z, n.X, n.Y, n.Z)
	return uint16(len(g.Vertices)/VertexStride - 1)
}

// addQuad appends four vertices sharing a flat normal and the two
// triangles covering them. Corners are given counter-clockwise.
func (g *Geometry) addQuad(a, b, c, d, n math.Vec3) {
	i := g.addVertex(a, n)
	g.addVertex(b, n)
	g.addVertex(c, n)
	g.addVertex(d, n)
	g.Indices = append(g.Indices, i, i+1, i+2, i, i+2, i+3)
}

// addTriangle appends three vertices sharing a flat normal and one
// triangle covering them. Corners are given counter-clockwise.
func (g *Geometry) addTriangle(a, b, c, n math.Vec3) {
	i := g.addVertex(a, n)
	g.addVertex(b, n)
	g.addVertex(c, n)
	g.Indices = append(g.Indices, i, i+1, i+2)
}
