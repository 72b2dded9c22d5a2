package scene

import (
	"strings"

	"github.com/brickforge/partscene/pkg/geometry"
)

// ShapeType identifies one of the fixed shape primitives.
type ShapeType int

// The closed set of primitives. Every ShapeType has a canonical unit
// geometry; there is no mechanism for registering more.
const (
	Cuboid ShapeType = iota
	Ellipsoid
	Cylinder
	Wedge
)

// String returns the canonical lower-case name of the type.
func (t ShapeType) String() string {
	switch t {
	case Cuboid:
		return "cuboid"
	case Ellipsoid:
		return "ellipsoid"
	case Cylinder:
		return "cylinder"
	case Wedge:
		return "wedge"
	}
	return "unknown"
}

// ParseShapeType resolves a shape name to its type. Matching is
// case-insensitive and accepts the cube and sphere aliases. Unknown
// names report false along with the Cuboid default.
func ParseShapeType(name string) (ShapeType, bool) {
	switch strings.ToLower(name) {
	case "cuboid", "cube":
		return Cuboid, true
	case "ellipsoid", "sphere":
		return Ellipsoid, true
	case "cylinder":
		return Cylinder, true
	case "wedge":
		return Wedge, true
	}
	return Cuboid, false
}

// GeometryFor generates the canonical unit mesh for a shape type.
// Types outside the known set get the cuboid mesh.
func GeometryFor(t ShapeType) geometry.Geometry {
	switch t {
	case Ellipsoid:
		return geometry.Ellipsoid()
	case Cylinder:
		return geometry.Cylinder()
	case Wedge:
		return geometry.Wedge()
	}
	return geometry.Cuboid()
}

// Shape is one placed primitive: its type tag, a mutable placement
// frame, a material and the unit geometry generated once at creation.
type Shape struct {
	Type     ShapeType
	Frame    Frame
	Material Material
	Geometry geometry.Geometry
}
