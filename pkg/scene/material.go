package scene

// DefaultShininess is the specular exponent scale applied when a
// material does not override it.
const DefaultShininess = 0.5

// Material describes the surface appearance of a shape. It is a plain
// value: replace it on the shape instead of mutating shared state.
type Material struct {
	Color     [3]float32
	Shininess float32
	Mirror    bool
}

// NewMaterial returns an opaque material in the given color with the
// default shininess and no mirror finish.
func NewMaterial(color [3]float32) Material {
	return Material{Color: color, Shininess: DefaultShininess}
}
