package geometry

import (
	"fmt"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// Document builds a single-mesh glTF document from g so the
// tessellation can be inspected in external viewers. The interleaved
// buffer is split into the separate position and normal accessors the
// format expects.
func Document(g Geometry, name string) *gltf.Document {
	count := g.VertexCount()
	positions := make([][3]float32, count)
	normals := make([][3]float32, count)
	for i := 0; i < count; i++ {
		base := i * VertexStride
		positions[i] = [3]float32{g.Vertices[base], g.Vertices[base+1], g.Vertices[base+2]}
		normals[i] = [3]float32{g.Vertices[base+3], g.Vertices[base+4], g.Vertices[base+5]}
	}

	doc := gltf.NewDocument()
	doc.Meshes = []*gltf.Mesh{{
		Name: name,
		Primitives: []*gltf.Primitive{{
			Indices: gltf.Index(modeler.WriteIndices(doc, g.Indices)),
			Attributes: gltf.PrimitiveAttributes{
				gltf.POSITION: modeler.WritePosition(doc, positions),
				gltf.NORMAL:   modeler.WriteNormal(doc, normals),
			},
		}},
	}}
	doc.Nodes = []*gltf.Node{{Name: name, Mesh: gltf.Index(0)}}
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, 0)
	return doc
}

// Export validates g and writes it to path as a .gltf document.
func Export(g Geometry, name, path string) error {
	if err := g.Validate(); err != nil {
		return fmt.Errorf("invalid geometry %q: %w", name, err)
	}
	if err := gltf.Save(Document(g, name), path); err != nil {
		return fmt.Errorf("save %q: %w", path, err)
	}
	return nil
}
