package geometry

import (
	"path/filepath"
	"testing"

	"github.com/qmuntal/gltf"
)

func TestDocumentStructure(t *testing.T) {
	g := Ellipsoid()
	doc := Document(g, "ellipsoid")

	if len(doc.Meshes) != 1 {
		t.Fatalf("meshes = %d, want 1", len(doc.Meshes))
	}
	if doc.Meshes[0].Name != "ellipsoid" {
		t.Errorf("mesh name = %q, want %q", doc.Meshes[0].Name, "ellipsoid")
	}
	if len(doc.Meshes[0].Primitives) != 1 {
		t.Fatalf("primitives = %d, want 1", len(doc.Meshes[0].Primitives))
	}

	prim := doc.Meshes[0].Primitives[0]
	if prim.Indices == nil {
		t.Fatal("primitive has no index accessor")
	}
	if got := doc.Accessors[*prim.Indices].Count; got != len(g.Indices) {
		t.Errorf("index accessor count = %d, want %d", got, len(g.Indices))
	}

	pos, ok := prim.Attributes[gltf.POSITION]
	if !ok {
		t.Fatal("primitive has no position accessor")
	}
	if got := doc.Accessors[pos].Count; got != g.VertexCount() {
		t.Errorf("position accessor count = %d, want %d", got, g.VertexCount())
	}

	norm, ok := prim.Attributes[gltf.NORMAL]
	if !ok {
		t.Fatal("primitive has no normal accessor")
	}
	if got := doc.Accessors[norm].Count; got != g.VertexCount() {
		t.Errorf("normal accessor count = %d, want %d", got, g.VertexCount())
	}

	if len(doc.Scenes) == 0 || len(doc.Scenes[0].Nodes) != 1 {
		t.Error("document has no scene node for the mesh")
	}
}

func TestExportRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wedge.gltf")
	if err := Export(Wedge(), "wedge", path); err != nil {
		t.Fatalf("Export: %v", err)
	}

	doc, err := gltf.Open(path)
	if err != nil {
		t.Fatalf("reopen exported file: %v", err)
	}
	if len(doc.Meshes) != 1 || doc.Meshes[0].Name != "wedge" {
		t.Errorf("reopened document meshes = %v", doc.Meshes)
	}
}

func TestExportRejectsInvalid(t *testing.T) {
	bad := Geometry{
		Vertices: make([]float32, 2*VertexStride),
		Indices:  []uint16{0, 1, 2},
	}
	if err := Export(bad, "bad", filepath.Join(t.TempDir(), "bad.gltf")); err == nil {
		t.Fatal("Export accepted an out-of-range index")
	}
}
