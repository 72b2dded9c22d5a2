// meshdump is a CLI utility that exports the built-in shape meshes as
// glTF documents.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/brickforge/partscene/pkg/geometry"
	"github.com/brickforge/partscene/pkg/scene"
)

// allShapes is the export set when no names are given.
var allShapes = []string{"cuboid", "ellipsoid", "cylinder", "wedge"}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "export", "x":
		cmdExport(args)
	case "info":
		cmdInfo(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`meshdump - shape mesh export utility

Usage:
  meshdump <command> [options]

Commands:
  export [-o dir] [shape...]   Write shape meshes as glTF files
  info [shape...]              Show mesh statistics

Shapes: cuboid (cube), ellipsoid (sphere), cylinder, wedge.
With no shapes given, all four are used.

Examples:
  meshdump export -o ./meshes
  meshdump export sphere wedge
  meshdump info cylinder`)
}

// resolve maps shape names to types, exiting on names that do not
// parse. Aliases collapse, so "cube" and "cuboid" both yield cuboid.
func resolve(names []string) []scene.ShapeType {
	if len(names) == 0 {
		names = allShapes
	}

	seen := make(map[scene.ShapeType]bool)
	var types []scene.ShapeType
	for _, name := range names {
		t, ok := scene.ParseShapeType(name)
		if !ok {
			fmt.Fprintf(os.Stderr, "Unknown shape: %s\n", name)
			os.Exit(1)
		}
		if seen[t] {
			continue
		}
		seen[t] = true
		types = append(types, t)
	}
	return types
}

func cmdExport(args []string) {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	outDir := fs.String("o", ".", "Output directory")
	fs.Parse(args)

	types := resolve(fs.Args())

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	for _, t := range types {
		g := scene.GeometryFor(t)
		path := filepath.Join(*outDir, t.String()+".gltf")
		if err := geometry.Export(g, t.String(), path); err != nil {
			fmt.Fprintf(os.Stderr, "Error exporting %s: %v\n", t, err)
			os.Exit(1)
		}
		fmt.Printf("%-10s %s\n", t, path)
	}
}

func cmdInfo(args []string) {
	fs := flag.NewFlagSet("info", flag.ExitOnError)
	fs.Parse(args)

	types := resolve(fs.Args())

	fmt.Printf("%-10s %9s %9s %10s\n", "shape", "vertices", "indices", "triangles")
	for _, t := range types {
		g := scene.GeometryFor(t)
		if err := g.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s mesh invalid: %v\n", t, err)
			os.Exit(1)
		}
		fmt.Printf("%-10s %9d %9d %10d\n", t, g.VertexCount(), len(g.Indices), g.TriangleCount())
	}
}
