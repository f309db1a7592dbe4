// SPDX-License-Identifier: MIT
// Package: vsa/builder
//
// variants_platonic.go - canonical vertex/face data for triangulated Platonic solids.
//
// Design:
//   • Single source of truth for the supported solids (positions and faces).
//   • Datasets are package-level and never mutated; constructors copy them.
//   • Faces are triangles. The Cube lists its six square faces as consecutive
//     triangle pairs (2f, 2f+1), so triangle index / 2 identifies the square.
//
// Determinism:
//   • Vertex and face order is fixed by the tables below.

package builder

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// PlatonicName enumerates the supported solids.
type PlatonicName int

// String provides a readable identifier for logs/errors (deterministic).
func (p PlatonicName) String() string {
	switch p {
	case Tetrahedron:
		return "Tetrahedron"
	case Cube:
		return "Cube"
	case Octahedron:
		return "Octahedron"
	case Icosahedron:
		return "Icosahedron"
	default:
		return "Unknown"
	}
}

// Enum values (stable ordering).
const (
	Tetrahedron PlatonicName = iota // V=4,  F=4
	Cube                            // V=8,  F=12 (6 squares × 2)
	Octahedron                      // V=6,  F=8
	Icosahedron                     // V=12, F=20
)

// platonicSolid is one immutable dataset.
type platonicSolid struct {
	vertices []mgl64.Vec3
	faces    [][3]int
}

// phi is the golden ratio used by the icosahedron coordinates.
var phi = (1 + math.Sqrt(5)) / 2

// platonicSolids maps each solid to its dataset. All solids are centered at
// the origin; orientation is normalized outward by the constructor.
var platonicSolids = map[PlatonicName]platonicSolid{
	Tetrahedron: {
		vertices: []mgl64.Vec3{{1, 1, 1}, {1, -1, -1}, {-1, 1, -1}, {-1, -1, 1}},
		faces:    [][3]int{{0, 1, 2}, {0, 3, 1}, {0, 2, 3}, {1, 3, 2}},
	},
	Cube: {
		// index bits: x = i&1, y = i&2, z = i&4 (0 → -0.5, 1 → +0.5)
		vertices: []mgl64.Vec3{
			{-0.5, -0.5, -0.5}, {0.5, -0.5, -0.5}, {-0.5, 0.5, -0.5}, {0.5, 0.5, -0.5},
			{-0.5, -0.5, 0.5}, {0.5, -0.5, 0.5}, {-0.5, 0.5, 0.5}, {0.5, 0.5, 0.5},
		},
		faces: [][3]int{
			{0, 2, 1}, {1, 2, 3}, // -Z
			{4, 5, 6}, {5, 7, 6}, // +Z
			{0, 1, 4}, {1, 5, 4}, // -Y
			{2, 6, 3}, {3, 6, 7}, // +Y
			{0, 4, 2}, {2, 4, 6}, // -X
			{1, 3, 5}, {3, 7, 5}, // +X
		},
	},
	Octahedron: {
		vertices: []mgl64.Vec3{{1, 0, 0}, {-1, 0, 0}, {0, 1, 0}, {0, -1, 0}, {0, 0, 1}, {0, 0, -1}},
		faces: [][3]int{
			{0, 2, 4}, {2, 1, 4}, {1, 3, 4}, {3, 0, 4},
			{2, 0, 5}, {1, 2, 5}, {3, 1, 5}, {0, 3, 5},
		},
	},
	Icosahedron: {
		vertices: []mgl64.Vec3{
			{-1, phi, 0}, {1, phi, 0}, {-1, -phi, 0}, {1, -phi, 0},
			{0, -1, phi}, {0, 1, phi}, {0, -1, -phi}, {0, 1, -phi},
			{phi, 0, -1}, {phi, 0, 1}, {-phi, 0, -1}, {-phi, 0, 1},
		},
		faces: [][3]int{
			{0, 11, 5}, {0, 5, 1}, {0, 1, 7}, {0, 7, 10}, {0, 10, 11},
			{1, 5, 9}, {5, 11, 4}, {11, 10, 2}, {10, 7, 6}, {7, 1, 8},
			{3, 9, 4}, {3, 4, 2}, {3, 2, 6}, {3, 6, 8}, {3, 8, 9},
			{4, 9, 5}, {2, 4, 11}, {6, 2, 10}, {8, 6, 7}, {9, 8, 1},
		},
	},
}
