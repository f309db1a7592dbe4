// SPDX-License-Identifier: MIT
// Package: vsa/builder
//
// impl_platonic.go - implementation of PlatonicSolid(name) constructor.
//
// Contract:
//   • name ∈ {Tetrahedron, Cube, Octahedron, Icosahedron}.
//   • Unknown name → ErrOptionViolation (invalid parameter).
//   • Appends vertices and faces in dataset order, then orients every face
//     outward (away from the solid's center).
//   • The result is a closed 2-manifold: three neighbors per triangle.
//
// Complexity:
//   • Time: O(V+F) for the selected solid (V≤12, F≤20).

package builder

import (
	"fmt"
)

// PlatonicSolid returns a Constructor that appends the chosen solid.
func PlatonicSolid(name PlatonicName) Constructor {
	return func(b *meshBuffer, _ builderConfig) error {
		// 1) Lookup the canonical dataset.
		solid, ok := platonicSolids[name]
		if !ok {
			return fmt.Errorf("%s: unknown solid %q: %w", MethodPlatonicSolid, name, ErrOptionViolation)
		}

		// 2) Append vertices, remembering the base offset for face remapping.
		base := len(b.vertices)
		firstFace := len(b.faces)
		for _, v := range solid.vertices {
			b.addVertex(v)
		}

		// 3) Append faces in dataset order.
		for _, f := range solid.faces {
			b.addFace(base+f[0], base+f[1], base+f[2])
		}

		// 4) Normalize winding so that every normal points outward.
		b.orientOutward(firstFace, b.centroidFrom(base))

		return nil
	}
}
