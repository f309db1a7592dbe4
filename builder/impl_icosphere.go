// SPDX-License-Identifier: MIT
// Package: vsa/builder
//
// impl_icosphere.go - implementation of Icosphere(subdivisions) constructor.
//
// Canonical model:
//   • Start from the Icosahedron dataset projected to the unit sphere.
//   • Each subdivision splits every triangle (a,b,c) into four:
//     (a,ab,ca), (b,bc,ab), (c,ca,bc), (ab,bc,ca), where xy is the edge
//     midpoint pushed back onto the sphere. Midpoints are shared between the
//     two faces of an edge via an edge-keyed cache, so the surface stays a
//     closed manifold.
//
// Contract:
//   • 0 ≤ subdivisions ≤ MaxIcosphereSubdivisions (else ErrTooSmall/ErrTooLarge).
//   • Face count = 20·4^subdivisions; vertex count = 10·4^subdivisions + 2.
//
// Complexity:
//   • Time: O(20·4^s). Space: O(20·4^s) for the face lists and midpoint cache.

package builder

import "github.com/katalvlaran/vsa/mesh"

// Icosphere returns a Constructor that appends a subdivided unit icosphere.
func Icosphere(subdivisions int) Constructor {
	return func(b *meshBuffer, _ builderConfig) error {
		if err := validateMin(MethodIcosphere, "subdivisions", subdivisions, 0); err != nil {
			return err
		}
		if err := validateMax(MethodIcosphere, "subdivisions", subdivisions, MaxIcosphereSubdivisions); err != nil {
			return err
		}

		solid := platonicSolids[Icosahedron]
		base := len(b.vertices)
		for _, v := range solid.vertices {
			b.addVertex(v.Normalize())
		}
		faces := make([][3]int, len(solid.faces))
		for i, f := range solid.faces {
			faces[i] = [3]int{base + f[0], base + f[1], base + f[2]}
		}

		for s := 0; s < subdivisions; s++ {
			mid := make(map[mesh.Edge]int, len(faces)*3/2)
			midpoint := func(u, v int) int {
				k := mesh.NewEdge(u, v)
				if m, ok := mid[k]; ok {
					return m
				}
				m := b.addVertex(b.vertices[u].Add(b.vertices[v]).Normalize())
				mid[k] = m

				return m
			}

			next := make([][3]int, 0, len(faces)*4)
			for _, f := range faces {
				ab := midpoint(f[0], f[1])
				bc := midpoint(f[1], f[2])
				ca := midpoint(f[2], f[0])
				next = append(next,
					[3]int{f[0], ab, ca},
					[3]int{f[1], bc, ab},
					[3]int{f[2], ca, bc},
					[3]int{ab, bc, ca},
				)
			}
			faces = next
		}

		firstFace := len(b.faces)
		for _, f := range faces {
			b.addFace(f[0], f[1], f[2])
		}
		b.orientOutward(firstFace, b.centroidFrom(base))

		return nil
	}
}
