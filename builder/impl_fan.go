// SPDX-License-Identifier: MIT
// Package: vsa/builder
//
// impl_fan.go - implementation of Fan(n) constructor.
//
// Canonical definition:
//   • One center vertex at the origin plus n rim vertices on the unit circle
//     in the z=0 plane; triangle i = (center, rim i, rim i+1 mod n).
//   • All triangles are coplanar with normal +Z and share the center vertex.
//
// Contract:
//   • n ≥ MinFanTriangles (else ErrTooSmall).
//   • Vertices: center first, then rim in ascending angle (deterministic).
//   • Triangle i and i+1 share the edge (center, rim i+1); the fan is closed,
//     so every triangle has exactly two neighbors.
//
// Complexity:
//   • Time: O(n). Space: O(1) extra.

package builder

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Fan returns a Constructor that appends an n-triangle closed fan.
func Fan(n int) Constructor {
	return func(b *meshBuffer, _ builderConfig) error {
		if err := validateMin(MethodFan, "n", n, MinFanTriangles); err != nil {
			return err
		}

		center := b.addVertex(mgl64.Vec3{0, 0, 0})
		first := len(b.vertices)
		for i := 0; i < n; i++ {
			phi := 2 * math.Pi * float64(i) / float64(n)
			b.addVertex(mgl64.Vec3{math.Cos(phi), math.Sin(phi), 0})
		}
		for i := 0; i < n; i++ {
			b.addFace(center, first+i, first+(i+1)%n)
		}

		return nil
	}
}
