// SPDX-License-Identifier: MIT
// Package: vsa/builder
//
// helpers.go - the growing vertex/face buffer shared by constructors.
//
// Design principles:
//   • Single Responsibility: each helper does one well-defined job.
//   • Constructors append; they never rewrite data emitted by an earlier call.

package builder

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/katalvlaran/vsa/mesh"
)

// meshBuffer accumulates the vertex table and faces while constructors run.
type meshBuffer struct {
	vertices []mgl64.Vec3
	faces    [][3]int
}

// addVertex appends p and returns its index.
// Complexity: O(1) amortized.
func (b *meshBuffer) addVertex(p mgl64.Vec3) int {
	b.vertices = append(b.vertices, p)

	return len(b.vertices) - 1
}

// addFace appends the face (a, b, c) in the given winding order.
func (b *meshBuffer) addFace(a, c1, c2 int) {
	b.faces = append(b.faces, [3]int{a, c1, c2})
}

// orientOutward flips every face in faces[from:] whose geometric normal
// points towards center. Valid for star-shaped components around center
// (all convex solids built here). Collinear faces have no orientation and
// are left as emitted.
// Complexity: O(F) over the flipped range.
func (b *meshBuffer) orientOutward(from int, center mgl64.Vec3) {
	for i := from; i < len(b.faces); i++ {
		f := b.faces[i]
		p0, p1, p2 := b.vertices[f[0]], b.vertices[f[1]], b.vertices[f[2]]
		if mesh.Collinear(p0, p1, p2) {
			continue
		}
		n := p1.Sub(p0).Cross(p2.Sub(p0))
		mid := p0.Add(p1).Add(p2).Mul(1.0 / 3.0)
		if n.Dot(mid.Sub(center)) < 0 {
			b.faces[i] = [3]int{f[0], f[2], f[1]}
		}
	}
}

// centroidFrom returns the mean of vertices[from:].
func (b *meshBuffer) centroidFrom(from int) mgl64.Vec3 {
	var sum mgl64.Vec3
	n := len(b.vertices) - from
	if n <= 0 {
		return sum
	}
	for _, v := range b.vertices[from:] {
		sum = sum.Add(v)
	}

	return sum.Mul(1 / float64(n))
}
