// SPDX-License-Identifier: MIT
// Package: vsa/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Canonical model:
//   • (rows+1)×(cols+1) lattice points in the z=0 plane, unit spacing,
//     row-major: vertex (r, c) sits at (c, r, 0).
//   • Each cell (r, c) is split along its (r,c)–(r+1,c+1) diagonal into two
//     counter-clockwise triangles (normal +Z), emitted lower-right first.
//
// Contract:
//   • rows ≥ MinGridDim and cols ≥ MinGridDim (else ErrTooSmall).
//   • Emits 2·rows·cols faces in row-major cell order (deterministic).
//
// Complexity:
//   • Time: O(rows·cols). Space: O(1) extra.

package builder

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Grid returns a Constructor that appends a planar triangulated grid.
func Grid(rows, cols int) Constructor {
	return func(b *meshBuffer, _ builderConfig) error {
		if err := validateMin(MethodGrid, "rows", rows, MinGridDim); err != nil {
			return err
		}
		if err := validateMin(MethodGrid, "cols", cols, MinGridDim); err != nil {
			return err
		}

		base := len(b.vertices)
		at := func(r, c int) int { return base + r*(cols+1) + c }

		for r := 0; r <= rows; r++ {
			for c := 0; c <= cols; c++ {
				b.addVertex(mgl64.Vec3{float64(c), float64(r), 0})
			}
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				b.addFace(at(r, c), at(r, c+1), at(r+1, c+1))
				b.addFace(at(r, c), at(r+1, c+1), at(r+1, c))
			}
		}

		return nil
	}
}
