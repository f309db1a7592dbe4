// SPDX-License-Identifier: MIT
// Package: vsa/builder
//
// Package builder assembles deterministic triangle meshes for tests, examples
// and the command-line driver. It stands in for a mesh loader: every
// constructor emits an indexed surface (vertex table + faces) whose normals
// are derived from the winding order by mesh.New.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildMesh(bopts, cons...): resolve options, run constructors in order,
//     apply scale/jitter, return *mesh.Mesh.
//     – Constructor: a closure appending one component to a meshBuffer.
//   - Topology factories (each call appends an independent component):
//     – Fan(n):             n coplanar triangles around one shared center vertex.
//     – Grid(rows, cols):   planar rows×cols quad grid, two triangles per cell.
//     – PlatonicSolid(name): Tetrahedron, Cube, Octahedron, Icosahedron shells.
//     – Icosphere(s):       icosahedron subdivided s times, projected to the unit sphere.
//   - Combinators:
//     – Translated(offset, c): run c and shift the vertices it added.
//   - Options:
//     – WithSeed / WithRand: RNG for stochastic knobs.
//     – WithScale:           uniform scale applied after all constructors.
//     – WithJitter:          Gaussian vertex noise (requires an RNG).
//
// Guarantees:
//
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical meshes.
//   - Components never share vertices, so composing constructors yields a
//     disconnected mesh (one connected component per call).
//   - Closed solids (PlatonicSolid, Icosphere) are oriented outward and are
//     closed 2-manifolds: every triangle has exactly three neighbors.
//   - Fast-fail on invalid option parameters via panics in option constructors;
//     constructors themselves return sentinel errors and never panic.
package builder
