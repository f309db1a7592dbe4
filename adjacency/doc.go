// Package adjacency builds the triangle-to-triangle neighbor index of a mesh.
//
// Two triangles are adjacent when they share exactly one edge, i.e. exactly
// two vertex identities of the mesh vertex table. Identity is topological
// (vertex index), never a floating-point proximity test.
//
// Construction groups faces by a canonical edge key {min(u,v), max(u,v)}
// and links every pair of faces found under the same key:
//
//	Time:  O(F) expected for manifold meshes (three hash inserts per face),
//	       plus O(F·d log d) to sort the per-face lists (d = degree, 3 on manifolds).
//	Space: O(F).
//
// The resulting relation is symmetric and irreflexive. Faces that repeat the
// same three vertices are not linked to each other, and collapsed edges
// (u == v) produce no key. Neighbor lists are sorted ascending, so two
// builds over the same input are identical.
//
// A triangle without neighbors (boundary of an open mesh, isolated face) is
// legal: Neighbors returns an empty slice.
package adjacency
