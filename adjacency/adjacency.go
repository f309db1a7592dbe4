package adjacency

import (
	"errors"
	"sort"

	"github.com/katalvlaran/vsa/mesh"
)

// ErrNilMesh indicates that a nil *mesh.Mesh was passed to Build.
var ErrNilMesh = errors.New("adjacency: mesh is nil")

// Index maps each triangle index to the sorted indices of its edge-sharing
// neighbors. It is immutable after Build.
type Index struct {
	neighbors [][]int
}

// Build computes the adjacency index of m.
//
// Steps:
//  1. Bucket every face under the canonical key of each of its edges.
//  2. For every bucket holding two or more faces, link each pair of faces
//     unless they repeat the same vertex triple.
//  3. Sort and deduplicate each neighbor list.
//
// Errors:
//   - ErrNilMesh if m is nil.
//
// Complexity:
//
//   - Time:  O(F + Σ b²) over edge buckets b; O(F) on a manifold mesh where
//     every bucket holds at most two faces.
//   - Space: O(F) for the edge map and neighbor lists.
func Build(m *mesh.Mesh) (*Index, error) {
	if m == nil {
		return nil, ErrNilMesh
	}

	n := len(m.Faces)
	buckets := make(map[mesh.Edge][]int, n*3/2+1)

	// 1) Bucket faces by edge key.
	for f, face := range m.Faces {
		for c := 0; c < 3; c++ {
			u, v := face[c], face[(c+1)%3]
			if u == v {
				continue // collapsed edge carries no adjacency
			}
			k := mesh.NewEdge(u, v)
			list := buckets[k]
			// a face with a repeated corner can emit the same key twice
			if len(list) > 0 && list[len(list)-1] == f {
				continue
			}
			buckets[k] = append(list, f)
		}
	}

	// 2) Link faces that share a key.
	neighbors := make([][]int, n)
	for _, faces := range buckets {
		for i := 0; i < len(faces); i++ {
			for j := i + 1; j < len(faces); j++ {
				fi, fj := faces[i], faces[j]
				if sameCorners(m.Faces[fi], m.Faces[fj]) {
					continue
				}
				neighbors[fi] = append(neighbors[fi], fj)
				neighbors[fj] = append(neighbors[fj], fi)
			}
		}
	}

	// 3) Canonical order, no duplicates.
	for i := range neighbors {
		neighbors[i] = sortedUnique(neighbors[i])
	}

	return &Index{neighbors: neighbors}, nil
}

// sameCorners reports whether two faces use the same vertex set.
func sameCorners(x, y [3]int) bool {
	sort.Ints(x[:])
	sort.Ints(y[:])

	return x == y
}

// sortedUnique sorts s in place and drops repeated values.
func sortedUnique(s []int) []int {
	if len(s) < 2 {
		return s
	}
	sort.Ints(s)
	out := s[:1]
	for _, v := range s[1:] {
		if v != out[len(out)-1] {
			out = append(out, v)
		}
	}

	return out
}

// Len returns the number of triangles covered by the index.
func (x *Index) Len() int {
	return len(x.neighbors)
}

// Neighbors returns the ascending neighbor indices of triangle i.
// The returned slice is shared with the index and must not be modified.
// Out-of-range or isolated triangles yield an empty slice.
func (x *Index) Neighbors(i int) []int {
	if i < 0 || i >= len(x.neighbors) {
		return nil
	}

	return x.neighbors[i]
}

// Degree returns the number of neighbors of triangle i.
func (x *Index) Degree(i int) int {
	return len(x.Neighbors(i))
}

// Adjacent reports whether triangles a and b share an edge.
func (x *Index) Adjacent(a, b int) bool {
	nb := x.Neighbors(a)
	k := sort.SearchInts(nb, b)

	return k < len(nb) && nb[k] == b
}

// BoundaryTriangles returns, in ascending order, the triangles with fewer
// than three neighbors. A closed manifold mesh has none.
func (x *Index) BoundaryTriangles() []int {
	var out []int
	for i, nb := range x.neighbors {
		if len(nb) < 3 {
			out = append(out, i)
		}
	}

	return out
}
