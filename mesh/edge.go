package mesh

// Edge is an undirected edge between two vertex indices, stored with A <= B.
// It is the canonical map key for edge-keyed lookups (face adjacency,
// midpoint caches).
type Edge struct{ A, B int }

// NewEdge canonicalizes the unordered pair (u, v).
func NewEdge(u, v int) Edge {
	if u > v {
		u, v = v, u
	}

	return Edge{A: u, B: v}
}
