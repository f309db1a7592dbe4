package adjacency

// Components finds all edge-connected groups of triangles.
// Each component lists its triangles in ascending order; components are
// ordered by their smallest triangle index.
//
// Components never fails: an isolated triangle is a component of its own
// and an empty index yields no components.
//
// Complexity:
//
//   - Time:  O(F·d + F log F), d the mean degree; the log term sorts each component.
//   - Space: O(F) for visited flags, the queue and the output.
func (x *Index) Components() [][]int {
	seen := make([]bool, len(x.neighbors))
	var comps [][]int

	for start := range x.neighbors {
		if seen[start] {
			continue
		}
		// BFS to collect component
		queue := []int{start}
		seen[start] = true
		for qi := 0; qi < len(queue); qi++ {
			for _, v := range x.neighbors[queue[qi]] {
				if !seen[v] {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
		comps = append(comps, sortedUnique(queue))
	}

	return comps
}
