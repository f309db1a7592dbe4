package partition

// entry is one candidate assignment: triangle tri joining region at cost dist.
type entry struct {
	dist   float64
	tri    int
	region int
}

// entryPQ is a min-heap of entries ordered by (dist, tri, region).
// The same triangle may be queued several times under different regions;
// entries for already conquered triangles are skipped when popped.
type entryPQ []entry

// Len returns the number of items in the heap.
func (pq entryPQ) Len() int { return len(pq) }

// Less orders by distance, then triangle index, then region index.
func (pq entryPQ) Less(i, j int) bool {
	a, b := pq[i], pq[j]
	if a.dist != b.dist {
		return a.dist < b.dist
	}
	if a.tri != b.tri {
		return a.tri < b.tri
	}

	return a.region < b.region
}

// Swap swaps two elements in the heap.
func (pq entryPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap. Called by heap.Push.
func (pq *entryPQ) Push(x interface{}) { *pq = append(*pq, x.(entry)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *entryPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
