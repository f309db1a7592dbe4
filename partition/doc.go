// Package partition implements the region partitioner of variational shape
// approximation: k regions grown over a mesh adjacency graph by a
// multi-source best-first flood fill, using the proxy fitting error as the
// cost instead of a geodesic distance.
//
// One pass (Partition) runs four phases:
//
//  1. Reset – labels, best distances and conquered flags are cleared.
//  2. Seed  – first pass: k distinct triangles drawn at random (or forced via
//     WithSeeds) become singleton regions and seed their proxies.
//     Later passes: each region shrinks to its member with the smallest
//     distance to the region's current proxy.
//  3. Grow  – a single min-heap holds (distance, triangle, region) entries.
//     Seeds are conquered first and push their neighbors; then the smallest
//     entry is popped repeatedly. A conquered triangle's entry is stale and
//     is dropped (“lazy deletion”, as in Dijkstra without decrease-key);
//     otherwise the triangle joins the entry's region and pushes its own
//     unconquered neighbors under the same proxy.
//  4. Score – the pass error is cached (PassError). GlobalError re-sums
//     RegionErrors against whatever proxies are current.
//
// Ordering:
//
//	Entries are ordered by distance, then by triangle index, then by region
//	index. Equal-distance candidates therefore resolve deterministically:
//	the lowest triangle is grown first, and when two regions offer the same
//	triangle at the same cost the lower region index wins.
//
// Complexity per pass:
//
//   - Time:  O(F·d·log(F·d)) for F triangles of mean degree d (each conquest
//     pushes at most d entries).
//   - Space: O(F·d) heap entries in the worst case, O(F) working arrays.
//
// Invariants after a pass:
//
//   - every triangle belongs to at most one region;
//   - Label(t) is a region index or Unassigned; triangles unreachable from
//     every seed stay Unassigned (reported by Unlabeled, never an error);
//   - every region that had a seed contains it; an empty region is never a
//     growth source.
//
// Errors (sentinel):
//
//	ErrNilMesh, ErrNilIndex, ErrIndexMismatch – bad collaborators.
//	ErrInvalidRegionCount                   – k ≤ 0 or k > triangle count.
//	ErrSeedOutOfRange, ErrDuplicateSeed      – bad WithSeeds input.
//	ErrOptionViolation                       – invalid option value.
//	ErrInvalidIteration                      – negative pass number.
//	ErrProxyCount                            – SetProxies length ≠ k.
//
// The growth phase is sequential. Per-region reseeding and scoring may run
// on Workers goroutines; each region writes only its own slot.
package partition
