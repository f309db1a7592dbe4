package partition

import (
	"container/heap"
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/vsa/adjacency"
	"github.com/katalvlaran/vsa/internal/workers"
	"github.com/katalvlaran/vsa/mesh"
	"github.com/katalvlaran/vsa/proxy"
)

// Partitioner owns the regions, proxies and per-triangle working state of
// one shape-approximation run. The mesh and adjacency index are shared and
// read-only. A Partitioner is not safe for concurrent use.
type Partitioner struct {
	mesh  *mesh.Mesh
	index *adjacency.Index
	k     int
	opts  Options
	rng   *rand.Rand

	// persistent across passes
	regions [][]int       // region → member triangles, insertion order
	proxies []proxy.Proxy // region → plane, index-aligned with regions
	passes  int           // completed passes
	passErr float64       // global error at the end of the last pass

	// working state, reset at the start of every pass
	labels    []int     // triangle → region or Unassigned
	distances []float64 // triangle → best queued distance (+Inf if none)
	conquered []bool    // triangle → assigned during this pass
	pq        entryPQ
}

// New validates its collaborators and options and returns a Partitioner for
// k regions. No pass is run yet.
//
// Validation (in order):
//  1. m != nil (ErrNilMesh), idx != nil (ErrNilIndex);
//  2. idx.Len() == m.Len() (ErrIndexMismatch);
//  3. 0 < k ≤ m.Len() (ErrInvalidRegionCount);
//  4. recorded option errors (ErrOptionViolation);
//  5. forced seeds: len == k, in range, distinct.
func New(m *mesh.Mesh, idx *adjacency.Index, k int, opts ...Option) (*Partitioner, error) {
	if m == nil {
		return nil, ErrNilMesh
	}
	if idx == nil {
		return nil, ErrNilIndex
	}
	n := m.Len()
	if idx.Len() != n {
		return nil, fmt.Errorf("%w: index covers %d triangles, mesh has %d", ErrIndexMismatch, idx.Len(), n)
	}
	if k <= 0 || k > n {
		return nil, fmt.Errorf("%w: k=%d, triangles=%d", ErrInvalidRegionCount, k, n)
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if err := validateSeeds(cfg.Seeds, k, n); err != nil {
		return nil, err
	}

	p := &Partitioner{
		mesh:      m,
		index:     idx,
		k:         k,
		opts:      cfg,
		rng:       cfg.resolveRand(),
		regions:   make([][]int, k),
		proxies:   make([]proxy.Proxy, k),
		labels:    make([]int, n),
		distances: make([]float64, n),
		conquered: make([]bool, n),
	}
	p.reset()

	return p, nil
}

// validateSeeds checks forced seeds; nil means "draw at random".
func validateSeeds(seeds []int, k, n int) error {
	if seeds == nil {
		return nil
	}
	if len(seeds) != k {
		return fmt.Errorf("%w: %d seeds for k=%d", ErrOptionViolation, len(seeds), k)
	}
	seen := make(map[int]int, k)
	for r, s := range seeds {
		if s < 0 || s >= n {
			return fmt.Errorf("%w: region %d seed %d (triangles=%d)", ErrSeedOutOfRange, r, s, n)
		}
		if prev, ok := seen[s]; ok {
			return fmt.Errorf("%w: triangle %d seeds regions %d and %d", ErrDuplicateSeed, s, prev, r)
		}
		seen[s] = r
	}

	return nil
}

// Partition runs one pass. Pass 0 (and any pass on a Partitioner that has
// never run) draws fresh seeds and seeds the proxies from them; later passes
// reseed every region from its best-fitting member under the current proxies.
//
// Steps:
//  1. Reset labels, distances, conquered flags and the queue.
//  2. Pick seeds: forced or sampled on the first pass, otherwise each
//     region's closest member. A region that ended the last pass empty gets
//     no seed and stays empty.
//  3. Conquer every seed, then pop the cheapest queued (distance, triangle,
//     region) entry until the queue drains. Stale entries are skipped.
//  4. Record GlobalError as PassError.
//
// Triangles unreachable from any seed stay Unassigned; that is not an error.
//
// Errors:
//   - ErrInvalidIteration if iteration < 0. The Partitioner is unchanged.
//
// Complexity:
//
//   - Time:  O(F·d·log(F·d)), d the mean adjacency degree. Every conquest
//     pushes at most d entries and each heap operation is logarithmic.
//   - Space: O(F·d) worst-case for queued entries under lazy deletion.
func (p *Partitioner) Partition(iteration int) error {
	if iteration < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidIteration, iteration)
	}

	// 1) Reset working state.
	p.reset()

	// 2) Seed selection.
	var seeds []int
	if iteration == 0 || p.passes == 0 {
		seeds = p.initialSeeds()
	} else {
		seeds = p.reseed()
	}

	// 3) Best-first growth from all seeds at once.
	p.grow(seeds)
	p.passes++

	// 4) Score the fresh partition against the proxies that grew it.
	p.passErr = p.GlobalError()

	return nil
}

// reset clears labels, distances, conquered flags and the queue.
func (p *Partitioner) reset() {
	for i := range p.labels {
		p.labels[i] = Unassigned
		p.distances[i] = math.Inf(1)
		p.conquered[i] = false
	}
	p.pq = p.pq[:0]
}

// initialSeeds picks k distinct triangles (forced or random) and turns each
// into a singleton region with a proxy seeded from that triangle.
func (p *Partitioner) initialSeeds() []int {
	seeds := p.opts.Seeds
	if seeds == nil {
		seeds = sample(p.rng, p.mesh.Len(), p.k)
	}
	for r, s := range seeds {
		p.regions[r] = []int{s}
		p.proxies[r] = proxy.FromTriangle(p.mesh.Triangles[s])
	}

	return append([]int(nil), seeds...)
}

// sample draws k distinct integers from [0, n) (Floyd's algorithm).
// Complexity: O(k) time and space.
func sample(rng *rand.Rand, n, k int) []int {
	chosen := make(map[int]struct{}, k)
	out := make([]int, 0, k)
	for j := n - k; j < n; j++ {
		t := rng.Intn(j + 1)
		if _, ok := chosen[t]; ok {
			t = j
		}
		chosen[t] = struct{}{}
		out = append(out, t)
	}

	return out
}

// reseed shrinks every region to its member closest to the region's proxy
// (ties: lowest triangle index). Empty regions yield seed Unassigned.
func (p *Partitioner) reseed() []int {
	seeds := make([]int, p.k)
	workers.Run(p.opts.Workers, p.k, func(r int) {
		seeds[r] = Unassigned
		best := math.Inf(1)
		for _, ti := range p.regions[r] {
			d := proxy.TriangleDistance(p.mesh.Triangles[ti], p.proxies[r])
			if d < best || (d == best && ti < seeds[r]) {
				best, seeds[r] = d, ti
			}
		}
	})

	for r, s := range seeds {
		if s == Unassigned {
			p.regions[r] = p.regions[r][:0]
			continue
		}
		p.regions[r] = append(p.regions[r][:0], s)
	}

	return seeds
}

// grow conquers all seeds, then floods outward in order of increasing
// distance until the queue drains.
func (p *Partitioner) grow(seeds []int) {
	tris := p.mesh.Triangles

	// Seeds are conquered before any neighbor is queued.
	for r, s := range seeds {
		if s == Unassigned {
			continue
		}
		p.conquered[s] = true
		p.labels[s] = r
		p.distances[s] = proxy.TriangleDistance(tris[s], p.proxies[r])
	}
	for r, s := range seeds {
		if s == Unassigned {
			continue
		}
		if len(p.regions[r]) == 0 {
			panic(fmt.Sprintf("partition: region %d is a growth source but empty", r))
		}
		p.pushNeighbors(s, r)
	}

	for p.pq.Len() > 0 {
		e := heap.Pop(&p.pq).(entry)
		if p.conquered[e.tri] {
			continue // stale entry
		}
		p.conquered[e.tri] = true
		p.labels[e.tri] = e.region
		p.regions[e.region] = append(p.regions[e.region], e.tri)
		p.pushNeighbors(e.tri, e.region)
	}
}

// pushNeighbors queues every unconquered neighbor of t under region r,
// unless a strictly cheaper entry for that neighbor is already queued.
func (p *Partitioner) pushNeighbors(t, r int) {
	for _, nb := range p.index.Neighbors(t) {
		if p.conquered[nb] {
			continue
		}
		d := proxy.TriangleDistance(p.mesh.Triangles[nb], p.proxies[r])
		if d > p.distances[nb] {
			continue
		}
		p.distances[nb] = d
		heap.Push(&p.pq, entry{dist: d, tri: nb, region: r})
	}
}

// K returns the number of regions.
func (p *Partitioner) K() int {
	return p.k
}

// Passes returns the number of completed passes.
func (p *Partitioner) Passes() int {
	return p.passes
}

// Regions returns a deep copy of the region → triangles assignment.
func (p *Partitioner) Regions() [][]int {
	out := make([][]int, len(p.regions))
	for r, region := range p.regions {
		out[r] = append([]int{}, region...)
	}

	return out
}

// Proxies returns a copy of the current proxies.
func (p *Partitioner) Proxies() []proxy.Proxy {
	return append([]proxy.Proxy(nil), p.proxies...)
}

// SetProxies replaces the proxies, e.g. with the output of a refit.
func (p *Partitioner) SetProxies(ps []proxy.Proxy) error {
	if len(ps) != p.k {
		return fmt.Errorf("%w: got %d, want %d", ErrProxyCount, len(ps), p.k)
	}
	copy(p.proxies, ps)

	return nil
}

// Labels returns a copy of the triangle → region labels of the last pass.
func (p *Partitioner) Labels() []int {
	return append([]int(nil), p.labels...)
}

// Label returns the region of triangle t, or Unassigned.
func (p *Partitioner) Label(t int) int {
	if t < 0 || t >= len(p.labels) {
		return Unassigned
	}

	return p.labels[t]
}

// Unlabeled counts triangles left Unassigned by the last pass
// (unreachable from every seed). Before the first pass every triangle is.
func (p *Partitioner) Unlabeled() int {
	n := 0
	for _, l := range p.labels {
		if l == Unassigned {
			n++
		}
	}

	return n
}

// EmptyRegions counts regions without triangles.
func (p *Partitioner) EmptyRegions() int {
	n := 0
	for _, region := range p.regions {
		if len(region) == 0 {
			n++
		}
	}

	return n
}

// RegionErrors returns RegionDistance of every region against its current
// proxy. Empty regions score 0. Regions are scored on the worker pool.
//
// Complexity: O(F) time over all regions, O(k) space.
func (p *Partitioner) RegionErrors() []float64 {
	errs := make([]float64, p.k)
	workers.Run(p.opts.Workers, p.k, func(r int) {
		errs[r] = proxy.RegionDistance(p.mesh.Triangles, p.regions[r], p.proxies[r])
	})

	return errs
}

// PassError returns the global error recorded at the end of the last pass,
// before any SetProxies call. Zero before the first pass.
func (p *Partitioner) PassError() float64 {
	return p.passErr
}

// GlobalError sums RegionErrors against the current proxies.
//
// Unassigned triangles do not contribute, so a pass that leaves part of the
// mesh unreachable can score lower than one that covers it. Compare with
// Unlabeled. It never fails; before the first pass every region is empty
// and the result is 0.
//
// Complexity: O(F) time, O(k) space.
func (p *Partitioner) GlobalError() float64 {
	return floats.Sum(p.RegionErrors())
}
