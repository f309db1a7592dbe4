package trainer

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/vsa/adjacency"
	"github.com/katalvlaran/vsa/mesh"
	"github.com/katalvlaran/vsa/partition"
	"github.com/katalvlaran/vsa/proxy"
)

// Trainer holds a validated configuration plus the adjacency index of one
// mesh. Run may be called repeatedly; each call starts from fresh seeds.
type Trainer struct {
	mesh   *mesh.Mesh
	index  *adjacency.Index
	k      int
	opts   Options
	fitter *proxy.Fitter
}

// Train is shorthand for New followed by Run.
//
// Errors: everything New and Run return. A configuration error yields a nil
// Result; a run error yields the partial Result next to it.
func Train(m *mesh.Mesh, k int, opts ...Option) (*Result, error) {
	t, err := New(m, k, opts...)
	if err != nil {
		return nil, err
	}

	return t.Run()
}

// New validates the configuration and builds the adjacency index.
// Every configuration error surfaces here, before any pass runs.
func New(m *mesh.Mesh, k int, opts ...Option) (*Trainer, error) {
	if m == nil {
		return nil, ErrNilMesh
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	idx, err := adjacency.Build(m)
	if err != nil {
		return nil, fmt.Errorf("trainer: %w", err)
	}
	t := &Trainer{mesh: m, index: idx, k: k, opts: cfg}

	// Dry-run partitioner construction: rejects k and seed errors now.
	if _, err = partition.New(m, idx, k, t.partitionOptions()...); err != nil {
		return nil, fmt.Errorf("trainer: %w", err)
	}
	t.fitter, err = proxy.NewFitter(
		proxy.WithPointMode(cfg.PointMode),
		proxy.WithWorkers(cfg.Workers),
	)
	if err != nil {
		return nil, fmt.Errorf("trainer: %w", err)
	}

	return t, nil
}

// partitionOptions translates the trainer configuration for package partition.
func (t *Trainer) partitionOptions() []partition.Option {
	opts := []partition.Option{partition.WithWorkers(t.opts.Workers)}
	if t.opts.Seeded {
		opts = append(opts, partition.WithSeed(t.opts.Seed))
	}
	if t.opts.Seeds != nil {
		opts = append(opts, partition.WithSeeds(t.opts.Seeds))
	}

	return opts
}

// Options returns the resolved configuration.
func (t *Trainer) Options() Options {
	return t.opts
}

// Index returns the adjacency index built for the mesh.
func (t *Trainer) Index() *adjacency.Index {
	return t.index
}

// Run executes up to Iterations passes of partition → refit.
//
// Steps (per pass i):
//  1. Stop if Ctx is done.
//  2. Partition(i), then refit every region and install the new proxies.
//  3. Score the refit regions into a Report and hand it to OnIteration.
//  4. From the second pass on, stop with Converged = true when the error
//     dropped by less than Epsilon (Epsilon > 0 only).
//
// Returns:
//
//   - res: Reports of every completed pass, the final Regions, Proxies and
//     Labels, and the mesh's connected Components. Never nil when err comes
//     from a pass, so callers can keep the best-so-far state.
//   - err: nil, or one of the errors below.
//
// Errors:
//   - Ctx.Err() (wrapped) on cancellation or deadline, checked before each pass.
//   - the OnIteration error (wrapped) after the pass that produced it.
//   - partition and refit errors (wrapped with the pass number).
//
// Complexity:
//
//   - Time:  O(I·F·d·log(F·d)) for I passes; the refit adds O(F) per pass.
//   - Space: O(F·d) for the queue plus O(I) Reports.
func (t *Trainer) Run() (*Result, error) {
	p, err := partition.New(t.mesh, t.index, t.k, t.partitionOptions()...)
	if err != nil {
		return nil, fmt.Errorf("trainer: %w", err)
	}

	res := &Result{
		Reports:    make([]Report, 0, t.opts.Iterations),
		Components: t.index.Components(),
	}
	err = t.loop(p, res)
	res.Regions = p.Regions()
	res.Proxies = p.Proxies()
	res.Labels = p.Labels()

	return res, err
}

// loop runs the passes and appends one Report per completed pass.
func (t *Trainer) loop(p *partition.Partitioner, res *Result) error {
	var prev float64
	for i := 0; i < t.opts.Iterations; i++ {
		select {
		case <-t.opts.Ctx.Done():
			return fmt.Errorf("trainer: stopped before pass %d: %w", i, t.opts.Ctx.Err())
		default:
		}

		rep, err := t.pass(p, i)
		if err != nil {
			return err
		}
		res.Reports = append(res.Reports, rep)

		if err = t.opts.OnIteration(rep); err != nil {
			return fmt.Errorf("trainer: OnIteration error at pass %d: %w", i, err)
		}
		if i > 0 && t.opts.Epsilon > 0 && prev-rep.Error < t.opts.Epsilon {
			res.Converged = true
			return nil
		}
		prev = rep.Error
	}

	return nil
}

// pass runs one partition pass and one refit, and scores the result.
func (t *Trainer) pass(p *partition.Partitioner, i int) (Report, error) {
	if err := p.Partition(i); err != nil {
		return Report{}, fmt.Errorf("trainer: pass %d: %w", i, err)
	}
	rep := Report{
		Iteration:      i,
		PartitionError: p.PassError(),
		Unlabeled:      p.Unlabeled(),
		EmptyRegions:   p.EmptyRegions(),
	}

	proxies, stats, err := t.fitter.Fit(t.mesh.Triangles, p.Regions(), p.Proxies())
	if err != nil {
		return Report{}, fmt.Errorf("trainer: refit %d: %w", i, err)
	}
	if err = p.SetProxies(proxies); err != nil {
		return Report{}, fmt.Errorf("trainer: refit %d: %w", i, err)
	}
	rep.Degenerate = stats.Degenerate

	errs := p.RegionErrors()
	rep.Error = floats.Sum(errs)
	rep.MaxRegion = floats.MaxIdx(errs)
	rep.MaxRegionError = errs[rep.MaxRegion]

	return rep, nil
}
