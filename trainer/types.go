package trainer

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/vsa/proxy"
)

// DefaultIterations is the number of passes run when WithIterations is not given.
const DefaultIterations = 10

// Sentinel errors returned by the trainer.
var (
	// ErrNilMesh indicates that a nil *mesh.Mesh was passed to New or Train.
	ErrNilMesh = errors.New("trainer: mesh is nil")

	// ErrInvalidIterations indicates a negative iteration count.
	ErrInvalidIterations = errors.New("trainer: iterations must be non-negative")

	// ErrOptionViolation indicates that an invalid Option was supplied.
	ErrOptionViolation = errors.New("trainer: invalid option supplied")
)

// Options configures a Trainer.
type Options struct {
	// Ctx is checked between passes; cancellation stops training.
	Ctx context.Context

	// Iterations is the maximum number of passes (0 runs none).
	Iterations int

	// Epsilon, if > 0, stops training once a pass improves the global
	// error by less than Epsilon. 0 disables early stopping.
	Epsilon float64

	// Seed feeds the initial seed draw when Seeded is set. Every Run of
	// the same Trainer then draws the same seeds.
	Seed   int64
	Seeded bool

	// Seeds forces the initial seed triangles (len must equal k).
	Seeds []int

	// Workers is the goroutine count for per-region work.
	Workers int

	// PointMode selects the proxy point refit formula.
	PointMode proxy.PointMode

	// OnIteration is called after every pass. A non-nil error aborts training.
	OnIteration func(Report) error

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring the Trainer.
type Option func(*Options)

// DefaultOptions returns the default configuration: DefaultIterations
// passes, no early stop, time-seeded draw, one worker, reference point
// formula, no hook.
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		Iterations:  DefaultIterations,
		Epsilon:     0,
		Workers:     1,
		PointMode:   proxy.PointReference,
		OnIteration: func(Report) error { return nil },
	}
}

// WithIterations sets the maximum number of passes (n ≥ 0).
func WithIterations(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: %d", ErrInvalidIterations, n)
			return
		}
		o.Iterations = n
	}
}

// WithEpsilon enables early stopping with threshold eps (eps ≥ 0; 0 disables).
func WithEpsilon(eps float64) Option {
	return func(o *Options) {
		if eps < 0 || math.IsNaN(eps) {
			o.err = fmt.Errorf("%w: Epsilon must be ≥ 0 (%g)", ErrOptionViolation, eps)
			return
		}
		o.Epsilon = eps
	}
}

// WithSeed makes the initial seed draw reproducible.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
		o.Seeded = true
	}
}

// WithSeeds forces the initial seed triangles; seeds[r] seeds region r.
func WithSeeds(seeds []int) Option {
	return func(o *Options) {
		if len(seeds) == 0 {
			o.err = fmt.Errorf("%w: WithSeeds(empty)", ErrOptionViolation)
			return
		}
		o.Seeds = append([]int(nil), seeds...)
	}
}

// WithWorkers spreads per-region reseeding, refit and scoring over n goroutines.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: Workers must be ≥ 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithPointMode selects the proxy point refit formula.
func WithPointMode(m proxy.PointMode) Option {
	return func(o *Options) {
		if m != proxy.PointReference && m != proxy.PointCentroid {
			o.err = fmt.Errorf("%w: PointMode %d", ErrOptionViolation, int(m))
			return
		}
		o.PointMode = m
	}
}

// WithContext sets a context for cancellation between passes.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnIteration registers a per-pass callback; returning an error from it
// stops training and is propagated.
func WithOnIteration(fn func(Report) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnIteration = fn
		}
	}
}

// Report describes one completed pass.
type Report struct {
	// Iteration is the zero-based pass number.
	Iteration int

	// Error is the global error after refitting the proxies.
	Error float64

	// PartitionError is the global error of the fresh partition against the
	// proxies that grew it, before the refit.
	PartitionError float64

	// Unlabeled counts triangles no region reached (disconnected meshes).
	Unlabeled int

	// EmptyRegions counts regions without triangles.
	EmptyRegions int

	// Degenerate counts regions whose refit kept the previous normal.
	Degenerate int

	// MaxRegion is the region with the largest error after refit and
	// MaxRegionError its value.
	MaxRegion      int
	MaxRegionError float64
}

// Result is the outcome of a training run.
type Result struct {
	// Regions maps region → member triangles.
	Regions [][]int

	// Proxies holds one plane per region, index-aligned with Regions.
	Proxies []proxy.Proxy

	// Labels maps triangle → region, or partition.Unassigned.
	Labels []int

	// Reports holds one entry per completed pass.
	Reports []Report

	// Converged is true when training stopped on the Epsilon criterion.
	Converged bool

	// Components lists the connected components of the mesh, each ascending.
	Components [][]int
}

// FinalError returns the Error of the last pass, or +Inf if none ran.
func (r *Result) FinalError() float64 {
	if len(r.Reports) == 0 {
		return math.Inf(1)
	}

	return r.Reports[len(r.Reports)-1].Error
}
