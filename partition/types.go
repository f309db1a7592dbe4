package partition

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

// Unassigned labels a triangle that no region has conquered.
const Unassigned = -1

// Sentinel errors returned by the partitioner.
var (
	// ErrNilMesh indicates that a nil *mesh.Mesh was passed to New.
	ErrNilMesh = errors.New("partition: mesh is nil")

	// ErrNilIndex indicates that a nil *adjacency.Index was passed to New.
	ErrNilIndex = errors.New("partition: adjacency index is nil")

	// ErrIndexMismatch indicates that the adjacency index was built for another mesh.
	ErrIndexMismatch = errors.New("partition: adjacency index does not match mesh")

	// ErrInvalidRegionCount indicates k ≤ 0 or k greater than the triangle count.
	ErrInvalidRegionCount = errors.New("partition: region count out of range")

	// ErrSeedOutOfRange indicates a forced seed outside [0, triangle count).
	ErrSeedOutOfRange = errors.New("partition: seed triangle out of range")

	// ErrDuplicateSeed indicates the same forced seed given to two regions.
	ErrDuplicateSeed = errors.New("partition: duplicate seed triangle")

	// ErrOptionViolation indicates that an invalid Option was supplied.
	ErrOptionViolation = errors.New("partition: invalid option supplied")

	// ErrInvalidIteration indicates a negative pass number.
	ErrInvalidIteration = errors.New("partition: iteration must be non-negative")

	// ErrProxyCount indicates that SetProxies received a slice of the wrong length.
	ErrProxyCount = errors.New("partition: proxy count differs from region count")
)

// Options configures a Partitioner.
//
// Rand    – RNG for the initial seed draw. When nil, a time-seeded source is used.
// Seeds   – forced initial seed triangles (len must equal k); overrides Rand.
// Workers – goroutines for per-region reseeding and scoring (≥ 1).
type Options struct {
	Rand    *rand.Rand
	Seeds   []int
	Workers int

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring the Partitioner.
type Option func(*Options)

// DefaultOptions returns the default configuration: random seeds from a
// time-based source, one worker.
func DefaultOptions() Options {
	return Options{
		Rand:    nil,
		Seeds:   nil,
		Workers: 1,
	}
}

// WithSeed makes the initial seed draw reproducible.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Rand = rand.New(rand.NewSource(seed))
	}
}

// WithRand supplies an explicit RNG for the initial seed draw.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r == nil {
			o.err = fmt.Errorf("%w: WithRand(nil)", ErrOptionViolation)
			return
		}
		o.Rand = r
	}
}

// WithSeeds forces the initial seed triangles; seeds[r] seeds region r.
// The slice is copied.
func WithSeeds(seeds []int) Option {
	return func(o *Options) {
		if len(seeds) == 0 {
			o.err = fmt.Errorf("%w: WithSeeds(empty)", ErrOptionViolation)
			return
		}
		o.Seeds = append([]int(nil), seeds...)
	}
}

// WithWorkers spreads per-region work over n goroutines (n ≥ 1).
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: Workers must be ≥ 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// resolveRand returns the configured RNG or a time-seeded one.
func (o Options) resolveRand() *rand.Rand {
	if o.Rand != nil {
		return o.Rand
	}

	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
