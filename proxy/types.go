package proxy

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the proxy Fitter.
var (
	// ErrProxyCount indicates that regions and proxies are not index-aligned.
	ErrProxyCount = errors.New("proxy: region and proxy counts differ")

	// ErrTriangleIndex indicates that a region references a triangle outside the mesh.
	ErrTriangleIndex = errors.New("proxy: region references unknown triangle")

	// ErrOptionViolation indicates that an invalid Option was supplied.
	ErrOptionViolation = errors.New("proxy: invalid option supplied")
)

// PointMode selects how a proxy's representative point is refit.
type PointMode int

const (
	// PointReference averages (V[0].X, V[1].Y, V[2].Z) over the region.
	PointReference PointMode = iota

	// PointCentroid uses the area-weighted mean of triangle centroids.
	PointCentroid
)

// String returns the mode name used by flags and logs.
func (m PointMode) String() string {
	switch m {
	case PointReference:
		return "reference"
	case PointCentroid:
		return "centroid"
	default:
		return "unknown"
	}
}

// ParsePointMode maps "reference" or "centroid" to a PointMode.
func ParsePointMode(s string) (PointMode, error) {
	switch s {
	case "reference":
		return PointReference, nil
	case "centroid":
		return PointCentroid, nil
	default:
		return 0, fmt.Errorf("%w: unknown point mode %q", ErrOptionViolation, s)
	}
}

// Options configures the Fitter.
//
// PointMode – point refit formula (default PointReference).
// Workers   – goroutines used for per-region work (default 1, must be ≥ 1).
type Options struct {
	PointMode PointMode
	Workers   int

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring the Fitter.
type Option func(*Options)

// DefaultOptions returns the default configuration: PointReference, one worker.
func DefaultOptions() Options {
	return Options{
		PointMode: PointReference,
		Workers:   1,
	}
}

// WithPointMode selects the point refit formula.
func WithPointMode(m PointMode) Option {
	return func(o *Options) {
		if m != PointReference && m != PointCentroid {
			o.err = fmt.Errorf("%w: PointMode %d", ErrOptionViolation, int(m))
			return
		}
		o.PointMode = m
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

// FitStats summarizes one refit.
type FitStats struct {
	// Degenerate counts non-empty regions whose weighted normal sum had zero
	// length; their previous normal was kept.
	Degenerate int

	// Empty counts regions with no triangles; their proxy was left unchanged.
	Empty int
}
