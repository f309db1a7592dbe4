// SPDX-License-Identifier: MIT
// Package: vsa/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math/rand"
)

// BuilderOption customizes mesh construction by mutating a builderConfig
// before constructors run.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic knobs.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithScale multiplies every vertex by s after all constructors ran.
// Panics if s <= 0.
func WithScale(s float64) BuilderOption {
	if s <= 0 {
		panic("builder: WithScale(s<=0)")
	}
	return func(c *builderConfig) {
		c.scale = s
	}
}

// WithJitter perturbs every vertex by per-axis Gaussian noise N(0, sigma²).
// Panics if sigma < 0. A non-zero sigma requires WithSeed or WithRand,
// otherwise BuildMesh returns ErrNeedRandSource.
func WithJitter(sigma float64) BuilderOption {
	if sigma < 0 {
		panic("builder: WithJitter(sigma<0)")
	}
	return func(c *builderConfig) {
		c.jitter = sigma
	}
}
