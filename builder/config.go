// SPDX-License-Identifier: MIT
// Package: vsa/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults:
//   • rng    = nil  (pure/deterministic unless seeded)
//   • scale  = 1.0
//   • jitter = 0.0

package builder

import (
	"math/rand" // RNG for stochastic knobs
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand

	// scale multiplies every vertex after all constructors ran (>0).
	scale float64

	// jitter is the stdev of per-axis Gaussian vertex noise (>=0).
	jitter float64
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:    nil,
		scale:  DefaultScale,
		jitter: DefaultJitter,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
