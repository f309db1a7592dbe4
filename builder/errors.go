// SPDX-License-Identifier: MIT
// Package: vsa/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using %w.
//   • Validation panics are confined to option constructors (WithX...).

package builder

import (
	"errors"
)

// ErrTooSmall indicates that a numeric parameter (n, rows, cols, subdivisions)
// is smaller than the allowed minimum for the requested constructor.
var ErrTooSmall = errors.New("builder: parameter too small")

// ErrTooLarge indicates that a parameter would produce an unreasonably large mesh.
var ErrTooLarge = errors.New("builder: parameter too large")

// ErrNeedRandSource indicates that a stochastic knob (WithJitter) was set
// without an RNG (WithSeed/WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrOptionViolation indicates an invalid parameter domain, e.g. an unknown
// Platonic solid name.
var ErrOptionViolation = errors.New("builder: option violation")

// ErrConstructFailed indicates that a constructor could not produce a valid
// mesh (nil constructor, or mesh validation rejected the result).
var ErrConstructFailed = errors.New("builder: construction failed")
