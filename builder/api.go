// SPDX-License-Identifier: MIT
// Package: vsa/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   • One orchestrator: BuildMesh(bopts, cons...). Resolves cfg, runs cons in order.
//   • Functional options (BuilderOption) resolve into an immutable builderConfig.
//   • Determinism: same inputs/options/seed and constructor order ⇒ identical meshes.
//   • Safety: constructors never panic; they return sentinel errors.

package builder

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/katalvlaran/vsa/mesh"
)

// Constructor appends one mesh component to the buffer using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Only append vertices/faces; never touch earlier components.
//   - Preserve determinism for the same config and call order.
type Constructor func(b *meshBuffer, cfg builderConfig) error

// BuildMesh resolves the builder configuration from bopts, applies all
// constructors in order, then scales and (optionally) jitters the vertex
// table and hands the result to mesh.New, which derives face normals from
// the winding.
//
// Any constructor error is wrapped with "BuildMesh: %w" and returned
// immediately.
//
// Complexity: Σ cost of constructors + O(V + F) for the final pass.
func BuildMesh(bopts []BuilderOption, cons ...Constructor) (*mesh.Mesh, error) {
	cfg := newBuilderConfig(bopts...)
	if cfg.jitter > 0 && cfg.rng == nil {
		return nil, fmt.Errorf("%s: jitter=%g: %w", MethodBuildMesh, cfg.jitter, ErrNeedRandSource)
	}

	var b meshBuffer
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("%s: nil constructor at index %d: %w", MethodBuildMesh, i, ErrConstructFailed)
		}
		if err := fn(&b, cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", MethodBuildMesh, err)
		}
	}

	for i, v := range b.vertices {
		v = v.Mul(cfg.scale)
		if cfg.jitter > 0 {
			v = v.Add(mgl64.Vec3{
				cfg.rng.NormFloat64() * cfg.jitter,
				cfg.rng.NormFloat64() * cfg.jitter,
				cfg.rng.NormFloat64() * cfg.jitter,
			})
		}
		b.vertices[i] = v
	}

	m, err := mesh.New(b.vertices, b.faces)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", MethodBuildMesh, ErrConstructFailed, err)
	}

	return m, nil
}

// Translated returns a Constructor that runs c and shifts every vertex c
// appended by offset. Earlier components are untouched.
func Translated(offset mgl64.Vec3, c Constructor) Constructor {
	return func(b *meshBuffer, cfg builderConfig) error {
		if c == nil {
			return fmt.Errorf("%s: nil constructor: %w", MethodTranslated, ErrConstructFailed)
		}
		from := len(b.vertices)
		if err := c(b, cfg); err != nil {
			return err
		}
		for i := from; i < len(b.vertices); i++ {
			b.vertices[i] = b.vertices[i].Add(offset)
		}

		return nil
	}
}
