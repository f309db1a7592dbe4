// SPDX-License-Identifier: MIT
// Package: vsa/builder
//
// constants.go - method tags and parameter bounds shared by constructors.

package builder

// Method name tags used to prefix errors with the constructor name.
const (
	MethodFan           = "Fan"
	MethodGrid          = "Grid"
	MethodPlatonicSolid = "PlatonicSolid"
	MethodIcosphere     = "Icosphere"
	MethodTranslated    = "Translated"
	MethodBuildMesh     = "BuildMesh"
)

// MinFanTriangles is the smallest fan that closes around its center.
const MinFanTriangles = 3

// MinGridDim is the smallest allowed dimension (rows or cols) for Grid.
// A 1×1 grid is a single quad (two triangles).
const MinGridDim = 1

// MaxIcosphereSubdivisions caps Icosphere(s): 20·4^s faces grows fast and
// s = 7 already yields 327 680 triangles.
const MaxIcosphereSubdivisions = 7

// Deterministic defaults.
const (
	DefaultScale  = 1.0 // uniform scale applied by BuildMesh
	DefaultJitter = 0.0 // vertex noise stdev
)
