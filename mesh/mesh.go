package mesh

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Sentinel errors returned by mesh construction.
var (
	// ErrEmptyMesh indicates that no faces were supplied.
	ErrEmptyMesh = errors.New("mesh: no faces")

	// ErrFaceIndex indicates that a face references a vertex outside the table.
	ErrFaceIndex = errors.New("mesh: face references unknown vertex")

	// ErrNormalCount indicates that the supplied normals do not match the faces one-to-one.
	ErrNormalCount = errors.New("mesh: normal count differs from face count")

	// ErrOptionViolation indicates that an invalid Option was supplied.
	ErrOptionViolation = errors.New("mesh: invalid option supplied")
)

// Mesh is an indexed triangle surface. All three slices are read-only after
// construction; Triangles[i] is the geometric view of Faces[i].
type Mesh struct {
	// Vertices is the vertex table. Two faces share a corner iff they
	// reference the same index here.
	Vertices []mgl64.Vec3

	// Faces holds per-triangle indices into Vertices.
	Faces [][3]int

	// Triangles holds per-triangle positions and normals.
	Triangles []Triangle
}

// Options configures mesh construction.
type Options struct {
	// Normals, if non-nil, supplies one face normal per face.
	// When nil, normals are derived from the winding order.
	Normals []mgl64.Vec3

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring New.
type Option func(*Options)

// WithNormals supplies loader-provided face normals, index-aligned with faces.
// A nil slice is recorded as ErrOptionViolation.
func WithNormals(normals []mgl64.Vec3) Option {
	return func(o *Options) {
		if normals == nil {
			o.err = fmt.Errorf("%w: WithNormals(nil)", ErrOptionViolation)
			return
		}
		o.Normals = normals
	}
}

// New builds a Mesh from a vertex table and a face list.
//
// Validation (in order):
//  1. any recorded option error (ErrOptionViolation);
//  2. len(faces) > 0 (ErrEmptyMesh);
//  3. every face index in [0, len(vertices)) (ErrFaceIndex);
//  4. len(normals) == len(faces) when normals are supplied (ErrNormalCount).
//
// The input slices are copied, so later mutation by the caller does not
// leak into the mesh.
//
// Complexity: O(V + F).
func New(vertices []mgl64.Vec3, faces [][3]int, opts ...Option) (*Mesh, error) {
	var cfg Options
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if len(faces) == 0 {
		return nil, ErrEmptyMesh
	}
	if cfg.Normals != nil && len(cfg.Normals) != len(faces) {
		return nil, fmt.Errorf("%w: %d normals for %d faces", ErrNormalCount, len(cfg.Normals), len(faces))
	}

	m := &Mesh{
		Vertices:  append([]mgl64.Vec3(nil), vertices...),
		Faces:     append([][3]int(nil), faces...),
		Triangles: make([]Triangle, len(faces)),
	}

	for i, f := range m.Faces {
		for _, vi := range f {
			if vi < 0 || vi >= len(m.Vertices) {
				return nil, fmt.Errorf("%w: face %d index %d (vertices=%d)", ErrFaceIndex, i, vi, len(m.Vertices))
			}
		}
		a, b, c := m.Vertices[f[0]], m.Vertices[f[1]], m.Vertices[f[2]]
		if cfg.Normals != nil {
			m.Triangles[i] = NewTriangle(a, b, c, cfg.Normals[i])
		} else {
			m.Triangles[i] = NewTriangleFromPoints(a, b, c)
		}
	}

	return m, nil
}

// FromSoup builds a Mesh from a bare triangle list, welding corners whose
// coordinates are exactly equal into one vertex. Each triangle keeps its own
// normal. No tolerance is applied: corners that differ in the last bit stay
// distinct vertices.
//
// Complexity: O(F) expected (hash lookups per corner).
func FromSoup(tris []Triangle) (*Mesh, error) {
	if len(tris) == 0 {
		return nil, ErrEmptyMesh
	}

	index := make(map[mgl64.Vec3]int, len(tris))
	m := &Mesh{
		Vertices:  make([]mgl64.Vec3, 0, len(tris)),
		Faces:     make([][3]int, len(tris)),
		Triangles: append([]Triangle(nil), tris...),
	}

	for i, t := range tris {
		for c, p := range t.V {
			vi, ok := index[p]
			if !ok {
				vi = len(m.Vertices)
				index[p] = vi
				m.Vertices = append(m.Vertices, p)
			}
			m.Faces[i][c] = vi
		}
	}

	return m, nil
}

// Len returns the number of triangles.
func (m *Mesh) Len() int {
	return len(m.Triangles)
}

// Triangle returns the i-th triangle.
func (m *Mesh) Triangle(i int) Triangle {
	return m.Triangles[i]
}

// Area returns the total surface area.
func (m *Mesh) Area() float64 {
	var sum float64
	for _, t := range m.Triangles {
		sum += t.Area()
	}

	return sum
}
