package mesh_test

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vsa/mesh"
)

// TestTriangle_Area covers regular, tiny, huge, collinear and coincident corners.
func TestTriangle_Area(t *testing.T) {
	tests := []struct {
		name string
		tri  mesh.Triangle
		want float64
	}{
		{
			name: "unit right triangle",
			tri:  mesh.NewTriangleFromPoints(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 0, 0}, mgl64.Vec3{0, 1, 0}),
			want: 0.5,
		},
		{
			name: "tilted",
			tri:  mesh.NewTriangleFromPoints(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{2, 0, 0}, mgl64.Vec3{0, 0, 3}),
			want: 3,
		},
		{
			name: "collinear",
			tri:  mesh.NewTriangleFromPoints(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 1, 1}, mgl64.Vec3{2, 2, 2}),
			want: 0,
		},
		{
			name: "coincident",
			tri:  mesh.NewTriangleFromPoints(mgl64.Vec3{1, 2, 3}, mgl64.Vec3{1, 2, 3}, mgl64.Vec3{1, 2, 3}),
			want: 0,
		},
		{
			name: "micro scale right triangle",
			tri:  mesh.NewTriangleFromPoints(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1e-6, 0, 0}, mgl64.Vec3{0, 1e-6, 0}),
			want: 5e-13,
		},
		{
			name: "nano scale tilted",
			tri:  mesh.NewTriangleFromPoints(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{2e-9, 0, 0}, mgl64.Vec3{0, 0, 3e-9}),
			want: 3e-18,
		},
		{
			name: "kilometre scale",
			tri:  mesh.NewTriangleFromPoints(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1e3, 0, 0}, mgl64.Vec3{0, 1e3, 0}),
			want: 5e5,
		},
		{
			name: "micro scale collinear",
			tri:  mesh.NewTriangleFromPoints(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1e-6, 1e-6, 0}, mgl64.Vec3{2e-6, 2e-6, 0}),
			want: 0,
		},
		{
			name: "near collinear",
			tri:  mesh.NewTriangleFromPoints(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 0, 0}, mgl64.Vec3{2, 1e-15, 0}),
			want: 0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.tri.Area()
			assert.False(t, math.IsNaN(got))
			if tc.want == 0 {
				assert.Equal(t, 0.0, got)
				assert.Equal(t, mgl64.Vec3{}, tc.tri.N)
				return
			}
			assert.InEpsilon(t, tc.want, got, 1e-12)
			assert.InDelta(t, 1.0, tc.tri.N.Len(), 1e-15, "non-collinear triangles get a unit normal")
		})
	}
}

func TestTriangle_GeometricNormal(t *testing.T) {
	tri := mesh.NewTriangleFromPoints(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 0, 0}, mgl64.Vec3{0, 1, 0})
	assert.Equal(t, mgl64.Vec3{0, 0, 1}, tri.N)

	flipped := mesh.NewTriangleFromPoints(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0, 1, 0}, mgl64.Vec3{1, 0, 0})
	assert.Equal(t, mgl64.Vec3{0, 0, -1}, flipped.N)

	degenerate := mesh.NewTriangleFromPoints(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 0, 0}, mgl64.Vec3{2, 0, 0})
	assert.Equal(t, mgl64.Vec3{}, degenerate.N)
}

// TestTriangle_ScaleInvariant: scaling the corners never changes the normal
// or whether the triangle is collinear, and scales the area by s².
func TestTriangle_ScaleInvariant(t *testing.T) {
	a, b, c := mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 0, 0}, mgl64.Vec3{0, 1, 0}
	for _, s := range []float64{1e-9, 1e-6, 1, 1e6} {
		tri := mesh.NewTriangleFromPoints(a.Mul(s), b.Mul(s), c.Mul(s))
		assert.Equal(t, mgl64.Vec3{0, 0, 1}, tri.N, "scale %g", s)
		assert.InEpsilon(t, 0.5*s*s, tri.Area(), 1e-12, "scale %g", s)
		assert.False(t, mesh.Collinear(a.Mul(s), b.Mul(s), c.Mul(s)), "scale %g", s)
	}
}

func TestCollinear(t *testing.T) {
	assert.True(t, mesh.Collinear(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 1, 1}, mgl64.Vec3{3, 3, 3}))
	assert.True(t, mesh.Collinear(mgl64.Vec3{1, 2, 3}, mgl64.Vec3{1, 2, 3}, mgl64.Vec3{4, 5, 6}), "coincident corners")
	assert.True(t, mesh.Collinear(mgl64.Vec3{}, mgl64.Vec3{}, mgl64.Vec3{}))
	assert.False(t, mesh.Collinear(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1e-7, 0, 0}, mgl64.Vec3{0, 1e-7, 0}))
	assert.False(t, mesh.Collinear(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 0, 0}, mgl64.Vec3{2, 1e-6, 0}), "thin but not flat")
}

func TestNewEdge(t *testing.T) {
	assert.Equal(t, mesh.Edge{A: 2, B: 7}, mesh.NewEdge(7, 2))
	assert.Equal(t, mesh.NewEdge(2, 7), mesh.NewEdge(7, 2))
	assert.Equal(t, mesh.Edge{A: 4, B: 4}, mesh.NewEdge(4, 4))
}

func TestTriangle_VertexIteration(t *testing.T) {
	a, b, c := mgl64.Vec3{1, 0, 0}, mgl64.Vec3{0, 1, 0}, mgl64.Vec3{0, 0, 1}
	tri := mesh.NewTriangle(a, b, c, mgl64.Vec3{0, 0, 1})

	assert.Equal(t, [3]mgl64.Vec3{a, b, c}, tri.Vertices())
	assert.Equal(t, b, tri.Vertex(1))
	c = tri.Centroid()
	assert.InDeltaSlice(t, []float64{1.0 / 3, 1.0 / 3, 1.0 / 3}, c[:], 1e-15)
	assert.Panics(t, func() { tri.Vertex(3) })
}

func TestNew_Validation(t *testing.T) {
	verts := []mgl64.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}

	_, err := mesh.New(verts, nil)
	assert.ErrorIs(t, err, mesh.ErrEmptyMesh)

	_, err = mesh.New(verts, [][3]int{{0, 1, 3}})
	assert.ErrorIs(t, err, mesh.ErrFaceIndex)

	_, err = mesh.New(verts, [][3]int{{0, 1, -1}})
	assert.ErrorIs(t, err, mesh.ErrFaceIndex)

	_, err = mesh.New(verts, [][3]int{{0, 1, 2}}, mesh.WithNormals([]mgl64.Vec3{{0, 0, 1}, {0, 0, 1}}))
	assert.ErrorIs(t, err, mesh.ErrNormalCount)

	_, err = mesh.New(verts, [][3]int{{0, 1, 2}}, mesh.WithNormals(nil))
	assert.ErrorIs(t, err, mesh.ErrOptionViolation)
}

func TestNew_NormalsAndCopies(t *testing.T) {
	verts := []mgl64.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {1, 1, 0}}
	faces := [][3]int{{0, 1, 2}, {2, 1, 3}}

	m, err := mesh.New(verts, faces)
	require.NoError(t, err)
	require.Equal(t, 2, m.Len())
	assert.Equal(t, mgl64.Vec3{0, 0, 1}, m.Triangle(0).N)
	assert.Equal(t, mgl64.Vec3{0, 0, 1}, m.Triangle(1).N)
	assert.InDelta(t, 1.0, m.Area(), 1e-12)

	// caller mutation must not leak into the mesh
	verts[0] = mgl64.Vec3{9, 9, 9}
	faces[0] = [3]int{3, 3, 3}
	assert.Equal(t, mgl64.Vec3{0, 0, 0}, m.Vertices[0])
	assert.Equal(t, [3]int{0, 1, 2}, m.Faces[0])

	supplied := []mgl64.Vec3{{0, 0, -1}, {1, 0, 0}}
	m2, err := mesh.New(m.Vertices, m.Faces, mesh.WithNormals(supplied))
	require.NoError(t, err)
	assert.Equal(t, supplied[0], m2.Triangle(0).N)
	assert.Equal(t, supplied[1], m2.Triangle(1).N)
}

func TestFromSoup_WeldsExactCorners(t *testing.T) {
	n := mgl64.Vec3{0, 0, 1}
	tris := []mesh.Triangle{
		mesh.NewTriangle(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 0, 0}, mgl64.Vec3{0, 1, 0}, n),
		mesh.NewTriangle(mgl64.Vec3{0, 1, 0}, mgl64.Vec3{1, 0, 0}, mgl64.Vec3{1, 1, 0}, n),
		// differs from (1,1,0) in the last bit: stays a separate vertex
		mesh.NewTriangle(mgl64.Vec3{1, 0, 0}, mgl64.Vec3{2, 0, 0}, mgl64.Vec3{math.Nextafter(1, 2), 1, 0}, n),
	}

	m, err := mesh.FromSoup(tris)
	require.NoError(t, err)
	assert.Len(t, m.Vertices, 6)
	assert.Equal(t, [3]int{0, 1, 2}, m.Faces[0])
	assert.Equal(t, [3]int{2, 1, 3}, m.Faces[1])
	assert.Equal(t, [3]int{1, 4, 5}, m.Faces[2])
	assert.Equal(t, tris, m.Triangles)

	_, err = mesh.FromSoup(nil)
	assert.ErrorIs(t, err, mesh.ErrEmptyMesh)
}
