package mesh

import (
	"github.com/go-gl/mathgl/mgl64"
)

// CollinearEpsilon bounds sin² of the angle at the first corner: at or below
// it a triangle counts as collinear. The bound is relative to the triangle's
// own edge lengths, so it holds at any mesh scale.
const CollinearEpsilon = 1e-24

// Collinear reports whether a, b and c are collinear or coincident within
// CollinearEpsilon, i.e. |e1×e2|² ≤ CollinearEpsilon·|e1|²·|e2|² with
// e1 = b-a and e2 = c-a.
func Collinear(a, b, c mgl64.Vec3) bool {
	e1, e2 := b.Sub(a), c.Sub(a)

	return collinear(e1, e2, e1.Cross(e2))
}

// collinear is Collinear on precomputed edges and their cross product.
func collinear(e1, e2, n mgl64.Vec3) bool {
	return n.Dot(n) <= CollinearEpsilon*e1.Dot(e1)*e2.Dot(e2)
}

// Triangle is an immutable face: three vertex positions and one unit normal.
type Triangle struct {
	// V holds the three corner positions in winding order.
	V [3]mgl64.Vec3

	// N is the face normal. Loaders may supply it; otherwise it is derived
	// from the winding via GeometricNormal.
	N mgl64.Vec3
}

// NewTriangle returns a triangle with the given corners and normal.
func NewTriangle(a, b, c, n mgl64.Vec3) Triangle {
	return Triangle{V: [3]mgl64.Vec3{a, b, c}, N: n}
}

// NewTriangleFromPoints returns a triangle whose normal is derived from
// the winding order a→b→c.
func NewTriangleFromPoints(a, b, c mgl64.Vec3) Triangle {
	t := Triangle{V: [3]mgl64.Vec3{a, b, c}}
	t.N = t.GeometricNormal()

	return t
}

// Vertex returns the i-th corner (0, 1 or 2).
// Panics on any other index, like an out-of-range slice access.
func (t Triangle) Vertex(i int) mgl64.Vec3 {
	return t.V[i]
}

// Vertices returns the three corners in winding order.
func (t Triangle) Vertices() [3]mgl64.Vec3 {
	return t.V
}

// cross returns (v2-v1)×(v3-v1) and whether the corners are collinear.
func (t Triangle) cross() (mgl64.Vec3, bool) {
	e1, e2 := t.V[1].Sub(t.V[0]), t.V[2].Sub(t.V[0])
	n := e1.Cross(e2)

	return n, collinear(e1, e2, n)
}

// Area returns half the magnitude of the edge cross product.
// Collinear or coincident corners (see Collinear) are reported as exactly 0;
// any other triangle, however small, has a positive area.
//
// Complexity: O(1).
func (t Triangle) Area() float64 {
	n, flat := t.cross()
	if flat {
		return 0
	}

	return n.Len() / 2
}

// GeometricNormal returns the unit normal implied by the winding order,
// or the zero vector when the triangle is degenerate.
func (t Triangle) GeometricNormal() mgl64.Vec3 {
	c, flat := t.cross()
	l := c.Len()
	if flat || l == 0 {
		return mgl64.Vec3{}
	}

	// divide per component: x/x is exact where x*(1/x) is not
	return mgl64.Vec3{c[0] / l, c[1] / l, c[2] / l}
}

// Centroid returns the arithmetic mean of the three corners.
func (t Triangle) Centroid() mgl64.Vec3 {
	return t.V[0].Add(t.V[1]).Add(t.V[2]).Mul(1.0 / 3.0)
}
