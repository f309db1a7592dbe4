package proxy

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/katalvlaran/vsa/mesh"
)

// Proxy is a plane descriptor: a representative point and a unit normal.
type Proxy struct {
	Point  mgl64.Vec3
	Normal mgl64.Vec3
}

// FromTriangle seeds a proxy from t's first vertex and its normal.
func FromTriangle(t mesh.Triangle) Proxy {
	return Proxy{Point: t.V[0], Normal: t.N}
}

// NormalDistance returns the sum of squared per-axis differences of a and b.
func NormalDistance(a, b mgl64.Vec3) float64 {
	dx, dy, dz := a[0]-b[0], a[1]-b[1], a[2]-b[2]

	return dx*dx + dy*dy + dz*dz
}

// TriangleDistance scores t against p: area times squared normal deviation.
func TriangleDistance(t mesh.Triangle, p Proxy) float64 {
	return t.Area() * NormalDistance(t.N, p.Normal)
}

// RegionDistance sums TriangleDistance over the triangles of region.
// An empty region scores 0.
func RegionDistance(tris []mesh.Triangle, region []int, p Proxy) float64 {
	var sum float64
	for _, ti := range region {
		sum += TriangleDistance(tris[ti], p)
	}

	return sum
}
