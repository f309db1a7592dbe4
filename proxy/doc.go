// Package proxy defines the planar proxy of a region, the fitting metric that
// scores triangles against it, and the Fitter that refits proxies to their
// regions.
//
// Metric (area-weighted normal deviation):
//
//	NormalDistance(a, b)   = Σ_i (a_i − b_i)²            (squared, unnormalized)
//	TriangleDistance(t, p) = Area(t) · NormalDistance(t.N, p.Normal)
//	RegionDistance(R, p)   = Σ_{t∈R} TriangleDistance(t, p)
//
// Larger triangles weigh more; flatter matches score lower. Every term is
// non-negative, so region and global errors are non-negative as well.
//
// Refit (Fitter.Fit), per non-empty region:
//
//   - Normal: area-weighted sum of member normals, renormalized. When the
//     sum has zero length the previous normal is kept and the region is
//     counted in FitStats.Degenerate.
//   - Point (PointReference, default): the mean over members of
//     (V[0].X, V[1].Y, V[2].Z). This is not a centroid; PointCentroid
//     computes the area-weighted centroid instead.
//   - Empty regions keep their proxy unchanged (FitStats.Empty).
//
// Refitting twice without changing the regions yields the same proxies.
// Per-region work may be spread over Workers goroutines; every region
// writes only its own output slot, so the result does not depend on the
// worker count.
package proxy
