package proxy

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/katalvlaran/vsa/internal/workers"
	"github.com/katalvlaran/vsa/mesh"
)

// Fitter recomputes proxies from their regions.
type Fitter struct {
	opts Options
}

// NewFitter resolves opts over DefaultOptions. An invalid option surfaces
// as ErrOptionViolation.
func NewFitter(opts ...Option) (*Fitter, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	return &Fitter{opts: cfg}, nil
}

// Options returns the resolved configuration.
func (f *Fitter) Options() Options {
	return f.opts
}

// regionFit is the per-region outcome written by one worker.
type regionFit struct {
	proxy      Proxy
	degenerate bool
	empty      bool
}

// Fit returns new proxies for regions, index-aligned with the input. The
// input proxies are not modified.
//
// Per region:
//   - normal: normalized area-weighted sum of member normals; a zero sum
//     keeps the previous normal and counts in FitStats.Degenerate;
//   - point: per PointMode (reference corner mean or area-weighted centroid);
//   - an empty region keeps its proxy and counts in FitStats.Empty.
//
// Errors (checked before any work, nothing is returned on failure):
//   - ErrProxyCount if len(regions) != len(proxies);
//   - ErrTriangleIndex if a member index is outside tris.
//
// Complexity:
//
//   - Time:  O(Σ|region|), split across Workers.
//   - Space: O(k) extra.
func (f *Fitter) Fit(tris []mesh.Triangle, regions [][]int, proxies []Proxy) ([]Proxy, FitStats, error) {
	if len(regions) != len(proxies) {
		return nil, FitStats{}, fmt.Errorf("%w: %d regions, %d proxies", ErrProxyCount, len(regions), len(proxies))
	}
	for r, region := range regions {
		for _, ti := range region {
			if ti < 0 || ti >= len(tris) {
				return nil, FitStats{}, fmt.Errorf("%w: region %d triangle %d (triangles=%d)", ErrTriangleIndex, r, ti, len(tris))
			}
		}
	}

	fits := make([]regionFit, len(regions))
	workers.Run(f.opts.Workers, len(regions), func(r int) {
		fits[r] = f.fitRegion(tris, regions[r], proxies[r])
	})

	out := make([]Proxy, len(regions))
	var stats FitStats
	for r, res := range fits {
		out[r] = res.proxy
		if res.empty {
			stats.Empty++
		}
		if res.degenerate {
			stats.Degenerate++
		}
	}

	return out, stats, nil
}

// fitRegion refits a single proxy. prev is returned unchanged for an empty
// region; its normal is kept when the weighted sum vanishes.
func (f *Fitter) fitRegion(tris []mesh.Triangle, region []int, prev Proxy) regionFit {
	if len(region) == 0 {
		return regionFit{proxy: prev, empty: true}
	}

	// 1) Area-weighted normal.
	var sum mgl64.Vec3
	for _, ti := range region {
		t := tris[ti]
		sum = sum.Add(t.N.Mul(t.Area()))
	}
	res := regionFit{proxy: Proxy{Normal: prev.Normal}}
	if n, ok := unit(sum); ok {
		res.proxy.Normal = n
	} else {
		res.degenerate = true
	}

	// 2) Representative point.
	switch f.opts.PointMode {
	case PointCentroid:
		res.proxy.Point = weightedCentroid(tris, region)
	default:
		res.proxy.Point = referencePoint(tris, region)
	}

	return res
}

// unit normalizes v by dividing each component by its length, reporting
// false when the length is zero or not finite.
func unit(v mgl64.Vec3) (mgl64.Vec3, bool) {
	l := v.Len()
	if l == 0 || math.IsNaN(l) || math.IsInf(l, 0) {
		return mgl64.Vec3{}, false
	}

	return mgl64.Vec3{v[0] / l, v[1] / l, v[2] / l}, true
}

// referencePoint averages the first corner's X, the second corner's Y and
// the third corner's Z over the region.
func referencePoint(tris []mesh.Triangle, region []int) mgl64.Vec3 {
	var p mgl64.Vec3
	for _, ti := range region {
		t := tris[ti]
		p[0] += t.V[0].X()
		p[1] += t.V[1].Y()
		p[2] += t.V[2].Z()
	}
	n := float64(len(region))

	return mgl64.Vec3{p[0] / n, p[1] / n, p[2] / n}
}

// weightedCentroid returns the area-weighted mean of triangle centroids,
// or their plain mean when the region has no area.
func weightedCentroid(tris []mesh.Triangle, region []int) mgl64.Vec3 {
	var acc, plain mgl64.Vec3
	var total float64
	for _, ti := range region {
		t := tris[ti]
		c := t.Centroid()
		a := t.Area()
		acc = acc.Add(c.Mul(a))
		plain = plain.Add(c)
		total += a
	}
	if total == 0 {
		n := float64(len(region))
		return mgl64.Vec3{plain[0] / n, plain[1] / n, plain[2] / n}
	}

	return mgl64.Vec3{acc[0] / total, acc[1] / total, acc[2] / total}
}
