package trainer_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vsa/builder"
	"github.com/katalvlaran/vsa/mesh"
	"github.com/katalvlaran/vsa/partition"
	"github.com/katalvlaran/vsa/proxy"
	"github.com/katalvlaran/vsa/trainer"
)

// buildMesh assembles a fixture mesh or fails the test.
func buildMesh(t *testing.T, cons ...builder.Constructor) *mesh.Mesh {
	t.Helper()
	m, err := builder.BuildMesh(nil, cons...)
	require.NoError(t, err)

	return m
}

// assertReports checks the per-pass invariants every run must satisfy.
func assertReports(t *testing.T, res *trainer.Result) {
	t.Helper()
	for i, rep := range res.Reports {
		assert.Equal(t, i, rep.Iteration)
		assert.GreaterOrEqual(t, rep.Error, 0.0)
		assert.GreaterOrEqual(t, rep.PartitionError, 0.0)
		assert.GreaterOrEqual(t, rep.MaxRegionError, 0.0)
		assert.LessOrEqual(t, rep.MaxRegionError, rep.Error+1e-12)
		// Refitting a fixed partition never makes it worse.
		assert.LessOrEqual(t, rep.Error, rep.PartitionError+1e-9, "pass %d", i)
	}
}

func TestTrain_PlanarFan(t *testing.T) {
	m := buildMesh(t, builder.Fan(4))

	res, err := trainer.Train(m, 1, trainer.WithIterations(3), trainer.WithSeed(1))
	require.NoError(t, err)
	require.Len(t, res.Reports, 3)
	assert.False(t, res.Converged)
	require.Len(t, res.Regions, 1)
	assert.ElementsMatch(t, []int{0, 1, 2, 3}, res.Regions[0])
	assert.Equal(t, mgl64.Vec3{0, 0, 1}, res.Proxies[0].Normal)
	assert.Equal(t, []int{0, 0, 0, 0}, res.Labels)
	assert.Equal(t, 0.0, res.FinalError())
	for _, rep := range res.Reports {
		assert.Equal(t, 0.0, rep.Error)
		assert.Zero(t, rep.Unlabeled)
		assert.Zero(t, rep.Degenerate)
	}
	assertReports(t, res)
}

func TestTrain_CubeFaces(t *testing.T) {
	m := buildMesh(t, builder.PlatonicSolid(builder.Cube))

	res, err := trainer.Train(m, 6,
		trainer.WithSeeds([]int{0, 2, 4, 6, 8, 10}),
		trainer.WithIterations(4),
	)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 1}, {2, 3}, {4, 5}, {6, 7}, {8, 9}, {10, 11}}, res.Regions)
	for r, px := range res.Proxies {
		assert.Equal(t, m.Triangles[2*r].N, px.Normal, "region %d", r)
	}
	assert.Equal(t, 0.0, res.FinalError())
	require.Len(t, res.Components, 1)
	assertReports(t, res)
}

// TestTrain_ScaleInvariant: shrinking a mesh scales the error by the square
// of the factor and changes nothing else.
func TestTrain_ScaleInvariant(t *testing.T) {
	const s = 1e-6
	unit := buildMesh(t, builder.PlatonicSolid(builder.Cube))
	small, err := builder.BuildMesh([]builder.BuilderOption{builder.WithScale(s)}, builder.PlatonicSolid(builder.Cube))
	require.NoError(t, err)
	for i, tri := range small.Triangles {
		assert.InEpsilon(t, unit.Triangles[i].Area()*s*s, tri.Area(), 1e-9, "triangle %d", i)
		assert.Equal(t, unit.Triangles[i].N, tri.N, "triangle %d", i)
	}

	opts := []trainer.Option{trainer.WithSeeds([]int{0, 1, 2, 3, 4, 5}), trainer.WithIterations(1)}
	want, err := trainer.Train(unit, 6, opts...)
	require.NoError(t, err)
	got, err := trainer.Train(small, 6, opts...)
	require.NoError(t, err)

	assert.Equal(t, want.Regions, got.Regions)
	assert.Equal(t, want.Labels, got.Labels)
	assert.Zero(t, want.Reports[0].Degenerate)
	assert.Zero(t, got.Reports[0].Degenerate)
	require.Greater(t, want.FinalError(), 0.0)
	assert.Greater(t, got.FinalError(), 0.0)
	assert.InEpsilon(t, want.FinalError()*s*s, got.FinalError(), 1e-9)
	for r, px := range got.Proxies {
		assert.InDelta(t, 1.0, px.Normal.Len(), 1e-12, "region %d", r)
	}
	assertReports(t, got)

	// One seed per face recovers the faces exactly, pass after pass.
	res, err := trainer.Train(small, 6,
		trainer.WithSeeds([]int{0, 2, 4, 6, 8, 10}),
		trainer.WithIterations(4),
	)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 1}, {2, 3}, {4, 5}, {6, 7}, {8, 9}, {10, 11}}, res.Regions)
	for r, px := range res.Proxies {
		assert.Equal(t, small.Triangles[2*r].N, px.Normal, "region %d", r)
	}
	for _, rep := range res.Reports {
		assert.Zero(t, rep.Degenerate, "pass %d", rep.Iteration)
		assert.Zero(t, rep.EmptyRegions, "pass %d", rep.Iteration)
	}
}

func TestTrain_EarlyStop(t *testing.T) {
	m := buildMesh(t, builder.PlatonicSolid(builder.Cube))

	res, err := trainer.Train(m, 6,
		trainer.WithSeeds([]int{0, 2, 4, 6, 8, 10}),
		trainer.WithIterations(50),
		trainer.WithEpsilon(1e-9),
	)
	require.NoError(t, err)
	assert.True(t, res.Converged)
	assert.Len(t, res.Reports, 2, "the second pass cannot improve on an exact fit")

	// Without epsilon every pass runs.
	res, err = trainer.Train(m, 6,
		trainer.WithSeeds([]int{0, 2, 4, 6, 8, 10}),
		trainer.WithIterations(5),
	)
	require.NoError(t, err)
	assert.False(t, res.Converged)
	assert.Len(t, res.Reports, 5)
}

func TestTrain_Disconnected(t *testing.T) {
	tet := builder.PlatonicSolid(builder.Tetrahedron)
	m := buildMesh(t, tet, builder.Translated(mgl64.Vec3{10, 0, 0}, tet))

	res, err := trainer.Train(m, 1, trainer.WithSeeds([]int{0}), trainer.WithIterations(3))
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 1, 2, 3}, {4, 5, 6, 7}}, res.Components)
	for _, rep := range res.Reports {
		assert.Equal(t, 4, rep.Unlabeled)
	}
	for tri := 4; tri < 8; tri++ {
		assert.Equal(t, partition.Unassigned, res.Labels[tri])
	}
	assertReports(t, res)

	// More regions than components still trains.
	res, err = trainer.Train(m, 3, trainer.WithSeed(2), trainer.WithIterations(5))
	require.NoError(t, err)
	assert.Len(t, res.Reports, 5)
	assertReports(t, res)
}

func TestTrain_ZeroIterations(t *testing.T) {
	m := buildMesh(t, builder.Fan(5))

	res, err := trainer.Train(m, 2, trainer.WithIterations(0), trainer.WithSeed(1))
	require.NoError(t, err)
	assert.Empty(t, res.Reports)
	assert.True(t, math.IsInf(res.FinalError(), 1))
	for _, l := range res.Labels {
		assert.Equal(t, partition.Unassigned, l)
	}
	require.Len(t, res.Regions, 2)
	for _, r := range res.Regions {
		assert.Empty(t, r)
	}
}

// TestTrain_Deterministic: a fixed seed gives identical results across
// worker counts and across repeated runs of one Trainer.
func TestTrain_Deterministic(t *testing.T) {
	m := buildMesh(t, builder.Icosphere(2))

	r1, err := trainer.Train(m, 8, trainer.WithSeed(5), trainer.WithIterations(6))
	require.NoError(t, err)
	r4, err := trainer.Train(m, 8, trainer.WithSeed(5), trainer.WithIterations(6), trainer.WithWorkers(4))
	require.NoError(t, err)
	assert.Equal(t, r1, r4)
	assertReports(t, r1)

	tr, err := trainer.New(m, 8, trainer.WithSeed(5), trainer.WithIterations(6))
	require.NoError(t, err)
	again, err := tr.Run()
	require.NoError(t, err)
	assert.Equal(t, r1, again)

	covered := 0
	for _, region := range r1.Regions {
		covered += len(region)
	}
	assert.Equal(t, m.Len(), covered)
}

func TestTrain_PointModes(t *testing.T) {
	m := buildMesh(t, builder.Fan(6))

	res, err := trainer.Train(m, 1, trainer.WithSeed(1), trainer.WithIterations(2),
		trainer.WithPointMode(proxy.PointCentroid))
	require.NoError(t, err)
	p := res.Proxies[0].Point
	assert.InDelta(t, 0.0, p.X(), 1e-12)
	assert.InDelta(t, 0.0, p.Y(), 1e-12)
	assert.Equal(t, 0.0, p.Z())
}

func TestTrain_OnIteration(t *testing.T) {
	m := buildMesh(t, builder.Icosphere(1))
	stop := errors.New("enough")

	var seen []int
	res, err := trainer.Train(m, 4, trainer.WithSeed(3), trainer.WithIterations(10),
		trainer.WithOnIteration(func(r trainer.Report) error {
			seen = append(seen, r.Iteration)
			if r.Iteration == 1 {
				return stop
			}
			return nil
		}))
	require.ErrorIs(t, err, stop)
	require.NotNil(t, res)
	assert.Equal(t, []int{0, 1}, seen)
	assert.Len(t, res.Reports, 2)
	assert.Len(t, res.Labels, m.Len())
}

func TestTrain_Context(t *testing.T) {
	m := buildMesh(t, builder.Icosphere(1))

	t.Run("CanceledBeforeStart", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		res, err := trainer.Train(m, 4, trainer.WithSeed(1), trainer.WithContext(ctx))
		require.ErrorIs(t, err, context.Canceled)
		assert.Empty(t, res.Reports)
	})

	t.Run("CanceledBetweenPasses", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		res, err := trainer.Train(m, 4, trainer.WithSeed(1), trainer.WithContext(ctx),
			trainer.WithOnIteration(func(r trainer.Report) error {
				if r.Iteration == 2 {
					cancel()
				}
				return nil
			}))
		require.ErrorIs(t, err, context.Canceled)
		assert.Len(t, res.Reports, 3)
	})
}

func TestNew_Errors(t *testing.T) {
	m := buildMesh(t, builder.PlatonicSolid(builder.Cube))

	cases := []struct {
		name string
		m    *mesh.Mesh
		k    int
		opts []trainer.Option
		want error
	}{
		{"NilMesh", nil, 1, nil, trainer.ErrNilMesh},
		{"NegativeIterations", m, 1, []trainer.Option{trainer.WithIterations(-1)}, trainer.ErrInvalidIterations},
		{"NegativeEpsilon", m, 1, []trainer.Option{trainer.WithEpsilon(-0.1)}, trainer.ErrOptionViolation},
		{"NaNEpsilon", m, 1, []trainer.Option{trainer.WithEpsilon(math.NaN())}, trainer.ErrOptionViolation},
		{"ZeroWorkers", m, 1, []trainer.Option{trainer.WithWorkers(0)}, trainer.ErrOptionViolation},
		{"BadPointMode", m, 1, []trainer.Option{trainer.WithPointMode(proxy.PointMode(99))}, trainer.ErrOptionViolation},
		{"EmptySeeds", m, 1, []trainer.Option{trainer.WithSeeds(nil)}, trainer.ErrOptionViolation},
		{"ZeroK", m, 0, nil, partition.ErrInvalidRegionCount},
		{"KAboveTriangles", m, 13, nil, partition.ErrInvalidRegionCount},
		{"DuplicateSeed", m, 2, []trainer.Option{trainer.WithSeeds([]int{3, 3})}, partition.ErrDuplicateSeed},
		{"SeedRange", m, 1, []trainer.Option{trainer.WithSeeds([]int{12})}, partition.ErrSeedOutOfRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tr, err := trainer.New(tc.m, tc.k, tc.opts...)
			assert.ErrorIs(t, err, tc.want)
			assert.Nil(t, tr)

			res, err := trainer.Train(tc.m, tc.k, tc.opts...)
			assert.ErrorIs(t, err, tc.want)
			assert.Nil(t, res)
		})
	}
}

func TestTrainer_Accessors(t *testing.T) {
	m := buildMesh(t, builder.PlatonicSolid(builder.Octahedron))
	tr, err := trainer.New(m, 2, trainer.WithIterations(7), trainer.WithEpsilon(0.5))
	require.NoError(t, err)

	o := tr.Options()
	assert.Equal(t, 7, o.Iterations)
	assert.Equal(t, 0.5, o.Epsilon)
	assert.Equal(t, 1, o.Workers)
	assert.Equal(t, proxy.PointReference, o.PointMode)
	assert.Equal(t, m.Len(), tr.Index().Len())
}
