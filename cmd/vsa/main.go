// Command vsa approximates a generated test surface by k planar proxies and
// prints one line per training pass followed by the final regions.
//
// Usage:
//
//	vsa -shape sphere -subdiv 3 -k 12 -iterations 30 -epsilon 1e-6 -seed 7
//
// Shapes: cube, tetrahedron, octahedron, icosahedron, sphere (icosphere with
// -subdiv levels), grid (-rows × -cols), fan (-n triangles) and disjoint (two
// cubes far apart). -jitter perturbs every vertex with Gaussian noise.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime/pprof"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/katalvlaran/vsa/builder"
	"github.com/katalvlaran/vsa/proxy"
	"github.com/katalvlaran/vsa/trainer"
)

// config mirrors the command-line flags.
type config struct {
	shape      string
	subdiv     int
	rows, cols int
	fan        int
	jitter     float64
	scale      float64

	k          int
	iterations int
	epsilon    float64
	seed       int64
	workers    int
	point      string
	quiet      bool

	cpuprofile string
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("vsa: ")

	cfg, err := parseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	if cfg.cpuprofile != "" {
		f, err := os.Create(cfg.cpuprofile)
		if err != nil {
			log.Fatal(err)
		}
		if err = pprof.StartCPUProfile(f); err != nil {
			log.Fatal(err)
		}
		defer pprof.StopCPUProfile()
	}
	if err = run(cfg, os.Stdout, log.Default()); err != nil {
		log.Print(err)
		pprof.StopCPUProfile()
		os.Exit(1)
	}
}

// parseFlags reads the flags from args into a config.
func parseFlags(args []string) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("vsa", flag.ContinueOnError)
	fs.StringVar(&cfg.shape, "shape", "sphere", "surface to approximate: cube|tetrahedron|octahedron|icosahedron|sphere|grid|fan|disjoint")
	fs.IntVar(&cfg.subdiv, "subdiv", 2, "icosphere subdivision levels (sphere)")
	fs.IntVar(&cfg.rows, "rows", 4, "grid rows (grid)")
	fs.IntVar(&cfg.cols, "cols", 4, "grid columns (grid)")
	fs.IntVar(&cfg.fan, "n", 8, "triangle count (fan)")
	fs.Float64Var(&cfg.jitter, "jitter", 0, "standard deviation of vertex noise")
	fs.Float64Var(&cfg.scale, "scale", 1, "uniform scale applied to the shape")
	fs.IntVar(&cfg.k, "k", 6, "number of proxies")
	fs.IntVar(&cfg.iterations, "iterations", trainer.DefaultIterations, "maximum number of passes")
	fs.Float64Var(&cfg.epsilon, "epsilon", 0, "stop when a pass improves the error by less than this (0 = off)")
	fs.Int64Var(&cfg.seed, "seed", 1, "random seed for seeding and jitter")
	fs.IntVar(&cfg.workers, "workers", 1, "goroutines for per-region work")
	fs.StringVar(&cfg.point, "point", proxy.PointReference.String(), "proxy point formula: reference|centroid")
	fs.BoolVar(&cfg.quiet, "quiet", false, "print only the summary")
	fs.StringVar(&cfg.cpuprofile, "cpuprofile", "", "write cpu profile to file")
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}

	return cfg, nil
}

// shape maps a shape name to its builder constructors.
func shape(cfg config) ([]builder.Constructor, error) {
	switch cfg.shape {
	case "cube":
		return []builder.Constructor{builder.PlatonicSolid(builder.Cube)}, nil
	case "tetrahedron":
		return []builder.Constructor{builder.PlatonicSolid(builder.Tetrahedron)}, nil
	case "octahedron":
		return []builder.Constructor{builder.PlatonicSolid(builder.Octahedron)}, nil
	case "icosahedron":
		return []builder.Constructor{builder.PlatonicSolid(builder.Icosahedron)}, nil
	case "sphere":
		return []builder.Constructor{builder.Icosphere(cfg.subdiv)}, nil
	case "grid":
		return []builder.Constructor{builder.Grid(cfg.rows, cfg.cols)}, nil
	case "fan":
		return []builder.Constructor{builder.Fan(cfg.fan)}, nil
	case "disjoint":
		cube := builder.PlatonicSolid(builder.Cube)
		return []builder.Constructor{cube, builder.Translated(mgl64.Vec3{4, 0, 0}, cube)}, nil
	}

	return nil, fmt.Errorf("unknown shape %q", cfg.shape)
}

// run builds the mesh, trains and writes the outcome to out. Per-pass
// reports go to logger unless cfg.quiet is set.
func run(cfg config, out io.Writer, logger *log.Logger) error {
	cons, err := shape(cfg)
	if err != nil {
		return err
	}
	mode, err := proxy.ParsePointMode(cfg.point)
	if err != nil {
		return err
	}
	if cfg.scale <= 0 || cfg.jitter < 0 {
		return fmt.Errorf("scale must be > 0 and jitter ≥ 0 (scale=%g, jitter=%g)", cfg.scale, cfg.jitter)
	}

	m, err := builder.BuildMesh([]builder.BuilderOption{
		builder.WithSeed(cfg.seed),
		builder.WithScale(cfg.scale),
		builder.WithJitter(cfg.jitter),
	}, cons...)
	if err != nil {
		return err
	}
	logger.Printf("mesh: %d vertices, %d triangles, area %.6g", len(m.Vertices), m.Len(), m.Area())

	opts := []trainer.Option{
		trainer.WithIterations(cfg.iterations),
		trainer.WithEpsilon(cfg.epsilon),
		trainer.WithSeed(cfg.seed),
		trainer.WithWorkers(cfg.workers),
		trainer.WithPointMode(mode),
	}
	if !cfg.quiet {
		opts = append(opts, trainer.WithOnIteration(func(r trainer.Report) error {
			logger.Printf("pass %3d: error %.6g (partition %.6g), worst region %d (%.6g), unlabeled %d, empty %d, degenerate %d",
				r.Iteration, r.Error, r.PartitionError, r.MaxRegion, r.MaxRegionError,
				r.Unlabeled, r.EmptyRegions, r.Degenerate)
			return nil
		}))
	}

	res, err := trainer.Train(m, cfg.k, opts...)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "passes: %d, converged: %t, error: %.6g, components: %d\n",
		len(res.Reports), res.Converged, res.FinalError(), len(res.Components))
	for r, tris := range res.Regions {
		n := res.Proxies[r].Normal
		fmt.Fprintf(out, "region %d: %d triangles, normal (%.4f, %.4f, %.4f)\n", r, len(tris), n.X(), n.Y(), n.Z())
	}

	return nil
}
