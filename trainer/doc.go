// Package trainer drives variational shape approximation end to end: it
// builds the adjacency index once, then alternates partition passes and
// proxy refits for a fixed number of iterations or until the global error
// stops improving.
//
// Each pass i:
//
//  1. partition.Partitioner.Partition(i) regrows the regions from the
//     current proxies (pass 0 draws the seeds);
//  2. the pass error (Report.PartitionError) is read before refitting;
//  3. proxy.Fitter.Fit refits every proxy to its region;
//  4. the refit proxies are installed and scored (Report.Error);
//  5. the OnIteration hook, if any, receives the Report.
//
// Early stop: with WithEpsilon(eps > 0) training ends after the first pass
// whose Error improves on the previous pass by less than eps;
// Result.Converged records that. A context supplied via WithContext is
// checked between passes only, never inside one.
//
// Errors (sentinel):
//
//	ErrNilMesh           – nil mesh.
//	ErrInvalidIterations – WithIterations(n < 0).
//	ErrOptionViolation   – any other invalid option value.
//
// Region-count and seed errors come from package partition and are passed
// through wrapped, so errors.Is(err, partition.ErrInvalidRegionCount) holds.
//
// Example:
//
//	res, err := trainer.Train(m, 6,
//		trainer.WithIterations(20),
//		trainer.WithEpsilon(1e-9),
//		trainer.WithSeed(1),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for r, tris := range res.Regions {
//		fmt.Println(r, len(tris), res.Proxies[r].Normal)
//	}
package trainer
