// Package vsa is variational shape approximation for triangle meshes:
// partition a surface into k regions, each summarized by a best-fit plane
// (a "proxy"), while greedily lowering the area-weighted normal error.
//
// What is inside?
//
//	• Mesh primitives: triangles, area, normals, indexed meshes, soup welding
//	• Topology: edge-keyed triangle adjacency and connected components
//	• Proxies: the L2,1 normal metric and per-region plane refitting
//	• Partitioning: multi-source best-first region growing on a min-heap
//	• Training: partition → refit passes with early stop and per-pass reports
//
// Everything is organized under these subpackages:
//
//	mesh/      - Triangle, Mesh, FromSoup
//	adjacency/ - Index (neighbors, degree, boundary, components)
//	proxy/     - Proxy, distance metric, Fitter
//	partition/ - Partitioner (one region-growing pass at a time)
//	trainer/   - Train, Trainer, Report, Result
//	builder/   - deterministic test surfaces (fan, grid, platonic solids, icosphere)
//	cmd/vsa/   - command-line driver over builder surfaces
//
// Quick ASCII example (a cube split into its faces, k = 6):
//
//	   +-------+
//	  /   2   /|
//	 +-------+ |      every face is two triangles sharing a diagonal;
//	 |       |1+      seeding one triangle per face grows each region
//	 |   0   |/       to exactly that face at zero error.
//	 +-------+
//
//	go get github.com/katalvlaran/vsa
package vsa
