// Package mesh defines the immutable triangle primitive and the Mesh
// container consumed by the shape-approximation pipeline.
//
// A Mesh carries three index-aligned views of the same surface:
//
//	Vertices  – the vertex table (exact topological identity);
//	Faces     – per-triangle triples of indices into Vertices;
//	Triangles – per-triangle positions plus the face normal.
//
// Triangle identity is its position in Triangles. Triangles are never added
// or removed after construction, so every downstream structure (adjacency,
// regions, labels, queue entries) stores plain integer indices.
//
// Construction:
//
//	m, err := mesh.New(vertices, faces)                      // normals from winding
//	m, err := mesh.New(vertices, faces, mesh.WithNormals(n)) // loader-supplied normals
//	m, err := mesh.FromSoup(tris)                            // weld by exact position
//
// Errors (sentinel):
//
//	ErrEmptyMesh       – no faces supplied.
//	ErrFaceIndex       – a face references a vertex outside the table.
//	ErrNormalCount     – WithNormals length differs from the face count.
//	ErrOptionViolation – an option was given a meaningless value.
//
// Degenerate (zero-area) triangles are legal: Area reports 0 and the
// computed normal is the zero vector.
package mesh
