// Package core provides Graph, the undirected connectivity structure the
// tour builder assembles over point handles.
//
// Vertices are dense integer handles 0..VertexCount()-1; the caller keeps
// the mapping from handle to point (tsp uses the index of each distinct
// input point). Edges are undirected, unweighted and unique: a second
// AddEdge between the same endpoints is a silent no-op, and self-loops are
// rejected, so the edge set is always a simple graph.
//
// Determinism:
//
//   - Neighbors(v) returns handles sorted ascending.
//   - Edges() returns canonical pairs (U < V) sorted by (U, V).
//   - Components() returns components ordered by their smallest vertex,
//     each listing its vertices ascending.
//
// Concurrency:
//
//	Graph is built fresh per tour construction and owned by one goroutine.
//	It carries no locks; read methods may run concurrently only while no
//	goroutine mutates the graph.
//
// Errors:
//
//	ErrNegativeOrder    - NewGraph called with a negative vertex count.
//	ErrVertexNotFound   - a handle outside 0..VertexCount()-1.
//	ErrLoopNotAllowed   - AddEdge(v, v).
package core
