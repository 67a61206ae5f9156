// Package dfs implements the doubling depth-first walk over a core.Graph:
// a traversal that records every vertex on first discovery and records the
// parent again each time a child subtree has been fully explored.
//
// The resulting sequence moves only along graph edges, so a drawing tool
// that follows it never has to jump. On a connected graph with V vertices
// the walk has exactly 2V-1 entries: each vertex once on discovery plus one
// return to the parent for every non-root vertex.
//
// Key features:
//   - Walk(g, start, opts...): single-source walk from start
//   - Hooks: OnVisit (first discovery) & OnExit (subtree done) with error aborts
//   - Cancellation via context.Context, checked once per discovered vertex
//   - Explicit stack: recursion depth is constant regardless of graph shape
//
// Determinism:
//
//	Neighbours are explored in ascending handle order (core.Graph.Neighbors),
//	so a given graph and start always produce the same walk.
//
// Complexity:
//
//   - Time:   O(V + E log d) where d is the maximum degree (neighbour sort).
//   - Memory: O(V) for the stack and per-vertex metadata.
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - ErrStartVertexNotFound    if start is not a vertex of g.
//   - context.Canceled          if ctx is done.
//   - any error returned by OnVisit or OnExit, wrapped.
package dfs
