// Package tsp builds pen-down-only drawing tours with the spanning-tree-walk
// heuristic.
//
// SpanningTreeWalk orders an unordered point set so that a tool which can
// never lift visits every point while moving only along edges of a
// connected structure. Exact optimality is not attempted; the goal is a
// bounded-quality tour in near n·log n time.
//
// Pipeline:
//
//  1. Deduplicate the input (first occurrence wins) and index it in a
//     median-split kdtree.Tree.
//  2. Nearest-neighbour graph: connect every point to its nearest other
//     point. The relation is not symmetric, so this yields a forest of
//     small clusters.
//  3. Components: partition the graph with core.Graph.ComponentLabels.
//  4. Merge loop: while more than one component remains, take the next
//     component A, find the component B whose centroid is nearest A's,
//     bridge the point of B nearest centroid(A) to the point of A nearest
//     that B-side point, fold A into B and update B's centroid as the
//     size-weighted mean. A centroid index (kdtree.Tree keyed by centroid)
//     makes the nearest-component lookup sub-linear.
//  5. Doubling walk: dfs.Walk from the start point; every branch is walked
//     down and back, so consecutive tour entries always share an edge.
//
// Tour length is 2n-1 entries for n distinct points (n >= 1).
//
// Degenerate inputs:
//   - no valid points: empty tour, no error.
//   - one distinct point: a one-entry tour; no graph or walk work.
//
// Start point (WithStart) need not be an input point; the walk starts at the
// input point nearest to it. Without it the first distinct input point is
// used.
//
// Observability: progress and centroid collisions are logged through the
// logger set by WithLogger (silent by default). Each call is traced as the
// span "tsp.SpanningTreeWalk" under the context set by WithContext and
// recorded in the tsp_* OpenTelemetry metrics of the global meter provider.
//
// Errors:
//   - ErrDimensionMismatch   input or start point of another dimensionality.
//   - ErrEmptyComponent      broken merge invariant (internal, fatal).
//   - ErrDisconnected        the walk did not reach every point (internal, fatal).
//   - ErrNotAWalk, ErrMissingPoint from ValidateWalk.
//
// Concurrency: each call owns all of its state; concurrent calls are safe.
package tsp
