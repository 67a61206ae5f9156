// Package kdtree implements a k-dimensional space-partitioning index over
// point.Point values, each carrying a caller-defined payload V.
//
// Storage is an arena: every indexed point lives in a slice entry addressed
// by an int handle, and the lesser/greater child relations are handle
// fields on that entry. Removing a point detaches its handle and re-places
// the handles of its former subtrees; freed handles are recycled through a
// free list, so nothing is ever deallocated node by node.
//
// Placement:
//
//	At depth d the split dimension is d mod Dims(). Points are compared with
//	point.Point.CompareOn on that dimension; exact ties fall back to the
//	lexicographic total order, so placement is always decidable.
//	Smaller goes to the lesser child, everything else to the greater child.
//
// Operations:
//
//   - New[V](dims) / Build(dims, pts) / BuildWith(dims, pts, vals): empty
//     index or balanced bulk build, with or without per-point payloads.
//   - Insert(p, v): idempotent; a present point keeps its payload.
//   - Remove(p), Contains(p), Get(p).
//   - Nearest(q) / NearestFunc(q, accept): branch-and-bound search;
//     equal distances resolve to the lexicographically smaller point.
//   - Len, Dims, Height, Points, Clear, Validate.
//
// Invalid points passed to Insert, Remove or Contains are no-ops. A valid
// point of the wrong dimensionality is rejected with ErrDimensionMismatch
// by Insert and simply not found by the read paths.
//
// Concurrency: mutations are not synchronized. Read-only calls (Contains,
// Get, Nearest, NearestFunc, Points) may run concurrently with each other
// while no goroutine mutates the tree.
//
// The index is not rebalanced after Insert/Remove; adversarial insertion
// order can skew it. Build produces a median-split tree of height
// ⌈log2(n+1)⌉.
package kdtree
