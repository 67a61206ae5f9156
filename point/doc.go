// Package point defines Point, the immutable D-dimensional coordinate value
// shared by the spatial index, the connectivity graph and the tour builder.
//
// A Point owns a private copy of its coordinates; constructors copy their
// input and accessors return copies, so a caller can never mutate a Point
// that has been handed to a kdtree.Tree or a tsp result.
//
// Ordering:
//
//	Compare defines a total order: lexicographic over dimensions, shorter
//	points before longer ones, invalid points after every valid one.
//	CompareOn first compares a single split dimension and falls back to
//	Compare on ties; the k-d tree uses it to place and find points.
//
// Invalid sentinel:
//
//	Invalid() (and the zero Point) represent "no such point". New returns
//	an invalid Point when given no coordinates or any NaN/Inf value.
//
// Distances are Euclidean. SquaredDistanceTo is used for pruning and
// comparisons; DistanceTo for reporting path lengths.
package point
