// Package etchpath turns point clouds, and the images they come from, into
// one continuous pen path.
//
// 🚀 What is etchpath?
//
//	A small toolkit for single-stroke drawing machines (etch-style toys,
//	pen plotters) that brings together:
//		• Points: immutable N-dimensional coordinates with a total order
//		• Spatial index: a k-d tree with exact nearest-neighbour search
//		• Graphs: a simple undirected graph with component labelling
//		• Traversal: a doubling DFS walk that returns to every parent
//		• Tours: nearest-neighbour linking, centroid merging, one closed walk
//		• Edges: Sobel edge extraction from PNG, JPEG, GIF and BMP images
//		• Plot: frame fitting, JCode generation and PNG previews
//
// ✨ Why choose etchpath?
//
//   - Deterministic: the same input always yields the same tour
//   - Exact: nearest-neighbour queries are never approximate
//   - Observable: slog logging plus OpenTelemetry spans and metrics
//
// Under the hood, everything is organized under these subpackages:
//
//	point/  Point, ordering, distances, centroids
//	kdtree/ Tree[V]: Build, Insert, Remove, Nearest, Validate
//	core/   Graph, Edge, Components
//	dfs/    Walk with hooks and cancellation
//	tsp/    SpanningTreeWalk, ValidateWalk, PathLength
//	edges/  Decode, Grayscale, Sobel, Extract
//	plot/   Fit, JCode, Render
//
// The etchpath command wires them together:
//
//	go install github.com/katalvlaran/etchpath/cmd/etchpath@latest
//	etchpath trace photo.png -o photo.jcode --preview preview.png
//	etchpath send photo.jcode --port /dev/ttyUSB0
package etchpath
