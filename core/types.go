package core

import "errors"

// Sentinel errors for graph operations.
var (
	// ErrNegativeOrder indicates NewGraph was asked for fewer than zero vertices.
	ErrNegativeOrder = errors.New("core: negative vertex count")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Edge is an undirected vertex pair in canonical form (U < V).
type Edge struct {
	U int
	V int
}

// Graph is a simple undirected graph over integer vertex handles.
type Graph struct {
	// adjacency[v] is the neighbour set of v.
	adjacency []map[int]struct{}

	// edges counts undirected edges (each stored in two adjacency sets).
	edges int
}

// NewGraph returns a graph with vertices 0..order-1 and no edges.
func NewGraph(order int) (*Graph, error) {
	if order < 0 {
		return nil, ErrNegativeOrder
	}
	g := &Graph{adjacency: make([]map[int]struct{}, order)}
	var v int
	for v = 0; v < order; v++ {
		g.adjacency[v] = make(map[int]struct{}, 1)
	}

	return g, nil
}

// newEdge returns the canonical form of {u, v}.
func newEdge(u, v int) Edge {
	if u > v {
		u, v = v, u
	}

	return Edge{U: u, V: v}
}
