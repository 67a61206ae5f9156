// File: methods_edges.go
// Role: edge lifecycle and queries: AddEdge, HasEdge, Edges, EdgeCount.
// Determinism:
//   - Edges() returns canonical pairs sorted by (U, V).

package core

import "sort"

// AddEdge connects u and v. It returns true if the edge is new and false if
// it already existed.
//
// Errors:
//   - ErrVertexNotFound if either endpoint is not a handle of g.
//   - ErrLoopNotAllowed if u == v.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int) (bool, error) {
	// 1) Validate endpoints.
	if !g.HasVertex(u) || !g.HasVertex(v) {
		return false, ErrVertexNotFound
	}
	if u == v {
		return false, ErrLoopNotAllowed
	}

	// 2) Parallel edges collapse into the existing one.
	if _, ok := g.adjacency[u][v]; ok {
		return false, nil
	}

	// 3) Store both directions.
	g.adjacency[u][v] = struct{}{}
	g.adjacency[v][u] = struct{}{}
	g.edges++

	return true, nil
}

// HasEdge reports whether u and v are adjacent. Unknown handles yield false.
func (g *Graph) HasEdge(u, v int) bool {
	if !g.HasVertex(u) || !g.HasVertex(v) {
		return false
	}
	_, ok := g.adjacency[u][v]

	return ok
}

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int { return g.edges }

// Edges returns every edge once, in canonical (U < V) form, sorted.
//
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.edges)
	var u, v int
	for u = range g.adjacency {
		for v = range g.adjacency[u] {
			if u < v {
				out = append(out, newEdge(u, v))
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].U != out[j].U {
			return out[i].U < out[j].U
		}

		return out[i].V < out[j].V
	})

	return out
}
