// File: methods_vertices.go
// Role: vertex lifecycle and queries: AddVertex, HasVertex, VertexCount, Degree.

package core

// AddVertex appends a new isolated vertex and returns its handle.
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex() int {
	g.adjacency = append(g.adjacency, make(map[int]struct{}, 1))

	return len(g.adjacency) - 1
}

// HasVertex reports whether v is a handle of g.
func (g *Graph) HasVertex(v int) bool {
	return v >= 0 && v < len(g.adjacency)
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int { return len(g.adjacency) }

// Degree returns the number of neighbours of v.
func (g *Graph) Degree(v int) (int, error) {
	if !g.HasVertex(v) {
		return 0, ErrVertexNotFound
	}

	return len(g.adjacency[v]), nil
}
