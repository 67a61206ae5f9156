// File: methods_adjacent.go
// Role: neighbourhood queries.
// Determinism:
//   - Neighbors() returns handles sorted ascending.

package core

import "sort"

// Neighbors returns the handles adjacent to v, sorted ascending.
// The returned slice is a fresh copy.
//
// Complexity: O(d log d) for degree d.
func (g *Graph) Neighbors(v int) ([]int, error) {
	if !g.HasVertex(v) {
		return nil, ErrVertexNotFound
	}
	out := make([]int, 0, len(g.adjacency[v]))
	var w int
	for w = range g.adjacency[v] {
		out = append(out, w)
	}
	sort.Ints(out)

	return out, nil
}
