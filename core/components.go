// File: components.go
// Role: connected-component partitioning by breadth-first search.
// Determinism:
//   - components ordered by smallest vertex; vertices ascending within each.

package core

// Components partitions the vertices into connected components.
// Every vertex appears in exactly one component; isolated vertices form
// singleton components.
//
// Time:   O(V + E log d) including the per-component sort.
// Memory: O(V) for labels and the queue.
func (g *Graph) Components() [][]int {
	labels, count := g.ComponentLabels()
	comps := make([][]int, count)
	var v, c int
	for v, c = range labels {
		comps[c] = append(comps[c], v)
	}

	return comps
}

// ComponentLabels returns, for every vertex, the index of its component,
// and the number of components. Components are numbered in order of their
// smallest vertex.
func (g *Graph) ComponentLabels() ([]int, int) {
	n := len(g.adjacency)
	labels := make([]int, n)
	var i int
	for i = range labels {
		labels[i] = -1
	}

	var (
		count int
		queue []int
		u, w  int
		v0    int
	)
	for v0 = 0; v0 < n; v0++ {
		if labels[v0] >= 0 {
			continue
		}
		// BFS to label the component of v0
		queue = append(queue[:0], v0)
		labels[v0] = count
		for qi := 0; qi < len(queue); qi++ {
			u = queue[qi]
			for w = range g.adjacency[u] {
				if labels[w] < 0 {
					labels[w] = count
					queue = append(queue, w)
				}
			}
		}
		count++
	}

	return labels, count
}

// IsConnected reports whether g has at most one component.
func (g *Graph) IsConnected() bool {
	_, count := g.ComponentLabels()

	return count <= 1
}
