package kdtree

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/etchpath/point"
)

// Points returns every indexed point in lexicographic order.
func (t *Tree[V]) Points() []point.Point {
	out := make([]point.Point, 0, t.size)
	var (
		stack []int
		h     int
	)
	if t.root != none {
		stack = append(stack, t.root)
	}
	for len(stack) > 0 {
		h = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out = append(out, t.nodes[h].p)
		if t.nodes[h].lesser != none {
			stack = append(stack, t.nodes[h].lesser)
		}
		if t.nodes[h].greater != none {
			stack = append(stack, t.nodes[h].greater)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })

	return out
}

// Height returns the number of nodes on the longest root-to-leaf path.
func (t *Tree[V]) Height() int {
	type frame struct{ h, depth int }
	if t.root == none {
		return 0
	}
	var (
		best  int
		f     frame
		stack = []frame{{t.root, 1}}
	)
	for len(stack) > 0 {
		f = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		best = max(best, f.depth)
		if c := t.nodes[f.h].lesser; c != none {
			stack = append(stack, frame{c, f.depth + 1})
		}
		if c := t.nodes[f.h].greater; c != none {
			stack = append(stack, frame{c, f.depth + 1})
		}
	}

	return best
}

// bound records that every node below an ancestor must compare on the
// ancestor's split dimension as lesser (dir < 0) or greater (dir > 0).
type bound struct {
	h   int
	dim int
	dir int
}

// Validate checks the structural invariants: every live node is reachable
// from the root exactly once, nothing on the free list is reachable, the
// reachable count equals Len, and each node lies on the correct side of
// every ancestor's splitting plane. Errors wrap ErrCorrupt.
//
// Complexity: O(n·h) time, O(n) space.
func (t *Tree[V]) Validate() error {
	type frame struct {
		h      int
		depth  int
		bounds []bound
	}
	seen := make([]bool, len(t.nodes))
	count := 0
	if t.root != none {
		stack := []frame{{h: t.root}}
		var (
			f frame
			b bound
			n *node[V]
		)
		for len(stack) > 0 {
			f = stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if f.h < 0 || f.h >= len(t.nodes) {
				return fmt.Errorf("%w: handle %d out of range", ErrCorrupt, f.h)
			}
			if seen[f.h] {
				return fmt.Errorf("%w: handle %d reachable twice", ErrCorrupt, f.h)
			}
			seen[f.h] = true
			count++
			n = &t.nodes[f.h]
			if !n.live {
				return fmt.Errorf("%w: freed handle %d is reachable", ErrCorrupt, f.h)
			}
			for _, b = range f.bounds {
				if c := n.p.CompareOn(t.nodes[b.h].p, b.dim); c == 0 || (c < 0) != (b.dir < 0) {
					return fmt.Errorf("%w: %v on wrong side of %v", ErrCorrupt, n.p, t.nodes[b.h].p)
				}
			}

			dim := f.depth % t.dims
			if n.lesser != none {
				stack = append(stack, frame{h: n.lesser, depth: f.depth + 1, bounds: withBound(f.bounds, bound{f.h, dim, -1})})
			}
			if n.greater != none {
				stack = append(stack, frame{h: n.greater, depth: f.depth + 1, bounds: withBound(f.bounds, bound{f.h, dim, 1})})
			}
		}
	}
	if count != t.size {
		return fmt.Errorf("%w: %d reachable nodes, Len %d", ErrCorrupt, count, t.size)
	}
	if live := len(t.nodes) - len(t.free); live != t.size {
		return fmt.Errorf("%w: %d live arena entries, Len %d", ErrCorrupt, live, t.size)
	}

	return nil
}

// withBound returns bs plus b without sharing bs's backing array.
func withBound(bs []bound, b bound) []bound {
	out := make([]bound, len(bs)+1)
	copy(out, bs)
	out[len(bs)] = b

	return out
}
