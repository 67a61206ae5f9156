package kdtree

import (
	"fmt"

	"github.com/katalvlaran/etchpath/point"
)

// Insert adds p with payload v. It returns false without error when p is
// invalid or already present; an existing point keeps its payload.
func (t *Tree[V]) Insert(p point.Point, v V) (bool, error) {
	if !p.IsValid() {
		return false, nil
	}
	if p.Dim() != t.dims {
		return false, fmt.Errorf("kdtree: Insert %v into %d-d tree: %w", p, t.dims, ErrDimensionMismatch)
	}
	if t.root == none {
		t.root = t.alloc(p, v)

		return true, nil
	}

	var (
		cur   = t.root
		depth int
		c     int
	)
	for {
		c = p.CompareOn(t.nodes[cur].p, depth%t.dims)
		if c == 0 {
			return false, nil
		}
		if c < 0 {
			if t.nodes[cur].lesser == none {
				t.nodes[cur].lesser = t.alloc(p, v)

				return true, nil
			}
			cur = t.nodes[cur].lesser
		} else {
			if t.nodes[cur].greater == none {
				t.nodes[cur].greater = t.alloc(p, v)

				return true, nil
			}
			cur = t.nodes[cur].greater
		}
		depth++
	}
}

// Remove deletes p and reports whether it was present. The removed node's
// subtrees are re-placed into the remaining tree one node at a time.
func (t *Tree[V]) Remove(p point.Point) bool {
	h, parent := t.find(p)
	if h == none {
		return false
	}

	// 1) Detach from parent (or clear the root).
	switch {
	case parent == none:
		t.root = none
	case t.nodes[parent].lesser == h:
		t.nodes[parent].lesser = none
	default:
		t.nodes[parent].greater = none
	}

	// 2) Free the handle, then re-place its orphaned subtrees.
	lesser, greater := t.nodes[h].lesser, t.nodes[h].greater
	t.release(h)
	t.reattach(lesser)
	t.reattach(greater)

	return true
}

// Contains reports whether p is indexed.
func (t *Tree[V]) Contains(p point.Point) bool {
	h, _ := t.find(p)

	return h != none
}

// Get returns the payload stored with p.
func (t *Tree[V]) Get(p point.Point) (V, bool) {
	h, _ := t.find(p)
	if h == none {
		var zero V

		return zero, false
	}

	return t.nodes[h].val, true
}

// find returns the handle of p and of its parent, or none.
func (t *Tree[V]) find(p point.Point) (h, parent int) {
	if !t.accepts(p) {
		return none, none
	}
	var (
		cur   = t.root
		prev  = none
		depth int
		c     int
	)
	for cur != none {
		c = p.CompareOn(t.nodes[cur].p, depth%t.dims)
		if c == 0 {
			return cur, prev
		}
		prev = cur
		if c < 0 {
			cur = t.nodes[cur].lesser
		} else {
			cur = t.nodes[cur].greater
		}
		depth++
	}

	return none, none
}

// reattach re-places every node of the detached subtree rooted at h.
// Each node's children are cut before it is placed and queued after,
// so no descendant is lost and no stale link survives.
func (t *Tree[V]) reattach(h int) {
	if h == none {
		return
	}
	stack := []int{h}
	var lesser, greater int
	for len(stack) > 0 {
		h = stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		lesser, greater = t.nodes[h].lesser, t.nodes[h].greater
		t.nodes[h].lesser, t.nodes[h].greater = none, none
		t.place(h)

		if greater != none {
			stack = append(stack, greater)
		}
		if lesser != none {
			stack = append(stack, lesser)
		}
	}
}

// place links the childless handle h below the first free slot on its path.
func (t *Tree[V]) place(h int) {
	if t.root == none {
		t.root = h

		return
	}
	p := t.nodes[h].p
	var (
		cur   = t.root
		depth int
	)
	for {
		if p.CompareOn(t.nodes[cur].p, depth%t.dims) < 0 {
			if t.nodes[cur].lesser == none {
				t.nodes[cur].lesser = h

				return
			}
			cur = t.nodes[cur].lesser
		} else {
			if t.nodes[cur].greater == none {
				t.nodes[cur].greater = h

				return
			}
			cur = t.nodes[cur].greater
		}
		depth++
	}
}
