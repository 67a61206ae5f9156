package dfs

import (
	"fmt"

	"github.com/katalvlaran/etchpath/core"
)

// frame is one vertex on the explicit walk stack.
type frame struct {
	v    int   // vertex being explored
	nbrs []int // its neighbours, ascending
	next int   // index of the next neighbour to try
}

// dfsWalker encapsulates state during the walk.
type dfsWalker struct {
	graph *core.Graph
	opts  WalkOptions
	res   *WalkResult
	stack []frame
}

// Walk performs the doubling depth-first walk on g from start.
// On error the partial result gathered so far is returned with it.
func Walk(g *core.Graph, start int, opts ...Option) (*WalkResult, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(start) {
		return nil, ErrStartVertexNotFound
	}

	// 2. Apply options
	wopts := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&wopts)
	}

	// 3. Initialize result with capacity hints
	n := g.VertexCount()
	res := &WalkResult{
		Sequence: make([]int, 0, 2*n),
		Order:    make([]int, 0, n),
		Parent:   make([]int, n),
		Depth:    make([]int, n),
	}
	var i int
	for i = 0; i < n; i++ {
		res.Parent[i] = -1
		res.Depth[i] = -1
	}

	w := &dfsWalker{graph: g, opts: wopts, res: res}

	return res, w.traverse(start)
}

// traverse runs the walk with an explicit stack. A vertex is appended on
// discovery; when a frame is exhausted and popped, the vertex below it is
// appended again, which is the return step of the doubling walk.
func (w *dfsWalker) traverse(start int) error {
	if err := w.discover(start, -1); err != nil {
		return err
	}

	var (
		top *frame
		nb  int
		err error
	)
	for len(w.stack) > 0 {
		top = &w.stack[len(w.stack)-1]

		// 1. Descend into the next undiscovered neighbour.
		if top.next < len(top.nbrs) {
			nb = top.nbrs[top.next]
			top.next++
			if w.res.Depth[nb] >= 0 {
				continue
			}
			if err = w.discover(nb, top.v); err != nil {
				return err
			}
			continue
		}

		// 2. Subtree finished: exit hook, pop, return to the parent.
		if w.opts.OnExit != nil {
			if err = w.opts.OnExit(top.v); err != nil {
				return fmt.Errorf("dfs: OnExit hook for %d: %w", top.v, err)
			}
		}
		w.stack = w.stack[:len(w.stack)-1]
		if len(w.stack) > 0 {
			w.res.Sequence = append(w.res.Sequence, w.stack[len(w.stack)-1].v)
		}
	}

	return nil
}

// discover records v as reached from parent and pushes its frame.
func (w *dfsWalker) discover(v, parent int) error {
	// 1. Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	// 2. Record discovery
	w.res.Parent[v] = parent
	if parent < 0 {
		w.res.Depth[v] = 0
	} else {
		w.res.Depth[v] = w.res.Depth[parent] + 1
	}
	w.res.Order = append(w.res.Order, v)
	w.res.Sequence = append(w.res.Sequence, v)

	// 3. Pre-order hook
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(v); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %d: %w", v, err)
		}
	}

	// 4. Fetch neighbours once
	nbrs, err := w.graph.Neighbors(v)
	if err != nil {
		return fmt.Errorf("dfs: Neighbors(%d): %w", v, err)
	}
	w.stack = append(w.stack, frame{v: v, nbrs: nbrs})

	return nil
}
