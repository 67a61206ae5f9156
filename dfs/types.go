package dfs

import (
	"context"
	"errors"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to Walk.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the start handle does not exist
	// in the graph.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")
)

// Option configures optional behavior of Walk.
type Option func(*WalkOptions)

// WalkOptions holds configurable parameters for the walk.
type WalkOptions struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when a vertex is first discovered.
	// Returning an error aborts the walk with that error.
	OnVisit func(v int) error

	// OnExit, if non-nil, is invoked once every descendant of a vertex has
	// been explored, before the walk returns to its parent.
	OnExit func(v int) error
}

// DefaultOptions returns WalkOptions with a background context and no hooks.
func DefaultOptions() WalkOptions {
	return WalkOptions{
		Ctx:     context.Background(),
		OnVisit: nil,
		OnExit:  nil,
	}
}

// WithContext sets the context checked during the walk.
// Passing a nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *WalkOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as the discovery hook.
func WithOnVisit(fn func(v int) error) Option {
	return func(o *WalkOptions) {
		o.OnVisit = fn
	}
}

// WithOnExit installs fn as the subtree-finished hook.
func WithOnExit(fn func(v int) error) Option {
	return func(o *WalkOptions) {
		o.OnExit = fn
	}
}

// WalkResult captures the outcome of a doubling walk.
type WalkResult struct {
	// Sequence is the doubling walk: discovery entries interleaved with
	// returns to the parent. Consecutive entries are always adjacent.
	Sequence []int

	// Order lists vertices in discovery (pre-order) sequence.
	Order []int

	// Parent maps each vertex to the vertex it was discovered from;
	// -1 for the start and for unreached vertices.
	Parent []int

	// Depth is the number of tree edges from start; -1 if unreached.
	Depth []int
}

// Visited reports whether v was reached by the walk.
func (r *WalkResult) Visited(v int) bool {
	return v >= 0 && v < len(r.Depth) && r.Depth[v] >= 0
}
