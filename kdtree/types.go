package kdtree

import (
	"errors"

	"github.com/katalvlaran/etchpath/point"
)

// Sentinel errors for index operations.
var (
	// ErrBadDimension indicates a non-positive dimensionality was requested.
	ErrBadDimension = errors.New("kdtree: dimensionality must be positive")

	// ErrDimensionMismatch indicates a point whose Dim differs from the tree's.
	ErrDimensionMismatch = errors.New("kdtree: point dimensionality mismatch")

	// ErrLengthMismatch indicates BuildWith got differently sized slices.
	ErrLengthMismatch = errors.New("kdtree: points and values differ in length")

	// ErrCorrupt is wrapped by Validate when a structural invariant is broken.
	ErrCorrupt = errors.New("kdtree: corrupt tree")
)

// none marks an absent child or root handle.
const none = -1

// node is one arena entry.
type node[V any] struct {
	p       point.Point
	val     V
	lesser  int
	greater int
	live    bool
}

// Tree is a k-d tree holding unique points with a payload each.
type Tree[V any] struct {
	dims  int
	root  int
	nodes []node[V]
	free  []int
	size  int
}

// New returns an empty tree for points of the given dimensionality.
func New[V any](dims int) (*Tree[V], error) {
	if dims <= 0 {
		return nil, ErrBadDimension
	}

	return &Tree[V]{dims: dims, root: none}, nil
}

// Len returns the number of indexed points.
func (t *Tree[V]) Len() int { return t.size }

// Dims returns the dimensionality fixed at construction.
func (t *Tree[V]) Dims() int { return t.dims }

// Clear drops every point but keeps the arena capacity.
func (t *Tree[V]) Clear() {
	clear(t.nodes)
	t.nodes = t.nodes[:0]
	t.free = t.free[:0]
	t.root = none
	t.size = 0
}

// alloc returns a fresh leaf handle holding (p, v).
func (t *Tree[V]) alloc(p point.Point, v V) int {
	var h int
	if n := len(t.free); n > 0 {
		h = t.free[n-1]
		t.free = t.free[:n-1]
		t.nodes[h] = node[V]{p: p, val: v, lesser: none, greater: none, live: true}
	} else {
		h = len(t.nodes)
		t.nodes = append(t.nodes, node[V]{p: p, val: v, lesser: none, greater: none, live: true})
	}
	t.size++

	return h
}

// release returns h to the free list, zeroing the payload.
func (t *Tree[V]) release(h int) {
	t.nodes[h] = node[V]{lesser: none, greater: none}
	t.free = append(t.free, h)
	t.size--
}

// accepts reports whether p may be stored in t.
func (t *Tree[V]) accepts(p point.Point) bool {
	return p.IsValid() && p.Dim() == t.dims
}
