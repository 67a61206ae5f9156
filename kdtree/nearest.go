package kdtree

import (
	"math"

	"github.com/katalvlaran/etchpath/point"
)

// searcher carries the running best of one nearest-neighbour query.
type searcher[V any] struct {
	t      *Tree[V]
	q      point.Point
	accept func(point.Point, V) bool
	best   int
	bestSq float64
}

// Nearest returns the indexed point closest to q, its payload and true.
// Equal distances resolve to the lexicographically smaller point.
// It returns false for an empty tree or an unusable query.
func (t *Tree[V]) Nearest(q point.Point) (point.Point, V, bool) {
	return t.NearestFunc(q, nil)
}

// NearestFunc is Nearest restricted to entries for which accept returns
// true. A nil accept admits every entry.
//
// Complexity: O(log n) expected on a balanced tree, O(n) worst case.
func (t *Tree[V]) NearestFunc(q point.Point, accept func(p point.Point, v V) bool) (point.Point, V, bool) {
	var zero V
	if !t.accepts(q) || t.root == none {
		return point.Invalid(), zero, false
	}
	s := &searcher[V]{t: t, q: q, accept: accept, best: none, bestSq: math.Inf(1)}
	s.visit(t.root, 0)
	if s.best == none {
		return point.Invalid(), zero, false
	}
	n := &t.nodes[s.best]

	return n.p, n.val, true
}

// visit explores the subtree at h: the query's side first, then h itself,
// then the far side when the splitting plane is within the best radius.
// Recursion depth equals the tree height.
func (s *searcher[V]) visit(h, depth int) {
	n := &s.t.nodes[h]
	dim := depth % s.t.dims

	near, far := n.greater, n.lesser
	if s.q.CompareOn(n.p, dim) < 0 {
		near, far = n.lesser, n.greater
	}
	if near != none {
		s.visit(near, depth+1)
	}

	s.consider(h)

	if far == none {
		return
	}
	diff := s.q.At(dim) - n.p.At(dim)
	if diff*diff <= s.bestSq {
		s.visit(far, depth+1)
	}
}

// consider adopts h if it is strictly closer than the best so far,
// or equally close and smaller in the total order.
func (s *searcher[V]) consider(h int) {
	n := &s.t.nodes[h]
	if s.accept != nil && !s.accept(n.p, n.val) {
		return
	}
	d := s.q.SquaredDistanceTo(n.p)
	if s.best == none || d < s.bestSq || (d == s.bestSq && n.p.Less(s.t.nodes[s.best].p)) {
		s.best = h
		s.bestSq = d
	}
}
