package kdtree

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/etchpath/point"
)

// Build indexes pts as a median-split tree whose payload is the position of
// each point in pts. Duplicates keep the first position; invalid points are
// skipped. Any valid point with Dim() != dims yields ErrDimensionMismatch.
//
// Complexity: O(n log² n) time, O(n) space.
func Build(dims int, pts []point.Point) (*Tree[int], error) {
	vals := make([]int, len(pts))
	var i int
	for i = range vals {
		vals[i] = i
	}

	return BuildWith(dims, pts, vals)
}

// BuildWith is Build with caller-supplied payloads: vals[i] travels with
// pts[i]. The slices must have equal length.
func BuildWith[V any](dims int, pts []point.Point, vals []V) (*Tree[V], error) {
	if len(pts) != len(vals) {
		return nil, fmt.Errorf("kdtree: BuildWith %d points, %d values: %w", len(pts), len(vals), ErrLengthMismatch)
	}
	t, err := New[V](dims)
	if err != nil {
		return nil, err
	}

	// 1) Collect unique valid points in input order.
	seen := make(map[string]struct{}, len(pts))
	handles := make([]int, 0, len(pts))
	var (
		i int
		p point.Point
	)
	for i, p = range pts {
		if !p.IsValid() {
			continue
		}
		if p.Dim() != dims {
			return nil, fmt.Errorf("kdtree: Build point %d %v: %w", i, p, ErrDimensionMismatch)
		}
		key := p.Key()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		handles = append(handles, t.alloc(p, vals[i]))
	}

	// 2) Split recursively at the median of the current dimension.
	t.root = t.buildRange(handles, 0)

	return t, nil
}

// buildRange links hs into a subtree and returns its root handle.
func (t *Tree[V]) buildRange(hs []int, depth int) int {
	if len(hs) == 0 {
		return none
	}
	dim := depth % t.dims
	sort.Slice(hs, func(a, b int) bool {
		return t.nodes[hs[a]].p.CompareOn(t.nodes[hs[b]].p, dim) < 0
	})
	m := len(hs) / 2
	h := hs[m]
	t.nodes[h].lesser = t.buildRange(hs[:m], depth+1)
	t.nodes[h].greater = t.buildRange(hs[m+1:], depth+1)

	return h
}
