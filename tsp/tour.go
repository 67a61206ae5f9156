// Package tsp: tour utilities.
//
// Helpers operating on finished tours:
//   - ValidateWalk: every consecutive pair is an edge, every point is covered.
//   - PathLength: Euclidean length of a point tour.
//   - CopyTour: independent copy of an index tour.
//   - DebugString: compact printable representation for tests/debug.
//
// Design:
//   - No logging, no panics on user input, only sentinel errors from types.go.
//   - O(len) time for every helper.
package tsp

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/etchpath/core"
	"github.com/katalvlaran/etchpath/point"
)

// ValidateWalk checks that order is a walk over edges covering every
// vertex 0..n-1: each consecutive pair must be in edges and each vertex
// must appear at least once. An empty order is valid only for n == 0.
//
// Complexity: O(len(order) + len(edges)) time and space.
func ValidateWalk(order []int, n int, edges []core.Edge) error {
	if n < 0 {
		return ErrDimensionMismatch
	}
	adj := make(map[core.Edge]struct{}, len(edges))
	var e core.Edge
	for _, e = range edges {
		if e.U > e.V {
			e.U, e.V = e.V, e.U
		}
		adj[e] = struct{}{}
	}

	seen := make([]bool, n)
	var (
		i, v int
		step core.Edge
	)
	for i, v = range order {
		if v < 0 || v >= n {
			return fmt.Errorf("tsp: entry %d is vertex %d of %d: %w", i, v, n, ErrDimensionMismatch)
		}
		seen[v] = true
		if i == 0 {
			continue
		}
		step = core.Edge{U: min(order[i-1], v), V: max(order[i-1], v)}
		if _, ok := adj[step]; !ok {
			return fmt.Errorf("tsp: step %d: %d -> %d: %w", i, order[i-1], v, ErrNotAWalk)
		}
	}
	for v = 0; v < n; v++ {
		if !seen[v] {
			return fmt.Errorf("tsp: vertex %d: %w", v, ErrMissingPoint)
		}
	}

	return nil
}

// PathLength returns the summed Euclidean length of consecutive steps.
//
// Complexity: O(n) time.
func PathLength(tour []point.Point) float64 {
	var (
		sum float64
		i   int
	)
	for i = 1; i < len(tour); i++ {
		sum += tour[i-1].DistanceTo(tour[i])
	}

	return sum
}

// CopyTour returns an independent copy of the input tour slice.
//
// Complexity: O(n) time, O(n) space.
func CopyTour(tour []int) []int {
	if tour == nil {
		return nil
	}
	out := make([]int, len(tour))
	copy(out, tour)

	return out
}

// DebugString returns a compact printable representation, e.g. "[0 1 0 2 0]".
func DebugString(tour []int) string {
	var sb strings.Builder
	sb.WriteByte('[')
	var i int
	for i = range tour {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(tour[i]))
	}
	sb.WriteByte(']')

	return sb.String()
}
