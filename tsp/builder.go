package tsp

import (
	"fmt"
	"time"

	"go.opentelemetry.io/otel/codes"

	"github.com/katalvlaran/etchpath/core"
	"github.com/katalvlaran/etchpath/dfs"
	"github.com/katalvlaran/etchpath/kdtree"
	"github.com/katalvlaran/etchpath/point"
)

// SpanningTreeWalk computes a continuous tour through points.
// See the package documentation for the pipeline and guarantees.
//
// Complexity: O(n log n) expected for the index, graph and walk; the merge
// loop adds O(c·log n) per merge for c initial components.
func SpanningTreeWalk(points []point.Point, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&o)
	}

	ctx, span := startWalkSpan(o.Ctx, len(points))
	defer span.End()
	began := time.Now()

	res, err := spanningTreeWalk(points, o)
	recordWalkMetrics(ctx, time.Since(began), res, err)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		return nil, err
	}
	setWalkSpanResult(span, res.Stats)
	o.Logger.Debug("tour built",
		"points", res.Stats.Points,
		"nearest_edges", res.Stats.NearestEdges,
		"initial_components", res.Stats.InitialComponents,
		"bridge_edges", res.Stats.BridgeEdges,
		"tour_entries", res.Stats.TourEntries,
		"path_length", res.Stats.PathLength,
		"duration", time.Since(began),
	)

	return res, nil
}

// spanningTreeWalk is the uninstrumented pipeline.
func spanningTreeWalk(points []point.Point, o Options) (*Result, error) {
	// 1) Normalise input.
	pts, dims, stats, err := distinctPoints(points)
	if err != nil {
		return nil, err
	}
	res := &Result{Points: pts, Stats: stats}
	if o.Start.IsValid() && dims > 0 && o.Start.Dim() != dims {
		return nil, fmt.Errorf("tsp: start %v for %d-d points: %w", o.Start, dims, ErrDimensionMismatch)
	}

	// 2) Degenerate sizes need no graph.
	switch len(pts) {
	case 0:
		res.Tour, res.Order = []point.Point{}, []int{}

		return res, nil
	case 1:
		res.Tour, res.Order = []point.Point{pts[0]}, []int{0}
		res.Stats.TourEntries = 1

		return res, nil
	}

	// 3) Index, nearest-neighbour graph and components.
	tree, err := kdtree.Build(dims, pts)
	if err != nil {
		return nil, fmt.Errorf("tsp: index points: %w", err)
	}
	g, err := nearestNeighborGraph(tree, pts)
	if err != nil {
		return nil, err
	}
	res.Stats.NearestEdges = g.EdgeCount()

	// 4) Repair into one connected structure.
	m, err := newMerger(g, pts, dims, o)
	if err != nil {
		return nil, err
	}
	res.Stats.InitialComponents = len(m.comps)
	if err = m.run(); err != nil {
		return nil, err
	}
	res.Stats.BridgeEdges = m.bridges
	res.Stats.CentroidCollisions = m.collisions

	// 5) Doubling walk from the chosen start.
	start := startHandle(tree, o.Start)
	walk, err := dfs.Walk(g, start, dfs.WithContext(o.Ctx))
	if err != nil {
		return nil, fmt.Errorf("tsp: walk: %w", err)
	}
	if len(walk.Order) != len(pts) {
		return nil, fmt.Errorf("tsp: walk reached %d of %d points: %w", len(walk.Order), len(pts), ErrDisconnected)
	}

	// 6) Materialise.
	res.Order = walk.Sequence
	res.Tour = make([]point.Point, len(walk.Sequence))
	var (
		i int
		h int
	)
	for i, h = range walk.Sequence {
		res.Tour[i] = pts[h]
	}
	res.Edges = g.Edges()
	res.Stats.TourEntries = len(res.Tour)
	res.Stats.PathLength = PathLength(res.Tour)

	return res, nil
}

// distinctPoints drops invalid points and repeats, keeping first
// occurrences in order, and checks that all share one dimensionality.
func distinctPoints(points []point.Point) ([]point.Point, int, Stats, error) {
	stats := Stats{InputPoints: len(points)}
	out := make([]point.Point, 0, len(points))
	seen := make(map[string]struct{}, len(points))
	dims := 0
	var (
		i int
		p point.Point
	)
	for i, p = range points {
		if !p.IsValid() {
			stats.InvalidPoints++
			continue
		}
		if dims == 0 {
			dims = p.Dim()
		} else if p.Dim() != dims {
			return nil, 0, stats, fmt.Errorf("tsp: point %d %v is %d-d, want %d-d: %w", i, p, p.Dim(), dims, ErrDimensionMismatch)
		}
		key := p.Key()
		if _, dup := seen[key]; dup {
			stats.DuplicatePoints++
			continue
		}
		seen[key] = struct{}{}
		out = append(out, p)
	}
	stats.Points = len(out)

	return out, dims, stats, nil
}

// startHandle resolves the requested start to the nearest input point,
// or the first distinct point when no start was requested.
func startHandle(tree *kdtree.Tree[int], start point.Point) int {
	if !start.IsValid() {
		return 0
	}
	if _, h, ok := tree.Nearest(start); ok {
		return h
	}

	return 0
}

// nearestNeighborGraph links every point to its nearest other point.
func nearestNeighborGraph(tree *kdtree.Tree[int], pts []point.Point) (*core.Graph, error) {
	g, err := core.NewGraph(len(pts))
	if err != nil {
		return nil, err
	}
	var (
		i  int
		p  point.Point
		j  int
		ok bool
	)
	for i, p = range pts {
		self := i
		_, j, ok = tree.NearestFunc(p, func(_ point.Point, h int) bool { return h != self })
		if !ok {
			return nil, fmt.Errorf("tsp: no neighbour for point %d %v: %w", i, p, ErrEmptyComponent)
		}
		if _, err = g.AddEdge(i, j); err != nil {
			return nil, fmt.Errorf("tsp: nearest edge %d-%d: %w", i, j, err)
		}
	}

	return g, nil
}
