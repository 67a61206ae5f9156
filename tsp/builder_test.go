package tsp_test

import (
	"bytes"
	"context"
	"log/slog"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/etchpath/core"
	"github.com/katalvlaran/etchpath/point"
	"github.com/katalvlaran/etchpath/tsp"
)

// pts2 builds 2-d points from coordinate pairs.
func pts2(xy ...float64) []point.Point {
	out := make([]point.Point, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		out = append(out, point.New(xy[i], xy[i+1]))
	}

	return out
}

// clustered returns n random points spread over k well separated clusters,
// which guarantees a fragmented nearest-neighbour graph.
func clustered(rng *rand.Rand, n, k int) []point.Point {
	out := make([]point.Point, 0, n)
	for i := 0; i < n; i++ {
		c := i % k
		cx, cy := float64(c%5)*100, float64(c/5)*100
		out = append(out, point.New(cx+float64(rng.Intn(20)), cy+float64(rng.Intn(20))))
	}

	return out
}

// requireContinuous checks the tour covers every distinct point and only
// moves along edges of the returned structure.
func requireContinuous(t *testing.T, res *tsp.Result) {
	t.Helper()
	require.NoError(t, tsp.ValidateWalk(res.Order, len(res.Points), res.Edges))
	require.Len(t, res.Tour, len(res.Order))
	for i, h := range res.Order {
		require.True(t, res.Points[h].Equal(res.Tour[i]))
	}
	g, err := core.NewGraph(len(res.Points))
	require.NoError(t, err)
	for _, e := range res.Edges {
		_, err = g.AddEdge(e.U, e.V)
		require.NoError(t, err)
	}
	require.True(t, g.IsConnected(), "final structure must be one component")
}

func TestSpanningTreeWalk_Empty(t *testing.T) {
	res, err := tsp.SpanningTreeWalk(nil)
	require.NoError(t, err)
	assert.Empty(t, res.Tour)
	assert.NotNil(t, res.Tour)

	res, err = tsp.SpanningTreeWalk([]point.Point{point.Invalid(), {}})
	require.NoError(t, err)
	assert.Empty(t, res.Tour)
	assert.Equal(t, 2, res.Stats.InvalidPoints)
}

func TestSpanningTreeWalk_SinglePoint(t *testing.T) {
	p := point.New(3, 7)
	res, err := tsp.SpanningTreeWalk([]point.Point{p, point.New(3, 7)}, tsp.WithStart(point.New(100, 100)))
	require.NoError(t, err)
	require.Len(t, res.Tour, 1)
	assert.True(t, res.Tour[0].Equal(p))
	assert.Equal(t, []int{0}, res.Order)
	assert.Empty(t, res.Edges, "no graph work for one point")
	assert.Equal(t, 0, res.Stats.NearestEdges)
	assert.Equal(t, 0, res.Stats.BridgeEdges)
	assert.Equal(t, 1, res.Stats.DuplicatePoints)
}

func TestSpanningTreeWalk_FourPointScenario(t *testing.T) {
	in := pts2(0, 0, 0, 1, 5, 5, 5, 6)
	res, err := tsp.SpanningTreeWalk(in)
	require.NoError(t, err)

	assert.Equal(t, 2, res.Stats.NearestEdges, "two disjoint nearest pairs")
	assert.Equal(t, 2, res.Stats.InitialComponents)
	assert.Equal(t, 1, res.Stats.BridgeEdges, "exactly one bridge")
	assert.Equal(t, []core.Edge{{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 3}}, res.Edges,
		"bridge joins (0,1) and (5,5), the closest endpoints")
	assert.Equal(t, []int{0, 1, 2, 3, 2, 1, 0}, res.Order)
	requireContinuous(t, res)

	longest := 0.0
	for i := 1; i < len(res.Tour); i++ {
		longest = max(longest, res.Tour[i-1].DistanceTo(res.Tour[i]))
	}
	assert.InDelta(t, point.New(0, 1).DistanceTo(point.New(5, 5)), longest, 1e-12)
}

func TestSpanningTreeWalk_RandomInputsAreContinuous(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	for trial := 0; trial < 25; trial++ {
		n := 2 + rng.Intn(400)
		in := clustered(rng, n, 1+rng.Intn(12))
		res, err := tsp.SpanningTreeWalk(in)
		require.NoError(t, err)
		requireContinuous(t, res)

		distinct := res.Stats.Points
		require.Len(t, res.Tour, 2*distinct-1)
		if distinct < 2 {
			continue
		}
		require.Len(t, res.Edges, distinct-1, "the final structure is a spanning tree")
		require.Equal(t, distinct-1, res.Stats.NearestEdges+res.Stats.BridgeEdges)
		require.Equal(t, res.Stats.InitialComponents-1, res.Stats.BridgeEdges, "one bridge per merge")
	}
}

func TestSpanningTreeWalk_ThreeDimensions(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	in := make([]point.Point, 0, 200)
	for i := 0; i < 200; i++ {
		in = append(in, point.New(float64(rng.Intn(50)), float64(rng.Intn(50)), float64(rng.Intn(50))))
	}
	res, err := tsp.SpanningTreeWalk(in)
	require.NoError(t, err)
	requireContinuous(t, res)
}

func TestSpanningTreeWalk_Deterministic(t *testing.T) {
	in := clustered(rand.New(rand.NewSource(8)), 300, 7)
	a, err := tsp.SpanningTreeWalk(in)
	require.NoError(t, err)
	b, err := tsp.SpanningTreeWalk(in)
	require.NoError(t, err)
	assert.Equal(t, a.Order, b.Order)
	assert.Equal(t, a.Edges, b.Edges)
}

func TestSpanningTreeWalk_StartSnapsToNearest(t *testing.T) {
	in := pts2(0, 0, 0, 1, 5, 5, 5, 6)
	res, err := tsp.SpanningTreeWalk(in, tsp.WithStart(point.New(6, 7)))
	require.NoError(t, err)
	assert.True(t, res.Tour[0].Equal(point.New(5, 6)))
	assert.True(t, res.Tour[len(res.Tour)-1].Equal(point.New(5, 6)))
	requireContinuous(t, res)
}

func TestSpanningTreeWalk_DimensionMismatch(t *testing.T) {
	_, err := tsp.SpanningTreeWalk([]point.Point{point.New(1, 2), point.New(1, 2, 3)})
	assert.ErrorIs(t, err, tsp.ErrDimensionMismatch)

	_, err = tsp.SpanningTreeWalk(pts2(0, 0, 1, 1), tsp.WithStart(point.New(1)))
	assert.ErrorIs(t, err, tsp.ErrDimensionMismatch)
}

func TestSpanningTreeWalk_InputUntouchedAndStats(t *testing.T) {
	in := pts2(2, 2, 1, 1, 2, 2, 9, 9)
	in = append(in, point.Invalid())
	backup := append([]point.Point(nil), in...)

	res, err := tsp.SpanningTreeWalk(in)
	require.NoError(t, err)
	assert.Equal(t, backup, in)
	assert.Equal(t, tsp.Stats{
		InputPoints:       5,
		InvalidPoints:     1,
		DuplicatePoints:   1,
		Points:            3,
		NearestEdges:      2,
		InitialComponents: 1,
		TourEntries:       5,
		PathLength:        res.Stats.PathLength,
	}, res.Stats)
	assert.InDelta(t, tsp.PathLength(res.Tour), res.Stats.PathLength, 1e-12)
	assert.Equal(t, []point.Point{point.New(2, 2), point.New(1, 1), point.New(9, 9)}, res.Points)
}

func TestSpanningTreeWalk_LogsProgress(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	in := clustered(rand.New(rand.NewSource(1)), 400, 25)

	res, err := tsp.SpanningTreeWalk(in,
		tsp.WithLogger(logger),
		tsp.WithProgressEvery(5),
		tsp.WithContext(context.Background()),
	)
	require.NoError(t, err)
	require.Greater(t, res.Stats.InitialComponents, 5)
	assert.Contains(t, buf.String(), "merging components")
	assert.Contains(t, buf.String(), "components remaining")
	assert.Contains(t, buf.String(), "tour built")
}

func TestSpanningTreeWalk_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := tsp.SpanningTreeWalk(pts2(0, 0, 0, 1, 5, 5, 5, 6), tsp.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}
