package tsp

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/etchpath/core"
	"github.com/katalvlaran/etchpath/point"
)

// pairsGraph links points 2i and 2i+1 for every i.
func pairsGraph(t *testing.T, n int) *core.Graph {
	g, err := core.NewGraph(n)
	require.NoError(t, err)
	for i := 0; i+1 < n; i += 2 {
		_, err = g.AddEdge(i, i+1)
		require.NoError(t, err)
	}

	return g
}

func TestMerger_CoincidentCentroids(t *testing.T) {
	// two crosses share centroid (0,0); a third pair sits far away
	pts := []point.Point{
		point.New(-1, 0), point.New(1, 0),
		point.New(0, -1), point.New(0, 1),
		point.New(10, 10), point.New(11, 10),
	}
	g := pairsGraph(t, len(pts))
	var buf bytes.Buffer
	o := DefaultOptions()
	o.Logger = slog.New(slog.NewTextHandler(&buf, nil))

	m, err := newMerger(g, pts, 2, o)
	require.NoError(t, err)
	require.Len(t, m.comps, 3)
	require.True(t, m.comps[0].registered)
	require.False(t, m.comps[1].registered, "second coincident centroid is skipped")
	require.Equal(t, 1, m.collisions)
	require.Contains(t, buf.String(), "centroid collision")

	require.NoError(t, m.run())
	require.Equal(t, 1, m.alive)
	require.Equal(t, 2, m.bridges)
	require.True(t, g.IsConnected())
	require.NoError(t, m.centroids.Validate())
}

func TestMerger_LinearFallback(t *testing.T) {
	// the only other component is unindexed, so the index finds nothing
	pts := []point.Point{
		point.New(-1, 0), point.New(1, 0),
		point.New(0, -1), point.New(0, 1),
	}
	g := pairsGraph(t, len(pts))
	m, err := newMerger(g, pts, 2, DefaultOptions())
	require.NoError(t, err)

	b, err := m.nearestComponent(m.comps[0])
	require.NoError(t, err)
	require.Equal(t, 1, b.id)

	require.NoError(t, m.run())
	require.True(t, g.IsConnected())
	require.Equal(t, 1, m.bridges)
}

func TestMerger_CentroidIsSizeWeighted(t *testing.T) {
	pts := []point.Point{
		point.New(0, 0), point.New(0, 1),
		point.New(9, 0), point.New(9, 1),
		point.New(20, 0), point.New(20, 1),
	}
	g := pairsGraph(t, len(pts))
	_, err := g.AddEdge(3, 4) // components {0,1} and {2,3,4,5}
	require.NoError(t, err)

	m, err := newMerger(g, pts, 2, DefaultOptions())
	require.NoError(t, err)
	require.Len(t, m.comps, 2)
	require.NoError(t, m.run())

	survivor := m.comps[1]
	require.NotNil(t, survivor, "B keeps its identity")
	require.Nil(t, m.comps[0])
	require.Len(t, survivor.members, 6)
	require.InDelta(t, 29.0/3.0, survivor.centroid.At(0), 1e-9)
	require.InDelta(t, 0.5, survivor.centroid.At(1), 1e-9)
	require.Equal(t, 6, survivor.index.Len())
	require.True(t, g.HasEdge(0, 2), "(9,0) is nearest centroid A; (0,0) is nearest (9,0)")
}

func TestMerger_EmptyComponentIsFatal(t *testing.T) {
	pts := []point.Point{point.New(0, 0), point.New(0, 1), point.New(5, 5), point.New(5, 6)}
	g := pairsGraph(t, len(pts))
	m, err := newMerger(g, pts, 2, DefaultOptions())
	require.NoError(t, err)

	m.comps[1].index.Clear()
	err = m.run()
	require.ErrorIs(t, err, ErrEmptyComponent)
}
