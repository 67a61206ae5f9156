package tsp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/etchpath/core"
	"github.com/katalvlaran/etchpath/point"
	"github.com/katalvlaran/etchpath/tsp"
)

func TestValidateWalk(t *testing.T) {
	edges := []core.Edge{{U: 0, V: 1}, {U: 2, V: 1}}

	assert.NoError(t, tsp.ValidateWalk([]int{0, 1, 2, 1, 0}, 3, edges))
	assert.NoError(t, tsp.ValidateWalk(nil, 0, nil))
	assert.NoError(t, tsp.ValidateWalk([]int{0}, 1, nil))

	assert.ErrorIs(t, tsp.ValidateWalk([]int{0, 2}, 3, edges), tsp.ErrNotAWalk)
	assert.ErrorIs(t, tsp.ValidateWalk([]int{0, 1}, 3, edges), tsp.ErrMissingPoint)
	assert.ErrorIs(t, tsp.ValidateWalk([]int{0, 5}, 3, edges), tsp.ErrDimensionMismatch)
	assert.ErrorIs(t, tsp.ValidateWalk(nil, 2, edges), tsp.ErrMissingPoint)
}

func TestPathLength(t *testing.T) {
	tour := []point.Point{point.New(0, 0), point.New(3, 4), point.New(3, 0)}
	assert.InDelta(t, 9.0, tsp.PathLength(tour), 1e-12)
	assert.Equal(t, 0.0, tsp.PathLength(nil))
	assert.Equal(t, 0.0, tsp.PathLength(tour[:1]))
}

func TestCopyTourAndDebugString(t *testing.T) {
	src := []int{0, 1, 0}
	cp := tsp.CopyTour(src)
	cp[1] = 9
	assert.Equal(t, []int{0, 1, 0}, src)
	assert.Nil(t, tsp.CopyTour(nil))

	assert.Equal(t, "[0 1 0]", tsp.DebugString(src))
	assert.Equal(t, "[]", tsp.DebugString(nil))
}
