package kdtree_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/etchpath/kdtree"
	"github.com/katalvlaran/etchpath/point"
)

// randomPoints returns n distinct points with integer coordinates in [0, span).
// Integer grids produce plenty of split-dimension ties.
func randomPoints(rng *rand.Rand, n, dims, span int) []point.Point {
	seen := make(map[string]bool, n)
	out := make([]point.Point, 0, n)
	for len(out) < n {
		c := make([]float64, dims)
		for d := range c {
			c[d] = float64(rng.Intn(span))
		}
		p := point.New(c...)
		if seen[p.Key()] {
			continue
		}
		seen[p.Key()] = true
		out = append(out, p)
	}

	return out
}

// bruteNearest is the reference answer: minimum distance, ties to the smaller point.
func bruteNearest(pts []point.Point, q point.Point) point.Point {
	best := point.Invalid()
	bestSq := 0.0
	for _, p := range pts {
		d := q.SquaredDistanceTo(p)
		if !best.IsValid() || d < bestSq || (d == bestSq && p.Less(best)) {
			best, bestSq = p, d
		}
	}

	return best
}

type TreeSuite struct {
	suite.Suite
	tree *kdtree.Tree[int]
}

func (s *TreeSuite) SetupTest() {
	t, err := kdtree.New[int](2)
	s.Require().NoError(err)
	s.tree = t
}

func (s *TreeSuite) TestEmptyTree() {
	require := require.New(s.T())
	_, _, ok := s.tree.Nearest(point.New(1, 1))
	require.False(ok, "empty tree has no nearest point")
	require.False(s.tree.Contains(point.New(1, 1)))
	require.False(s.tree.Remove(point.New(1, 1)))
	require.Equal(0, s.tree.Len())
	require.Equal(0, s.tree.Height())
	require.NoError(s.tree.Validate())
}

func (s *TreeSuite) TestInvalidPointsAreNoOps() {
	require := require.New(s.T())
	ok, err := s.tree.Insert(point.Invalid(), 1)
	require.NoError(err)
	require.False(ok)
	require.False(s.tree.Remove(point.Invalid()))
	require.False(s.tree.Contains(point.Invalid()))
	_, _, found := s.tree.Nearest(point.Invalid())
	require.False(found)
	require.Equal(0, s.tree.Len())
}

func (s *TreeSuite) TestDimensionMismatch() {
	require := require.New(s.T())
	_, err := s.tree.Insert(point.New(1, 2, 3), 0)
	require.ErrorIs(err, kdtree.ErrDimensionMismatch)
	require.False(s.tree.Contains(point.New(1, 2, 3)))

	_, err = kdtree.New[int](0)
	require.ErrorIs(err, kdtree.ErrBadDimension)
}

func (s *TreeSuite) TestIdempotentInsert() {
	require := require.New(s.T())
	p := point.New(3, 4)
	ok, err := s.tree.Insert(p, 7)
	require.NoError(err)
	require.True(ok)

	ok, err = s.tree.Insert(point.New(3, 4), 9)
	require.NoError(err)
	require.False(ok, "duplicate insert is a no-op")
	require.Equal(1, s.tree.Len())

	v, found := s.tree.Get(p)
	require.True(found)
	require.Equal(7, v, "existing payload is kept")
}

func (s *TreeSuite) TestSplitTiesAreDecidable() {
	require := require.New(s.T())
	// Same x everywhere: every depth-0 comparison is a tie.
	for y := 0; y < 6; y++ {
		_, err := s.tree.Insert(point.New(1, float64(5-y)), y)
		require.NoError(err)
	}
	require.Equal(6, s.tree.Len())
	for y := 0; y < 6; y++ {
		require.True(s.tree.Contains(point.New(1, float64(y))))
	}
	require.NoError(s.tree.Validate())
}

func (s *TreeSuite) TestRemoveRoot() {
	require := require.New(s.T())
	pts := []point.Point{point.New(5, 5), point.New(2, 8), point.New(8, 1), point.New(1, 1), point.New(9, 9)}
	for i, p := range pts {
		_, err := s.tree.Insert(p, i)
		require.NoError(err)
	}

	require.True(s.tree.Remove(point.New(5, 5)))
	require.False(s.tree.Contains(point.New(5, 5)))
	require.Equal(4, s.tree.Len())
	for _, p := range pts[1:] {
		require.True(s.tree.Contains(p), "descendant %v lost", p)
		v, _ := s.tree.Get(p)
		require.Equal(indexOf(pts, p), v, "payload travels with the point")
	}
	require.NoError(s.tree.Validate())
	require.False(s.tree.Remove(point.New(5, 5)), "second remove is a no-op")
}

func (s *TreeSuite) TestRemoveAllThenReuse() {
	require := require.New(s.T())
	pts := randomPoints(rand.New(rand.NewSource(3)), 40, 2, 20)
	for i, p := range pts {
		_, err := s.tree.Insert(p, i)
		require.NoError(err)
	}
	for _, p := range pts {
		require.True(s.tree.Remove(p))
		require.NoError(s.tree.Validate())
	}
	require.Equal(0, s.tree.Len())

	// freed handles are recycled
	for i, p := range pts[:10] {
		_, err := s.tree.Insert(p, i)
		require.NoError(err)
	}
	require.Equal(10, s.tree.Len())
	require.NoError(s.tree.Validate())

	s.tree.Clear()
	require.Equal(0, s.tree.Len())
	require.False(s.tree.Contains(pts[0]))
}

func (s *TreeSuite) TestNearestTieBreak() {
	require := require.New(s.T())
	// (0,1) and (1,0) are both at distance 1 from the origin.
	for i, p := range []point.Point{point.New(1, 0), point.New(0, 1), point.New(3, 3)} {
		_, err := s.tree.Insert(p, i)
		require.NoError(err)
	}
	got, v, ok := s.tree.Nearest(point.New(0, 0))
	require.True(ok)
	require.True(got.Equal(point.New(0, 1)), "got %v", got)
	require.Equal(1, v)
}

func (s *TreeSuite) TestNearestFuncExcludesSelf() {
	require := require.New(s.T())
	pts := []point.Point{point.New(0, 0), point.New(0, 2), point.New(5, 5)}
	for i, p := range pts {
		_, err := s.tree.Insert(p, i)
		require.NoError(err)
	}
	got, v, ok := s.tree.NearestFunc(pts[0], func(p point.Point, _ int) bool { return !p.Equal(pts[0]) })
	require.True(ok)
	require.True(got.Equal(pts[1]))
	require.Equal(1, v)

	_, _, ok = s.tree.NearestFunc(pts[0], func(point.Point, int) bool { return false })
	require.False(ok, "nothing accepted")
}

func TestTreeSuite(t *testing.T) {
	suite.Run(t, new(TreeSuite))
}

func indexOf(pts []point.Point, p point.Point) int {
	for i, q := range pts {
		if q.Equal(p) {
			return i
		}
	}

	return -1
}

// TestContains_MatchesSet checks contains(p) iff p was inserted.
func TestContains_MatchesSet(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	pts := randomPoints(rng, 300, 2, 40)
	tree, err := kdtree.New[int](2)
	require.NoError(t, err)
	in := make(map[string]bool)
	for i, p := range pts[:200] {
		_, err = tree.Insert(p, i)
		require.NoError(t, err)
		in[p.Key()] = true
	}
	for _, p := range pts {
		require.Equal(t, in[p.Key()], tree.Contains(p), "point %v", p)
	}
}

// TestNearest_BruteForce compares against a linear scan across sizes and dimensions.
func TestNearest_BruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for _, dims := range []int{1, 2, 3, 5} {
		for _, n := range []int{1, 2, 7, 64, 300} {
			pts := randomPoints(rng, n, dims, 50+n)
			incremental, err := kdtree.New[int](dims)
			require.NoError(t, err)
			for i, p := range pts {
				_, err = incremental.Insert(p, i)
				require.NoError(t, err)
			}
			bulk, err := kdtree.Build(dims, pts)
			require.NoError(t, err)

			for q := 0; q < 50; q++ {
				query := randomPoints(rng, 1, dims, 60+n)[0]
				want := bruteNearest(pts, query)

				got, v, ok := incremental.Nearest(query)
				require.True(t, ok)
				require.True(t, want.Equal(got), "dims=%d n=%d q=%v want %v got %v", dims, n, query, want, got)
				require.True(t, pts[v].Equal(got))

				got, _, ok = bulk.Nearest(query)
				require.True(t, ok)
				require.True(t, want.Equal(got), "bulk dims=%d n=%d q=%v", dims, n, query)
			}
		}
	}
}

// TestRemove_Soundness removes a random subset and checks the remainder.
func TestRemove_Soundness(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, dims := range []int{2, 3} {
		pts := randomPoints(rng, 250, dims, 30)
		tree, err := kdtree.Build(dims, pts)
		require.NoError(t, err)

		removed := make(map[string]bool)
		for _, i := range rng.Perm(len(pts))[:120] {
			require.True(t, tree.Remove(pts[i]))
			removed[pts[i].Key()] = true
		}
		require.NoError(t, tree.Validate())
		require.Equal(t, len(pts)-len(removed), tree.Len())

		var remaining []point.Point
		for _, p := range pts {
			require.Equal(t, !removed[p.Key()], tree.Contains(p))
			if !removed[p.Key()] {
				remaining = append(remaining, p)
			}
		}
		for q := 0; q < 40; q++ {
			query := randomPoints(rng, 1, dims, 30)[0]
			got, _, ok := tree.Nearest(query)
			require.True(t, ok)
			require.True(t, bruteNearest(remaining, query).Equal(got))
		}
	}
}

func TestBuild(t *testing.T) {
	pts := []point.Point{
		point.New(4, 4), point.New(1, 1), point.Invalid(), point.New(4, 4), point.New(9, 0),
	}
	tree, err := kdtree.Build(2, pts)
	require.NoError(t, err)
	require.Equal(t, 3, tree.Len())
	v, ok := tree.Get(point.New(4, 4))
	require.True(t, ok)
	require.Equal(t, 0, v, "duplicates keep the first index")
	require.NoError(t, tree.Validate())
	require.Equal(t, []point.Point{point.New(1, 1), point.New(4, 4), point.New(9, 0)}, tree.Points())

	_, err = kdtree.Build(2, []point.Point{point.New(1)})
	require.ErrorIs(t, err, kdtree.ErrDimensionMismatch)
}

func TestBuild_Balanced(t *testing.T) {
	pts := make([]point.Point, 0, 1023)
	for i := 0; i < 1023; i++ {
		pts = append(pts, point.New(float64(i), float64(i%17)))
	}
	tree, err := kdtree.Build(2, pts)
	require.NoError(t, err)
	require.Equal(t, 10, tree.Height())
	require.NoError(t, tree.Validate())
}

func TestBuildWith(t *testing.T) {
	pts := []point.Point{point.New(2, 2), point.New(0, 0), point.New(2, 2)}
	tree, err := kdtree.BuildWith(2, pts, []string{"a", "b", "c"})
	require.NoError(t, err)
	require.Equal(t, 2, tree.Len())
	v, ok := tree.Get(point.New(2, 2))
	require.True(t, ok)
	require.Equal(t, "a", v)

	_, err = kdtree.BuildWith(2, pts, []string{"a"})
	require.ErrorIs(t, err, kdtree.ErrLengthMismatch)
}
