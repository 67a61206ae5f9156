package tsp

import (
	"fmt"

	"github.com/katalvlaran/etchpath/core"
	"github.com/katalvlaran/etchpath/kdtree"
	"github.com/katalvlaran/etchpath/point"
)

// component is one connected piece of the graph during merging.
type component struct {
	id         int
	members    []int             // point handles
	index      *kdtree.Tree[int] // member points -> handles
	centroid   point.Point       // mean of member points
	registered bool              // centroid present in merger.centroids
}

// merger carries the merge-loop state for one tour construction.
type merger struct {
	g     *core.Graph
	pts   []point.Point
	dims  int
	opts  Options
	comps []*component // by id; nil once folded into another

	// centroids maps each registered centroid to its component id.
	centroids *kdtree.Tree[int]

	alive      int
	bridges    int
	collisions int
}

// newMerger partitions g into components and indexes their centroids.
func newMerger(g *core.Graph, pts []point.Point, dims int, o Options) (*merger, error) {
	labels, count := g.ComponentLabels()
	m := &merger{g: g, pts: pts, dims: dims, opts: o, comps: make([]*component, count), alive: count}

	// 1) Group members by label.
	var (
		h, c int
		err  error
	)
	for c = 0; c < count; c++ {
		m.comps[c] = &component{id: c}
	}
	for h, c = range labels {
		m.comps[c].members = append(m.comps[c].members, h)
	}
	if count <= 1 {
		return m, nil
	}

	// 2) Per-component point index and centroid.
	centers := make([]point.Point, count)
	ids := make([]int, count)
	var comp *component
	for c, comp = range m.comps {
		members := make([]point.Point, len(comp.members))
		for h = range comp.members {
			members[h] = pts[comp.members[h]]
		}
		if comp.index, err = kdtree.BuildWith(dims, members, comp.members); err != nil {
			return nil, fmt.Errorf("tsp: index component %d: %w", c, err)
		}
		comp.centroid = point.Centroid(members)
		centers[c], ids[c] = comp.centroid, c
	}

	// 3) Centroid index; coincident centroids keep the first component.
	if m.centroids, err = kdtree.BuildWith(dims, centers, ids); err != nil {
		return nil, fmt.Errorf("tsp: index centroids: %w", err)
	}
	for c, comp = range m.comps {
		if id, ok := m.centroids.Get(comp.centroid); ok && id == c {
			comp.registered = true
			continue
		}
		m.collision(comp)
	}

	return m, nil
}

// run folds components together until one remains.
func (m *merger) run() error {
	if m.alive <= 1 {
		return nil
	}
	m.opts.Logger.Info("merging components", "components", m.alive, "points", len(m.pts))

	var (
		a, b   *component
		id     int
		err    error
		merges int
	)
	// Components are taken as A in id order; a B that survives a merge is
	// picked up again later in the same pass or the next one.
	for m.alive > 1 {
		for id = 0; id < len(m.comps) && m.alive > 1; id++ {
			if a = m.comps[id]; a == nil {
				continue
			}
			if b, err = m.nearestComponent(a); err != nil {
				return err
			}
			if err = m.merge(a, b); err != nil {
				return err
			}
			merges++
			if m.opts.ProgressEvery > 0 && merges%m.opts.ProgressEvery == 0 {
				m.opts.Logger.Info("components remaining", "components", m.alive)
			}
		}
	}

	return nil
}

// nearestComponent returns the live component, other than a, whose centroid
// is nearest a's centroid. It falls back to a linear scan when the index
// holds no other candidate (possible after centroid collisions).
func (m *merger) nearestComponent(a *component) (*component, error) {
	_, id, ok := m.centroids.NearestFunc(a.centroid, func(_ point.Point, id int) bool { return id != a.id })
	if ok && m.comps[id] != nil {
		return m.comps[id], nil
	}

	var (
		best   *component
		bestSq float64
		d      float64
		c      *component
	)
	for _, c = range m.comps {
		if c == nil || c == a {
			continue
		}
		d = a.centroid.SquaredDistanceTo(c.centroid)
		if best == nil || d < bestSq || (d == bestSq && c.centroid.Less(best.centroid)) {
			best, bestSq = c, d
		}
	}
	if best == nil {
		return nil, fmt.Errorf("tsp: no component to merge %d into: %w", a.id, ErrEmptyComponent)
	}

	return best, nil
}

// merge bridges a to b with one edge and folds a into b.
func (m *merger) merge(a, b *component) error {
	// 1) Bridge points: B's point nearest A's centroid, then A's point
	// nearest that.
	bp, bh, ok := b.index.Nearest(a.centroid)
	if !ok {
		return fmt.Errorf("tsp: component %d has no points: %w", b.id, ErrEmptyComponent)
	}
	_, ah, ok := a.index.Nearest(bp)
	if !ok {
		return fmt.Errorf("tsp: component %d has no points: %w", a.id, ErrEmptyComponent)
	}
	added, err := m.g.AddEdge(ah, bh)
	if err != nil {
		return fmt.Errorf("tsp: bridge %d-%d: %w", ah, bh, err)
	}
	if added {
		m.bridges++
	}

	// 2) Size-weighted centroid of the union.
	merged := point.WeightedMean(a.centroid, len(a.members), b.centroid, len(b.members))

	// 3) Fold members, moving the smaller set into the larger storage.
	if len(a.members) > len(b.members) {
		a.members, b.members = b.members, a.members
		a.index, b.index = b.index, a.index
	}
	var h int
	for _, h = range a.members {
		b.members = append(b.members, h)
		if _, err = b.index.Insert(m.pts[h], h); err != nil {
			return fmt.Errorf("tsp: fold point %d: %w", h, err)
		}
	}

	// 4) Replace both centroids by the merged one.
	m.unregister(a)
	m.unregister(b)
	b.centroid = merged
	if ok, err = m.centroids.Insert(merged, b.id); err != nil {
		return fmt.Errorf("tsp: register centroid of %d: %w", b.id, err)
	}
	b.registered = ok
	if !ok {
		m.collision(b)
	}

	m.comps[a.id] = nil
	m.alive--

	return nil
}

// unregister removes c's centroid entry if c owns it.
func (m *merger) unregister(c *component) {
	if !c.registered {
		return
	}
	if id, ok := m.centroids.Get(c.centroid); ok && id == c.id {
		m.centroids.Remove(c.centroid)
	}
	c.registered = false
}

// collision records that c's centroid coincides with another component's.
func (m *merger) collision(c *component) {
	m.collisions++
	m.opts.Logger.Warn("centroid collision, component not indexed",
		"component", c.id,
		"centroid", c.centroid.String(),
		"size", len(c.members),
	)
}
