// SPDX-License-Identifier: MIT

package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/lvlath-sparse/graph"
	"github.com/katalvlaran/lvlath-sparse/sparse"
)

// Dijkstra computes shortest distances from Options.Source to every vertex
// reachable within MaxDistance.
//
// Returns:
//
//   - dist: vertex key -> minimal distance; unreachable vertices are absent.
//   - prev: vertex key -> predecessor on one shortest path, only when
//     WithReturnPath is set (nil otherwise). The source has no entry.
//
// Validation order: options, ErrEmptySource, graph.ErrGraphNil,
// graph.ErrNodeNotFound, ErrNegativeWeight.
func Dijkstra[W sparse.Number](g *graph.Graph[W], opts ...Option) (map[string]W, map[string]string, error) {
	// 1) Build options
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, nil, cfg.err
	}

	// 2) Validate inputs
	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, graph.ErrGraphNil
	}
	src, err := g.ID(cfg.Source)
	if err != nil {
		return nil, nil, err
	}
	if g.HasNegativeEdges() {
		return nil, nil, negativeEdge(g)
	}

	// 3) Search over id space, then translate back to keys
	r := newRunner(g.Adjacency(), cfg, src)
	r.process()

	keys := g.Keys()
	dist := graph.VectorToMap(g, r.dist)
	if !cfg.ReturnPath {
		return dist, nil, nil
	}
	prev := make(map[string]string, len(r.prev))
	for v, u := range r.prev {
		prev[keys[v]] = keys[u]
	}
	return dist, prev, nil
}

// Lengths returns the distances from source; it is Dijkstra without a
// predecessor map.
func Lengths[W sparse.Number](g *graph.Graph[W], source string, opts ...Option) (map[string]W, error) {
	dist, _, err := Dijkstra(g, append(opts, Source(source))...)
	return dist, err
}

// negativeEdge names the first negative edge in id order.
func negativeEdge[W sparse.Number](g *graph.Graph[W]) error {
	err := ErrNegativeWeight
	found := false
	g.Adjacency().Each(func(i, j int, x W) {
		if found || x >= 0 {
			return
		}
		found = true
		from, _ := g.Key(i)
		to, _ := g.Key(j)
		err = fmt.Errorf("%w: edge %s→%s weight=%v", ErrNegativeWeight, from, to, x)
	})
	return err
}

// runner holds the mutable state for a single Dijkstra execution.
type runner[W sparse.Number] struct {
	A       *sparse.Matrix[W] // read-only adjacency
	options Options
	dist    *sparse.Vector[W] // tentative distances; absent means +inf
	prev    map[int]int       // only filled when ReturnPath is set
	settled *sparse.Mask
	pq      nodePQ[W]
}

func newRunner[W sparse.Number](A *sparse.Matrix[W], cfg Options, src int) *runner[W] {
	r := &runner[W]{
		A:       A,
		options: cfg,
		dist:    sparse.NewVector[W](A.NRows()),
		settled: sparse.NewMask(A.NRows()),
	}
	if cfg.ReturnPath {
		r.prev = make(map[int]int)
	}
	_ = r.dist.SetElement(src, 0)
	heap.Push(&r.pq, &nodeItem[W]{id: src, dist: 0})
	return r
}

// process pops the closest unsettled vertex until the heap is empty.
func (r *runner[W]) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem[W])
		if r.settled.Test(item.id) {
			continue // stale entry
		}
		r.settled.Set(item.id)
		r.relax(item.id, item.dist)
	}
}

// relax tries to improve every out-neighbor of the settled vertex u.
func (r *runner[W]) relax(u int, du W) {
	cols, vals := r.A.Row(u)
	for k, v := range cols {
		w := vals[k]
		if float64(w) >= r.options.InfEdgeThreshold || r.settled.Test(v) {
			continue
		}
		nd := du + w
		if float64(nd) > r.options.MaxDistance {
			continue
		}
		if cur, ok := r.dist.Get(v); ok && nd >= cur {
			continue
		}
		_ = r.dist.SetElement(v, nd)
		if r.prev != nil {
			r.prev[v] = u
		}
		heap.Push(&r.pq, &nodeItem[W]{id: v, dist: nd})
	}
}

// nodeItem is a vertex id with a tentative distance.
type nodeItem[W sparse.Number] struct {
	id   int
	dist W
}

// nodePQ is a min-heap of *nodeItem ordered by dist; ties break on id so the
// settle order is deterministic.
type nodePQ[W sparse.Number] []*nodeItem[W]

func (pq nodePQ[W]) Len() int { return len(pq) }

func (pq nodePQ[W]) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].id < pq[j].id
}

func (pq nodePQ[W]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ[W]) Push(x any) { *pq = append(*pq, x.(*nodeItem[W])) }

func (pq *nodePQ[W]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
