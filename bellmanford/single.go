// SPDX-License-Identifier: MIT

package bellmanford

import (
	"fmt"

	"github.com/katalvlaran/lvlath-sparse/graph"
	"github.com/katalvlaran/lvlath-sparse/sparse"
)

// SingleSourceLength returns the shortest path length from source to every
// node reachable within the cutoff. The source maps to 0; unreached nodes
// have no entry.
//
// Errors: graph.ErrGraphNil, graph.ErrNodeNotFound, ErrBadCutoff,
// ErrNegativeCycle.
func SingleSourceLength[W sparse.Number](g *graph.Graph[W], source string, opts ...Option) (*sparse.Vector[W], error) {
	if g == nil {
		return nil, graph.ErrGraphNil
	}
	o, err := gather(opts)
	if err != nil {
		return nil, err
	}
	src, err := g.ID(source)
	if err != nil {
		return nil, err
	}

	if w, ok := g.IsoValue(); ok {
		if !g.HasNegativeEdges() {
			return isoSingle(g, source, w, o)
		}
		// every edge is negative: a loop at source, or any undirected edge
		// walked back and forth, is a cycle
		if g.HasSelfLoop(src) || (!g.IsDirected() && g.OutDegree(src) > 0) {
			return nil, fmt.Errorf("%w: from %q", ErrNegativeCycle, source)
		}
	}

	d := sparse.NewVector[W](g.Order())
	_ = d.SetElement(src, 0)
	cycle, err := relax(d, g.OffDiagonal(), o.Cutoff, o.Logger.WithValues("source", source))
	if err != nil {
		return nil, err
	}
	if !cycle {
		cycle, err = reachesNegativeLoop(g, d)
		if err != nil {
			return nil, err
		}
	}
	if cycle {
		return nil, fmt.Errorf("%w: from %q", ErrNegativeCycle, source)
	}
	return d, nil
}

// reachesNegativeLoop reports whether d has an entry on a node carrying a
// negative self-loop.
func reachesNegativeLoop[W sparse.Number](g *graph.Graph[W], d *sparse.Vector[W]) (bool, error) {
	if !g.HasNegativeDiagonal() {
		return false, nil
	}
	_, hit, err := sparse.Dot(d, g.Diagonal().Select(negative[W]), sparse.AnyPair[W]())
	return hit, err
}
