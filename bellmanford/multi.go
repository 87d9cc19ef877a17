// SPDX-License-Identifier: MIT

package bellmanford

import (
	"fmt"

	"github.com/katalvlaran/lvlath-sparse/graph"
	"github.com/katalvlaran/lvlath-sparse/sparse"
)

// Lengths runs SingleSourceLength from every node in sources at once, as the
// rows of one matrix. Row k belongs to sources[k]; a nil sources slice means
// every node in id order, which yields the full n x n distance matrix.
//
// With WithExpandOutput and an explicit sources slice the result has one row
// per node instead: row id(sources[k]) holds the distances from sources[k]
// and every other row is empty.
//
// Errors: graph.ErrGraphNil, graph.ErrNodeNotFound, ErrBadCutoff,
// ErrNegativeCycle.
func Lengths[W sparse.Number](g *graph.Graph[W], sources []string, opts ...Option) (*sparse.Matrix[W], error) {
	if g == nil {
		return nil, graph.ErrGraphNil
	}
	o, err := gather(opts)
	if err != nil {
		return nil, err
	}
	ids, err := sourceIDs(g, sources)
	if err != nil {
		return nil, err
	}

	var D *sparse.Matrix[W]
	if w, ok := g.IsoValue(); ok && !g.HasNegativeEdges() {
		if D, err = isoMulti(g, sources, w, o); err != nil {
			return nil, err
		}
	} else {
		if ok && !g.IsDirected() {
			for _, id := range ids {
				if g.OutDegree(id) > 0 {
					key, _ := g.Key(id)
					return nil, fmt.Errorf("%w: undirected negative edge at %q", ErrNegativeCycle, key)
				}
			}
		}
		if D, err = relaxAll(g, sources == nil, ids, o); err != nil {
			return nil, err
		}
	}

	if sources != nil && o.ExpandOutput && len(ids) != g.Order() {
		return sparse.ExpandRows(D, ids, g.Order())
	}
	return D, nil
}

// relaxAll relaxes one row per id. Every node as a source seeds the
// zero-valued diagonal; otherwise row r starts at column ids[r].
func relaxAll[W sparse.Number](g *graph.Graph[W], all bool, ids []int, o Options) (*sparse.Matrix[W], error) {
	var D *sparse.Matrix[W]
	if all {
		zero, err := sparse.VectorFrom(g.Order(), ids, W(0))
		if err != nil {
			return nil, err
		}
		D = sparse.DiagMatrix(zero)
	} else {
		rows := make([]int, len(ids))
		for r := range rows {
			rows[r] = r
		}
		var err error
		if D, err = sparse.FromCOO(len(ids), g.Order(), rows, ids, make([]W, len(ids)), nil); err != nil {
			return nil, err
		}
	}
	cycle, err := relax(D, g.OffDiagonal(), o.Cutoff, o.Logger.WithValues("sources", len(ids)))
	if err != nil {
		return nil, err
	}
	if cycle {
		return nil, fmt.Errorf("%w: reached from %d sources", ErrNegativeCycle, len(ids))
	}
	if g.HasNegativeDiagonal() {
		hit, err := sparse.MxV(D, g.Diagonal().Select(negative[W]), sparse.AnyPair[W]())
		if err != nil {
			return nil, err
		}
		if hit.NVals() > 0 {
			return nil, fmt.Errorf("%w: negative self-loop reached", ErrNegativeCycle)
		}
	}
	return D, nil
}

func sourceIDs[W sparse.Number](g *graph.Graph[W], sources []string) ([]int, error) {
	if sources == nil {
		ids := make([]int, g.Order())
		for i := range ids {
			ids[i] = i
		}
		return ids, nil
	}
	return g.IDs(sources)
}
