// SPDX-License-Identifier: MIT

package bellmanford

import (
	"github.com/katalvlaran/lvlath-sparse/dfs"
	"github.com/katalvlaran/lvlath-sparse/graph"
	"github.com/katalvlaran/lvlath-sparse/sparse"
)

// NegativeEdgeCycle reports whether g contains a negative cycle anywhere.
//
// A negative self-loop answers true and a graph without negative edges
// answers false straight away. Otherwise the relaxation starts from every
// node that touches an edge, so every edge takes part in it; directed graphs
// that are acyclic apart from self-loops skip the relaxation. A valid cutoff
// and WithExpandOutput are ignored; an invalid cutoff is still rejected with
// ErrBadCutoff.
func NegativeEdgeCycle[W sparse.Number](g *graph.Graph[W], opts ...Option) (bool, error) {
	if g == nil {
		return false, graph.ErrGraphNil
	}
	o, err := gather(opts)
	if err != nil {
		return false, err
	}
	if g.HasNegativeDiagonal() {
		return true, nil
	}
	if !g.HasNegativeEdges() {
		return false, nil
	}
	if g.IsDirected() {
		// self-loops are non-negative here, so a DAG below them has no cycle
		acyclic, err := dfs.IsAcyclic(g, dfs.WithIgnoreSelfLoops())
		if err != nil {
			return false, err
		}
		if acyclic {
			o.Logger.V(1).Info("negative cycle check skipped", "reason", "acyclic")
			return false, nil
		}
	}

	d := sparse.NewVector[W](g.Order())
	d.AssignScalar(g.Degrees().Pattern(), 0)
	return relax(d, g.OffDiagonal(), DefaultOptions().Cutoff, o.Logger.WithName("negative-cycle"))
}
