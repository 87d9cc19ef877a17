// SPDX-License-Identifier: MIT

package bfs

import (
	"github.com/katalvlaran/lvlath-sparse/graph"
	"github.com/katalvlaran/lvlath-sparse/sparse"
)

// Level returns the hop count from source to every node reachable within
// MaxDepth, in the graph's value domain. Unreachable nodes have no entry.
//
// Errors: graph.ErrGraphNil, graph.ErrNodeNotFound, ErrOptionViolation.
func Level[W sparse.Number](g *graph.Graph[W], source string, opts ...Option) (*sparse.Vector[W], error) {
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
	return level(adjacency(g, o), src, o.MaxDepth)
}

// Levels runs Level from every source simultaneously. Row k of the result
// belongs to sources[k]; a nil sources slice means every node, in id order.
func Levels[W sparse.Number](g *graph.Graph[W], sources []string, opts ...Option) (*sparse.Matrix[W], error) {
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
	return levels(adjacency(g, o), ids, o.MaxDepth)
}

// Reachable returns the nodes reachable from source, source included.
func Reachable[W sparse.Number](g *graph.Graph[W], source string, opts ...Option) (*sparse.Mask, error) {
	v, err := Level(g, source, opts...)
	if err != nil {
		return nil, err
	}
	return v.Pattern(), nil
}

func adjacency[W sparse.Number](g *graph.Graph[W], o Options) *sparse.Matrix[W] {
	if o.Transpose {
		return g.Transpose()
	}
	return g.Adjacency()
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

// level is the vector engine: q is the frontier, v the visited levels.
func level[W sparse.Number](A *sparse.Matrix[W], src, maxDepth int) (*sparse.Vector[W], error) {
	n := A.NRows()
	v := sparse.NewVector[W](n)
	q := sparse.NewVector[W](n)
	if err := v.SetElement(src, 0); err != nil {
		return nil, err
	}
	_ = q.SetElement(src, 1)

	pair := sparse.AnyPair[W]()
	for k := 1; maxDepth == NoDepthLimit || k <= maxDepth; k++ {
		var err error
		q, err = sparse.VxM(q, A, pair, sparse.WithMask(v.Pattern()), sparse.WithComplement())
		if err != nil {
			return nil, err
		}
		if q.NVals() == 0 {
			break
		}
		v.AssignScalar(q.Pattern(), W(k))
	}
	return v, nil
}

// levels is the matrix engine: row r of Q and V belongs to ids[r].
func levels[W sparse.Number](A *sparse.Matrix[W], ids []int, maxDepth int) (*sparse.Matrix[W], error) {
	n := A.NRows()
	rows := make([]int, len(ids))
	for r := range rows {
		rows[r] = r
	}
	V, err := sparse.FromCOO(len(ids), n, rows, ids, make([]W, len(ids)), nil)
	if err != nil {
		return nil, err
	}
	Q := V.Dup() // any_pair ignores frontier values

	pair := sparse.AnyPair[W]()
	for k := 1; maxDepth == NoDepthLimit || k <= maxDepth; k++ {
		Q, err = sparse.MxM(Q, A, pair, sparse.WithMask(V.Pattern()), sparse.WithComplement())
		if err != nil {
			return nil, err
		}
		if Q.NVals() == 0 {
			break
		}
		lvl := W(k)
		Q.Apply(func(W) W { return lvl })
		V.Assign(Q, Q.Pattern())
	}
	return V, nil
}
