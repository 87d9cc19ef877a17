// SPDX-License-Identifier: MIT
//
// File: properties.go
// Role: memoised derived properties of the adjacency matrix.
// Concurrency:
//   - compute functions run without holding mu; they may request other
//     properties.
//   - results are stored only if no mutation happened meanwhile.

package graph

import "github.com/katalvlaran/lvlath-sparse/sparse"

// Property names used as cache keys.
const (
	PropAdjacency           = "A"
	PropTranspose           = "AT"
	PropOffDiagonal         = "offdiag"
	PropDiagonal            = "diag"
	PropMinWeight           = "min_weight"
	PropMaxWeight           = "max_weight"
	PropIsIso               = "is_iso"
	PropHasNegativeEdges    = "has_negative_edges"
	PropHasNegativeDiagonal = "has_negative_diagonal"
	PropDegrees             = "degrees"
)

// invalidateLocked drops every cached property. Caller holds mu for writing.
func (g *Graph[W]) invalidateLocked() {
	g.gen++
	clear(g.cache)
}

// Cached reports whether the property name is currently memoised.
func (g *Graph[W]) Cached(name string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.cache[name]
	return ok
}

// property returns the memoised value for name, computing it on first use.
func property[W sparse.Number, T any](g *Graph[W], name string, compute func() T) T {
	g.mu.RLock()
	if v, ok := g.cache[name]; ok {
		g.mu.RUnlock()
		return v.(T)
	}
	gen := g.gen
	g.mu.RUnlock()

	v := compute()

	g.mu.Lock()
	defer g.mu.Unlock()
	if prev, ok := g.cache[name]; ok && g.gen == gen {
		return prev.(T)
	}
	if g.gen == gen {
		g.cache[name] = v
	}
	return v
}

// Adjacency returns the n x n adjacency matrix. The result is shared with
// the cache and must be treated as read-only.
func (g *Graph[W]) Adjacency() *sparse.Matrix[W] {
	return property(g, PropAdjacency, func() *sparse.Matrix[W] {
		g.mu.RLock()
		n := len(g.keys)
		is, js, vals := g.sortedEdgesLocked()
		g.mu.RUnlock()
		A, err := sparse.FromCOO(n, n, is, js, vals, nil)
		if err != nil {
			// ids come from the bijection, so they are always in range
			panic(err)
		}
		return A
	})
}

// Transpose returns A^T, used for predecessor-style traversals.
func (g *Graph[W]) Transpose() *sparse.Matrix[W] {
	return property(g, PropTranspose, func() *sparse.Matrix[W] {
		if !g.directed {
			return g.Adjacency()
		}
		return g.Adjacency().Transpose()
	})
}

// OffDiagonal returns A without self-loops.
func (g *Graph[W]) OffDiagonal() *sparse.Matrix[W] {
	return property(g, PropOffDiagonal, func() *sparse.Matrix[W] {
		return g.Adjacency().OffDiag()
	})
}

// Diagonal returns the self-loop weights.
func (g *Graph[W]) Diagonal() *sparse.Vector[W] {
	return property(g, PropDiagonal, func() *sparse.Vector[W] {
		return g.Adjacency().Diag()
	})
}

type extremum[W sparse.Number] struct {
	value W
	ok    bool
}

func (g *Graph[W]) minWeight() extremum[W] {
	return property(g, PropMinWeight, func() extremum[W] {
		v, ok := g.Adjacency().Reduce(sparse.MinMonoid[W]())
		return extremum[W]{v, ok}
	})
}

func (g *Graph[W]) maxWeight() extremum[W] {
	return property(g, PropMaxWeight, func() extremum[W] {
		v, ok := g.Adjacency().Reduce(sparse.MaxMonoid[W]())
		return extremum[W]{v, ok}
	})
}

// IsIso reports whether the graph has at least one edge and every edge
// carries the same value.
func (g *Graph[W]) IsIso() bool {
	return property(g, PropIsIso, func() bool {
		lo, hi := g.minWeight(), g.maxWeight()
		return lo.ok && lo.value == hi.value
	})
}

// IsoValue returns the shared edge value when IsIso holds.
func (g *Graph[W]) IsoValue() (W, bool) {
	if !g.IsIso() {
		var zero W
		return zero, false
	}
	return g.minWeight().value, true
}

// HasNegativeEdges reports whether any edge (self-loops included) is < 0.
func (g *Graph[W]) HasNegativeEdges() bool {
	return property(g, PropHasNegativeEdges, func() bool {
		lo := g.minWeight()
		return lo.ok && lo.value < 0
	})
}

// HasNegativeDiagonal reports whether any self-loop is < 0.
func (g *Graph[W]) HasNegativeDiagonal() bool {
	return property(g, PropHasNegativeDiagonal, func() bool {
		lo, ok := g.Diagonal().Reduce(sparse.MinMonoid[W]())
		return ok && lo < 0
	})
}

// Degrees returns, for every node touching at least one edge, its degree:
// out-degree for undirected graphs (the matrix is symmetric) and
// in+out degree for directed ones. Isolated nodes are absent.
func (g *Graph[W]) Degrees() *sparse.Vector[int] {
	return property(g, PropDegrees, func() *sparse.Vector[int] {
		A := g.Adjacency()
		deg := A.RowDegrees()
		if g.directed {
			A.ColDegrees().Each(func(j, c int) {
				prev, _ := deg.Get(j)
				_ = deg.SetElement(j, prev+c)
			})
		}
		return deg
	})
}

// HasSelfLoop reports whether node id has a self-loop.
func (g *Graph[W]) HasSelfLoop(id int) bool {
	return g.Diagonal().Has(id)
}

// OutDegree returns the number of adjacency entries in row id.
func (g *Graph[W]) OutDegree(id int) int {
	return g.Adjacency().RowNVals(id)
}
