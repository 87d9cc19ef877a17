// SPDX-License-Identifier: MIT
//
// File: convert.go
// Role: adapters into and out of the handle: FromMatrix, FromGonum,
//       VectorToMap, MatrixToMap.

package graph

import (
	"fmt"
	"sort"
	"strconv"

	gonum "gonum.org/v1/gonum/graph"

	"github.com/katalvlaran/lvlath-sparse/sparse"
)

// FromMatrix wraps a square adjacency matrix, naming row/column i keys[i].
// For undirected graphs A is expected to be symmetric; this is not checked.
// Complexity: O(n + nnz).
func FromMatrix[W sparse.Number](A *sparse.Matrix[W], keys []string, opts ...Option) (*Graph[W], error) {
	if A.NRows() != A.NCols() || A.NRows() != len(keys) {
		return nil, fmt.Errorf("%w: %dx%d matrix with %d keys", sparse.ErrDimensionMismatch, A.NRows(), A.NCols(), len(keys))
	}
	g := New[W](opts...)
	for _, key := range keys {
		if key == "" {
			return nil, ErrEmptyKey
		}
		if _, dup := g.ids[key]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateKey, key)
		}
		g.addNodeLocked(key)
	}
	var bad error
	A.Each(func(i, j int, x W) {
		if g.unweighted {
			if x != 1 && bad == nil {
				bad = fmt.Errorf("%w: entry (%d,%d)=%v", ErrBadWeight, i, j, x)
			}
		}
		g.edges[edgeKey{i, j}] = x
	})
	if bad != nil {
		return nil, bad
	}
	return g, nil
}

// FromGonum imports a gonum weighted graph. Node keys are the decimal gonum
// node ids; ids are assigned in ascending gonum id order. Directedness
// follows whether g implements gonum's graph.Directed.
func FromGonum(g gonum.Weighted) (*Graph[float64], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	_, directed := g.(gonum.Directed)
	out := New[float64](WithDirected(directed))

	nodes := gonum.NodesOf(g.Nodes())
	sort.Slice(nodes, func(a, b int) bool { return nodes[a].ID() < nodes[b].ID() })
	for _, n := range nodes {
		if err := out.AddNode(gonumKey(n.ID())); err != nil {
			return nil, err
		}
	}
	for _, u := range nodes {
		to := g.From(u.ID())
		for to.Next() {
			v := to.Node()
			w, ok := g.Weight(u.ID(), v.ID())
			if !ok {
				continue
			}
			if err := out.AddEdge(gonumKey(u.ID()), gonumKey(v.ID()), w); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}

func gonumKey(id int64) string { return strconv.FormatInt(id, 10) }

// VectorToMap turns a per-node result into key -> value. Absent entries are
// absent from the map.
func VectorToMap[W, T sparse.Number](g *Graph[W], v *sparse.Vector[T]) map[string]T {
	keys := g.Keys()
	out := make(map[string]T, v.NVals())
	v.Each(func(i int, x T) {
		if i < len(keys) {
			out[keys[i]] = x
		}
	})
	return out
}

// MatrixToMap turns a per-(source, node) result into
// rowKeys[i] -> key(j) -> value. Rows without a key or without entries are
// omitted.
func MatrixToMap[W, T sparse.Number](g *Graph[W], D *sparse.Matrix[T], rowKeys []string) map[string]map[string]T {
	keys := g.Keys()
	out := make(map[string]map[string]T, len(rowKeys))
	D.Each(func(i, j int, x T) {
		if i >= len(rowKeys) || j >= len(keys) {
			return
		}
		inner, ok := out[rowKeys[i]]
		if !ok {
			inner = make(map[string]T)
			out[rowKeys[i]] = inner
		}
		inner[keys[j]] = x
	})
	return out
}
