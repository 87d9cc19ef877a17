// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlath-sparse/graph"
	"github.com/katalvlaran/lvlath-sparse/sparse"
)

// Constructor applies a deterministic mutation to g. It validates its
// parameters before touching g and reports failures as sentinel errors.
type Constructor[W sparse.Number] func(g *graph.Graph[W], cfg builderConfig[W]) error

// BuildGraph creates a graph with gopts, resolves bopts and applies cons in
// order. The first constructor error is returned wrapped as
// "BuildGraph: ...".
func BuildGraph[W sparse.Number](gopts []graph.Option, bopts []BuilderOption[W], cons ...Constructor[W]) (*graph.Graph[W], error) {
	g := graph.New[W](gopts...)
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}
	return g, nil
}

// addEdge draws a weight and adds u -> v.
func (c builderConfig[W]) addEdge(g *graph.Graph[W], method string, u, v int) error {
	var w W
	if !g.IsUnweighted() {
		w = c.weightFn(c.rng)
	}
	from, to := c.idFn(u), c.idFn(v)
	if err := g.AddEdge(from, to, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%s→%s, w=%v): %w: %w", method, from, to, w, ErrConstructFailed, err)
	}
	return nil
}

// addNodes adds vertices 0..n-1 in index order.
func (c builderConfig[W]) addNodes(g *graph.Graph[W], method string, n int) error {
	for i := 0; i < n; i++ {
		if err := g.AddNode(c.idFn(i)); err != nil {
			return fmt.Errorf("%s: AddNode(%s): %w: %w", method, c.idFn(i), ErrConstructFailed, err)
		}
	}
	return nil
}
