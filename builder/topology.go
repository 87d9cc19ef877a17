// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlath-sparse/graph"
	"github.com/katalvlaran/lvlath-sparse/sparse"
)

// Path adds the chain 0 -> 1 -> ... -> n-1. n >= 1.
func Path[W sparse.Number](n int) Constructor[W] {
	return func(g *graph.Graph[W], cfg builderConfig[W]) error {
		if n < 1 {
			return fmt.Errorf("Path: n=%d < min=1: %w", n, ErrTooFewVertices)
		}
		if err := cfg.addNodes(g, "Path", n); err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err := cfg.addEdge(g, "Path", i, i+1); err != nil {
				return err
			}
		}
		return nil
	}
}

// Cycle adds the ring 0 -> 1 -> ... -> n-1 -> 0. n >= 3.
func Cycle[W sparse.Number](n int) Constructor[W] {
	return func(g *graph.Graph[W], cfg builderConfig[W]) error {
		if n < 3 {
			return fmt.Errorf("Cycle: n=%d < min=3: %w", n, ErrTooFewVertices)
		}
		if err := cfg.addNodes(g, "Cycle", n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := cfg.addEdge(g, "Cycle", i, (i+1)%n); err != nil {
				return err
			}
		}
		return nil
	}
}

// Star adds spokes 0 -> i for i in 1..n-1. n >= 2.
func Star[W sparse.Number](n int) Constructor[W] {
	return func(g *graph.Graph[W], cfg builderConfig[W]) error {
		if n < 2 {
			return fmt.Errorf("Star: n=%d < min=2: %w", n, ErrTooFewVertices)
		}
		if err := cfg.addNodes(g, "Star", n); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := cfg.addEdge(g, "Star", 0, i); err != nil {
				return err
			}
		}
		return nil
	}
}

// Complete adds every edge i -> j with i != j (i < j on undirected graphs).
// n >= 1.
func Complete[W sparse.Number](n int) Constructor[W] {
	return func(g *graph.Graph[W], cfg builderConfig[W]) error {
		if n < 1 {
			return fmt.Errorf("Complete: n=%d < min=1: %w", n, ErrTooFewVertices)
		}
		if err := cfg.addNodes(g, "Complete", n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j || (!g.IsDirected() && j < i) {
					continue
				}
				if err := cfg.addEdge(g, "Complete", i, j); err != nil {
					return err
				}
			}
		}
		return nil
	}
}

// Grid adds a rows x cols lattice. Vertex r*cols+c links to its right and
// lower neighbors. rows, cols >= 1.
func Grid[W sparse.Number](rows, cols int) Constructor[W] {
	return func(g *graph.Graph[W], cfg builderConfig[W]) error {
		if rows < 1 || cols < 1 {
			return fmt.Errorf("Grid: %dx%d: %w", rows, cols, ErrTooFewVertices)
		}
		if err := cfg.addNodes(g, "Grid", rows*cols); err != nil {
			return err
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				id := r*cols + c
				if c+1 < cols {
					if err := cfg.addEdge(g, "Grid", id, id+1); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := cfg.addEdge(g, "Grid", id, id+cols); err != nil {
						return err
					}
				}
			}
		}
		return nil
	}
}

// RandomSparse includes each admissible edge independently with
// probability p: ordered pairs i != j on directed graphs, pairs i < j on
// undirected ones. Trials run in (i, j) ascending order, so a fixed seed
// yields a fixed graph. Requires WithSeed or WithRand when 0 < p < 1.
func RandomSparse[W sparse.Number](n int, p float64) Constructor[W] {
	return func(g *graph.Graph[W], cfg builderConfig[W]) error {
		if n < 1 {
			return fmt.Errorf("RandomSparse: n=%d < min=1: %w", n, ErrTooFewVertices)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("RandomSparse: p=%.6f not in [0,1]: %w", p, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return fmt.Errorf("RandomSparse: %w", ErrNeedRandSource)
		}
		if err := cfg.addNodes(g, "RandomSparse", n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j || (!g.IsDirected() && j < i) {
					continue
				}
				if p < 1 && (p == 0 || cfg.rng.Float64() >= p) {
					continue
				}
				if err := cfg.addEdge(g, "RandomSparse", i, j); err != nil {
					return err
				}
			}
		}
		return nil
	}
}
