// SPDX-License-Identifier: MIT

// Package builder generates deterministic graph fixtures: paths, cycles,
// stars, complete graphs, grids and Erdős–Rényi-like random graphs.
//
// A fixture is assembled by BuildGraph from a list of Constructors applied
// in order to one fresh graph.Graph[W]:
//
//	g, err := builder.BuildGraph[int](
//	    []graph.Option{graph.WithDirected(true)},
//	    []builder.BuilderOption[int]{builder.WithSeed[int](7), builder.WithUniformWeights[int](-2, 9)},
//	    builder.RandomSparse[int](100, 0.05),
//	)
//
// Determinism: the same options, seed and constructor order always yield the
// same node ids, edges and weights.
//
// Unweighted graphs (graph.WithUnweighted) ignore the weight policy: every
// edge is added with weight 0 and stored as 1.
package builder
