// SPDX-License-Identifier: MIT

// Package lvlathsparse computes graph traversals and shortest paths as
// sequences of sparse linear-algebra operations instead of pointer-chasing
// walks.
//
// What is in the box?
//
//	• sparse/:      Vector, Matrix and Mask containers; masked multiply
//	                under min-plus and any-pair semirings; row-parallel MxM
//	• graph/:       the graph handle: key <-> id mapping and a cached,
//	                mutation-invalidated table of derived properties
//	• bfs/:         level BFS (one or many sources), reachability,
//	                descendants/ancestors, unweighted path length
//	• bellmanford/: shortest path lengths with negative weights, negative
//	                cycle detection, iso-weight fast path
//	• dijkstra/:    heap-based shortest paths for non-negative weights
//	• dfs/:         topological sort and directed cycle detection
//	• builder/:     deterministic fixtures: paths, cycles, grids, random
//
// Quick example:
//
//	g := graph.New[int](graph.WithDirected(true))
//	_ = g.AddEdge("0", "1", 1)
//	_ = g.AddEdge("1", "2", 1)
//	_ = g.AddEdge("2", "0", 1)
//
//	d, err := bellmanford.SingleSourceLength(g, "0") // {0:0, 1:1, 2:2}
//
// Absence is infinity: an unreached node has no entry in a result vector,
// it never carries a placeholder distance.
//
//	go get github.com/katalvlaran/lvlath-sparse
package lvlathsparse
