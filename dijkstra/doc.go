// SPDX-License-Identifier: MIT

// Package dijkstra computes shortest paths from one source on graphs with
// non-negative edge weights.
//
// It is the heap-based counterpart of the min-plus relaxation in package
// bellmanford; on non-negative graphs both report the same distances, which
// the bellmanford tests check on random graphs.
//
// Overview:
//
//   - Vertices are settled in order of increasing distance using a
//     container/heap min-heap with lazy decrease-key: improved distances are
//     pushed again and stale entries are skipped on pop.
//   - Out-edges are read from the row of the graph's cached sparse adjacency
//     matrix, so undirected edges are walked both ways without special cases.
//   - Unreachable vertices are absent from the result instead of carrying a
//     sentinel distance.
//
// Options:
//
//   - Source(id):               required, the starting vertex.
//   - WithReturnPath():         also return the predecessor map.
//   - WithMaxDistance(x):       do not report vertices farther than x.
//   - WithInfEdgeThreshold(t):  edges with weight >= t are impassable.
//
// Errors:
//
//   - ErrEmptySource, graph.ErrGraphNil, graph.ErrNodeNotFound on bad input.
//   - ErrNegativeWeight if any edge is negative (found by an O(1) cached
//     property check before the search starts).
//   - ErrBadMaxDistance, ErrBadInfThreshold for invalid option values.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E), the heap holding up to one entry per relaxation.
package dijkstra
