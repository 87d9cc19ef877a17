// SPDX-License-Identifier: MIT

// Package dfs computes depth-first orderings over the sparse adjacency of a
// graph.Graph: topological sort and directed cycle detection.
//
// Vertices are colored White (unvisited), Gray (on the DFS stack) and Black
// (finished); an edge into a Gray vertex is a back edge and closes a cycle.
// The walk keeps an explicit stack of (vertex, next column) frames instead
// of recursing, so long chains do not grow the goroutine stack.
//
// Functions:
//
//   - TopologicalSort(g, opts...) ([]string, error): keys in an order where
//     every edge u -> v has u before v, or ErrCycleDetected.
//   - IsAcyclic(g, opts...) (bool, error): TopologicalSort without the order.
//
// Options:
//
//   - WithCancelContext(ctx): abort between vertices once ctx is done.
//   - WithIgnoreSelfLoops(): do not count u -> u as a cycle.
//
// Complexity: Time O(V + E), Memory O(V).
package dfs
