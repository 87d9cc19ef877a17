// SPDX-License-Identifier: MIT

// Package bfs computes breadth-first levels over a graph.Graph by repeated
// sparse vector-matrix products under the any-pair semiring.
//
// What
//
//   - Level:      hop count from one source to every reachable node.
//   - Levels:     the same for many sources at once, one matrix row per source.
//   - Reachable:  the set of nodes reachable from a source (source included).
//   - Descendants / Ancestors: reachable keys following / against edge
//     direction, source excluded.
//   - ShortestPathLength: bidirectional unweighted path length between two nodes.
//   - Efficiency: 1 / ShortestPathLength, or 0 when no path exists.
//
// How
//
//	Each round multiplies the frontier q by A (or A^T) under AnyPair with the
//	complement of the visited set as output mask:
//
//	    q <- any_pair(q x A) restricted to !visited
//	    levels(q) <- k
//
//	and stops once q is empty or the depth bound is reached. Levels are stored
//	in the graph's value domain W, so a weighted caller can scale them
//	directly (the iso-weight fast path in package bellmanford does this).
//	A narrow W such as int8 or uint8 wraps once a level exceeds its range;
//	use a wider type for deep graphs.
//
// Options
//
//   - WithMaxDepth(d): d >= 0 is an inclusive bound on reported levels;
//     d == 0 reports the source alone. Negative d -> ErrOptionViolation.
//   - WithTranspose(): walk edges backwards (predecessor queries).
//
// Complexity (V = |nodes|, E = |edges|)
//
//   - Level / Reachable: O(V + E) work, O(V) memory.
//   - Levels: O(S * (V + E)) for S sources.
//   - ShortestPathLength: at most O(V + E).
package bfs
