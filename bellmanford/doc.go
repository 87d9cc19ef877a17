// SPDX-License-Identifier: MIT

// Package bellmanford computes shortest-path lengths on graphs whose edge
// weights may be negative, expressed as repeated min-plus products over the
// sparse adjacency matrix.
//
// Every entry point shares one relaxation loop:
//
//	cur = d
//	repeat up to n-1 times:
//	    cur = cur min.+ offdiag(A)      // relax the frontier
//	    drop cur entries above the cutoff
//	    cur(improved(cur, d), replace)  // keep new or strictly smaller entries
//	    stop if cur is empty
//	    d(cur) = cur
//	if the rounds ran out: one more relaxation; any strict improvement is
//	a negative cycle
//
// Self-loops are left out of the relaxation and checked afterwards: a
// negative self-loop on a reached node is a negative cycle.
//
// When every edge carries the same non-negative weight w, distances are BFS
// levels times w and the relaxation is skipped entirely. Levels and their
// scaled distances are held in W, so narrow types such as int8 or uint8 wrap
// on deep graphs; the same holds for relaxed sums in every W.
//
// Entry points:
//
//	SingleSourceLength(g, source, opts...)  -> *sparse.Vector[W]
//	Lengths(g, sources, opts...)            -> *sparse.Matrix[W]
//	NegativeEdgeCycle(g, opts...)           -> bool
//
// A negative cycle reachable from the sources is reported as
// ErrNegativeCycle; callers test for it with errors.Is.
//
// Complexity: O(n * nnz(A)) in the worst case, usually far less because only
// the improved frontier is propagated each round.
package bellmanford
