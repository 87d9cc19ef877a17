// SPDX-License-Identifier: MIT

// Package graph is the handle the sparse algorithms read their input from:
// a node-key <-> index bijection, the adjacency matrix and a memoised table
// of derived properties.
//
// What
//
//   - Graph[W]: directed or undirected, weighted or unweighted, self-loops
//     allowed. Node keys are strings; ids are dense 0..n-1 in insertion order.
//   - Adjacency(): n x n sparse.Matrix[W]. A[i,j] present means edge i->j.
//     Undirected edges are stored in both directions.
//   - Cached properties: Transpose, OffDiagonal, Diagonal, IsIso, IsoValue,
//     HasNegativeEdges, HasNegativeDiagonal, Degrees.
//
// Unweighted graphs
//
//	WithUnweighted() models the boolean edge domain. Such graphs accept only
//	weight 0 in AddEdge and store every edge as the structural value 1 in W,
//	so path sums are well defined without a separate bool container.
//
// Cache
//
//	Properties are computed on first request, stored under their name, and
//	dropped by every mutation (AddNode, AddEdge, RemoveEdge). A generation
//	counter prevents a computation that raced with a mutation from storing
//	a stale value. Concurrent readers of a populated cache are safe.
//
// Adapters
//
//	FromMatrix wraps an existing square matrix; FromGonum imports any
//	gonum.org/v1/gonum/graph.Weighted graph. VectorToMap and MatrixToMap turn
//	results back into key-addressed maps.
package graph
