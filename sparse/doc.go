// SPDX-License-Identifier: MIT

// Package sparse is the small sparse linear-algebra kernel the shortest-path
// packages are written against.
//
// What
//
//   - Vector[T]: bitmap vector (values + presence bits). A missing entry means
//     "no value", which under min-plus is +Inf and never zero.
//   - Matrix[T]: row-major sparse matrix, each row sorted by column.
//   - Mask: set of true positions over a vector, or over a matrix linearised
//     as i*ncols+j. Mask.Any is the logical-or monoid reduction.
//   - Semiring / Monoid: MinPlus and AnyPair, Min/Max/Plus/Any.
//
// Operations
//
//   - VxM, MxM, MxV, Dot         multiply-accumulate under a semiring, with an
//     optional output mask (WithMask) that may be complemented (WithComplement).
//   - Select                     keep entries whose value satisfies a predicate.
//   - Keep                       C(M, replace) << C: clear everything outside M.
//   - Assign                     C(M) << A: overwrite the entries selected by M.
//   - LessThan, Improved         element-wise comparisons producing masks.
//   - Reduce, Apply, Scale       monoid reduction and unary application.
//   - Diag, OffDiag, Transpose   structural views of a square matrix.
//
// Determinism
//
//	Every iteration (Each, Pattern, Keys) is in ascending index order, so
//	results are bitwise reproducible across runs.
//
// Concurrency
//
//	Containers are not safe for concurrent mutation. Row-wise kernels (MxM)
//	fan out across goroutines once the row count crosses parallelThreshold;
//	this is invisible to callers and every call still returns synchronously.
package sparse
