// SPDX-License-Identifier: MIT

package sparse

import "errors"

// Sentinel errors for sparse containers. Messages carry the "sparse:" prefix.
var (
	// ErrOutOfRange indicates an index outside the container bounds.
	ErrOutOfRange = errors.New("sparse: index out of range")

	// ErrDimensionMismatch indicates operands whose shapes do not line up,
	// e.g. VxM with u.Size() != A.NRows().
	ErrDimensionMismatch = errors.New("sparse: dimension mismatch")

	// ErrBadShape indicates a negative or otherwise unusable shape.
	ErrBadShape = errors.New("sparse: invalid shape")
)

const panicNegativeDim = "sparse: negative dimension"
