// SPDX-License-Identifier: MIT

package builder

import "errors"

var (
	// ErrTooFewVertices is returned when a size parameter is below the
	// constructor's minimum.
	ErrTooFewVertices = errors.New("builder: parameter too small")

	// ErrInvalidProbability is returned for p outside [0, 1].
	ErrInvalidProbability = errors.New("builder: probability out of range")

	// ErrNeedRandSource is returned by stochastic constructors run without
	// WithSeed or WithRand.
	ErrNeedRandSource = errors.New("builder: rng is required")

	// ErrConstructFailed wraps a nil constructor or a graph mutation error.
	ErrConstructFailed = errors.New("builder: construction failed")
)
