// SPDX-License-Identifier: MIT

package bfs

import (
	"errors"
	"fmt"
)

// Sentinel errors for level BFS.
var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNoPath is returned by ShortestPathLength when target is unreachable.
	ErrNoPath = errors.New("bfs: no path between nodes")
)

// NoDepthLimit disables the depth bound.
const NoDepthLimit = -1

// Option configures a BFS run via functional arguments. Invalid values are
// recorded and surfaced as ErrOptionViolation when the run starts.
type Option func(*Options)

// Options holds the BFS parameters.
type Options struct {
	// MaxDepth is the largest level reported; NoDepthLimit disables it.
	MaxDepth int

	// Transpose walks edges from head to tail.
	Transpose bool

	err error
}

// DefaultOptions returns unlimited depth, forward direction.
func DefaultOptions() Options {
	return Options{MaxDepth: NoDepthLimit}
}

// WithMaxDepth bounds the reported levels to d (inclusive).
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithTranspose walks edges backwards.
func WithTranspose() Option {
	return func(o *Options) { o.Transpose = true }
}

func gather(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o, o.err
}
