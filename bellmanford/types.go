// SPDX-License-Identifier: MIT

package bellmanford

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-logr/logr"
)

var (
	// ErrNegativeCycle is returned when a negative cycle is reachable from
	// the requested sources.
	ErrNegativeCycle = errors.New("bellmanford: negative cycle detected")

	// ErrBadCutoff is returned for a negative or NaN cutoff.
	ErrBadCutoff = errors.New("bellmanford: cutoff must be a non-negative number")
)

// Option configures a run.
type Option func(*Options)

// Options holds the parameters shared by all entry points.
type Options struct {
	// Cutoff is the inclusive upper bound on reported distances.
	// +Inf disables it.
	Cutoff float64

	// ExpandOutput makes Lengths return one row per graph node, with rows
	// of nodes that were not sources left empty.
	ExpandOutput bool

	// Logger receives V(1) per-round traces.
	Logger logr.Logger

	err error
}

// DefaultOptions returns no cutoff, compact output and a discarding logger.
func DefaultOptions() Options {
	return Options{
		Cutoff: math.Inf(1),
		Logger: logr.Discard(),
	}
}

// WithCutoff drops every distance greater than c.
func WithCutoff(c float64) Option {
	return func(o *Options) {
		if c < 0 || math.IsNaN(c) {
			o.err = fmt.Errorf("%w: %v", ErrBadCutoff, c)
			return
		}
		o.Cutoff = c
	}
}

// WithExpandOutput pads the Lengths result to one row per node.
func WithExpandOutput() Option {
	return func(o *Options) { o.ExpandOutput = true }
}

// WithLogger sets the trace logger.
func WithLogger(l logr.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

func gather(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o, o.err
}

func (o Options) hasCutoff() bool { return !math.IsInf(o.Cutoff, 1) }
