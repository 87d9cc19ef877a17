// SPDX-License-Identifier: MIT

package dijkstra

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by Dijkstra.
var (
	// ErrEmptySource indicates that no source vertex was given.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrNegativeWeight indicates that the graph has a negative edge weight.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates a negative or NaN MaxDistance.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates a zero, negative or NaN InfEdgeThreshold,
	// which would make every edge impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Options configures the behavior of the Dijkstra algorithm.
type Options struct {
	Source           string  // The key of the source vertex
	ReturnPath       bool    // Whether to return the predecessor map
	MaxDistance      float64 // Largest distance reported, inclusive
	InfEdgeThreshold float64 // Edges at or above this weight are not traversed

	err error
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting vertex.
func Source(key string) Option {
	return func(o *Options) {
		o.Source = key
	}
}

// WithReturnPath enables the predecessor map in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance stops exploration past max. Vertices farther away are
// absent from the result.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			o.err = fmt.Errorf("%w: %v", ErrBadMaxDistance, max)
			return
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold makes every edge with weight >= threshold
// impassable.
func WithInfEdgeThreshold(threshold float64) Option {
	return func(o *Options) {
		if threshold <= 0 || math.IsNaN(threshold) {
			o.err = fmt.Errorf("%w: %v", ErrBadInfThreshold, threshold)
			return
		}
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns options for source with no distance cap, no
// impassable edges and no predecessor map.
func DefaultOptions(source string) Options {
	return Options{
		Source:           source,
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}
