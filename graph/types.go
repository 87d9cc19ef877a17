// SPDX-License-Identifier: MIT

package graph

import (
	"errors"
	"sync"

	"github.com/katalvlaran/lvlath-sparse/sparse"
)

// Sentinel errors for graph construction and lookup.
var (
	// ErrGraphNil is returned when a nil *Graph is passed to an algorithm.
	ErrGraphNil = errors.New("graph: graph is nil")

	// ErrEmptyKey indicates an empty node key.
	ErrEmptyKey = errors.New("graph: node key is empty")

	// ErrNodeNotFound indicates a key or id that is not part of the graph.
	ErrNodeNotFound = errors.New("graph: node not found")

	// ErrEdgeNotFound indicates RemoveEdge on a missing edge.
	ErrEdgeNotFound = errors.New("graph: edge not found")

	// ErrBadWeight indicates a non-zero weight on an unweighted graph.
	ErrBadWeight = errors.New("graph: bad weight for unweighted graph")

	// ErrDuplicateKey indicates the same key listed twice where keys must be unique.
	ErrDuplicateKey = errors.New("graph: duplicate node key")
)

// Option configures a Graph before creation.
type Option func(*options)

type options struct {
	directed   bool
	unweighted bool
}

// WithDirected sets directedness (default: undirected).
func WithDirected(directed bool) Option {
	return func(o *options) { o.directed = directed }
}

// WithUnweighted makes the graph structural: edges carry the value 1.
func WithUnweighted() Option {
	return func(o *options) { o.unweighted = true }
}

// edgeKey is an ordered (from, to) id pair.
type edgeKey struct {
	u, v int
}

// Graph is the node/edge store plus the property cache.
//
// mu guards every field below it. The cache is keyed by property name and
// tagged with the generation it was computed for.
type Graph[W sparse.Number] struct {
	mu sync.RWMutex

	directed   bool
	unweighted bool

	keys  []string       // id -> key
	ids   map[string]int // key -> id
	edges map[edgeKey]W  // stored direction(s); undirected edges twice

	gen   uint64
	cache map[string]any
}

// New creates an empty graph.
// Complexity: O(1).
func New[W sparse.Number](opts ...Option) *Graph[W] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return &Graph[W]{
		directed:   o.directed,
		unweighted: o.unweighted,
		ids:        make(map[string]int),
		edges:      make(map[edgeKey]W),
		cache:      make(map[string]any),
	}
}
