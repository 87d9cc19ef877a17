// SPDX-License-Identifier: MIT

package dfs

import (
	"context"
	"errors"
)

const (
	White = iota // White: the vertex has not been visited yet.
	Gray         // Gray: the vertex is on the DFS stack.
	Black        // Black: the vertex and all its descendants are finished.
)

var (
	// ErrCycleDetected indicates that a directed cycle exists.
	ErrCycleDetected = errors.New("dfs: cycle detected")

	// ErrUndirected indicates an ordering was requested on an undirected graph.
	ErrUndirected = errors.New("dfs: topological sort requires a directed graph")
)

// TopoOption configures TopologicalSort and IsAcyclic.
type TopoOption func(*topoOptions)

type topoOptions struct {
	ctx             context.Context
	ignoreSelfLoops bool
}

func defaultTopoOptions() topoOptions {
	return topoOptions{ctx: context.Background()}
}

// WithCancelContext sets a context checked before each vertex is entered.
// A nil ctx is ignored.
func WithCancelContext(ctx context.Context) TopoOption {
	return func(o *topoOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithIgnoreSelfLoops skips u -> u edges.
func WithIgnoreSelfLoops() TopoOption {
	return func(o *topoOptions) { o.ignoreSelfLoops = true }
}
