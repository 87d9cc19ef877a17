// SPDX-License-Identifier: MIT

package dfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlath-sparse/graph"
	"github.com/katalvlaran/lvlath-sparse/sparse"
)

// TopologicalSort returns the keys of the directed graph g ordered so that
// every edge u -> v has u before v. Roots are tried in id order, so the
// result is deterministic.
//
// Errors: graph.ErrGraphNil, ErrUndirected, ErrCycleDetected (wrapped with
// the key that closed the cycle), ctx.Err() on cancellation.
func TopologicalSort[W sparse.Number](g *graph.Graph[W], options ...TopoOption) ([]string, error) {
	if g == nil {
		return nil, graph.ErrGraphNil
	}
	if !g.IsDirected() {
		return nil, ErrUndirected
	}
	opts := defaultTopoOptions()
	for _, opt := range options {
		opt(&opts)
	}

	s := &topoSorter[W]{
		A:     g.Adjacency(),
		opts:  opts,
		state: make([]uint8, g.Order()),
		order: make([]int, 0, g.Order()),
	}
	for v := range s.state {
		if s.state[v] != White {
			continue
		}
		if err := s.visit(v); err != nil {
			if errors.Is(err, ErrCycleDetected) {
				key, _ := g.Key(s.closing)
				return nil, fmt.Errorf("%w: back edge into %q", ErrCycleDetected, key)
			}
			return nil, err
		}
	}

	// post-order reversed
	keys := g.KeysOf(s.order)
	for i, j := 0, len(keys)-1; i < j; i, j = i+1, j-1 {
		keys[i], keys[j] = keys[j], keys[i]
	}
	return keys, nil
}

// IsAcyclic reports whether the directed graph g has no cycle.
func IsAcyclic[W sparse.Number](g *graph.Graph[W], options ...TopoOption) (bool, error) {
	_, err := TopologicalSort(g, options...)
	switch {
	case errors.Is(err, ErrCycleDetected):
		return false, nil
	case err != nil:
		return false, err
	}
	return true, nil
}

type topoSorter[W sparse.Number] struct {
	A       *sparse.Matrix[W]
	opts    topoOptions
	state   []uint8
	order   []int // finish order
	closing int   // target of the back edge, when one is found
}

type frame struct {
	v, next int
}

// visit runs an iterative DFS from root.
func (t *topoSorter[W]) visit(root int) error {
	if err := t.opts.ctx.Err(); err != nil {
		return err
	}
	stack := []frame{{v: root}}
	t.state[root] = Gray
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		cols, _ := t.A.Row(top.v)
		if top.next == len(cols) {
			t.state[top.v] = Black
			t.order = append(t.order, top.v)
			stack = stack[:len(stack)-1]
			continue
		}
		u := cols[top.next]
		top.next++
		if u == top.v && t.opts.ignoreSelfLoops {
			continue
		}
		switch t.state[u] {
		case Gray:
			t.closing = u
			return ErrCycleDetected
		case White:
			select {
			case <-t.opts.ctx.Done():
				return t.opts.ctx.Err()
			default:
			}
			t.state[u] = Gray
			stack = append(stack, frame{v: u})
		}
	}
	return nil
}
