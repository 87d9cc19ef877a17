// SPDX-License-Identifier: MIT
//
// File: graph.go
// Role: node and edge lifecycle, key <-> id lookups.
// Concurrency:
//   - Mutations take mu for writing and bump the cache generation.
//   - Lookups take mu for reading.

package graph

import (
	"fmt"
	"sort"
)

// AddNode registers key, assigning it the next free id. Adding an existing
// key is a no-op.
// Complexity: O(1).
func (g *Graph[W]) AddNode(key string) error {
	if key == "" {
		return ErrEmptyKey
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.ids[key]; ok {
		return nil
	}
	g.addNodeLocked(key)
	g.invalidateLocked()
	return nil
}

func (g *Graph[W]) addNodeLocked(key string) int {
	id := len(g.keys)
	g.keys = append(g.keys, key)
	g.ids[key] = id
	return id
}

// AddEdge adds or overwrites the edge from -> to, creating missing nodes.
// Undirected graphs also store to -> from. Unweighted graphs require
// weight == 0 and store 1.
// Complexity: O(1) amortized.
func (g *Graph[W]) AddEdge(from, to string, weight W) error {
	if from == "" || to == "" {
		return ErrEmptyKey
	}
	if g.unweighted {
		if weight != 0 {
			return fmt.Errorf("%w: %s->%s weight=%v", ErrBadWeight, from, to, weight)
		}
		weight = 1
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	u, ok := g.ids[from]
	if !ok {
		u = g.addNodeLocked(from)
	}
	v, ok := g.ids[to]
	if !ok {
		v = g.addNodeLocked(to)
	}
	g.edges[edgeKey{u, v}] = weight
	if !g.directed {
		g.edges[edgeKey{v, u}] = weight
	}
	g.invalidateLocked()
	return nil
}

// RemoveEdge deletes from -> to (and its mirror on undirected graphs).
func (g *Graph[W]) RemoveEdge(from, to string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	u, ok := g.ids[from]
	if !ok {
		return fmt.Errorf("%w: %q", ErrNodeNotFound, from)
	}
	v, ok := g.ids[to]
	if !ok {
		return fmt.Errorf("%w: %q", ErrNodeNotFound, to)
	}
	if _, ok = g.edges[edgeKey{u, v}]; !ok {
		return fmt.Errorf("%w: %s->%s", ErrEdgeNotFound, from, to)
	}
	delete(g.edges, edgeKey{u, v})
	if !g.directed {
		delete(g.edges, edgeKey{v, u})
	}
	g.invalidateLocked()
	return nil
}

// IsDirected reports whether edges are one-way.
func (g *Graph[W]) IsDirected() bool { return g.directed }

// IsUnweighted reports whether the graph was built WithUnweighted.
func (g *Graph[W]) IsUnweighted() bool { return g.unweighted }

// Order returns the number of nodes.
func (g *Graph[W]) Order() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.keys)
}

// Size returns the number of stored adjacency entries (undirected edges
// count twice, self-loops once).
func (g *Graph[W]) Size() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.edges)
}

// HasNode reports whether key is present.
func (g *Graph[W]) HasNode(key string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.ids[key]
	return ok
}

// Keys returns node keys ordered by id.
func (g *Graph[W]) Keys() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return append([]string(nil), g.keys...)
}

// ID maps a node key to its row/column index.
func (g *Graph[W]) ID(key string) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	id, ok := g.ids[key]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrNodeNotFound, key)
	}
	return id, nil
}

// IDs maps every key in keys, preserving order.
func (g *Graph[W]) IDs(keys []string) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]int, len(keys))
	for k, key := range keys {
		id, ok := g.ids[key]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, key)
		}
		out[k] = id
	}
	return out, nil
}

// Key maps an index back to its node key.
func (g *Graph[W]) Key(id int) (string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if id < 0 || id >= len(g.keys) {
		return "", fmt.Errorf("%w: id %d", ErrNodeNotFound, id)
	}
	return g.keys[id], nil
}

// KeysOf maps ids back to keys; unknown ids are skipped.
func (g *Graph[W]) KeysOf(ids []int) []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id >= 0 && id < len(g.keys) {
			out = append(out, g.keys[id])
		}
	}
	return out
}

// Weight returns the weight stored for from -> to.
func (g *Graph[W]) Weight(from, to string) (W, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	var zero W
	u, ok := g.ids[from]
	if !ok {
		return zero, false
	}
	v, ok := g.ids[to]
	if !ok {
		return zero, false
	}
	w, ok := g.edges[edgeKey{u, v}]
	return w, ok
}

// Neighbors returns the out-neighbours of key ordered by id.
func (g *Graph[W]) Neighbors(key string) ([]string, error) {
	id, err := g.ID(key)
	if err != nil {
		return nil, err
	}
	cols, _ := g.Adjacency().Row(id)
	return g.KeysOf(cols), nil
}

// sortedEdgesLocked snapshots the edge map in (u, v) order. Caller holds mu.
func (g *Graph[W]) sortedEdgesLocked() (is, js []int, vals []W) {
	keys := make([]edgeKey, 0, len(g.edges))
	for k := range g.edges {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(a, b int) bool {
		if keys[a].u != keys[b].u {
			return keys[a].u < keys[b].u
		}
		return keys[a].v < keys[b].v
	})
	is = make([]int, len(keys))
	js = make([]int, len(keys))
	vals = make([]W, len(keys))
	for k, e := range keys {
		is[k], js[k], vals[k] = e.u, e.v, g.edges[e]
	}
	return is, js, vals
}
