// SPDX-License-Identifier: MIT

package bfs

import (
	"github.com/katalvlaran/lvlath-sparse/graph"
	"github.com/katalvlaran/lvlath-sparse/sparse"
)

// Descendants returns the keys reachable from source, excluding source,
// ordered by id.
func Descendants[W sparse.Number](g *graph.Graph[W], source string) ([]string, error) {
	return reachableKeys(g, source)
}

// Ancestors returns the keys from which source is reachable, excluding
// source, ordered by id.
func Ancestors[W sparse.Number](g *graph.Graph[W], source string) ([]string, error) {
	return reachableKeys(g, source, WithTranspose())
}

func reachableKeys[W sparse.Number](g *graph.Graph[W], source string, opts ...Option) ([]string, error) {
	m, err := Reachable(g, source, opts...)
	if err != nil {
		return nil, err
	}
	src, _ := g.ID(source) // validated by Reachable
	m.Clear(src)
	return g.KeysOf(m.Positions()), nil
}
