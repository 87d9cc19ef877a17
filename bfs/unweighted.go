// SPDX-License-Identifier: MIT

package bfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlath-sparse/graph"
	"github.com/katalvlaran/lvlath-sparse/sparse"
)

// ShortestPathLength returns the number of edges on a shortest u -> v path,
// ignoring weights. It grows a forward frontier from u over A and a backward
// frontier from v over A^T, always expanding the smaller one, and stops at
// the first level where the two visited sets meet.
//
// Errors: graph.ErrGraphNil, graph.ErrNodeNotFound, ErrNoPath.
func ShortestPathLength[W sparse.Number](g *graph.Graph[W], u, v string) (int, error) {
	if g == nil {
		return 0, graph.ErrGraphNil
	}
	s, err := g.ID(u)
	if err != nil {
		return 0, err
	}
	t, err := g.ID(v)
	if err != nil {
		return 0, err
	}
	if s == t {
		return 0, nil
	}

	fwd := newSide(g.Adjacency(), s)
	bwd := newSide(g.Transpose(), t)
	for fwd.frontier.NVals() > 0 && bwd.frontier.NVals() > 0 {
		grow, other := fwd, bwd
		if bwd.frontier.NVals() < fwd.frontier.NVals() {
			grow, other = bwd, fwd
		}
		if err = grow.step(); err != nil {
			return 0, err
		}
		if d, ok := grow.meet(other); ok {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w: %q -> %q", ErrNoPath, u, v)
}

// Efficiency is the reciprocal of ShortestPathLength; it is 0 when v is
// unreachable from u and 0 for u == v.
func Efficiency[W sparse.Number](g *graph.Graph[W], u, v string) (float64, error) {
	d, err := ShortestPathLength(g, u, v)
	switch {
	case errors.Is(err, ErrNoPath):
		return 0, nil
	case err != nil:
		return 0, err
	case d == 0:
		return 0, nil
	}
	return 1 / float64(d), nil
}

// side is one half of a bidirectional search.
type side[W sparse.Number] struct {
	A        *sparse.Matrix[W]
	depth    int
	visited  *sparse.Vector[W] // levels from this side's root
	frontier *sparse.Vector[W]
}

func newSide[W sparse.Number](A *sparse.Matrix[W], root int) *side[W] {
	s := &side[W]{
		A:        A,
		visited:  sparse.NewVector[W](A.NRows()),
		frontier: sparse.NewVector[W](A.NRows()),
	}
	_ = s.visited.SetElement(root, 0)
	_ = s.frontier.SetElement(root, 1)
	return s
}

func (s *side[W]) step() error {
	q, err := sparse.VxM(s.frontier, s.A, sparse.AnyPair[W](),
		sparse.WithMask(s.visited.Pattern()), sparse.WithComplement())
	if err != nil {
		return err
	}
	s.depth++
	s.frontier = q
	s.visited.AssignScalar(q.Pattern(), W(s.depth))
	return nil
}

// meet returns the shortest length through a node on s's new frontier that
// the other side has already visited.
func (s *side[W]) meet(other *side[W]) (int, bool) {
	if !s.frontier.Pattern().Intersects(other.visited.Pattern()) {
		return 0, false
	}
	best, found := 0, false
	s.frontier.Each(func(j int, _ W) {
		lvl, ok := other.visited.Get(j)
		if !ok {
			return
		}
		if d := s.depth + int(lvl); !found || d < best {
			best, found = d, true
		}
	})
	return best, found
}
