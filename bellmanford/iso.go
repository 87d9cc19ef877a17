// SPDX-License-Identifier: MIT

package bellmanford

import (
	"math"

	"github.com/katalvlaran/lvlath-sparse/bfs"
	"github.com/katalvlaran/lvlath-sparse/graph"
	"github.com/katalvlaran/lvlath-sparse/sparse"
)

// isoDepth converts a distance cutoff into a BFS depth bound for edges of
// weight w. The bound is one level generous and the scaled result is
// filtered by the cutoff afterwards, so rounding in c/w never loses a node.
func isoDepth[W sparse.Number](w W, cutoff float64, n int) int {
	if math.IsInf(cutoff, 1) || w == 0 {
		return bfs.NoDepthLimit
	}
	levels := math.Floor(cutoff/float64(w)) + 1
	if levels >= float64(n) {
		return bfs.NoDepthLimit
	}
	return int(levels)
}

// isoOptions maps a run's options onto a level BFS.
func isoOptions[W sparse.Number](g *graph.Graph[W], w W, o Options) []bfs.Option {
	depth := isoDepth(w, o.Cutoff, g.Order())
	if depth == bfs.NoDepthLimit {
		return nil
	}
	return []bfs.Option{bfs.WithMaxDepth(depth)}
}

// isoSingle is SingleSourceLength for a graph whose edges all weigh w >= 0.
func isoSingle[W sparse.Number](g *graph.Graph[W], source string, w W, o Options) (*sparse.Vector[W], error) {
	d, err := bfs.Level(g, source, isoOptions(g, w, o)...)
	if err != nil {
		return nil, err
	}
	if w != 1 {
		d.Scale(w)
	}
	if o.hasCutoff() {
		d = d.Select(withinCutoff[W](o.Cutoff))
	}
	o.Logger.V(1).Info("iso fast path", "weight", w, "reached", d.NVals())
	return d, nil
}

// isoMulti is Lengths for a graph whose edges all weigh w >= 0.
func isoMulti[W sparse.Number](g *graph.Graph[W], sources []string, w W, o Options) (*sparse.Matrix[W], error) {
	D, err := bfs.Levels(g, sources, isoOptions(g, w, o)...)
	if err != nil {
		return nil, err
	}
	if w != 1 {
		D.Scale(w)
	}
	if o.hasCutoff() {
		D = D.Select(withinCutoff[W](o.Cutoff))
	}
	o.Logger.V(1).Info("iso fast path", "weight", w, "reached", D.NVals())
	return D, nil
}
