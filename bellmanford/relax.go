// SPDX-License-Identifier: MIT

package bellmanford

import (
	"math"

	"github.com/go-logr/logr"

	"github.com/katalvlaran/lvlath-sparse/sparse"
)

// distances is satisfied by *sparse.Vector[W] (one source) and
// *sparse.Matrix[W] (one row per source).
type distances[W sparse.Number, C any] interface {
	Mul(A *sparse.Matrix[W], sr sparse.Semiring[W], opts ...sparse.OpOption) (C, error)
	Select(pred func(x W) bool) C
	Improved(d C) *sparse.Mask
	LessThan(d C) *sparse.Mask
	Keep(m *sparse.Mask)
	Assign(src C, m *sparse.Mask)
	Dup() C
	NVals() int
	Pattern() *sparse.Mask
}

// relax runs at most n-1 rounds of frontier relaxation over A starting from
// d, updating d in place. It reports whether a round after the last one
// would still shorten an entry, which means a negative cycle.
func relax[W sparse.Number, C distances[W, C]](d C, A *sparse.Matrix[W], cutoff float64, log logr.Logger) (bool, error) {
	var (
		n       = A.NRows()
		minPlus = sparse.MinPlus[W]()
		cur     = d.Dup()
		settled = false
		err     error
	)
	step := func() error {
		if cur, err = cur.Mul(A, minPlus); err != nil {
			return err
		}
		if !math.IsInf(cutoff, 1) {
			cur = cur.Select(withinCutoff[W](cutoff))
		}
		return nil
	}

	for round := 1; round < n; round++ {
		if err = step(); err != nil {
			return false, err
		}
		cur.Keep(cur.Improved(d))
		if cur.NVals() == 0 {
			log.V(1).Info("relaxation settled", "round", round)
			settled = true
			break
		}
		d.Assign(cur, cur.Pattern())
		log.V(1).Info("relaxation round", "round", round, "improved", cur.NVals())
	}
	if settled {
		return false, nil
	}

	if err = step(); err != nil {
		return false, err
	}
	cycle := cur.LessThan(d).Any()
	log.V(1).Info("rounds exhausted", "rounds", n-1, "negativeCycle", cycle)
	return cycle, nil
}

func negative[W sparse.Number](x W) bool { return x < 0 }

// withinCutoff keeps the entries no greater than c.
func withinCutoff[W sparse.Number](c float64) func(x W) bool {
	return func(x W) bool { return float64(x) <= c }
}
