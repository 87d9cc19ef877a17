// SPDX-License-Identifier: MIT

package sparse

import "fmt"

// VxM computes w = u x A under sr (row vector times matrix).
//
// Only positions allowed by the output mask are produced. With AnyPair and a
// complemented "visited" mask this is one BFS step; with MinPlus it is one
// Bellman-Ford relaxation of a frontier.
//
// Complexity: O(sum of row lengths of A over the entries of u).
func VxM[T Number](u *Vector[T], A *Matrix[T], sr Semiring[T], opts ...OpOption) (*Vector[T], error) {
	if u.size != A.nrows {
		return nil, fmt.Errorf("%w: vector %d x matrix %dx%d", ErrDimensionMismatch, u.size, A.nrows, A.ncols)
	}
	cfg := gatherOpts(opts)
	w := NewVector[T](A.ncols)
	u.Each(func(i int, ui T) {
		r := A.rows[i]
		for k, j := range r.cols {
			if !cfg.allows(j) {
				continue
			}
			t := sr.Mul(ui, r.vals[k])
			if w.set.Test(uint(j)) {
				w.vals[j] = sr.Add.Op(w.vals[j], t)
				continue
			}
			w.put(j, t)
		}
	})
	return w, nil
}

// MxM computes C = U x A under sr, one output row per row of U.
// Output mask positions are linear positions of C (i*A.NCols()+j).
// Rows are independent and are processed in parallel for wide inputs.
func MxM[T Number](U, A *Matrix[T], sr Semiring[T], opts ...OpOption) (*Matrix[T], error) {
	if U.ncols != A.nrows {
		return nil, fmt.Errorf("%w: %dx%d x %dx%d", ErrDimensionMismatch, U.nrows, U.ncols, A.nrows, A.ncols)
	}
	cfg := gatherOpts(opts)
	C := NewMatrix[T](U.nrows, A.ncols)
	forEachRow(U.nrows, func(i int) {
		C.rows[i] = mulRow(U.rows[i], A, sr, func(j int) bool { return cfg.allows(i*A.ncols + j) })
	})
	return C, nil
}

// mulRow multiplies a single sparse row by A using a scatter map keyed by
// output column, then emits the result sorted.
func mulRow[T Number](u row[T], A *Matrix[T], sr Semiring[T], allows func(j int) bool) row[T] {
	if len(u.cols) == 0 {
		return row[T]{}
	}
	acc := make(map[int]T)
	for p, i := range u.cols {
		r := A.rows[i]
		for k, j := range r.cols {
			if !allows(j) {
				continue
			}
			t := sr.Mul(u.vals[p], r.vals[k])
			if prev, ok := acc[j]; ok {
				acc[j] = sr.Add.Op(prev, t)
				continue
			}
			acc[j] = t
		}
	}
	out := row[T]{cols: make([]int, 0, len(acc)), vals: make([]T, 0, len(acc))}
	for j := range acc {
		out.cols = append(out.cols, j)
	}
	sortInts(out.cols)
	for _, j := range out.cols {
		out.vals = append(out.vals, acc[j])
	}
	return out
}

// MxV computes w = A x u under sr (matrix times column vector).
func MxV[T Number](A *Matrix[T], u *Vector[T], sr Semiring[T], opts ...OpOption) (*Vector[T], error) {
	if A.ncols != u.size {
		return nil, fmt.Errorf("%w: matrix %dx%d x vector %d", ErrDimensionMismatch, A.nrows, A.ncols, u.size)
	}
	cfg := gatherOpts(opts)
	w := NewVector[T](A.nrows)
	for i, r := range A.rows {
		if !cfg.allows(i) {
			continue
		}
		var acc T
		found := false
		for k, j := range r.cols {
			uj, ok := u.Get(j)
			if !ok {
				continue
			}
			t := sr.Mul(r.vals[k], uj)
			if found {
				acc = sr.Add.Op(acc, t)
			} else {
				acc, found = t, true
			}
		}
		if found {
			w.put(i, acc)
		}
	}
	return w, nil
}

// Dot computes the inner product of u and w under sr. ok is false when the
// two structures do not intersect.
func Dot[T Number](u, w *Vector[T], sr Semiring[T]) (acc T, ok bool, err error) {
	if u.size != w.size {
		return acc, false, fmt.Errorf("%w: %d . %d", ErrDimensionMismatch, u.size, w.size)
	}
	both := u.set.Intersection(w.set)
	for i, more := both.NextSet(0); more; i, more = both.NextSet(i + 1) {
		t := sr.Mul(u.vals[i], w.vals[i])
		if ok {
			acc = sr.Add.Op(acc, t)
			continue
		}
		acc, ok = t, true
	}
	return acc, ok, nil
}
