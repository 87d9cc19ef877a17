// SPDX-License-Identifier: MIT

package sparse

import (
	"fmt"
	"sort"
)

// Matrix is a row-major sparse matrix. Each row keeps its column indices
// strictly increasing; values are stored alongside.
type Matrix[T Number] struct {
	nrows, ncols int
	rows         []row[T]
}

type row[T Number] struct {
	cols []int
	vals []T
}

// NewMatrix returns an empty nrows x ncols matrix.
func NewMatrix[T Number](nrows, ncols int) *Matrix[T] {
	if nrows < 0 || ncols < 0 {
		panic(panicNegativeDim)
	}
	return &Matrix[T]{nrows: nrows, ncols: ncols, rows: make([]row[T], nrows)}
}

// FromCOO builds a matrix from coordinate lists. When the same (i, j) occurs
// more than once, dup combines the values in input order; a nil dup keeps
// the last one.
func FromCOO[T Number](nrows, ncols int, is, js []int, vals []T, dup func(x, y T) T) (*Matrix[T], error) {
	if nrows < 0 || ncols < 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadShape, nrows, ncols)
	}
	if len(is) != len(js) || len(is) != len(vals) {
		return nil, fmt.Errorf("%w: coo lengths %d/%d/%d", ErrDimensionMismatch, len(is), len(js), len(vals))
	}
	order := make([]int, len(is))
	for k := range is {
		if is[k] < 0 || is[k] >= nrows || js[k] < 0 || js[k] >= ncols {
			return nil, fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfRange, is[k], js[k], nrows, ncols)
		}
		order[k] = k
	}
	sort.SliceStable(order, func(a, b int) bool {
		ka, kb := order[a], order[b]
		if is[ka] != is[kb] {
			return is[ka] < is[kb]
		}
		return js[ka] < js[kb]
	})

	m := NewMatrix[T](nrows, ncols)
	for _, k := range order {
		r := &m.rows[is[k]]
		last := len(r.cols) - 1
		if last >= 0 && r.cols[last] == js[k] {
			if dup != nil {
				r.vals[last] = dup(r.vals[last], vals[k])
			} else {
				r.vals[last] = vals[k]
			}
			continue
		}
		r.cols = append(r.cols, js[k])
		r.vals = append(r.vals, vals[k])
	}
	return m, nil
}

// DiagMatrix places v on the diagonal of a square matrix.
func DiagMatrix[T Number](v *Vector[T]) *Matrix[T] {
	m := NewMatrix[T](v.size, v.size)
	v.Each(func(i int, x T) {
		m.rows[i] = row[T]{cols: []int{i}, vals: []T{x}}
	})
	return m
}

// NRows returns the number of rows.
func (m *Matrix[T]) NRows() int { return m.nrows }

// NCols returns the number of columns.
func (m *Matrix[T]) NCols() int { return m.ncols }

// NVals returns the number of stored entries.
func (m *Matrix[T]) NVals() int {
	n := 0
	for i := range m.rows {
		n += len(m.rows[i].cols)
	}
	return n
}

// Get returns the entry at (i, j) and whether it is present.
func (m *Matrix[T]) Get(i, j int) (T, bool) {
	var zero T
	if i < 0 || i >= m.nrows {
		return zero, false
	}
	r := m.rows[i]
	k := sort.SearchInts(r.cols, j)
	if k < len(r.cols) && r.cols[k] == j {
		return r.vals[k], true
	}
	return zero, false
}

// SetElement stores x at (i, j).
func (m *Matrix[T]) SetElement(i, j int, x T) error {
	if i < 0 || i >= m.nrows || j < 0 || j >= m.ncols {
		return fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfRange, i, j, m.nrows, m.ncols)
	}
	r := &m.rows[i]
	k := sort.SearchInts(r.cols, j)
	if k < len(r.cols) && r.cols[k] == j {
		r.vals[k] = x
		return nil
	}
	r.cols = append(r.cols, 0)
	r.vals = append(r.vals, 0)
	copy(r.cols[k+1:], r.cols[k:])
	copy(r.vals[k+1:], r.vals[k:])
	r.cols[k], r.vals[k] = j, x
	return nil
}

// Row returns the column indices and values of row i. The slices alias the
// matrix storage and must not be modified.
func (m *Matrix[T]) Row(i int) ([]int, []T) {
	if i < 0 || i >= m.nrows {
		return nil, nil
	}
	return m.rows[i].cols, m.rows[i].vals
}

// RowNVals returns the number of entries in row i.
func (m *Matrix[T]) RowNVals(i int) int {
	if i < 0 || i >= m.nrows {
		return 0
	}
	return len(m.rows[i].cols)
}

// RowVector copies row i into a vector of size NCols.
func (m *Matrix[T]) RowVector(i int) (*Vector[T], error) {
	if i < 0 || i >= m.nrows {
		return nil, fmt.Errorf("%w: row %d of %d", ErrOutOfRange, i, m.nrows)
	}
	v := NewVector[T](m.ncols)
	r := m.rows[i]
	for k, j := range r.cols {
		v.put(j, r.vals[k])
	}
	return v, nil
}

// Each calls fn for every entry in row-major order.
func (m *Matrix[T]) Each(fn func(i, j int, x T)) {
	for i := range m.rows {
		r := m.rows[i]
		for k, j := range r.cols {
			fn(i, j, r.vals[k])
		}
	}
}

// Dup returns an independent copy of m.
func (m *Matrix[T]) Dup() *Matrix[T] {
	out := NewMatrix[T](m.nrows, m.ncols)
	for i, r := range m.rows {
		out.rows[i] = row[T]{cols: append([]int(nil), r.cols...), vals: append([]T(nil), r.vals...)}
	}
	return out
}

// Equal reports whether m and o hold the same entries.
func (m *Matrix[T]) Equal(o *Matrix[T]) bool {
	if m.nrows != o.nrows || m.ncols != o.ncols {
		return false
	}
	for i := range m.rows {
		a, b := m.rows[i], o.rows[i]
		if len(a.cols) != len(b.cols) {
			return false
		}
		for k := range a.cols {
			if a.cols[k] != b.cols[k] || a.vals[k] != b.vals[k] {
				return false
			}
		}
	}
	return true
}

// Pattern returns the structure of m as a mask over linear positions.
func (m *Matrix[T]) Pattern() *Mask {
	out := NewMask(m.nrows * m.ncols)
	m.Each(func(i, j int, _ T) { out.Set(i*m.ncols + j) })
	return out
}

// Select returns a new matrix with the entries for which pred holds.
func (m *Matrix[T]) Select(pred func(x T) bool) *Matrix[T] {
	return m.SelectIndexed(func(_, _ int, x T) bool { return pred(x) })
}

// SelectIndexed is Select with access to the entry position.
func (m *Matrix[T]) SelectIndexed(pred func(i, j int, x T) bool) *Matrix[T] {
	out := NewMatrix[T](m.nrows, m.ncols)
	for i, r := range m.rows {
		var nr row[T]
		for k, j := range r.cols {
			if pred(i, j, r.vals[k]) {
				nr.cols = append(nr.cols, j)
				nr.vals = append(nr.vals, r.vals[k])
			}
		}
		out.rows[i] = nr
	}
	return out
}

// OffDiag returns m without its diagonal entries.
func (m *Matrix[T]) OffDiag() *Matrix[T] {
	return m.SelectIndexed(func(i, j int, _ T) bool { return i != j })
}

// Diag extracts the diagonal of m as a vector of size min(nrows, ncols).
func (m *Matrix[T]) Diag() *Vector[T] {
	n := min(m.nrows, m.ncols)
	v := NewVector[T](n)
	for i := 0; i < n; i++ {
		if x, ok := m.Get(i, i); ok {
			v.put(i, x)
		}
	}
	return v
}

// Transpose returns a new ncols x nrows matrix.
func (m *Matrix[T]) Transpose() *Matrix[T] {
	out := NewMatrix[T](m.ncols, m.nrows)
	// row-major traversal keeps each output row sorted
	m.Each(func(i, j int, x T) {
		r := &out.rows[j]
		r.cols = append(r.cols, i)
		r.vals = append(r.vals, x)
	})
	return out
}

// Keep is m(mask, replace) << m: entries outside mask are deleted.
func (m *Matrix[T]) Keep(mask *Mask) {
	for i := range m.rows {
		r := &m.rows[i]
		w := 0
		for k, j := range r.cols {
			if mask.Test(i*m.ncols + j) {
				r.cols[w], r.vals[w] = j, r.vals[k]
				w++
			}
		}
		r.cols, r.vals = r.cols[:w], r.vals[:w]
	}
}

// Assign is m(mask) << src: every position set in mask takes src's entry,
// or is deleted when src has none there. Other positions are untouched.
func (m *Matrix[T]) Assign(src *Matrix[T], mask *Mask) {
	for i := range m.rows {
		m.rows[i] = assignRow(m.rows[i], src.rows[i], func(j int) bool {
			return mask.Test(i*m.ncols + j)
		})
	}
}

// assignRow merges dst and src: columns selected by in come from src,
// the rest from dst.
func assignRow[T Number](dst, src row[T], in func(j int) bool) row[T] {
	var out row[T]
	a, b := 0, 0
	for a < len(dst.cols) || b < len(src.cols) {
		switch {
		case b >= len(src.cols) || (a < len(dst.cols) && dst.cols[a] < src.cols[b]):
			if j := dst.cols[a]; !in(j) {
				out.cols = append(out.cols, j)
				out.vals = append(out.vals, dst.vals[a])
			}
			a++
		case a >= len(dst.cols) || src.cols[b] < dst.cols[a]:
			if j := src.cols[b]; in(j) {
				out.cols = append(out.cols, j)
				out.vals = append(out.vals, src.vals[b])
			}
			b++
		default: // same column
			j := dst.cols[a]
			out.cols = append(out.cols, j)
			if in(j) {
				out.vals = append(out.vals, src.vals[b])
			} else {
				out.vals = append(out.vals, dst.vals[a])
			}
			a++
			b++
		}
	}
	return out
}

// Apply replaces every stored value x by fn(x).
func (m *Matrix[T]) Apply(fn func(x T) T) {
	for i := range m.rows {
		vals := m.rows[i].vals
		for k := range vals {
			vals[k] = fn(vals[k])
		}
	}
}

// Scale multiplies every stored value by s.
func (m *Matrix[T]) Scale(s T) {
	m.Apply(func(x T) T { return x * s })
}

// LessThan evaluates m < o on the intersection of both structures.
func (m *Matrix[T]) LessThan(o *Matrix[T]) *Mask {
	out := NewMask(m.nrows * m.ncols)
	for i := range m.rows {
		a, b := m.rows[i], o.rows[i]
		p, q := 0, 0
		for p < len(a.cols) && q < len(b.cols) {
			switch {
			case a.cols[p] < b.cols[q]:
				p++
			case b.cols[q] < a.cols[p]:
				q++
			default:
				if a.vals[p] < b.vals[q] {
					out.Set(i*m.ncols + a.cols[p])
				}
				p++
				q++
			}
		}
	}
	return out
}

// Improved marks the entries of m that are absent from d or strictly
// smaller than the entry of d at the same position.
func (m *Matrix[T]) Improved(d *Matrix[T]) *Mask {
	out := m.Pattern()
	out.Difference(d.Pattern())
	return out.Union(m.LessThan(d))
}

// Mul returns m x A under sr; see MxM.
func (m *Matrix[T]) Mul(A *Matrix[T], sr Semiring[T], opts ...OpOption) (*Matrix[T], error) {
	return MxM(m, A, sr, opts...)
}

// Reduce folds every entry with mo. ok is false for an empty matrix.
func (m *Matrix[T]) Reduce(mo Monoid[T]) (acc T, ok bool) {
	m.Each(func(_, _ int, x T) {
		if !ok {
			acc, ok = x, true
			return
		}
		acc = mo.Op(acc, x)
	})
	return acc, ok
}

// RowDegrees counts the entries of every row; rows without entries are absent.
func (m *Matrix[T]) RowDegrees() *Vector[int] {
	v := NewVector[int](m.nrows)
	for i, r := range m.rows {
		if len(r.cols) > 0 {
			v.put(i, len(r.cols))
		}
	}
	return v
}

// ColDegrees counts the entries of every column; empty columns are absent.
func (m *Matrix[T]) ColDegrees() *Vector[int] {
	v := NewVector[int](m.ncols)
	m.Each(func(_, j int, _ T) {
		c, _ := v.Get(j)
		v.put(j, c+1)
	})
	return v
}

// ExpandRows scatters row k of m to row ids[k] of a new nrows x NCols matrix.
// Rows not named in ids stay empty.
func ExpandRows[T Number](m *Matrix[T], ids []int, nrows int) (*Matrix[T], error) {
	if len(ids) != m.nrows {
		return nil, fmt.Errorf("%w: %d ids for %d rows", ErrDimensionMismatch, len(ids), m.nrows)
	}
	out := NewMatrix[T](nrows, m.ncols)
	for k, i := range ids {
		if i < 0 || i >= nrows {
			return nil, fmt.Errorf("%w: row %d of %d", ErrOutOfRange, i, nrows)
		}
		r := m.rows[k]
		out.rows[i] = row[T]{cols: append([]int(nil), r.cols...), vals: append([]T(nil), r.vals...)}
	}
	return out, nil
}

func (m *Matrix[T]) String() string {
	return fmt.Sprintf("Matrix(%dx%d, nvals=%d)", m.nrows, m.ncols, m.NVals())
}
