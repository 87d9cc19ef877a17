// SPDX-License-Identifier: MIT

package sparse

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// Vector is a sparse vector stored as a bitmap: a dense value slice plus a
// presence bit per position. Values at absent positions are meaningless.
type Vector[T Number] struct {
	size int
	vals []T
	set  *bitset.BitSet
}

// NewVector returns an empty vector of the given size.
func NewVector[T Number](size int) *Vector[T] {
	if size < 0 {
		panic(panicNegativeDim)
	}
	return &Vector[T]{size: size, vals: make([]T, size), set: bitset.New(uint(size))}
}

// VectorFrom builds a vector holding x at each of the given indices.
func VectorFrom[T Number](size int, indices []int, x T) (*Vector[T], error) {
	v := NewVector[T](size)
	for _, i := range indices {
		if err := v.SetElement(i, x); err != nil {
			return nil, err
		}
	}
	return v, nil
}

// Size returns the dimension of v.
func (v *Vector[T]) Size() int { return v.size }

// NVals returns the number of stored entries.
func (v *Vector[T]) NVals() int { return int(v.set.Count()) }

// Get returns the entry at i and whether it is present.
func (v *Vector[T]) Get(i int) (T, bool) {
	var zero T
	if i < 0 || i >= v.size || !v.set.Test(uint(i)) {
		return zero, false
	}
	return v.vals[i], true
}

// Has reports whether an entry is stored at i.
func (v *Vector[T]) Has(i int) bool {
	return i >= 0 && v.set.Test(uint(i))
}

// SetElement stores x at i.
func (v *Vector[T]) SetElement(i int, x T) error {
	if i < 0 || i >= v.size {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrOutOfRange, i, v.size)
	}
	v.put(i, x)
	return nil
}

// Delete removes the entry at i, if any.
func (v *Vector[T]) Delete(i int) error {
	if i < 0 || i >= v.size {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrOutOfRange, i, v.size)
	}
	v.set.Clear(uint(i))
	v.vals[i] = 0
	return nil
}

// Clear removes every entry.
func (v *Vector[T]) Clear() {
	v.set.ClearAll()
	clear(v.vals)
}

// Dup returns an independent copy of v.
func (v *Vector[T]) Dup() *Vector[T] {
	vals := make([]T, v.size)
	copy(vals, v.vals)
	return &Vector[T]{size: v.size, vals: vals, set: v.set.Clone()}
}

// Each calls fn for every entry in ascending index order.
func (v *Vector[T]) Each(fn func(i int, x T)) {
	for i, ok := v.set.NextSet(0); ok; i, ok = v.set.NextSet(i + 1) {
		fn(int(i), v.vals[i])
	}
}

// Indices returns the positions holding an entry, ascending.
func (v *Vector[T]) Indices() []int {
	out := make([]int, 0, v.NVals())
	v.Each(func(i int, _ T) { out = append(out, i) })
	return out
}

// Pattern returns the structure of v as a mask (unary "one" into bool).
func (v *Vector[T]) Pattern() *Mask {
	return &Mask{size: v.size, bits: v.set.Clone()}
}

// Equal reports whether v and o hold the same entries.
func (v *Vector[T]) Equal(o *Vector[T]) bool {
	if v.size != o.size || !v.set.Equal(o.set) {
		return false
	}
	for i, ok := v.set.NextSet(0); ok; i, ok = v.set.NextSet(i + 1) {
		if v.vals[i] != o.vals[i] {
			return false
		}
	}
	return true
}

// Select returns a new vector with the entries for which pred holds.
func (v *Vector[T]) Select(pred func(x T) bool) *Vector[T] {
	out := NewVector[T](v.size)
	v.Each(func(i int, x T) {
		if pred(x) {
			out.put(i, x)
		}
	})
	return out
}

// Keep is v(m, replace) << v: entries outside m are deleted, entries inside
// m are left untouched.
func (v *Vector[T]) Keep(m *Mask) {
	v.set.InPlaceIntersection(m.bits)
}

// Assign is v(m) << src: every position set in m takes src's entry, or is
// deleted when src has none there. Positions outside m are not touched.
func (v *Vector[T]) Assign(src *Vector[T], m *Mask) {
	m.Each(func(i int) {
		if i >= v.size {
			return
		}
		if x, ok := src.Get(i); ok {
			v.put(i, x)
			return
		}
		v.set.Clear(uint(i))
	})
}

// AssignScalar is v(m) << x.
func (v *Vector[T]) AssignScalar(m *Mask, x T) {
	m.Each(func(i int) {
		if i < v.size {
			v.put(i, x)
		}
	})
}

// Apply replaces every stored value x by fn(x).
func (v *Vector[T]) Apply(fn func(x T) T) {
	for i, ok := v.set.NextSet(0); ok; i, ok = v.set.NextSet(i + 1) {
		v.vals[i] = fn(v.vals[i])
	}
}

// Scale multiplies every stored value by s.
func (v *Vector[T]) Scale(s T) {
	v.Apply(func(x T) T { return x * s })
}

// LessThan evaluates u < w on the intersection of both structures and
// returns the positions where it holds.
func (v *Vector[T]) LessThan(w *Vector[T]) *Mask {
	out := NewMask(v.size)
	both := v.set.Intersection(w.set)
	for i, ok := both.NextSet(0); ok; i, ok = both.NextSet(i + 1) {
		if v.vals[i] < w.vals[i] {
			out.bits.Set(i)
		}
	}
	return out
}

// Improved marks the entries of v that are new with respect to d or strictly
// smaller than d's entry at the same position. It is one(v) followed by
// second-accumulating v < d.
func (v *Vector[T]) Improved(d *Vector[T]) *Mask {
	m := v.Pattern()
	m.bits.InPlaceDifference(d.set)
	return m.Union(v.LessThan(d))
}

// Mul returns v x A under sr; see VxM.
func (v *Vector[T]) Mul(A *Matrix[T], sr Semiring[T], opts ...OpOption) (*Vector[T], error) {
	return VxM(v, A, sr, opts...)
}

// Reduce folds every entry with mo. ok is false for an empty vector.
func (v *Vector[T]) Reduce(mo Monoid[T]) (acc T, ok bool) {
	v.Each(func(_ int, x T) {
		if !ok {
			acc, ok = x, true
			return
		}
		acc = mo.Op(acc, x)
	})
	return acc, ok
}

func (v *Vector[T]) put(i int, x T) {
	v.vals[i] = x
	v.set.Set(uint(i))
}

func (v *Vector[T]) String() string {
	return fmt.Sprintf("Vector(size=%d, nvals=%d)", v.size, v.NVals())
}
