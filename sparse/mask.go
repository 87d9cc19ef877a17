// SPDX-License-Identifier: MIT

package sparse

import "github.com/bits-and-blooms/bitset"

// Mask is a boolean container that only records its true positions.
// False and missing entries are indistinguishable to every consumer in this
// package: value masks and logical-or reductions both ignore them.
//
// A Mask over a Matrix uses the linear position i*ncols+j.
type Mask struct {
	size int
	bits *bitset.BitSet
}

// NewMask returns an all-false mask over size positions.
func NewMask(size int) *Mask {
	if size < 0 {
		panic(panicNegativeDim)
	}
	return &Mask{size: size, bits: bitset.New(uint(size))}
}

// Size returns the number of addressable positions.
func (m *Mask) Size() int { return m.size }

// Set marks position p true. Out-of-range positions are ignored.
func (m *Mask) Set(p int) {
	if p < 0 || p >= m.size {
		return
	}
	m.bits.Set(uint(p))
}

// Clear marks position p false.
func (m *Mask) Clear(p int) {
	if p < 0 || p >= m.size {
		return
	}
	m.bits.Clear(uint(p))
}

// Test reports whether position p is true.
func (m *Mask) Test(p int) bool {
	if p < 0 {
		return false
	}
	return m.bits.Test(uint(p))
}

// Count returns the number of true positions.
func (m *Mask) Count() int { return int(m.bits.Count()) }

// Any is the logical-or reduction of the mask.
func (m *Mask) Any() bool { return m.bits.Any() }

// Each calls fn for every true position in ascending order.
func (m *Mask) Each(fn func(p int)) {
	for i, ok := m.bits.NextSet(0); ok; i, ok = m.bits.NextSet(i + 1) {
		fn(int(i))
	}
}

// Positions returns the true positions in ascending order.
func (m *Mask) Positions() []int {
	out := make([]int, 0, m.Count())
	m.Each(func(p int) { out = append(out, p) })
	return out
}

// Clone returns an independent copy.
func (m *Mask) Clone() *Mask {
	return &Mask{size: m.size, bits: m.bits.Clone()}
}

// Union sets every position that is true in o. It returns m.
func (m *Mask) Union(o *Mask) *Mask {
	m.bits.InPlaceUnion(o.bits)
	return m
}

// Intersect clears every position that is false in o. It returns m.
func (m *Mask) Intersect(o *Mask) *Mask {
	m.bits.InPlaceIntersection(o.bits)
	return m
}

// Difference clears every position that is true in o. It returns m.
func (m *Mask) Difference(o *Mask) *Mask {
	m.bits.InPlaceDifference(o.bits)
	return m
}

// Intersects reports whether m and o share a true position.
func (m *Mask) Intersects(o *Mask) bool {
	return m.bits.IntersectionCardinality(o.bits) > 0
}

// Equal reports whether m and o have the same size and true positions.
func (m *Mask) Equal(o *Mask) bool {
	if m.size != o.size {
		return false
	}
	return m.Count() == o.Count() && m.bits.IntersectionCardinality(o.bits) == uint(m.Count())
}
