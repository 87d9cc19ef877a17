package sparse_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath-sparse/sparse"
)

// TestVector_SetGetDelete covers basic entry bookkeeping and bounds checks.
func TestVector_SetGetDelete(t *testing.T) {
	v := sparse.NewVector[int64](4)
	assert.Equal(t, 0, v.NVals())

	require.NoError(t, v.SetElement(1, 7))
	require.NoError(t, v.SetElement(3, 0)) // explicit zero is an entry
	x, ok := v.Get(1)
	assert.True(t, ok)
	assert.Equal(t, int64(7), x)
	_, ok = v.Get(0)
	assert.False(t, ok, "absent entry must not read as zero")
	assert.True(t, v.Has(3))
	assert.Equal(t, []int{1, 3}, v.Indices())

	require.NoError(t, v.Delete(1))
	assert.False(t, v.Has(1))
	assert.Equal(t, 1, v.NVals())

	err := v.SetElement(4, 1)
	assert.True(t, errors.Is(err, sparse.ErrOutOfRange))
	assert.ErrorIs(t, v.Delete(-1), sparse.ErrOutOfRange)
}

// TestVector_KeepReplacesOutsideMask checks v(m, replace) << v semantics.
func TestVector_KeepReplacesOutsideMask(t *testing.T) {
	v, err := sparse.VectorFrom[int](5, []int{0, 1, 2, 3}, 9)
	require.NoError(t, err)
	m := sparse.NewMask(5)
	m.Set(1)
	m.Set(3)
	m.Set(4) // not stored in v: stays absent

	v.Keep(m)
	assert.Equal(t, []int{1, 3}, v.Indices())
}

// TestVector_Assign checks v(m) << src, including deletion where src is empty.
func TestVector_Assign(t *testing.T) {
	d := sparse.NewVector[float64](4)
	_ = d.SetElement(0, 5)
	_ = d.SetElement(1, 5)
	src := sparse.NewVector[float64](4)
	_ = src.SetElement(1, 2)
	_ = src.SetElement(2, 3)
	_ = src.SetElement(3, 4)

	m := sparse.NewMask(4)
	m.Set(0) // src absent -> deleted
	m.Set(1)
	m.Set(2)
	d.Assign(src, m)

	_, ok := d.Get(0)
	assert.False(t, ok)
	x, _ := d.Get(1)
	assert.Equal(t, 2.0, x)
	x, _ = d.Get(2)
	assert.Equal(t, 3.0, x)
	assert.False(t, d.Has(3), "position outside mask is untouched")
}

// TestVector_Improved checks the "new or strictly less" mask.
func TestVector_Improved(t *testing.T) {
	cur := sparse.NewVector[int](5)
	d := sparse.NewVector[int](5)
	_ = cur.SetElement(0, 3) // equal -> dropped
	_ = d.SetElement(0, 3)
	_ = cur.SetElement(1, 1) // better -> kept
	_ = d.SetElement(1, 2)
	_ = cur.SetElement(2, 5) // worse -> dropped
	_ = d.SetElement(2, 4)
	_ = cur.SetElement(3, 8) // new -> kept
	_ = d.SetElement(4, 1)   // only in d -> not in mask

	m := cur.Improved(d)
	assert.Equal(t, []int{1, 3}, m.Positions())
	assert.Equal(t, []int{1}, cur.LessThan(d).Positions())
}

// TestVector_SelectScaleReduce covers value selection and reductions.
func TestVector_SelectScaleReduce(t *testing.T) {
	v, _ := sparse.VectorFrom[int](6, []int{0, 2, 4}, 0)
	_ = v.SetElement(2, 2)
	_ = v.SetElement(4, 4)

	le := v.Select(func(x int) bool { return x <= 2 })
	assert.Equal(t, []int{0, 2}, le.Indices())

	v.Scale(3)
	x, _ := v.Get(4)
	assert.Equal(t, 12, x)

	mn, ok := v.Reduce(sparse.MinMonoid[int]())
	require.True(t, ok)
	assert.Equal(t, 0, mn)
	mx, _ := v.Reduce(sparse.MaxMonoid[int]())
	assert.Equal(t, 12, mx)

	_, ok = sparse.NewVector[int](3).Reduce(sparse.MinMonoid[int]())
	assert.False(t, ok)
}

// TestVector_DupIsIndependent ensures Dup deep-copies.
func TestVector_DupIsIndependent(t *testing.T) {
	v, _ := sparse.VectorFrom[int](3, []int{1}, 1)
	w := v.Dup()
	_ = w.SetElement(2, 5)
	assert.False(t, v.Has(2))
	assert.True(t, v.Equal(v.Dup()))
	assert.False(t, v.Equal(w))
}

// TestMask_SetOps covers union, difference, intersection and reductions.
func TestMask_SetOps(t *testing.T) {
	a := sparse.NewMask(8)
	b := sparse.NewMask(8)
	assert.False(t, a.Any())
	for _, p := range []int{1, 2, 3} {
		a.Set(p)
	}
	for _, p := range []int{3, 4} {
		b.Set(p)
	}
	a.Set(99) // ignored
	assert.True(t, a.Intersects(b))
	assert.Equal(t, []int{1, 2, 3, 4}, a.Clone().Union(b).Positions())
	assert.Equal(t, []int{1, 2}, a.Clone().Difference(b).Positions())
	assert.Equal(t, []int{3}, a.Clone().Intersect(b).Positions())
	assert.Equal(t, 3, a.Count())
	assert.True(t, a.Equal(a.Clone()))
	a.Clear(1)
	assert.False(t, a.Test(1))
}
