// SPDX-License-Identifier: MIT

package builder

import (
	"math/rand"
	"strconv"

	"github.com/katalvlaran/lvlath-sparse/sparse"
)

// IDFn names the vertex with index idx.
type IDFn func(idx int) string

// WeightFn draws the weight of the next edge. rng is nil when the builder has
// no random source.
type WeightFn[W sparse.Number] func(rng *rand.Rand) W

// BuilderOption configures a BuildGraph run.
type BuilderOption[W sparse.Number] func(*builderConfig[W])

type builderConfig[W sparse.Number] struct {
	idFn     IDFn
	rng      *rand.Rand
	weightFn WeightFn[W]
}

func newBuilderConfig[W sparse.Number](opts ...BuilderOption[W]) builderConfig[W] {
	cfg := builderConfig[W]{
		idFn:     DefaultIDFn,
		weightFn: ConstantWeight[W](1),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// DefaultIDFn returns the decimal index: "0", "1", ...
func DefaultIDFn(idx int) string { return strconv.Itoa(idx) }

// WithIDScheme replaces the vertex naming function. nil is ignored.
func WithIDScheme[W sparse.Number](fn IDFn) BuilderOption[W] {
	return func(c *builderConfig[W]) {
		if fn != nil {
			c.idFn = fn
		}
	}
}

// WithSeed attaches a deterministic random source.
func WithSeed[W sparse.Number](seed int64) BuilderOption[W] {
	return func(c *builderConfig[W]) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand attaches a caller-owned random source.
func WithRand[W sparse.Number](r *rand.Rand) BuilderOption[W] {
	return func(c *builderConfig[W]) { c.rng = r }
}

// WithWeightFn sets the weight policy. nil is ignored.
func WithWeightFn[W sparse.Number](fn WeightFn[W]) BuilderOption[W] {
	return func(c *builderConfig[W]) {
		if fn != nil {
			c.weightFn = fn
		}
	}
}

// WithUniformWeights draws integer-valued weights uniformly from [lo, hi].
// Without a random source every edge gets lo.
func WithUniformWeights[W sparse.Number](lo, hi int) BuilderOption[W] {
	return WithWeightFn[W](func(rng *rand.Rand) W {
		if rng == nil || hi <= lo {
			return W(lo)
		}
		return W(lo + rng.Intn(hi-lo+1))
	})
}

// ConstantWeight gives every edge the value w.
func ConstantWeight[W sparse.Number](w W) WeightFn[W] {
	return func(*rand.Rand) W { return w }
}
