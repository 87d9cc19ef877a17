// SPDX-License-Identifier: MIT

package sparse

// Number is the value domain of vectors and matrices.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Monoid is an associative binary operator. Reductions over an empty
// container have no value, so no identity element is stored.
type Monoid[T Number] struct {
	Name string
	Op   func(x, y T) T
}

// Semiring replaces (+, *) in a matrix product: Add aggregates the products
// produced by Mul for the same output position.
type Semiring[T Number] struct {
	Name string
	Add  Monoid[T]
	Mul  func(x, y T) T
}

// MinMonoid returns min(x, y).
func MinMonoid[T Number]() Monoid[T] {
	return Monoid[T]{Name: "min", Op: func(x, y T) T {
		if y < x {
			return y
		}
		return x
	}}
}

// MaxMonoid returns max(x, y).
func MaxMonoid[T Number]() Monoid[T] {
	return Monoid[T]{Name: "max", Op: func(x, y T) T {
		if y > x {
			return y
		}
		return x
	}}
}

// AnyMonoid keeps whichever operand it saw first.
func AnyMonoid[T Number]() Monoid[T] {
	return Monoid[T]{Name: "any", Op: func(x, _ T) T { return x }}
}

// MinPlus is the tropical semiring used for shortest paths.
func MinPlus[T Number]() Semiring[T] {
	return Semiring[T]{
		Name: "min_plus",
		Add:  MinMonoid[T](),
		Mul:  func(x, y T) T { return x + y },
	}
}

// AnyPair only records existence: every product is 1 and any of them wins.
// It is the reachability semiring used by level BFS.
func AnyPair[T Number]() Semiring[T] {
	return Semiring[T]{
		Name: "any_pair",
		Add:  AnyMonoid[T](),
		Mul:  func(_, _ T) T { return 1 },
	}
}

// OpOption configures an output mask for multiply-accumulate kernels.
type OpOption func(*opConfig)

type opConfig struct {
	mask       *Mask
	complement bool
}

// WithMask restricts the output of a product to the positions set in m.
func WithMask(m *Mask) OpOption {
	return func(c *opConfig) { c.mask = m }
}

// WithComplement inverts the mask given by WithMask: only positions NOT set
// in it are written.
func WithComplement() OpOption {
	return func(c *opConfig) { c.complement = true }
}

func gatherOpts(opts []OpOption) opConfig {
	var c opConfig
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// allows reports whether the output position p may be written.
func (c opConfig) allows(p int) bool {
	if c.mask == nil {
		return true
	}
	return c.mask.Test(p) != c.complement
}
