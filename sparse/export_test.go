package sparse

// PlusTimesForTest is the arithmetic semiring, used to check Dot values.
func PlusTimesForTest() Semiring[int] {
	return Semiring[int]{Name: "plus_times", Add: Monoid[int]{Name: "plus", Op: func(x, y int) int { return x + y }}, Mul: func(x, y int) int { return x * y }}
}
