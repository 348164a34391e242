package gofst

import "math"

// IntegerWeight is the weight type of the (min, +) semiring over the
// integers, used for counting the number of transitions/length of the
// shortest path in an unweighted sense. Zero is represented as
// math.MaxInt64 by convention (there is no +inf in Z).
type IntegerWeight int64

const integerZero = IntegerWeight(math.MaxInt64)

// IntegerSemiring implements Semiring[IntegerWeight] and
// Idempotent[IntegerWeight].
type IntegerSemiring struct{}

func (IntegerSemiring) Zero() IntegerWeight { return integerZero }
func (IntegerSemiring) One() IntegerWeight  { return 0 }

func (IntegerSemiring) Plus(a, b IntegerWeight) IntegerWeight {
	if a < b {
		return a
	}
	return b
}

func (s IntegerSemiring) Times(a, b IntegerWeight) IntegerWeight {
	if s.IsZero(a) || s.IsZero(b) {
		return integerZero
	}
	return a + b
}

func (IntegerSemiring) IsZero(a IntegerWeight) bool { return a == integerZero }

func (IntegerSemiring) Reverse(a IntegerWeight) IntegerWeight { return a }

func (IntegerSemiring) Equal(a, b IntegerWeight) bool { return a == b }

func (IntegerSemiring) idempotentMarker()  {}
func (IntegerSemiring) commutativeMarker() {}

var (
	_ Semiring[IntegerWeight]    = IntegerSemiring{}
	_ Idempotent[IntegerWeight]  = IntegerSemiring{}
	_ Commutative[IntegerWeight] = IntegerSemiring{}
	_ Equaler[IntegerWeight]     = IntegerSemiring{}
)
