package gofst

import "math"

// TropicalWeight is the weight type of the Tropical semiring
// (ℝ∪{+∞}, min, +, +∞, 0). It is the semiring shortest-path /
// edit-distance FSTs are built over; it is idempotent (min(a,a)=a)
// and self-reverse. Weights are float32 negative log-probability
// style costs with +inf standing for an impossible transition,
// keeping the OpenFst-standard min-plus orientation.
type TropicalWeight float32

// TropicalSemiring implements Semiring[TropicalWeight],
// WeaklyDivisible[TropicalWeight], Idempotent[TropicalWeight] and
// Quantizer[TropicalWeight].
type TropicalSemiring struct{}

func (TropicalSemiring) Zero() TropicalWeight { return TropicalWeight(math.Inf(1)) }
func (TropicalSemiring) One() TropicalWeight  { return 0 }

func (TropicalSemiring) Plus(a, b TropicalWeight) TropicalWeight {
	if a < b {
		return a
	}
	return b
}

func (TropicalSemiring) Times(a, b TropicalWeight) TropicalWeight { return a + b }

func (s TropicalSemiring) IsZero(a TropicalWeight) bool {
	return math.IsInf(float64(a), 1)
}

func (TropicalSemiring) Reverse(a TropicalWeight) TropicalWeight { return a }

func (TropicalSemiring) Equal(a, b TropicalWeight) bool { return a == b }

func (s TropicalSemiring) Divide(a, b TropicalWeight) (TropicalWeight, error) {
	if s.IsZero(b) {
		return 0, newError(ErrDivisionByZero, "tropical divide by zero")
	}
	return a - b, nil
}

func (TropicalSemiring) Quantize(a TropicalWeight, delta float64) TropicalWeight {
	if math.IsInf(float64(a), 0) {
		return a
	}
	if delta <= 0 {
		return a
	}
	return TropicalWeight(math.Round(float64(a)/delta) * delta)
}

func (TropicalSemiring) idempotentMarker()  {}
func (TropicalSemiring) commutativeMarker() {}

var (
	_ Semiring[TropicalWeight]        = TropicalSemiring{}
	_ WeaklyDivisible[TropicalWeight] = TropicalSemiring{}
	_ Idempotent[TropicalWeight]      = TropicalSemiring{}
	_ Quantizer[TropicalWeight]       = TropicalSemiring{}
	_ Commutative[TropicalWeight]     = TropicalSemiring{}
	_ Equaler[TropicalWeight]         = TropicalSemiring{}
)
