package gofst

import "math"

// ProbabilityWeight is the weight type of the Probability semiring
// (ℝ≥0, +, ×, 0, 1): Plus adds probabilities, Times multiplies them.
// Unlike Tropical/Boolean/Integer, Plus is not idempotent, so
// ShortestDistance over ProbabilityWeight uses a shortest-first
// priority queue rather than FIFO relaxation.
type ProbabilityWeight float64

// ProbabilitySemiring implements Semiring[ProbabilityWeight],
// WeaklyDivisible[ProbabilityWeight] and Quantizer[ProbabilityWeight].
type ProbabilitySemiring struct{}

func (ProbabilitySemiring) Zero() ProbabilityWeight { return 0 }
func (ProbabilitySemiring) One() ProbabilityWeight  { return 1 }

func (ProbabilitySemiring) Plus(a, b ProbabilityWeight) ProbabilityWeight { return a + b }
func (ProbabilitySemiring) Times(a, b ProbabilityWeight) ProbabilityWeight {
	return a * b
}

func (ProbabilitySemiring) IsZero(a ProbabilityWeight) bool { return a == 0 }

func (ProbabilitySemiring) Reverse(a ProbabilityWeight) ProbabilityWeight { return a }

func (ProbabilitySemiring) Equal(a, b ProbabilityWeight) bool { return a == b }

func (s ProbabilitySemiring) Divide(a, b ProbabilityWeight) (ProbabilityWeight, error) {
	if s.IsZero(b) {
		return 0, newError(ErrDivisionByZero, "probability divide by zero")
	}
	return a / b, nil
}

func (ProbabilitySemiring) Quantize(a ProbabilityWeight, delta float64) ProbabilityWeight {
	if delta <= 0 {
		return a
	}
	return ProbabilityWeight(math.Round(float64(a)/delta) * delta)
}

func (ProbabilitySemiring) commutativeMarker() {}

var (
	_ Semiring[ProbabilityWeight]        = ProbabilitySemiring{}
	_ WeaklyDivisible[ProbabilityWeight] = ProbabilitySemiring{}
	_ Quantizer[ProbabilityWeight]       = ProbabilitySemiring{}
	_ Commutative[ProbabilityWeight]     = ProbabilitySemiring{}
	_ Equaler[ProbabilityWeight]         = ProbabilitySemiring{}
)
