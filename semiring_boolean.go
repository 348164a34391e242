package gofst

// BooleanWeight is the weight type of the Boolean semiring: Plus is
// OR, Times is AND. The semiring is idempotent and self-reverse.
type BooleanWeight bool

// BooleanSemiring implements Semiring[BooleanWeight], Star[BooleanWeight]
// and Idempotent[BooleanWeight]. It has no state of its own.
type BooleanSemiring struct{}

func (BooleanSemiring) Zero() BooleanWeight { return false }
func (BooleanSemiring) One() BooleanWeight  { return true }

func (BooleanSemiring) Plus(a, b BooleanWeight) BooleanWeight  { return a || b }
func (BooleanSemiring) Times(a, b BooleanWeight) BooleanWeight { return a && b }
func (BooleanSemiring) IsZero(a BooleanWeight) bool            { return !bool(a) }
func (BooleanSemiring) Reverse(a BooleanWeight) BooleanWeight  { return a }
func (BooleanSemiring) Equal(a, b BooleanWeight) bool          { return a == b }

// Closure(a) = One ⊕ a ⊕ a^2 ⊕ ... = true regardless of a, since
// Plus is OR and One is true.
func (BooleanSemiring) Closure(BooleanWeight) BooleanWeight { return true }

func (BooleanSemiring) idempotentMarker()  {}
func (BooleanSemiring) commutativeMarker() {}

var (
	_ Semiring[BooleanWeight]    = BooleanSemiring{}
	_ Star[BooleanWeight]        = BooleanSemiring{}
	_ Idempotent[BooleanWeight]  = BooleanSemiring{}
	_ Commutative[BooleanWeight] = BooleanSemiring{}
	_ Equaler[BooleanWeight]     = BooleanSemiring{}
)
