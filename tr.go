package gofst

// Tr is a single weighted transition: consume Ilabel, emit Olabel,
// pay Weight, and move to Nextstate. Tr values are immutable once
// observed by an algorithm; Nextstate must refer to a valid state of
// the owning FST whenever the Tr is read.
type Tr[W any] struct {
	Ilabel    Label
	Olabel    Label
	Weight    W
	Nextstate StateId
}

// NewTr constructs a Tr. It exists mostly so call sites read the same
// way VectorFst.AddTr / ConstFst's packed array construction do.
func NewTr[W any](ilabel, olabel Label, weight W, nextstate StateId) Tr[W] {
	return Tr[W]{Ilabel: ilabel, Olabel: olabel, Weight: weight, Nextstate: nextstate}
}
