package gofst

// TrFilter decides whether DfsVisit should follow a given transition.
type TrFilter[W any] interface {
	Accept(t Tr[W]) bool
}

// AnyTrFilter accepts every transition.
type AnyTrFilter[W any] struct{}

func (AnyTrFilter[W]) Accept(Tr[W]) bool { return true }

// EpsilonTrFilter accepts only transitions that are epsilon on both
// tapes, restricting DfsVisit to epsilon-only paths.
type EpsilonTrFilter[W any] struct{}

func (EpsilonTrFilter[W]) Accept(t Tr[W]) bool {
	return t.Ilabel == EpsLabel && t.Olabel == EpsLabel
}

var (
	_ TrFilter[TropicalWeight] = AnyTrFilter[TropicalWeight]{}
	_ TrFilter[TropicalWeight] = EpsilonTrFilter[TropicalWeight]{}
)
