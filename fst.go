package gofst

// CoreFst is the minimal read-only contract every FST representation
// satisfies: a start state, a final weight function, and the number
// of outgoing transitions at a state. Whether a state is final is
// decided here, centrally, so every algorithm agrees: a state is
// final iff its FinalWeight is not the semiring Zero. A present but
// Zero-valued final weight is treated as non-final.
type CoreFst[W any] interface {
	Start() StateId
	FinalWeight(s StateId) (W, error)
	NumTrs(s StateId) (int, error)
	IsStart(s StateId) bool
}

// IsFinal reports whether s is a final state of fst under sr, per the
// present-but-zero-is-non-final convention CoreFst.FinalWeight uses.
func IsFinal[W any](fst CoreFst[W], sr Semiring[W], s StateId) (bool, error) {
	w, err := fst.FinalWeight(s)
	if err != nil {
		return false, err
	}
	return !sr.IsZero(w), nil
}

// StateIterator exposes the set of states of an FST. States are
// always numbered densely from 0.
type StateIterator[W any] interface {
	CoreFst[W]
	NumStatesKnown() bool
	States() []StateId
}

// TrIterator exposes the outgoing transitions of a state.
type TrIterator[W any] interface {
	CoreFst[W]
	// Trs returns the outgoing transitions of s in an
	// implementation-defined but stable order.
	Trs(s StateId) ([]Tr[W], error)
	// TrsUnchecked is Trs without bounds checking on s; callers must
	// have already validated s via a prior StateIterator/CoreFst call.
	TrsUnchecked(s StateId) []Tr[W]
}

// ExpandedFst is an FST whose number of states is known without
// traversal.
type ExpandedFst[W any] interface {
	StateIterator[W]
	TrIterator[W]
	NumStates() int
}

// SymbolOwner is satisfied by FST representations that carry optional
// input/output symbol-table attachments. The tables are metadata: no
// algorithm's semantics depend on them, they just ride along.
type SymbolOwner interface {
	InputSymbols() *SymbolTable
	OutputSymbols() *SymbolTable
}

// MutableFst is satisfied by FST representations that can be built
// and edited incrementally, mirroring the construction surface the
// rest of the package (VectorFst) exposes to algorithms that produce
// new FSTs (Reverse, RmFinalEpsilon, Connect, ...).
type MutableFst[W any] interface {
	ExpandedFst[W]

	SetStart(s StateId) error
	SetFinal(s StateId, w W) error
	AddState() StateId
	AddStates(n int)
	DelState(s StateId) error
	DelStates(ss []StateId) error
	AddTr(s StateId, t Tr[W]) error
	// DelTrsIdSorted deletes the transitions at the given indices from
	// state s's transition list. ids must be sorted in increasing order
	// and refer to positions valid at the time of the call.
	DelTrsIdSorted(s StateId, ids []int) error
	SetTrs(s StateId, trs []Tr[W]) error

	ReserveStates(n int)
	ReserveTrs(s StateId, n int)

	SetInputSymbols(syms *SymbolTable)
	SetOutputSymbols(syms *SymbolTable)
	SetSymtsFrom(other SymbolOwner)
	SymbolOwner
}

// AllocableFst is implemented by representations that can pre-size
// their storage ahead of a bulk build, letting callers avoid repeated
// reallocation when the final size is known up front.
type AllocableFst[W any] interface {
	MutableFst[W]
	ReserveAllStates(nstates, ntrs int)
}
