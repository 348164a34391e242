package gofst

// VectorFst is the mutable, growable FST representation used for
// building and editing. Each state holds its own slice of outgoing
// transitions, allocated lazily on first insertion so states with no
// outgoing transitions stay cheap.
type VectorFst[W any] struct {
	start    StateId
	finals   []W
	hasFinal []bool
	trs      [][]Tr[W]

	isym *SymbolTable
	osym *SymbolTable

	semiring Semiring[W]
}

// NewVectorFst returns an empty VectorFst with no states and start
// set to NoStateId. sr is retained for operations (SetFinal's zero
// check, etc.) that need semiring-aware defaults.
func NewVectorFst[W any](sr Semiring[W]) *VectorFst[W] {
	return &VectorFst[W]{
		start:    NoStateId,
		semiring: sr,
	}
}

func (f *VectorFst[W]) Semiring() Semiring[W] { return f.semiring }

func (f *VectorFst[W]) Start() StateId { return f.start }

func (f *VectorFst[W]) IsStart(s StateId) bool { return s == f.start }

func (f *VectorFst[W]) NumStates() int { return len(f.trs) }

func (f *VectorFst[W]) NumStatesKnown() bool { return true }

func (f *VectorFst[W]) checkState(s StateId) error {
	if s < 0 || int(s) >= len(f.trs) {
		return noSuchStateError(s)
	}
	return nil
}

func (f *VectorFst[W]) FinalWeight(s StateId) (W, error) {
	if err := f.checkState(s); err != nil {
		var zero W
		return zero, err
	}
	if f.hasFinal[s] {
		return f.finals[s], nil
	}
	return f.semiring.Zero(), nil
}

func (f *VectorFst[W]) NumTrs(s StateId) (int, error) {
	if err := f.checkState(s); err != nil {
		return 0, err
	}
	return len(f.trs[s]), nil
}

func (f *VectorFst[W]) States() []StateId {
	out := make([]StateId, len(f.trs))
	for i := range out {
		out[i] = StateId(i)
	}
	return out
}

func (f *VectorFst[W]) Trs(s StateId) ([]Tr[W], error) {
	if err := f.checkState(s); err != nil {
		return nil, err
	}
	return f.trs[s], nil
}

func (f *VectorFst[W]) TrsUnchecked(s StateId) []Tr[W] { return f.trs[s] }

func (f *VectorFst[W]) AddState() StateId {
	s := StateId(len(f.trs))
	f.trs = append(f.trs, nil)
	f.finals = append(f.finals, f.semiring.Zero())
	f.hasFinal = append(f.hasFinal, false)
	return s
}

func (f *VectorFst[W]) AddStates(n int) {
	for i := 0; i < n; i++ {
		f.AddState()
	}
}

func (f *VectorFst[W]) SetStart(s StateId) error {
	if err := f.checkState(s); err != nil {
		return err
	}
	f.start = s
	return nil
}

func (f *VectorFst[W]) SetFinal(s StateId, w W) error {
	if err := f.checkState(s); err != nil {
		return err
	}
	f.finals[s] = w
	f.hasFinal[s] = true
	return nil
}

func (f *VectorFst[W]) AddTr(s StateId, t Tr[W]) error {
	if err := f.checkState(s); err != nil {
		return err
	}
	if err := f.checkState(t.Nextstate); err != nil {
		return wrapError(ErrNoSuchState, err, "AddTr: nextstate of new transition")
	}
	f.trs[s] = append(f.trs[s], t)
	return nil
}

// SetTrs replaces state s's transition sequence wholesale. The
// caller guarantees every transition's Nextstate is valid; only s
// itself is checked.
func (f *VectorFst[W]) SetTrs(s StateId, trs []Tr[W]) error {
	if err := f.checkState(s); err != nil {
		return err
	}
	f.trs[s] = trs
	return nil
}

// DelTrsIdSorted deletes the transitions at indices ids (strictly
// increasing) from state s's transition slice, preserving the
// relative order of the survivors: walk once, skip marked positions,
// and copy the rest into a new slice. An index that is out of range
// or out of order fails with ErrIndexOutOfRange and deletes nothing.
func (f *VectorFst[W]) DelTrsIdSorted(s StateId, ids []int) error {
	if err := f.checkState(s); err != nil {
		return err
	}
	if len(ids) == 0 {
		return nil
	}
	trs := f.trs[s]
	for k, id := range ids {
		if id < 0 || id >= len(trs) || (k > 0 && id <= ids[k-1]) {
			return newError(ErrIndexOutOfRange, "DelTrsIdSorted: transition index %d out of range or out of order for state %d with %d transitions", id, s, len(trs))
		}
	}
	keep := trs[:0:0]
	next := 0
	for i, t := range trs {
		if next < len(ids) && ids[next] == i {
			next++
			continue
		}
		keep = append(keep, t)
	}
	f.trs[s] = keep
	return nil
}

func (f *VectorFst[W]) DelState(s StateId) error {
	return f.DelStates([]StateId{s})
}

// DelStates removes the given states and renumbers the survivors,
// dropping any transition that targets a deleted state.
func (f *VectorFst[W]) DelStates(ss []StateId) error {
	if len(ss) == 0 {
		return nil
	}
	dead := make(map[StateId]bool, len(ss))
	for _, s := range ss {
		if err := f.checkState(s); err != nil {
			return err
		}
		dead[s] = true
	}
	oldToNew := make([]StateId, len(f.trs))
	next := StateId(0)
	for o := range f.trs {
		if dead[StateId(o)] {
			oldToNew[o] = NoStateId
			continue
		}
		oldToNew[o] = next
		next++
	}
	newTrs := make([][]Tr[W], 0, next)
	newFinals := make([]W, 0, next)
	newHasFinal := make([]bool, 0, next)
	for o := range f.trs {
		if dead[StateId(o)] {
			continue
		}
		kept := f.trs[o][:0:0]
		for _, t := range f.trs[o] {
			if dead[t.Nextstate] {
				continue
			}
			t.Nextstate = oldToNew[t.Nextstate]
			kept = append(kept, t)
		}
		newTrs = append(newTrs, kept)
		newFinals = append(newFinals, f.finals[o])
		newHasFinal = append(newHasFinal, f.hasFinal[o])
	}
	f.trs = newTrs
	f.finals = newFinals
	f.hasFinal = newHasFinal
	if f.start != NoStateId {
		if dead[f.start] {
			f.start = NoStateId
		} else {
			f.start = oldToNew[f.start]
		}
	}
	return nil
}

func (f *VectorFst[W]) ReserveStates(n int) {
	if cap(f.trs) < n {
		grown := make([][]Tr[W], len(f.trs), n)
		copy(grown, f.trs)
		f.trs = grown
		growFinals := make([]W, len(f.finals), n)
		copy(growFinals, f.finals)
		f.finals = growFinals
		growHasFinal := make([]bool, len(f.hasFinal), n)
		copy(growHasFinal, f.hasFinal)
		f.hasFinal = growHasFinal
	}
}

func (f *VectorFst[W]) ReserveTrs(s StateId, n int) {
	if int(s) >= len(f.trs) {
		return
	}
	if cap(f.trs[s]) < n {
		grown := make([]Tr[W], len(f.trs[s]), n)
		copy(grown, f.trs[s])
		f.trs[s] = grown
	}
}

func (f *VectorFst[W]) ReserveAllStates(nstates, ntrsHint int) {
	f.ReserveStates(nstates)
}

func (f *VectorFst[W]) SetInputSymbols(syms *SymbolTable)  { f.isym = syms }
func (f *VectorFst[W]) SetOutputSymbols(syms *SymbolTable) { f.osym = syms }
func (f *VectorFst[W]) InputSymbols() *SymbolTable         { return f.isym }
func (f *VectorFst[W]) OutputSymbols() *SymbolTable        { return f.osym }

// SetSymtsFrom copies other's symbol-table attachments onto f as
// snapshots, so later symbol inserts on other's tables don't show
// through.
func (f *VectorFst[W]) SetSymtsFrom(other SymbolOwner) {
	f.isym, f.osym = nil, nil
	if st := other.InputSymbols(); st != nil {
		f.isym = st.Copy()
	}
	if st := other.OutputSymbols(); st != nil {
		f.osym = st.Copy()
	}
}

var (
	_ MutableFst[TropicalWeight]   = (*VectorFst[TropicalWeight])(nil)
	_ AllocableFst[TropicalWeight] = (*VectorFst[TropicalWeight])(nil)
)
