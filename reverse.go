package gofst

// Reverse returns a new FST accepting the reverse of every path fst
// accepts, with every weight mapped through the semiring's Reverse
// operation. A single new superinitial state 0 is added; every
// original state s is renumbered s+1, the original start state
// becomes a final state of weight One, and an epsilon transition runs
// from the superinitial state to (old final state)+1 weighted by the
// reverse of that state's final weight.
//
// A first pass counts, per output state, how many reversed
// transitions will leave it (the transitions entering the original
// state, plus one epsilon transition per final state for the
// superinitial state) so the target FST's per-state transition
// slices can be reserved once instead of grown arc by arc, which
// keeps the whole construction O(V+E).
func Reverse[W any](fst ExpandedFst[W], sr Semiring[W]) (*VectorFst[W], error) {
	n := fst.NumStates()
	out := NewVectorFst[W](sr)
	out.AddStates(n + 1)
	if err := out.SetStart(0); err != nil {
		return nil, err
	}

	counts := make([]int, n+1)
	for s := 0; s < n; s++ {
		trs, err := fst.Trs(StateId(s))
		if err != nil {
			return nil, err
		}
		for _, t := range trs {
			counts[t.Nextstate+1]++
		}
		final, err := IsFinal[W](fst, sr, StateId(s))
		if err != nil {
			return nil, err
		}
		if final {
			counts[0]++
		}
	}
	for s, c := range counts {
		out.ReserveTrs(StateId(s), c)
	}

	for s := 0; s < n; s++ {
		trs, err := fst.Trs(StateId(s))
		if err != nil {
			return nil, err
		}
		oldStatePlusOne := StateId(s + 1)
		for _, t := range trs {
			reversedSrc := StateId(t.Nextstate + 1)
			rw := sr.Reverse(t.Weight)
			if err := out.AddTr(reversedSrc, NewTr(t.Ilabel, t.Olabel, rw, oldStatePlusOne)); err != nil {
				return nil, err
			}
		}
		final, err := fst.FinalWeight(StateId(s))
		if err != nil {
			return nil, err
		}
		isFinal, err := IsFinal[W](fst, sr, StateId(s))
		if err != nil {
			return nil, err
		}
		if isFinal {
			if err := out.AddTr(0, NewTr(EpsLabel, EpsLabel, sr.Reverse(final), oldStatePlusOne)); err != nil {
				return nil, err
			}
		}
	}

	if fst.Start() != NoStateId {
		if err := out.SetFinal(StateId(fst.Start()+1), sr.One()); err != nil {
			return nil, err
		}
	}
	if so, ok := any(fst).(SymbolOwner); ok {
		out.SetSymtsFrom(so)
	}
	return out, nil
}
