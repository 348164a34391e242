package gofst

// RmFinalEpsilon removes epsilon transitions into final states that
// have no other continuation, folding their weight into the final
// weight of the source state. This only ever shortens epsilon-only
// suffixes of paths; it does not implement general epsilon removal.
//
// A final state s' is absorbable when none of its successors is
// coaccessible: every path through s' ends at s', so an epsilon
// transition s -(EPS,EPS,w)-> s' contributes exactly w ⊗ final[s'] to
// the language and can be folded into final[s]. Final states that
// still have a live continuation are left alone, which is what keeps
// paths whose only continuation is a non-epsilon transition intact
// and makes the transform idempotent. The trailing Connect prunes
// whatever the folding leaves unreachable or dead.
func RmFinalEpsilon[W any](fst MutableFst[W], sr Semiring[W]) error {
	n := fst.NumStates()
	info, err := ComputeSccInfo[W](fst, sr)
	if err != nil {
		return err
	}

	absorbable := make([]bool, n)
	for s := 0; s < n; s++ {
		sid := StateId(s)
		final, err := IsFinal[W](fst, sr, sid)
		if err != nil {
			return err
		}
		if !final {
			continue
		}
		trs, err := fst.Trs(sid)
		if err != nil {
			return err
		}
		futureCoaccess := false
		for _, t := range trs {
			if info.CoAccess.Contains(uint32(t.Nextstate)) {
				futureCoaccess = true
				break
			}
		}
		absorbable[s] = !futureCoaccess
	}

	for s := 0; s < n; s++ {
		sid := StateId(s)
		trs, err := fst.Trs(sid)
		if err != nil {
			return err
		}
		acc, err := fst.FinalWeight(sid)
		if err != nil {
			return err
		}
		var toDelete []int
		for i, t := range trs {
			if t.Ilabel == EpsLabel && t.Olabel == EpsLabel && absorbable[t.Nextstate] {
				targetFinal, err := fst.FinalWeight(t.Nextstate)
				if err != nil {
					return err
				}
				acc = sr.Plus(acc, sr.Times(targetFinal, t.Weight))
				toDelete = append(toDelete, i)
			}
		}
		if len(toDelete) > 0 {
			if err := fst.SetFinal(sid, acc); err != nil {
				return err
			}
			if err := fst.DelTrsIdSorted(sid, toDelete); err != nil {
				return err
			}
		}
	}

	return Connect[W](fst, sr)
}
