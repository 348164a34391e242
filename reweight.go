package gofst

import "github.com/golang/glog"

// ReweightType selects which direction Reweight redistributes weight
// mass in, matching the two conventions Mohri's reweighting transform
// supports.
type ReweightType int

const (
	// ReweightToInitial concentrates weight as close to the start
	// state as each transition's potential allows.
	ReweightToInitial ReweightType = iota
	// ReweightToFinal concentrates weight as close to the final
	// states as each transition's potential allows.
	ReweightToFinal
)

// Reweight transforms every transition weight and final weight of fst
// in place given a potential v[s] for each state, following Mohri's
// general reweighting identity: toward the initial state a transition
// s->u of weight w becomes (w ⊗ v[u]) ⊘ v[s] and final[s] becomes
// final[s] ⊘ v[s]; toward the final states it becomes
// (v[s] ⊗ w) ⊘ v[u] and final[s] becomes v[s] ⊗ final[s]. States
// whose potential is Zero are disconnected from the direction's
// source set and are left untouched, as are transitions into such
// states.
//
// The resulting FST is weight-equivalent to the original: the total
// weight of every complete path is unchanged, only how it is
// distributed along the path differs. Toward the initial state the
// telescoping leaves a factor of v[start] unaccounted for, so the
// start state's outgoing transitions and final weight are multiplied
// by it after the main pass.
func Reweight[W any](fst MutableFst[W], wd WeaklyDivisible[W], potentials []W, rt ReweightType) error {
	n := fst.NumStates()
	if len(potentials) != n {
		return newError(ErrInvalidFormat, "Reweight: %d potentials for %d states", len(potentials), n)
	}
	for s := 0; s < n; s++ {
		sid := StateId(s)
		vs := potentials[s]
		if wd.IsZero(vs) {
			continue
		}
		final, err := fst.FinalWeight(sid)
		if err != nil {
			return err
		}
		var newFinal W
		switch rt {
		case ReweightToInitial:
			newFinal, err = wd.Divide(final, vs)
			if err != nil {
				return err
			}
		case ReweightToFinal:
			newFinal = wd.Times(vs, final)
		}
		if err := fst.SetFinal(sid, newFinal); err != nil {
			return err
		}

		trs, err := fst.Trs(sid)
		if err != nil {
			return err
		}
		newTrs := make([]Tr[W], len(trs))
		for i, t := range trs {
			w := t.Weight
			vu := potentials[t.Nextstate]
			if !wd.IsZero(vu) {
				switch rt {
				case ReweightToInitial:
					w, err = wd.Divide(wd.Times(t.Weight, vu), vs)
				case ReweightToFinal:
					w, err = wd.Divide(wd.Times(vs, t.Weight), vu)
				}
				if err != nil {
					return err
				}
			}
			newTrs[i] = Tr[W]{Ilabel: t.Ilabel, Olabel: t.Olabel, Weight: w, Nextstate: t.Nextstate}
		}
		if err := fst.SetTrs(sid, newTrs); err != nil {
			return err
		}
	}

	if rt == ReweightToInitial && fst.Start() != NoStateId {
		start := fst.Start()
		vstart := potentials[start]
		if !wd.IsZero(vstart) {
			trs, err := fst.Trs(start)
			if err != nil {
				return err
			}
			restored := make([]Tr[W], len(trs))
			for i, t := range trs {
				restored[i] = Tr[W]{Ilabel: t.Ilabel, Olabel: t.Olabel, Weight: wd.Times(vstart, t.Weight), Nextstate: t.Nextstate}
			}
			if err := fst.SetTrs(start, restored); err != nil {
				return err
			}
			final, err := fst.FinalWeight(start)
			if err != nil {
				return err
			}
			if err := fst.SetFinal(start, wd.Times(vstart, final)); err != nil {
				return err
			}
		}
	}
	return nil
}

// PushWeights computes the potentials that pull as much weight as
// possible toward the start state (rt == ReweightToInitial, the usual
// "push weights" operation) or toward the final states (rt ==
// ReweightToFinal) and applies Reweight with them. The FST must have
// weakly divisible weights for the transform to be invertible.
func PushWeights[W any](fst MutableFst[W], wd WeaklyDivisible[W], rt ReweightType) error {
	var d []W
	var err error
	if rt == ReweightToInitial {
		// The toward-initial potentials come from relaxing the reversed
		// graph without mapping weights through Reverse, which is only
		// sound when Reverse is the identity.
		if _, ok := any(wd).(Commutative[W]); !ok {
			return newError(ErrReverseNotInvolutive, "push to initial requires a semiring whose Reverse is the identity")
		}
		d, err = ShortestDistanceToFinal[W](fst, wd)
	} else {
		d, err = ShortestDistance[W](fst, wd)
	}
	if err != nil {
		return err
	}
	if glog.V(1) {
		glog.Infof("push_weights: computed %d potentials, direction=%v", len(d), rt)
	}
	return Reweight(fst, wd, d, rt)
}
