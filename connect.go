package gofst

import "github.com/golang/glog"

// Connect trims fst in place, deleting every state that is not both
// reachable from the start state and able to reach a final state.
func Connect[W any](fst MutableFst[W], sr Semiring[W]) error {
	info, err := ComputeSccInfo[W](fst, sr)
	if err != nil {
		return err
	}
	n := fst.NumStates()
	var dead []StateId
	for s := 0; s < n; s++ {
		sid := StateId(s)
		if !info.Access.Contains(uint32(s)) || !info.CoAccess.Contains(uint32(s)) {
			dead = append(dead, sid)
		}
	}
	if glog.V(1) {
		glog.Infof("connect: pruning %d of %d states", len(dead), n)
	}
	if len(dead) == 0 {
		return nil
	}
	return fst.DelStates(dead)
}
