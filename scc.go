package gofst

import "github.com/RoaringBitmap/roaring/v2"

// SccInfo bundles the three connectivity facts Connect and
// RmFinalEpsilon need about an FST: which states are reachable from
// the start state (access), which states can reach a final state
// (coaccess), and the strongly connected component each state
// belongs to. access/coaccess are kept as roaring bitmaps rather than
// []bool since both passes only ever test or set individual states
// and an FST's reachable set is typically much smaller than its full
// state space.
type SccInfo struct {
	Access   *roaring.Bitmap
	CoAccess *roaring.Bitmap
	Scc      []int
	NumSccs  int
}

// ComputeSccInfo computes access, coaccess and SCC membership for
// every state of fst in three linear passes: a DFS from the start
// state for Access, an iterative Tarjan pass over the whole state
// space for Scc, and a reverse-adjacency DFS from the final states
// for CoAccess.
func ComputeSccInfo[W any](fst TrIterator[W], sr Semiring[W]) (*SccInfo, error) {
	n, err := numStatesOf[W](fst)
	if err != nil {
		return nil, err
	}

	access, err := computeAccess(fst, n)
	if err != nil {
		return nil, err
	}

	scc, numSccs, err := computeScc(fst, n)
	if err != nil {
		return nil, err
	}

	coaccess, err := computeCoAccess(fst, sr, n)
	if err != nil {
		return nil, err
	}

	return &SccInfo{Access: access, CoAccess: coaccess, Scc: scc, NumSccs: numSccs}, nil
}

// accessVisitor is a DfsVisitor that simply records every state
// reached from the traversal's roots; run with access=true, DfsVisit
// only roots the traversal at the start state, so the bitmap it fills
// is exactly the access set.
type accessVisitor[W any] struct {
	bm *roaring.Bitmap
}

func (*accessVisitor[W]) InitVisit() {}
func (v *accessVisitor[W]) InitState(s StateId, root StateId) bool {
	v.bm.Add(uint32(s))
	return true
}
func (*accessVisitor[W]) TreeTr(StateId, Tr[W]) bool           { return true }
func (*accessVisitor[W]) BackTr(StateId, Tr[W]) bool           { return true }
func (*accessVisitor[W]) ForwardOrCrossTr(StateId, Tr[W]) bool { return true }
func (*accessVisitor[W]) FinishState(StateId, StateId)         {}
func (*accessVisitor[W]) FinishVisit()                         {}

func computeAccess[W any](fst TrIterator[W], n int) (*roaring.Bitmap, error) {
	bm := roaring.New()
	if fst.Start() == NoStateId {
		return bm, nil
	}
	visitor := &accessVisitor[W]{bm: bm}
	if err := DfsVisit[W](fst, visitor, AnyTrFilter[W]{}, true); err != nil {
		return nil, err
	}
	return bm, nil
}

func computeCoAccess[W any](fst TrIterator[W], sr Semiring[W], n int) (*roaring.Bitmap, error) {
	rev := make([][]StateId, n)
	for s := 0; s < n; s++ {
		trs, err := fst.Trs(StateId(s))
		if err != nil {
			return nil, err
		}
		for _, t := range trs {
			rev[t.Nextstate] = append(rev[t.Nextstate], StateId(s))
		}
	}

	bm := roaring.New()
	stack := []StateId{}
	for s := 0; s < n; s++ {
		final, err := IsFinal[W](fst, sr, StateId(s))
		if err != nil {
			return nil, err
		}
		if final && !bm.Contains(uint32(s)) {
			bm.Add(uint32(s))
			stack = append(stack, StateId(s))
		}
	}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, p := range rev[s] {
			if !bm.Contains(uint32(p)) {
				bm.Add(uint32(p))
				stack = append(stack, p)
			}
		}
	}
	return bm, nil
}

// computeScc assigns every state an SCC id via an iterative Tarjan
// strongly-connected-components pass.
func computeScc[W any](fst TrIterator[W], n int) ([]int, int, error) {
	index := make([]int, n)
	lowlink := make([]int, n)
	onStack := make([]bool, n)
	visited := make([]bool, n)
	scc := make([]int, n)
	for i := range scc {
		scc[i] = -1
	}

	var stack []StateId
	nextIndex := 0
	numSccs := 0

	type frame struct {
		s       StateId
		trs     []Tr[W]
		trIndex int
	}

	for root := 0; root < n; root++ {
		if visited[root] {
			continue
		}
		var callStack []*frame
		trs, err := fst.Trs(StateId(root))
		if err != nil {
			return nil, 0, err
		}
		visited[root] = true
		index[root] = nextIndex
		lowlink[root] = nextIndex
		nextIndex++
		stack = append(stack, StateId(root))
		onStack[root] = true
		callStack = append(callStack, &frame{s: StateId(root), trs: trs})

		for len(callStack) > 0 {
			top := callStack[len(callStack)-1]
			if top.trIndex < len(top.trs) {
				t := top.trs[top.trIndex]
				top.trIndex++
				w := t.Nextstate
				if !visited[w] {
					visited[w] = true
					index[w] = nextIndex
					lowlink[w] = nextIndex
					nextIndex++
					stack = append(stack, w)
					onStack[w] = true
					wtrs, err := fst.Trs(w)
					if err != nil {
						return nil, 0, err
					}
					callStack = append(callStack, &frame{s: w, trs: wtrs})
				} else if onStack[w] {
					if index[w] < lowlink[top.s] {
						lowlink[top.s] = index[w]
					}
				}
				continue
			}
			// Done with top.s: pop the call frame and propagate lowlink to
			// the parent, then, if top.s is a component root, pop the SCC
			// off the state stack.
			callStack = callStack[:len(callStack)-1]
			if len(callStack) > 0 {
				parent := callStack[len(callStack)-1]
				if lowlink[top.s] < lowlink[parent.s] {
					lowlink[parent.s] = lowlink[top.s]
				}
			}
			if lowlink[top.s] == index[top.s] {
				for {
					w := stack[len(stack)-1]
					stack = stack[:len(stack)-1]
					onStack[w] = false
					scc[w] = numSccs
					if w == top.s {
						break
					}
				}
				numSccs++
			}
		}
	}
	return scc, numSccs, nil
}
