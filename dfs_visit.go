package gofst

// DfsVisitor receives callbacks during a depth-first traversal of an
// FST, mirroring the pluggable visitor the SCC and connectivity passes
// are built from.
type DfsVisitor[W any] interface {
	// InitVisit is called once before the traversal starts.
	InitVisit()
	// InitState is called the first time s is discovered; root is the
	// state the current DFS tree was started from (equal to s when s
	// is itself the root of a new tree). Return false to skip
	// expanding s's transitions.
	InitState(s StateId, root StateId) bool
	// TreeTr is called for a transition t out of s that reaches an
	// undiscovered state; return false to abandon the traversal.
	TreeTr(s StateId, t Tr[W]) bool
	// BackTr is called for a transition that reaches a state currently
	// on the DFS stack (a back edge, signaling a cycle).
	BackTr(s StateId, t Tr[W]) bool
	// ForwardOrCrossTr is called for a transition that reaches an
	// already-finished state that is not on the stack.
	ForwardOrCrossTr(s StateId, t Tr[W]) bool
	// FinishState is called when s and all states reachable from it
	// have been fully explored. parent is NoStateId for the root of a
	// DFS tree.
	FinishState(s StateId, parent StateId)
	// FinishVisit is called once after the traversal completes.
	FinishVisit()
}

type dfsFrame[W any] struct {
	state   StateId
	trs     []Tr[W]
	trIndex int
	parent  StateId
}

// DfsVisit performs an iterative (explicit-stack) depth-first
// traversal of fst starting from its start state plus, if access is
// false, every otherwise-unreached state in ascending order, so every
// state in the FST is eventually visited exactly once. access=true
// confines the walk to what is reachable from the start state;
// access=false covers the whole automaton, which SCC and coaccess
// computation need.
func DfsVisit[W any](fst TrIterator[W], visitor DfsVisitor[W], filter TrFilter[W], access bool) error {
	visitor.InitVisit()
	defer visitor.FinishVisit()

	n, err := numStatesOf(fst)
	if err != nil {
		return err
	}
	state := newDfsState(n)

	roots := []StateId{}
	if fst.Start() != NoStateId {
		roots = append(roots, fst.Start())
	}
	if !access {
		for s := 0; s < n; s++ {
			roots = append(roots, StateId(s))
		}
	}

	for _, root := range roots {
		if state.color[root] != dfsWhite {
			continue
		}
		if err := dfsVisitFrom(fst, visitor, filter, state, root); err != nil {
			return err
		}
		if state.stopped {
			break
		}
	}
	return nil
}

const (
	dfsWhite = iota
	dfsGray
	dfsBlack
)

type dfsState struct {
	color   []int
	stopped bool
}

func newDfsState(n int) *dfsState {
	return &dfsState{color: make([]int, n)}
}

func dfsVisitFrom[W any](fst TrIterator[W], visitor DfsVisitor[W], filter TrFilter[W], state *dfsState, root StateId) error {
	stack := []*dfsFrame[W]{}

	push := func(s StateId, parent StateId) error {
		state.color[s] = dfsGray
		if !visitor.InitState(s, root) {
			state.color[s] = dfsBlack
			visitor.FinishState(s, parent)
			return nil
		}
		trs, err := fst.Trs(s)
		if err != nil {
			return err
		}
		stack = append(stack, &dfsFrame[W]{state: s, trs: trs, parent: parent})
		return nil
	}

	if err := push(root, NoStateId); err != nil {
		return err
	}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if state.color[top.state] == dfsBlack {
			stack = stack[:len(stack)-1]
			continue
		}
		advanced := false
		for top.trIndex < len(top.trs) {
			t := top.trs[top.trIndex]
			top.trIndex++
			if !filter.Accept(t) {
				continue
			}
			switch state.color[t.Nextstate] {
			case dfsWhite:
				if !visitor.TreeTr(top.state, t) {
					state.stopped = true
					return nil
				}
				if err := push(t.Nextstate, top.state); err != nil {
					return err
				}
				advanced = true
			case dfsGray:
				if !visitor.BackTr(top.state, t) {
					state.stopped = true
					return nil
				}
			case dfsBlack:
				if !visitor.ForwardOrCrossTr(top.state, t) {
					state.stopped = true
					return nil
				}
			}
			if advanced {
				break
			}
		}
		if advanced {
			continue
		}
		if top.trIndex >= len(top.trs) {
			state.color[top.state] = dfsBlack
			visitor.FinishState(top.state, top.parent)
			stack = stack[:len(stack)-1]
		}
	}
	return nil
}

func numStatesOf[W any](fst TrIterator[W]) (int, error) {
	if ex, ok := fst.(interface{ NumStates() int }); ok {
		return ex.NumStates(), nil
	}
	if it, ok := fst.(StateIterator[W]); ok {
		return len(it.States()), nil
	}
	return 0, newError(ErrInvalidFormat, "DfsVisit requires an ExpandedFst or StateIterator")
}
