package gofst

import (
	"reflect"
	"testing"
)

// recordingVisitor records the order and classification of every
// callback DfsVisit makes.
type recordingVisitor struct {
	inits    []StateId
	finishes []StateId
	tree     [][2]StateId
	back     [][2]StateId
	cross    [][2]StateId
}

func (*recordingVisitor) InitVisit() {}
func (v *recordingVisitor) InitState(s StateId, root StateId) bool {
	v.inits = append(v.inits, s)
	return true
}
func (v *recordingVisitor) TreeTr(s StateId, t Tr[TropicalWeight]) bool {
	v.tree = append(v.tree, [2]StateId{s, t.Nextstate})
	return true
}
func (v *recordingVisitor) BackTr(s StateId, t Tr[TropicalWeight]) bool {
	v.back = append(v.back, [2]StateId{s, t.Nextstate})
	return true
}
func (v *recordingVisitor) ForwardOrCrossTr(s StateId, t Tr[TropicalWeight]) bool {
	v.cross = append(v.cross, [2]StateId{s, t.Nextstate})
	return true
}
func (v *recordingVisitor) FinishState(s StateId, parent StateId) {
	v.finishes = append(v.finishes, s)
}
func (*recordingVisitor) FinishVisit() {}

func TestDfsVisitClassifiesTransitions(t *testing.T) {
	sr := TropicalSemiring{}
	f := NewVectorFst[TropicalWeight](sr)
	f.AddStates(3)
	f.SetStart(0)
	f.SetFinal(2, 0.0)
	// 0 -> 1 -> 2 is the DFS tree; 2 -> 0 closes a cycle (back edge)
	// and 0 -> 2 reaches an already finished state (forward edge).
	f.AddTr(0, NewTr[TropicalWeight](1, 1, 1.0, 1))
	f.AddTr(1, NewTr[TropicalWeight](2, 2, 1.0, 2))
	f.AddTr(2, NewTr[TropicalWeight](3, 3, 1.0, 0))
	f.AddTr(0, NewTr[TropicalWeight](4, 4, 1.0, 2))

	v := &recordingVisitor{}
	if err := DfsVisit[TropicalWeight](f, v, AnyTrFilter[TropicalWeight]{}, true); err != nil {
		t.Fatalf("DfsVisit: %v", err)
	}

	if want := []StateId{0, 1, 2}; !reflect.DeepEqual(v.inits, want) {
		t.Errorf("InitState order = %v, want %v", v.inits, want)
	}
	if want := []StateId{2, 1, 0}; !reflect.DeepEqual(v.finishes, want) {
		t.Errorf("FinishState order = %v, want %v", v.finishes, want)
	}
	if want := [][2]StateId{{0, 1}, {1, 2}}; !reflect.DeepEqual(v.tree, want) {
		t.Errorf("tree edges = %v, want %v", v.tree, want)
	}
	if want := [][2]StateId{{2, 0}}; !reflect.DeepEqual(v.back, want) {
		t.Errorf("back edges = %v, want %v", v.back, want)
	}
	if want := [][2]StateId{{0, 2}}; !reflect.DeepEqual(v.cross, want) {
		t.Errorf("forward/cross edges = %v, want %v", v.cross, want)
	}
}

func TestDfsVisitFilterSkipsTransitions(t *testing.T) {
	sr := TropicalSemiring{}
	f := NewVectorFst[TropicalWeight](sr)
	f.AddStates(3)
	f.SetStart(0)
	f.AddTr(0, NewTr[TropicalWeight](EpsLabel, EpsLabel, 1.0, 1))
	f.AddTr(0, NewTr[TropicalWeight](1, 1, 1.0, 2))

	v := &recordingVisitor{}
	if err := DfsVisit[TropicalWeight](f, v, EpsilonTrFilter[TropicalWeight]{}, true); err != nil {
		t.Fatalf("DfsVisit: %v", err)
	}
	if want := []StateId{0, 1}; !reflect.DeepEqual(v.inits, want) {
		t.Errorf("InitState order = %v, want %v (state 2 is behind a non-epsilon transition)", v.inits, want)
	}
}

func TestDfsVisitAllStatesWhenNotAccessOnly(t *testing.T) {
	sr := TropicalSemiring{}
	f := NewVectorFst[TropicalWeight](sr)
	f.AddStates(3)
	f.SetStart(0)
	// State 2 is unreachable from the start state.
	f.AddTr(0, NewTr[TropicalWeight](1, 1, 1.0, 1))

	v := &recordingVisitor{}
	if err := DfsVisit[TropicalWeight](f, v, AnyTrFilter[TropicalWeight]{}, false); err != nil {
		t.Fatalf("DfsVisit: %v", err)
	}
	if want := []StateId{0, 1, 2}; !reflect.DeepEqual(v.inits, want) {
		t.Errorf("InitState order = %v, want %v (access=false roots every unvisited state)", v.inits, want)
	}
}
