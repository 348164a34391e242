package gofst

import "testing"

// TestRmFinalEpsilon: an epsilon transition that is
// the only way out of state 1 and leads to a final state with no
// outgoing transitions gets folded into state 1's final weight, and
// the now-unreachable state is pruned by the trailing Connect.
func TestRmFinalEpsilon(t *testing.T) {
	sr := TropicalSemiring{}
	f := NewVectorFst[TropicalWeight](sr)
	f.AddStates(3)
	f.SetStart(0)
	f.SetFinal(1, 1.0)
	f.SetFinal(2, 2.0)
	f.AddTr(0, NewTr[TropicalWeight](1, 1, 0.5, 1))
	f.AddTr(1, NewTr[TropicalWeight](EpsLabel, EpsLabel, 0.3, 2))

	if err := RmFinalEpsilon[TropicalWeight](f, sr); err != nil {
		t.Fatalf("RmFinalEpsilon: %v", err)
	}

	if f.NumStates() != 2 {
		t.Fatalf("NumStates() = %d, want 2 (state 2 should be pruned)", f.NumStates())
	}
	final1, err := f.FinalWeight(1)
	if err != nil {
		t.Fatal(err)
	}
	if final1 != 1.0 {
		t.Errorf("final(1) = %v, want min(1.0, 0.3+2.0)=1.0", final1)
	}
	trs1, err := f.Trs(1)
	if err != nil {
		t.Fatal(err)
	}
	if len(trs1) != 0 {
		t.Errorf("state 1 should have no outgoing transitions left, got %v", trs1)
	}
}
