package gofst

import "testing"

// TestConnectPrunesUnreachableAndDeadEnd checks that Connect removes
// both a state unreachable from the start and a state that cannot
// reach any final state.
func TestConnectPrunesUnreachableAndDeadEnd(t *testing.T) {
	sr := TropicalSemiring{}
	f := NewVectorFst[TropicalWeight](sr)
	f.AddStates(4)
	f.SetStart(0)
	f.SetFinal(1, 0.0)
	f.AddTr(0, NewTr[TropicalWeight](1, 1, 1.0, 1))
	// State 2 is reachable from start but cannot reach a final state.
	f.AddTr(0, NewTr[TropicalWeight](1, 1, 1.0, 2))
	// State 3 is not reachable from start at all.
	f.AddTr(3, NewTr[TropicalWeight](1, 1, 1.0, 1))

	if err := Connect[TropicalWeight](f, sr); err != nil {
		t.Fatalf("Connect: %v", err)
	}
	if f.NumStates() != 2 {
		t.Fatalf("NumStates() = %d, want 2", f.NumStates())
	}
	// State ids must be dense 0..NumStates() after connect.
	for s := 0; s < f.NumStates(); s++ {
		if _, err := f.NumTrs(StateId(s)); err != nil {
			t.Errorf("state %d should exist after connect: %v", s, err)
		}
	}
}

// TestConnectIdempotent checks connect(connect(F)) == connect(F).
func TestConnectIdempotent(t *testing.T) {
	sr := TropicalSemiring{}
	f := NewVectorFst[TropicalWeight](sr)
	f.AddStates(3)
	f.SetStart(0)
	f.SetFinal(1, 0.0)
	f.AddTr(0, NewTr[TropicalWeight](1, 1, 1.0, 1))
	f.AddTr(0, NewTr[TropicalWeight](1, 1, 1.0, 2))

	if err := Connect[TropicalWeight](f, sr); err != nil {
		t.Fatal(err)
	}
	n1 := f.NumStates()
	if err := Connect[TropicalWeight](f, sr); err != nil {
		t.Fatal(err)
	}
	n2 := f.NumStates()
	if n1 != n2 {
		t.Errorf("second Connect changed state count: %d -> %d", n1, n2)
	}
}
