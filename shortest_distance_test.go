package gofst

import (
	"errors"
	"testing"
)

// TestShortestDistanceAcyclic checks the relaxation on a small acyclic
// graph with two paths to the same state.
func TestShortestDistanceAcyclic(t *testing.T) {
	sr := TropicalSemiring{}
	f := NewVectorFst[TropicalWeight](sr)
	f.AddStates(3)
	f.SetStart(0)
	f.AddTr(0, NewTr[TropicalWeight](1, 1, 1, 1))
	f.AddTr(0, NewTr[TropicalWeight](1, 1, 4, 2))
	f.AddTr(1, NewTr[TropicalWeight](2, 2, 2, 2))

	d, err := ShortestDistance[TropicalWeight](f, sr)
	if err != nil {
		t.Fatalf("ShortestDistance: %v", err)
	}
	want := []TropicalWeight{0, 1, 3}
	for i, w := range want {
		if d[i] != w {
			t.Errorf("d[%d] = %v, want %v", i, d[i], w)
		}
	}
}

// TestShortestDistanceMatchesBruteForce: for an acyclic
// FST, d[s] equals the semiring sum over all start-to-s path weights
// enumerated directly.
func TestShortestDistanceMatchesBruteForce(t *testing.T) {
	sr := TropicalSemiring{}
	f := NewVectorFst[TropicalWeight](sr)
	f.AddStates(4)
	f.SetStart(0)
	f.AddTr(0, NewTr[TropicalWeight](1, 1, 1, 1))
	f.AddTr(0, NewTr[TropicalWeight](1, 1, 5, 2))
	f.AddTr(1, NewTr[TropicalWeight](1, 1, 2, 3))
	f.AddTr(2, NewTr[TropicalWeight](1, 1, 1, 3))

	d, err := ShortestDistance[TropicalWeight](f, sr)
	if err != nil {
		t.Fatal(err)
	}

	brute := bruteForceDistance(t, f, sr)
	for s := range brute {
		if d[s] != brute[s] {
			t.Errorf("d[%d] = %v, brute force = %v", s, d[s], brute[s])
		}
	}
}

// TestShortestDistanceCycleIdempotent checks that FIFO relaxation
// settles on a cyclic FST under an idempotent semiring: extra trips
// around the loop can only produce larger path weights, so min keeps
// the one-pass distances.
func TestShortestDistanceCycleIdempotent(t *testing.T) {
	sr := TropicalSemiring{}
	f := NewVectorFst[TropicalWeight](sr)
	f.AddStates(2)
	f.SetStart(0)
	f.SetFinal(1, 0.0)
	f.AddTr(0, NewTr[TropicalWeight](1, 1, 1.0, 1))
	f.AddTr(1, NewTr[TropicalWeight](2, 2, 1.0, 0))

	d, err := ShortestDistance[TropicalWeight](f, sr)
	if err != nil {
		t.Fatalf("ShortestDistance: %v", err)
	}
	want := []TropicalWeight{0, 1}
	for i, w := range want {
		if d[i] != w {
			t.Errorf("d[%d] = %v, want %v", i, d[i], w)
		}
	}
}

// TestShortestDistanceNonConvergent drives the relaxation over a
// probability-semiring cycle of weight 1, whose path sum 1+1+1+...
// diverges, and expects the iteration cap to trip.
func TestShortestDistanceNonConvergent(t *testing.T) {
	sr := ProbabilitySemiring{}
	f := NewVectorFst[ProbabilityWeight](sr)
	f.AddStates(2)
	f.SetStart(0)
	f.SetFinal(1, 1.0)
	f.AddTr(0, NewTr[ProbabilityWeight](1, 1, 1.0, 1))
	f.AddTr(1, NewTr[ProbabilityWeight](2, 2, 1.0, 0))

	_, err := ShortestDistance[ProbabilityWeight](f, sr)
	if err == nil {
		t.Fatal("ShortestDistance on a weight-1 probability cycle should not converge")
	}
	var fe *FstError
	if !errors.As(err, &fe) || fe.Kind != ErrNonConvergent {
		t.Errorf("error = %v, want kind %v", err, ErrNonConvergent)
	}
}

// TestShortestDistanceCycleConverges checks the quantized convergence
// path: a probability cycle of weight 0.5 has path sum 1+0.5+0.25+...
// which settles below the quantization threshold well before the
// iteration cap.
func TestShortestDistanceCycleConverges(t *testing.T) {
	sr := ProbabilitySemiring{}
	f := NewVectorFst[ProbabilityWeight](sr)
	f.AddStates(2)
	f.SetStart(0)
	f.SetFinal(1, 1.0)
	f.AddTr(0, NewTr[ProbabilityWeight](1, 1, 1.0, 1))
	f.AddTr(1, NewTr[ProbabilityWeight](2, 2, 0.5, 0))

	d, err := ShortestDistance[ProbabilityWeight](f, sr)
	if err != nil {
		t.Fatalf("ShortestDistance: %v", err)
	}
	// d[0] = 1 + 0.5 + 0.25 + ... = 2 within quantization.
	if d[0] < 1.99 || d[0] > 2.01 {
		t.Errorf("d[0] = %v, want ~2", d[0])
	}
}

func bruteForceDistance(t *testing.T, f *VectorFst[TropicalWeight], sr TropicalSemiring) []TropicalWeight {
	t.Helper()
	n := f.NumStates()
	dist := make([]TropicalWeight, n)
	for i := range dist {
		dist[i] = sr.Zero()
	}
	var walk func(s StateId, w TropicalWeight)
	walk = func(s StateId, w TropicalWeight) {
		dist[s] = sr.Plus(dist[s], w)
		trs, err := f.Trs(s)
		if err != nil {
			t.Fatal(err)
		}
		for _, tr := range trs {
			walk(tr.Nextstate, sr.Times(w, tr.Weight))
		}
	}
	walk(f.Start(), sr.One())
	return dist
}
