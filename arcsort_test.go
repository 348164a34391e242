package gofst

import (
	"reflect"
	"testing"
)

// TestArcSortByIlabel: transitions added out of order at state 0 come
// back sorted by ilabel.
func TestArcSortByIlabel(t *testing.T) {
	sr := TropicalSemiring{}
	f := NewVectorFst[TropicalWeight](sr)
	f.AddStates(2)
	f.SetStart(0)
	f.SetFinal(1, 0.0)
	f.AddTr(0, NewTr[TropicalWeight](3, 5, 1.0, 1))
	f.AddTr(0, NewTr[TropicalWeight](1, 2, 0.5, 1))
	f.AddTr(0, NewTr[TropicalWeight](2, 2, 0.7, 1))

	if err := ArcSort[TropicalWeight](f, IlabelCompare[TropicalWeight]); err != nil {
		t.Fatalf("ArcSort: %v", err)
	}

	want := []Tr[TropicalWeight]{
		NewTr[TropicalWeight](1, 2, 0.5, 1),
		NewTr[TropicalWeight](2, 2, 0.7, 1),
		NewTr[TropicalWeight](3, 5, 1.0, 1),
	}
	got, err := f.Trs(0)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ArcSort(ilabel) = %v, want %v", got, want)
	}
}

// TestArcSortIsIdempotent checks that repeated arcsort is a no-op.
func TestArcSortIsIdempotent(t *testing.T) {
	sr := TropicalSemiring{}
	f := NewVectorFst[TropicalWeight](sr)
	f.AddStates(2)
	f.SetStart(0)
	f.SetFinal(1, 0.0)
	f.AddTr(0, NewTr[TropicalWeight](3, 5, 1.0, 1))
	f.AddTr(0, NewTr[TropicalWeight](1, 2, 0.5, 1))

	if err := ArcSort[TropicalWeight](f, IlabelCompare[TropicalWeight]); err != nil {
		t.Fatal(err)
	}
	first, _ := f.Trs(0)
	firstCopy := append([]Tr[TropicalWeight]{}, first...)

	if err := ArcSort[TropicalWeight](f, IlabelCompare[TropicalWeight]); err != nil {
		t.Fatal(err)
	}
	second, _ := f.Trs(0)
	if !reflect.DeepEqual(firstCopy, second) {
		t.Errorf("second ArcSort changed transitions: %v -> %v", firstCopy, second)
	}
}

func TestArcSortTiesBreakLexicographically(t *testing.T) {
	sr := TropicalSemiring{}
	f := NewVectorFst[TropicalWeight](sr)
	f.AddStates(3)
	f.SetStart(0)
	f.SetFinal(1, 0.0)
	f.AddTr(0, NewTr[TropicalWeight](1, 3, 0.1, 2))
	f.AddTr(0, NewTr[TropicalWeight](1, 2, 0.2, 1))
	f.AddTr(0, NewTr[TropicalWeight](1, 2, 0.3, 2))

	if err := ArcSort[TropicalWeight](f, IlabelCompare[TropicalWeight]); err != nil {
		t.Fatal(err)
	}
	got, _ := f.Trs(0)
	want := []Tr[TropicalWeight]{
		NewTr[TropicalWeight](1, 2, 0.2, 1),
		NewTr[TropicalWeight](1, 2, 0.3, 2),
		NewTr[TropicalWeight](1, 3, 0.1, 2),
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ArcSort(ilabel) = %v, want %v", got, want)
	}
}
