package gofst

import "testing"

func TestInvert(t *testing.T) {
	sr := TropicalSemiring{}
	f := NewVectorFst[TropicalWeight](sr)
	f.AddStates(2)
	f.SetStart(0)
	f.SetFinal(1, 0.0)
	f.AddTr(0, NewTr[TropicalWeight](1, 2, 1.0, 1))

	if err := Invert[TropicalWeight](f); err != nil {
		t.Fatalf("Invert: %v", err)
	}
	trs, _ := f.Trs(0)
	if trs[0].Ilabel != 2 || trs[0].Olabel != 1 {
		t.Errorf("Invert should swap labels, got %v", trs[0])
	}
}

func TestProjectInput(t *testing.T) {
	sr := TropicalSemiring{}
	f := NewVectorFst[TropicalWeight](sr)
	f.AddStates(2)
	f.SetStart(0)
	f.SetFinal(1, 0.0)
	f.AddTr(0, NewTr[TropicalWeight](1, 2, 1.0, 1))

	if err := Project[TropicalWeight](f, ProjectInput); err != nil {
		t.Fatalf("Project: %v", err)
	}
	trs, _ := f.Trs(0)
	if trs[0].Ilabel != 1 || trs[0].Olabel != 1 {
		t.Errorf("ProjectInput should set olabel = ilabel, got %v", trs[0])
	}
}

func TestProjectOutput(t *testing.T) {
	sr := TropicalSemiring{}
	f := NewVectorFst[TropicalWeight](sr)
	f.AddStates(2)
	f.SetStart(0)
	f.SetFinal(1, 0.0)
	f.AddTr(0, NewTr[TropicalWeight](1, 2, 1.0, 1))

	if err := Project[TropicalWeight](f, ProjectOutput); err != nil {
		t.Fatalf("Project: %v", err)
	}
	trs, _ := f.Trs(0)
	if trs[0].Ilabel != 2 || trs[0].Olabel != 2 {
		t.Errorf("ProjectOutput should set ilabel = olabel, got %v", trs[0])
	}
}
