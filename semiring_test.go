package gofst

import "testing"

func checkSemiringAxioms[W comparable](t *testing.T, name string, sr Semiring[W], a, b, c W) {
	t.Helper()
	if !sr.IsZero(sr.Zero()) {
		t.Errorf("%s: Zero() is not IsZero", name)
	}
	if sr.Plus(a, sr.Zero()) != a {
		t.Errorf("%s: a ⊕ 0 != a", name)
	}
	if sr.Times(a, sr.One()) != a {
		t.Errorf("%s: a ⊗ 1 != a", name)
	}
	if sr.Times(sr.One(), a) != a {
		t.Errorf("%s: 1 ⊗ a != a", name)
	}
	if sr.Times(a, sr.Zero()) != sr.Zero() {
		t.Errorf("%s: a ⊗ 0 != 0", name)
	}
	if sr.Plus(sr.Plus(a, b), c) != sr.Plus(a, sr.Plus(b, c)) {
		t.Errorf("%s: ⊕ not associative", name)
	}
	if sr.Times(sr.Times(a, b), c) != sr.Times(a, sr.Times(b, c)) {
		t.Errorf("%s: ⊗ not associative", name)
	}
}

func TestBooleanSemiring(t *testing.T) {
	sr := BooleanSemiring{}
	checkSemiringAxioms[BooleanWeight](t, "Boolean", sr, true, false, true)
	if !sr.Plus(true, false) {
		t.Error("Boolean Plus(true,false) should be true (OR)")
	}
	if sr.Times(true, false) {
		t.Error("Boolean Times(true,false) should be false (AND)")
	}
	if sr.Closure(false) != true {
		t.Error("Boolean Closure is always true")
	}
}

func TestTropicalSemiring(t *testing.T) {
	sr := TropicalSemiring{}
	checkSemiringAxioms[TropicalWeight](t, "Tropical", sr, 1.0, 2.0, 3.0)
	if sr.Plus(1.0, 2.0) != 1.0 {
		t.Error("Tropical Plus is min")
	}
	if sr.Times(1.0, 2.0) != 3.0 {
		t.Error("Tropical Times is +")
	}
	got, err := sr.Divide(3.0, 1.0)
	if err != nil || got != 2.0 {
		t.Errorf("Tropical Divide(3,1) = %v, %v; want 2, nil", got, err)
	}
	if _, err := sr.Divide(1.0, sr.Zero()); err == nil {
		t.Error("Divide by zero should error")
	}
}

func TestLogSemiring(t *testing.T) {
	sr := LogSemiring{}
	checkSemiringAxioms[LogWeight](t, "Log", sr, 1.0, 2.0, 0.5)
	// Plus of a value with itself should be less than the value (since
	// combining two equally likely alternatives increases probability
	// mass, i.e. decreases negative-log-probability).
	if sr.Plus(1.0, 1.0) >= 1.0 {
		t.Error("Log Plus(a,a) should be < a")
	}
	if sr.Closure(sr.Zero()) != sr.One() {
		t.Error("Log Closure(Zero) should be One")
	}
}

func TestIntegerSemiring(t *testing.T) {
	sr := IntegerSemiring{}
	checkSemiringAxioms[IntegerWeight](t, "Integer", sr, 1, 2, 3)
	if sr.Plus(1, 2) != 1 {
		t.Error("Integer Plus is min")
	}
	if sr.Times(1, 2) != 3 {
		t.Error("Integer Times is +")
	}
}

func TestProbabilitySemiring(t *testing.T) {
	sr := ProbabilitySemiring{}
	checkSemiringAxioms[ProbabilityWeight](t, "Probability", sr, 0.25, 0.5, 0.125)
	if sr.Plus(0.25, 0.5) != 0.75 {
		t.Error("Probability Plus is +")
	}
	got, err := sr.Divide(0.5, 0.25)
	if err != nil || got != 2 {
		t.Errorf("Probability Divide(0.5,0.25) = %v, %v; want 2, nil", got, err)
	}
}

func TestStringLeftSemiring(t *testing.T) {
	sr := StringLeftSemiring{}
	abc := StringWeight{Labels: []Label{1, 2, 3}}
	abd := StringWeight{Labels: []Label{1, 2, 4}}
	got := sr.Plus(abc, abd)
	want := StringWeight{Labels: []Label{1, 2}}
	if !stringEqual(got, want) {
		t.Errorf("StringLeft Plus(abc,abd) = %v, want %v", got, want)
	}
	cat := sr.Times(StringWeight{Labels: []Label{1}}, StringWeight{Labels: []Label{2}})
	if !stringEqual(cat, StringWeight{Labels: []Label{1, 2}}) {
		t.Errorf("StringLeft Times should concatenate, got %v", cat)
	}
	if !sr.IsZero(sr.Zero()) {
		t.Error("StringLeft Zero should be IsZero")
	}
}

func TestStringRightSemiring(t *testing.T) {
	sr := StringRightSemiring{}
	cab := StringWeight{Labels: []Label{3, 1, 2}}
	dab := StringWeight{Labels: []Label{4, 1, 2}}
	got := sr.Plus(cab, dab)
	want := StringWeight{Labels: []Label{1, 2}}
	if !stringEqual(got, want) {
		t.Errorf("StringRight Plus(cab,dab) = %v, want %v", got, want)
	}
}
