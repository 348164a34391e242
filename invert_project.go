package gofst

// Invert swaps the input and output label of every transition of fst
// in place: if fst transduces x to y with weight w, the inverted fst
// transduces y to x with weight w.
func Invert[W any](fst MutableFst[W]) error {
	n := fst.NumStates()
	for s := 0; s < n; s++ {
		sid := StateId(s)
		trs, err := fst.Trs(sid)
		if err != nil {
			return err
		}
		swapped := make([]Tr[W], len(trs))
		for i, t := range trs {
			swapped[i] = Tr[W]{Ilabel: t.Olabel, Olabel: t.Ilabel, Weight: t.Weight, Nextstate: t.Nextstate}
		}
		if err := fst.SetTrs(sid, swapped); err != nil {
			return err
		}
	}
	return nil
}

// ProjectType selects which tape Project keeps.
type ProjectType int

const (
	// ProjectInput copies the input label onto the output label of
	// every transition, turning fst into an acceptor over its input
	// alphabet.
	ProjectInput ProjectType = iota
	// ProjectOutput copies the output label onto the input label of
	// every transition, turning fst into an acceptor over its output
	// alphabet.
	ProjectOutput
)

// Project turns fst into an acceptor by overwriting one tape's labels
// with the other's, in place.
func Project[W any](fst MutableFst[W], pt ProjectType) error {
	n := fst.NumStates()
	for s := 0; s < n; s++ {
		sid := StateId(s)
		trs, err := fst.Trs(sid)
		if err != nil {
			return err
		}
		projected := make([]Tr[W], len(trs))
		for i, t := range trs {
			switch pt {
			case ProjectInput:
				projected[i] = Tr[W]{Ilabel: t.Ilabel, Olabel: t.Ilabel, Weight: t.Weight, Nextstate: t.Nextstate}
			case ProjectOutput:
				projected[i] = Tr[W]{Ilabel: t.Olabel, Olabel: t.Olabel, Weight: t.Weight, Nextstate: t.Nextstate}
			}
		}
		if err := fst.SetTrs(sid, projected); err != nil {
			return err
		}
	}
	switch pt {
	case ProjectInput:
		fst.SetOutputSymbols(fst.InputSymbols())
	case ProjectOutput:
		fst.SetInputSymbols(fst.OutputSymbols())
	}
	return nil
}
