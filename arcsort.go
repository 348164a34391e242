package gofst

import "sort"

// TrCompare orders two transitions for ArcSort, returning a negative
// number if a sorts before b, zero if they are equivalent, and a
// positive number otherwise.
type TrCompare[W any] func(a, b Tr[W]) int

// IlabelCompare orders transitions lexicographically by
// (ilabel, olabel, nextstate).
func IlabelCompare[W any](a, b Tr[W]) int {
	if c := int(a.Ilabel) - int(b.Ilabel); c != 0 {
		return c
	}
	if c := int(a.Olabel) - int(b.Olabel); c != 0 {
		return c
	}
	return int(a.Nextstate) - int(b.Nextstate)
}

// OlabelCompare orders transitions lexicographically by
// (olabel, ilabel, nextstate).
func OlabelCompare[W any](a, b Tr[W]) int {
	if c := int(a.Olabel) - int(b.Olabel); c != 0 {
		return c
	}
	if c := int(a.Ilabel) - int(b.Ilabel); c != 0 {
		return c
	}
	return int(a.Nextstate) - int(b.Nextstate)
}

// ArcSort stably sorts the outgoing transitions of every state of fst
// according to cmp. Composition and other algorithms that assume a
// particular transition order rely on this having been run first;
// sort.SliceStable is used (rather than a hand-rolled sort) so ties
// keep their original relative order the way a stable external sort
// would.
func ArcSort[W any](fst MutableFst[W], cmp TrCompare[W]) error {
	n := fst.NumStates()
	for s := 0; s < n; s++ {
		sid := StateId(s)
		trs, err := fst.Trs(sid)
		if err != nil {
			return err
		}
		sorted := make([]Tr[W], len(trs))
		copy(sorted, trs)
		sort.SliceStable(sorted, func(i, j int) bool {
			return cmp(sorted[i], sorted[j]) < 0
		})
		if err := fst.SetTrs(sid, sorted); err != nil {
			return err
		}
	}
	return nil
}
