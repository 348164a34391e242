package gofst

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ReadTropicalText parses the plain-text FST format cmd/fstutil reads
// and writes: one transition per line as
//
//	src dst ilabel olabel [weight]
//
// and one final-state declaration per line as
//
//	state [weight]
//
// The source state of the first transition line is the start state;
// final-state lines do not set it. weight defaults
// to the semiring's One when omitted, matching the convention of
// OpenFst's own text FST dumps.
func ReadTropicalText(r io.Reader) (*VectorFst[TropicalWeight], error) {
	sr := TropicalSemiring{}
	fst := NewVectorFst[TropicalWeight](sr)
	scanner := bufio.NewScanner(r)
	started := false
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		switch len(fields) {
		case 1, 2:
			s, err := parseStateField(fields[0], fst)
			if err != nil {
				return nil, lineErr(lineNo, err)
			}
			w := sr.One()
			if len(fields) == 2 {
				w, err = parseTropicalWeight(fields[1])
				if err != nil {
					return nil, lineErr(lineNo, err)
				}
			}
			if err := fst.SetFinal(s, w); err != nil {
				return nil, lineErr(lineNo, err)
			}
		case 4, 5:
			src, err := parseStateField(fields[0], fst)
			if err != nil {
				return nil, lineErr(lineNo, err)
			}
			dst, err := parseStateField(fields[1], fst)
			if err != nil {
				return nil, lineErr(lineNo, err)
			}
			il, err := strconv.Atoi(fields[2])
			if err != nil {
				return nil, lineErr(lineNo, err)
			}
			ol, err := strconv.Atoi(fields[3])
			if err != nil {
				return nil, lineErr(lineNo, err)
			}
			w := sr.One()
			if len(fields) == 5 {
				w, err = parseTropicalWeight(fields[4])
				if err != nil {
					return nil, lineErr(lineNo, err)
				}
			}
			if !started {
				if err := fst.SetStart(src); err != nil {
					return nil, lineErr(lineNo, err)
				}
				started = true
			}
			if err := fst.AddTr(src, NewTr(Label(il), Label(ol), w, dst)); err != nil {
				return nil, lineErr(lineNo, err)
			}
		default:
			return nil, lineErr(lineNo, newError(ErrInvalidFormat, "expected 1, 2, 4 or 5 fields, got %d", len(fields)))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading text FST")
	}
	return fst, nil
}

// WriteTropicalText writes fst in the same text format ReadTropicalText
// parses.
func WriteTropicalText(w io.Writer, fst ExpandedFst[TropicalWeight]) error {
	bw := bufio.NewWriter(w)
	n := fst.NumStates()
	for s := 0; s < n; s++ {
		sid := StateId(s)
		trs, err := fst.Trs(sid)
		if err != nil {
			return err
		}
		for _, t := range trs {
			if _, err := fmt.Fprintf(bw, "%d\t%d\t%d\t%d\t%g\n", sid, t.Nextstate, t.Ilabel, t.Olabel, float32(t.Weight)); err != nil {
				return err
			}
		}
	}
	sr := TropicalSemiring{}
	for s := 0; s < n; s++ {
		sid := StateId(s)
		final, err := fst.FinalWeight(sid)
		if err != nil {
			return err
		}
		if !sr.IsZero(final) {
			if _, err := fmt.Fprintf(bw, "%d\t%g\n", sid, float32(final)); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

func parseStateField(f string, fst *VectorFst[TropicalWeight]) (StateId, error) {
	n, err := strconv.Atoi(f)
	if err != nil {
		return NoStateId, err
	}
	for fst.NumStates() <= n {
		fst.AddState()
	}
	return StateId(n), nil
}

func parseTropicalWeight(f string) (TropicalWeight, error) {
	v, err := strconv.ParseFloat(f, 32)
	if err != nil {
		return 0, err
	}
	return TropicalWeight(v), nil
}

func lineErr(lineNo int, err error) error {
	return wrapError(ErrInvalidFormat, err, "text FST line %d", lineNo)
}
