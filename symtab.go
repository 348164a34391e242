package gofst

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// SymbolTable is an append-only bidirectional mapping between Labels
// and symbol strings, keyed by the reserved label/symbol convention
// of wFSTs: label 0 always maps to EpsSymbol and is populated at
// construction, never by the caller.
type SymbolTable struct {
	label2sym []string
	sym2label map[string]Label
}

// NewSymbolTable returns an empty table with only <eps> bound to
// EpsLabel.
func NewSymbolTable() *SymbolTable {
	t := &SymbolTable{
		label2sym: []string{EpsSymbol},
		sym2label: map[string]Label{EpsSymbol: EpsLabel},
	}
	return t
}

// Copy returns an independent copy of t.
func (t *SymbolTable) Copy() *SymbolTable {
	c := &SymbolTable{
		label2sym: make([]string, len(t.label2sym)),
		sym2label: make(map[string]Label, len(t.sym2label)),
	}
	copy(c.label2sym, t.label2sym)
	for k, v := range t.sym2label {
		c.sym2label[k] = v
	}
	return c
}

// NumSymbols is the largest bound Label plus one.
func (t *SymbolTable) NumSymbols() int { return len(t.label2sym) }

// Find returns the symbol bound to l, or "" with ok false if l is
// unbound.
func (t *SymbolTable) Find(l Label) (sym string, ok bool) {
	if l < 0 || int(l) >= len(t.label2sym) {
		return "", false
	}
	return t.label2sym[l], true
}

// FindLabel returns the label bound to sym. For an unbound symbol it
// returns EpsLabel with ok false, so ok is what tells an unbound
// symbol from EpsSymbol.
func (t *SymbolTable) FindLabel(sym string) (l Label, ok bool) {
	l, ok = t.sym2label[sym]
	return
}

// AddSymbol binds sym to the next unused label and returns it, or
// returns the existing label if sym is already bound.
func (t *SymbolTable) AddSymbol(sym string) Label {
	if l, ok := t.sym2label[sym]; ok {
		return l
	}
	l := Label(len(t.label2sym))
	t.label2sym = append(t.label2sym, sym)
	t.sym2label[sym] = l
	return l
}

// AddSymbolAt binds sym to an explicit label, used when reading a
// table from a text dump where labels need not be contiguous. Any
// gap between the highest bound label and l is filled with empty
// strings so that label2sym stays densely indexed;
// WriteSymbolTableText skips those entries.
func (t *SymbolTable) AddSymbolAt(sym string, l Label) error {
	if l < 0 {
		return newError(ErrInvalidFormat, "negative label %d for symbol %q", l, sym)
	}
	if int(l) < len(t.label2sym) {
		if t.label2sym[l] != "" && t.label2sym[l] != sym {
			return newError(ErrInvalidFormat, "label %d already bound to %q, cannot rebind to %q", l, t.label2sym[l], sym)
		}
		t.label2sym[l] = sym
		t.sym2label[sym] = l
		return nil
	}
	for int(l) > len(t.label2sym) {
		t.label2sym = append(t.label2sym, "")
	}
	t.label2sym = append(t.label2sym, sym)
	t.sym2label[sym] = l
	return nil
}

// WriteSymbolTableText writes t in OpenFst's "SYMBOL\tLABEL" sorted
// order, one entry per line.
func WriteSymbolTableText(w io.Writer, t *SymbolTable) error {
	bw := bufio.NewWriter(w)
	for l, sym := range t.label2sym {
		if sym == "" {
			continue
		}
		if _, err := fmt.Fprintf(bw, "%s\t%d\n", sym, l); err != nil {
			return errors.Wrap(err, "writing symbol table")
		}
	}
	return bw.Flush()
}

// ParseSymbolTableText parses the "SYMBOL\tLABEL" text format:
// leading/trailing space trimmed, fields split on any run of
// whitespace. Blank lines and comment-looking lines are malformed:
// the format has no comment syntax, and a dump with holes in it
// usually means a truncated or corrupted file.
func ParseSymbolTableText(r io.Reader) (*SymbolTable, error) {
	t := NewSymbolTable()
	scanner := bufio.NewScanner(r)
	lineNo := 0
	sawEps := false
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			return nil, newError(ErrInvalidFormat, "symbol table line %d: blank line", lineNo)
		}
		if strings.HasPrefix(line, "#") {
			return nil, newError(ErrInvalidFormat, "symbol table line %d: comment lines are not part of the format", lineNo)
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, newError(ErrInvalidFormat, "symbol table line %d: expected \"SYMBOL\\tLABEL\", got %q", lineNo, line)
		}
		sym := fields[0]
		l, err := strconv.ParseInt(fields[1], 10, 32)
		if err != nil {
			return nil, wrapError(ErrInvalidFormat, err, "symbol table line %d: bad label %q", lineNo, fields[1])
		}
		if sym == EpsSymbol {
			if Label(l) != EpsLabel {
				return nil, newError(ErrInvalidFormat, "symbol table line %d: %s must be bound to label 0", lineNo, EpsSymbol)
			}
			sawEps = true
			continue
		}
		if err := t.AddSymbolAt(sym, Label(l)); err != nil {
			return nil, wrapError(ErrInvalidFormat, err, "symbol table line %d", lineNo)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading symbol table")
	}
	if !sawEps {
		return nil, newError(ErrInvalidFormat, "symbol table has no %s entry", EpsSymbol)
	}
	return t, nil
}
