package gofst

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"os"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// constState is the per-state record of a ConstFst: a final weight
// plus a window into the flat transition array, mirroring the
// pos/narcs bookkeeping ConstFst uses upstream to avoid a separate
// slice-of-slices per state.
type constState[W any] struct {
	final      W
	hasFinal   bool
	pos        int
	narcs      int
	niepsilons int
	noepsilons int
}

// ConstFst is the compact, immutable FST representation: one flat
// array of transitions shared by all states, addressed through each
// state's pos/narcs window. It trades MutableFst's editing API for a
// smaller footprint. LoadConstFstMmap reads one from a memory-mapped
// file, decoding its states and transitions into heap slices.
type ConstFst[W any] struct {
	start  StateId
	states []constState[W]
	trs    []Tr[W]

	isym *SymbolTable
	osym *SymbolTable

	semiring Semiring[W]

	mapped *mappedRegion
}

// mappedRegion keeps the mmap'd file a ConstFst was loaded from so
// Close can unmap it; nil when the ConstFst was built in memory (e.g.
// via NewConstFstFromExpanded). The ConstFst's state and transition
// slices are decoded copies and do not alias the mapping.
type mappedRegion struct {
	file *os.File
	data []byte
}

func (m *mappedRegion) Close() error {
	if m == nil {
		return nil
	}
	err1 := unix.Munmap(m.data)
	err2 := m.file.Close()
	if err1 != nil {
		return err1
	}
	return err2
}

// Close releases any mmap'd backing memory. It is a no-op for a
// ConstFst built in memory.
func (f *ConstFst[W]) Close() error {
	if f.mapped == nil {
		return nil
	}
	return f.mapped.Close()
}

func (f *ConstFst[W]) Start() StateId { return f.start }

func (f *ConstFst[W]) IsStart(s StateId) bool { return s == f.start }

func (f *ConstFst[W]) NumStates() int { return len(f.states) }

func (f *ConstFst[W]) NumStatesKnown() bool { return true }

func (f *ConstFst[W]) checkState(s StateId) error {
	if s < 0 || int(s) >= len(f.states) {
		return noSuchStateError(s)
	}
	return nil
}

func (f *ConstFst[W]) FinalWeight(s StateId) (W, error) {
	if err := f.checkState(s); err != nil {
		var zero W
		return zero, err
	}
	if f.states[s].hasFinal {
		return f.states[s].final, nil
	}
	return f.semiring.Zero(), nil
}

func (f *ConstFst[W]) NumTrs(s StateId) (int, error) {
	if err := f.checkState(s); err != nil {
		return 0, err
	}
	return f.states[s].narcs, nil
}

func (f *ConstFst[W]) States() []StateId {
	out := make([]StateId, len(f.states))
	for i := range out {
		out[i] = StateId(i)
	}
	return out
}

func (f *ConstFst[W]) Trs(s StateId) ([]Tr[W], error) {
	if err := f.checkState(s); err != nil {
		return nil, err
	}
	return f.TrsUnchecked(s), nil
}

func (f *ConstFst[W]) TrsUnchecked(s StateId) []Tr[W] {
	st := f.states[s]
	if st.narcs == 0 {
		// Match VectorFst, which holds nil for a state with no
		// transitions.
		return nil
	}
	return f.trs[st.pos : st.pos+st.narcs]
}

func (f *ConstFst[W]) InputSymbols() *SymbolTable  { return f.isym }
func (f *ConstFst[W]) OutputSymbols() *SymbolTable { return f.osym }

// NewConstFstFromExpanded builds a ConstFst by copying every state
// and transition out of src, the read-only analogue of VectorFst's
// construction API. Used to "freeze" a VectorFst after building it.
func NewConstFstFromExpanded[W any](src ExpandedFst[W], sr Semiring[W]) (*ConstFst[W], error) {
	n := src.NumStates()
	f := &ConstFst[W]{
		start:    src.Start(),
		states:   make([]constState[W], n),
		semiring: sr,
	}
	pos := 0
	for s := 0; s < n; s++ {
		sid := StateId(s)
		trs, err := src.Trs(sid)
		if err != nil {
			return nil, err
		}
		fw, err := src.FinalWeight(sid)
		if err != nil {
			return nil, err
		}
		isFinal, err := IsFinal[W](src, sr, sid)
		if err != nil {
			return nil, err
		}
		niepsilons, noepsilons := 0, 0
		for _, t := range trs {
			if t.Ilabel == EpsLabel {
				niepsilons++
			}
			if t.Olabel == EpsLabel {
				noepsilons++
			}
		}
		f.states[s] = constState[W]{
			final:      fw,
			hasFinal:   isFinal,
			pos:        pos,
			narcs:      len(trs),
			niepsilons: niepsilons,
			noepsilons: noepsilons,
		}
		f.trs = append(f.trs, trs...)
		pos += len(trs)
	}
	if so, ok := src.(SymbolOwner); ok {
		f.isym = so.InputSymbols()
		f.osym = so.OutputSymbols()
	}
	return f, nil
}

// constFstMagic identifies a ConstFst binary file.
var constFstMagic = [4]byte{'G', 'F', 'S', 'T'}

// constFstVersion is bumped whenever the byte layout changes.
const constFstVersion = 1

const (
	constFstFlagInputSymbols  = 1 << 0
	constFstFlagOutputSymbols = 1 << 1
)

// knownSemiringTypes are the semiring-type strings a ConstFst binary
// header can carry. Loading a file whose type string is absent here
// fails with UnknownSemiringType; loading one that is known but
// differs from the reading codec fails with SemiringMismatch.
var knownSemiringTypes = map[string]bool{
	"tropical":    true,
	"log":         true,
	"boolean":     true,
	"integer":     true,
	"probability": true,
}

// SaveConstFstBinary writes f in the binary layout LoadConstFstMmap
// reads back, all little-endian: a 4-byte magic, an int32 version, an
// int32 flags word (bit 0: input symbols present, bit 1: output
// symbols present), the length-prefixed semiring type string, the
// start state, the state and transition counts, the optional
// input/output symbol tables as length-prefixed text blocks, then the
// state records and the flat transition array.
func SaveConstFstBinary[W any](path string, f *ConstFst[W], codec WeightCodec[W]) error {
	out, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating ConstFst binary")
	}
	defer out.Close()
	bw := bufio.NewWriter(out)

	// Write errors are sticky on bw and surface at the final Flush.
	writeI32 := func(v int32) {
		var b [4]byte
		binary.LittleEndian.PutUint32(b[:], uint32(v))
		bw.Write(b[:])
	}
	writeI64 := func(v int64) {
		var b [8]byte
		binary.LittleEndian.PutUint64(b[:], uint64(v))
		bw.Write(b[:])
	}
	writeBlock := func(p []byte) {
		writeI32(int32(len(p)))
		bw.Write(p)
	}

	var flags int32
	if f.isym != nil {
		flags |= constFstFlagInputSymbols
	}
	if f.osym != nil {
		flags |= constFstFlagOutputSymbols
	}

	bw.Write(constFstMagic[:])
	writeI32(constFstVersion)
	writeI32(flags)
	writeBlock([]byte(codec.SemiringType()))
	writeI64(int64(f.start))
	writeI64(int64(len(f.states)))
	writeI64(int64(len(f.trs)))

	for _, st := range []*SymbolTable{f.isym, f.osym} {
		if st == nil {
			continue
		}
		var block bytes.Buffer
		if err := WriteSymbolTableText(&block, st); err != nil {
			return err
		}
		writeBlock(block.Bytes())
	}

	wsize := codec.Size()
	buf := make([]byte, wsize+8*4)
	for _, st := range f.states {
		final := st.final
		if !st.hasFinal {
			final = f.semiring.Zero()
		}
		codec.Encode(final, buf[:wsize])
		binary.LittleEndian.PutUint64(buf[wsize:wsize+8], uint64(st.pos))
		binary.LittleEndian.PutUint64(buf[wsize+8:wsize+16], uint64(st.narcs))
		binary.LittleEndian.PutUint64(buf[wsize+16:wsize+24], uint64(st.niepsilons))
		binary.LittleEndian.PutUint64(buf[wsize+24:wsize+32], uint64(st.noepsilons))
		bw.Write(buf)
	}

	trBuf := make([]byte, 4+4+wsize+4)
	for _, t := range f.trs {
		binary.LittleEndian.PutUint32(trBuf[0:4], uint32(t.Ilabel))
		binary.LittleEndian.PutUint32(trBuf[4:8], uint32(t.Olabel))
		codec.Encode(t.Weight, trBuf[8:8+wsize])
		binary.LittleEndian.PutUint32(trBuf[8+wsize:8+wsize+4], uint32(t.Nextstate))
		bw.Write(trBuf)
	}
	return errors.Wrap(bw.Flush(), "writing ConstFst binary")
}

// LoadConstFstMmap maps path into memory read-only and decodes a
// ConstFst from the mapped bytes into newly allocated state and
// transition slices. The mapping stays open until the returned
// ConstFst is Close()d.
func LoadConstFstMmap[W any](path string, sr Semiring[W], codec WeightCodec[W]) (*ConstFst[W], error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening ConstFst binary")
	}
	stat, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, errors.Wrap(err, "stat ConstFst binary")
	}
	data, err := unix.Mmap(int(file.Fd()), 0, int(stat.Size()), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		file.Close()
		return nil, errors.Wrap(err, "mmap ConstFst binary")
	}

	f, err := parseConstFstBinary(data, sr, codec)
	if err != nil {
		unix.Munmap(data)
		file.Close()
		return nil, err
	}
	f.mapped = &mappedRegion{file: file, data: data}
	return f, nil
}

// binCursor walks a byte slice front to back with bounds checking.
type binCursor struct {
	data []byte
	off  int
}

func (c *binCursor) take(n int, what string) ([]byte, error) {
	if n < 0 || c.off+n > len(c.data) {
		return nil, newError(ErrInvalidFormat, "ConstFst binary truncated in %s", what)
	}
	b := c.data[c.off : c.off+n]
	c.off += n
	return b, nil
}

func (c *binCursor) i32(what string) (int32, error) {
	b, err := c.take(4, what)
	if err != nil {
		return 0, err
	}
	return int32(binary.LittleEndian.Uint32(b)), nil
}

func (c *binCursor) i64(what string) (int64, error) {
	b, err := c.take(8, what)
	if err != nil {
		return 0, err
	}
	return int64(binary.LittleEndian.Uint64(b)), nil
}

func (c *binCursor) block(what string) ([]byte, error) {
	n, err := c.i32(what)
	if err != nil {
		return nil, err
	}
	return c.take(int(n), what)
}

func parseConstFstBinary[W any](data []byte, sr Semiring[W], codec WeightCodec[W]) (*ConstFst[W], error) {
	c := &binCursor{data: data}
	magic, err := c.take(4, "magic")
	if err != nil || !bytes.Equal(magic, constFstMagic[:]) {
		return nil, newError(ErrInvalidFormat, "not a ConstFst binary file")
	}
	version, err := c.i32("version")
	if err != nil {
		return nil, err
	}
	if version != constFstVersion {
		return nil, newError(ErrInvalidFormat, "unsupported ConstFst binary version %d", version)
	}
	flags, err := c.i32("flags")
	if err != nil {
		return nil, err
	}
	srName, err := c.block("semiring type")
	if err != nil {
		return nil, err
	}
	if string(srName) != codec.SemiringType() {
		if !knownSemiringTypes[string(srName)] {
			return nil, newError(ErrUnknownSemiringType, "semiring type %q", srName)
		}
		return nil, newError(ErrSemiringMismatch, "expected semiring %q, found %q", codec.SemiringType(), srName)
	}
	start, err := c.i64("start state")
	if err != nil {
		return nil, err
	}
	numStates, err := c.i64("state count")
	if err != nil {
		return nil, err
	}
	numTrs, err := c.i64("transition count")
	if err != nil {
		return nil, err
	}
	if numStates < 0 || numTrs < 0 {
		return nil, newError(ErrInvalidFormat, "negative ConstFst counts %d/%d", numStates, numTrs)
	}
	if start < int64(NoStateId) || start >= numStates {
		return nil, newError(ErrInvalidFormat, "start state %d outside %d states", start, numStates)
	}

	var isym, osym *SymbolTable
	if flags&constFstFlagInputSymbols != 0 {
		block, err := c.block("input symbol table")
		if err != nil {
			return nil, err
		}
		if isym, err = ParseSymbolTableText(bytes.NewReader(block)); err != nil {
			return nil, err
		}
	}
	if flags&constFstFlagOutputSymbols != 0 {
		block, err := c.block("output symbol table")
		if err != nil {
			return nil, err
		}
		if osym, err = ParseSymbolTableText(bytes.NewReader(block)); err != nil {
			return nil, err
		}
	}

	wsize := codec.Size()
	states := make([]constState[W], numStates)
	for i := range states {
		rec, err := c.take(wsize+8*4, "state records")
		if err != nil {
			return nil, err
		}
		final := codec.Decode(rec[:wsize])
		states[i] = constState[W]{
			final:      final,
			hasFinal:   !sr.IsZero(final),
			pos:        int(int64(binary.LittleEndian.Uint64(rec[wsize : wsize+8]))),
			narcs:      int(int64(binary.LittleEndian.Uint64(rec[wsize+8 : wsize+16]))),
			niepsilons: int(int64(binary.LittleEndian.Uint64(rec[wsize+16 : wsize+24]))),
			noepsilons: int(int64(binary.LittleEndian.Uint64(rec[wsize+24 : wsize+32]))),
		}
		st := &states[i]
		if st.pos < 0 || st.narcs < 0 || int64(st.pos)+int64(st.narcs) > numTrs {
			return nil, newError(ErrInvalidFormat, "state %d transition window [%d, %d) outside %d transitions", i, st.pos, st.pos+st.narcs, numTrs)
		}
	}

	trs := make([]Tr[W], numTrs)
	for i := range trs {
		rec, err := c.take(4+4+wsize+4, "transition records")
		if err != nil {
			return nil, err
		}
		trs[i] = Tr[W]{
			Ilabel:    Label(int32(binary.LittleEndian.Uint32(rec[0:4]))),
			Olabel:    Label(int32(binary.LittleEndian.Uint32(rec[4:8]))),
			Weight:    codec.Decode(rec[8 : 8+wsize]),
			Nextstate: StateId(int32(binary.LittleEndian.Uint32(rec[8+wsize : 8+wsize+4]))),
		}
		if ns := trs[i].Nextstate; ns < 0 || int64(ns) >= numStates {
			return nil, newError(ErrInvalidFormat, "transition %d targets state %d of %d", i, ns, numStates)
		}
	}

	return &ConstFst[W]{
		start:    StateId(start),
		states:   states,
		trs:      trs,
		isym:     isym,
		osym:     osym,
		semiring: sr,
	}, nil
}

var _ ExpandedFst[TropicalWeight] = (*ConstFst[TropicalWeight])(nil)
