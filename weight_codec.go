package gofst

import (
	"encoding/binary"
	"math"
)

// WeightCodec encodes a weight as a fixed-size byte record, letting
// ConstFst lay transitions and final weights out as flat, mmap-able
// arrays. Variable-length weights (StringWeight) have no WeightCodec
// and so cannot be used with the binary ConstFst format; VectorFst
// has no such restriction.
type WeightCodec[W any] interface {
	// Size is the fixed number of bytes Encode writes and Decode reads.
	Size() int
	// SemiringType is the identity string stored in a ConstFst binary
	// header, checked on load against the reading codec.
	SemiringType() string
	Encode(w W, buf []byte)
	Decode(buf []byte) W
}

// TropicalWeightCodec encodes TropicalWeight as a little-endian
// float32, IEEE 754 bit pattern.
type TropicalWeightCodec struct{}

func (TropicalWeightCodec) Size() int            { return 4 }
func (TropicalWeightCodec) SemiringType() string { return "tropical" }
func (TropicalWeightCodec) Encode(w TropicalWeight, buf []byte) {
	binary.LittleEndian.PutUint32(buf, math.Float32bits(float32(w)))
}
func (TropicalWeightCodec) Decode(buf []byte) TropicalWeight {
	return TropicalWeight(math.Float32frombits(binary.LittleEndian.Uint32(buf)))
}

// LogWeightCodec encodes LogWeight as a little-endian float32.
type LogWeightCodec struct{}

func (LogWeightCodec) Size() int            { return 4 }
func (LogWeightCodec) SemiringType() string { return "log" }
func (LogWeightCodec) Encode(w LogWeight, buf []byte) {
	binary.LittleEndian.PutUint32(buf, math.Float32bits(float32(w)))
}
func (LogWeightCodec) Decode(buf []byte) LogWeight {
	return LogWeight(math.Float32frombits(binary.LittleEndian.Uint32(buf)))
}

// IntegerWeightCodec encodes IntegerWeight as a little-endian int64.
type IntegerWeightCodec struct{}

func (IntegerWeightCodec) Size() int            { return 8 }
func (IntegerWeightCodec) SemiringType() string { return "integer" }
func (IntegerWeightCodec) Encode(w IntegerWeight, buf []byte) {
	binary.LittleEndian.PutUint64(buf, uint64(w))
}
func (IntegerWeightCodec) Decode(buf []byte) IntegerWeight {
	return IntegerWeight(binary.LittleEndian.Uint64(buf))
}

// BooleanWeightCodec encodes BooleanWeight as a single byte.
type BooleanWeightCodec struct{}

func (BooleanWeightCodec) Size() int            { return 1 }
func (BooleanWeightCodec) SemiringType() string { return "boolean" }
func (BooleanWeightCodec) Encode(w BooleanWeight, buf []byte) {
	if w {
		buf[0] = 1
	} else {
		buf[0] = 0
	}
}
func (BooleanWeightCodec) Decode(buf []byte) BooleanWeight { return buf[0] != 0 }

// ProbabilityWeightCodec encodes ProbabilityWeight as a little-endian
// float64.
type ProbabilityWeightCodec struct{}

func (ProbabilityWeightCodec) Size() int            { return 8 }
func (ProbabilityWeightCodec) SemiringType() string { return "probability" }
func (ProbabilityWeightCodec) Encode(w ProbabilityWeight, buf []byte) {
	binary.LittleEndian.PutUint64(buf, math.Float64bits(float64(w)))
}
func (ProbabilityWeightCodec) Decode(buf []byte) ProbabilityWeight {
	return ProbabilityWeight(math.Float64frombits(binary.LittleEndian.Uint64(buf)))
}
