// Package gofst is a generic, in-memory engine for weighted
// finite-state transducers (wFSTs) over arbitrary semirings.
package gofst

// StateId identifies a state within an FST. Ids are dense and
// assigned sequentially starting at 0; a properly constructed FST's
// state ids always cover exactly 0..NumStates()-1.
type StateId int

// NoStateId is returned in place of a StateId where none exists
// (e.g. the start state of an empty FST).
const NoStateId StateId = -1

// Label identifies an input or output symbol on a transition. Labels
// are opaque to every algorithm in this package except for equality
// with EpsLabel.
type Label int32

// EpsLabel is the reserved label meaning "no symbol" (epsilon).
const EpsLabel Label = 0

// EpsSymbol is the symbol-table entry associated with EpsLabel.
const EpsSymbol = "<eps>"
