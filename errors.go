package gofst

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrorKind classifies the failures an algorithm in this package can
// return. Algorithms never panic or use errors as control flow for
// conditions a caller can reasonably expect to happen; NoSuchState,
// NonConvergent and DivisionByZero in particular are part of the
// documented contract of the functions that return them.
type ErrorKind int

const (
	// ErrNoSuchState is returned whenever an operation is given a
	// StateId that does not refer to a valid state of the FST.
	ErrNoSuchState ErrorKind = iota
	// ErrIndexOutOfRange is returned by operations addressing a
	// transition by its index within a state's transition sequence.
	ErrIndexOutOfRange
	// ErrInvalidFormat is returned when parsing a malformed serialized
	// FST or symbol table.
	ErrInvalidFormat
	// ErrUnknownSemiringType is returned when a serialized semiring
	// type string does not match any semiring in this package's
	// catalogue.
	ErrUnknownSemiringType
	// ErrSemiringMismatch is returned when a ConstFst binary file
	// names a known semiring other than the one the reading codec
	// handles.
	ErrSemiringMismatch
	// ErrNonConvergent is returned by ShortestDistance and
	// ShortestDistanceToFinal when the relaxation does not settle
	// within the iteration budget, as on a cycle whose path sum
	// diverges.
	ErrNonConvergent
	// ErrDivisionByZero is returned by a WeaklyDivisible.Divide call
	// whose divisor is the semiring's Zero.
	ErrDivisionByZero
	// ErrReverseNotInvolutive is returned when an algorithm that
	// requires Reverse to be the identity (on the semiring it was
	// called with) is given one that is not.
	ErrReverseNotInvolutive
)

func (k ErrorKind) String() string {
	switch k {
	case ErrNoSuchState:
		return "no such state"
	case ErrIndexOutOfRange:
		return "index out of range"
	case ErrInvalidFormat:
		return "invalid format"
	case ErrUnknownSemiringType:
		return "unknown semiring type"
	case ErrSemiringMismatch:
		return "semiring mismatch"
	case ErrNonConvergent:
		return "non-convergent"
	case ErrDivisionByZero:
		return "division by zero"
	case ErrReverseNotInvolutive:
		return "reverse not involutive"
	default:
		return "unknown error"
	}
}

// FstError is the concrete error type for the failure kinds above.
// Plain I/O failures in the file and stream helpers (creating,
// opening or mapping a file, a failed write or scan) are returned as
// github.com/pkg/errors wrappers instead. Context is a short
// human-readable string describing what was being attempted; the
// underlying cause, if any, is preserved and reachable with
// errors.Unwrap, errors.Is and errors.As.
type FstError struct {
	Kind    ErrorKind
	Context string
	cause   error
}

func (e *FstError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Context, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Context)
}

// Unwrap exposes the wrapped cause, if any, to errors.Is/errors.As.
func (e *FstError) Unwrap() error { return e.cause }

// newError builds an *FstError with no wrapped cause.
func newError(kind ErrorKind, format string, args ...interface{}) *FstError {
	return &FstError{Kind: kind, Context: fmt.Sprintf(format, args...)}
}

// wrapError builds an *FstError that chains an existing error as its
// cause via github.com/pkg/errors, preserving a stack trace on the
// cause for %+v formatting.
func wrapError(kind ErrorKind, cause error, format string, args ...interface{}) *FstError {
	return &FstError{Kind: kind, Context: fmt.Sprintf(format, args...), cause: errors.WithStack(cause)}
}

func noSuchStateError(s StateId) *FstError {
	return newError(ErrNoSuchState, "state %d does not exist", s)
}
