// SPDX-License-Identifier: MIT
// Package balancer: error taxonomy.
// Every failure returned by this package is an *Error carrying one Kind.
// Callers match kinds with errors.Is against the sentinels below, or read the
// kind directly with KindOf. Parser failures stay reachable through errors.As
// (*formula.FormatError).

package balancer

import (
	"errors"
	"fmt"
)

// Kind classifies a balancing failure.
type Kind int

const (
	// KindUnknown is returned by KindOf for errors not produced by this package.
	KindUnknown Kind = iota
	// KindFormat: no separator, several separators, an empty side or term,
	// oversized input, or characters outside the equation alphabet.
	KindFormat
	// KindParse: a term failed formula validation.
	KindParse
	// KindUnbalanceable: no all-positive solution exists, or the solution is
	// not unique up to scale.
	KindUnbalanceable
	// KindDegenerate: the unique solution has a zero or negative coefficient.
	KindDegenerate
)

// String returns the lowercase kind name used in messages and metrics labels.
func (k Kind) String() string {
	switch k {
	case KindFormat:
		return "format"
	case KindParse:
		return "parse"
	case KindUnbalanceable:
		return "unbalanceable"
	case KindDegenerate:
		return "degenerate"
	default:
		return "unknown"
	}
}

var (
	// ErrFormat matches every KindFormat error.
	ErrFormat = errors.New("balancer: malformed equation")

	// ErrParse matches every KindParse error.
	ErrParse = errors.New("balancer: malformed formula")

	// ErrUnbalanceable matches every KindUnbalanceable error.
	ErrUnbalanceable = errors.New("balancer: equation cannot be balanced")

	// ErrDegenerate matches every KindDegenerate error.
	ErrDegenerate = errors.New("balancer: non-positive coefficients")
)

func (k Kind) sentinel() error {
	switch k {
	case KindFormat:
		return ErrFormat
	case KindParse:
		return ErrParse
	case KindUnbalanceable:
		return ErrUnbalanceable
	case KindDegenerate:
		return ErrDegenerate
	default:
		return nil
	}
}

// Error is a classified balancing failure.
type Error struct {
	Kind Kind   // failure class
	Msg  string // human-readable detail
	Err  error  // underlying cause, may be nil
}

// Error implements error as "balancer: <kind>: <msg>[: <cause>]".
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("balancer: %s: %s: %v", e.Kind, e.Msg, e.Err)
	}

	return fmt.Sprintf("balancer: %s: %s", e.Kind, e.Msg)
}

// Unwrap exposes the underlying cause.
func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is the sentinel for e.Kind.
func (e *Error) Is(target error) bool {
	s := e.Kind.sentinel()

	return s != nil && target == s
}

// KindOf returns the Kind of the first *Error in err's chain, or KindUnknown.
func KindOf(err error) Kind {
	var be *Error
	if errors.As(err, &be) {
		return be.Kind
	}

	return KindUnknown
}

func newError(kind Kind, cause error, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Err: cause}
}
