// SPDX-License-Identifier: MIT
package formula

import (
	"errors"
	"fmt"
)

// ErrMalformed matches every *FormatError via errors.Is.
var ErrMalformed = errors.New("formula: malformed formula")

// FormatError reports why and where a formula was rejected.
type FormatError struct {
	Formula string // input as given
	Pos     int    // byte offset of the offending token
	Reason  string // short human-readable cause
}

// Error implements error.
func (e *FormatError) Error() string {
	return fmt.Sprintf("formula: %q at offset %d: %s", e.Formula, e.Pos, e.Reason)
}

// Is makes errors.Is(err, ErrMalformed) true for any *FormatError.
func (e *FormatError) Is(target error) bool {
	return target == ErrMalformed
}

// formatErrorf builds a *FormatError with a formatted reason.
func formatErrorf(formula string, pos int, format string, args ...any) error {
	return &FormatError{Formula: formula, Pos: pos, Reason: fmt.Sprintf(format, args...)}
}
