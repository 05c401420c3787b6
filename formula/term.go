// SPDX-License-Identifier: MIT
package formula

import (
	"errors"
	"strconv"
)

// Term is a formula with an optional leading stoichiometric coefficient, e.g. "2H2O".
type Term struct {
	Molecule
	Coefficient int  // leading coefficient; 1 when absent
	Explicit    bool // true when the input carried a coefficient
}

// ParseTerm splits a leading integer coefficient from the formula that follows
// it and parses the formula. "3O2" yields Coefficient 3 and Formula "O2".
//
// Errors (all *FormatError, offsets relative to term):
//   - a zero or oversized coefficient;
//   - a coefficient with nothing after it;
//   - any ParseMolecule error on the remainder.
func ParseTerm(term string) (Term, error) {
	j := 0
	for j < len(term) && isDigit(term[j]) {
		j++
	}

	t := Term{Coefficient: 1}
	if j > 0 {
		n, err := strconv.Atoi(term[:j])
		if err != nil || n > MaxCount {
			return Term{}, formatErrorf(term, 0, "coefficient %s exceeds %d", term[:j], MaxCount)
		}
		if n == 0 {
			return Term{}, formatErrorf(term, 0, "zero coefficient")
		}
		if j == len(term) {
			return Term{}, formatErrorf(term, j, "coefficient without a formula")
		}
		t.Coefficient, t.Explicit = n, true
	}

	m, err := ParseMolecule(term[j:])
	if err != nil {
		var fe *FormatError
		if errors.As(err, &fe) {
			return Term{}, &FormatError{Formula: term, Pos: fe.Pos + j, Reason: fe.Reason}
		}
		return Term{}, err
	}
	t.Molecule = m

	return t, nil
}
