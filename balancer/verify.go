// SPDX-License-Identifier: MIT
package balancer

import (
	"math/big"

	"github.com/katalvlaran/chembalance/formula"
)

// ElementTally is the atom count of one element on each side of an equation,
// with the written coefficients applied.
type ElementTally struct {
	Symbol    string
	Reactants *big.Int
	Products  *big.Int
}

// Conserved reports whether both sides carry the same number of atoms.
func (t ElementTally) Conserved() bool { return t.Reactants.Cmp(t.Products) == 0 }

// Report is the outcome of Verify.
type Report struct {
	Equation Equation
	Tallies  []ElementTally // matrix row order
	Balanced bool           // every tally conserved
}

// Verify checks an equation exactly as written, coefficients included, e.g.
// "2H2 + O2 -> 2H2O". Missing coefficients count as 1. It reports per-element
// totals instead of failing on an unbalanced equation; only the input guard,
// Split and parse failures return an error.
func Verify(raw string, opts ...Option) (Report, error) {
	eq, err := ParseEquation(raw, opts...)
	if err != nil {
		return Report{}, err
	}

	rep := Report{Equation: eq, Balanced: true}
	for _, sym := range eq.Elements() {
		t := ElementTally{
			Symbol:    sym,
			Reactants: sideTotal(eq.Reactants, sym),
			Products:  sideTotal(eq.Products, sym),
		}
		if !t.Conserved() {
			rep.Balanced = false
		}
		rep.Tallies = append(rep.Tallies, t)
	}

	return rep, nil
}

func sideTotal(terms []formula.Term, sym string) *big.Int {
	total := new(big.Int)
	var term big.Int
	for _, t := range terms {
		term.SetInt64(int64(t.Coefficient))
		term.Mul(&term, big.NewInt(int64(t.Counts[sym])))
		total.Add(total, &term)
	}

	return total
}
