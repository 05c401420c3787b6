// SPDX-License-Identifier: MIT
// Package balancer: equation splitting and stoichiometric matrix construction.

package balancer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/katalvlaran/chembalance/formula"
	"github.com/katalvlaran/chembalance/matrix"
)

// Separators lists the accepted reaction separators, longest match first at
// each position. Exactly one occurrence must appear in an equation.
var Separators = []string{"->", "=>", "→", "⟶", "="}

// Equation is an ordered list of reactant terms and product terms.
type Equation struct {
	Reactants []formula.Term
	Products  []formula.Term
}

// Terms returns reactants followed by products: the matrix column order.
func (eq Equation) Terms() []formula.Term {
	out := make([]formula.Term, 0, len(eq.Reactants)+len(eq.Products))
	out = append(out, eq.Reactants...)

	return append(out, eq.Products...)
}

// Elements returns the distinct element symbols in first-seen order across
// reactants then products.
func (eq Equation) Elements() []string {
	var out []string
	seen := make(map[string]struct{})
	for _, t := range eq.Terms() {
		for _, sym := range t.Order {
			if _, ok := seen[sym]; ok {
				continue
			}
			seen[sym] = struct{}{}
			out = append(out, sym)
		}
	}

	return out
}

// Matrix builds the stoichiometric matrix: rows follow Elements(), columns
// follow Terms(); reactant cells hold atom counts, product cells their negation.
// Leading coefficients on the terms are ignored.
func (eq Equation) Matrix() (*matrix.Dense, error) {
	elements := eq.Elements()
	terms := eq.Terms()
	m, err := matrix.NewDense(len(elements), len(terms))
	if err != nil {
		return nil, err
	}
	for i, sym := range elements {
		for j, t := range terms {
			n := int64(t.Counts[sym])
			if j >= len(eq.Reactants) {
				n = -n
			}
			if err = m.SetInt(i, j, n); err != nil {
				return nil, err
			}
		}
	}

	return m, nil
}

// stripSpace removes every Unicode whitespace rune.
func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// allowedRune is the equation alphabet: ASCII letters and digits, '+',
// brackets, and the characters that make up the separators.
func allowedRune(r rune) bool {
	switch {
	case r < utf8.RuneSelf && (unicode.IsLetter(r) || unicode.IsDigit(r)):
		return true
	case strings.ContainsRune("+-=>()[]→⟶", r):
		return true
	default:
		return false
	}
}

// Split strips whitespace and splits raw into its reactant and product term
// strings. It does not parse the terms.
//
// Errors (KindFormat):
//   - no separator, or more than one separator;
//   - an empty side;
//   - an empty term (leading, trailing or doubled '+').
func Split(raw string) ([]string, []string, error) {
	clean := stripSpace(raw)

	var at, width, found int
	for i := 0; i < len(clean); {
		matched := false
		for _, sep := range Separators {
			if strings.HasPrefix(clean[i:], sep) {
				if found == 0 {
					at, width = i, len(sep)
				}
				found++
				i += len(sep)
				matched = true
				break
			}
		}
		if !matched {
			_, size := utf8.DecodeRuneInString(clean[i:])
			i += size
		}
	}
	switch {
	case found == 0:
		return nil, nil, newError(KindFormat, nil, "no reaction separator (use one of %s)", strings.Join(Separators, " "))
	case found > 1:
		return nil, nil, newError(KindFormat, nil, "%d reaction separators, want exactly one", found)
	}

	left, err := splitSide(clean[:at], "reactant")
	if err != nil {
		return nil, nil, err
	}
	right, err := splitSide(clean[at+width:], "product")
	if err != nil {
		return nil, nil, err
	}

	return left, right, nil
}

func splitSide(side, name string) ([]string, error) {
	if side == "" {
		return nil, newError(KindFormat, nil, "%s side is empty", name)
	}
	terms := strings.Split(side, "+")
	for k, t := range terms {
		if t == "" {
			return nil, newError(KindFormat, nil, "%s term %d is empty", name, k+1)
		}
	}

	return terms, nil
}

// ParseEquation validates raw against the input guard, splits it and parses
// every term. Only WithMaxInputLength affects this function.
//
// Errors:
//   - KindFormat from the input guard or Split.
//   - KindParse wrapping the *formula.FormatError of the first bad term.
func ParseEquation(raw string, opts ...Option) (Equation, error) {
	if err := CheckInput(raw, opts...); err != nil {
		return Equation{}, err
	}

	left, right, err := Split(raw)
	if err != nil {
		return Equation{}, err
	}

	var eq Equation
	if eq.Reactants, err = parseTerms(left); err != nil {
		return Equation{}, err
	}
	if eq.Products, err = parseTerms(right); err != nil {
		return Equation{}, err
	}

	return eq, nil
}

// CheckInput applies only the input guard: the WithMaxInputLength bound and
// the equation alphabet (ASCII letters and digits, whitespace, '+', brackets,
// separator characters). It returns a KindFormat error on violation.
func CheckInput(raw string, opts ...Option) error {
	return guardInput(raw, gatherOptions(opts...).maxInputLength)
}

func guardInput(raw string, maxLen int) error {
	if maxLen > 0 && utf8.RuneCountInString(raw) > maxLen {
		return newError(KindFormat, nil, "equation longer than %d characters", maxLen)
	}
	for _, r := range raw {
		if unicode.IsSpace(r) || allowedRune(r) {
			continue
		}
		return newError(KindFormat, nil, "unsupported character %q", r)
	}

	return nil
}

func parseTerms(raw []string) ([]formula.Term, error) {
	out := make([]formula.Term, 0, len(raw))
	for _, s := range raw {
		t, err := formula.ParseTerm(s)
		if err != nil {
			return nil, newError(KindParse, err, "term %q", s)
		}
		out = append(out, t)
	}

	return out, nil
}
