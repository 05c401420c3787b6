// SPDX-License-Identifier: MIT
// Package balancer: solve, rationalize and render.
//
// Implementation:
//   - Stage 1: ParseEquation (input guard, split, parse every term).
//   - Stage 2: Build the stoichiometric matrix; reject zero rows and elements
//     confined to one side.
//   - Stage 3: NullSpace via exact RREF. Nullity must be exactly 1.
//   - Stage 4: Rationalize the basis vector to the smallest integers and
//     require every coefficient to be positive.
//   - Stage 5: Re-check M·c = 0 and render.

package balancer

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/katalvlaran/chembalance/formula"
	"github.com/katalvlaran/chembalance/matrix"
)

// Result is a balanced equation.
type Result struct {
	Equation     Equation // parsed terms in input order
	Elements     []string // matrix row order
	Coefficients []int64  // one per term, reactants then products; all >= 1
	Text         string   // rendered equation, e.g. "4Al + 3O2 \rightarrow 2Al2O3"
}

// Balance balances raw and returns the structured result.
// Leading coefficients in the input are ignored and replaced.
//
// Errors: *Error of KindFormat, KindParse, KindUnbalanceable or KindDegenerate.
func Balance(raw string, opts ...Option) (Result, error) {
	o := gatherOptions(opts...)

	eq, err := ParseEquation(raw, opts...)
	if err != nil {
		return Result{}, err
	}
	coeffs, err := solve(eq, o)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Equation:     eq,
		Elements:     eq.Elements(),
		Coefficients: coeffs,
		Text:         Format(eq, coeffs, o.arrow),
	}, nil
}

// BalanceString is Balance reduced to its rendered text.
func BalanceString(raw string, opts ...Option) (string, error) {
	res, err := Balance(raw, opts...)
	if err != nil {
		return "", err
	}

	return res.Text, nil
}

// Solve returns the smallest positive integer coefficients for eq, one per
// term (reactants then products). Coefficients already present on the terms
// are ignored.
func Solve(eq Equation, opts ...Option) ([]int64, error) {
	return solve(eq, gatherOptions(opts...))
}

func solve(eq Equation, o Options) ([]int64, error) {
	m, err := eq.Matrix()
	if err != nil {
		return nil, newError(KindFormat, err, "empty equation")
	}
	elements := eq.Elements()

	if zero := m.ZeroRows(); len(zero) > 0 {
		return nil, newError(KindUnbalanceable, nil, "element %s has no atoms on either side", elements[zero[0]])
	}
	if err = checkBothSides(eq, elements); err != nil {
		return nil, err
	}

	basis, err := matrix.NullSpace(m)
	if err != nil {
		return nil, newError(KindUnbalanceable, err, "elimination failed")
	}
	switch {
	case len(basis) == 0:
		return nil, newError(KindUnbalanceable, nil, "only the all-zero solution conserves every element")
	case len(basis) > 1:
		return nil, newError(KindUnbalanceable, nil, "%d independent solutions; the equation is under-determined", len(basis))
	}

	ints, err := Rationalize(basis[0], o.maxDenominator)
	if err != nil {
		return nil, err
	}
	terms := eq.Terms()
	for j, c := range ints {
		if c.Sign() <= 0 {
			return nil, newError(KindDegenerate, nil, "coefficient of %s would be %s", terms[j].Formula, c)
		}
	}

	// Conservation re-check on the final integers.
	vec := make([]*big.Rat, len(ints))
	for j, c := range ints {
		vec[j] = new(big.Rat).SetInt(c)
	}
	y, err := matrix.MulVec(m, vec)
	if err != nil {
		return nil, newError(KindDegenerate, err, "conservation check")
	}
	for i, v := range y {
		if v.Sign() != 0 {
			return nil, newError(KindDegenerate, nil, "element %s not conserved", elements[i])
		}
	}

	out := make([]int64, len(ints))
	for j, c := range ints {
		if !c.IsInt64() {
			return nil, newError(KindUnbalanceable, nil, "coefficient of %s overflows int64", terms[j].Formula)
		}
		out[j] = c.Int64()
	}

	return out, nil
}

// checkBothSides rejects an element whose atoms appear among reactants only or
// products only; no positive solution can conserve it.
func checkBothSides(eq Equation, elements []string) error {
	for _, sym := range elements {
		if !anyHas(eq.Reactants, sym) {
			return newError(KindUnbalanceable, nil, "element %s appears only among products", sym)
		}
		if !anyHas(eq.Products, sym) {
			return newError(KindUnbalanceable, nil, "element %s appears only among reactants", sym)
		}
	}

	return nil
}

func anyHas(terms []formula.Term, sym string) bool {
	for _, t := range terms {
		if t.Counts[sym] > 0 {
			return true
		}
	}

	return false
}

// Rationalize scales a rational vector to the smallest integer vector with the
// same ratios: multiply by the LCM of all denominators, then divide by the GCD
// of the results. Signs are preserved; an all-zero vector stays zero.
//
// Errors:
//   - KindUnbalanceable when any reduced denominator exceeds maxDen.
func Rationalize(vec []*big.Rat, maxDen int64) ([]*big.Int, error) {
	bound := big.NewInt(maxDen)
	lcm := big.NewInt(1)
	var g big.Int
	for j, v := range vec {
		den := v.Denom()
		if den.Cmp(bound) > 0 {
			return nil, newError(KindUnbalanceable, nil, "coefficient %d has denominator %s above %d", j, den, maxDen)
		}
		g.GCD(nil, nil, lcm, den)
		lcm.Mul(lcm, new(big.Int).Quo(den, &g))
	}

	out := make([]*big.Int, len(vec))
	gcd := new(big.Int)
	for j, v := range vec {
		n := new(big.Int).Mul(v.Num(), lcm)
		n.Quo(n, v.Denom())
		out[j] = n
		gcd.GCD(nil, nil, gcd, new(big.Int).Abs(n))
	}
	if gcd.Sign() > 0 && gcd.Cmp(big.NewInt(1)) != 0 {
		for _, n := range out {
			n.Quo(n, gcd)
		}
	}

	return out, nil
}

// Format renders eq with coeffs as "2H2 + O2 <arrow> 2H2O". A coefficient of 1
// is omitted. coeffs must have one entry per term.
func Format(eq Equation, coeffs []int64, arrow string) string {
	var sb strings.Builder
	writeSide(&sb, eq.Reactants, coeffs)
	sb.WriteByte(' ')
	sb.WriteString(arrow)
	sb.WriteByte(' ')
	writeSide(&sb, eq.Products, coeffs[len(eq.Reactants):])

	return sb.String()
}

func writeSide(sb *strings.Builder, terms []formula.Term, coeffs []int64) {
	for j, t := range terms {
		if j > 0 {
			sb.WriteString(" + ")
		}
		if coeffs[j] != 1 {
			sb.WriteString(strconv.FormatInt(coeffs[j], 10))
		}
		sb.WriteString(t.Formula)
	}
}
