// SPDX-License-Identifier: MIT
// Package matrix: exact Gauss–Jordan elimination and null-space extraction.
//
// Purpose:
//   - Reduce a rational matrix to reduced row-echelon form (RREF) with
//     partial pivoting by column order.
//   - Derive a null-space basis from the RREF, one vector per free column.
//   - Multiply a matrix by a rational vector (conservation checks).
//
// Notes:
//   - Arithmetic is exact (big.Rat); a pivot is "nonzero" iff Sign() != 0.
//     There is no epsilon anywhere in this file.

package matrix

import (
	"fmt"
	"math/big"
)

// Operation name constants for unified error wrapping.
const (
	opRREF      = "RREF"
	opNullSpace = "NullSpace"
	opMulVec    = "MulVec"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// RREF reduces a copy of m to reduced row-echelon form.
// The input is never mutated.
//
// Implementation:
//   - Stage 1: Clone m.
//   - Stage 2: For each column lead (left to right) and the next unfilled row r:
//     search rows r..R-1 downward for the first nonzero entry in column lead.
//     No pivot → the column is free; move to the next column with the same r.
//   - Stage 3: Swap the pivot row into r, divide it by the pivot, and subtract
//     the right multiple of it from every other row so column lead is e_r.
//
// Returns:
//   - *Dense: the reduced matrix (same shape as m).
//   - []int : pivot column of each reduced row, in row order; len == rank.
//
// Errors:
//   - ErrNilMatrix when m is nil.
//
// Determinism:
//   - First-nonzero pivot choice (by row index) and fixed i→j loops.
//
// Complexity:
//   - Time O(r*c*min(r,c)) rational operations, Space O(r*c).
func RREF(m *Dense) (*Dense, []int, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, nil, matrixErrorf(opRREF, err)
	}

	out := m.Clone()
	rows, cols := out.r, out.c
	pivots := make([]int, 0, rows)

	var (
		r, lead, i, j int
		factor        big.Rat
		scratch       big.Rat
		inv           big.Rat
	)
	for lead = 0; lead < cols && r < rows; lead++ {
		// Search downward for a nonzero pivot in this column.
		i = r
		for i < rows && out.data[i*cols+lead].Sign() == 0 {
			i++
		}
		if i == rows {
			continue // free column
		}

		// Swap rows i and r.
		if i != r {
			for j = 0; j < cols; j++ {
				out.data[i*cols+j], out.data[r*cols+j] = out.data[r*cols+j], out.data[i*cols+j]
			}
		}

		// Normalize the pivot row.
		inv.Inv(&out.data[r*cols+lead])
		for j = 0; j < cols; j++ {
			out.data[r*cols+j].Mul(&out.data[r*cols+j], &inv)
		}

		// Eliminate column lead from every other row.
		for i = 0; i < rows; i++ {
			if i == r || out.data[i*cols+lead].Sign() == 0 {
				continue
			}
			factor.Set(&out.data[i*cols+lead])
			for j = 0; j < cols; j++ {
				scratch.Mul(&factor, &out.data[r*cols+j])
				out.data[i*cols+j].Sub(&out.data[i*cols+j], &scratch)
			}
		}

		pivots = append(pivots, lead)
		r++
	}

	return out, pivots, nil
}

// NullSpace returns a basis of {x : m·x = 0}, one vector per free column of
// the RREF, ordered by free column ascending. The basis vector for free column
// f has x[f] = 1, x[g] = 0 for every other free column g, and
// x[p_k] = -R[k][f] for the pivot column p_k of reduced row k.
//
// Returns:
//   - [][]*big.Rat: basis vectors (each of length m.Cols()); empty when m has
//     full column rank (only the trivial solution).
//
// Errors:
//   - ErrNilMatrix when m is nil.
//
// Complexity:
//   - Time dominated by RREF; O(rank*nullity) extra.
func NullSpace(m *Dense) ([][]*big.Rat, error) {
	reduced, pivots, err := RREF(m)
	if err != nil {
		return nil, matrixErrorf(opNullSpace, err)
	}

	cols := reduced.c
	isPivot := make([]bool, cols)
	for _, p := range pivots {
		isPivot[p] = true
	}

	var basis [][]*big.Rat
	for f := 0; f < cols; f++ {
		if isPivot[f] {
			continue
		}
		vec := make([]*big.Rat, cols)
		for j := range vec {
			vec[j] = new(big.Rat)
		}
		vec[f].SetInt64(1)
		for k, p := range pivots {
			vec[p].Neg(&reduced.data[k*cols+f])
		}
		basis = append(basis, vec)
	}

	return basis, nil
}

// MulVec computes y = m·x for a rational vector x.
//
// Errors:
//   - ErrNilMatrix when m is nil.
//   - ErrDimensionMismatch when len(x) != m.Cols().
//   - ErrNilValue when any x[j] is nil.
//
// Complexity:
//   - Time O(r*c), Space O(r).
func MulVec(m *Dense, x []*big.Rat) ([]*big.Rat, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMulVec, err)
	}
	if err := ValidateVecLen(m, len(x)); err != nil {
		return nil, matrixErrorf(opMulVec, err)
	}
	for j, v := range x {
		if v == nil {
			return nil, matrixErrorf(opMulVec, fmt.Errorf("x[%d]: %w", j, ErrNilValue))
		}
	}

	y := make([]*big.Rat, m.r)
	var term big.Rat
	for i := 0; i < m.r; i++ {
		sum := new(big.Rat)
		for j := 0; j < m.c; j++ {
			term.Mul(&m.data[i*m.c+j], x[j])
			sum.Add(sum, &term)
		}
		y[i] = sum
	}

	return y, nil
}
