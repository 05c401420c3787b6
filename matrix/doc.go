// Package matrix offers an exact rational dense matrix and the elimination
// kernels built on it.
//
// The matrix package provides:
//
//   - Dense, a row-major matrix of big.Rat cells with bounds-checked At/Set.
//   - RREF, Gauss–Jordan elimination with partial pivoting by column order.
//   - NullSpace, a basis of the homogeneous solutions derived from the RREF.
//   - MulVec, used to check that a candidate vector is a solution.
//
// Arithmetic never rounds, so pivot detection and null-space extraction are
// exact. Matrices are meant for small systems (tens of rows and columns), such
// as stoichiometric matrices of chemical equations.
//
// See the examples in this package for usage patterns.
package matrix
