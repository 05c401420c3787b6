// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) of exact rationals & safe accessors.
//
// Purpose:
//   - Provide a row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Keep cells exact: every entry is a big.Rat, so elimination never rounds.
//
// AI-Hints:
//   - Kernels in this package operate on the flat data slice directly.
//   - At returns a copy; mutate through Set/SetInt only.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1) plus big.Rat copy; Clone: O(r*c).

package matrix

import (
	"fmt"
	"math/big"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt     = "At"     // method tag used in error wrappers
	ctxSet    = "Set"    // method tag used in error wrappers
	ctxSetInt = "SetInt" // method tag used in error wrappers
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
//
// Behavior highlights:
//   - Stable, human-friendly messages; preserves sentinel via %w.
//
// Complexity:
//   - Time O(1), Space O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix of exact rationals.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//     The zero value of big.Rat is 0, so a fresh buffer is the zero matrix.
type Dense struct {
	r, c int       // row and column counts (>0)
	data []big.Rat // contiguous row-major storage (len == r*c)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an r×c zero matrix using row-major storage.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	// Validate shape.
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{r: rows, c: cols, data: make([]big.Rat, rows*cols)}, nil
}

// FromInts builds a Dense from a rectangular table of integers.
// Every row must have the same length as the first one.
//
// Errors:
//   - ErrInvalidDimensions when the table is empty or a row is empty.
//   - ErrDimensionMismatch when rows are ragged.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromInts(rows [][]int64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	m, err := NewDense(len(rows), len(rows[0]))
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != m.c {
			return nil, fmt.Errorf("FromInts: row %d: %w", i, ErrDimensionMismatch)
		}
		for j, v := range row {
			m.data[i*m.c+j].SetInt64(v)
		}
	}

	return m, nil
}

// Rows returns the number of rows in the matrix.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
func (m *Dense) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At returns a copy of the element at (row, col).
// The caller owns the returned value; mutating it never affects m.
//
// Errors:
//   - ErrOutOfRange for invalid indices.
func (m *Dense) At(row, col int) (*big.Rat, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		return nil, err
	}

	return new(big.Rat).Set(&m.data[idx]), nil
}

// Set copies v into (row, col).
//
// Errors:
//   - ErrOutOfRange for invalid indices.
//   - ErrNilValue when v is nil.
func (m *Dense) Set(row, col int, v *big.Rat) error {
	idx, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	if v == nil {
		return denseErrorf(ctxSet, row, col, ErrNilValue)
	}
	m.data[idx].Set(v)

	return nil
}

// SetInt stores the integer v at (row, col).
func (m *Dense) SetInt(row, col int, v int64) error {
	idx, err := m.indexOf(ctxSetInt, row, col)
	if err != nil {
		return err
	}
	m.data[idx].SetInt64(v)

	return nil
}

// ZeroRows returns the indices of rows whose entries are all zero, ascending.
// Complexity: O(r*c).
func (m *Dense) ZeroRows() []int {
	var out []int
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			if m.data[i*m.c+j].Sign() != 0 {
				break
			}
		}
		if j == m.c {
			out = append(out, i)
		}
	}

	return out
}

// Clone returns a deep copy of the matrix.
// Complexity: O(r*c) time and memory.
func (m *Dense) Clone() *Dense {
	out := &Dense{r: m.r, c: m.c, data: make([]big.Rat, len(m.data))}
	for i := range m.data {
		out.data[i].Set(&m.data[i])
	}

	return out
}

// String renders rows as "[a, b/c, ...]\n" using big.Rat.RatString,
// so integers print without a denominator.
// Complexity: O(r*c).
func (m *Dense) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j = 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			sb.WriteString(m.data[i*m.c+j].RatString())
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
