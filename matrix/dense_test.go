// Package matrix_test contains unit tests for the Dense implementation.
package matrix_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/chembalance/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)                      // zero rows
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions

	_, err = matrix.NewDense(5, -1)                      // negative columns
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions
}

// TestRowsCols verifies that Rows() and Cols() return correct dimension values.
func TestRowsCols(t *testing.T) {
	m, err := matrix.NewDense(3, 4) // create a 3x4 matrix
	require.NoError(t, err)

	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())
}

// TestAtSetOutOfRange ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfRange(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)                          // negative row index
	require.ErrorIs(t, err, matrix.ErrOutOfRange) // expect ErrOutOfRange

	_, err = m.At(0, 2)                           // column out of range
	require.ErrorIs(t, err, matrix.ErrOutOfRange) // expect ErrOutOfRange

	err = m.Set(2, 0, big.NewRat(1, 2))           // row out of range
	require.ErrorIs(t, err, matrix.ErrOutOfRange) // expect ErrOutOfRange

	err = m.SetInt(0, -1, 4)                      // negative column index
	require.ErrorIs(t, err, matrix.ErrOutOfRange) // expect ErrOutOfRange

	err = m.Set(0, 0, nil)                      // nil value
	require.ErrorIs(t, err, matrix.ErrNilValue) // expect ErrNilValue
}

// TestSetGetIsolation validates that At returns a copy and Set copies its input.
func TestSetGetIsolation(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	v := big.NewRat(7, 3)
	require.NoError(t, m.Set(1, 2, v))
	v.SetInt64(100) // mutate caller's value after Set

	got, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, "7/3", got.RatString()) // stored value unaffected

	got.SetInt64(5) // mutate the returned copy
	again, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, "7/3", again.RatString()) // matrix unaffected
}

// TestCloneIndependence ensures Clone() returns a deep copy that does not share storage.
func TestCloneIndependence(t *testing.T) {
	m, err := matrix.FromInts([][]int64{{1, 0}, {0, 2}})
	require.NoError(t, err)

	clone := m.Clone()
	require.NoError(t, clone.SetInt(0, 0, 3)) // modify the clone only

	orig, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, "1", orig.RatString()) // original unchanged
}

// TestFromInts checks shape validation of the integer table constructor.
func TestFromInts(t *testing.T) {
	_, err := matrix.FromInts(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.FromInts([][]int64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	m, err := matrix.FromInts([][]int64{{1, -2}, {3, 4}})
	require.NoError(t, err)
	require.Equal(t, "[1, -2]\n[3, 4]\n", m.String())
}

// TestZeroRows reports only rows with every entry zero.
func TestZeroRows(t *testing.T) {
	m, err := matrix.FromInts([][]int64{{0, 0}, {1, 0}, {0, 0}})
	require.NoError(t, err)
	require.Equal(t, []int{0, 2}, m.ZeroRows())

	full, err := matrix.FromInts([][]int64{{1}})
	require.NoError(t, err)
	require.Empty(t, full.ZeroRows())
}

// TestStringOutput checks that String() prints reduced fractions.
func TestStringOutput(t *testing.T) {
	m, err := matrix.NewDense(1, 2)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 0, big.NewRat(2, 4)))
	require.NoError(t, m.SetInt(0, 1, -3))

	require.Equal(t, "[1/2, -3]\n", m.String())
}
