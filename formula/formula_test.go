// SPDX-License-Identifier: MIT
package formula_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/chembalance/formula"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want formula.ElementCount
	}{
		{"H2O", formula.ElementCount{"H": 2, "O": 1}},
		{"Al2(SO4)3", formula.ElementCount{"Al": 2, "S": 3, "O": 12}},
		{"Ca(OH)2", formula.ElementCount{"Ca": 1, "O": 2, "H": 2}},
		{"NaCl", formula.ElementCount{"Na": 1, "Cl": 1}},
		{"CH3COOH", formula.ElementCount{"C": 2, "H": 4, "O": 2}},
		{"Mg(NO3)2", formula.ElementCount{"Mg": 1, "N": 2, "O": 6}},
		{"K4[Fe(CN)6]", formula.ElementCount{"K": 4, "Fe": 1, "C": 6, "N": 6}},
		{"((CH3)3C)2O", formula.ElementCount{"C": 8, "H": 18, "O": 1}},
		{"(NH4)3PO4", formula.ElementCount{"N": 3, "H": 12, "P": 1, "O": 4}},
		{"Co", formula.ElementCount{"Co": 1}},
		{"CO", formula.ElementCount{"C": 1, "O": 1}},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := formula.Parse(tc.in)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestParseMoleculeOrder(t *testing.T) {
	m, err := formula.ParseMolecule("Ca(OH)2")
	require.NoError(t, err)
	require.Equal(t, "Ca(OH)2", m.Formula)
	require.Equal(t, []string{"Ca", "O", "H"}, m.Order) // textual first-seen order

	m, err = formula.ParseMolecule("HOH")
	require.NoError(t, err)
	require.Equal(t, []string{"H", "O"}, m.Order) // repeated symbol listed once
	require.Equal(t, 2, m.Counts["H"])
}

func TestParseMalformed(t *testing.T) {
	tests := []struct {
		name string
		in   string
		pos  int
	}{
		{"empty", "", 0},
		{"lowercase start", "h2O", 0},
		{"unmatched close", "H2)O", 2},
		{"unclosed group", "Ca(OH2", 2},
		{"mismatched brackets", "K4[Fe(CN)6)", 10},
		{"empty group", "H()2", 1},
		{"zero count", "H0", 1},
		{"zero multiplier", "(OH)0", 4},
		{"stray digit", "2", 0},
		{"whitespace", "H2 O", 2},
		{"unicode", "H₂O", 1},
		{"oversized count", "H99999999999", 1},
		{"three letter symbol", "Uuo", 2},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := formula.Parse(tc.in)
			require.Error(t, err)
			require.ErrorIs(t, err, formula.ErrMalformed)

			var fe *formula.FormatError
			require.True(t, errors.As(err, &fe))
			require.Equal(t, tc.in, fe.Formula)
			require.Equal(t, tc.pos, fe.Pos)
		})
	}
}

func TestParseOverflowAfterMultiplier(t *testing.T) {
	_, err := formula.Parse("(H2000000000)2")
	require.ErrorIs(t, err, formula.ErrMalformed)
}

func TestElementCountString(t *testing.T) {
	ec, err := formula.Parse("Al2(SO4)3")
	require.NoError(t, err)
	require.Equal(t, []string{"Al", "O", "S"}, ec.Symbols())
	require.Equal(t, "{Al:2, O:12, S:3}", ec.String())
}

func TestParseTerm(t *testing.T) {
	tests := []struct {
		in       string
		coef     int
		explicit bool
		formula  string
	}{
		{"H2O", 1, false, "H2O"},
		{"2H2O", 2, true, "H2O"},
		{"12Fe2(SO4)3", 12, true, "Fe2(SO4)3"},
		{"1O2", 1, true, "O2"},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			term, err := formula.ParseTerm(tc.in)
			require.NoError(t, err)
			require.Equal(t, tc.coef, term.Coefficient)
			require.Equal(t, tc.explicit, term.Explicit)
			require.Equal(t, tc.formula, term.Formula)
		})
	}
}

func TestParseTermMalformed(t *testing.T) {
	tests := []struct {
		in  string
		pos int
	}{
		{"0H2", 0},
		{"3", 1},
		{"2h2", 1},
		{"2Ca(OH", 3},
		{"", 0},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			_, err := formula.ParseTerm(tc.in)
			var fe *formula.FormatError
			require.ErrorAs(t, err, &fe)
			require.Equal(t, tc.in, fe.Formula)
			require.Equal(t, tc.pos, fe.Pos)
		})
	}
}
