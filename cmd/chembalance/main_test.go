package main

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()

	return out.String(), err
}

func TestBalanceCommand(t *testing.T) {
	out, err := execute(t, "balance", "--no-color", "Fe + O2 -> Fe2O3")
	require.NoError(t, err)
	require.Equal(t, "4Fe + 3O2 \\rightarrow 2Fe2O3\n", out)

	_, err = execute(t, "balance", "--no-color", "Au -> Pb")
	require.EqualError(t, err, "1 equation(s) could not be balanced")
}

func TestParseCommand(t *testing.T) {
	out, err := execute(t, "parse", "--no-color", "Ca(OH)2")
	require.NoError(t, err)
	require.Equal(t, "Ca(OH)2 {Ca:1, H:2, O:2}\n", out)
}

func TestCheckCommand(t *testing.T) {
	_, err := execute(t, "check", "--no-color", "H2 + O2 -> H2O")
	require.EqualError(t, err, "equation is not balanced")
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	require.Contains(t, out, "chembalance version")
}

func TestColorEnabled(t *testing.T) {
	var buf bytes.Buffer
	require.False(t, isTerminal(&buf))          // buffers are never terminals
	require.False(t, colorEnabled(true, &buf))  // --no-color wins
	require.False(t, colorEnabled(false, &buf)) // not a terminal
	t.Setenv("NO_COLOR", "1")
	require.False(t, colorEnabled(false, os.Stdout)) // NO_COLOR wins
}
