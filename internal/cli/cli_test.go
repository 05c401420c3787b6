package cli_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/chembalance/fallback"
	"github.com/katalvlaran/chembalance/internal/cli"
	"github.com/katalvlaran/chembalance/internal/config"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func newEnv(t *testing.T, cfg config.Config) (*cli.Env, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var out, errOut bytes.Buffer
	env, err := cli.NewEnv(&out, &errOut, cfg, false)
	require.NoError(t, err)

	return env, &out, &errOut
}

func TestRunBalanceArgs(t *testing.T) {
	env, out, _ := newEnv(t, config.Default())

	failed, err := cli.RunBalance(context.Background(), env, []string{"Al + O2 -> Al2O3", "Au -> Pb"}, nil, cli.BalanceOptions{})
	require.NoError(t, err)
	require.Equal(t, 1, failed)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	require.Equal(t, `4Al + 3O2 \rightarrow 2Al2O3`, lines[0])
	require.True(t, strings.HasPrefix(lines[1], "Au -> Pb  Failed to balance."))
	require.Contains(t, lines[1], "unbalanceable")
}

func TestRunBalanceStdinJSON(t *testing.T) {
	cfg := config.Default()
	cfg.Arrow = "->"
	env, out, _ := newEnv(t, cfg)

	in := strings.NewReader("H2 + O2 = H2O\n\n  CH4 + O2 -> CO2 + H2O  \n")
	failed, err := cli.RunBalance(context.Background(), env, nil, in, cli.BalanceOptions{JSON: true})
	require.NoError(t, err)
	require.Zero(t, failed)

	dec := json.NewDecoder(out)
	var first, second map[string]any
	require.NoError(t, dec.Decode(&first))
	require.NoError(t, dec.Decode(&second))
	require.Equal(t, "2H2 + O2 -> 2H2O", first["text"])
	require.Equal(t, "local", first["method"])
	require.Equal(t, []any{1.0, 2.0, 1.0, 2.0}, second["coefficients"])
	require.NotContains(t, second, "kind")
}

func TestRunBalanceFallbackSolver(t *testing.T) {
	cfg := config.Default()
	cfg.Lang = "ar"
	env, out, errOut := newEnv(t, cfg)
	env.Solver = fallback.SolverFunc(func(_ context.Context, eq string, lang language.Tag) (string, error) {
		require.Equal(t, language.Arabic, lang)
		return "", nil
	})

	failed, err := cli.RunBalance(context.Background(), env, []string{"H2O -> H2 + H2O"}, nil, cli.BalanceOptions{JSON: true})
	require.NoError(t, err)
	require.Equal(t, 1, failed)

	var line map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &line))
	require.Equal(t, "فشل الموازنة.", line["text"])
	require.Equal(t, "degenerate", line["kind"])
	require.Contains(t, errOut.String(), "fallback failed")
}

func TestRunBalanceMetricsTextfile(t *testing.T) {
	env, _, _ := newEnv(t, config.Default())
	path := filepath.Join(t.TempDir(), "out.prom")

	_, err := cli.RunBalance(context.Background(), env, []string{"H2 + O2 -> H2O"}, nil, cli.BalanceOptions{MetricsTextfile: path})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "chembalance_equations_total")
}

func TestRunParse(t *testing.T) {
	env, out, _ := newEnv(t, config.Default())

	require.NoError(t, cli.RunParse(env, []string{"Al2(SO4)3", "Ca(OH)2"}))
	require.Equal(t, "Al2(SO4)3 {Al:2, O:12, S:3}\nCa(OH)2 {Ca:1, H:2, O:2}\n", out.String())

	require.Error(t, cli.RunParse(env, []string{"Ca(OH"}))
}

func TestRunCheck(t *testing.T) {
	env, out, _ := newEnv(t, config.Default())

	ok, err := cli.RunCheck(env, "2H2 + O2 -> 2H2O")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "H  4 = 4\nO  2 = 2\n", out.String())

	out.Reset()
	ok, err = cli.RunCheck(env, "H2 + O2 -> H2O")
	require.NoError(t, err)
	require.False(t, ok)
	require.Contains(t, out.String(), "O  2 ≠ 1")

	_, err = cli.RunCheck(env, "H2 O2")
	require.Error(t, err)
}

func TestNewEnvRejectsBadLogging(t *testing.T) {
	cfg := config.Default()
	cfg.LogLevel = "loud"
	_, err := cli.NewEnv(&bytes.Buffer{}, &bytes.Buffer{}, cfg, false)
	require.Error(t, err)
}
