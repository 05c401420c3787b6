package metrics_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/chembalance/fallback"
	"github.com/katalvlaran/chembalance/internal/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestCollectorCountsOutcomes(t *testing.T) {
	col := metrics.New()
	solver := fallback.SolverFunc(func(context.Context, string, language.Tag) (string, error) {
		return "Au → Au", nil
	})
	chain := fallback.NewChain(fallback.WithSolver(solver), fallback.WithObserver(col))

	ctx := context.Background()
	chain.Solve(ctx, "H2 + O2 -> H2O", language.English)   // local ok
	chain.Solve(ctx, "Fe + O2 -> Fe2O3", language.English) // local ok
	chain.Solve(ctx, "Au -> Pb", language.English)         // fallback
	chain.Solve(ctx, "H2 + O2 -> H2O!", language.English)  // rejected input

	expected := `
# HELP chembalance_equations_total Equations processed, by producing method, local balancer result and final status.
# TYPE chembalance_equations_total counter
chembalance_equations_total{local_result="format",method="local",status="failed"} 1
chembalance_equations_total{local_result="ok",method="local",status="ok"} 2
chembalance_equations_total{local_result="unbalanceable",method="ai",status="ok"} 1
`
	require.NoError(t, testutil.GatherAndCompare(col.Registry(), strings.NewReader(expected), "chembalance_equations_total"))

	n, err := testutil.GatherAndCount(col.Registry(), "chembalance_solve_duration_seconds")
	require.NoError(t, err)
	require.Equal(t, 2, n) // one histogram per method

}

func TestWriteTextfile(t *testing.T) {
	col := metrics.New()
	fallback.NewChain(fallback.WithObserver(col)).Solve(context.Background(), "Au -> Pb", language.English)

	path := filepath.Join(t.TempDir(), "chembalance.prom")
	require.NoError(t, col.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), `chembalance_equations_total{local_result="unbalanceable",method="local",status="failed"} 1`)
}
