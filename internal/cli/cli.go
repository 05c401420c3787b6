// SPDX-License-Identifier: MIT
// Package cli implements the chembalance commands behind the cobra wiring in
// cmd/chembalance, writing to injected streams so they can be tested.
package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/muesli/termenv"

	"github.com/katalvlaran/chembalance/balancer"
	"github.com/katalvlaran/chembalance/fallback"
	"github.com/katalvlaran/chembalance/formula"
	"github.com/katalvlaran/chembalance/internal/config"
	"github.com/katalvlaran/chembalance/internal/logging"
	"github.com/katalvlaran/chembalance/internal/metrics"
)

const (
	colorOK   = "#34d399"
	colorFail = "#f87171"
)

// Env is the runtime shared by every command.
type Env struct {
	Out    io.Writer
	Config config.Config
	Logger *slog.Logger
	Solver fallback.Solver // optional external solver
	term   *termenv.Output
}

// NewEnv wires an Env. Output is plain ASCII unless color is true.
func NewEnv(out, errOut io.Writer, cfg config.Config, color bool) (*Env, error) {
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	format, err := logging.ParseFormat(cfg.LogFormat)
	if err != nil {
		return nil, err
	}

	term := termenv.NewOutput(out)
	if !color {
		term = termenv.NewOutput(out, termenv.WithProfile(termenv.Ascii))
	}

	return &Env{
		Out:    out,
		Config: cfg,
		Logger: logging.NewWriter(errOut, level, format),
		term:   term,
	}, nil
}

func (e *Env) paint(s, hex string) string {
	return e.term.String(s).Foreground(e.term.Color(hex)).String()
}

// balanceLine is one --json output record.
type balanceLine struct {
	Input        string  `json:"input"`
	Text         string  `json:"text"`
	Method       string  `json:"method"`
	Failed       bool    `json:"failed"`
	Kind         string  `json:"kind,omitempty"`
	Error        string  `json:"error,omitempty"`
	Coefficients []int64 `json:"coefficients,omitempty"`
}

// BalanceOptions controls RunBalance.
type BalanceOptions struct {
	JSON            bool
	MetricsTextfile string
}

// RunBalance balances every equation in args, or every non-blank line of in
// when args is empty. It returns the number of equations that failed.
func RunBalance(ctx context.Context, env *Env, args []string, in io.Reader, opts BalanceOptions) (int, error) {
	inputs := args
	if len(inputs) == 0 {
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			if line := strings.TrimSpace(sc.Text()); line != "" {
				inputs = append(inputs, line)
			}
		}
		if err := sc.Err(); err != nil {
			return 0, fmt.Errorf("read equations: %w", err)
		}
	}

	col := metrics.New()
	chain := fallback.NewChain(
		fallback.WithSolver(env.Solver),
		fallback.WithBalancerOptions(env.Config.BalancerOptions()...),
		fallback.WithLogger(env.Logger),
		fallback.WithObserver(col),
	)
	lang := env.Config.Language()
	enc := json.NewEncoder(env.Out)

	failed := 0
	for _, raw := range inputs {
		out := chain.Solve(ctx, raw, lang)
		if out.Failed {
			failed++
		}

		if opts.JSON {
			line := balanceLine{
				Input:        raw,
				Text:         out.Text,
				Method:       string(out.Method),
				Failed:       out.Failed,
				Coefficients: out.Local,
			}
			if out.LocalErr != nil {
				line.Kind = balancer.KindOf(out.LocalErr).String()
				line.Error = out.LocalErr.Error()
			}
			if err := enc.Encode(line); err != nil {
				return failed, err
			}
			continue
		}

		switch {
		case out.Failed:
			fmt.Fprintf(env.Out, "%s  %s (%v)\n", raw, env.paint(out.Text, colorFail), out.LocalErr)
		case out.Method == fallback.MethodAI:
			fmt.Fprintf(env.Out, "%s  [%s]\n", env.paint(out.Text, colorOK), out.Method)
		default:
			fmt.Fprintln(env.Out, env.paint(out.Text, colorOK))
		}
	}

	path := opts.MetricsTextfile
	if path == "" {
		path = env.Config.MetricsTextfile
	}
	if path != "" {
		if err := col.WriteTextfile(path); err != nil {
			return failed, fmt.Errorf("write metrics: %w", err)
		}
		env.Logger.Debug("metrics written", "path", path)
	}

	return failed, nil
}

// RunParse prints the element counts of every formula.
func RunParse(env *Env, formulas []string) error {
	for _, f := range formulas {
		ec, err := formula.Parse(f)
		if err != nil {
			return err
		}
		fmt.Fprintf(env.Out, "%s %s\n", f, ec)
	}

	return nil
}

// RunCheck verifies an equation with its written coefficients and prints one
// line per element. It reports whether the equation is balanced.
func RunCheck(env *Env, equation string) (bool, error) {
	rep, err := balancer.Verify(equation, balancer.WithMaxInputLength(env.Config.MaxInputLength))
	if err != nil {
		return false, err
	}
	for _, t := range rep.Tallies {
		mark, hex := "=", colorOK
		if !t.Conserved() {
			mark, hex = "≠", colorFail
		}
		fmt.Fprintln(env.Out, env.paint(fmt.Sprintf("%-2s %s %s %s", t.Symbol, t.Reactants, mark, t.Products), hex))
	}

	return rep.Balanced, nil
}
