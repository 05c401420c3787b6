// SPDX-License-Identifier: MIT
package fallback

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/text/language"

	"github.com/katalvlaran/chembalance/balancer"
	"github.com/katalvlaran/chembalance/internal/logging"
)

// Method names which path produced an Outcome.
type Method string

const (
	MethodLocal Method = "local"
	MethodAI    Method = "ai"
)

// Solver is the external equation solver. It receives the raw equation and a
// language preference and returns rendered text, or "" / an error on failure.
type Solver interface {
	SolveEquation(ctx context.Context, equation string, lang language.Tag) (string, error)
}

// SolverFunc adapts a function to Solver.
type SolverFunc func(ctx context.Context, equation string, lang language.Tag) (string, error)

// SolveEquation calls f.
func (f SolverFunc) SolveEquation(ctx context.Context, equation string, lang language.Tag) (string, error) {
	return f(ctx, equation, lang)
}

// Observer receives every Outcome with the time Solve took.
type Observer interface {
	Observe(o Outcome, elapsed time.Duration)
}

// Outcome is the result of Chain.Solve.
type Outcome struct {
	Text     string  // balanced equation, or a localized failure message when Failed
	Method   Method  // which path produced Text
	Failed   bool    // true when no path produced an equation
	Local    []int64 // local coefficients when Method == MethodLocal and !Failed
	LocalErr error   // why the local balancer failed; nil on local success
	Err      error   // fallback failure, if the fallback was tried and failed
}

// Chain tries the local balancer, then the Solver.
type Chain struct {
	solver   Solver
	opts     []balancer.Option
	logger   *slog.Logger
	observer Observer
}

// ChainOption configures a Chain.
type ChainOption func(*Chain)

// WithSolver sets the fallback solver. A nil solver disables the fallback.
func WithSolver(s Solver) ChainOption { return func(c *Chain) { c.solver = s } }

// WithBalancerOptions passes options to every local balance call.
func WithBalancerOptions(opts ...balancer.Option) ChainOption {
	return func(c *Chain) { c.opts = append(c.opts, opts...) }
}

// WithLogger sets the logger; the default discards.
func WithLogger(l *slog.Logger) ChainOption { return func(c *Chain) { c.logger = l } }

// WithObserver registers an observer (metrics).
func WithObserver(o Observer) ChainOption { return func(c *Chain) { c.observer = o } }

// NewChain builds a Chain.
func NewChain(opts ...ChainOption) *Chain {
	c := &Chain{logger: logging.NewNop()}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Solve balances raw locally and falls back to the Solver on failure.
// ctx bounds only the Solver call.
func (c *Chain) Solve(ctx context.Context, raw string, lang language.Tag) Outcome {
	start := time.Now()
	out := c.solve(ctx, raw, lang)
	if c.observer != nil {
		c.observer.Observe(out, time.Since(start))
	}

	return out
}

func (c *Chain) solve(ctx context.Context, raw string, lang language.Tag) Outcome {
	res, err := balancer.Balance(raw, c.opts...)
	if err == nil {
		c.logger.Debug("balance ok", "equation", raw, "method", MethodLocal)
		return Outcome{Text: res.Text, Method: MethodLocal, Local: res.Coefficients}
	}

	kind := balancer.KindOf(err)
	c.logger.Debug("balance failed", "equation", raw, "kind", kind.String(), "error", err)

	if gerr := balancer.CheckInput(raw, c.opts...); gerr != nil {
		return Outcome{Text: localize(lang, msgInvalidInput), Method: MethodLocal, Failed: true, LocalErr: err}
	}
	if c.solver == nil {
		return Outcome{Text: localize(lang, msgFailed), Method: MethodLocal, Failed: true, LocalErr: err}
	}

	text, ferr := c.solver.SolveEquation(ctx, raw, lang)
	text = strings.TrimSpace(text)
	if ferr != nil || text == "" {
		c.logger.Warn("fallback failed", "equation", raw, "kind", kind.String(), "error", ferr)
		return Outcome{Text: localize(lang, msgFailed), Method: MethodLocal, Failed: true, LocalErr: err, Err: ferr}
	}
	c.logger.Info("fallback used", "equation", raw, "kind", kind.String(), "method", MethodAI)

	return Outcome{Text: text, Method: MethodAI, LocalErr: err}
}
