// SPDX-License-Identifier: MIT

// Package balancer: functional configuration.
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors that panic on nonsensical values (programmer error),
//   - gatherOptions helper that applies them over the defaults.
package balancer

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultMaxDenominator bounds the reduced denominator of every null-space
	// coefficient before scaling. Larger denominators are reported as
	// KindUnbalanceable.
	DefaultMaxDenominator = 1000

	// DefaultMaxInputLength bounds the raw equation length in runes.
	// Zero disables the check.
	DefaultMaxInputLength = 200

	// DefaultArrow is the separator rendered between the two sides.
	DefaultArrow = `\rightarrow`
)

// ---------- Internal panic messages ----------

const (
	panicMaxDenominator = "balancer: WithMaxDenominator: bound must be >= 1"
	panicMaxInputLength = "balancer: WithMaxInputLength: length must be >= 0"
	panicArrow          = "balancer: WithArrow: arrow must be non-empty"
)

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options holds the resolved configuration of one balancing call.
// Fields are unexported; use the With* constructors.
type Options struct {
	maxDenominator int64
	maxInputLength int
	arrow          string
}

func defaultOptions() Options {
	return Options{
		maxDenominator: DefaultMaxDenominator,
		maxInputLength: DefaultMaxInputLength,
		arrow:          DefaultArrow,
	}
}

func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithMaxDenominator sets the denominator bound used during rationalization.
// Panics if n < 1.
func WithMaxDenominator(n int64) Option {
	if n < 1 {
		panic(panicMaxDenominator)
	}

	return func(o *Options) { o.maxDenominator = n }
}

// WithMaxInputLength sets the maximum raw input length in runes; 0 disables it.
// Panics if n < 0.
func WithMaxInputLength(n int) Option {
	if n < 0 {
		panic(panicMaxInputLength)
	}

	return func(o *Options) { o.maxInputLength = n }
}

// WithArrow sets the rendered separator, e.g. "->" or "→" for plain text.
// Panics on an empty arrow.
func WithArrow(arrow string) Option {
	if arrow == "" {
		panic(panicArrow)
	}

	return func(o *Options) { o.arrow = arrow }
}
