// SPDX-License-Identifier: MIT

// Package pip: functional configuration of the solver. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Notes:
//   - The strategies can also be changed on a Problem after construction
//     (SetCuttingStrategy, SetPivotRowStrategy); limits and logger cannot.
//   - A zero limit means "unbounded".
package pip

import (
	"io"

	"github.com/sirupsen/logrus"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultCuttingStrategy cuts one row with the simplest parametric part.
	DefaultCuttingStrategy = CuttingFirst

	// DefaultPivotRowStrategy stops at the first admissible negative row.
	DefaultPivotRowStrategy = PivotRowFirst

	// DefaultCutLimit bounds the cuts generated over one Solve; 0 = unbounded.
	DefaultCutLimit = 0

	// DefaultCompatibilityStepLimit bounds the pivots and cut rounds of one
	// compatibility check; 0 = unbounded (see WithCompatibilityStepLimit).
	DefaultCompatibilityStepLimit = 0
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicCuttingInvalid   = "pip: WithCuttingStrategy: unknown strategy"
	panicPivotRowInvalid  = "pip: WithPivotRowStrategy: unknown strategy"
	panicCutLimitInvalid  = "pip: WithCutLimit: limit must be >= 0"
	panicCompatLimitInval = "pip: WithCompatibilityStepLimit: limit must be >= 0"
)

// Option mutates internal options. Constructors panic only on nonsensical
// values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	cutting     CuttingStrategy    // DefaultCuttingStrategy
	pivotRow    PivotRowStrategy   // DefaultPivotRowStrategy
	cutLimit    int                // DefaultCutLimit
	compatLimit int                // DefaultCompatibilityStepLimit
	logger      logrus.FieldLogger // discarding logger by default
}

func validCutting(s CuttingStrategy) bool {
	return s == CuttingFirst || s == CuttingDeepest || s == CuttingAll
}

func validPivotRow(s PivotRowStrategy) bool {
	return s == PivotRowFirst || s == PivotRowMaxColumn
}

// WithCuttingStrategy selects the cut generation policy.
// Panics on an unknown strategy.
func WithCuttingStrategy(s CuttingStrategy) Option {
	if !validCutting(s) {
		panic(panicCuttingInvalid)
	}

	return func(o *Options) { o.cutting = s }
}

// WithPivotRowStrategy selects the pivot row policy.
// Panics on an unknown strategy.
func WithPivotRowStrategy(s PivotRowStrategy) Option {
	if !validPivotRow(s) {
		panic(panicPivotRowInvalid)
	}

	return func(o *Options) { o.pivotRow = s }
}

// WithCutLimit bounds the number of cuts one Solve may generate.
// When exceeded, Solve reports GaveUp. 0 means unbounded.
// Panics on a negative limit.
func WithCutLimit(n int) Option {
	if n < 0 {
		panic(panicCutLimitInvalid)
	}

	return func(o *Options) { o.cutLimit = n }
}

// WithCompatibilityStepLimit bounds the pivots plus cut rounds of each
// compatibility check. An exhausted check answers "compatible", which never
// discards a feasible region but may keep an empty one. 0 means unbounded.
// Unbounded checks can stall on small inputs: three constraints over two
// parameters under CuttingAll already run for seconds, while a limit of
// 1000 finishes them. Set a limit for untrusted input.
// Panics on a negative limit.
func WithCompatibilityStepLimit(n int) Option {
	if n < 0 {
		panic(panicCompatLimitInval)
	}

	return func(o *Options) { o.compatLimit = n }
}

// WithLogger routes solver traces to l. A nil l restores the discarding logger.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l == nil {
			l = discardLogger()
		}
		o.logger = l
	}
}

// discardLogger returns a logrus logger writing nowhere.
func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.PanicLevel)

	return l
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{
		cutting:     DefaultCuttingStrategy,
		pivotRow:    DefaultPivotRowStrategy,
		cutLimit:    DefaultCutLimit,
		compatLimit: DefaultCompatibilityStepLimit,
		logger:      discardLogger(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
