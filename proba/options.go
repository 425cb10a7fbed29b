// SPDX-License-Identifier: MIT

// Package proba: functional configuration for the validator.
package proba

import (
	"log/slog"
	"math"

	"github.com/katalvlaran/tabkit/internal/logx"
)

// DefaultTolerance is the absolute slack allowed on each row sum.
const DefaultTolerance = 1e-6

const panicToleranceInvalid = "proba: WithTolerance: tol must be finite, non-negative"

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	tol    float64
	logger *slog.Logger
}

// WithTolerance sets the row-sum tolerance. Panics on NaN, ±Inf or negative
// values (programmer error).
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tol = tol }
}

// WithLogger reports each failed assertion at Debug level to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.logger = l }
}

func gatherOptions(opts ...Option) Options {
	o := Options{tol: DefaultTolerance}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	o.logger = logx.OrEnv(o.logger)

	return o
}
