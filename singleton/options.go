// SPDX-License-Identifier: MIT

// Package singleton: functional configuration for registries.
package singleton

import (
	"log/slog"

	"github.com/katalvlaran/tabkit/internal/logx"
)

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	logger *slog.Logger
}

// WithLogger records each first construction at Debug level.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.logger = l }
}

func gatherOptions(opts ...Option) Options {
	var o Options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	o.logger = logx.OrEnv(o.logger)

	return o
}
