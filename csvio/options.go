// SPDX-License-Identifier: MIT

// Package csvio: functional configuration for the CSV writer and reader.
package csvio

import (
	"log/slog"

	"github.com/katalvlaran/tabkit/internal/logx"
)

// DefaultUseCRLF selects "\n" line endings.
const DefaultUseCRLF = false

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	useCRLF bool
	logger  *slog.Logger
}

// WithCRLF terminates records with "\r\n" instead of "\n".
func WithCRLF() Option {
	return func(o *Options) { o.useCRLF = true }
}

// WithLogger routes Debug records about each encode/decode to l.
// A nil logger restores the default (TABKIT_LOG_LEVEL to stderr, else discard).
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.logger = l }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{useCRLF: DefaultUseCRLF}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	o.logger = logx.OrEnv(o.logger)

	return o
}
