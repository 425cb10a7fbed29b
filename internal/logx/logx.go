// SPDX-License-Identifier: MIT

// Package logx builds the slog loggers used across tabkit.
//
// Every library option set resolves its logger through OrEnv: a logger
// passed via WithLogger wins; otherwise, when TABKIT_LOG_LEVEL names a level,
// records go to stderr through a tint handler at that level; otherwise they
// are dropped. New wraps the tint handler so records print colorized and
// aligned on terminals.
package logx

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// EnvLevel names the environment variable LevelFromEnv reads.
const EnvLevel = "TABKIT_LOG_LEVEL"

// New returns a tint-backed logger writing to w at the given level.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.TimeOnly,
		NoColor:    !isTerminal(w),
	}))
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

// FromEnv returns a tint logger writing to w at the level named by EnvLevel,
// or a discarding logger when the variable is unset or unknown.
func FromEnv(w io.Writer) *slog.Logger {
	level, ok := LevelFromEnv()
	if !ok {
		return Discard()
	}

	return New(w, level)
}

// OrEnv returns l, or FromEnv(os.Stderr) when l is nil.
func OrEnv(l *slog.Logger) *slog.Logger {
	if l != nil {
		return l
	}

	return FromEnv(os.Stderr)
}

// ParseLevel maps "debug", "info", "warn"/"warning" and "error"
// (case-insensitive) to slog levels. ok is false for anything else.
func ParseLevel(s string) (level slog.Level, ok bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

// LevelFromEnv parses EnvLevel; ok is false if it is unset or unknown.
func LevelFromEnv() (slog.Level, bool) {
	return ParseLevel(os.Getenv(EnvLevel))
}

// isTerminal reports whether w is a character device.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fi, err := f.Stat()
	if err != nil {
		return false
	}

	return fi.Mode()&os.ModeCharDevice != 0
}
