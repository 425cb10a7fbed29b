// SPDX-License-Identifier: MIT

// Package csvio - value rendering and parsing.

package csvio

import (
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/tabkit/table"
)

// Exponent bounds outside which floats switch to scientific notation
// (shortest-repr convention: 1e-05, 0.0001, 1000000000000000.0, 1e+16).
const (
	minPlainExp = -4
	maxPlainExp = 16
)

// maxExactInt mirrors table's bound for integers stored in float64 cells.
const maxExactInt = 1 << 53

// formatValue renders v according to the column kind.
func formatValue(v float64, kind table.DType) (string, error) {
	if kind == table.Int64 {
		if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) {
			return "", ErrNonIntegral
		}
		return strconv.FormatInt(int64(v), 10), nil
	}

	return formatFloat(v), nil
}

// formatFloat renders the shortest decimal that parses back to v.
func formatFloat(v float64) string {
	switch {
	case math.IsNaN(v):
		return ""
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	case v == 0:
		if math.Signbit(v) {
			return "-0.0"
		}
		return "0.0"
	}

	e := strconv.FormatFloat(v, 'e', -1, 64)
	exp, _ := strconv.Atoi(e[strings.IndexByte(e, 'e')+1:])
	if exp < minPlainExp || exp >= maxPlainExp {
		return e
	}

	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}

	return s
}

// parseColumn decodes raw fields into floats and infers the column kind.
// Empty fields become NaN and force Float64.
func parseColumn(fields []string) ([]float64, table.DType, int, error) {
	out := make([]float64, len(fields))
	kind := table.Int64
	for i, s := range fields {
		if kind == table.Int64 {
			if n, err := strconv.ParseInt(s, 10, 64); err == nil && n <= maxExactInt && n >= -maxExactInt {
				out[i] = float64(n)
				continue
			}
			kind = table.Float64
		}
		if s == "" {
			out[i] = math.NaN()
			continue
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, 0, i, err
		}
		out[i] = f
	}
	if len(fields) == 0 {
		kind = table.Float64
	}

	return out, kind, 0, nil
}
