// SPDX-License-Identifier: MIT
// Package csvio: sentinel error set.
// Input-shape failures surface as the table package sentinels
// (table.ErrUnsupportedType, table.ErrNotTwoDimensional, ...); the
// sentinels below cover encoding and decoding only.

package csvio

import "errors"

var (
	// ErrNoColumns is returned when a table with zero columns is serialized;
	// such a document would have an empty header and be unreadable.
	ErrNoColumns = errors.New("csvio: table has no columns")

	// ErrNonIntegral indicates an Int64 column holding a NaN, ±Inf or
	// fractional value. The writer refuses rather than rounding.
	ErrNonIntegral = errors.New("csvio: non-integral value in int64 column")

	// ErrMalformedCSV wraps every decoding failure: empty input, ragged
	// records, or a field that is not a number.
	ErrMalformedCSV = errors.New("csvio: malformed csv")
)
