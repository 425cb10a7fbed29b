// SPDX-License-Identifier: MIT
// Package table: sentinel error set.
// All constructors and adapters return these sentinels, wrapped with
// fmt.Errorf("Ctx: %w", ErrX) when a call site adds context. Callers match
// via errors.Is. Nothing in this package panics on user input.

package table

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned when a requested or observed shape is invalid
	// (negative dimensions, zero columns, data length != product of shape).
	ErrBadShape = errors.New("table: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("table: index out of range")

	// ErrRagged indicates a nested slice whose rows differ in length.
	ErrRagged = errors.New("table: ragged rows")

	// ErrNotTwoDimensional is returned when a tensor of rank != 2 is offered
	// where a 2-D table is required.
	ErrNotTwoDimensional = errors.New("table: not two-dimensional")

	// ErrUnsupportedType indicates a container type no adapter understands.
	ErrUnsupportedType = errors.New("table: unsupported input type")

	// ErrLabelCount indicates that the number of column labels does not
	// match the number of columns.
	ErrLabelCount = errors.New("table: column label count mismatch")

	// ErrPrecisionLoss is returned when an integer cannot be stored in a
	// float64 cell without rounding (|v| > 2^53).
	ErrPrecisionLoss = errors.New("table: integer not exactly representable")

	// ErrUnknownColumn indicates a label lookup that matched no column.
	ErrUnknownColumn = errors.New("table: unknown column")

	// ErrNilTable indicates that a nil table (receiver or argument) was used.
	ErrNilTable = errors.New("table: nil table")
)

// tableErrorf attaches a call-site tag to a sentinel.
func tableErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
