// SPDX-License-Identifier: MIT
// Package proba: sentinel error set and the assertion error type.

package proba

import (
	"errors"
	"fmt"
)

var (
	// ErrAssertion is matched by every validation failure.
	ErrAssertion = errors.New("proba: assertion failed")

	// ErrNotTwoDimensional: the prediction is not a matrix.
	ErrNotTwoDimensional = errors.New("proba: prediction is not two-dimensional")

	// ErrRowCountMismatch: prediction rows != input rows.
	ErrRowCountMismatch = errors.New("proba: row count mismatch")

	// ErrOutOfRange: an entry is NaN, infinite or outside [0, 1].
	ErrOutOfRange = errors.New("proba: value outside [0, 1]")

	// ErrRowSum: a row does not sum to 1 within tolerance.
	ErrRowSum = errors.New("proba: row does not sum to 1")
)

// AssertionError reports which check failed and where.
// Row and Col are -1 when the check is not positional.
type AssertionError struct {
	Check string  // short name of the violated check
	Row   int     // offending row, or -1
	Col   int     // offending column, or -1
	Got   float64 // offending value (entry, row sum or row count)
	Err   error   // specific sentinel
}

// Error implements error.
func (e *AssertionError) Error() string {
	switch {
	case e.Col >= 0:
		return fmt.Sprintf("%s: %s at (%d,%d): got %g", ErrAssertion, e.Err, e.Row, e.Col, e.Got)
	case e.Row >= 0:
		return fmt.Sprintf("%s: %s at row %d: got %g", ErrAssertion, e.Err, e.Row, e.Got)
	default:
		return fmt.Sprintf("%s: %s: got %g", ErrAssertion, e.Err, e.Got)
	}
}

// Unwrap exposes the specific sentinel.
func (e *AssertionError) Unwrap() error { return e.Err }

// Is makes every AssertionError match ErrAssertion.
func (e *AssertionError) Is(target error) bool { return target == ErrAssertion }

// fail builds an AssertionError.
func fail(check string, row, col int, got float64, err error) *AssertionError {
	return &AssertionError{Check: check, Row: row, Col: col, Got: got, Err: err}
}
