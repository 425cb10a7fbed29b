// SPDX-License-Identifier: MIT

// Package proba - validators.
//
// Determinism & Performance:
//   - Pure: no allocation beyond one row-sum slice, no shared state.
//   - Entries are scanned row-major; the first violation wins.

package proba

import (
	"fmt"

	"github.com/katalvlaran/tabkit/table"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
)

// check names reported in AssertionError.Check.
const (
	checkNDim  = "ndim"
	checkRows  = "rows"
	checkRange = "range"
	checkSum   = "sum"
)

// AssertYPredProbaIsValid verifies that yPredProba is a probability matrix
// for the samples of xInput.
//
// Inputs:
//   - xInput: any container table.From accepts; only its row count is used.
//   - yPredProba: any container table.AsArray accepts; flat slices stay 1-D
//     and therefore fail the dimensionality check.
//
// Returns nil on success, an *AssertionError on the first violated check, or
// a table sentinel (wrapped) when either argument is not a supported container.
func AssertYPredProbaIsValid(xInput, yPredProba any, opts ...Option) error {
	o := gatherOptions(opts...)

	x, err := table.From(xInput)
	if err != nil {
		return fmt.Errorf("AssertYPredProbaIsValid: x_input: %w", err)
	}
	y, err := table.AsArray(yPredProba)
	if err != nil {
		return fmt.Errorf("AssertYPredProbaIsValid: y_pred_proba: %w", err)
	}

	n, _ := x.Dims()
	if ae := validate(n, y, o.tol); ae != nil {
		o.logger.Debug("invalid prediction", "check", ae.Check, "row", ae.Row, "col", ae.Col, "got", ae.Got)
		return ae
	}

	return nil
}

// validate runs the ordered checks against an expected row count n.
func validate(n int, y *table.NDArray, tol float64) *AssertionError {
	shape := y.Shape()
	if len(shape) != 2 {
		return fail(checkNDim, -1, -1, float64(len(shape)), ErrNotTwoDimensional)
	}
	rows, cols := shape[0], shape[1]
	if rows != n {
		return fail(checkRows, -1, -1, float64(rows), ErrRowCountMismatch)
	}

	data := y.Data()
	for k, v := range data {
		// Written as a positive range test so NaN is rejected too.
		if !(v >= 0 && v <= 1) {
			return fail(checkRange, k/cols, k%cols, v, ErrOutOfRange)
		}
	}

	sums := rowSums(rows, cols, data)
	for i, s := range sums {
		if !scalar.EqualWithinAbs(s, 1, tol) {
			return fail(checkSum, i, -1, s, ErrRowSum)
		}
	}

	return nil
}

// RowSums returns the sum of each row of a rank-2 array.
func RowSums(a *table.NDArray) ([]float64, error) {
	if a == nil {
		return nil, fmt.Errorf("RowSums: %w", table.ErrNilTable)
	}
	shape := a.Shape()
	if len(shape) != 2 {
		return nil, fmt.Errorf("RowSums: %w", table.ErrNotTwoDimensional)
	}

	return rowSums(shape[0], shape[1], a.Data()), nil
}

func rowSums(rows, cols int, data []float64) []float64 {
	out := make([]float64, rows)
	for i := range out {
		out[i] = floats.Sum(data[i*cols : (i+1)*cols])
	}

	return out
}
