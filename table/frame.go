// SPDX-License-Identifier: MIT

// Package table - Frame: labeled columns over row-major storage.
//
// Purpose:
//   - Model the "labeled dataframe" shape: every column has a string label
//     and an element kind; rows are ordered and carry no index.
//   - Serve as the canonical form every other source is normalized into
//     before encoding (see Canonical).
//
// Determinism:
//   - Column order is the construction order; nothing is sorted or hashed.

package table

import (
	"math"
	"slices"

	"gonum.org/v1/gonum/mat"
)

// Frame is a labeled 2-D table. Labels are unique by convention only;
// Column returns the first match.
type Frame struct {
	columns []string
	dtypes  []DType
	r, c    int
	data    []float64 // row-major, len == r*c
}

// NewFrame builds a Float64 Frame from labels and nested rows (copied).
//
// Errors:
//   - ErrRagged if rows differ in length.
//   - ErrLabelCount if len(columns) != row width.
//
// With zero rows the width is taken from len(columns).
func NewFrame(columns []string, rows [][]float64) (*Frame, error) {
	d, err := FromRows(rows)
	if err != nil {
		return nil, tableErrorf("NewFrame", err)
	}
	if len(rows) == 0 {
		d = &Dense{r: 0, c: len(columns)}
	}

	return newFrame(columns, d.DTypes(), d.r, d.c, d.data)
}

// NewFrameFrom builds a Frame from a flat row-major buffer and explicit
// element kinds. A nil dtypes slice means all-Float64.
func NewFrameFrom(columns []string, dtypes []DType, rows int, data []float64) (*Frame, error) {
	cols := len(columns)
	if rows < 0 || len(data) != rows*cols {
		return nil, tableErrorf("NewFrameFrom", ErrBadShape)
	}
	if dtypes == nil {
		dtypes = make([]DType, cols)
	}

	return newFrame(columns, dtypes, rows, cols, data)
}

// newFrame validates label and kind counts and copies every slice.
func newFrame(columns []string, dtypes []DType, r, c int, data []float64) (*Frame, error) {
	if len(columns) != c || len(dtypes) != c {
		return nil, tableErrorf("Frame", ErrLabelCount)
	}
	buf := make([]float64, len(data))
	copy(buf, data)

	return &Frame{
		columns: slices.Clone(columns),
		dtypes:  slices.Clone(dtypes),
		r:       r,
		c:       c,
		data:    buf,
	}, nil
}

// Dims returns (rows, cols).
func (f *Frame) Dims() (rows, cols int) { return f.r, f.c }

// Columns returns a copy of the column labels (never nil, possibly empty).
func (f *Frame) Columns() []string {
	if f.columns == nil {
		return []string{}
	}

	return slices.Clone(f.columns)
}

// DTypes returns a copy of the per-column element kinds.
func (f *Frame) DTypes() []DType { return slices.Clone(f.dtypes) }

// Values returns a row-major copy of the cells.
func (f *Frame) Values() []float64 { return slices.Clone(f.data) }

// At retrieves the cell at (row, col).
func (f *Frame) At(row, col int) (float64, error) {
	if row < 0 || row >= f.r || col < 0 || col >= f.c {
		return 0, tableErrorf("Frame.At", ErrOutOfRange)
	}

	return f.data[row*f.c+col], nil
}

// Column returns a copy of the first column labeled name.
func (f *Frame) Column(name string) ([]float64, error) {
	j := slices.Index(f.columns, name)
	if j < 0 {
		return nil, tableErrorf("Frame.Column", ErrUnknownColumn)
	}
	out := make([]float64, f.r)
	for i := 0; i < f.r; i++ {
		out[i] = f.data[i*f.c+j]
	}

	return out, nil
}

// WithDTypes returns a copy of f with the given per-column kinds.
func (f *Frame) WithDTypes(dtypes ...DType) (*Frame, error) {
	return newFrame(f.columns, dtypes, f.r, f.c, f.data)
}

// Equal reports whether f and g have identical labels, kinds and cells.
// NaN cells compare equal to NaN cells, matching dataframe equality.
func (f *Frame) Equal(g *Frame) bool {
	if f == nil || g == nil {
		return f == g
	}
	if f.r != g.r || f.c != g.c {
		return false
	}
	if !slices.Equal(f.columns, g.columns) || !slices.Equal(f.dtypes, g.dtypes) {
		return false
	}
	for k, v := range f.data {
		w := g.data[k]
		if v != w && !(math.IsNaN(v) && math.IsNaN(w)) {
			return false
		}
	}

	return true
}

// ToMatrix copies the cells into a gonum dense matrix.
// gonum forbids zero-length matrices, so empty frames yield ErrBadShape.
func (f *Frame) ToMatrix() (*mat.Dense, error) {
	if f.r == 0 || f.c == 0 {
		return nil, tableErrorf("Frame.ToMatrix", ErrBadShape)
	}

	return mat.NewDense(f.r, f.c, slices.Clone(f.data)), nil
}
