// SPDX-License-Identifier: MIT

// Package table - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Carry a single element kind for the whole buffer (Float64 or Int64).
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone/Values: O(r*c).

package table

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
	ctxRow = "Row" // method tag used in error wrappers
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is an unlabeled row-major table of float64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense struct {
	r, c  int       // number of rows and columns
	data  []float64 // flat backing storage, length == r*c
	dtype DType     // element kind shared by every column
}

// NewDense creates an r×c Dense table initialized to zeros.
// Stage 1 (Validate): ensure rows and cols are non-negative.
// Stage 2 (Prepare): allocate the flat backing slice.
// Zero-row and zero-column shapes are legal here; consumers that need at
// least one column (the CSV writer) enforce that themselves.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, tableErrorf("NewDense", ErrBadShape)
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewDenseFrom builds a Dense from a flat row-major buffer (copied).
// Returns ErrBadShape when len(data) != rows*cols.
func NewDenseFrom(rows, cols int, data []float64) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	if len(data) != rows*cols {
		return nil, tableErrorf("NewDenseFrom", ErrBadShape)
	}
	copy(m.data, data)

	return m, nil
}

// Dims returns (rows, cols).
func (m *Dense) Dims() (rows, cols int) { return m.r, m.c }

// Rows returns the row count.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count.
func (m *Dense) Cols() int { return m.c }

// Columns returns nil: Dense never carries labels.
func (m *Dense) Columns() []string { return nil }

// DTypes reports the shared element kind once per column.
func (m *Dense) DTypes() []DType {
	out := make([]DType, m.c)
	for j := range out {
		out[j] = m.dtype
	}

	return out
}

// DType returns the element kind shared by every column.
func (m *Dense) DType() DType { return m.dtype }

// Values returns a row-major copy of the buffer.
func (m *Dense) Values() []float64 {
	out := make([]float64, len(m.data))
	copy(out, m.data)

	return out
}

// indexOf bounds-checks (row,col) and computes the flat offset.
// The returned error carries the caller's method tag and coordinates.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Row returns a copy of row i.
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Clone returns a deep copy of the Dense table.
// Complexity: O(r*c) time and memory.
func (m *Dense) Clone() *Dense {
	data := make([]float64, len(m.data))
	copy(data, m.data)

	return &Dense{r: m.r, c: m.c, data: data, dtype: m.dtype}
}

// String implements fmt.Stringer for easy debugging.
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteString("[")
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
