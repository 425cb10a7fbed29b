// SPDX-License-Identifier: MIT

// Package table - NDArray: a shaped flat buffer of arbitrary rank.
//
// NDArray stands in for numeric tensors. Unlike Dense it keeps its rank, so
// validators can tell a 1-D vector of n values from an n×1 matrix.

package table

import "slices"

// NDArray is a row-major (C-order) numeric tensor.
type NDArray struct {
	shape []int
	data  []float64
	dtype DType
}

// NewNDArray builds an NDArray from a shape and a flat buffer (both copied).
// Every extent must be >= 0 and len(data) must equal their product.
// A nil or empty shape denotes a scalar holding exactly one value.
func NewNDArray(shape []int, data []float64) (*NDArray, error) {
	n := 1
	for _, s := range shape {
		if s < 0 {
			return nil, tableErrorf("NewNDArray", ErrBadShape)
		}
		n *= s
	}
	if len(data) != n {
		return nil, tableErrorf("NewNDArray", ErrBadShape)
	}

	return &NDArray{shape: slices.Clone(shape), data: slices.Clone(data)}, nil
}

// Rank returns the number of dimensions.
func (a *NDArray) Rank() int { return len(a.shape) }

// Shape returns a copy of the extents.
func (a *NDArray) Shape() []int { return slices.Clone(a.shape) }

// Len returns the total element count.
func (a *NDArray) Len() int { return len(a.data) }

// Data returns a copy of the flat buffer.
func (a *NDArray) Data() []float64 { return slices.Clone(a.data) }

// DType returns the element kind.
func (a *NDArray) DType() DType { return a.dtype }

// Row returns a copy of row i of a rank-2 array.
func (a *NDArray) Row(i int) ([]float64, error) {
	if len(a.shape) != 2 {
		return nil, tableErrorf("NDArray.Row", ErrNotTwoDimensional)
	}
	r, c := a.shape[0], a.shape[1]
	if i < 0 || i >= r {
		return nil, tableErrorf("NDArray.Row", ErrOutOfRange)
	}

	return slices.Clone(a.data[i*c : (i+1)*c]), nil
}

// AsTable views a rank-2 array as an unlabeled Dense (copied).
// Returns ErrNotTwoDimensional for any other rank.
func (a *NDArray) AsTable() (*Dense, error) {
	if len(a.shape) != 2 {
		return nil, tableErrorf("NDArray.AsTable", ErrNotTwoDimensional)
	}
	d, err := NewDenseFrom(a.shape[0], a.shape[1], a.data)
	if err != nil {
		return nil, err
	}
	d.dtype = a.dtype

	return d, nil
}
