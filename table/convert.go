// SPDX-License-Identifier: MIT

// Package table - adapters from supported containers into Table / NDArray.
//
// Supported sources (From):
//   - [][]float64, [][]float32           → Float64 Dense
//   - [][]int, [][]int32, [][]int64      → Int64 Dense
//   - *Dense, *Frame                      → as-is
//   - *NDArray of rank 2                  → Dense with the array's kind
//   - gonum mat.Matrix                    → Float64 Dense
//   - any other Table implementation      → as-is
//
// Everything else fails with ErrUnsupportedType; tensors of another rank and
// flat slices fail with ErrNotTwoDimensional. Nothing is coerced silently.

package table

import (
	"strconv"

	"gonum.org/v1/gonum/mat"
)

// maxExactInt is the largest magnitude an integer may have and still round-trip
// through a float64 cell.
const maxExactInt = 1 << 53

// Integer is the set of integer element types FromInts accepts.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// FromRows copies a nested float64 slice into a Float64 Dense.
// An empty outer slice yields a 0×0 table.
func FromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 {
		return &Dense{}, nil
	}
	r, c := len(rows), len(rows[0])
	d := &Dense{r: r, c: c, data: make([]float64, 0, r*c)}
	for _, row := range rows {
		if len(row) != c {
			return nil, tableErrorf("FromRows", ErrRagged)
		}
		d.data = append(d.data, row...)
	}

	return d, nil
}

// FromFloat32 widens a nested float32 slice into a Float64 Dense.
func FromFloat32(rows [][]float32) (*Dense, error) {
	if len(rows) == 0 {
		return &Dense{}, nil
	}
	r, c := len(rows), len(rows[0])
	d := &Dense{r: r, c: c, data: make([]float64, 0, r*c)}
	for _, row := range rows {
		if len(row) != c {
			return nil, tableErrorf("FromFloat32", ErrRagged)
		}
		for _, v := range row {
			d.data = append(d.data, float64(v))
		}
	}

	return d, nil
}

// exactInt reports whether v survives the trip through a float64 cell.
// The bound check short-circuits before T(f), whose result is
// implementation-defined once f is out of T's range.
func exactInt[T Integer](v T) bool {
	f := float64(v)

	return f <= maxExactInt && f >= -maxExactInt && T(f) == v
}

// FromInts copies a nested integer slice into an Int64 Dense.
// Returns ErrPrecisionLoss for any value that float64 cannot hold exactly
// (|v| > 2^53).
func FromInts[T Integer](rows [][]T) (*Dense, error) {
	if len(rows) == 0 {
		return &Dense{dtype: Int64}, nil
	}
	r, c := len(rows), len(rows[0])
	d := &Dense{r: r, c: c, data: make([]float64, 0, r*c), dtype: Int64}
	for _, row := range rows {
		if len(row) != c {
			return nil, tableErrorf("FromInts", ErrRagged)
		}
		for _, v := range row {
			if !exactInt(v) {
				return nil, tableErrorf("FromInts", ErrPrecisionLoss)
			}
			d.data = append(d.data, float64(v))
		}
	}

	return d, nil
}

// FromMatrix copies any gonum matrix into a Float64 Dense.
func FromMatrix(m mat.Matrix) *Dense {
	r, c := m.Dims()
	d := &Dense{r: r, c: c, data: make([]float64, r*c)}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			d.data[i*c+j] = m.At(i, j)
		}
	}

	return d
}

// From normalizes a supported 2-D container into a Table.
func From(src any) (Table, error) {
	switch v := src.(type) {
	case nil:
		return nil, tableErrorf("From", ErrNilTable)
	case *Frame:
		if v == nil {
			return nil, tableErrorf("From", ErrNilTable)
		}
		return v, nil
	case *Dense:
		if v == nil {
			return nil, tableErrorf("From", ErrNilTable)
		}
		return v, nil
	case *NDArray:
		if v == nil {
			return nil, tableErrorf("From", ErrNilTable)
		}
		return asTable(v.AsTable())
	case [][]float64:
		return asTable(FromRows(v))
	case [][]float32:
		return asTable(FromFloat32(v))
	case [][]int:
		return asTable(FromInts(v))
	case [][]int32:
		return asTable(FromInts(v))
	case [][]int64:
		return asTable(FromInts(v))
	case []float64, []float32, []int, []int32, []int64:
		return nil, tableErrorf("From", ErrNotTwoDimensional)
	case mat.Matrix:
		return FromMatrix(v), nil
	case Table:
		return v, nil
	default:
		return nil, tableErrorf("From", ErrUnsupportedType)
	}
}

// asTable keeps a failed *Dense from becoming a non-nil Table.
func asTable(d *Dense, err error) (Table, error) {
	if err != nil {
		return nil, err
	}

	return d, nil
}

// AsArray normalizes a container into an NDArray, preserving rank where the
// source has one: flat slices and gonum vectors stay rank 1.
func AsArray(src any) (*NDArray, error) {
	switch v := src.(type) {
	case nil:
		return nil, tableErrorf("AsArray", ErrNilTable)
	case *NDArray:
		if v == nil {
			return nil, tableErrorf("AsArray", ErrNilTable)
		}
		return v, nil
	case []float64:
		return floatVector(v), nil
	case []float32:
		return floatVector(v), nil
	case []int:
		return intVector(v)
	case []int32:
		return intVector(v)
	case []int64:
		return intVector(v)
	case mat.Vector:
		n := v.Len()
		a := &NDArray{shape: []int{n}, data: make([]float64, n)}
		for i := 0; i < n; i++ {
			a.data[i] = v.AtVec(i)
		}
		return a, nil
	}

	t, err := From(src)
	if err != nil {
		return nil, err
	}
	r, c := t.Dims()
	dts := DTypesOf(t)
	a := &NDArray{shape: []int{r, c}, data: t.Values()}
	if c > 0 && allKind(dts, Int64) {
		a.dtype = Int64
	}

	return a, nil
}

// floatVector copies a flat float slice into a rank-1 Float64 NDArray.
func floatVector[T ~float32 | ~float64](v []T) *NDArray {
	a := &NDArray{shape: []int{len(v)}, data: make([]float64, len(v))}
	for i, x := range v {
		a.data[i] = float64(x)
	}

	return a
}

// intVector copies a flat integer slice into a rank-1 Int64 NDArray.
func intVector[T Integer](v []T) (*NDArray, error) {
	a := &NDArray{shape: []int{len(v)}, data: make([]float64, len(v)), dtype: Int64}
	for i, x := range v {
		if !exactInt(x) {
			return nil, tableErrorf("AsArray", ErrPrecisionLoss)
		}
		a.data[i] = float64(x)
	}

	return a, nil
}

// Canonical returns the labeled form of t: its own labels when present,
// otherwise the stringified 0-based column indices.
func Canonical(t Table) (*Frame, error) {
	if t == nil {
		return nil, tableErrorf("Canonical", ErrNilTable)
	}
	r, c := t.Dims()
	cols := t.Columns()
	if cols == nil {
		cols = DefaultColumns(c)
	}

	return newFrame(cols, DTypesOf(t), r, c, t.Values())
}

// DefaultColumns returns the labels "0".."n-1".
func DefaultColumns(n int) []string {
	out := make([]string, n)
	for j := range out {
		out[j] = strconv.Itoa(j)
	}

	return out
}

// allKind reports whether every entry of dts equals d.
func allKind(dts []DType, d DType) bool {
	for _, x := range dts {
		if x != d {
			return false
		}
	}

	return true
}
