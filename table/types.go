// SPDX-License-Identifier: MIT

// Package table: capability interfaces and element kinds.
package table

// DType tags the element kind of a column. Storage is always float64; the
// tag only decides how values are rendered and compared after a round-trip.
type DType uint8

const (
	// Float64 is the default kind for columns without explicit typing.
	Float64 DType = iota
	// Int64 marks columns whose values are integers.
	Int64
)

// String returns the numpy-style dtype name.
func (d DType) String() string {
	switch d {
	case Int64:
		return "int64"
	default:
		return "float64"
	}
}

// Table is the read-only capability every tabkit consumer depends on.
//
// Contract:
//   - Dims reports rows and columns; both are >= 0.
//   - Columns returns nil when the source carries no labels; otherwise a
//     slice of exactly cols labels. Callers must not mutate it.
//   - Values returns a fresh row-major copy of length rows*cols.
type Table interface {
	Dims() (rows, cols int)
	Columns() []string
	Values() []float64
}

// Typed is implemented by tables that know the element kind of each column.
// Tables that do not implement it are treated as all-Float64.
type Typed interface {
	DTypes() []DType
}

// DTypesOf returns the per-column kinds of t, defaulting to Float64.
func DTypesOf(t Table) []DType {
	_, c := t.Dims()
	if tt, ok := t.(Typed); ok {
		if dts := tt.DTypes(); len(dts) == c {
			out := make([]DType, c)
			copy(out, dts)
			return out
		}
	}

	return make([]DType, c) // zero value is Float64
}
