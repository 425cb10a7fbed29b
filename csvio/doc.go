// SPDX-License-Identifier: MIT

// Package csvio encodes 2-D numeric tables as header-bearing CSV bytes and
// decodes them back.
//
// The format is fixed: comma delimiter, a header row of column labels, one
// record per table row, no index column and "\n" line endings (WithCRLF
// switches to "\r\n"). Values are rendered locale-independently:
//
//   - Int64 columns as base-10 integers ("4").
//   - Float64 columns as the shortest round-trip decimal, integral values
//     keeping a ".0" suffix ("4.0", "0.1", "1e-05", "1e+16").
//   - NaN as the empty field, ±Inf as "inf" / "-inf".
//
// ReadCSV infers kinds the same way in reverse: a column whose fields all
// parse as integers is Int64, anything else numeric is Float64. So
//
//	b, _ := csvio.SerializeToCSVFormattedBytes([][]int{{1, 2, 3}, {4, 5, 6}})
//	f, _ := csvio.ReadCSV(b)
//
// yields a Frame labeled "0","1","2" with Int64 columns, equal to the
// canonical form of the input.
package csvio
