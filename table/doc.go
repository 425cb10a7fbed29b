// SPDX-License-Identifier: MIT

// Package table defines the in-memory tabular shapes tabkit works on.
//
// The package provides:
//
//   - Table, the capability interface every consumer depends on: dimensions,
//     optional column labels and a row-major copy of the values.
//   - Dense, a row-major float64 buffer with safe accessors and no labels.
//   - Frame, a labeled table with a per-column element kind (DType).
//   - NDArray, a shaped flat buffer of any rank, used where the rank itself
//     must be observable (a 1-D prediction vector is not a matrix).
//   - Adapters from plain slices and gonum mat.Matrix values (From, AsArray,
//     FromMatrix) and the canonical labeled form (Canonical).
//
// Unlabeled sources receive the stringified 0-based column index as label
// when canonicalized, so a 3-column Dense becomes a Frame labeled "0","1","2".
//
// All constructors copy their input; no value returned by this package
// aliases caller-owned memory.
package table
