// Package tabkit is a small toolkit for tabular prediction plumbing:
// turning in-memory tables into CSV payloads, guarding predicted-probability
// matrices, and pinning shared clients to a single instance.
//
// What is inside:
//
//	table/      — Table capability, Dense / Frame / NDArray, adapters (slices, gonum)
//	csvio/      — SerializeToCSVFormattedBytes and ReadCSV (header-bearing CSV round-trip)
//	proba/      — AssertYPredProbaIsValid (2-D, row count, simplex rows within tolerance)
//	singleton/  — per-type instance registry with Wrap0..Wrap3 constructor wrappers
//
// Quick example:
//
//	x := [][]int{{1, 2, 3}, {4, 5, 6}}
//	payload, _ := csvio.SerializeToCSVFormattedBytes(x) // "0,1,2\n1,2,3\n4,5,6\n"
//
//	yProba := [][]float64{{0.1, 0.2, 0.7}, {0.3, 0.4, 0.3}}
//	if err := proba.AssertYPredProbaIsValid(x, yProba); err != nil {
//		// errors.Is(err, proba.ErrAssertion)
//	}
//
// Libraries log nothing by default; pass a *slog.Logger through each
// package's WithLogger option to see Debug records.
package tabkit
