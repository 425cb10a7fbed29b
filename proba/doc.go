// SPDX-License-Identifier: MIT

// Package proba guards predicted-probability matrices before they are consumed.
//
// AssertYPredProbaIsValid is a precondition check: it returns nil for a
// well-formed matrix and an *AssertionError otherwise. The checks run in a
// fixed order and stop at the first violation:
//
//  1. the prediction has exactly two dimensions;
//  2. it has one row per input sample;
//  3. every entry is a probability (finite, within [0, 1]);
//  4. every row sums to 1 within tolerance (DefaultTolerance unless WithTolerance).
//
// Every assertion failure matches errors.Is(err, ErrAssertion) as well as
// the sentinel of the violated check, so callers can branch on either.
package proba
