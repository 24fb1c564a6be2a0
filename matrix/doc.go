// SPDX-License-Identifier: MIT

// Package matrix provides the dense, row-major float64 matrix used to carry
// rectangular cost tables (clients × facilities) through facloc.
//
// The package offers:
//
//   - Matrix: a minimal bounds-checked interface (Rows, Cols, At, Set, Clone).
//   - Dense: a contiguous row-major implementation with copy-on-construct
//     helpers (NewDense, NewDenseFromRows) and row extraction.
//   - Validators: shape, vector-length and numeric-policy checks shared by
//     higher-level packages (ValidateNotNil, ValidateVecLen, ValidateNoNaN,
//     ValidateNonNegative, ValidateFinite).
//
// Numeric policy:
//
//   - NaN is never a meaningful cost and is rejected by the validators.
//   - +Inf is allowed by ValidateNonNegative: callers use it to encode
//     "no connection". ValidateFinite rejects it.
//
// Errors are package-level sentinels prefixed with "matrix:"; wrap them at the
// call site and match with errors.Is.
package matrix
