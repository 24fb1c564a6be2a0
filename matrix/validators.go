// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single source of truth for common validation checks.
//   - Return sentinel errors wrapped with a validator tag so call sites can
//     match them via errors.Is and still see where the check fired.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing on success.
//   - Element scans run in row-major order and stop at the first violation.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// cellErrorf wraps an element-level violation with its coordinates.
func cellErrorf(tag string, i, j int, v float64, err error) error {
	return fmt.Errorf("%s: (%d,%d)=%g: %w", tag, i, j, v, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateVecLen ensures len(x) == n.
// Complexity: O(1).
func ValidateVecLen(x []float64, n int) error {
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateNoNaN rejects any NaN entry. ±Inf are accepted.
// Complexity: O(r*c).
func ValidateNoNaN(m Matrix) error {
	return scan(m, "ValidateNoNaN", func(v float64) error {
		if math.IsNaN(v) {
			return ErrNaN
		}

		return nil
	})
}

// ValidateNonNegative rejects NaN and any v < 0 (including -Inf).
// +Inf is accepted: it encodes a missing connection.
// Complexity: O(r*c).
func ValidateNonNegative(m Matrix) error {
	return scan(m, "ValidateNonNegative", func(v float64) error {
		if math.IsNaN(v) {
			return ErrNaN
		}
		if v < 0 {
			return ErrNegative
		}

		return nil
	})
}

// ValidateFinite rejects NaN and ±Inf.
// Complexity: O(r*c).
func ValidateFinite(m Matrix) error {
	return scan(m, "ValidateFinite", func(v float64) error {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrNaNInf
		}

		return nil
	})
}

// scan walks m in row-major order and returns the first element error.
func scan(m Matrix, tag string, check func(v float64) error) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	var (
		i, j int
		v    float64
		err  error
		r    = m.Rows()
		c    = m.Cols()
	)
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v, err = m.At(i, j); err != nil {
				return validatorErrorf(tag, err)
			}
			if err = check(v); err != nil {
				return cellErrorf(tag, i, j, v, err)
			}
		}
	}

	return nil
}
