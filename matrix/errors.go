// SPDX-License-Identifier: MIT

package matrix

import "errors"

// Sentinel errors returned by the matrix package. Every message is prefixed
// with "matrix: " for grep-ability. Callers may wrap them with
// fmt.Errorf("ctx: %w", ErrX); errors.Is keeps working.
var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// At/Set return it instead of panicking.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. a vector whose length does not match the matrix side.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrRagged indicates that row slices passed to NewDenseFromRows differ in length.
	ErrRagged = errors.New("matrix: ragged rows")

	// ErrNilMatrix indicates that a nil Matrix was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrNaN signals a NaN entry.
	ErrNaN = errors.New("matrix: NaN encountered")

	// ErrNaNInf signals a NaN or ±Inf entry where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNegative signals a negative entry (including -Inf) where values must be ≥ 0.
	ErrNegative = errors.New("matrix: negative entry")
)

