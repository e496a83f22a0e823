// SPDX-License-Identifier: MIT
// Package matrix: central fail-fast validators shared by all kernels.
// Kernels validate through these helpers so every entry point reports the
// same sentinel for the same defect.

package matrix

// validateNotNil rejects a nil matrix argument.
func validateNotNil(m *Dense) error {
	if m == nil {
		return ErrNilMatrix
	}

	return nil
}

// validateSquare rejects nil and non-square matrices.
func validateSquare(m *Dense) error {
	if err := validateNotNil(m); err != nil {
		return err
	}
	if m.r != m.c {
		return ErrNonSquare
	}

	return nil
}

// validateMulCompatible rejects nil operands and inner-dimension mismatch
// for a×b.
func validateMulCompatible(a, b *Dense) error {
	if err := validateNotNil(a); err != nil {
		return err
	}
	if err := validateNotNil(b); err != nil {
		return err
	}
	if a.c != b.r {
		return ErrDimensionMismatch
	}

	return nil
}

// validateVecLen rejects a vector whose length differs from want.
func validateVecLen(x []float64, want int) error {
	if len(x) != want {
		return ErrDimensionMismatch
	}

	return nil
}
