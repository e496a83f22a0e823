// SPDX-License-Identifier: MIT
// Package matrix: dense linear-algebra kernels.
// Each kernel validates through the central validators, wraps failures
// with its operation tag via kernelErrorf, and walks fixed loop orders so
// identical inputs always produce identical results.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial accumulator value for dot products and
// substitution sums.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping.
const (
	opDet       = "Det"
	opInverse   = "Inverse"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opMatVec    = "MatVec"
)

// kernelErrorf wraps err with an operation tag, preserving the original
// sentinel via %w for errors.Is. Call only with err != nil.
func kernelErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Det computes the determinant of a square matrix by Gaussian elimination
// with partial pivoting on a working copy.
//
// Implementation:
//   - Stage 1: validate square input; clone into a scratch Dense.
//   - Stage 2: for each column, pick the largest-magnitude pivot at or
//     below the diagonal (first-max wins on ties), swap rows (flipping the
//     determinant sign), eliminate below, and accumulate the diagonal.
//
// A zero pivot column short-circuits to an exact 0 — singular input is a
// legitimate answer here, not an error: the engine's vertical-facet and
// coplanarity tests compare |det| against a tolerance.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Determinism:
//   - Fixed column order and first-max pivot selection.
//
// Complexity:
//   - Time O(n^3), Space O(n^2) for the scratch copy.
func Det(m *Dense) (float64, error) {
	if err := validateSquare(m); err != nil {
		return 0, kernelErrorf(opDet, err)
	}

	n := m.r
	a := m.Clone() // scratch; input stays read-only
	det := 1.0
	var i, j, k, pivRow int
	var pivAbs, factor float64
	for k = 0; k < n; k++ {
		// Partial pivot: largest |a[i,k]| for i >= k, first-max wins.
		pivRow, pivAbs = k, math.Abs(a.data[k*n+k])
		for i = k + 1; i < n; i++ {
			if abs := math.Abs(a.data[i*n+k]); abs > pivAbs {
				pivRow, pivAbs = i, abs
			}
		}
		if pivAbs == 0 {
			return 0, nil // exactly singular
		}
		if pivRow != k {
			// Row swap flips the determinant sign.
			for j = 0; j < n; j++ {
				a.data[k*n+j], a.data[pivRow*n+j] = a.data[pivRow*n+j], a.data[k*n+j]
			}
			det = -det
		}
		det *= a.data[k*n+k]
		// Eliminate below the pivot.
		for i = k + 1; i < n; i++ {
			factor = a.data[i*n+k] / a.data[k*n+k]
			if factor == 0 {
				continue
			}
			for j = k; j < n; j++ {
				a.data[i*n+j] -= factor * a.data[k*n+j]
			}
		}
	}

	return det, nil
}

// Inverse computes A^{-1} by Gauss-Jordan elimination with partial
// pivoting on an augmented working copy.
//
// Implementation:
//   - Stage 1: validate square input; build [A | I] scratch.
//   - Stage 2: for each column, pivot (first-max wins), normalize the
//     pivot row, eliminate every other row; the right block becomes A^{-1}.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//   - ErrSingular — a zero pivot column; A has no inverse.
//
// Determinism:
//   - Fixed column order and first-max pivot selection.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func Inverse(m *Dense) (*Dense, error) {
	if err := validateSquare(m); err != nil {
		return nil, kernelErrorf(opInverse, err)
	}

	n := m.r
	w := 2 * n
	// Augmented [A | I] scratch, row-major with stride w.
	aug := make([]float64, n*w)
	var i, j, k int
	for i = 0; i < n; i++ {
		copy(aug[i*w:i*w+n], m.data[i*n:(i+1)*n])
		aug[i*w+n+i] = 1.0
	}

	var pivRow int
	var pivAbs, pivot, factor float64
	for k = 0; k < n; k++ {
		pivRow, pivAbs = k, math.Abs(aug[k*w+k])
		for i = k + 1; i < n; i++ {
			if abs := math.Abs(aug[i*w+k]); abs > pivAbs {
				pivRow, pivAbs = i, abs
			}
		}
		if pivAbs == 0 {
			return nil, kernelErrorf(opInverse, ErrSingular)
		}
		if pivRow != k {
			for j = 0; j < w; j++ {
				aug[k*w+j], aug[pivRow*w+j] = aug[pivRow*w+j], aug[k*w+j]
			}
		}
		// Normalize the pivot row.
		pivot = aug[k*w+k]
		for j = 0; j < w; j++ {
			aug[k*w+j] /= pivot
		}
		// Eliminate column k from every other row.
		for i = 0; i < n; i++ {
			if i == k {
				continue
			}
			factor = aug[i*w+k]
			if factor == 0 {
				continue
			}
			for j = 0; j < w; j++ {
				aug[i*w+j] -= factor * aug[k*w+j]
			}
		}
	}

	inv := &Dense{r: n, c: n, data: make([]float64, n*n)}
	for i = 0; i < n; i++ {
		copy(inv.data[i*n:(i+1)*n], aug[i*w+n:i*w+w])
	}

	return inv, nil
}

// Mul performs matrix multiplication C = A × B into a fresh Dense.
// Loop order is i→k→j over flat row-major data; zero A[i,k] is skipped.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (a.Cols != b.Rows).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b *Dense) (*Dense, error) {
	if err := validateMulCompatible(a, b); err != nil {
		return nil, kernelErrorf(opMul, err)
	}

	res := &Dense{r: a.r, c: b.c, data: make([]float64, a.r*b.c)}
	var i, j, k int
	var av float64
	for i = 0; i < a.r; i++ {
		for k = 0; k < a.c; k++ {
			av = a.data[i*a.c+k]
			if av == 0 {
				continue
			}
			for j = 0; j < b.c; j++ {
				res.data[i*b.c+j] += av * b.data[k*b.c+j]
			}
		}
	}

	return res, nil
}

// Transpose returns a fresh Dense with rows and columns swapped.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose(m *Dense) (*Dense, error) {
	if err := validateNotNil(m); err != nil {
		return nil, kernelErrorf(opTranspose, err)
	}

	res := &Dense{r: m.c, c: m.r, data: make([]float64, len(m.data))}
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			res.data[j*m.r+i] = m.data[i*m.c+j]
		}
	}

	return res, nil
}

// MatVec computes y = m * x for a column vector x.
// One flat pass per row; zero x[j] is skipped.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (len(x) != m.Cols()).
//
// Complexity:
//   - Time O(r*c), Space O(r).
func MatVec(m *Dense, x []float64) ([]float64, error) {
	if err := validateNotNil(m); err != nil {
		return nil, kernelErrorf(opMatVec, err)
	}
	if err := validateVecLen(x, m.c); err != nil {
		return nil, kernelErrorf(opMatVec, err)
	}

	y := make([]float64, m.r)
	var i, j, base int
	var acc, xv float64
	for i = 0; i < m.r; i++ {
		acc = ZeroSum
		base = i * m.c
		for j = 0; j < m.c; j++ {
			xv = x[j]
			if xv != 0 {
				acc += m.data[base+j] * xv
			}
		}
		y[i] = acc
	}

	return y, nil
}
