// SPDX-License-Identifier: MIT
// Package: matcache
//
// Purpose:
//   - Provide a single, canonical source of truth for the shape checks used
//     by the solve step.
//   - Keep the operation facade minimal by delegating nil/shape guards here.
//   - Return plain sentinel errors (with a validator tag) so call sites can
//     wrap uniformly with the operation name.
//
// Note:
//   - The CacheableMatrix holder performs NO validation by design; all policy
//     about when a matrix is acceptable lives in the solve step. Squareness is
//     therefore checked here, at inversion time, never at construction.

package matcache

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// validatorErrorf wraps an underlying error with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the dense matrix reference is non-nil.
//
// Returns ErrNilMatrix if m == nil. Complexity: O(1).
func ValidateNotNil(m *mat.Dense) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m has equal row and column counts.
//
// A non-square matrix has no inverse, so the violation maps onto the single
// invertibility sentinel rather than a separate shape error.
// Assumes m is not nil (caller must ensure). Complexity: O(1).
func ValidateSquare(m mat.Matrix) error {
	r, c := m.Dims()
	if r != c {
		return validatorErrorf(fmt.Sprintf("ValidateSquare: %dx%d", r, c), ErrNotInvertible)
	}

	return nil
}
