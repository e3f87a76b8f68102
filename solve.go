// SPDX-License-Identifier: MIT

package matcache

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// CachedInverse returns the inverse of the matrix held by c, serving it from
// the cache when valid and computing it otherwise.
//
// Description:
//
//	The operation owns all compute-or-fetch policy; the CacheableMatrix is a
//	pure state holder. The cache slot has exactly two states (unset ⇄ set):
//	it transitions to "set" only here, on a successful solve, and back to
//	"unset" only via SetMatrix.
//
// Algorithm Outline:
//  1. Consult the cached-inverse slot.
//  2. Hit: bump the hit counter, emit the cache-hit signal through the
//     configured Notifier, and return the stored inverse. No computation.
//  3. Miss: bump the miss counter, factorize the held matrix as P·A = L·U
//     (partial pivoting, gonum), reject it when the condition-number estimate
//     exceeds the configured cutoff, then solve A·X = I column-wise via the
//     triangular factors — numerically stabler than any explicit inverse
//     formula. Store X in the cache slot and return it.
//
// Options are passed through to the solve step unmodified: WithMaxCondition
// tunes the singularity cutoff, WithNotifier swaps the hit sink. The cache
// layer interprets none of them beyond picking the Notifier.
//
// Errors:
//   - ErrNilCache       — c is nil.
//   - ErrNotInvertible  — non-square value, exact singularity, or a condition
//     number above the cutoff. The cache slot is left unset on failure; no
//     partial or garbage inverse is ever stored.
//
// Complexity:
//
//	Hit:  O(n²) (defensive copy of the stored inverse).
//	Miss: O(n³) time, O(n²) memory.
func CachedInverse(c *CacheableMatrix, opts ...Option) (*mat.Dense, error) {
	// Validate the holder itself; everything else is deferred to the solve.
	if c == nil {
		return nil, cacheErrorf(opCachedInverse, ErrNilCache)
	}

	// Gather per-call configuration (defaults + caller overrides).
	o := gatherOptions(opts...)

	// Fast path: serve the cached inverse and signal the hit.
	if inv, ok := c.CachedInverse(); ok {
		c.hits++
		dim, _ := inv.Dims()
		o.notifier.CacheHit(dim)

		return inv, nil
	}

	// Compute path: solve A·X = I, cache on success only.
	c.misses++
	inv, err := solveIdentity(c.value, o.maxCondition)
	if err != nil {
		return nil, cacheErrorf(opCachedInverse, err)
	}
	c.SetCachedInverse(inv)

	return inv, nil
}

// solveIdentity computes A^{-1} by solving A·X = I through an LU
// factorization with partial pivoting. The factorization's condition-number
// estimate gates the solve: past maxCond the computed inverse would be
// numerical noise, so the matrix is reported as not invertible instead.
//
// Returns plain sentinel-wrapped errors; the facade adds the operation tag.
func solveIdentity(a *mat.Dense, maxCond float64) (*mat.Dense, error) {
	// Shape guards. gonum panics on a non-square Factorize input, so the
	// solve step enforces squareness itself and maps the violation onto the
	// invertibility sentinel.
	if err := ValidateNotNil(a); err != nil {
		return nil, err
	}
	if err := ValidateSquare(a); err != nil {
		return nil, err
	}

	// Factorize P·A = L·U with partial pivoting.
	n, _ := a.Dims()
	var lu mat.LU
	lu.Factorize(a)

	// Singularity gate: an exactly singular matrix estimates cond = +Inf,
	// an ill-conditioned one exceeds maxCond.
	cond := lu.Cond()
	if math.IsNaN(cond) || cond > maxCond {
		return nil, fmt.Errorf("condition number %.4g exceeds %.4g: %w", cond, maxCond, ErrNotInvertible)
	}

	// Solve A·X = I using the triangular factors.
	inv := mat.NewDense(n, n, nil)
	if err := lu.SolveTo(inv, false, eye(n)); err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrNotInvertible)
	}

	return inv, nil
}

// eye returns the n×n identity matrix used as the right-hand side of the
// solve. Complexity: O(n²) allocation, O(n) writes.
func eye(n int) *mat.Dense {
	id := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		id.Set(i, i, 1.0)
	}

	return id
}
