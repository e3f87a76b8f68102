// SPDX-License-Identifier: MIT

// Package matcache: the CacheableMatrix state holder.
//
// This file contains pure field storage with controlled accessors and no
// validation logic beyond what is structurally required to build a dense
// matrix. All policy about when computation is needed — and whether the held
// matrix is actually invertible — belongs to the CachedInverse operation.

package matcache

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// New constructs a CacheableMatrix holding a deep copy of value, with the
// cached-inverse slot unset. Squareness and invertibility are intentionally
// NOT validated here; a malformed value surfaces only when inversion is
// attempted. Panics on a nil value (programmer error).
// Complexity: O(r*c) for the defensive copy.
func New(value *mat.Dense) *CacheableMatrix {
	if value == nil {
		panic(panicNilValue)
	}

	return &CacheableMatrix{value: mat.DenseCopyOf(value)}
}

// FromRows constructs a CacheableMatrix from a two-dimensional float64 slice,
// one inner slice per row.
//
// Stage 1 (Validate): input must be non-empty and rectangular — a dense
// backing array cannot be built otherwise. Squareness is NOT checked.
// Stage 2 (Ingest): rows are flattened into row-major storage (copied).
//
// Errors: ErrBadShape on empty input, an empty first row, or ragged rows.
// Complexity: O(r*c).
func FromRows(rows [][]float64) (*CacheableMatrix, error) {
	// Validate outer dimension.
	if len(rows) == 0 {
		return nil, cacheErrorf(opFromRows, ErrBadShape)
	}
	// Validate inner dimension against the first row.
	cols := len(rows[0])
	if cols == 0 {
		return nil, cacheErrorf(opFromRows, ErrBadShape)
	}

	// Flatten into row-major backing storage; append copies the data,
	// so the caller keeps exclusive ownership of the input slices.
	data := make([]float64, 0, len(rows)*cols)
	var i int
	for i = range rows {
		if len(rows[i]) != cols {
			return nil, cacheErrorf(opFromRows, fmt.Errorf("row %d has %d values, want %d: %w", i, len(rows[i]), cols, ErrBadShape))
		}
		data = append(data, rows[i]...)
	}

	return &CacheableMatrix{value: mat.NewDense(len(rows), cols, data)}, nil
}

// Matrix returns a deep copy of the current matrix value. No side effects;
// repeated calls without an intervening SetMatrix return equal matrices.
// Complexity: O(r*c).
func (c *CacheableMatrix) Matrix() *mat.Dense {
	return mat.DenseCopyOf(c.value)
}

// SetMatrix replaces the stored matrix with a deep copy of value and
// unconditionally clears the cached inverse in the same call, regardless of
// its prior state — there is no window where a stale inverse is visible.
// No invertibility validation is performed (deferred to CachedInverse).
// Panics on a nil value (programmer error). Complexity: O(r*c).
func (c *CacheableMatrix) SetMatrix(value *mat.Dense) {
	if value == nil {
		panic(panicNilValue)
	}
	c.value = mat.DenseCopyOf(value)
	c.inverse = nil // invalidate atomically with the replacement
}

// CachedInverse returns a copy of the cached inverse and true when one has
// been stored since the last SetMatrix call, or (nil, false) otherwise.
// The comma-ok form keeps "unset" distinct from any valid matrix value,
// including an all-zero one. No side effects. Complexity: O(r*c) when set.
func (c *CacheableMatrix) CachedInverse() (*mat.Dense, bool) {
	if c.inverse == nil {
		return nil, false
	}

	return mat.DenseCopyOf(c.inverse), true
}

// SetCachedInverse stores a deep copy of inv as the cached inverse,
// overwriting any prior value. The caller is responsible for inv being the
// mathematical inverse of the current matrix value — no verification is
// performed here. Panics on a nil inverse (programmer error).
// Complexity: O(r*c).
func (c *CacheableMatrix) SetCachedInverse(inv *mat.Dense) {
	if inv == nil {
		panic(panicNilInverse)
	}
	c.inverse = mat.DenseCopyOf(inv)
}

// Stats returns a snapshot of the cumulative hit/miss counters.
// Complexity: O(1).
func (c *CacheableMatrix) Stats() Stats {
	return Stats{Hits: c.hits, Misses: c.misses}
}
