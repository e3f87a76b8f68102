// SPDX-License-Identifier: MIT
// Package matcache: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. No operation panics on user-triggered error conditions;
// panics are reserved for programmer errors (nil values, nonsensical options).

package matcache

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matcache: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.

var (
	// ErrNotInvertible is returned when the held matrix cannot be inverted:
	// non-square shape, exact singularity (zero pivot), or a condition number
	// above the configured cutoff. This is the single user-visible failure
	// mode of CachedInverse; the cache slot is left unset when it is returned.
	ErrNotInvertible = errors.New("matcache: matrix is not invertible")

	// ErrNilCache indicates that a nil *CacheableMatrix was passed to an operation.
	ErrNilCache = errors.New("matcache: nil cacheable matrix")

	// ErrNilMatrix indicates that a nil matrix value was used where a dense
	// matrix is required.
	ErrNilMatrix = errors.New("matcache: nil matrix")

	// ErrBadShape is returned by FromRows when the input cannot form a dense
	// rectangular matrix (empty input or ragged rows). It is a structural
	// ingestion error, not an invertibility judgement.
	ErrBadShape = errors.New("matcache: invalid shape")
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opCachedInverse = "CachedInverse"
	opFromRows      = "FromRows"
)

// cacheErrorf wraps err with an operation tag, preserving the original error
// via %w so errors.Is/errors.As keep matching the sentinels above.
// Use only when err != nil; wrapping a nil cause is a programmer error.
func cacheErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
