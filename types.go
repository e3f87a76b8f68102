// SPDX-License-Identifier: MIT

// Package matcache: domain types for the memoizing inversion wrapper.
// This file intentionally contains ONLY domain-facing types; errors and
// options live in dedicated files (errors.go, options.go) per the package
// conventions.

package matcache

import "gonum.org/v1/gonum/mat"

// CacheableMatrix couples a square dense matrix with an optional cached
// inverse. The zero cache state is "unset" (inverse == nil); it is set only
// by a successful CachedInverse call (or SetCachedInverse) and cleared only
// by SetMatrix. There is no window in which a stale inverse is visible.
//
// The instance exclusively owns both fields: constructors and setters copy
// their inputs, accessors return copies, so external mutation can never
// desynchronize the value from its cached inverse.
//
// Not safe for concurrent use; callers must serialize access themselves.
type CacheableMatrix struct {
	value   *mat.Dense // current matrix, always non-nil after construction
	inverse *mat.Dense // cached inverse of value, nil ⇒ unset
	hits    uint64     // cumulative cache-hit count across all values
	misses  uint64     // cumulative compute-path count across all values
}

// Stats is a point-in-time snapshot of the cache counters.
//
// Counters are cumulative for the lifetime of the CacheableMatrix: SetMatrix
// clears the cached inverse but does not reset them, so Hits+Misses equals
// the total number of CachedInverse calls that reached the cache slot
// (failed solves count as misses).
type Stats struct {
	Hits   uint64 // inversions served from the cache slot
	Misses uint64 // inversions that entered the compute path
}
