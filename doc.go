// Package matcache provides a memoizing wrapper around dense matrix
// inversion: a CacheableMatrix holds a square matrix together with an
// optional cached inverse, and CachedInverse serves repeated inversion
// requests from the cache instead of recomputing them.
//
// 🚀 Why cache an inverse?
//
//	Inverting an n×n matrix costs O(n³). When the same matrix is inverted
//	many times between updates (iterative estimators, repeated solves,
//	covariance whitening), the first inversion can be paid once and every
//	subsequent request answered in O(n²) — the cost of copying the result.
//
// ✨ Key features:
//   - two-state cache slot: unset ⇄ set, never confused with a zero matrix
//   - invalidation on every SetMatrix — no stale-inverse window
//   - numerically stable compute path: LU with partial pivoting solving
//     A·X = I (gonum), never an adjugate formula
//   - injectable cache-hit Notifier (apex/log sink by default)
//   - condition-number cutoff via WithMaxCondition
//   - cumulative hit/miss counters via Stats
//
// ⚙️ Usage:
//
//	cm, err := matcache.FromRows([][]float64{{2, 0}, {0, 2}})
//	if err != nil { ... }
//
//	inv, err := matcache.CachedInverse(cm)     // computes, caches
//	inv, err = matcache.CachedInverse(cm)      // served from cache, notifies
//
//	cm.SetMatrix(next)                         // clears the cached inverse
//
// Concurrency:
//
//	CacheableMatrix is NOT safe for concurrent use. The check-then-store
//	sequence inside CachedInverse is not atomic; callers sharing one
//	instance across goroutines must serialize all accessor and
//	CachedInverse calls themselves.
//
// Performance:
//
//   - Miss: O(n³) time (LU factorization + n triangular solves), O(n²) memory.
//   - Hit:  O(n²) time (defensive copy of the stored inverse).
//
// See example_test.go for runnable scenarios.
package matcache
