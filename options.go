// SPDX-License-Identifier: MIT

// Package matcache: functional configuration for the CachedInverse operation.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each option impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Reusability: Options fields are unexported; the public API consumes ...Option.
//
// Notes:
//   - Options are gathered per CachedInverse call and passed through to the
//     solve step unmodified; the cache layer itself interprets none of them
//     beyond picking the Notifier for the hit path.

package matcache

import (
	"math"

	"github.com/apex/log"
)

// ---------- Defaults (single source of truth) ----------

// DefaultMaxCondition is the condition-number cutoff above which a matrix is
// treated as numerically singular. Float64 carries ~15-16 significant decimal
// digits; past 1e15 the computed inverse is noise, so caching it would be
// worse than failing.
const DefaultMaxCondition = 1e15

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicMaxCondInvalid = "matcache: WithMaxCondition: maxCond must be finite and > 0"
	panicNilNotifier    = "matcache: WithNotifier: notifier must be non-nil"
	panicNilLogger      = "matcache: NewLogNotifier: logger must be non-nil"
	panicNilValue       = "matcache: value must be a non-nil *mat.Dense"
	panicNilInverse     = "matcache: inverse must be a non-nil *mat.Dense"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options carries the resolved configuration for one CachedInverse call.
// Fields are unexported; construct via gatherOptions from ...Option.
type Options struct {
	maxCondition float64  // reject solves when cond(A) exceeds this
	notifier     Notifier // sink for cache-hit signals, never nil
}

// defaultOptions returns the documented zero-config behavior: the default
// condition cutoff and an apex/log-backed notifier on the package logger.
func defaultOptions() Options {
	return Options{
		maxCondition: DefaultMaxCondition,
		notifier:     NewLogNotifier(log.Log),
	}
}

// gatherOptions folds opts over the defaults. Nil entries are skipped so
// callers may pass conditionally-built option slices.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithMaxCondition sets the condition-number cutoff for the solve step.
// A factorized matrix with cond(A) > maxCond (or a non-finite estimate) is
// rejected with ErrNotInvertible before anything reaches the cache slot.
// Panics if maxCond is NaN, ±Inf, or non-positive.
func WithMaxCondition(maxCond float64) Option {
	if math.IsNaN(maxCond) || math.IsInf(maxCond, 0) || maxCond <= 0 {
		panic(panicMaxCondInvalid)
	}

	return func(o *Options) { o.maxCondition = maxCond }
}

// WithNotifier routes cache-hit signals to n instead of the default
// apex/log sink. Use NewNopNotifier() to silence them entirely.
// Panics on a nil notifier (programmer error).
func WithNotifier(n Notifier) Option {
	if n == nil {
		panic(panicNilNotifier)
	}

	return func(o *Options) { o.notifier = n }
}
