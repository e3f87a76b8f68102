// SPDX-License-Identifier: MIT

// Package matcache: the cache-hit notification channel.
//
// CachedInverse reports "served from cache" through a Notifier rather than a
// hard-coded console write, so hosts can route the signal into their own
// logging sink and tests can assert on emission directly.

package matcache

import "github.com/apex/log"

// Notifier receives the informational cache-hit signal. CacheHit is invoked
// exactly once per CachedInverse call that is answered from the cache slot,
// with the dimension of the (square) matrix being served. The compute path
// never notifies.
type Notifier interface {
	CacheHit(dim int)
}

// NotifierFunc adapts a plain function to the Notifier interface.
type NotifierFunc func(dim int)

// CacheHit implements Notifier by calling f.
func (f NotifierFunc) CacheHit(dim int) { f(dim) }

// NewNopNotifier returns a Notifier that discards every signal.
// Useful in benchmarks and in hosts that do not care about hit telemetry.
func NewNopNotifier() Notifier {
	return NotifierFunc(func(int) {})
}

// NewLogNotifier returns a Notifier that emits an Info-level entry to the
// given apex logger with the matrix dimension attached as a field.
// Panics on a nil logger (programmer error).
func NewLogNotifier(logger log.Interface) Notifier {
	if logger == nil {
		panic(panicNilLogger)
	}

	return NotifierFunc(func(dim int) {
		logger.WithField("dim", dim).Info("serving cached inverse")
	})
}
