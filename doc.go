// Package tasklocal provides storage that is local to a single resumable
// computation rather than to a goroutine.
//
// A value attached to a [Future] survives across suspension and resumption,
// stays isolated from other computations that happen to be resumed by
// the same goroutine, and is reachable from deeply nested calls inside that
// computation without being passed through every function signature.
//
// # The Swap-On-Resume Protocol
//
// The core of this package is a wrapper around an arbitrary [Future] that,
// on every resume, temporarily installs a per-computation value into a slot
// private to the resuming goroutine, and removes it again before control
// returns to whoever called Poll.
//
// While a computation is suspended, the value lives in the wrapper.
// While a computation is mid-resume, the value lives in the goroutine slot,
// where the accessor methods of [OnceLocal] and [LazyLocal] can reach it.
// The value alternates between these two homes by swapping. It is never
// copied, and at any instant it lives in exactly one of them.
//
// Because all bookkeeping lives in the wrapper, any scheduler that merely
// calls Poll repeatedly works. This package makes no threading decisions
// itself and implements no scheduler of its own.
//
// # Storage Variants
//
// An [OnceLocal] requires an explicit value to be installed before access.
// Reading one without a value in scope is a programming error, and accessor
// methods panic to surface it immediately.
//
// A [LazyLocal] materializes a default value, via a supplied initializer,
// the first time it is touched within a scope. Materialization happens at
// most once per scope instance, not once per process. A fresh scope on the
// same storage starts over with a fresh default. This implements
// default-per-computation, not default-per-process.
//
// # Attaching Values
//
// [Scope] binds a value to one inner [Future] and yields a new Future with
// the same suspend/resume contract, which completes with a [Pair] carrying
// both the stored value and the inner output. [Attach] does the same without
// seeding a value, which is the usual way to use a [LazyLocal].
// If the stored value is of no interest, [ScopedFuture.DiscardValue]
// completes with only the inner output.
//
// # One Goroutine At A Time
//
// Poll runs a computation inline on the calling goroutine. That is the
// contract which makes the goroutine slot work: during one call to Poll,
// the slot of the polling goroutine is exclusively owned by the computation
// being resumed. A Future may be polled first by one goroutine and later by
// another; the attached value travels with the wrapper, not with any
// goroutine. What a Future must not do is run its own code on a different
// goroutine than the one calling Poll, and no two goroutines may poll
// the same Future at the same time.
//
// # Cancellation
//
// To cancel a suspended computation, simply discard it.
// While suspended, the attached value sits in the wrapper, so discarding
// the wrapper discards the value with it. No corrective action is needed,
// because Poll removes the value from the goroutine slot before returning,
// unconditionally, even if the inner computation panics.
package tasklocal
