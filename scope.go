package tasklocal

// Storage is the interface of any storage a value can be attached through:
// [OnceLocal] and [LazyLocal]. There are no other implementations.
type Storage[V any] interface {
	local() *localKey[V]
}

// A Pair carries a stored value alongside an inner computation's output.
// It is the completion type of a [ScopedFuture].
type Pair[V, T any] struct {
	Value  V
	Output T
}

// A ScopedFuture is a [Future] that has been given a value of its own.
//
// It wraps exactly one inner Future and brackets every resume step:
// on entry to Poll, the value is swapped into the resuming goroutine's slot;
// on exit, unconditionally, it is swapped back out. In between, the inner
// computation's code paths reach the value through the storage's accessor
// methods. At any instant the value lives either in the wrapper or in the
// goroutine slot, never in both and never in neither.
//
// When the inner computation completes, the wrapper completes with a [Pair]
// handing the stored value back out.
//
// Discarding a ScopedFuture before completion needs no special care:
// while not actively resuming, the value sits in the wrapper and is
// discarded with it.
type ScopedFuture[V, T any] struct {
	inner Future[T]
	key   *localKey[V]
	home  slot[V]
	done  bool
}

// Scope binds value to the storage s for the lifetime of inner, and returns
// the [ScopedFuture] wrapping inner.
//
// Each ScopedFuture has its own value; binding the same storage in many
// concurrently resumed computations is the intended use.
func Scope[V, T any](s Storage[V], value V, inner Future[T]) *ScopedFuture[V, T] {
	f := Attach(s, inner)
	f.home = slot[V]{value: value, ok: true}
	return f
}

// Attach is like [Scope] but seeds no value.
//
// For a [LazyLocal], the first touch inside the scope materializes the
// default value. For an [OnceLocal], accessors panic until a value is
// installed with Replace from within the computation.
func Attach[V, T any](s Storage[V], inner Future[T]) *ScopedFuture[V, T] {
	if inner == nil {
		panic("tasklocal: nil Future")
	}
	return &ScopedFuture[V, T]{inner: inner, key: s.local()}
}

// Poll implements the [Future] interface.
//
// Poll performs one resume step of the inner computation, with the stored
// value installed in the calling goroutine's slot for the duration of that
// step only. On completion, Poll returns the stored value and the inner
// output as a [Pair].
//
// Poll panics if called again after completion.
func (f *ScopedFuture[V, T]) Poll() (Pair[V, T], bool) {
	if f.done {
		panic("tasklocal: Poll called after completion")
	}

	out, completed := f.resume()
	if !completed {
		return Pair[V, T]{}, false
	}

	f.done = true
	f.inner = nil
	value := f.home.value
	f.home = slot[V]{}
	return Pair[V, T]{Value: value, Output: out}, true
}

// resume runs one resume step of the inner computation, bracketed by the two
// swaps. The swap-out is deferred so that it happens even if the inner
// computation panics; otherwise the value would be stranded in the slot of
// a goroutine that may never resume this computation again.
func (f *ScopedFuture[V, T]) resume() (T, bool) {
	f.key.swap(&f.home)
	defer f.key.swap(&f.home)
	return f.inner.Poll()
}

// DiscardValue returns a [Future] that completes with only the inner
// computation's output, dropping the stored value.
func (f *ScopedFuture[V, T]) DiscardValue() Future[T] {
	return FutureFunc[T](func() (T, bool) {
		p, done := f.Poll()
		return p.Output, done
	})
}
