package tasklocal

// A Future is a resumable computation that eventually produces a value of
// type T.
//
// Poll runs the computation, on the calling goroutine, until it either
// suspends or completes.
// Poll returns (v, true) when the computation completes with v, or
// (_, false) when it suspends.
// A suspended computation makes further progress on the next call to Poll.
//
// Poll must not be called by two goroutines at the same time, and must not
// be called again after it has returned true.
// Calling Poll from a different goroutine than before is fine, as long as
// the hand-off is properly synchronized.
type Future[T any] interface {
	Poll() (T, bool)
}

// A FutureFunc is a func() (T, bool) that implements the [Future] interface.
type FutureFunc[T any] func() (T, bool)

// Poll implements the [Future] interface.
func (f FutureFunc[T]) Poll() (T, bool) { return f() }

// Ready returns a [Future] that completes with v without ever suspending.
func Ready[T any](v T) Future[T] {
	return FutureFunc[T](func() (T, bool) { return v, true })
}

// Then returns a [Future] that first completes f, then works on the Future
// returned by next, completing with its output.
//
// The Future returned by next is created, and polled for the first time,
// within the same resume step in which f completes.
func Then[A, B any](f Future[A], next func(A) Future[B]) Future[B] {
	if f == nil {
		panic("tasklocal: nil Future")
	}
	if next == nil {
		panic("tasklocal: Then(f, nil): undefined behavior")
	}
	var second Future[B]
	return FutureFunc[B](func() (B, bool) {
		if second == nil {
			a, done := f.Poll()
			if !done {
				var zero B
				return zero, false
			}
			second = next(a)
			if second == nil {
				panic("tasklocal: nil Future")
			}
		}
		return second.Poll()
	})
}

// Await polls f on the calling goroutine until it completes, and returns
// its output.
//
// Await relies on the [Future] contract that every call to Poll makes
// progress. A Future that suspends without ever being able to complete
// makes Await spin forever.
func Await[T any](f Future[T]) T {
	if f == nil {
		panic("tasklocal: nil Future")
	}
	for {
		if v, done := f.Poll(); done {
			return v
		}
	}
}
