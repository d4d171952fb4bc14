package tasklocal

// A LazyLocal is a storage that materializes a default value, via a supplied
// initializer, the first time it is touched within a scope.
//
// Unlike an [OnceLocal], the absence of an externally supplied value is not
// an error; it is resolved internally. Materialization happens at most once
// per scope instance, not once per process: when a scope suspends or
// completes, its value moves out of the goroutine slot, so the next distinct
// scope using the same LazyLocal starts over with a fresh default.
// This implements default-per-computation, not default-per-process.
//
// A LazyLocal is typically declared at package level, one per logical slot,
// and must not be copied after first use.
type LazyLocal[V any] struct {
	key  localKey[V]
	init func() V
}

// NewLazyLocal creates a new [LazyLocal] with the given initializer.
func NewLazyLocal[V any](init func() V) *LazyLocal[V] {
	if init == nil {
		panic("tasklocal: nil initializer")
	}
	return &LazyLocal[V]{init: init}
}

func (l *LazyLocal[V]) local() *localKey[V] { return &l.key }

// materialized returns the calling goroutine's slot, running the initializer
// first if the slot is empty.
func (l *LazyLocal[V]) materialized() *slot[V] {
	if s, ok := l.key.current(); ok {
		return s
	}
	if l.init == nil {
		panic("tasklocal: use NewLazyLocal to create a LazyLocal")
	}
	return l.key.install(l.init())
}

// With calls f with a pointer to the value currently in scope on the calling
// goroutine, materializing the default value first if there is none.
// The pointer must not be retained after f returns.
//
// f must not call methods of l; the slot is not reentrant.
func (l *LazyLocal[V]) With(f func(v *V)) {
	f(&l.materialized().value)
}

// Value returns a copy of the value currently in scope on the calling
// goroutine, materializing the default value first if there is none.
func (l *LazyLocal[V]) Value() V {
	return l.materialized().value
}

// Replace installs v as the value in scope on the calling goroutine and
// returns the value previously in scope, materializing the default value
// first if there was none.
func (l *LazyLocal[V]) Replace(v V) V {
	s := l.materialized()
	prev := s.value
	s.value = v
	return prev
}

// Set installs v as the value in scope on the calling goroutine.
// Unlike the other methods, Set never runs the initializer; it is the way
// to seed a value without paying the initializer cost.
func (l *LazyLocal[V]) Set(v V) {
	if s, ok := l.key.current(); ok {
		s.value = v
		return
	}
	l.key.install(v)
}
