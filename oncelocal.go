package tasklocal

// An OnceLocal is a storage that requires an explicit value to be installed
// before access.
//
// The usual way to install a value is to bind one to a [Future] with [Scope].
// While that Future is mid-resume, the accessor methods, called from
// anywhere in the computation's call graph on the resuming goroutine,
// observe exactly the value bound to that Future — never a value belonging
// to another computation resumed concurrently by a different goroutine, and
// never a value left behind by a previously completed one.
//
// Accessing an OnceLocal with no value in scope is a programming error,
// not a recoverable condition; [OnceLocal.With] and [OnceLocal.Value] panic
// to surface it immediately. [OnceLocal.Replace] and [OnceLocal.Take] are
// safe on an empty slot.
//
// The zero OnceLocal is ready to use.
// An OnceLocal is typically declared at package level, one per logical slot,
// and must not be copied after first use.
type OnceLocal[V any] struct {
	key localKey[V]
}

// NewOnceLocal creates a new [OnceLocal].
func NewOnceLocal[V any]() *OnceLocal[V] {
	return new(OnceLocal[V])
}

func (l *OnceLocal[V]) local() *localKey[V] { return &l.key }

// With calls f with a pointer to the value currently in scope on the calling
// goroutine. The pointer must not be retained after f returns.
//
// f must not call methods of l; the slot is not reentrant.
//
// With panics if no value is in scope.
func (l *OnceLocal[V]) With(f func(v *V)) {
	s, ok := l.key.current()
	if !ok {
		panic("tasklocal: no value in scope")
	}
	f(&s.value)
}

// Value returns a copy of the value currently in scope on the calling
// goroutine.
//
// Value panics if no value is in scope.
func (l *OnceLocal[V]) Value() V {
	s, ok := l.key.current()
	if !ok {
		panic("tasklocal: no value in scope")
	}
	return s.value
}

// Replace installs v as the value in scope on the calling goroutine and
// returns the value previously in scope, if any.
//
// Called outside any scope, Replace populates the calling goroutine's bare
// slot; the value then stays there until taken, which is rarely what one
// wants. The usual place to call Replace is inside a scoped computation,
// where the installed value is carried along by the surrounding wrapper.
func (l *OnceLocal[V]) Replace(v V) (V, bool) {
	return l.key.replace(v)
}

// Take removes and returns the value in scope on the calling goroutine,
// if any.
//
// Taking the value out of an active scope is permitted; the surrounding
// wrapper then completes with the zero value as its stored component.
func (l *OnceLocal[V]) Take() (V, bool) {
	return l.key.take()
}
