package tasklocal

import (
	"sync"

	"github.com/petermattis/goid"
)

// A slot holds an optional value of type V.
// It is the unit of exchange between a wrapper and a goroutine slot.
type slot[V any] struct {
	value V
	ok    bool
}

// A localKey owns, for each goroutine that ever touches it, one [slot]
// private to that goroutine.
//
// A goroutine slot is a temporary relay, not a value's permanent home.
// The scoping wrapper installs a value on swap-in and removes it again on
// swap-out, both within a single call to Poll.
//
// An empty slot and an absent one are the same state, so emptied slots are
// dropped from the map rather than kept around. A populated entry is only
// ever touched by its own goroutine.
type localKey[V any] struct {
	slots sync.Map // goroutine id -> *slot[V]
}

// current returns the calling goroutine's slot, if it is populated.
func (k *localKey[V]) current() (*slot[V], bool) {
	if s, ok := k.slots.Load(goid.Get()); ok {
		return s.(*slot[V]), true
	}
	return nil, false
}

// install makes the calling goroutine's slot hold v, and returns the slot.
// The slot must not already be populated.
func (k *localKey[V]) install(v V) *slot[V] {
	s := &slot[V]{value: v, ok: true}
	k.slots.Store(goid.Get(), s)
	return s
}

// swap exchanges the calling goroutine's slot content with *home,
// independent of whether either side is populated.
// It leaves no copy behind, and it never fails.
func (k *localKey[V]) swap(home *slot[V]) {
	id := goid.Get()
	if s, ok := k.slots.Load(id); ok {
		gs := s.(*slot[V])
		*gs, *home = *home, *gs
		if !gs.ok {
			k.slots.Delete(id)
		}
		return
	}
	if home.ok {
		gs := new(slot[V])
		*gs, *home = *home, slot[V]{}
		k.slots.Store(id, gs)
	}
}

// replace installs v in the calling goroutine's slot and returns the value
// previously held, if any.
func (k *localKey[V]) replace(v V) (V, bool) {
	if s, ok := k.current(); ok {
		prev := s.value
		s.value = v
		return prev, true
	}
	k.install(v)
	var zero V
	return zero, false
}

// take removes and returns the calling goroutine's slot content, if any.
func (k *localKey[V]) take() (V, bool) {
	if s, ok := k.current(); ok {
		k.slots.Delete(goid.Get())
		return s.value, true
	}
	var zero V
	return zero, false
}
