package tasklocal

import (
	"strconv"
	"sync"
	"testing"
)

func TestLocalKeyFirstTouch(t *testing.T) {
	var key localKey[int]

	if _, ok := key.current(); ok {
		t.Fatal("A fresh localKey should have no populated slot for the current goroutine.")
	}
}

func TestLocalKeySwap(t *testing.T) {
	var key localKey[string]

	var wg sync.WaitGroup

	for i := range 42 {
		wg.Go(func() {
			want := strconv.Itoa(i)

			home := slot[string]{value: want, ok: true}

			key.swap(&home)

			if home.ok {
				t.Error("Swap should have moved the value out of the home slot.")
			}
			if s, ok := key.current(); !ok || s.value != want {
				t.Error("Swap should have moved the value into the goroutine slot.")
			}

			key.swap(&home)

			if !home.ok || home.value != want {
				t.Error("Swap should have moved the value back into the home slot.")
			}
			if _, ok := key.current(); ok {
				t.Error("Swap should have left the goroutine slot empty.")
			}
		})
	}

	wg.Wait()
}

func TestLocalKeySwapExchanges(t *testing.T) {
	var key localKey[int]

	outer := slot[int]{value: 1, ok: true}
	key.swap(&outer)

	// With both sides populated, swap is a genuine exchange.
	// This is what keeps nested scopes of the same key balanced.
	inner := slot[int]{value: 2, ok: true}
	key.swap(&inner)

	if s, ok := key.current(); !ok || s.value != 2 {
		t.Fatal("The goroutine slot should hold the inner value.")
	}
	if !inner.ok || inner.value != 1 {
		t.Fatal("The inner home should hold the outer value.")
	}

	key.swap(&inner)
	key.swap(&outer)

	if _, ok := key.current(); ok {
		t.Fatal("The goroutine slot should be empty after balanced swaps.")
	}
	if !outer.ok || outer.value != 1 || !inner.ok || inner.value != 2 {
		t.Fatal("Balanced swaps should restore both homes.")
	}
}

func TestLocalKeyEmptiedSlotsAreDropped(t *testing.T) {
	var key localKey[int]

	home := slot[int]{value: 1, ok: true}
	key.swap(&home)
	key.swap(&home)

	n := 0
	key.slots.Range(func(_, _ any) bool { n++; return true })
	if n != 0 {
		t.Fatal("An emptied slot should not linger in the map.")
	}
}
