/*
Package testing contains assertions shared by the package tests.
*/
package testing

import (
	"reflect"
	"testing"
	"time"

	"github.com/ericyao2013/boos-core.rev2/alloc"
)

// AssertSuccess asserts that an error did not occur.
func AssertSuccess(t testing.TB, err error) {
	t.Helper()

	if err != nil {
		t.Fatalf("expected success, got: %v", err)
	}
}

// AssertEqual asserts that values are deeply equal.
func AssertEqual[T any](t testing.TB, a, b T) {
	t.Helper()

	if !reflect.DeepEqual(a, b) {
		t.Fatalf("expected '%v' to be equal to '%v'", a, b)
	}
}

// AssertNoLeaks asserts that every block of h was released.
func AssertNoLeaks(t testing.TB, h *alloc.Heap) {
	t.Helper()

	if s := h.Stats(); s.Blocks != 0 || s.InUse != 0 {
		t.Fatalf("expected no live blocks, got %d blocks holding %d bytes", s.Blocks, s.InUse)
	}
}

// AssertEventuallyTrue asserts that f eventually returns true.
func AssertEventuallyTrue(t testing.TB, f func() bool, timeout ...time.Duration) {
	t.Helper()

	limit := time.Second
	if timeout != nil {
		limit = timeout[0]
	}

	timer := time.NewTimer(limit)
	defer timer.Stop()

	ticker := time.NewTicker(time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-timer.C:
			t.Fatalf("timeout: expected eventually to be true")

		case <-ticker.C:
			if f() {
				return
			}
		}
	}
}
