package alloc

import (
	"fmt"
	"sync/atomic"
)

// Faulty wraps an allocator and fails the nth call to Allocate.
// When sticky, every call after the nth fails too.
type Faulty struct {
	inner  Allocator
	failOn int64
	sticky bool
	calls  atomic.Int64
}

var _ Allocator = &Faulty{}

// NewFaulty creates a fault-injecting allocator.
// When n <= 0, Allocate never fails on its own.
func NewFaulty(inner Allocator, n int, sticky bool) *Faulty {
	return &Faulty{
		inner:  inner,
		failOn: int64(n),
		sticky: sticky,
	}
}

// Allocate implements Allocator.
func (f *Faulty) Allocate(size uintptr) (Addr, error) {
	call := f.calls.Add(1)
	if f.failOn > 0 && (call == f.failOn || (f.sticky && call > f.failOn)) {
		return Nil, fmt.Errorf("alloc: injected failure on call %d: %w", call, ErrOutOfMemory)
	}
	return f.inner.Allocate(size)
}

// Release implements Allocator.
func (f *Faulty) Release(addr Addr) {
	f.inner.Release(addr)
}

// Calls returns the number of Allocate calls so far.
func (f *Faulty) Calls() int {
	return int(f.calls.Load())
}
