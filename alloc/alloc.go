/*
Package alloc implements the low-level allocator capability of the kernel.
*/
package alloc

import "sync"

// Addr is the address of an allocated block.
type Addr uintptr

// Nil is the invalid address.
const Nil Addr = 0

// Allocator supplies raw memory blocks.
//
// Allocate never panics: on failure it returns Nil and an error wrapping
// ErrOutOfMemory. Release of Nil is a no-op. Releasing the same address
// twice is a caller error.
type Allocator interface {
	Allocate(size uintptr) (Addr, error)
	Release(addr Addr)
}

var (
	defaultHeap *Heap
	defaultOnce sync.Once
)

// Default returns the process-wide heap.
func Default() *Heap {
	defaultOnce.Do(func() {
		defaultHeap = NewHeap()
	})
	return defaultHeap
}
