/*
Package buffer implements a counted fixed-length array backed by an allocator block.
*/
package buffer

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/ericyao2013/boos-core.rev2/alloc"
)

var (
	// ErrNoAllocator indicates a buffer was requested without an allocator.
	ErrNoAllocator = errors.New("buffer: no allocator")
	// ErrInvalidLength indicates a non-positive buffer length.
	ErrInvalidLength = errors.New("buffer: invalid length")
)

// Buffer is a fixed-length array of values.
//
// A Buffer is owned by whoever created or received it and must be released
// with Release. A nil or released buffer has zero length.
type Buffer[V any] struct {
	alloc   alloc.Allocator
	addr    alloc.Addr
	elems   []V
	illegal V
}

// New creates a buffer of n elements, each set to illegal.
func New[V any](a alloc.Allocator, n int, illegal V) (*Buffer[V], error) {
	if a == nil {
		return nil, ErrNoAllocator
	}

	if n <= 0 {
		return nil, fmt.Errorf("length %d: %w", n, ErrInvalidLength)
	}

	addr, err := a.Allocate(uintptr(n) * unsafe.Sizeof(illegal))
	if err != nil {
		return nil, fmt.Errorf("buffer: %w", err)
	}

	elems := make([]V, n)
	for i := range elems {
		elems[i] = illegal
	}

	return &Buffer[V]{
		alloc:   a,
		addr:    addr,
		elems:   elems,
		illegal: illegal,
	}, nil
}

// Len returns the number of elements.
func (b *Buffer[V]) Len() int {
	if b == nil {
		return 0
	}
	return len(b.elems)
}

// Get returns the element at index i or the illegal value.
func (b *Buffer[V]) Get(i int) V {
	if b == nil {
		var zero V
		return zero
	}
	if i < 0 || i >= len(b.elems) {
		return b.illegal
	}
	return b.elems[i]
}

// Set replaces the element at index i.
func (b *Buffer[V]) Set(i int, v V) bool {
	if i < 0 || i >= b.Len() {
		return false
	}
	b.elems[i] = v
	return true
}

// Slice returns a copy of the elements.
func (b *Buffer[V]) Slice() []V {
	if b.Len() == 0 {
		return nil
	}
	return append([]V(nil), b.elems...)
}

// Release returns the backing block to the allocator.
func (b *Buffer[V]) Release() {
	if b == nil || b.alloc == nil {
		return
	}

	b.alloc.Release(b.addr)

	b.alloc = nil
	b.addr = alloc.Nil
	b.elems = nil
}
