package list

import "errors"

var (
	// ErrNoAllocator indicates a list was configured without an allocator.
	ErrNoAllocator = errors.New("list: no allocator")
	// ErrIllegalType indicates the illegal value does not have the element type.
	ErrIllegalType = errors.New("list: illegal value has the wrong type")
)
