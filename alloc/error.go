package alloc

import "errors"

// ErrOutOfMemory indicates an allocator could not supply a block.
var ErrOutOfMemory = errors.New("out of memory")
