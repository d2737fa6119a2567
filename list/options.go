package list

import "github.com/ericyao2013/boos-core.rev2/alloc"

// Option is a list configuration option.
type Option interface {
	apply(*listOptions)
}

type listOptions struct {
	allocator alloc.Allocator
	illegal   any
}

func newDefaultListOptions() listOptions {
	return listOptions{
		allocator: alloc.Default(),
	}
}

// WithAllocator option configures the allocator that accounts for nodes
// and snapshot buffers.
//
// The default is the process-wide heap. A nil allocator fails construction.
func WithAllocator(a alloc.Allocator) Option {
	return funcOption(func(opts *listOptions) {
		opts.allocator = a
	})
}

// WithIllegal option configures the value returned when an element cannot
// be located. Its type must be the element type of the list.
//
// The type is checked when the list is built, not at compile time: an untyped
// constant takes its default type, so a list of int64 needs
// WithIllegal(int64(-1)). A mismatch fails construction with ErrIllegalType.
//
// The default is the zero value.
func WithIllegal[V any](illegal V) Option {
	return funcOption(func(opts *listOptions) {
		opts.illegal = illegal
	})
}

type funcOption func(*listOptions)

func (o funcOption) apply(opts *listOptions) {
	o(opts)
}
