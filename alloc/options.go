package alloc

import "github.com/sirupsen/logrus"

// Option is a heap configuration option.
type Option interface {
	apply(*heapOptions)
}

type heapOptions struct {
	limit  uintptr
	logger logrus.FieldLogger
}

func newDefaultHeapOptions() heapOptions {
	return heapOptions{
		limit:  0,
		logger: logrus.StandardLogger(),
	}
}

// WithLimit option configures the heap with a maximum number of bytes in use.
//
// The zero value configures an unbounded heap.
func WithLimit(limit uintptr) Option {
	return funcOption(func(opts *heapOptions) {
		opts.limit = limit
	})
}

// WithLogger option configures the heap logger.
func WithLogger(logger logrus.FieldLogger) Option {
	return funcOption(func(opts *heapOptions) {
		if logger != nil {
			opts.logger = logger
		}
	})
}

type funcOption func(*heapOptions)

func (o funcOption) apply(opts *heapOptions) {
	o(opts)
}
